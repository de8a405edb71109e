package sa

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics instruments estimator runs. A nil *Metrics is valid and records nothing.
type Metrics struct {
	runs        prometheus.Counter
	evaluations prometheus.Counter
	failures    prometheus.Counter
	duration    prometheus.Histogram
}

// NewMetrics creates the estimator collectors and registers them on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		runs: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "sa_monte_carlo_runs_total",
			Help: "Monte Carlo runs completed by the radial estimator",
		}),
		evaluations: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "sa_model_evaluations_total",
			Help: "Model evaluations performed, N(k+2) per analysis",
		}),
		failures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "sa_analysis_failures_total",
			Help: "Analyses aborted by an evaluator error or cancellation",
		}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "sa_analysis_duration_seconds",
			Help:    "Wall time of one estimator Run",
			Buckets: prometheus.ExponentialBuckets(0.001, 4, 10), // 1ms to ~260s
		}),
	}
	reg.MustRegister(m.runs, m.evaluations, m.failures, m.duration)
	return m
}

func (m *Metrics) observeRun(k int) {
	if m == nil {
		return
	}
	m.runs.Inc()
	m.evaluations.Add(float64(k + 2))
}

func (m *Metrics) observeFailure() {
	if m == nil {
		return
	}
	m.failures.Inc()
}

func (m *Metrics) observeDuration(seconds float64) {
	if m == nil {
		return
	}
	m.duration.Observe(seconds)
}
