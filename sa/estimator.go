package sa

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// EstimatorConfig groups the run-independent estimator settings.
type EstimatorConfig struct {
	Seed    int64    // master seed; run i draws from RunSeed(Seed, i)
	Workers int      // concurrent runs; values < 1 mean sequential
	Metrics *Metrics // optional instrumentation
}

// Estimator computes first-order (S) and total (ST) sensitivity indices with
// the radial design of Saltelli et al. (2010): each of N runs evaluates the
// model at A, B and the k recombinations Ab_j, N(k+2) evaluations in total.
//
//	S_j  = mean_i(yB·(yAb_j − yA)) / Vtot
//	ST_j = mean_i((yA − yAb_j)²) / (2·Vtot)
//
// where Vtot is the population variance of all yA and yB outputs.
//
// An Estimator holds no per-run state; Run may be called concurrently.
type Estimator struct {
	space   FactorSpace
	eval    Evaluator
	key     AnalysisKey
	workers int
	metrics *Metrics
}

// NewEstimator validates the factor space against the evaluator.
// Returns ErrConfiguration when the space is empty or when eval implements
// FactorCounter and disagrees with space.K().
func NewEstimator(space FactorSpace, eval Evaluator, cfg EstimatorConfig) (*Estimator, error) {
	if eval == nil {
		return nil, fmt.Errorf("%w: nil evaluator", ErrConfiguration)
	}
	if space.K() == 0 {
		return nil, fmt.Errorf("%w: factor space is empty", ErrConfiguration)
	}
	if fc, ok := eval.(FactorCounter); ok && fc.NumFactors() != space.K() {
		return nil, fmt.Errorf("%w: evaluator takes %d factors, factor space has %d",
			ErrConfiguration, fc.NumFactors(), space.K())
	}
	workers := cfg.Workers
	if workers < 1 {
		workers = 1
	}
	return &Estimator{
		space:   space,
		eval:    eval,
		key:     NewAnalysisKey(cfg.Seed),
		workers: workers,
		metrics: cfg.Metrics,
	}, nil
}

// K returns the number of factors.
func (e *Estimator) K() int {
	return e.space.K()
}

// Result holds the indices of one analysis and the raw outputs they were
// derived from. S and ST are not normalised: Monte Carlo noise can push
// ΣS away from 1 and ST outside [0, 1].
type Result struct {
	Factors []string
	N       int
	S       []float64
	ST      []float64
	Vtot    float64
	// Pool holds yA and yB of every run, interleaved: Pool[2i] = yA,
	// Pool[2i+1] = yB. len(Pool) == 2N.
	Pool []float64
}

// K returns the number of factors.
func (r *Result) K() int {
	return len(r.S)
}

// SampleA returns the per-run output at the A vector, the sequence used for
// uncertainty analysis of the model output.
func (r *Result) SampleA() []float64 {
	out := make([]float64, r.N)
	for i := range out {
		out[i] = r.Pool[2*i]
	}
	return out
}

// accumulators are owned by one Run call. Run i writes only row i of vi and
// vt and slots 2i, 2i+1 of pool.
type accumulators struct {
	vi   *mat.Dense
	vt   *mat.Dense
	pool []float64
}

// Run performs n Monte Carlo runs and derives the indices.
// n must be positive. The first evaluator error aborts the analysis and is
// returned unwrapped; cancellation of ctx is checked between runs.
func (e *Estimator) Run(ctx context.Context, n int) (*Result, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: run count must be positive, got %d", ErrConfiguration, n)
	}
	k := e.space.K()
	start := time.Now()
	logrus.Debugf("radial estimator: k=%d N=%d workers=%d seed=%d", k, n, e.workers, e.key)

	acc := accumulators{
		vi:   mat.NewDense(n, k, nil),
		vt:   mat.NewDense(n, k, nil),
		pool: make([]float64, 2*n),
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.workers)
	for i := 0; i < n; i++ {
		if gctx.Err() != nil {
			break
		}
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			return e.runOnce(i, &acc)
		})
	}
	if err := g.Wait(); err != nil {
		e.metrics.observeFailure()
		return nil, err
	}
	// errgroup only cancels gctx on a Go error; a parent cancellation that
	// stopped the loop early leaves no error behind.
	if err := ctx.Err(); err != nil {
		e.metrics.observeFailure()
		return nil, err
	}

	res := finalize(acc, n, k)
	res.Factors = e.space.Names()
	e.metrics.observeDuration(time.Since(start).Seconds())
	logrus.Debugf("radial estimator: done in %v, Vtot=%g", time.Since(start), res.Vtot)
	return res, nil
}

// runOnce evaluates the design block of run i and fills its accumulator slots.
func (e *Estimator) runOnce(i int, acc *accumulators) error {
	block := DrawBlock(NewRunRNG(e.key, i), e.space)

	yA, err := e.eval.Evaluate(block.A)
	if err != nil {
		return err
	}
	yB, err := e.eval.Evaluate(block.B)
	if err != nil {
		return err
	}
	acc.pool[2*i] = yA
	acc.pool[2*i+1] = yB

	for j, ab := range block.Ab {
		yAb, err := e.eval.Evaluate(ab)
		if err != nil {
			return err
		}
		acc.vi.Set(i, j, yB*(yAb-yA))
		d := yA - yAb
		acc.vt.Set(i, j, d*d)
	}
	e.metrics.observeRun(len(block.Ab))
	return nil
}

// finalize reduces the accumulators once every run has written its slots.
// Vtot is computed once over the full pool.
func finalize(acc accumulators, n, k int) *Result {
	vtot := stat.PopVariance(acc.pool, nil)
	res := &Result{
		N:    n,
		S:    make([]float64, k),
		ST:   make([]float64, k),
		Vtot: vtot,
		Pool: acc.pool,
	}
	col := make([]float64, n)
	for j := 0; j < k; j++ {
		mat.Col(col, j, acc.vi)
		res.S[j] = stat.Mean(col, nil) / vtot
		mat.Col(col, j, acc.vt)
		res.ST[j] = stat.Mean(col, nil) / (2 * vtot)
	}
	return res
}
