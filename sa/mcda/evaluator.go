package mcda

import (
	"fmt"

	"github.com/inference-sim/sensitivity-sim/sa"
)

// ASRMetric scores alternatives by weighted sum, ranks them, and reports the
// Average Shift in Ranks against the equal-weight ranking. Factors are the
// criterion weights, consumed unnormalised.
type ASRMetric struct {
	matrix *DecisionMatrix
	equal  []int
}

var (
	_ sa.Evaluator     = (*ASRMetric)(nil)
	_ sa.FactorCounter = (*ASRMetric)(nil)
)

// NewASRMetric precomputes the equal-weight reference ranking of m.
func NewASRMetric(m *DecisionMatrix) *ASRMetric {
	return &ASRMetric{matrix: m, equal: m.EqualWeightRanking()}
}

// NumFactors implements sa.FactorCounter.
func (a *ASRMetric) NumFactors() int {
	return a.matrix.Criteria()
}

// EqualWeightRanking returns a copy of the reference ranking.
func (a *ASRMetric) EqualWeightRanking() []int {
	return append([]int(nil), a.equal...)
}

// Evaluate implements sa.Evaluator.
func (a *ASRMetric) Evaluate(weights []float64) (float64, error) {
	scores, err := a.matrix.WeightedSum(weights)
	if err != nil {
		return 0, err
	}
	return AverageShift(a.equal, Rank(scores))
}

// WinnerRankMetric scores alternatives by weighted sum, ranks them, and
// reports the rank of one designated alternative.
type WinnerRankMetric struct {
	matrix *DecisionMatrix
	target int
}

var (
	_ sa.Evaluator     = (*WinnerRankMetric)(nil)
	_ sa.FactorCounter = (*WinnerRankMetric)(nil)
)

// NewWinnerRankMetric tracks alternative target (zero-based).
func NewWinnerRankMetric(m *DecisionMatrix, target int) (*WinnerRankMetric, error) {
	if target < 0 || target >= m.Alternatives() {
		return nil, fmt.Errorf("%w: alternative index %d outside [0, %d)", sa.ErrConfiguration, target, m.Alternatives())
	}
	return &WinnerRankMetric{matrix: m, target: target}, nil
}

// NumFactors implements sa.FactorCounter.
func (w *WinnerRankMetric) NumFactors() int {
	return w.matrix.Criteria()
}

// Target returns the tracked alternative index.
func (w *WinnerRankMetric) Target() int {
	return w.target
}

// Evaluate implements sa.Evaluator.
func (w *WinnerRankMetric) Evaluate(weights []float64) (float64, error) {
	scores, err := w.matrix.WeightedSum(weights)
	if err != nil {
		return 0, err
	}
	return float64(Rank(scores)[w.target]), nil
}
