package mcda

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/inference-sim/sensitivity-sim/sa"
)

// DecisionMatrix holds standardized criterion values, one row per
// alternative and one column per criterion. Values are expected in [0, 1];
// the matrix trusts its caller on that. It is read-only after construction
// and safe for concurrent use.
type DecisionMatrix struct {
	m *mat.Dense
}

// NewDecisionMatrix copies rows into a DecisionMatrix.
// Rows must be non-empty and all of the same length.
func NewDecisionMatrix(rows [][]float64) (*DecisionMatrix, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("%w: decision matrix needs at least one alternative and one criterion", sa.ErrDimension)
	}
	k := len(rows[0])
	data := make([]float64, 0, len(rows)*k)
	for i, row := range rows {
		if len(row) != k {
			return nil, fmt.Errorf("%w: alternative %d has %d criteria, want %d", sa.ErrDimension, i, len(row), k)
		}
		data = append(data, row...)
	}
	return &DecisionMatrix{m: mat.NewDense(len(rows), k, data)}, nil
}

// Alternatives returns the number of rows.
func (d *DecisionMatrix) Alternatives() int {
	r, _ := d.m.Dims()
	return r
}

// Criteria returns the number of columns.
func (d *DecisionMatrix) Criteria() int {
	_, c := d.m.Dims()
	return c
}

// Criterion returns a copy of column j.
func (d *DecisionMatrix) Criterion(j int) []float64 {
	return mat.Col(nil, j, d.m)
}

// WeightedSum scores every alternative as Σ_j w_j·x_ij. Weights are used
// as given, without rescaling.
func (d *DecisionMatrix) WeightedSum(w []float64) ([]float64, error) {
	if len(w) != d.Criteria() {
		return nil, fmt.Errorf("%w: %d weights for %d criteria", sa.ErrDimension, len(w), d.Criteria())
	}
	var scores mat.VecDense
	scores.MulVec(d.m, mat.NewVecDense(len(w), append([]float64(nil), w...)))
	return scores.RawVector().Data, nil
}

// EqualWeightRanking ranks alternatives with every criterion weighted 1/k,
// scoring each alternative as the mean of its criteria.
func (d *DecisionMatrix) EqualWeightRanking() []int {
	k := float64(d.Criteria())
	scores := make([]float64, d.Alternatives())
	row := make([]float64, d.Criteria())
	for i := range scores {
		mat.Row(row, i, d.m)
		scores[i] = floats.Sum(row) / k
	}
	return Rank(scores)
}
