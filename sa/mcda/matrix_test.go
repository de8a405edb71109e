package mcda

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inference-sim/sensitivity-sim/sa"
)

// testMatrix is 4 alternatives × 3 criteria.
func testMatrix(t *testing.T) *DecisionMatrix {
	t.Helper()
	m, err := NewDecisionMatrix([][]float64{
		{0.9, 0.1, 0.5},
		{0.2, 0.8, 0.6},
		{0.4, 0.5, 0.5},
		{0.0, 1.0, 0.1},
	})
	require.NoError(t, err)
	return m
}

func TestNewDecisionMatrix_Dims(t *testing.T) {
	m := testMatrix(t)
	assert.Equal(t, 4, m.Alternatives())
	assert.Equal(t, 3, m.Criteria())
	assert.Equal(t, []float64{0.1, 0.8, 0.5, 1.0}, m.Criterion(1))
}

func TestNewDecisionMatrix_Errors(t *testing.T) {
	tests := []struct {
		name string
		rows [][]float64
	}{
		{"no rows", nil},
		{"empty row", [][]float64{{}}},
		{"ragged", [][]float64{{0.1, 0.2}, {0.3}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewDecisionMatrix(tt.rows)
			assert.ErrorIs(t, err, sa.ErrDimension)
		})
	}
}

func TestNewDecisionMatrix_CopiesRows(t *testing.T) {
	rows := [][]float64{{0.1, 0.2}}
	m, err := NewDecisionMatrix(rows)
	require.NoError(t, err)
	rows[0][0] = 0.9
	assert.Equal(t, []float64{0.1}, m.Criterion(0))
}

func TestWeightedSum(t *testing.T) {
	m := testMatrix(t)
	got, err := m.WeightedSum([]float64{0.5, 0.25, 0.25})
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0.6, 0.45, 0.45, 0.275}, got, 1e-12)
}

func TestWeightedSum_DoesNotRescale(t *testing.T) {
	m := testMatrix(t)
	got, err := m.WeightedSum([]float64{2, 0, 0})
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{1.8, 0.4, 0.8, 0.0}, got, 1e-12)
}

func TestWeightedSum_WrongWeightCount(t *testing.T) {
	_, err := testMatrix(t).WeightedSum([]float64{1, 0})
	assert.ErrorIs(t, err, sa.ErrDimension)
}

func TestEqualWeightRanking(t *testing.T) {
	// means: 0.5, 0.5333, 0.4667, 0.3667
	assert.Equal(t, []int{2, 1, 3, 4}, testMatrix(t).EqualWeightRanking())
}
