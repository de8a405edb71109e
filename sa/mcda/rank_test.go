package mcda

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inference-sim/sensitivity-sim/sa"
)

func TestRank(t *testing.T) {
	tests := []struct {
		name   string
		scores []float64
		want   []int
	}{
		{"distinct", []float64{3, 1, 2}, []int{1, 3, 2}},
		{"tie keeps input order", []float64{1, 1, 2}, []int{2, 3, 1}},
		{"all tied", []float64{0.5, 0.5, 0.5}, []int{1, 2, 3}},
		{"single", []float64{0.7}, []int{1}},
		{"empty", []float64{}, []int{}},
		{"negative scores", []float64{-1, -3, 0}, []int{2, 3, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Rank(tt.scores))
		})
	}
}

func TestRank_DoesNotMutateScores(t *testing.T) {
	scores := []float64{0.2, 0.9, 0.5}
	Rank(scores)
	assert.Equal(t, []float64{0.2, 0.9, 0.5}, scores)
}

func TestRank_IsPermutation(t *testing.T) {
	ranks := Rank([]float64{0.3, 0.3, 0.1, 0.9, 0.3, 0.0})
	seen := make(map[int]bool)
	for _, r := range ranks {
		require.GreaterOrEqual(t, r, 1)
		require.LessOrEqual(t, r, len(ranks))
		require.False(t, seen[r], "rank %d assigned twice", r)
		seen[r] = true
	}
}

func TestAverageShift(t *testing.T) {
	tests := []struct {
		name string
		a, b []int
		want float64
	}{
		{"identical", []int{1, 2, 3}, []int{1, 2, 3}, 0},
		{"reversed", []int{1, 2, 3}, []int{3, 2, 1}, 4.0 / 3.0},
		{"one swap", []int{1, 2, 3, 4}, []int{2, 1, 3, 4}, 0.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := AverageShift(tt.a, tt.b)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-12)
		})
	}
}

func TestAverageShift_SizeMismatch(t *testing.T) {
	_, err := AverageShift([]int{1, 2}, []int{1, 2, 3})
	assert.ErrorIs(t, err, sa.ErrDimension)

	_, err = AverageShift(nil, nil)
	assert.ErrorIs(t, err, sa.ErrDimension)
}

func TestRankChange(t *testing.T) {
	got, err := RankChange([]int{1, 2, 3}, []int{3, 2, 1})
	require.NoError(t, err)
	assert.Equal(t, []int{-2, 0, 2}, got)

	_, err = RankChange([]int{1}, []int{1, 2})
	assert.ErrorIs(t, err, sa.ErrDimension)
}
