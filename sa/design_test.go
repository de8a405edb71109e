package sa

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDrawBlock_RadialStructure(t *testing.T) {
	space, err := NewFactorSpace(PortfolioFactors())
	require.NoError(t, err)
	rng := rand.New(rand.NewSource(42))

	for run := 0; run < 50; run++ {
		block := DrawBlock(rng, space)
		k := space.K()
		require.Equal(t, k+2, block.Len())
		require.Len(t, block.Vectors(), k+2)

		// Each Ab_j differs from A only at j, where it equals B.
		for j, ab := range block.Ab {
			for m := range ab {
				if m == j {
					if ab[m] != block.B[j] {
						t.Errorf("run %d: Ab_%d[%d] = %v, want B[%d] = %v", run, j, m, ab[m], j, block.B[j])
					}
					continue
				}
				if ab[m] != block.A[m] {
					t.Errorf("run %d: Ab_%d[%d] = %v, want A[%d] = %v", run, j, m, ab[m], m, block.A[m])
				}
			}
		}
	}
}

func TestDesignBlock_NoAliasing(t *testing.T) {
	// GIVEN a block
	block := NewDesignBlock([]float64{1, 2, 3}, []float64{4, 5, 6})

	// WHEN one recombination is mutated
	block.Ab[0][1] = 99
	block.Ab[0][0] = -1

	// THEN A, B and the other recombinations are untouched
	assert.Equal(t, []float64{1, 2, 3}, block.A)
	assert.Equal(t, []float64{4, 5, 6}, block.B)
	assert.Equal(t, []float64{1, 5, 3}, block.Ab[1])
	assert.Equal(t, []float64{1, 2, 6}, block.Ab[2])
}

func TestNewDesignBlock_CopiesInputs(t *testing.T) {
	a := []float64{1, 2}
	b := []float64{3, 4}
	block := NewDesignBlock(a, b)
	a[0], b[0] = 100, 100
	assert.Equal(t, []float64{1, 2}, block.A)
	assert.Equal(t, []float64{3, 4}, block.B)
}

func TestDrawBlock_SameSeedSameBlock(t *testing.T) {
	space, err := NewFactorSpace(PortfolioFactors())
	require.NoError(t, err)
	b1 := DrawBlock(NewRunRNG(7, 3), space)
	b2 := DrawBlock(NewRunRNG(7, 3), space)
	assert.Equal(t, b1, b2)
}

func TestRescaleWeights(t *testing.T) {
	got, err := RescaleWeights([]float64{1, 1, 2})
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0.25, 0.25, 0.5}, got, 1e-12)

	sum := 0.0
	for _, w := range got {
		sum += w
	}
	if math.Abs(sum-1) > 1e-12 {
		t.Errorf("rescaled weights sum to %v, want 1", sum)
	}
}

func TestRescaleWeights_LeavesInputUntouched(t *testing.T) {
	in := []float64{2, 2}
	_, err := RescaleWeights(in)
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 2}, in)
}

func TestRescaleWeights_ZeroSum(t *testing.T) {
	_, err := RescaleWeights([]float64{0, 0})
	assert.ErrorIs(t, err, ErrConfiguration)
}
