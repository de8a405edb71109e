package sa

import (
	"fmt"
	"math/rand"

	"gonum.org/v1/gonum/floats"
)

// DesignBlock is the radial sample of one Monte Carlo run: two independent
// base vectors A and B plus k recombinations Ab_j, where Ab_j equals A with
// coordinate j taken from B. Every vector owns its backing array.
type DesignBlock struct {
	A  []float64
	B  []float64
	Ab [][]float64
}

// DrawBlock draws one DesignBlock from space. For each factor j the A value
// is drawn before the B value, so a given rng state yields one block.
func DrawBlock(rng *rand.Rand, space FactorSpace) DesignBlock {
	k := space.K()
	a := make([]float64, k)
	b := make([]float64, k)
	for j, s := range space.samplers {
		a[j] = s.Sample(rng)
		b[j] = s.Sample(rng)
	}
	return NewDesignBlock(a, b)
}

// NewDesignBlock builds the radial block around the given base vectors.
// a and b are copied; they must have the same length.
func NewDesignBlock(a, b []float64) DesignBlock {
	block := DesignBlock{
		A:  append([]float64(nil), a...),
		B:  append([]float64(nil), b...),
		Ab: make([][]float64, len(a)),
	}
	for j := range a {
		ab := make([]float64, len(a))
		copy(ab, a)
		ab[j] = b[j]
		block.Ab[j] = ab
	}
	return block
}

// K returns the number of factors of the block.
func (d DesignBlock) K() int {
	return len(d.A)
}

// Len returns the number of vectors in the block, k+2.
func (d DesignBlock) Len() int {
	return len(d.Ab) + 2
}

// Vectors returns A, B, Ab_1..Ab_k in evaluation order.
func (d DesignBlock) Vectors() [][]float64 {
	out := make([][]float64, 0, d.Len())
	out = append(out, d.A, d.B)
	return append(out, d.Ab...)
}

// RescaleWeights returns a copy of w scaled so that it sums to 1.
// Used by plain Monte Carlo weight draws; the radial design itself keeps
// factor values unscaled.
func RescaleWeights(w []float64) ([]float64, error) {
	total := floats.Sum(w)
	if total == 0 {
		return nil, fmt.Errorf("%w: weights sum to zero, cannot rescale", ErrConfiguration)
	}
	out := append([]float64(nil), w...)
	floats.Scale(1/total, out)
	return out, nil
}
