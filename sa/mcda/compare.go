package mcda

import (
	"fmt"
	"math"

	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/floats"

	"github.com/inference-sim/sensitivity-sim/sa"
)

// weightSumTolerance is how far from 1 a weight vector may sum before it is rescaled.
const weightSumTolerance = 1e-9

// Comparison holds the scores and ranks of every alternative under a base
// and a reference weighting.
type Comparison struct {
	BaseWeights []float64
	RefWeights  []float64
	BaseScores  []float64
	RefScores   []float64
	BaseRanks   []int
	RefRanks    []int
	RankChange  []int // BaseRanks[i] - RefRanks[i]
	ASR         float64
}

// NormalizeWeights returns w unchanged when it already sums to 1, and a
// rescaled copy otherwise.
func NormalizeWeights(w []float64) ([]float64, error) {
	total := floats.Sum(w)
	if math.Abs(total-1) <= weightSumTolerance {
		return append([]float64(nil), w...), nil
	}
	out, err := sa.RescaleWeights(w)
	if err != nil {
		return nil, err
	}
	logrus.Warnf("weights do not add up to 1.0 (sum %g); rescaled %v to %v", total, w, out)
	return out, nil
}

// CompareWeights scores m under base and ref weights and measures how far
// the rankings moved apart.
func CompareWeights(m *DecisionMatrix, base, ref []float64) (*Comparison, error) {
	if len(base) != m.Criteria() {
		return nil, fmt.Errorf("%w: %d base weights for %d criteria", sa.ErrConfiguration, len(base), m.Criteria())
	}
	if len(ref) != m.Criteria() {
		return nil, fmt.Errorf("%w: %d reference weights for %d criteria", sa.ErrConfiguration, len(ref), m.Criteria())
	}
	bw, err := NormalizeWeights(base)
	if err != nil {
		return nil, fmt.Errorf("base weights: %w", err)
	}
	rw, err := NormalizeWeights(ref)
	if err != nil {
		return nil, fmt.Errorf("reference weights: %w", err)
	}

	c := &Comparison{BaseWeights: bw, RefWeights: rw}
	if c.BaseScores, err = m.WeightedSum(bw); err != nil {
		return nil, err
	}
	if c.RefScores, err = m.WeightedSum(rw); err != nil {
		return nil, err
	}
	c.BaseRanks = Rank(c.BaseScores)
	c.RefRanks = Rank(c.RefScores)
	if c.RankChange, err = RankChange(c.BaseRanks, c.RefRanks); err != nil {
		return nil, err
	}
	if c.ASR, err = AverageShift(c.BaseRanks, c.RefRanks); err != nil {
		return nil, err
	}
	return c, nil
}
