package mcda

import (
	"context"
	"fmt"
	"math"

	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/inference-sim/sensitivity-sim/sa"
)

// AlternativeStats summarises the scores and ranks one alternative obtained
// over a Monte Carlo uncertainty analysis.
type AlternativeStats struct {
	AvgScore   float64
	AvgRank    float64
	MinRank    int
	MaxRank    int
	RankStdDev float64 // population standard deviation
}

// UncertaintyResult is the outcome of UncertaintyAnalysis.
type UncertaintyResult struct {
	N            int
	Alternatives []AlternativeStats
}

// UncertaintyAnalysis runs n plain Monte Carlo weightings of m. Each run
// draws one weight per criterion from space, rescales the weights to sum
// to 1, then scores and ranks every alternative.
func UncertaintyAnalysis(ctx context.Context, m *DecisionMatrix, space sa.FactorSpace, n int, seed int64) (*UncertaintyResult, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: run count must be positive, got %d", sa.ErrConfiguration, n)
	}
	if space.K() != m.Criteria() {
		return nil, fmt.Errorf("%w: %d weight factors for %d criteria", sa.ErrConfiguration, space.K(), m.Criteria())
	}
	rng := sa.NewPartitionedRNG(sa.NewAnalysisKey(seed)).ForStream(sa.StreamUncertainty)
	alts := m.Alternatives()
	scores := mat.NewDense(n, alts, nil)
	ranks := mat.NewDense(n, alts, nil)

	for i := 0; i < n; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		w, err := sa.RescaleWeights(space.DrawVector(rng))
		if err != nil {
			return nil, err
		}
		s, err := m.WeightedSum(w)
		if err != nil {
			return nil, err
		}
		scores.SetRow(i, s)
		for a, r := range Rank(s) {
			ranks.Set(i, a, float64(r))
		}
		if (i+1)%max(1, n/10) == 0 {
			logrus.Debugf("uncertainty analysis: %d/%d runs", i+1, n)
		}
	}

	res := &UncertaintyResult{N: n, Alternatives: make([]AlternativeStats, alts)}
	sc := make([]float64, n)
	rk := make([]float64, n)
	for a := 0; a < alts; a++ {
		mat.Col(sc, a, scores)
		mat.Col(rk, a, ranks)
		res.Alternatives[a] = AlternativeStats{
			AvgScore:   stat.Mean(sc, nil),
			AvgRank:    stat.Mean(rk, nil),
			MinRank:    int(floats.Min(rk)),
			MaxRank:    int(floats.Max(rk)),
			RankStdDev: math.Sqrt(stat.PopVariance(rk, nil)),
		}
	}
	return res, nil
}
