package report

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// SequenceSummary aggregates a per-run output sequence (ASR values, winner
// ranks, or model outputs at the A sample).
type SequenceSummary struct {
	N      int     `json:"n"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"std_dev"` // sample standard deviation; 0 when N < 2
}

// Summarize computes aggregate statistics of seq.
// Safe for nil or empty input (returns zero-value fields).
func Summarize(seq []float64) SequenceSummary {
	s := SequenceSummary{N: len(seq)}
	if len(seq) == 0 {
		return s
	}
	s.Min = floats.Min(seq)
	s.Max = floats.Max(seq)
	if len(seq) < 2 {
		s.Mean = seq[0]
		return s
	}
	s.Mean, s.StdDev = stat.MeanStdDev(seq, nil)
	return s
}

// Shares expresses indices as percentages: S_j·100, ST_j normalised by ΣST,
// and the non-additive remainder (1 − ΣS)·100 attributed to interactions.
type Shares struct {
	S            []float64 `json:"s_percent"`
	ST           []float64 `json:"st_percent"`
	NonLinearity float64   `json:"nonlinearity_percent"`
}

// ComputeShares derives percentage shares from S and ST. When ΣST is zero
// the ST shares are NaN, as the indices themselves would be.
func ComputeShares(s, st []float64) Shares {
	sh := Shares{
		S:  make([]float64, len(s)),
		ST: make([]float64, len(st)),
	}
	stSum := floats.Sum(st)
	for j, v := range s {
		sh.S[j] = v * 100
	}
	for j, v := range st {
		if stSum == 0 {
			sh.ST[j] = math.NaN()
			continue
		}
		sh.ST[j] = v / stSum * 100
	}
	sh.NonLinearity = (1 - floats.Sum(s)) * 100
	return sh
}
