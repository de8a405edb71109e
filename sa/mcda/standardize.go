package mcda

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/inference-sim/sensitivity-sim/sa"
)

// Direction tells whether larger raw values are better (benefit) or worse (cost).
type Direction string

const (
	Benefit Direction = "benefit"
	Cost    Direction = "cost"
)

// Method selects the standardization formula.
type Method string

const (
	// Ratio divides by the maximum (benefit) or divides the minimum by the value (cost).
	Ratio Method = "ratio"
	// ScoreRange maps [min, max] linearly onto [0, 1], reversed for cost.
	ScoreRange Method = "score_range"
)

// Standardize rescales one raw criterion so that higher is better and
// values fall in [0, 1] for non-negative inputs.
//
//	benefit, ratio:       x / max
//	benefit, score_range: (x − min) / (max − min)
//	cost, ratio:          min / x
//	cost, score_range:    (max − x) / (max − min)
func Standardize(values []float64, dir Direction, method Method) ([]float64, error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("%w: no values to standardize", sa.ErrDimension)
	}
	lo, hi := floats.Min(values), floats.Max(values)
	out := make([]float64, len(values))

	switch method {
	case Ratio:
	case ScoreRange:
		if hi == lo {
			return nil, fmt.Errorf("%w: score range standardization of a constant criterion", sa.ErrConfiguration)
		}
	default:
		return nil, fmt.Errorf("%w: unknown standardization method %q", sa.ErrConfiguration, method)
	}

	switch dir {
	case Benefit:
		for i, x := range values {
			if method == Ratio {
				out[i] = x / hi
			} else {
				out[i] = (x - lo) / (hi - lo)
			}
		}
	case Cost:
		for i, x := range values {
			if method == Ratio {
				out[i] = lo / x
			} else {
				out[i] = (hi - x) / (hi - lo)
			}
		}
	default:
		return nil, fmt.Errorf("%w: unknown direction %q", sa.ErrConfiguration, dir)
	}
	return out, nil
}
