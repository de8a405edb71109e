package mcda

import (
	"fmt"
	"sort"

	"github.com/inference-sim/sensitivity-sim/sa"
)

// Rank orders alternatives from best to worst: rank 1 goes to the largest
// score, rank n to the smallest. Equal scores keep their input order and
// still get distinct ranks, so Rank([1, 1, 2]) is [2, 3, 1].
func Rank(scores []float64) []int {
	order := make([]int, len(scores))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return scores[order[a]] > scores[order[b]]
	})
	ranks := make([]int, len(scores))
	for pos, alt := range order {
		ranks[alt] = pos + 1
	}
	return ranks
}

// AverageShift returns the Average Shift in Ranks between two rankings of
// the same alternatives: Σ|a_i − b_i| / n.
func AverageShift(a, b []int) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("%w: rankings of %d and %d alternatives", sa.ErrDimension, len(a), len(b))
	}
	if len(a) == 0 {
		return 0, fmt.Errorf("%w: empty rankings", sa.ErrDimension)
	}
	total := 0
	for i := range a {
		d := a[i] - b[i]
		if d < 0 {
			d = -d
		}
		total += d
	}
	return float64(total) / float64(len(a)), nil
}

// RankChange returns base_i − ref_i for every alternative.
func RankChange(base, ref []int) ([]int, error) {
	if len(base) != len(ref) {
		return nil, fmt.Errorf("%w: rankings of %d and %d alternatives", sa.ErrDimension, len(base), len(ref))
	}
	out := make([]int, len(base))
	for i := range base {
		out[i] = base[i] - ref[i]
	}
	return out, nil
}
