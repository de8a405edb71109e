package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/inference-sim/sensitivity-sim/sa/mcda"
)

// CorrelationPair is the Pearson test between two named criteria.
type CorrelationPair struct {
	A, B string
	mcda.Correlation
}

// WriteUncertainty renders one row per alternative of an uncertainty analysis.
func WriteUncertainty(w io.Writer, ids []string, res *mcda.UncertaintyResult) error {
	var b strings.Builder
	fmt.Fprintf(&b, "Uncertainty analysis (N = %d)\n", res.N)
	b.WriteString("Alternative\tAvgScore\tAvgRank\tMinRank\tMaxRank\tRankStd\n")
	for i, st := range res.Alternatives {
		fmt.Fprintf(&b, "%s\t%.3f\t%.2f\t%d\t%d\t%.2f\n",
			ids[i], st.AvgScore, st.AvgRank, st.MinRank, st.MaxRank, st.RankStdDev)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// WriteWeightComparison renders scores and ranks under two weightings.
func WriteWeightComparison(w io.Writer, ids []string, c *mcda.Comparison) error {
	var b strings.Builder
	fmt.Fprintf(&b, "Base weights: %s\n", formatFloats(c.BaseWeights))
	fmt.Fprintf(&b, "Reference weights: %s\n", formatFloats(c.RefWeights))
	b.WriteString("Alternative\tBaseScore\tBaseRank\tRefScore\tRefRank\tChange\n")
	for i := range ids {
		fmt.Fprintf(&b, "%s\t%.3f\t%d\t%.3f\t%d\t%+d\n",
			ids[i], c.BaseScores[i], c.BaseRanks[i], c.RefScores[i], c.RefRanks[i], c.RankChange[i])
	}
	fmt.Fprintf(&b, "ASR\t%.3f\n", c.ASR)
	_, err := io.WriteString(w, b.String())
	return err
}

// WriteCorrelations renders one line per criterion pair.
func WriteCorrelations(w io.Writer, pairs []CorrelationPair) error {
	var b strings.Builder
	b.WriteString("Criteria\tr\tt\tp\tSignificance\n")
	for _, p := range pairs {
		fmt.Fprintf(&b, "%s/%s\t%.3f\t%.3f\t%.4f\t%s\n", p.A, p.B, p.R, p.T, p.P, p.Significance)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func formatFloats(vals []float64) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = fmt.Sprintf("%.3f", v)
	}
	return strings.Join(parts, ", ")
}
