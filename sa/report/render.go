package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"

	"github.com/inference-sim/sensitivity-sim/sa"
)

// Indices is one labelled set of sensitivity indices ready for output.
type Indices struct {
	Label   string          `json:"label"`
	Factors []string        `json:"factors"`
	N       int             `json:"n"`
	S       []float64       `json:"s"`
	ST      []float64       `json:"st"`
	Shares  Shares          `json:"shares"`
	Outputs SequenceSummary `json:"outputs"`
	// Sequence is the per-run output at the A sample, kept for uncertainty analysis.
	Sequence []float64 `json:"-"`
}

// FromResult labels an estimator result.
func FromResult(label string, r *sa.Result) Indices {
	seq := r.SampleA()
	return Indices{
		Label:    label,
		Factors:  r.Factors,
		N:        r.N,
		S:        r.S,
		ST:       r.ST,
		Shares:   ComputeShares(r.S, r.ST),
		Outputs:  Summarize(seq),
		Sequence: seq,
	}
}

// Document groups every analysis of one invocation under a single id.
type Document struct {
	ID       uuid.UUID `json:"id"`
	Seed     int64     `json:"seed"`
	Analyses []Indices `json:"analyses"`
}

// NewDocument starts a document with a fresh random id.
func NewDocument(seed int64) *Document {
	return &Document{ID: uuid.New(), Seed: seed}
}

// Add appends one analysis.
func (d *Document) Add(ix Indices) {
	d.Analyses = append(d.Analyses, ix)
}

// WriteIndices renders the raw indices and their percentage shares.
func WriteIndices(w io.Writer, ix Indices) error {
	var b strings.Builder
	fmt.Fprintf(&b, "GSA: %s (N = %d)\n", ix.Label, ix.N)
	b.WriteString("Factor\tS\tST\n")
	for j, name := range ix.Factors {
		fmt.Fprintf(&b, "%s\t%.3f\t%.3f\n", name, ix.S[j], ix.ST[j])
	}
	b.WriteString("\nFactor\t%S\t%ST\n")
	for j, name := range ix.Factors {
		fmt.Fprintf(&b, "%s\t%.1f\t%.1f\n", name, ix.Shares.S[j], ix.Shares.ST[j])
	}
	fmt.Fprintf(&b, "NONL\t%.1f\n", ix.Shares.NonLinearity)
	_, err := io.WriteString(w, b.String())
	return err
}

// WriteComparison renders computed indices next to reference values.
func WriteComparison(w io.Writer, ix Indices, refS, refST []float64) error {
	var b strings.Builder
	b.WriteString("\t" + strings.Join(ix.Factors, "\t") + "\n")
	row := func(name string, vals []float64) {
		b.WriteString(name)
		sum := 0.0
		for _, v := range vals {
			fmt.Fprintf(&b, "\t%.2f", v)
			sum += v
		}
		fmt.Fprintf(&b, "\tsum: %.2f\n", sum)
	}
	row("S ref", refS)
	row("S", ix.S)
	row("ST ref", refST)
	row("ST", ix.ST)
	_, err := io.WriteString(w, b.String())
	return err
}

// WriteSequence writes a titled, space-separated per-run sequence.
// Integer-valued sequences (winner ranks) print without decimals.
func WriteSequence(w io.Writer, title string, seq []float64, integer bool) error {
	parts := make([]string, len(seq))
	for i, v := range seq {
		if integer {
			parts[i] = fmt.Sprintf("%d", int(v))
		} else {
			parts[i] = fmt.Sprintf("%.2f", v)
		}
	}
	_, err := fmt.Fprintf(w, "%s\n%s\n", title, strings.Join(parts, " "))
	return err
}

// WriteSummary renders a SequenceSummary on one line.
func WriteSummary(w io.Writer, title string, s SequenceSummary) error {
	_, err := fmt.Fprintf(w, "%s: n=%d min=%.3f max=%.3f mean=%.3f std=%.3f\n",
		title, s.N, s.Min, s.Max, s.Mean, s.StdDev)
	return err
}

// SaveJSON writes the document as indented JSON to path.
// Non-finite indices (constant model) cannot be encoded and return an error.
func (d *Document) SaveJSON(path string) error {
	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding report %s: %w", d.ID, err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	return nil
}
