package cmd

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/inference-sim/sensitivity-sim/sa/experiment"
	"github.com/inference-sim/sensitivity-sim/sa/mcda"
	"github.com/inference-sim/sensitivity-sim/sa/report"
)

var correlateSpecPath string

var correlateCmd = &cobra.Command{
	Use:   "correlate",
	Short: "Pearson correlation between every pair of criteria",
	Run: func(cmd *cobra.Command, args []string) {
		spec, err := experiment.Load(correlateSpecPath)
		if err != nil {
			logrus.Fatalf("Failed to load experiment %s: %v", correlateSpecPath, err)
		}
		if err := spec.Validate(); err != nil {
			logrus.Fatalf("Invalid experiment %s: %v", correlateSpecPath, err)
		}
		if err := runCorrelate(spec, os.Stdout); err != nil {
			logrus.Fatalf("Correlation failed: %v", err)
		}
	},
}

func runCorrelate(spec *experiment.Spec, w io.Writer) error {
	if err := requireDecision(spec); err != nil {
		return err
	}
	m, err := spec.DecisionMatrix()
	if err != nil {
		return err
	}
	names := spec.CriterionNames()
	var pairs []report.CorrelationPair
	for a := 0; a < m.Criteria(); a++ {
		for b := a + 1; b < m.Criteria(); b++ {
			c, err := mcda.Pearson(m.Criterion(a), m.Criterion(b))
			if err != nil {
				return err
			}
			pairs = append(pairs, report.CorrelationPair{A: names[a], B: names[b], Correlation: *c})
		}
	}
	return report.WriteCorrelations(w, pairs)
}

func init() {
	correlateCmd.Flags().StringVar(&correlateSpecPath, "spec", "", "Path to experiment YAML file")
	_ = correlateCmd.MarkFlagRequired("spec")

	rootCmd.AddCommand(correlateCmd)
}
