package cmd

import (
	"context"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/inference-sim/sensitivity-sim/sa/experiment"
	"github.com/inference-sim/sensitivity-sim/sa/mcda"
	"github.com/inference-sim/sensitivity-sim/sa/report"
)

var uncertaintySpecPath string

var uncertaintyCmd = &cobra.Command{
	Use:   "uncertainty",
	Short: "Monte Carlo uncertainty analysis of a decision",
	Long:  "Draw criterion weights from their ranges, rescale them to sum to 1, and summarise the scores and ranks every alternative obtains.",
	Run: func(cmd *cobra.Command, args []string) {
		spec, err := loadExperiment(cmd, uncertaintySpecPath)
		if err != nil {
			logrus.Fatalf("Failed to load experiment %s: %v", uncertaintySpecPath, err)
		}
		if err := runUncertainty(cmd.Context(), spec, os.Stdout); err != nil {
			logrus.Fatalf("Uncertainty analysis failed: %v", err)
		}
	},
}

func runUncertainty(ctx context.Context, spec *experiment.Spec, w io.Writer) error {
	if err := requireDecision(spec); err != nil {
		return err
	}
	m, err := spec.DecisionMatrix()
	if err != nil {
		return err
	}
	space, err := spec.FactorSpace()
	if err != nil {
		return err
	}
	res, err := mcda.UncertaintyAnalysis(ctx, m, space, spec.Runs, spec.Seed)
	if err != nil {
		return err
	}
	return report.WriteUncertainty(w, spec.AlternativeIDs(), res)
}

func init() {
	uncertaintyCmd.Flags().StringVar(&uncertaintySpecPath, "spec", "", "Path to experiment YAML file")
	addRunFlags(uncertaintyCmd)
	_ = uncertaintyCmd.MarkFlagRequired("spec")

	rootCmd.AddCommand(uncertaintyCmd)
}
