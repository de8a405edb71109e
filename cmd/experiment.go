package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/inference-sim/sensitivity-sim/sa"
	"github.com/inference-sim/sensitivity-sim/sa/experiment"
)

// loadExperiment reads and validates an experiment file. Flags the user set
// explicitly take precedence over the file's seed, runs and workers.
func loadExperiment(cmd *cobra.Command, path string) (*experiment.Spec, error) {
	spec, err := experiment.Load(path)
	if err != nil {
		return nil, err
	}
	applyOverrides(cmd, spec)
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	return spec, nil
}

func applyOverrides(cmd *cobra.Command, spec *experiment.Spec) {
	if cmd.Flags().Changed("seed") {
		spec.Seed = seed
	}
	if cmd.Flags().Changed("runs") {
		spec.Runs = runs
	}
	if cmd.Flags().Changed("workers") {
		spec.Workers = workers
	}
}

// requireDecision rejects experiments without a decision matrix.
func requireDecision(spec *experiment.Spec) error {
	if spec.Model != experiment.ModelWeightedSum {
		return fmt.Errorf("%w: model %q has no decision matrix; use model: weighted_sum", sa.ErrConfiguration, spec.Model)
	}
	return nil
}
