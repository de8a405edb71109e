package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/inference-sim/sensitivity-sim/sa"
	"github.com/inference-sim/sensitivity-sim/sa/experiment"
	"github.com/inference-sim/sensitivity-sim/sa/mcda"
	"github.com/inference-sim/sensitivity-sim/sa/report"
)

var (
	specPath    string // Experiment YAML
	outputPath  string // JSON report destination
	uaOutput    string // Uncertainty sequences destination
	metricsFile string // Prometheus text-format destination
)

// runOptions are the optional output files of one run.
type runOptions struct {
	output      string
	uaOutput    string
	metricsFile string
}

// sequence is one per-run output series written to the uncertainty file.
type sequence struct {
	title   string
	values  []float64
	integer bool
}

// runCmd executes a sensitivity analysis experiment
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a sensitivity analysis experiment",
	Long:  "Load an experiment YAML file, estimate first-order and total sensitivity indices, and print them with their percentage shares.",
	Run: func(cmd *cobra.Command, args []string) {
		spec, err := loadExperiment(cmd, specPath)
		if err != nil {
			logrus.Fatalf("Failed to load experiment %s: %v", specPath, err)
		}
		logrus.Infof("Starting analysis: model=%s runs=%d workers=%d seed=%d",
			spec.Model, spec.Runs, spec.Workers, spec.Seed)

		startTime := time.Now()
		opts := runOptions{output: outputPath, uaOutput: uaOutput, metricsFile: metricsFile}
		if err := runExperiment(cmd.Context(), spec, opts, os.Stdout); err != nil {
			logrus.Fatalf("Analysis failed: %v", err)
		}
		logrus.Infof("Analysis complete in %s.", time.Since(startTime))
	},
}

// runExperiment estimates the indices of every metric the experiment
// defines and writes them to w and to the requested files.
func runExperiment(ctx context.Context, spec *experiment.Spec, opts runOptions, w io.Writer) error {
	space, err := spec.FactorSpace()
	if err != nil {
		return err
	}
	reg := prometheus.NewRegistry()
	// Every metric of one experiment runs on the same radial design.
	cfg := sa.EstimatorConfig{Seed: spec.Seed, Workers: spec.Workers, Metrics: sa.NewMetrics(reg)}
	doc := report.NewDocument(spec.Seed)
	var seqs []sequence

	switch spec.Model {
	case experiment.ModelPortfolio:
		ix, err := analyze(ctx, space, sa.PortfolioModel{}, cfg, spec.Runs, "portfolio")
		if err != nil {
			return err
		}
		doc.Add(ix)
		seqs = append(seqs, sequence{title: "Portfolio Output", values: ix.Sequence})

	case experiment.ModelWeightedSum:
		m, err := spec.DecisionMatrix()
		if err != nil {
			return err
		}
		ix, err := analyze(ctx, space, mcda.NewASRMetric(m), cfg, spec.Runs, "Average Shift in Rank")
		if err != nil {
			return err
		}
		doc.Add(ix)
		seqs = append(seqs, sequence{title: "Average Shift in Rank", values: ix.Sequence})

		if spec.Winner != nil {
			metric, err := mcda.NewWinnerRankMetric(m, *spec.Winner)
			if err != nil {
				return err
			}
			label := fmt.Sprintf("Rank of alternative %s", spec.AlternativeIDs()[*spec.Winner])
			ix, err := analyze(ctx, space, metric, cfg, spec.Runs, label)
			if err != nil {
				return err
			}
			doc.Add(ix)
			seqs = append(seqs, sequence{title: "Winner Rank Robustness", values: ix.Sequence, integer: true})
		}
	}

	for _, ix := range doc.Analyses {
		if err := report.WriteIndices(w, ix); err != nil {
			return err
		}
		if err := report.WriteSummary(w, "Output", ix.Outputs); err != nil {
			return err
		}
		fmt.Fprintln(w)
	}

	if opts.uaOutput != "" {
		if err := writeSequences(opts.uaOutput, seqs); err != nil {
			return err
		}
		logrus.Infof("Uncertainty sequences written to %s", opts.uaOutput)
	}
	if opts.output != "" {
		// Constant outputs give NaN indices, which JSON cannot carry; the tables above still stand.
		if err := doc.SaveJSON(opts.output); err != nil {
			logrus.Warnf("Report not written: %v", err)
		} else {
			logrus.Infof("Report %s written to %s", doc.ID, opts.output)
		}
	}
	if opts.metricsFile != "" {
		if err := prometheus.WriteToTextfile(opts.metricsFile, reg); err != nil {
			return fmt.Errorf("writing metrics: %w", err)
		}
	}
	return nil
}

// analyze runs one estimator and labels its result.
func analyze(ctx context.Context, space sa.FactorSpace, eval sa.Evaluator, cfg sa.EstimatorConfig, n int, label string) (report.Indices, error) {
	est, err := sa.NewEstimator(space, eval, cfg)
	if err != nil {
		return report.Indices{}, err
	}
	res, err := est.Run(ctx, n)
	if err != nil {
		return report.Indices{}, fmt.Errorf("%s: %w", label, err)
	}
	return report.FromResult(label, res), nil
}

func writeSequences(path string, seqs []sequence) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating uncertainty output: %w", err)
	}
	for i, s := range seqs {
		if i > 0 {
			if _, err := fmt.Fprintln(f); err != nil {
				_ = f.Close()
				return err
			}
		}
		if err := report.WriteSequence(f, s.title, s.values, s.integer); err != nil {
			_ = f.Close()
			return err
		}
	}
	return f.Close()
}

func init() {
	runCmd.Flags().StringVar(&specPath, "spec", "", "Path to experiment YAML file")
	runCmd.Flags().StringVar(&outputPath, "output", "", "Write indices as JSON to this file")
	runCmd.Flags().StringVar(&uaOutput, "ua-output", "", "Write the per-run output sequences to this file")
	runCmd.Flags().StringVar(&metricsFile, "metrics-file", "", "Write estimator metrics in Prometheus text format to this file")
	addRunFlags(runCmd)
	_ = runCmd.MarkFlagRequired("spec")

	rootCmd.AddCommand(runCmd)
}
