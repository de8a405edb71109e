package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/inference-sim/sensitivity-sim/sa"
	"github.com/inference-sim/sensitivity-sim/sa/report"
)

var portfolioRuns int // Monte Carlo runs for the portfolio check

var portfolioCmd = &cobra.Command{
	Use:   "portfolio",
	Short: "Check the estimator against the published portfolio indices",
	Long:  "Estimate the indices of the six-factor portfolio model Y = cs·ps + ct·pt + cj·pj and print them next to the published reference values.",
	Run: func(cmd *cobra.Command, args []string) {
		if err := runPortfolio(cmd.Context(), seed, portfolioRuns, workers, os.Stdout); err != nil {
			logrus.Fatalf("Portfolio analysis failed: %v", err)
		}
	},
}

func runPortfolio(ctx context.Context, seed int64, n, workers int, w io.Writer) error {
	space, err := sa.NewFactorSpace(sa.PortfolioFactors())
	if err != nil {
		return err
	}
	ix, err := analyze(ctx, space, sa.PortfolioModel{}, sa.EstimatorConfig{Seed: seed, Workers: workers}, n, "portfolio")
	if err != nil {
		return err
	}
	if err := report.WriteIndices(w, ix); err != nil {
		return err
	}
	fmt.Fprintln(w)
	refS, refST := sa.PortfolioReference()
	return report.WriteComparison(w, ix, refS, refST)
}

func init() {
	portfolioCmd.Flags().IntVar(&portfolioRuns, "runs", 2500, "Number of Monte Carlo runs N")
	portfolioCmd.Flags().Int64Var(&seed, "seed", 42, "Master seed")
	portfolioCmd.Flags().IntVar(&workers, "workers", 1, "Concurrent runs")

	rootCmd.AddCommand(portfolioCmd)
}
