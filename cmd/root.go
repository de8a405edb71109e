package cmd

import (
	"context"
	"os"
	"os/signal"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	logLevel string // Log verbosity level

	// Overrides for the experiment file, applied only when set on the command line
	seed    int64 // Master seed of the analysis
	runs    int   // Monte Carlo runs N
	workers int   // Concurrent runs
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "sensitivity-sim",
	Short: "Variance-based global sensitivity analysis with the radial Monte Carlo design",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)
	},
}

// Execute runs the CLI root command. An interrupt cancels the running analysis.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

// addRunFlags registers the experiment override flags on c.
func addRunFlags(c *cobra.Command) {
	c.Flags().Int64Var(&seed, "seed", 42, "Master seed (overrides the experiment file)")
	c.Flags().IntVar(&runs, "runs", 1000, "Number of Monte Carlo runs N (overrides the experiment file)")
	c.Flags().IntVar(&workers, "workers", 1, "Concurrent runs (overrides the experiment file)")
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "warn", "Log level (trace, debug, info, warn, error, fatal, panic)")
}
