package main

import (
	"github.com/spf13/cobra"

	"github.com/GoSim-25-26J-441/knapsack-heuristics/pkg/config"
)

type runOptions struct {
	instance          string
	iterations        int
	runs              int
	seed              int64
	parallel          int
	maxStartAttempts  int
	normalizeRestarts bool
	output            string
	noColor           bool
}

func newRunCmd(root *rootOptions) *cobra.Command {
	opts := &runOptions{}

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run a benchmark experiment",
		Long: `Runs random search and hill climbing for the configured number of runs
and prints the report. Flags override values from --config.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.apply(cmd, root.cfg)
			return runBenchmark(cmd.Context(), root.cfg, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&opts.instance, "instance", "", "Instance file path (empty uses the built-in instance)")
	cmd.Flags().IntVar(&opts.iterations, "iterations", config.DefaultIterations, "Iteration budget per algorithm and run")
	cmd.Flags().IntVar(&opts.runs, "runs", config.DefaultRuns, "Number of independent runs")
	cmd.Flags().Int64Var(&opts.seed, "seed", 0, "Base random seed (0 = time based)")
	cmd.Flags().IntVar(&opts.parallel, "parallel", config.DefaultParallelism, "Maximum concurrent algorithm runs")
	cmd.Flags().IntVar(&opts.maxStartAttempts, "max-start-attempts", config.DefaultMaxStartAttempts, "Samples allowed when looking for a feasible hill-climbing start")
	cmd.Flags().BoolVar(&opts.normalizeRestarts, "normalize-restarts", false, "Run exactly --iterations hill-climbing restarts instead of iterations+1")
	cmd.Flags().StringVar(&opts.output, "output", config.OutputText, "Report format (text, json, yaml)")
	cmd.Flags().BoolVar(&opts.noColor, "no-color", false, "Disable styled text output")

	return cmd
}

// apply copies explicitly set flags over the loaded configuration
func (o *runOptions) apply(cmd *cobra.Command, cfg *config.ExperimentConfig) {
	flags := cmd.Flags()
	if flags.Changed("instance") {
		cfg.Instance = o.instance
	}
	if flags.Changed("iterations") {
		cfg.Iterations = o.iterations
	}
	if flags.Changed("runs") {
		cfg.Runs = o.runs
	}
	if flags.Changed("seed") {
		cfg.Seed = o.seed
	}
	if flags.Changed("parallel") {
		cfg.Parallelism = o.parallel
	}
	if flags.Changed("max-start-attempts") {
		cfg.Search.MaxStartAttempts = o.maxStartAttempts
	}
	if flags.Changed("normalize-restarts") {
		cfg.Search.NormalizeRestarts = o.normalizeRestarts
	}
	if flags.Changed("output") {
		cfg.Output = o.output
	}
	if o.noColor {
		cfg.Color = false
	}
}
