package main

import (
	"github.com/spf13/cobra"

	"github.com/GoSim-25-26J-441/knapsack-heuristics/pkg/config"
	"github.com/GoSim-25-26J-441/knapsack-heuristics/pkg/logger"
)

// rootOptions holds the persistent flags and the configuration they resolve to
type rootOptions struct {
	configPath string
	logLevel   string
	logFormat  string

	cfg *config.ExperimentConfig
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "knapsack",
		Short: "Benchmark random search against hill climbing on 0/1 knapsack instances",
		Long: `knapsack runs random search and steepest-ascent hill climbing with
random restarts on a 0/1 knapsack instance, repeats both for a number of
independent runs and reports per-run results and per-algorithm statistics.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "Experiment config file (YAML)")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	cmd.PersistentFlags().StringVar(&opts.logFormat, "log-format", "text", "Log format (text, json)")

	cmd.AddCommand(newRunCmd(opts), newInteractiveCmd(opts), newVersionCmd())
	return cmd
}

// setup loads the config file, applies the logging flags and installs the logger.
// Logs go to stderr so the report on stdout stays machine readable.
func (o *rootOptions) setup(cmd *cobra.Command) error {
	cfg := config.DefaultConfig()
	if o.configPath != "" {
		loaded, err := config.LoadConfig(o.configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.LogLevel = o.logLevel
	}
	if flags.Changed("log-format") {
		cfg.LogFormat = o.logFormat
	}

	log, err := logger.NewWithFormat(cfg.LogFormat, cfg.LogLevel, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	logger.SetDefault(log)

	o.cfg = cfg
	return nil
}
