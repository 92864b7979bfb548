package main

import (
	"context"
	"io"
	"sync/atomic"

	"github.com/GoSim-25-26J-441/knapsack-heuristics/internal/experiment"
	"github.com/GoSim-25-26J-441/knapsack-heuristics/internal/knapsack"
	"github.com/GoSim-25-26J-441/knapsack-heuristics/internal/report"
	"github.com/GoSim-25-26J-441/knapsack-heuristics/internal/search"
	"github.com/GoSim-25-26J-441/knapsack-heuristics/pkg/config"
	"github.com/GoSim-25-26J-441/knapsack-heuristics/pkg/logger"
	"github.com/GoSim-25-26J-441/knapsack-heuristics/pkg/models"
)

// loadInstance reads the configured instance file, or returns the built-in
// instance when no path is set
func loadInstance(path string) (*models.Instance, error) {
	if path == "" {
		return knapsack.DefaultInstance(), nil
	}
	return knapsack.LoadInstance(path)
}

// runBenchmark executes one experiment described by cfg and writes its report to out
func runBenchmark(ctx context.Context, cfg *config.ExperimentConfig, out io.Writer) error {
	if err := config.Validate(cfg); err != nil {
		return err
	}

	inst, err := loadInstance(cfg.Instance)
	if err != nil {
		return err
	}

	harness, err := experiment.NewDefaultHarness(search.Options{
		MaxStartAttempts:  cfg.Search.MaxStartAttempts,
		NormalizeRestarts: cfg.Search.NormalizeRestarts,
	}, cfg.Seed)
	if err != nil {
		return err
	}
	total := cfg.Runs * len(search.Names())
	var done atomic.Int64
	harness.
		WithMaxParallelRuns(cfg.Parallelism).
		WithProgressReporter(func(r models.RunResult) {
			logger.Info("run progress",
				"run", r.Run,
				"algorithm", r.Algorithm,
				"status", r.Status,
				"fitness", r.Fitness,
				"done", done.Add(1),
				"total", total,
			)
		})

	res, err := harness.RunExperiment(ctx, inst, cfg.Iterations, cfg.Runs)
	if err != nil {
		return err
	}

	rep := report.New(res, inst, cfg.Instance, cfg, report.CollectSystemInfo())
	return report.Write(out, rep, cfg.Output, cfg.Color)
}
