package experiment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/GoSim-25-26J-441/knapsack-heuristics/internal/knapsack"
	"github.com/GoSim-25-26J-441/knapsack-heuristics/internal/metrics"
	"github.com/GoSim-25-26J-441/knapsack-heuristics/internal/search"
	"github.com/GoSim-25-26J-441/knapsack-heuristics/pkg/logger"
	"github.com/GoSim-25-26J-441/knapsack-heuristics/pkg/models"
	"github.com/GoSim-25-26J-441/knapsack-heuristics/pkg/utils"
)

// Harness runs every configured algorithm once per run and collects the results
type Harness struct {
	algorithms      []search.Algorithm
	seed            int64
	maxParallelRuns int
	collector       *metrics.Collector
	progress        func(models.RunResult)
}

// ExperimentResult contains the results of one experiment
type ExperimentResult struct {
	ID            string
	Seed          int64
	Iterations    int
	NumRuns       int
	Results       *models.ExperimentResults
	Summaries     []models.AlgorithmSummary
	Comparison    *Comparison
	CompletedRuns int
	FailedRuns    int
	StartedAt     time.Time
	Duration      time.Duration
}

// task is one algorithm invocation inside one run
type task struct {
	run    int
	algIdx int
	alg    search.Algorithm
	seed   int64
	runID  string
}

// NewHarness creates a harness. A zero seed is replaced by a time based one;
// every (run, algorithm) pair derives its own generator from the seed.
func NewHarness(algorithms []search.Algorithm, seed int64) *Harness {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Harness{
		algorithms:      algorithms,
		seed:            seed,
		maxParallelRuns: 1,
		collector:       metrics.NewCollector(),
	}
}

// NewDefaultHarness creates a harness comparing random search and SAHC
func NewDefaultHarness(opts search.Options, seed int64) (*Harness, error) {
	algs := make([]search.Algorithm, 0, len(search.Names()))
	for _, name := range search.Names() {
		alg, err := search.New(name, opts)
		if err != nil {
			return nil, err
		}
		algs = append(algs, alg)
	}
	return NewHarness(algs, seed), nil
}

// WithMaxParallelRuns sets how many algorithm invocations may run at once
func (h *Harness) WithMaxParallelRuns(n int) *Harness {
	if n < 1 {
		n = 1
	}
	h.maxParallelRuns = n
	return h
}

// WithCollector replaces the metrics collector. It is cleared at the start
// of every experiment.
func (h *Harness) WithCollector(c *metrics.Collector) *Harness {
	if c != nil {
		h.collector = c
	}
	return h
}

// WithProgressReporter registers a callback invoked after every finished
// invocation. With parallel runs it may be called from several goroutines.
func (h *Harness) WithProgressReporter(fn func(models.RunResult)) *Harness {
	h.progress = fn
	return h
}

// Seed returns the base seed of the harness
func (h *Harness) Seed() int64 {
	return h.seed
}

// Collector returns the metrics collector
func (h *Harness) Collector() *metrics.Collector {
	return h.collector
}

// RunExperiment performs numRuns independent runs of every algorithm against
// inst. A run that fails (for example without a feasible starting point) is
// recorded as failed and does not stop the experiment; cancelling ctx does.
func (h *Harness) RunExperiment(ctx context.Context, inst *models.Instance, iterations, numRuns int) (*ExperimentResult, error) {
	if len(h.algorithms) == 0 {
		return nil, ErrNoAlgorithms
	}
	if numRuns < 0 {
		return nil, ErrInvalidRuns
	}
	if iterations < 0 {
		return nil, search.ErrInvalidIterations
	}
	if inst == nil {
		return nil, fmt.Errorf("%w: instance is required", knapsack.ErrMalformedInstance)
	}
	if err := inst.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", knapsack.ErrMalformedInstance, err)
	}

	id := utils.GenerateExperimentID()
	log := logger.With("experiment_id", id)
	log.Info("experiment started",
		"items", inst.Len(),
		"capacity", inst.Capacity,
		"iterations", iterations,
		"runs", numRuns,
		"seed", h.seed,
		"parallelism", h.maxParallelRuns,
	)

	names := make([]string, len(h.algorithms))
	for i, alg := range h.algorithms {
		names[i] = alg.Name()
	}

	// slots[algIdx][run]
	slots := make([][]models.RunResult, len(h.algorithms))
	for i := range slots {
		slots[i] = make([]models.RunResult, numRuns)
	}

	tasks := make([]task, 0, numRuns*len(h.algorithms))
	for run := 0; run < numRuns; run++ {
		runID := utils.GenerateRunID(id, run+1)
		for algIdx, alg := range h.algorithms {
			tasks = append(tasks, task{
				run:    run,
				algIdx: algIdx,
				alg:    alg,
				seed:   utils.DeriveSeed(h.seed, run, algIdx),
				runID:  runID,
			})
		}
	}

	// Each experiment starts from an empty collector
	h.collector.Clear()
	started := time.Now()

	var err error
	if h.maxParallelRuns == 1 {
		err = h.runSequential(ctx, inst, iterations, tasks, slots)
	} else {
		err = h.runParallel(ctx, inst, iterations, tasks, slots)
	}

	h.collector.Stop()
	if err != nil {
		log.Warn("experiment aborted", "error", err)
		return nil, err
	}

	results := models.NewExperimentResults(names...)
	completed, failed := 0, 0
	for algIdx, name := range names {
		results.Runs[name] = slots[algIdx]
		for _, r := range slots[algIdx] {
			if r.Failed() {
				failed++
			} else {
				completed++
			}
		}
	}

	summaries := Summarize(results, h.collector)
	out := &ExperimentResult{
		ID:            id,
		Seed:          h.seed,
		Iterations:    iterations,
		NumRuns:       numRuns,
		Results:       results,
		Summaries:     summaries,
		Comparison:    Compare(summaries),
		CompletedRuns: completed,
		FailedRuns:    failed,
		StartedAt:     started,
		Duration:      h.collector.Duration(),
	}

	log.Info("experiment finished",
		"completed", completed,
		"failed", failed,
		"duration", utils.FormatDuration(out.Duration),
	)
	log.Debug("metrics collected", "metrics", h.collector.GetMetricNames())
	return out, nil
}

// runSequential executes tasks in order: each run invokes every algorithm in turn
func (h *Harness) runSequential(ctx context.Context, inst *models.Instance, iterations int, tasks []task, slots [][]models.RunResult) error {
	for _, t := range tasks {
		res, err := h.execute(ctx, inst, iterations, t)
		if err != nil {
			return err
		}
		slots[t.algIdx][t.run] = res
	}
	return nil
}

// execute runs one task with its own random source and times it
func (h *Harness) execute(ctx context.Context, inst *models.Instance, iterations int, t task) (models.RunResult, error) {
	if err := ctx.Err(); err != nil {
		return models.RunResult{}, fmt.Errorf("experiment cancelled: %w", err)
	}

	rng := utils.NewRandSource(t.seed)
	start := time.Now()
	found, err := t.alg.Search(ctx, inst, iterations, rng)
	elapsed := time.Since(start)

	res := models.RunResult{
		Run:       t.run + 1,
		Algorithm: t.alg.Name(),
		Fitness:   models.NoFitness,
		Elapsed:   elapsed,
	}

	switch {
	case err != nil && (errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)):
		return models.RunResult{}, fmt.Errorf("experiment cancelled: %w", err)
	case err != nil:
		res.Status = models.RunStatusFailed
		res.Error = err.Error()
		logger.Warn("run failed", "run_id", t.runID, "algorithm", res.Algorithm, "error", err)
	default:
		res.Status = models.RunStatusCompleted
		res.Solution = found.Solution
		res.Fitness = found.Fitness
		res.Stats = found.Stats
		if found.Found() {
			res.Weight = knapsack.Fitness(found.Solution, inst.Weights)
		}
		logger.Debug("run finished",
			"run_id", t.runID,
			"algorithm", res.Algorithm,
			"fitness", res.Fitness,
			"elapsed", utils.FormatDuration(elapsed),
		)
	}

	metrics.RecordRunResult(h.collector, res)
	if h.progress != nil {
		h.progress(res)
	}
	return res, nil
}
