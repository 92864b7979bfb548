package metrics

import (
	"github.com/GoSim-25-26J-441/knapsack-heuristics/pkg/models"
	"github.com/GoSim-25-26J-441/knapsack-heuristics/pkg/utils"
)

// Common metric names
const (
	MetricFitness       = "fitness"
	MetricElapsedMs     = "elapsed_ms"
	MetricEvaluations   = "evaluations"
	MetricRestarts      = "restarts"
	MetricClimbSteps    = "climb_steps"
	MetricStartAttempts = "start_attempts"
	MetricFailedRuns    = "failed_runs"
)

// AlgorithmLabels creates a labels map for an algorithm
func AlgorithmLabels(algorithm string) map[string]string {
	return map[string]string{
		"algorithm": algorithm,
	}
}

// RecordRunResult records the samples of one finished run under its algorithm label
func RecordRunResult(collector *Collector, res models.RunResult) {
	labels := AlgorithmLabels(res.Algorithm)

	collector.Record(MetricElapsedMs, utils.TimeToMs(res.Elapsed), labels)
	collector.Record(MetricEvaluations, float64(res.Stats.Evaluations), labels)
	if res.Failed() {
		collector.Record(MetricFailedRuns, 1, labels)
		return
	}

	collector.Record(MetricFitness, float64(res.Fitness), labels)
	if res.Stats.Restarts > 0 {
		collector.Record(MetricRestarts, float64(res.Stats.Restarts), labels)
		collector.Record(MetricClimbSteps, float64(res.Stats.ClimbSteps), labels)
		collector.Record(MetricStartAttempts, float64(res.Stats.StartAttempts), labels)
	}
}
