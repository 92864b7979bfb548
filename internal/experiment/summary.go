package experiment

import (
	"math"
	"time"

	"github.com/GoSim-25-26J-441/knapsack-heuristics/internal/metrics"
	"github.com/GoSim-25-26J-441/knapsack-heuristics/pkg/models"
	"github.com/GoSim-25-26J-441/knapsack-heuristics/pkg/utils"
)

// Comparison ranks the algorithms of an experiment by mean fitness
type Comparison struct {
	Winner         string  `json:"winner" yaml:"winner"` // "tie" when the means are equal
	RunnerUp       string  `json:"runner_up" yaml:"runner_up"`
	MeanFitnessGap float64 `json:"mean_fitness_gap" yaml:"mean_fitness_gap"`
	BestFitnessGap int     `json:"best_fitness_gap" yaml:"best_fitness_gap"`
	// ImprovementPercent is the winner's mean fitness gain over the runner-up
	ImprovementPercent float64 `json:"improvement_percent" yaml:"improvement_percent"`
}

// Tie is the Comparison winner when the top mean fitnesses are equal
const Tie = "tie"

// Summarize aggregates the runs of every algorithm in report order. Failed
// runs count towards FailedRuns and mean time but not towards fitness
// statistics; completed runs that found nothing contribute NoFitness.
func Summarize(results *models.ExperimentResults, collector *metrics.Collector) []models.AlgorithmSummary {
	summaries := make([]models.AlgorithmSummary, 0, len(results.Algorithms))
	for _, name := range results.Algorithms {
		s := SummarizeRuns(name, results.Get(name))
		if collector != nil {
			s.Counters = collector.Aggregations(metrics.AlgorithmLabels(name))
		}
		summaries = append(summaries, s)
	}
	return summaries
}

// SummarizeRuns aggregates the runs of one algorithm
func SummarizeRuns(algorithm string, runs []models.RunResult) models.AlgorithmSummary {
	summary := models.AlgorithmSummary{
		Algorithm:    algorithm,
		Runs:         len(runs),
		BestFitness:  models.NoFitness,
		WorstFitness: models.NoFitness,
		MeanFitness:  models.NoFitness,
	}

	fitness := make([]int, 0, len(runs))
	elapsed := make([]time.Duration, 0, len(runs))
	for _, r := range runs {
		elapsed = append(elapsed, r.Elapsed)
		if r.Failed() {
			summary.FailedRuns++
			continue
		}
		// Strictly greater keeps the earliest run on ties
		if len(fitness) == 0 || r.Fitness > summary.BestFitness {
			summary.BestFitness = r.Fitness
			summary.BestSolution = r.Solution.Clone()
		}
		if len(fitness) == 0 || r.Fitness < summary.WorstFitness {
			summary.WorstFitness = r.Fitness
		}
		fitness = append(fitness, r.Fitness)
	}

	if len(fitness) > 0 {
		values := utils.IntsToFloat64(fitness)
		summary.MeanFitness = utils.Mean(values)
		summary.StdDevFitness = utils.StdDev(values)
	}
	summary.MeanElapsed = utils.MeanDuration(elapsed)
	return summary
}

// Compare picks the algorithm with the highest mean fitness. It returns nil
// with fewer than two summaries.
func Compare(summaries []models.AlgorithmSummary) *Comparison {
	if len(summaries) < 2 {
		return nil
	}

	first, second := 0, 1
	if summaries[second].MeanFitness > summaries[first].MeanFitness {
		first, second = second, first
	}
	for i := 2; i < len(summaries); i++ {
		switch {
		case summaries[i].MeanFitness > summaries[first].MeanFitness:
			first, second = i, first
		case summaries[i].MeanFitness > summaries[second].MeanFitness:
			second = i
		}
	}

	top, runner := summaries[first], summaries[second]
	cmp := &Comparison{
		Winner:             top.Algorithm,
		RunnerUp:           runner.Algorithm,
		MeanFitnessGap:     top.MeanFitness - runner.MeanFitness,
		BestFitnessGap:     top.BestFitness - runner.BestFitness,
		ImprovementPercent: GetImprovementPercentage(runner.MeanFitness, top.MeanFitness),
	}
	if cmp.MeanFitnessGap == 0 {
		cmp.Winner = Tie
	}
	return cmp
}

// GetImprovementPercentage calculates the percentage gain of score2 over
// score1 for a maximisation objective. It is 0 when score1 is not positive.
func GetImprovementPercentage(score1, score2 float64) float64 {
	if score1 <= 0 {
		return 0
	}
	return utils.Round((score2-score1)/score1*100, 2)
}

// IsSignificantImprovement reports whether the winner's gain reaches thresholdPercent
func IsSignificantImprovement(cmp *Comparison, thresholdPercent float64) bool {
	if cmp == nil || cmp.Winner == Tie {
		return false
	}
	return math.Abs(cmp.ImprovementPercent) >= thresholdPercent
}
