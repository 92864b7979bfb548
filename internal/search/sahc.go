package search

import (
	"context"
	"fmt"

	"github.com/GoSim-25-26J-441/knapsack-heuristics/internal/knapsack"
	"github.com/GoSim-25-26J-441/knapsack-heuristics/pkg/models"
	"github.com/GoSim-25-26J-441/knapsack-heuristics/pkg/utils"
)

// DefaultMaxStartAttempts bounds the sampling for a feasible starting point
const DefaultMaxStartAttempts = 10000

// HillClimber implements steepest-ascent hill climbing with random restarts
// over the single-bit-flip neighbourhood.
type HillClimber struct {
	maxStartAttempts  int
	normalizeRestarts bool
}

// NewHillClimber creates a hill climber. maxStartAttempts <= 0 selects the default.
func NewHillClimber(maxStartAttempts int) *HillClimber {
	if maxStartAttempts <= 0 {
		maxStartAttempts = DefaultMaxStartAttempts
	}
	return &HillClimber{maxStartAttempts: maxStartAttempts}
}

// WithNormalizedRestarts makes the climber perform exactly `iterations`
// restarts. By default it performs iterations+1.
func (h *HillClimber) WithNormalizedRestarts(normalize bool) *HillClimber {
	h.normalizeRestarts = normalize
	return h
}

func (h *HillClimber) Name() string {
	return models.AlgorithmSAHC
}

// Restarts returns the number of restarts performed for an iteration budget
func (h *HillClimber) Restarts(iterations int) int {
	if h.normalizeRestarts {
		return iterations
	}
	return iterations + 1
}

// Search climbs from Restarts(iterations) random feasible starting points and
// returns the best local optimum. Failing to sample a feasible start within
// the attempt budget aborts the search with ErrNoFeasibleStart.
func (h *HillClimber) Search(ctx context.Context, inst *models.Instance, iterations int, rng *utils.RandSource) (*Result, error) {
	if err := validateInput(inst, iterations); err != nil {
		return nil, err
	}

	best := &Result{Fitness: models.NoFitness}
	restarts := h.Restarts(iterations)

	for restart := 0; restart < restarts; restart++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		current, fitness, err := h.feasibleStart(inst, rng, &best.Stats)
		if err != nil {
			return nil, fmt.Errorf("restart %d: %w", restart, err)
		}

		for {
			next, nextFitness, improved := h.bestNeighbor(inst, current, fitness, &best.Stats)
			if !improved {
				break
			}
			current, fitness = next, nextFitness
			best.Stats.ClimbSteps++
		}
		best.Stats.Restarts++

		if fitness > best.Fitness {
			best.Solution = current
			best.Fitness = fitness
		}
	}

	return best, nil
}

// feasibleStart samples random solutions until one fits the capacity
func (h *HillClimber) feasibleStart(inst *models.Instance, rng *utils.RandSource, stats *models.SearchStats) (models.Solution, int, error) {
	// Even the empty knapsack is over capacity
	if inst.Capacity < 0 {
		return nil, 0, fmt.Errorf("%w: capacity %d is negative", ErrNoFeasibleStart, inst.Capacity)
	}

	for attempt := 0; attempt < h.maxStartAttempts; attempt++ {
		candidate := knapsack.RandomSolution(rng, inst.Len())
		stats.StartAttempts++
		stats.Evaluations++

		value, weight := knapsack.Evaluate(inst, candidate)
		if weight <= inst.Capacity {
			return candidate, value, nil
		}
	}

	return nil, 0, fmt.Errorf("%w: %d samples exceeded capacity %d", ErrNoFeasibleStart, h.maxStartAttempts, inst.Capacity)
}

// bestNeighbor scans the single-bit flips of current from left to right. A
// flip qualifies when it is feasible and strictly beats the best fitness seen
// so far in the scan (starting from current's fitness); each qualifying flip
// replaces the kept one. Ties never replace, so the kept neighbour is the
// lowest-index neighbour of maximum fitness.
func (h *HillClimber) bestNeighbor(inst *models.Instance, current models.Solution, fitness int, stats *models.SearchStats) (models.Solution, int, bool) {
	weight := knapsack.Fitness(current, inst.Weights)

	bestIdx := -1
	bestFitness := fitness
	for i, bit := range current {
		stats.Evaluations++

		// Flipping bit i adds the item when it is 0 and removes it when it is 1
		sign := 1 - 2*bit
		nWeight := weight + sign*inst.Weights[i]
		nFitness := fitness + sign*inst.Values[i]

		if nWeight <= inst.Capacity && nFitness > bestFitness {
			bestIdx = i
			bestFitness = nFitness
		}
	}

	if bestIdx < 0 {
		return current, fitness, false
	}
	return knapsack.Flip(current, bestIdx), bestFitness, true
}
