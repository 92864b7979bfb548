package search

import (
	"context"

	"github.com/GoSim-25-26J-441/knapsack-heuristics/internal/knapsack"
	"github.com/GoSim-25-26J-441/knapsack-heuristics/pkg/models"
	"github.com/GoSim-25-26J-441/knapsack-heuristics/pkg/utils"
)

// RandomSearch samples independent random solutions and keeps the best feasible one
type RandomSearch struct{}

// NewRandomSearch creates a random sampling search
func NewRandomSearch() *RandomSearch {
	return &RandomSearch{}
}

func (s *RandomSearch) Name() string {
	return models.AlgorithmRandomSearch
}

// Search draws exactly `iterations` candidates. Among feasible candidates the
// first one with the highest fitness wins. With no feasible candidate (or
// iterations == 0) the result is the nil solution with NoFitness.
func (s *RandomSearch) Search(ctx context.Context, inst *models.Instance, iterations int, rng *utils.RandSource) (*Result, error) {
	if err := validateInput(inst, iterations); err != nil {
		return nil, err
	}

	result := &Result{Fitness: models.NoFitness}
	for i := 0; i < iterations; i++ {
		if i%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}

		candidate := knapsack.RandomSolution(rng, inst.Len())
		result.Stats.Evaluations++

		value, weight := knapsack.Evaluate(inst, candidate)
		if weight > inst.Capacity {
			continue
		}
		if value > result.Fitness {
			result.Solution = candidate
			result.Fitness = value
		}
	}

	return result, nil
}
