package knapsack

import (
	"github.com/GoSim-25-26J-441/knapsack-heuristics/pkg/models"
	"github.com/GoSim-25-26J-441/knapsack-heuristics/pkg/utils"
)

// Fitness returns the dot product of the solution with coeffs. Passing the
// value vector yields the knapsack value, passing the weight vector the load.
func Fitness(sol models.Solution, coeffs []int) int {
	total := 0
	for i, c := range coeffs {
		total += sol[i] * c
	}
	return total
}

// IsFeasible reports whether the packed weight stays within capacity.
// A load equal to capacity is feasible.
func IsFeasible(sol models.Solution, weights []int, capacity int) bool {
	return Fitness(sol, weights) <= capacity
}

// RandomSolution draws each bit independently and uniformly from {0, 1}.
func RandomSolution(rng *utils.RandSource, length int) models.Solution {
	sol := make(models.Solution, length)
	for i := range sol {
		sol[i] = rng.Bit()
	}
	return sol
}

// Flip returns a copy of sol with bit position inverted. sol is not modified.
func Flip(sol models.Solution, position int) models.Solution {
	next := sol.Clone()
	next[position] = 1 - next[position]
	return next
}

// Evaluate returns value and weight of sol against the instance in one pass.
func Evaluate(in *models.Instance, sol models.Solution) (value, weight int) {
	for i, bit := range sol {
		if bit == 1 {
			value += in.Values[i]
			weight += in.Weights[i]
		}
	}
	return value, weight
}
