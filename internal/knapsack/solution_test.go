package knapsack

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GoSim-25-26J-441/knapsack-heuristics/pkg/models"
	"github.com/GoSim-25-26J-441/knapsack-heuristics/pkg/utils"
)

func TestFitness(t *testing.T) {
	sol := models.Solution{1, 0, 1, 1, 0}
	assert.Equal(t, 10+30+40, Fitness(sol, []int{10, 20, 30, 40, 50}))
	assert.Equal(t, 1+3+4, Fitness(sol, []int{1, 2, 3, 4, 5}))
	assert.Equal(t, 0, Fitness(models.Solution{0, 0}, []int{7, 9}))
}

func TestIsFeasibleBoundary(t *testing.T) {
	weights := []int{1, 2, 3, 4, 5}
	cases := []struct {
		name     string
		sol      models.Solution
		capacity int
		want     bool
	}{
		{"Below", models.Solution{1, 1, 0, 0, 0}, 10, true},
		{"Equal", models.Solution{1, 0, 0, 1, 1}, 10, true},
		{"Above", models.Solution{0, 0, 1, 1, 1}, 10, false},
		{"EmptyAtZero", models.Solution{0, 0, 0, 0, 0}, 0, true},
		{"EmptyNegative", models.Solution{0, 0, 0, 0, 0}, -1, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, IsFeasible(tc.sol, weights, tc.capacity))
		})
	}
}

func TestRandomSolution(t *testing.T) {
	rng := utils.NewRandSource(7)
	sol := RandomSolution(rng, 64)
	require.Len(t, sol, 64)

	ones := 0
	for _, bit := range sol {
		require.Contains(t, []int{0, 1}, bit)
		ones += bit
	}
	assert.Greater(t, ones, 0)
	assert.Less(t, ones, 64)

	again := RandomSolution(utils.NewRandSource(7), 64)
	assert.Equal(t, sol, again, "same seed should give the same solution")
}

func TestFlipDoesNotMutate(t *testing.T) {
	orig := models.Solution{0, 1, 0}
	flipped := Flip(orig, 0)

	assert.Equal(t, models.Solution{0, 1, 0}, orig)
	assert.Equal(t, models.Solution{1, 1, 0}, flipped)
}

func TestFlipInvolution(t *testing.T) {
	rng := utils.NewRandSource(99)
	for trial := 0; trial < 50; trial++ {
		sol := RandomSolution(rng, 12)
		for i := range sol {
			assert.Equal(t, sol, Flip(Flip(sol, i), i))
		}
	}
}

func TestFeasibleWeightWithinCapacity(t *testing.T) {
	inst := DefaultInstance()
	rng := utils.NewRandSource(3)
	for trial := 0; trial < 200; trial++ {
		sol := RandomSolution(rng, inst.Len())
		if IsFeasible(sol, inst.Weights, inst.Capacity) {
			assert.LessOrEqual(t, Fitness(sol, inst.Weights), inst.Capacity)
		}
	}
}

func TestEvaluate(t *testing.T) {
	inst := DefaultInstance()
	value, weight := Evaluate(inst, models.Solution{0, 1, 0, 1, 0})
	assert.Equal(t, 60, value)
	assert.Equal(t, 6, weight)
}
