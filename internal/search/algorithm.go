package search

import (
	"context"

	"github.com/GoSim-25-26J-441/knapsack-heuristics/pkg/models"
	"github.com/GoSim-25-26J-441/knapsack-heuristics/pkg/utils"
)

// Algorithm is a heuristic that searches an instance for a good feasible solution
type Algorithm interface {
	// Name returns the key the algorithm's runs are reported under
	Name() string

	// Search runs the heuristic with the given iteration budget. All
	// randomness comes from rng. A search that finds no feasible solution
	// returns a Result with a nil Solution and NoFitness, not an error.
	Search(ctx context.Context, inst *models.Instance, iterations int, rng *utils.RandSource) (*Result, error)
}

// Result is the best solution an algorithm found in one invocation
type Result struct {
	Solution models.Solution
	Fitness  int
	Stats    models.SearchStats
}

// Found reports whether a feasible solution was found
func (r *Result) Found() bool {
	return r.Solution != nil
}

// Options configures the algorithms built by New
type Options struct {
	MaxStartAttempts  int
	NormalizeRestarts bool
}

// New creates an algorithm from its report name
func New(name string, opts Options) (Algorithm, error) {
	switch name {
	case models.AlgorithmRandomSearch:
		return NewRandomSearch(), nil
	case models.AlgorithmSAHC:
		return NewHillClimber(opts.MaxStartAttempts).WithNormalizedRestarts(opts.NormalizeRestarts), nil
	default:
		return nil, &UnknownAlgorithmError{Name: name}
	}
}

// Names lists the algorithms compared by an experiment, in report order
func Names() []string {
	return []string{models.AlgorithmRandomSearch, models.AlgorithmSAHC}
}

func validateInput(inst *models.Instance, iterations int) error {
	if iterations < 0 {
		return ErrInvalidIterations
	}
	if inst == nil || inst.Len() == 0 {
		return ErrEmptyInstance
	}
	return nil
}

// ctxCheckInterval is how many samples run between context checks
const ctxCheckInterval = 1024
