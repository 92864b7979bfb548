package experiment

import "errors"

var (
	// ErrInvalidRuns indicates a negative number of runs.
	ErrInvalidRuns = errors.New("experiment: runs must be non-negative")
	// ErrNoAlgorithms indicates a harness without algorithms.
	ErrNoAlgorithms = errors.New("experiment: no algorithms configured")
)
