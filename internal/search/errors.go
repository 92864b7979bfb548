package search

import (
	"errors"
	"fmt"
)

var (
	// ErrNoFeasibleStart indicates hill climbing could not sample a feasible starting point.
	ErrNoFeasibleStart = errors.New("search: no feasible starting point")
	// ErrInvalidIterations indicates a negative iteration budget.
	ErrInvalidIterations = errors.New("search: iterations must be non-negative")
	// ErrEmptyInstance indicates an instance without items.
	ErrEmptyInstance = errors.New("search: instance has no items")
)

// UnknownAlgorithmError is returned by New for unregistered names
type UnknownAlgorithmError struct {
	Name string
}

func (e *UnknownAlgorithmError) Error() string {
	return fmt.Sprintf("search: unknown algorithm %q", e.Name)
}
