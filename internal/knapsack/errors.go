package knapsack

import "errors"

var (
	// ErrInstanceNotFound indicates the instance file does not exist.
	ErrInstanceNotFound = errors.New("knapsack: instance file not found")
	// ErrMalformedInstance indicates the instance file or data could not be parsed or validated.
	ErrMalformedInstance = errors.New("knapsack: malformed instance")
)
