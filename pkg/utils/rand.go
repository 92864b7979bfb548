package utils

import (
	"math/rand"
	"time"
)

// RandSource is a seeded random number generator handed explicitly to every
// function that needs randomness. It is not safe for concurrent use; give
// each goroutine its own source (see DeriveSeed).
type RandSource struct {
	seed int64
	rng  *rand.Rand
}

// NewRandSource creates a new random source with the given seed.
// A zero seed is replaced by a time based one.
func NewRandSource(seed int64) *RandSource {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &RandSource{
		seed: seed,
		rng:  rand.New(rand.NewSource(seed)),
	}
}

// Seed returns the seed the source was created with
func (r *RandSource) Seed() int64 {
	return r.seed
}

// Intn returns a random int in [0, n)
func (r *RandSource) Intn(n int) int {
	return r.rng.Intn(n)
}

// Bit returns 0 or 1 with equal probability
func (r *RandSource) Bit() int {
	return int(r.rng.Int63() & 1)
}

// DeriveSeed maps a base seed and a (run, stream) pair to an independent,
// non-zero seed. The mapping is a splitmix64 finalizer so neighbouring runs
// get unrelated sequences.
func DeriveSeed(base int64, run, stream int) int64 {
	z := uint64(base) + uint64(run)*0x9e3779b97f4a7c15 + uint64(stream)*0xbf58476d1ce4e5b9
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	z ^= z >> 31
	seed := int64(z &^ (1 << 63))
	if seed == 0 {
		seed = 1
	}
	return seed
}
