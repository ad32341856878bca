package rng

import "math/rand"

// Seeded is a reproducible generator backed by math/rand
// Only use this when a shuffle must be replayed (tests, demos)
type Seeded struct {
	seed int64
	rng  *rand.Rand
}

// NewSeeded returns a generator for the given seed
func NewSeeded(seed int64) *Seeded {
	return &Seeded{
		seed: seed,
		rng:  rand.New(rand.NewSource(seed)), // nolint:gosec
	}
}

// Intn returns a random number from 0 <= x < n
func (s *Seeded) Intn(n int) int {
	return s.rng.Intn(n)
}

// Seed returns the seed the generator was built with
func (s *Seeded) Seed() int64 {
	return s.seed
}
