// Package rng supplies the randomness used to shuffle a deck
package rng

// Generator provides a simple random number
type Generator interface {
	// Intn will return a random number in [0, n)
	Intn(n int) int
}
