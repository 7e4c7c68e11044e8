// Package random holds the seeded random stream used for map generation and
// the weighted selection table built on top of it.
package random

import "math/rand"

// New returns a deterministic random stream for the given 64-bit seed.
// The same seed always yields the same sequence.
func New(seed uint64) *rand.Rand {
	return rand.New(rand.NewSource(int64(seed)))
}

// Chance returns true with probability p
func Chance(rng *rand.Rand, p float64) bool {
	return rng.Float64() < p
}

// Range returns a uniform integer in [lo, hi]. hi must not be below lo.
func Range(rng *rand.Rand, lo, hi int) int {
	return lo + rng.Intn(hi-lo+1)
}
