// Package randutil centralises how the engine derives its random sources so
// that deals and bot fallbacks are reproducible from a single int64 seed.
package randutil

import (
	rand "math/rand/v2"
	"time"
)

const (
	goldenRatio64 = 0x9e3779b97f4a7c15
)

// New returns a *rand.Rand seeded deterministically from the provided int64.
func New(seed int64) *rand.Rand {
	u := uint64(seed)
	return rand.New(rand.NewPCG(mix(u), mix(u+goldenRatio64)))
}

// Resolve returns seed unchanged when non-zero, otherwise a time based seed.
// A zero seed in configuration means "random".
func Resolve(seed int64) int64 {
	if seed != 0 {
		return seed
	}
	return time.Now().UnixNano()
}

// Derive returns the seed for the n-th independent stream of a base seed,
// e.g. the n-th game of a simulation.
func Derive(seed int64, n int) int64 {
	return int64(mix(uint64(seed) + uint64(n)*goldenRatio64))
}

// Pick returns a uniformly random element of items. It panics on an empty slice.
func Pick[T any](rng *rand.Rand, items []T) T {
	return items[rng.IntN(len(items))]
}

func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
