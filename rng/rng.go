// Package rng is the seedable random source the game consumes. Everything
// random in a deal goes through a Source so a seed replays the same game.
package rng

import "math/rand/v2"

// Source is the capability the game needs from a generator.
type Source interface {
	// NewSeed derives a fresh seed from the current state.
	NewSeed() uint64
	// Intn returns a uniform value in [0, n). n must be positive.
	Intn(n int) int
}

// Rand is the default Source, a PCG generator.
type Rand struct {
	r    *rand.Rand
	seed uint64
}

func New(seed uint64) *Rand {
	return &Rand{
		r:    rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		seed: seed,
	}
}

// Seed returns the seed the generator was created with.
func (r *Rand) Seed() uint64 { return r.seed }

func (r *Rand) NewSeed() uint64 { return r.r.Uint64() }

func (r *Rand) Intn(n int) int { return r.r.IntN(n) }

// Choose picks an element uniformly. It reports false for an empty slice.
func Choose[T any](src Source, items []T) (T, bool) {
	var zero T
	if len(items) == 0 {
		return zero, false
	}
	return items[src.Intn(len(items))], true
}

// Shuffle is a Fisher-Yates shuffle driven by src.
func Shuffle[T any](src Source, items []T) {
	for i := len(items) - 1; i > 0; i-- {
		j := src.Intn(i + 1)
		items[i], items[j] = items[j], items[i]
	}
}
