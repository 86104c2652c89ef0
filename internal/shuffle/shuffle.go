// Package shuffle produces random permutations of question lists.
package shuffle

import "math/rand/v2"

// Shuffle returns a new slice holding the elements of list in a uniformly
// random order, using a Fisher-Yates pass over a copy. list is not modified.
// A nil rng uses the runtime-seeded global source.
func Shuffle[T any](list []T, rng *rand.Rand) []T {
	out := make([]T, len(list))
	copy(out, list)

	intN := rand.IntN
	if rng != nil {
		intN = rng.IntN
	}

	for i := len(out) - 1; i > 0; i-- {
		j := intN(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// NewRand returns a deterministic source for the given seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
