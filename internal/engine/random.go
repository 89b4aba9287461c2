package engine

import "math/rand/v2"

// Random is the source for every probabilistic event. *rand.Rand satisfies it.
type Random interface {
	Float64() float64
	IntN(n int) int
}

// NewRandom returns a PCG-backed source seeded with seed.
func NewRandom(seed int64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), uint64(seed>>16|7)))
}
