package types

import "golang.org/x/exp/rand"

// Rand is the random source behind every cosmetic choice (food placement,
// size, hue, ids). Tests pass a fixed seed.
type Rand interface {
	Float64() float64
	Intn(n int) int
	Read(p []byte) (int, error)
}

// NewRand returns a deterministic source for seed.
func NewRand(seed uint64) Rand {
	return rand.New(rand.NewSource(seed))
}

// Uniform returns a value in [lo, hi).
func Uniform(r Rand, lo, hi float64) float64 {
	return lo + r.Float64()*(hi-lo)
}
