package level

import "math/rand"

// Rand is the randomness the generator consumes. *rand.Rand satisfies it.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// NewRand returns a deterministic source for the seed.
func NewRand(seed int64) Rand {
	return rand.New(rand.NewSource(seed))
}
