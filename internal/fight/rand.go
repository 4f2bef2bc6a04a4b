package fight

import (
	"math/rand"
	"time"
)

// Rand is the uniform random source used for stat generation and combat rolls.
// *rand.Rand satisfies it; tests substitute scripted sequences.
type Rand interface {
	// Float64 returns a value in [0, 1).
	Float64() float64
	// Intn returns a value in [0, n).
	Intn(n int) int
}

// NewRand returns a math/rand source. A zero seed is replaced by the clock.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
