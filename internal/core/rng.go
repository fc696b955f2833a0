package core

import (
	"math/rand/v2"
	"time"
)

// Source is the subset of *rand.Rand used to place the ant.
type Source interface {
	IntN(n int) int
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), 0))
}

// SeedOrNow returns seed unchanged unless it is zero, in which case the wall
// clock is used.
func SeedOrNow(seed int64) int64 {
	if seed != 0 {
		return seed
	}
	return time.Now().UnixNano()
}
