package core

import (
	"math/rand/v2"
	"time"
)

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed. A zero seed
// picks one from the wall clock.
func NewRNG(seed int64) *RNG {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Percent reports true with probability p percent. Values at or below zero
// never hit, values of 100 or more always do.
func (r *RNG) Percent(p int) bool {
	return r.r.IntN(100) < p
}

// FillPercent sets every cell of buf to 1 with probability p percent and to 0
// otherwise, drawing once per cell.
func FillPercent(r *RNG, buf []uint8, p int) {
	for i := range buf {
		if r.Percent(p) {
			buf[i] = 1
			continue
		}
		buf[i] = 0
	}
}
