// Package rng provides deterministic pseudo-random helpers for simulations.
package rng

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// New creates a deterministic RNG using the provided seed.
func New(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// NewStream creates a deterministic RNG on an independent stream of the same
// seed. Workers that draw randomness concurrently each get their own stream.
func NewStream(seed int64, stream uint64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), stream))}
}

// IntN returns a random int in [0, n).
func (r *RNG) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	return r.r.IntN(n)
}

// Float64 returns a random float64 in [0, 1).
func (r *RNG) Float64() float64 {
	return r.r.Float64()
}

// Byte returns a uniformly random byte.
func (r *RNG) Byte() uint8 {
	return uint8(r.r.UintN(256))
}

// Fill fills the buffer with uniformly random bytes.
func (r *RNG) Fill(buf []byte) {
	for i := range buf {
		buf[i] = r.Byte()
	}
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }
