// Package dice is the engine's only source of randomness. Combat code draws
// from a Roller so tests can substitute scripted sequences.
package dice

import "math/rand"

//go:generate mockgen -destination=mock/mock_roller.go -package=mockdice -source=dice.go

// Roller returns uniform integers in an inclusive range.
type Roller interface {
	// Between returns a uniform random integer in [lo, hi]. If hi < lo, lo is returned.
	Between(lo, hi int) int
}

// RNG wraps math/rand.Rand with deterministic position tracking.
// Position increments with every draw, enabling checkpoint/rewind.
type RNG struct {
	seed int64
	src  *rand.Rand
	pos  int64
}

// NewRNG creates a new deterministic RNG from a seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		seed: seed,
		src:  rand.New(rand.NewSource(seed)),
	}
}

// Between returns a random integer in [lo, hi].
func (r *RNG) Between(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	// One Int63 per draw keeps RestoreRNG exact; Intn may reject and redraw.
	r.pos++
	return lo + int(r.src.Int63()%int64(hi-lo+1))
}

// Roll returns a random integer in [1, sides].
func (r *RNG) Roll(sides int) int {
	return r.Between(1, sides)
}

// Seed returns the seed the RNG was created with.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Position returns the number of draws made since creation.
func (r *RNG) Position() int64 {
	return r.pos
}

// RestoreRNG creates an RNG and advances it to the given position.
// Every draw consumes exactly one Int63 from the source, so replaying
// position draws reproduces the exact stream.
func RestoreRNG(seed int64, position int64) *RNG {
	rng := NewRNG(seed)
	for i := int64(0); i < position; i++ {
		rng.src.Int63()
	}
	rng.pos = position
	return rng
}

// Fixed is a scripted Roller. Each draw returns the next queued value clamped
// to the requested range; when the queue is exhausted it returns hi.
type Fixed struct {
	values []int
	next   int
}

// NewFixed creates a scripted roller returning values in order.
func NewFixed(values ...int) *Fixed {
	return &Fixed{values: values}
}

// Max returns a roller that always yields the upper bound.
func Max() *Fixed {
	return &Fixed{}
}

// Between implements Roller.
func (f *Fixed) Between(lo, hi int) int {
	if hi < lo {
		return lo
	}
	if f.next >= len(f.values) {
		return hi
	}
	v := f.values[f.next]
	f.next++
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
