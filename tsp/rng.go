// Package tsp - deterministic randomness.
//
// SeededRandom is the only source of randomness for GA and TPSMA. It is a
// linear congruential generator with the classic (9301, 49297, 233280)
// constants. Its period is short (≤ 233280) and its quality is modest; what
// matters here is that two generators built from the same seed produce the
// same stream on every platform.
package tsp

const (
	lcgMul = 9301
	lcgInc = 49297
	lcgMod = 233280

	// DefaultSeed is used when Options.Seed is zero.
	DefaultSeed int64 = 12345
)

// Random is the injectable randomness capability used by the operators.
type Random interface {
	// Next returns a float in [0, 1).
	Next() float64
	// NextInt returns an int in [0, max).
	NextInt(max int) int
}

// SeededRandom is a linear congruential generator. Not safe for concurrent
// use; give each goroutine its own instance.
type SeededRandom struct {
	state int64
}

// NewSeededRandom returns a generator positioned at seed.
// The seed is reduced modulo 233280 up front; the stream is identical to
// iterating the recurrence on the unreduced value and avoids overflow.
func NewSeededRandom(seed int64) *SeededRandom {
	s := seed % lcgMod
	if s < 0 {
		s += lcgMod
	}
	return &SeededRandom{state: s}
}

// Next advances the state and returns state/233280 in [0, 1).
// Complexity: O(1).
func (r *SeededRandom) Next() float64 {
	r.state = (r.state*lcgMul + lcgInc) % lcgMod
	return float64(r.state) / lcgMod
}

// NextInt returns floor(Next()·max). max ≤ 0 yields 0 without advancing.
func (r *SeededRandom) NextInt(max int) int {
	if max <= 0 {
		return 0
	}
	return int(r.Next() * float64(max))
}

// State returns the current internal state (for diagnostics and tests).
func (r *SeededRandom) State() int64 { return r.state }
