package pigpong

import "math/rand"

// Random is a uniform source on [0, 1). *rand.Rand satisfies it.
type Random interface {
	Float64() float64
}

// NewRandom returns a seeded source for production use.
func NewRandom(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed)) //nolint:gosec // game randomness, not security
}

// Sequence replays fixed values in order and wraps around. It lets tests
// assert exact serve angles and deflections.
type Sequence struct {
	values []float64
	next   int
}

// NewSequence creates a Sequence over values. An empty sequence yields 0.
func NewSequence(values ...float64) *Sequence {
	return &Sequence{values: values}
}

// Float64 returns the next value.
func (s *Sequence) Float64() float64 {
	if len(s.values) == 0 {
		return 0
	}
	v := s.values[s.next%len(s.values)]
	s.next++
	return v
}
