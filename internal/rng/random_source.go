package rng

import (
	"math/rand"
	"sync"
	"time"
)

// lockedSource implements Source over a seeded math/rand generator. The
// mutex makes it safe to share across actors if the host ever
// parallelizes AI ticks.
type lockedSource struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewRandomSource creates a time-seeded random source.
func NewRandomSource() Source {
	return NewSeededSource(time.Now().UnixNano())
}

// NewSeededSource creates a random source with a fixed seed, useful for
// reproducing a decision sequence.
func NewSeededSource(seed int64) Source {
	return &lockedSource{
		rnd: rand.New(rand.NewSource(seed)),
	}
}

// Intn implements Source.Intn.
func (s *lockedSource) Intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rnd.Intn(n)
}
