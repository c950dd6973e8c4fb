package flight

import (
	"math/rand/v2"
	"sync"
)

// Rand is the source of the randomized offer fields: duration jitter, seats
// remaining and flight-number suffix. Implementations used by a shared
// Generator must be safe for concurrent use.
type Rand interface {
	// IntN returns a uniform integer in [0, n).
	IntN(n int) int
}

type globalRand struct{}

func (globalRand) IntN(n int) int { return rand.IntN(n) }

// DefaultRand returns the process-wide generator from math/rand/v2.
func DefaultRand() Rand { return globalRand{} }

type lockedRand struct {
	mu sync.Mutex
	r  *rand.Rand
}

func (l *lockedRand) IntN(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.IntN(n)
}

// NewSeededRand returns a deterministic source: the same seed yields the
// same sequence of offers.
func NewSeededRand(seed uint64) Rand {
	return &lockedRand{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}
