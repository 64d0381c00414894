// Package fixtures produces randomized but constraint-satisfying test
// records: booking reservations for the booking demo API and user profiles
// for the demo shop. Every call yields an independent value; the only state
// shared across calls is the process-wide email disambiguator.
package fixtures

import (
	"math/rand"
	"sync"
	"time"
)

// Generator draws constraint-satisfying records. A single Generator is safe
// for concurrent use; parallel test workers may also each construct their
// own without risking email collisions.
type Generator struct {
	cfg Config

	mu  sync.Mutex
	rng *rand.Rand
}

// Option customizes a Generator at construction time.
type Option func(*Generator)

// WithSeed makes every draw deterministic, for replaying a failing fixture.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand supplies the random source directly.
func WithRand(r *rand.Rand) Option {
	return func(g *Generator) {
		g.rng = r
	}
}

// NewGenerator validates cfg and returns a generator. Invalid ranges are
// programmer errors and are rejected here rather than surfacing as bad
// records later. Without WithSeed or WithRand the generator is time-seeded.
func NewGenerator(cfg Config, opts ...Option) (*Generator, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	g := &Generator{
		cfg: cfg,
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

// intn draws from [0, n) under the lock; the shared rng is not safe raw.
func (g *Generator) intn(n int) int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.rng.Intn(n)
}

// between draws from [lo, hi] inclusive.
func (g *Generator) between(lo, hi int) int {
	return lo + g.intn(hi-lo+1)
}

func (g *Generator) coin() bool {
	return g.intn(2) == 0
}

func (g *Generator) pick(list []string) string {
	return list[g.intn(len(list))]
}

func (g *Generator) shuffle(b []byte) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.rng.Shuffle(len(b), func(i, j int) {
		b[i], b[j] = b[j], b[i]
	})
}

// Batch produces count independent records by repeated invocation. It adds
// no cross-record guarantee beyond what generate itself provides.
func Batch[T any](count int, generate func() T) []T {
	out := make([]T, count)
	for i := range out {
		out[i] = generate()
	}
	return out
}
