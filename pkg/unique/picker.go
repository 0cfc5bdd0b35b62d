package unique

import (
	"math/rand"
	"time"
)

// IntN returns a uniformly distributed int in [0, n) for n > 0. It matches
// the signature of (*math/rand.Rand).Intn so a seeded generator plugs in
// directly; tests may supply any deterministic implementation.
type IntN func(n int) int

// Picker selects random values from candidate pools while honoring a
// caller-owned Set of used values. It keeps no pool state of its own and
// performs no locking.
type Picker struct {
	intn IntN
}

// Option configures a Picker.
type Option func(*Picker)

// WithIntN replaces the randomness strategy entirely.
func WithIntN(fn IntN) Option {
	return func(p *Picker) {
		if fn != nil {
			p.intn = fn
		}
	}
}

// WithSource draws randomness from the given source.
func WithSource(src rand.Source) Option {
	return func(p *Picker) {
		if src != nil {
			p.intn = rand.New(src).Intn
		}
	}
}

// WithSeed draws randomness from a source seeded with seed, making the pick
// sequence reproducible.
func WithSeed(seed int64) Option {
	return WithSource(rand.NewSource(seed))
}

// New creates a Picker. Without options it is seeded from the current time.
func New(opts ...Option) *Picker {
	p := &Picker{
		intn: rand.New(rand.NewSource(time.Now().UnixNano())).Intn,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Pick returns a random value from pool that is not yet present in used.
// Selection is uniform over the distinct values of the pool, so duplicated
// entries carry no extra weight. Once every distinct value has been used the
// pool counts as exhausted: used is cleared in place and the full pool
// becomes available again, which means the value closing one cycle may also
// open the next.
//
// Pick never records the returned value; the caller adds it to used (or
// uses a Tracker, which does both). A nil used Set behaves like an empty
// one. Picking from a pool with no values fails with ErrEmptyPool.
func (p *Picker) Pick(pool []string, used Set) (string, error) {
	if len(pool) == 0 {
		return "", ErrEmptyPool
	}

	available := availableValues(pool, used)
	if len(available) == 0 {
		used.Clear()
		available = availableValues(pool, nil)
	}

	return available[p.intn(len(available))], nil
}

// availableValues returns the distinct pool values missing from used, in
// first-occurrence order so injected randomness sees a stable layout.
func availableValues(pool []string, used Set) []string {
	seen := make(map[string]bool, len(pool))
	available := make([]string, 0, len(pool))
	for _, v := range pool {
		if seen[v] {
			continue
		}
		seen[v] = true
		if used.Has(v) {
			continue
		}
		available = append(available, v)
	}
	return available
}
