package primecache

import (
	"github.com/unkn0wn-root/primecache/internal/search"
)

// Options tune a Sequence. All fields are optional.
type Options struct {
	// Seed primes the cache and raises the initial watermark to its top
	// value. Must follow the package seed contract; not validated.
	Seed []int

	Logger Logger // nil => NopLogger
	Hooks  Hooks  // nil => NopHooks
}

// Sequence presents the infinite ordered set of primes through list-like
// operations, backed by a cache of discovered primes. The cache is a
// strict prefix of the true prime sequence and only ever grows; every
// operation either answers from the cache or extends it first.
//
// A Sequence is not safe for concurrent use without external
// serialization.
type Sequence struct {
	primes  []int
	highest int // watermark: the cache is exhaustive up to this value

	log   Logger
	hooks Hooks
}

// New constructs a Sequence.
func New(opts Options) *Sequence {
	s := &Sequence{
		log:   coalesce[Logger](opts.Logger, NopLogger{}),
		hooks: coalesce[Hooks](opts.Hooks, NopHooks{}),
	}
	if len(opts.Seed) > 0 {
		s.primes = append(make([]int, 0, len(opts.Seed)), opts.Seed...)
		s.highest = opts.Seed[len(opts.Seed)-1]
	}
	return s
}

// Contains reports whether x is prime, extending the cache up to x
// first when needed. It never extends beyond x.
func (s *Sequence) Contains(x int) bool {
	if x > s.highest {
		s.primes = PrimesUpTo(x, s.primes)
		s.highest = x
		s.hooks.SievePass(x, len(s.primes))
		s.hooks.CacheExtended(s.highest, len(s.primes))
		s.log.Debug("cache extended for containment", Fields{"watermark": x, "cached": len(s.primes)})
	}
	return search.Index(s.primes, x) >= 0
}

// At returns the prime at position i (At(0) == 2), extending the cache
// as needed. i < 0 returns ErrNegativeIndex: the sequence is unbounded
// in the positive direction only, so there is no "index from the end".
func (s *Sequence) At(i int) (int, error) {
	if i < 0 {
		return 0, ErrNegativeIndex
	}
	s.ensureCount(i + 1)
	return s.primes[i], nil
}

// Slice materializes the primes selected by sp. See Span for the
// semantics; invalid spans return a *SpanError.
func (s *Sequence) Slice(sp Span) ([]int, error) {
	kind, err := sp.classify()
	if err != nil {
		return nil, spanErr(sp, err)
	}

	if kind == spanForward {
		start := sp.Start
		if start == Unbounded {
			start = 0
		}
		if start >= sp.Stop {
			return nil, nil
		}
		s.ensureCount(sp.Stop)
		out := make([]int, 0, (sp.Stop-start+sp.Step-1)/sp.Step)
		for i := start; i < sp.Stop; i += sp.Step {
			out = append(out, s.primes[i])
		}
		return out, nil
	}

	// Backward: a defaulted start means the last cached index, so the
	// walk is finite without an explicit stop.
	start := sp.Start
	if start == Unbounded {
		if len(s.primes) == 0 {
			return nil, nil
		}
		start = len(s.primes) - 1
	} else {
		s.ensureCount(start + 1)
	}
	stop := -1
	if sp.Stop != Unbounded {
		stop = sp.Stop
	}
	var out []int
	for i := start; i > stop; i += sp.Step {
		out = append(out, s.primes[i])
	}
	return out, nil
}

// Len returns the number of primes currently cached - NOT the
// cardinality of the sequence, which is infinite. It only grows as
// queries force extensions; do not read it as "all primes below some
// bound" without forcing an extension first.
func (s *Sequence) Len() int { return len(s.primes) }

// Watermark returns the bound below which the cache is known
// exhaustive.
func (s *Sequence) Watermark() int { return s.highest }

// Cached returns a copy of the cached prime prefix. The copy is a valid
// seed for the bulk functions.
func (s *Sequence) Cached() []int {
	return append(make([]int, 0, len(s.primes)), s.primes...)
}

// ensureCount extends the cache until it holds at least n primes. The
// working bound starts at the larger of the nth-prime estimate and
// double the current watermark, then doubles per retry; amortized over
// repeated extensions the total sieve work stays within a constant
// factor of one sieve to the final bound.
func (s *Sequence) ensureCount(n int) {
	if len(s.primes) >= n {
		return
	}
	bound := nPrimesBound(n)
	if b := 2 * s.highest; b > bound {
		bound = b
	}
	for len(s.primes) < n {
		s.primes = PrimesUpTo(bound, s.primes)
		s.highest = bound
		s.hooks.SievePass(bound, len(s.primes))
		bound *= 2
	}
	s.hooks.CacheExtended(s.highest, len(s.primes))
	s.log.Debug("cache extended", Fields{"watermark": s.highest, "cached": len(s.primes)})
}
