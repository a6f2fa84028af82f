package primecache

import (
	"github.com/dgraph-io/ristretto"
)

// MemoTester memoizes IsPrime answers in a ristretto cache. Useful for
// workloads that re-test overlapping candidates many times, such as
// constellation scans; bulk range generation should use PrimesUpTo
// instead.
//
// Unlike Sequence, eviction is fine here: a dropped entry only costs a
// recomputation, never correctness.
type MemoTester struct {
	cache *ristretto.Cache
	known []int
}

// NewMemoTester constructs a MemoTester seeded with known primes (may be
// nil). maxEntries <= 0 defaults to 1<<16.
func NewMemoTester(known []int, maxEntries int64) (*MemoTester, error) {
	if maxEntries <= 0 {
		maxEntries = 1 << 16
	}
	cache, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: maxEntries * 10,
		MaxCost:     maxEntries,
		BufferItems: 64,
	})
	if err != nil {
		return nil, err
	}
	return &MemoTester{
		cache: cache,
		known: append(make([]int, 0, len(known)), known...),
	}, nil
}

// IsPrime reports whether x is prime, consulting the memo first.
func (m *MemoTester) IsPrime(x int) bool {
	if v, ok := m.cache.Get(x); ok {
		return v.(bool)
	}
	res := IsPrime(x, m.known)
	m.cache.Set(x, res, 1)
	return res
}

// Close releases the memo's resources.
func (m *MemoTester) Close() { m.cache.Close() }
