// Package primecache implements prime generation, primality testing and
// ordinal queries ("the nth prime", "primes up to x") on top of a lazily
// extended cache of known primes.
//
// Components:
//   - PrimesUpTo: bulk generation via an odd-only Sieve of Eratosthenes.
//   - IsPrime / NextPrime: single-value primality by binary search or
//     trial division. Never used for bulk generation.
//   - NPrimes / NthPrime / CompositesUpTo: ordinal queries that grow a
//     working bound geometrically until enough primes exist.
//   - Sequence: a list-like view of the infinite ordered set of primes,
//     backed by a monotonically growing prime cache.
//
// Seeds:
//
// Every bulk operation accepts an optional slice of already-known primes,
// used purely as a performance seed (pre-marking their multiples in the
// sieve, or answering by binary search outright). A seed must be sorted,
// duplicate-free, all prime, and gap-free from 2 upward. That is a caller
// contract, not a runtime check - malformed seeds are undefined behavior.
//
// Typical use:
//
//	seq := primecache.New(primecache.Options{})
//	seq.Contains(31)                               // true
//	p, _ := seq.At(100)                            // 547
//	ps, _ := seq.Slice(primecache.NewSpan(10, 20)) // 11th..20th primes
//
// A Sequence can be snapshotted with any codec from the codec subpackage
// and restored later, or fed back into the bulk functions as a seed.
package primecache
