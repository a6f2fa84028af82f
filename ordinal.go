package primecache

import "math"

// nPrimesBound returns an upper bound on the nth prime, so a single
// sieve to it almost always yields at least n primes. The piecewise
// constants tighten the Rosser-style n(ln n + ln ln n) estimate as n
// grows.
func nPrimesBound(n int) int {
	if n < 6 {
		return 13
	}
	fn := float64(n)
	ln := math.Log(fn)
	lln := math.Log(ln)
	switch {
	case n >= 39017:
		return int(fn * (ln + lln - 0.9484))
	case n >= 15985:
		return int(fn * (ln + lln - 0.9427))
	case n >= 8602:
		return int(fn * (ln + lln - 0.9385))
	default:
		return int(fn * (ln + lln))
	}
}

// NPrimes returns the first n primes in increasing order. n <= 0 yields
// an empty result. known, if non-nil, seeds the underlying sieve; when it
// already holds n primes no sieve runs at all.
//
// The working bound starts at nPrimesBound(n) and doubles until enough
// primes exist. Geometric growth keeps the total work within a constant
// factor of one sieve to the final bound.
func NPrimes(n int, known []int) []int {
	if n <= 0 {
		return nil
	}
	primes := known
	if len(primes) < n {
		bound := nPrimesBound(n)
		primes = PrimesUpTo(bound, known)
		for len(primes) < n {
			bound *= 2
			primes = PrimesUpTo(bound, primes)
		}
	}
	out := make([]int, n)
	copy(out, primes[:n])
	return out
}

// NthPrime returns the nth prime (NthPrime(1) == 2). n < 1 is a caller
// error and returns ErrNonPositiveN.
func NthPrime(n int, known []int) (int, error) {
	if n < 1 {
		return 0, ErrNonPositiveN
	}
	return NPrimes(n, known)[n-1], nil
}

// CompositesUpTo returns every composite (non-prime greater than 1)
// <= x in increasing order. x < 4 yields an empty result.
func CompositesUpTo(x int, known []int) []int {
	if x <= 3 {
		return nil
	}
	if x == 4 {
		return []int{4}
	}
	primes := PrimesUpTo(x, known)
	composites := make([]int, 0, x-1-len(primes))
	for i := 1; i < len(primes); i++ {
		for c := primes[i-1] + 1; c < primes[i]; c++ {
			composites = append(composites, c)
		}
	}
	for c := primes[len(primes)-1] + 1; c <= x; c++ {
		composites = append(composites, c)
	}
	return composites
}

// NextPrime returns the smallest prime exceeding the maximum of known,
// by trial division over odd candidates. known must be non-empty and
// follow the seed contract. Much less efficient than PrimesUpTo for
// generating ranges.
func NextPrime(known []int) (int, error) {
	if len(known) == 0 {
		return 0, ErrEmptyKnown
	}
	p := known[len(known)-1]
	// Bertrand: a prime exists strictly between p and 2p, so the walk
	// over odd candidates always terminates.
	for cand := p + p%2 + 1; ; cand += 2 {
		if IsPrime(cand, known) {
			return cand, nil
		}
	}
}
