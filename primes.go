package primecache

import (
	"math"

	"github.com/unkn0wn-root/primecache/internal/search"
)

// oddMarks tracks which odd numbers in [min, max] are still candidate
// primes. Even numbers are not represented, which halves the marker
// buffer and the marking work. Behavior for numbers outside [min, max]
// is undefined; min must be odd.
type oddMarks struct {
	min, max int
	marks    []bool // true = not yet crossed out
}

func newOddMarks(min, max int) *oddMarks {
	m := &oddMarks{min: min, max: max}
	n := m.pos(max) + 1
	if n < 0 {
		n = 0
	}
	m.marks = make([]bool, n)
	for i := range m.marks {
		m.marks[i] = true
	}
	return m
}

func (m *oddMarks) pos(num int) int { return (num - m.min) / 2 }

func (m *oddMarks) uncrossed(num int) bool { return m.marks[m.pos(num)] }

// crossMultiples crosses out multiples of p, starting at p*p (smaller
// multiples have a smaller factor and are already crossed) or at the
// first multiple inside the window, whichever is larger. Even multiples
// are skipped - they have no marker slot.
func (m *oddMarks) crossMultiples(p int) {
	start := p * p
	if first := firstMultipleOf(p, m.min); first > start {
		start = first
	}
	for num := start; num <= m.max; num += p {
		if num%2 == 1 {
			m.marks[m.pos(num)] = false
		}
	}
}

// firstMultipleOf returns the first multiple of x >= above.
func firstMultipleOf(x, above int) int {
	return (above + x - 1) / x * x
}

// isqrt returns floor(sqrt(x)).
func isqrt(x int) int {
	if x < 0 {
		return 0
	}
	r := int(math.Sqrt(float64(x)))
	for r > 0 && r*r > x {
		r--
	}
	for (r+1)*(r+1) <= x {
		r++
	}
	return r
}

// PrimesUpTo returns all primes <= bound in increasing order, via the
// Sieve of Eratosthenes. bound < 2 yields an empty result.
//
// known, if non-nil, seeds the sieve per the package seed contract: if it
// already reaches bound the answer is a binary-search truncation, and
// otherwise only the range above its top prime is sieved, with the known
// primes pre-marking their multiples. The returned slice never aliases
// known.
func PrimesUpTo(bound int, known []int) []int {
	if bound <= 1 {
		return nil
	}

	var (
		primes []int
		marks  *oddMarks
	)
	// A seed of just [2] carries no information the marker buffer does
	// not already encode (evens are pre-crossed).
	if len(known) > 0 && !(len(known) == 1 && known[0] == 2) {
		top := known[len(known)-1]
		if top >= bound-1 {
			out := make([]int, search.Right(known, bound))
			copy(out, known)
			return out
		}
		marks = newOddMarks(top+2, bound)
		primes = append(make([]int, 0, len(known)), known...)
		// Known odd primes up to sqrt(bound) cross out their multiples;
		// factors below them need no re-deriving.
		for _, p := range known[1:search.Right(known, isqrt(bound))] {
			marks.crossMultiples(p)
		}
	} else {
		marks = newOddMarks(3, bound)
		primes = []int{2}
	}

	// All composites <= bound have a factor <= sqrt(bound), so after this
	// loop every remaining uncrossed number is prime.
	root := isqrt(bound)
	for num := marks.min; num <= root; num += 2 {
		if marks.uncrossed(num) {
			primes = append(primes, num)
			marks.crossMultiples(num)
		}
	}

	// Collect the uncrossed remainder, from the first odd number past
	// both sqrt(bound) and the largest prime found so far.
	start := primes[len(primes)-1]
	if root > start {
		start = root
	}
	start = (start + 1) | 1
	for num := start; num <= bound; num += 2 {
		if marks.uncrossed(num) {
			primes = append(primes, num)
		}
	}
	return primes
}

// smallPrimes is the fixed table used to knock out most composites
// before a sieve is paid for.
var smallPrimes = []int{2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41, 43, 47}

// trialDivision reports whether n has no divisor among primes <= sqrt(n).
// It proves primality only when primes contains every prime <= sqrt(n).
func trialDivision(n int, primes []int) bool {
	for _, p := range primes[:search.Right(primes, isqrt(n))] {
		if n%p == 0 {
			return false
		}
	}
	return true
}

// IsPrime reports whether x is prime. x < 2 is never prime.
//
// known, if non-nil, accelerates the answer: membership is a binary
// search when known reaches x, and trial division over known suffices
// when known reaches sqrt(x). Trial division is O(sqrt x) and deliberate
// over a per-value sieve; for bulk ranges use PrimesUpTo instead.
func IsPrime(x int, known []int) bool {
	if x <= 1 {
		return false
	}
	if len(known) > 0 {
		top := known[len(known)-1]
		if top >= x {
			return search.Index(known, x) >= 0
		}
		// A contract-conforming seed reaching sqrt(x) holds every prime
		// factor candidate.
		if top >= isqrt(x) {
			return trialDivision(x, known)
		}
	}
	if !trialDivision(x, smallPrimes) {
		return false
	}
	return trialDivision(x, PrimesUpTo(isqrt(x), known))
}
