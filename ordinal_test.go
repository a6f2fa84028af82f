package primecache

import (
	"errors"
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNPrimes(t *testing.T) {
	if got := NPrimes(0, nil); len(got) != 0 {
		t.Fatalf("NPrimes(0) = %v, want empty", got)
	}
	if got := NPrimes(-3, nil); len(got) != 0 {
		t.Fatalf("NPrimes(-3) = %v, want empty", got)
	}

	want := []int{2, 3, 5, 7, 11}
	if diff := cmp.Diff(want, NPrimes(5, nil)); diff != "" {
		t.Fatalf("NPrimes(5) mismatch (-want +got):\n%s", diff)
	}

	for _, n := range []int{1, 2, 6, 100, 1229, 5000} {
		got := NPrimes(n, nil)
		if len(got) != n {
			t.Fatalf("len(NPrimes(%d)) = %d", n, len(got))
		}
		if !sort.IntsAreSorted(got) {
			t.Fatalf("NPrimes(%d) not sorted", n)
		}
	}
}

func TestNPrimesWithSeed(t *testing.T) {
	seed := PrimesUpTo(100, nil)

	// Seed already has enough primes: returned directly, no sieve.
	got := NPrimes(10, seed)
	if diff := cmp.Diff(seed[:10], got); diff != "" {
		t.Fatalf("NPrimes(10) with ample seed mismatch (-want +got):\n%s", diff)
	}
	// The returned slice must not alias the seed.
	got[0] = -1
	if seed[0] != 2 {
		t.Fatalf("seed mutated through result aliasing: %v", seed[:3])
	}

	// Seed smaller than n: extended, same result as unseeded.
	if diff := cmp.Diff(NPrimes(200, nil), NPrimes(200, seed)); diff != "" {
		t.Fatalf("seeded NPrimes(200) mismatch (-want +got):\n%s", diff)
	}
}

func TestNthPrime(t *testing.T) {
	cases := map[int]int{1: 2, 2: 3, 6: 13, 100: 541, 1000: 7919}
	for n, want := range cases {
		got, err := NthPrime(n, nil)
		if err != nil {
			t.Fatalf("NthPrime(%d): %v", n, err)
		}
		if got != want {
			t.Errorf("NthPrime(%d) = %d, want %d", n, got, want)
		}
	}

	for _, n := range []int{0, -1} {
		if _, err := NthPrime(n, nil); !errors.Is(err, ErrNonPositiveN) {
			t.Errorf("NthPrime(%d) err = %v, want ErrNonPositiveN", n, err)
		}
	}
}

func TestNthPrimeAgreesWithNPrimes(t *testing.T) {
	for _, n := range []int{1, 5, 50, 500} {
		lst := NPrimes(n, nil)
		nth, err := NthPrime(n, nil)
		if err != nil {
			t.Fatalf("NthPrime(%d): %v", n, err)
		}
		if nth != lst[n-1] {
			t.Errorf("NthPrime(%d) = %d, NPrimes(%d)[-1] = %d", n, nth, n, lst[n-1])
		}
	}
}

func TestCompositesUpTo(t *testing.T) {
	cases := []struct {
		x    int
		want []int
	}{
		{0, nil},
		{3, nil},
		{4, []int{4}},
		{10, []int{4, 6, 8, 9, 10}},
		{20, []int{4, 6, 8, 9, 10, 12, 14, 15, 16, 18, 20}},
	}
	for _, c := range cases {
		if diff := cmp.Diff(c.want, CompositesUpTo(c.x, nil)); diff != "" {
			t.Errorf("CompositesUpTo(%d) mismatch (-want +got):\n%s", c.x, diff)
		}
	}
}

// Primes and composites partition [2, bound].
func TestPrimeCompositePartition(t *testing.T) {
	for _, bound := range []int{2, 4, 5, 30, 97, 100, 256} {
		all := append(PrimesUpTo(bound, nil), CompositesUpTo(bound, nil)...)
		sort.Ints(all)

		want := make([]int, 0, bound-1)
		for v := 2; v <= bound; v++ {
			want = append(want, v)
		}
		if diff := cmp.Diff(want, all); diff != "" {
			t.Fatalf("partition broken at bound %d (-want +got):\n%s", bound, diff)
		}
	}
}

func TestNextPrime(t *testing.T) {
	cases := []struct {
		known []int
		want  int
	}{
		{[]int{2}, 3},
		{[]int{2, 3}, 5},
		{[]int{2, 3, 5, 7, 11}, 13},
		{PrimesUpTo(541, nil), 547},
	}
	for _, c := range cases {
		got, err := NextPrime(c.known)
		if err != nil {
			t.Fatalf("NextPrime(top %d): %v", c.known[len(c.known)-1], err)
		}
		if got != c.want {
			t.Errorf("NextPrime(top %d) = %d, want %d", c.known[len(c.known)-1], got, c.want)
		}
	}

	if _, err := NextPrime(nil); !errors.Is(err, ErrEmptyKnown) {
		t.Errorf("NextPrime(nil) err = %v, want ErrEmptyKnown", err)
	}
}

func TestNPrimesBoundIsUpperBound(t *testing.T) {
	for _, n := range []int{1, 6, 10, 100, 1000, 8602, 15985} {
		bound := nPrimesBound(n)
		if got := len(PrimesUpTo(bound, nil)); got < n {
			t.Errorf("nPrimesBound(%d) = %d holds only %d primes", n, bound, got)
		}
	}
}
