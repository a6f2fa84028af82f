package primecache

// PrimesWithDifferenceUpTo returns every pair (p, p+diff) with both
// members prime and p+diff <= x, in increasing order of p.
func PrimesWithDifferenceUpTo(x, diff int, known []int) [][2]int {
	primes := PrimesUpTo(x-diff, known)
	var pairs [][2]int
	for _, p := range primes {
		if IsPrime(p+diff, primes) {
			pairs = append(pairs, [2]int{p, p + diff})
		}
	}
	return pairs
}

// TwinPrimesUpTo returns prime pairs with difference 2, e.g. (11, 13).
func TwinPrimesUpTo(x int, known []int) [][2]int {
	return PrimesWithDifferenceUpTo(x, 2, known)
}

// CousinPrimesUpTo returns prime pairs with difference 4, e.g. (7, 11).
func CousinPrimesUpTo(x int, known []int) [][2]int {
	return PrimesWithDifferenceUpTo(x, 4, known)
}

// SexyPrimesUpTo returns prime pairs with difference 6, e.g. (5, 11).
func SexyPrimesUpTo(x int, known []int) [][2]int {
	return PrimesWithDifferenceUpTo(x, 6, known)
}

// PrimeTripletsUpTo returns prime triplets (p, p+2, p+6) and
// (p, p+4, p+6) with all members <= x.
func PrimeTripletsUpTo(x int, known []int) [][3]int {
	primes := PrimesUpTo(x-6, known)
	var out [][3]int
	for _, p := range primes {
		if IsPrime(p+2, primes) && IsPrime(p+6, primes) {
			out = append(out, [3]int{p, p + 2, p + 6})
		}
		if IsPrime(p+4, primes) && IsPrime(p+6, primes) {
			out = append(out, [3]int{p, p + 4, p + 6})
		}
	}
	return out
}

// PrimeQuadrupletsUpTo returns prime quadruplets (p, p+2, p+6, p+8)
// with all members <= x.
func PrimeQuadrupletsUpTo(x int, known []int) [][4]int {
	primes := PrimesUpTo(x-8, known)
	var out [][4]int
	for _, p := range primes {
		if IsPrime(p+2, primes) && IsPrime(p+6, primes) && IsPrime(p+8, primes) {
			out = append(out, [4]int{p, p + 2, p + 6, p + 8})
		}
	}
	return out
}
