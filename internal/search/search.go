// Package search provides bisection over sorted int slices.
package search

import "sort"

// Left returns the leftmost position at which x could be inserted into
// sorted while keeping it sorted.
func Left(sorted []int, x int) int {
	return sort.Search(len(sorted), func(i int) bool { return sorted[i] >= x })
}

// Right returns the rightmost position at which x could be inserted into
// sorted while keeping it sorted (i.e. past any equal run).
func Right(sorted []int, x int) int {
	return sort.Search(len(sorted), func(i int) bool { return sorted[i] > x })
}

// Index returns the position of x in sorted, or -1 if absent.
func Index(sorted []int, x int) int {
	pos := Left(sorted, x)
	if pos == len(sorted) || sorted[pos] != x {
		return -1
	}
	return pos
}
