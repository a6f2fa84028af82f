package search

import "testing"

func TestIndex(t *testing.T) {
	lst := []int{2, 3, 5, 7, 11, 13}

	for i, x := range lst {
		if got := Index(lst, x); got != i {
			t.Fatalf("Index(%d) = %d, want %d", x, got, i)
		}
	}
	for _, x := range []int{1, 4, 6, 12, 14} {
		if got := Index(lst, x); got != -1 {
			t.Fatalf("Index(%d) = %d, want -1", x, got)
		}
	}
	if got := Index(nil, 2); got != -1 {
		t.Fatalf("Index on empty = %d, want -1", got)
	}
}

func TestLeftRight(t *testing.T) {
	lst := []int{2, 3, 5, 7}

	cases := []struct {
		x           int
		left, right int
	}{
		{1, 0, 0},
		{2, 0, 1},
		{4, 2, 2},
		{7, 3, 4},
		{8, 4, 4},
	}
	for _, c := range cases {
		if got := Left(lst, c.x); got != c.left {
			t.Errorf("Left(%d) = %d, want %d", c.x, got, c.left)
		}
		if got := Right(lst, c.x); got != c.right {
			t.Errorf("Right(%d) = %d, want %d", c.x, got, c.right)
		}
	}
}
