package primecache

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestTwinPrimesUpTo(t *testing.T) {
	want := [][2]int{{3, 5}, {5, 7}, {11, 13}, {17, 19}, {29, 31}}
	if diff := cmp.Diff(want, TwinPrimesUpTo(31, nil)); diff != "" {
		t.Fatalf("TwinPrimesUpTo(31) mismatch (-want +got):\n%s", diff)
	}
	if got := TwinPrimesUpTo(4, nil); got != nil {
		t.Fatalf("TwinPrimesUpTo(4) = %v, want none", got)
	}
}

func TestCousinPrimesUpTo(t *testing.T) {
	want := [][2]int{{3, 7}, {7, 11}, {13, 17}, {19, 23}}
	if diff := cmp.Diff(want, CousinPrimesUpTo(25, nil)); diff != "" {
		t.Fatalf("CousinPrimesUpTo(25) mismatch (-want +got):\n%s", diff)
	}
}

func TestSexyPrimesUpTo(t *testing.T) {
	want := [][2]int{{5, 11}, {7, 13}, {11, 17}, {13, 19}, {17, 23}, {23, 29}}
	if diff := cmp.Diff(want, SexyPrimesUpTo(29, nil)); diff != "" {
		t.Fatalf("SexyPrimesUpTo(29) mismatch (-want +got):\n%s", diff)
	}
}

func TestPrimeTripletsUpTo(t *testing.T) {
	want := [][3]int{{5, 7, 11}, {7, 11, 13}, {11, 13, 17}, {13, 17, 19}}
	if diff := cmp.Diff(want, PrimeTripletsUpTo(20, nil)); diff != "" {
		t.Fatalf("PrimeTripletsUpTo(20) mismatch (-want +got):\n%s", diff)
	}
}

func TestPrimeQuadrupletsUpTo(t *testing.T) {
	want := [][4]int{{5, 7, 11, 13}, {11, 13, 17, 19}}
	if diff := cmp.Diff(want, PrimeQuadrupletsUpTo(20, nil)); diff != "" {
		t.Fatalf("PrimeQuadrupletsUpTo(20) mismatch (-want +got):\n%s", diff)
	}

	// The next quadruplet after (11,13,17,19) starts at 101.
	got := PrimeQuadrupletsUpTo(110, nil)
	if len(got) != 3 || got[2] != [4]int{101, 103, 107, 109} {
		t.Fatalf("PrimeQuadrupletsUpTo(110) = %v", got)
	}
}

func TestConstellationsRespectSeeds(t *testing.T) {
	seed := PrimesUpTo(50, nil)
	if diff := cmp.Diff(TwinPrimesUpTo(100, nil), TwinPrimesUpTo(100, seed)); diff != "" {
		t.Fatalf("seeded twin scan mismatch (-want +got):\n%s", diff)
	}
}
