package vec

import (
	"math"
	"testing"
)

func TestReduceSumConstantFill(t *testing.T) {
	// Sum of a constant-filled vector is c*L, exactly for integers.
	lanes := MaxLanes[int32]()
	if got := ReduceSum(Set(int32(7))); got != int32(7*lanes) {
		t.Errorf("int32: got %d, want %d", got, 7*lanes)
	}

	lanesU := MaxLanes[uint8]()
	if got := ReduceSum(Set(uint8(3))); got != uint8(3*lanesU) {
		t.Errorf("uint8: got %d, want %d", got, uint8(3*lanesU))
	}

	// Floats within rounding tolerance.
	lanesF := MaxLanes[float64]()
	got := ReduceSum(Set(0.1))
	want := 0.1 * float64(lanesF)
	if math.Abs(got-want) > 1e-12 {
		t.Errorf("float64: got %g, want %g", got, want)
	}
}

func TestReduceSumEmpty(t *testing.T) {
	if got := ReduceSum(Vec[float32]{}); got != 0 {
		t.Errorf("empty: got %v, want 0", got)
	}
}

func TestReducePairwiseMatchesSequentialForInts(t *testing.T) {
	data := []int64{1, -2, 3, -4, 5, -6, 7, 100}
	var seq int64
	for _, x := range data {
		seq += x
	}
	if got := reducePairwise(data); got != seq {
		t.Errorf("pairwise: got %d, sequential %d", got, seq)
	}
}

func TestReducePairwiseOddLanes(t *testing.T) {
	if got := reducePairwise([]int32{1, 2, 3}); got != 6 {
		t.Errorf("got %d, want 6", got)
	}
	if got := reducePairwise([]int32{42}); got != 42 {
		t.Errorf("got %d, want 42", got)
	}
}

// Both reduction orders are valid; float results may differ in rounding.
// Verify they agree within tolerance, not bit-for-bit.
func TestReduceOrdersAgreeWithinTolerance(t *testing.T) {
	data := []float64{1e16, 1, -1e16, 1, 0.5, 0.25, 0.125, 2}
	var seq float64
	for _, x := range data {
		seq += x
	}
	pair := reducePairwise(data)
	if math.Abs(pair-seq) > 4 {
		t.Errorf("pairwise %g and sequential %g diverged beyond rounding", pair, seq)
	}
}
