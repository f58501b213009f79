package vec

import (
	"math"
	"testing"
)

func TestSaturatedAddUint8(t *testing.T) {
	a := Load([]uint8{255, 250, 100, 0})
	b := Load([]uint8{1, 10, 50, 100})
	result := SaturatedAdd(a, b)

	expected := []uint8{255, 255, 150, 100} // 255+1 saturates, wrapping would give 0
	for i := 0; i < len(expected) && i < result.NumLanes(); i++ {
		if result.Data()[i] != expected[i] {
			t.Errorf("lane %d: got %d, want %d", i, result.Data()[i], expected[i])
		}
	}
}

func TestSaturatedAddInt8(t *testing.T) {
	a := Load([]int8{120, -120, 50, -50})
	b := Load([]int8{10, -10, 50, -50})
	result := SaturatedAdd(a, b)

	expected := []int8{127, -128, 100, -100}
	for i := 0; i < len(expected) && i < result.NumLanes(); i++ {
		if result.Data()[i] != expected[i] {
			t.Errorf("lane %d: got %d, want %d", i, result.Data()[i], expected[i])
		}
	}
}

func TestSaturatedSubUint8(t *testing.T) {
	a := Load([]uint8{10, 100, 0, 255})
	b := Load([]uint8{20, 50, 100, 1})
	result := SaturatedSub(a, b)

	expected := []uint8{0, 50, 0, 254}
	for i := 0; i < len(expected) && i < result.NumLanes(); i++ {
		if result.Data()[i] != expected[i] {
			t.Errorf("lane %d: got %d, want %d", i, result.Data()[i], expected[i])
		}
	}
}

func TestSaturatedSubInt16(t *testing.T) {
	a := Load([]int16{-32760, 32760, 0, 5})
	b := Load([]int16{100, -100, 0, 5})
	result := SaturatedSub(a, b)

	expected := []int16{-32768, 32767, 0, 0}
	for i := 0; i < len(expected) && i < result.NumLanes(); i++ {
		if result.Data()[i] != expected[i] {
			t.Errorf("lane %d: got %d, want %d", i, result.Data()[i], expected[i])
		}
	}
}

func TestSaturatedAddInt64Bounds(t *testing.T) {
	a := Load([]int64{math.MaxInt64, math.MinInt64})
	b := Load([]int64{1, -1})
	result := SaturatedAdd(a, b)

	if result.Data()[0] != math.MaxInt64 {
		t.Errorf("MaxInt64+1: got %d, want MaxInt64", result.Data()[0])
	}
	if result.Data()[1] != math.MinInt64 {
		t.Errorf("MinInt64-1: got %d, want MinInt64", result.Data()[1])
	}
}

func TestSaturatedAddUint64Bounds(t *testing.T) {
	a := Load([]uint64{math.MaxUint64, 10})
	b := Load([]uint64{5, 20})
	result := SaturatedAdd(a, b)

	if result.Data()[0] != math.MaxUint64 {
		t.Errorf("MaxUint64+5: got %d, want MaxUint64", result.Data()[0])
	}
	if result.Data()[1] != 30 {
		t.Errorf("10+20: got %d, want 30", result.Data()[1])
	}
}

func TestTypeBounds(t *testing.T) {
	if got := maxOf[int8](); got != math.MaxInt8 {
		t.Errorf("maxOf[int8]: got %d", got)
	}
	if got := minOf[int8](); got != math.MinInt8 {
		t.Errorf("minOf[int8]: got %d", got)
	}
	if got := maxOf[int32](); got != math.MaxInt32 {
		t.Errorf("maxOf[int32]: got %d", got)
	}
	if got := maxOf[uint16](); got != math.MaxUint16 {
		t.Errorf("maxOf[uint16]: got %d", got)
	}
	if got := minOf[uint64](); got != 0 {
		t.Errorf("minOf[uint64]: got %d", got)
	}
	if got := maxOf[int64](); got != math.MaxInt64 {
		t.Errorf("maxOf[int64]: got %d", got)
	}
	if !isUnsigned[uint8]() || isUnsigned[int8]() {
		t.Error("isUnsigned misclassified 8-bit types")
	}
}

// Saturating and wrapping variants must stay distinct operations.
func TestSaturatingVersusWrapping(t *testing.T) {
	a := Load([]uint8{255})
	b := Load([]uint8{1})

	if got := SaturatedAdd(a, b).Data()[0]; got != 255 {
		t.Errorf("SaturatedAdd(255, 1): got %d, want 255", got)
	}
	if got := Add(a, b).Data()[0]; got != 0 {
		t.Errorf("Add(255, 1): got %d, want 0 (wrap)", got)
	}
}
