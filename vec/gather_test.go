package vec

import "testing"

func TestIndicesStride(t *testing.T) {
	idx := IndicesStride[int64](4, 0, 3)
	want := []int64{0, 3, 6, 9}
	for i := range want {
		if idx.Data()[i] != want[i] {
			t.Errorf("lane %d: got %d, want %d", i, idx.Data()[i], want[i])
		}
	}

	idx2 := IndicesStride[int32](3, 5, 2)
	want2 := []int32{5, 7, 9}
	for i := range want2 {
		if idx2.Data()[i] != want2[i] {
			t.Errorf("lane %d: got %d, want %d", i, idx2.Data()[i], want2[i])
		}
	}
}

func TestIndicesIota(t *testing.T) {
	idx := IndicesIota[int64](5)
	for i := 0; i < 5; i++ {
		if idx.Data()[i] != int64(i) {
			t.Errorf("lane %d: got %d", i, idx.Data()[i])
		}
	}
}

func TestGatherScatterStrided(t *testing.T) {
	src := []float64{0, 1, 2, 3, 4, 5, 6, 7}
	idx := IndicesStride[int64](4, 0, 2)

	v := GatherIndex(src, idx)
	want := []float64{0, 2, 4, 6}
	for i := range want {
		if v.Data()[i] != want[i] {
			t.Errorf("gather lane %d: got %v, want %v", i, v.Data()[i], want[i])
		}
	}

	dst := make([]float64, 8)
	ScatterIndex(v, dst, idx)
	for i := 0; i < 8; i++ {
		if i%2 == 0 {
			if dst[i] != float64(i) {
				t.Errorf("scatter index %d: got %v, want %v", i, dst[i], float64(i))
			}
		} else if dst[i] != 0 {
			t.Errorf("scatter wrote untargeted index %d: %v", i, dst[i])
		}
	}
}

func TestGatherOutOfRangeIsZero(t *testing.T) {
	src := []int32{1, 2}
	idx := IndicesStride[int64](4, 0, 2) // indices 0 2 4 6; only 0 is valid
	v := GatherIndex(src, idx)
	if v.Data()[0] != 1 {
		t.Errorf("lane 0: got %d, want 1", v.Data()[0])
	}
	for i := 1; i < 4; i++ {
		if v.Data()[i] != 0 {
			t.Errorf("lane %d: got %d, want 0", i, v.Data()[i])
		}
	}
}

func TestGatherIndexNStopsAtN(t *testing.T) {
	// Only the first two strided elements exist; GatherIndexN(,, 2) must
	// not dereference the remaining indices at all.
	src := []uint16{10, 0, 20}
	idx := IndicesStride[int64](4, 0, 2)
	v := GatherIndexN(src, idx, 2)

	if v.Data()[0] != 10 || v.Data()[1] != 20 {
		t.Errorf("loaded lanes: got %v", v.Data()[:2])
	}
	for i := 2; i < v.NumLanes(); i++ {
		if v.Data()[i] != 0 {
			t.Errorf("lane %d past n: got %d, want 0", i, v.Data()[i])
		}
	}
}

func TestScatterIndexNStopsAtN(t *testing.T) {
	const sentinel = int8(-5)
	dst := []int8{sentinel, sentinel, sentinel, sentinel, sentinel, sentinel}
	idx := IndicesStride[int64](4, 0, 2)
	v := Load([]int8{1, 2, 3, 4})

	ScatterIndexN(v, dst, idx, 2)
	want := []int8{1, sentinel, 2, sentinel, sentinel, sentinel}
	for i := range want {
		if dst[i] != want[i] {
			t.Errorf("index %d: got %d, want %d", i, dst[i], want[i])
		}
	}
}
