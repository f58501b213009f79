package vec

// Gather and scatter move lanes through computed per-lane offsets, used
// for non-unit-stride access. Out-of-range indices load zero or skip the
// store; strided kernels bound their index vectors so this never fires
// on a valid view.

// GatherIndex loads src[indices[i]] into lane i.
// Out-of-range indices produce a zero lane.
func GatherIndex[T Lanes, I ~int32 | ~int64](src []T, indices Vec[I]) Vec[T] {
	n := len(indices.data)
	result := make([]T, n)
	for i := 0; i < n; i++ {
		idx := int(indices.data[i])
		if idx >= 0 && idx < len(src) {
			result[i] = src[idx]
		}
	}
	return Vec[T]{data: result}
}

// GatherIndexN loads src[indices[i]] for the first n lanes only; the
// remaining lanes are zero. Indices past the first n are never
// dereferenced, so a partial gather cannot read beyond a view that only
// covers n strided elements.
func GatherIndexN[T Lanes, I ~int32 | ~int64](src []T, indices Vec[I], n int) Vec[T] {
	if n > len(indices.data) {
		n = len(indices.data)
	}
	if n < 0 {
		n = 0
	}
	result := make([]T, len(indices.data))
	for i := 0; i < n; i++ {
		idx := int(indices.data[i])
		if idx >= 0 && idx < len(src) {
			result[i] = src[idx]
		}
	}
	return Vec[T]{data: result}
}

// ScatterIndex stores lane i of v to dst[indices[i]].
// Out-of-range indices are skipped.
func ScatterIndex[T Lanes, I ~int32 | ~int64](v Vec[T], dst []T, indices Vec[I]) {
	n := min(len(indices.data), len(v.data))
	for i := 0; i < n; i++ {
		idx := int(indices.data[i])
		if idx >= 0 && idx < len(dst) {
			dst[idx] = v.data[i]
		}
	}
}

// ScatterIndexN stores only the first n lanes of v through indices.
// Lanes at and past n are never written, regardless of their contents.
func ScatterIndexN[T Lanes, I ~int32 | ~int64](v Vec[T], dst []T, indices Vec[I], n int) {
	if n > min(len(indices.data), len(v.data)) {
		n = min(len(indices.data), len(v.data))
	}
	for i := 0; i < n; i++ {
		idx := int(indices.data[i])
		if idx >= 0 && idx < len(dst) {
			dst[idx] = v.data[i]
		}
	}
}

// IndicesIota creates an index vector with values [0, 1, 2, 3, ...].
func IndicesIota[I ~int32 | ~int64](numLanes int) Vec[I] {
	result := make([]I, numLanes)
	for i := 0; i < numLanes; i++ {
		result[i] = I(i)
	}
	return Vec[I]{data: result}
}

// IndicesStride creates an index vector [start, start+stride,
// start+2*stride, ...], the per-lane offsets for stride-spaced access.
func IndicesStride[I ~int32 | ~int64](numLanes int, start, stride I) Vec[I] {
	result := make([]I, numLanes)
	for i := 0; i < numLanes; i++ {
		result[i] = start + I(i)*stride
	}
	return Vec[I]{data: result}
}
