package vec

// ReduceSum sums all lanes to a scalar.
//
// The reduction order is unspecified beyond "sum of all lanes": targets
// with multi-operand horizontal adds fold pairwise, others sum
// sequentially. Integer results are identical either way; floating-point
// results may differ in rounding between the two orders, so float sums
// are not bit-reproducible across implementations.
func ReduceSum[T Lanes](v Vec[T]) T {
	if features.MultiHadd {
		return reducePairwise(v.data)
	}
	var sum T
	for _, x := range v.data {
		sum += x
	}
	return sum
}

// reducePairwise folds adjacent lane pairs until one lane remains,
// matching HADDPS-style reduction trees.
func reducePairwise[T Lanes](lanes []T) T {
	if len(lanes) == 0 {
		var zero T
		return zero
	}
	buf := make([]T, len(lanes))
	copy(buf, lanes)
	n := len(buf)
	for n > 1 {
		m := 0
		for i := 0; i+1 < n; i += 2 {
			buf[m] = buf[i] + buf[i+1]
			m++
		}
		if n&1 == 1 {
			buf[m] = buf[n-1]
			m++
		}
		n = m
	}
	return buf[0]
}
