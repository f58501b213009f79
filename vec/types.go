// Package vec provides portable SIMD-style vector operations for the
// numeric kernel layer of an array-computing library.
//
// Operations work on fixed-width vector handles whose lane count is
// determined at startup from the host's SIMD register width. Code written
// against this package runs unchanged whether the active width is 128-bit
// (SSE2, NEON), 256-bit (AVX2), or the scalar fallback.
//
// Basic usage:
//
//	a := vec.Load(data1)
//	b := vec.Load(data2)
//	sum := vec.Add(a, b)
//	vec.Store(sum, output)
package vec

// Floats is a constraint for floating-point lane types.
type Floats interface {
	~float32 | ~float64
}

// SignedInts is a constraint for signed integer lane types.
type SignedInts interface {
	~int8 | ~int16 | ~int32 | ~int64
}

// UnsignedInts is a constraint for unsigned integer lane types.
type UnsignedInts interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Integers is a constraint for all integer lane types.
type Integers interface {
	SignedInts | UnsignedInts
}

// Lanes is a constraint for all types that can occupy a vector lane.
type Lanes interface {
	Floats | Integers
}

// Vec is a portable vector handle holding MaxLanes[T]() lanes of T.
// It is produced by Load, LoadN, Set, Zero, Iota, or an arithmetic
// operation, and consumed by Store, StoreN, or further operations.
// Lanes are never addressed individually by callers; a Vec is treated
// as an atomic register value for the duration of a computation step.
//
// Vec instances should not be created directly.
type Vec[T Lanes] struct {
	data []T
}

// NumLanes returns the number of lanes in this vector.
func (v Vec[T]) NumLanes() int {
	return len(v.data)
}

// Data exposes the lane values as a slice. Intended for tests and
// diagnostics only; kernel code should go through Store/StoreN.
func (v Vec[T]) Data() []T {
	return v.data
}

// Mask is a per-lane predicate consumed by MaskLoad and MaskStore.
// Masks are produced by TailMask or comparison operations, never
// constructed directly.
type Mask[T Lanes] struct {
	bits []bool
}

// NumLanes returns the number of lanes covered by this mask.
func (m Mask[T]) NumLanes() int {
	return len(m.bits)
}

// CountTrue returns the number of active lanes.
func (m Mask[T]) CountTrue() int {
	count := 0
	for _, bit := range m.bits {
		if bit {
			count++
		}
	}
	return count
}

// GetBit reports whether lane i is active.
func (m Mask[T]) GetBit(i int) bool {
	if i < 0 || i >= len(m.bits) {
		return false
	}
	return m.bits[i]
}
