package vec

import "unsafe"

// This file emulates integer multiplies for lane widths the active
// instruction set cannot multiply natively (see Features.WideMul*).
// Every emulation is bit-identical to the wrapped native result: the
// same truncation to the low half of the wide product.
//
// The 8-bit path mirrors the classic SSE sequence for PMULLB-less
// hardware: reinterpret adjacent lane pairs as 16-bit words, multiply
// the even (low-byte) and odd (high-byte) halves separately, and
// recombine through a fixed 0xFF00 selection mask. The 32-bit path is
// the PMULUDQ even/odd scheme, and the 64-bit path splits each lane
// into 32-bit halves and sums the partial products below bit 64.

// mulEmulated applies the emulated multiply when the lane width lacks a
// native instruction. Reports false when the caller should use the
// direct path.
func mulEmulated[T Lanes](a, b Vec[T]) (Vec[T], bool) {
	switch ad := any(a.data).(type) {
	case []uint8:
		if features.WideMul8 {
			break
		}
		r := mulEvenOdd8(ad, any(b.data).([]uint8))
		return Vec[T]{data: any(r).([]T)}, true
	case []int8:
		if features.WideMul8 {
			break
		}
		// Wrapping multiply is sign-agnostic at the bit level.
		r := mulEvenOdd8(asBytes(ad), asBytes(any(b.data).([]int8)))
		return Vec[T]{data: any(asInt8(r)).([]T)}, true
	case []uint32:
		if features.WideMul32 {
			break
		}
		r := mulEvenOdd32(ad, any(b.data).([]uint32))
		return Vec[T]{data: any(r).([]T)}, true
	case []int32:
		if features.WideMul32 {
			break
		}
		bd := any(b.data).([]int32)
		n := min(len(ad), len(bd))
		au := make([]uint32, n)
		bu := make([]uint32, n)
		for i := 0; i < n; i++ {
			au[i] = uint32(ad[i])
			bu[i] = uint32(bd[i])
		}
		ru := mulEvenOdd32(au, bu)
		r := make([]int32, n)
		for i := 0; i < n; i++ {
			r[i] = int32(ru[i])
		}
		return Vec[T]{data: any(r).([]T)}, true
	case []uint64:
		if features.WideMul64 {
			break
		}
		r := mulHalves64(ad, any(b.data).([]uint64))
		return Vec[T]{data: any(r).([]T)}, true
	case []int64:
		if features.WideMul64 {
			break
		}
		bd := any(b.data).([]int64)
		n := min(len(ad), len(bd))
		au := make([]uint64, n)
		bu := make([]uint64, n)
		for i := 0; i < n; i++ {
			au[i] = uint64(ad[i])
			bu[i] = uint64(bd[i])
		}
		ru := mulHalves64(au, bu)
		r := make([]int64, n)
		for i := 0; i < n; i++ {
			r[i] = int64(ru[i])
		}
		return Vec[T]{data: any(r).([]T)}, true
	}
	return Vec[T]{}, false
}

// mulEvenOdd8 multiplies 8-bit lanes using paired 16-bit products.
// For each lane pair viewed as one 16-bit word:
//
//	even = word(a) * word(b)              // low byte = lane 2k product
//	odd  = (word(a)>>8) * (word(b)>>8)<<8 // high byte = lane 2k+1 product
//	out  = select(0xFF00, odd, even)
func mulEvenOdd8(a, b []uint8) []uint8 {
	n := min(len(a), len(b))
	out := make([]uint8, n)
	paired := n &^ 1
	for i := 0; i < paired; i += 2 {
		aw := uint16(a[i]) | uint16(a[i+1])<<8
		bw := uint16(b[i]) | uint16(b[i+1])<<8
		even := aw * bw
		odd := (aw >> 8) * (bw >> 8) << 8
		word := even&0x00FF | odd&0xFF00
		out[i] = uint8(word)
		out[i+1] = uint8(word >> 8)
	}
	if paired < n {
		out[paired] = a[paired] * b[paired]
	}
	return out
}

// mulEvenOdd32 multiplies 32-bit lanes via even/odd 64-bit products,
// keeping the low half of each, as PMULUDQ-based emulations do.
func mulEvenOdd32(a, b []uint32) []uint32 {
	n := min(len(a), len(b))
	out := make([]uint32, n)
	paired := n &^ 1
	for i := 0; i < paired; i += 2 {
		even := uint64(a[i]) * uint64(b[i])
		odd := uint64(a[i+1]) * uint64(b[i+1])
		// Recombination keeps the low 32 bits of each wide product.
		out[i] = uint32(even)
		out[i+1] = uint32(odd)
	}
	if paired < n {
		out[paired] = a[paired] * b[paired]
	}
	return out
}

// mulHalves64 multiplies 64-bit lanes from 32-bit partial products:
// lo(a)*lo(b) + (lo(a)*hi(b) + hi(a)*lo(b)) << 32. Partial products at
// or above bit 64 do not reach the wrapped result and are skipped.
func mulHalves64(a, b []uint64) []uint64 {
	n := min(len(a), len(b))
	out := make([]uint64, n)
	for i := 0; i < n; i++ {
		aLo, aHi := a[i]&0xFFFFFFFF, a[i]>>32
		bLo, bHi := b[i]&0xFFFFFFFF, b[i]>>32
		out[i] = aLo*bLo + (aLo*bHi+aHi*bLo)<<32
	}
	return out
}

func asBytes(s []int8) []uint8 {
	if len(s) == 0 {
		return nil
	}
	return unsafe.Slice((*uint8)(unsafe.Pointer(unsafe.SliceData(s))), len(s))
}

func asInt8(s []uint8) []int8 {
	if len(s) == 0 {
		return nil
	}
	return unsafe.Slice((*int8)(unsafe.Pointer(unsafe.SliceData(s))), len(s))
}
