// Copyright 2025 govec Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package vec

// Partial (tail) access: the final count%MaxLanes elements of a buffer
// do not fill a whole vector, so loads and stores there must be bounded
// to exactly the remaining element count. Nothing in this file reads or
// writes memory past the first n elements it is given.

// TailMask creates a mask with the first count lanes active.
//
// Example:
//
//	remaining := len(data) % vec.MaxLanes[float32]()
//	if remaining > 0 {
//	    mask := vec.TailMask[float32](remaining)
//	    v := vec.MaskLoad(mask, data[len(data)-remaining:])
//	    // ... process tail
//	}
func TailMask[T Lanes](count int) Mask[T] {
	maxLanes := MaxLanes[T]()
	if count < 0 {
		count = 0
	}
	if count > maxLanes {
		count = maxLanes
	}
	bits := make([]bool, maxLanes)
	for i := 0; i < count; i++ {
		bits[i] = true
	}
	return Mask[T]{bits: bits}
}

// MaskLoad loads src only for lanes where the mask is true.
// Inactive lanes are zero.
func MaskLoad[T Lanes](mask Mask[T], src []T) Vec[T] {
	n := min(len(src), len(mask.bits))
	result := make([]T, len(mask.bits))
	for i := 0; i < n; i++ {
		if mask.bits[i] {
			result[i] = src[i]
		}
	}
	return Vec[T]{data: result}
}

// MaskStore stores v to dst only for lanes where the mask is true.
// Inactive lanes of dst are left unchanged.
func MaskStore[T Lanes](mask Mask[T], v Vec[T], dst []T) {
	n := min(len(dst), min(len(v.data), len(mask.bits)))
	for i := 0; i < n; i++ {
		if mask.bits[i] {
			dst[i] = v.data[i]
		}
	}
}

// LoadN loads the first n elements of src into the low lanes of a full
// vector. The remaining lanes are zero: valid, non-trapping values whose
// contents callers must treat as unspecified.
func LoadN[T Lanes](src []T, n int) Vec[T] {
	maxLanes := MaxLanes[T]()
	if n < 0 {
		n = 0
	}
	if n > maxLanes {
		n = maxLanes
	}
	if n > len(src) {
		n = len(src)
	}
	data := make([]T, maxLanes)
	copy(data, src[:n])
	return Vec[T]{data: data}
}

// StoreN writes only the first n lanes of v to dst. Elements of dst at
// and past index n are never touched.
func StoreN[T Lanes](v Vec[T], dst []T, n int) {
	if n > len(v.data) {
		n = len(v.data)
	}
	if n > len(dst) {
		n = len(dst)
	}
	if n <= 0 {
		return
	}
	copy(dst[:n], v.data[:n])
}
