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

import "unsafe"

// Saturating arithmetic clamps results to the type's representable range
// instead of wrapping. These are deliberately separate operations from
// Add and Sub: callers choose saturation explicitly, never implicitly.

// SaturatedAdd performs element-wise addition with saturation.
// For example, uint8: 250 + 10 = 255 (not 4).
func SaturatedAdd[T Integers](a, b Vec[T]) Vec[T] {
	n := min(len(a.data), len(b.data))
	result := make([]T, n)
	for i := 0; i < n; i++ {
		result[i] = satAdd(a.data[i], b.data[i])
	}
	return Vec[T]{data: result}
}

// SaturatedSub performs element-wise subtraction with saturation.
// For example, uint8: 10 - 20 = 0 (not 246).
func SaturatedSub[T Integers](a, b Vec[T]) Vec[T] {
	n := min(len(a.data), len(b.data))
	result := make([]T, n)
	for i := 0; i < n; i++ {
		result[i] = satSub(a.data[i], b.data[i])
	}
	return Vec[T]{data: result}
}

func satAdd[T Integers](a, b T) T {
	s := a + b
	if isUnsigned[T]() {
		if s < a {
			return maxOf[T]()
		}
		return s
	}
	// Signed overflow: the wrapped sum crossed a in the wrong direction.
	if b > 0 && s < a {
		return maxOf[T]()
	}
	if b < 0 && s > a {
		return minOf[T]()
	}
	return s
}

func satSub[T Integers](a, b T) T {
	d := a - b
	if isUnsigned[T]() {
		if d > a {
			return 0
		}
		return d
	}
	if b < 0 && d < a {
		return maxOf[T]()
	}
	if b > 0 && d > a {
		return minOf[T]()
	}
	return d
}

// isUnsigned reports whether T is an unsigned type: all-ones is positive
// only without a sign bit.
func isUnsigned[T Integers]() bool {
	return ^T(0) > 0
}

// maxOf returns the largest representable value of T.
func maxOf[T Integers]() T {
	if isUnsigned[T]() {
		return ^T(0)
	}
	bits := unsafe.Sizeof(T(0)) * 8
	return T(1)<<(bits-1) - 1
}

// minOf returns the smallest representable value of T.
func minOf[T Integers]() T {
	if isUnsigned[T]() {
		return 0
	}
	bits := unsafe.Sizeof(T(0)) * 8
	return T(1) << (bits - 1)
}
