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

// Package elem provides element-wise operations over whole slices,
// composed from the vec primitives. Binary operations write to a
// separate destination slice; when slice lengths differ, the minimum
// length is used.
package elem

import "github.com/arraykit/govec/vec"

// AddTo computes dst[i] = a[i] + b[i]. Integer lanes wrap.
func AddTo[T vec.Lanes](dst, a, b []T) {
	n := min(len(dst), min(len(a), len(b)))
	lanes := vec.MaxLanes[T]()

	var i int
	for i = 0; i+lanes <= n; i += lanes {
		va := vec.Load(a[i:])
		vb := vec.Load(b[i:])
		vec.Store(vec.Add(va, vb), dst[i:])
	}
	for ; i < n; i++ {
		dst[i] = a[i] + b[i]
	}
}

// SubTo computes dst[i] = a[i] - b[i]. Integer lanes wrap.
func SubTo[T vec.Lanes](dst, a, b []T) {
	n := min(len(dst), min(len(a), len(b)))
	lanes := vec.MaxLanes[T]()

	var i int
	for i = 0; i+lanes <= n; i += lanes {
		va := vec.Load(a[i:])
		vb := vec.Load(b[i:])
		vec.Store(vec.Sub(va, vb), dst[i:])
	}
	for ; i < n; i++ {
		dst[i] = a[i] - b[i]
	}
}

// MulTo computes dst[i] = a[i] * b[i]. Integer lanes keep the wrapped
// low half of the product, matching vec.Mul on every target.
func MulTo[T vec.Lanes](dst, a, b []T) {
	n := min(len(dst), min(len(a), len(b)))
	lanes := vec.MaxLanes[T]()

	var i int
	for i = 0; i+lanes <= n; i += lanes {
		va := vec.Load(a[i:])
		vb := vec.Load(b[i:])
		vec.Store(vec.Mul(va, vb), dst[i:])
	}
	for ; i < n; i++ {
		dst[i] = a[i] * b[i]
	}
}

// DivTo computes dst[i] = a[i] / b[i] with IEEE 754 semantics.
func DivTo[T vec.Floats](dst, a, b []T) {
	n := min(len(dst), min(len(a), len(b)))
	lanes := vec.MaxLanes[T]()

	var i int
	for i = 0; i+lanes <= n; i += lanes {
		va := vec.Load(a[i:])
		vb := vec.Load(b[i:])
		vec.Store(vec.Div(va, vb), dst[i:])
	}
	for ; i < n; i++ {
		dst[i] = a[i] / b[i]
	}
}

// SaturatedAddTo computes dst[i] = a[i] + b[i] clamped to T's range.
func SaturatedAddTo[T vec.Integers](dst, a, b []T) {
	n := min(len(dst), min(len(a), len(b)))
	lanes := vec.MaxLanes[T]()

	var i int
	for i = 0; i+lanes <= n; i += lanes {
		va := vec.Load(a[i:])
		vb := vec.Load(b[i:])
		vec.Store(vec.SaturatedAdd(va, vb), dst[i:])
	}
	if i < n {
		va := vec.LoadN(a[i:], n-i)
		vb := vec.LoadN(b[i:], n-i)
		vec.StoreN(vec.SaturatedAdd(va, vb), dst[i:], n-i)
	}
}

// SaturatedSubTo computes dst[i] = a[i] - b[i] clamped to T's range.
func SaturatedSubTo[T vec.Integers](dst, a, b []T) {
	n := min(len(dst), min(len(a), len(b)))
	lanes := vec.MaxLanes[T]()

	var i int
	for i = 0; i+lanes <= n; i += lanes {
		va := vec.Load(a[i:])
		vb := vec.Load(b[i:])
		vec.Store(vec.SaturatedSub(va, vb), dst[i:])
	}
	if i < n {
		va := vec.LoadN(a[i:], n-i)
		vb := vec.LoadN(b[i:], n-i)
		vec.StoreN(vec.SaturatedSub(va, vb), dst[i:], n-i)
	}
}

// ScaleTo computes dst[i] = c * s[i].
func ScaleTo[T vec.Lanes](dst []T, c T, s []T) {
	n := min(len(dst), len(s))
	lanes := vec.MaxLanes[T]()
	vc := vec.Set(c)

	var i int
	for i = 0; i+lanes <= n; i += lanes {
		vec.Store(vec.Mul(vc, vec.Load(s[i:])), dst[i:])
	}
	for ; i < n; i++ {
		dst[i] = c * s[i]
	}
}

// MulAddTo computes dst[i] = a[i]*b[i] + c[i]. The fused-rounding caveat
// of vec.FMA applies: hosts without fused multiply-add round twice.
func MulAddTo[T vec.Floats](dst, a, b, c []T) {
	n := min(min(len(dst), len(c)), min(len(a), len(b)))
	lanes := vec.MaxLanes[T]()

	var i int
	for i = 0; i+lanes <= n; i += lanes {
		va := vec.Load(a[i:])
		vb := vec.Load(b[i:])
		vc := vec.Load(c[i:])
		vec.Store(vec.FMA(va, vb, vc), dst[i:])
	}
	for ; i < n; i++ {
		dst[i] = a[i]*b[i] + c[i]
	}
}

// Sum returns the sum of all elements of v, or zero for an empty slice.
// Full vectors accumulate into a vector register that is reduced once at
// the end; the tail is added in scalar order. Floating-point totals
// therefore depend on the lane count and are not bit-reproducible across
// targets (see vec.ReduceSum).
func Sum[T vec.Lanes](v []T) T {
	if len(v) == 0 {
		var zero T
		return zero
	}

	acc := vec.Zero[T]()
	lanes := acc.NumLanes()

	var i int
	for i = 0; i+lanes <= len(v); i += lanes {
		acc = vec.Add(acc, vec.Load(v[i:]))
	}
	result := vec.ReduceSum(acc)
	for ; i < len(v); i++ {
		result += v[i]
	}
	return result
}
