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

package algo

import (
	"fmt"

	"github.com/arraykit/govec/vec"
)

// Func maps one vector to another. Implementations must be pure: no
// retained references to the argument past return, and they must
// tolerate being invoked on a remainder vector whose upper lanes hold
// unspecified (but valid, non-trapping) values — those lanes are never
// stored.
type Func[T vec.Lanes] func(vec.Vec[T]) vec.Vec[T]

// Transform sets out[i*outStride] = f(in[i*inStride]) for every i in
// [0, count), processing MaxLanes[T]() elements per step. Unit strides
// use contiguous loads and stores; other strides go through gather and
// scatter with a precomputed index vector. The final partial vector is
// handled with a single load/compute/store bounded to exactly the
// remaining element count, so no memory outside the declared extents is
// ever read or written.
//
// Preconditions (violations panic before any output is written):
// count >= 0, both strides >= 1, and when count > 0 each buffer must
// hold at least (count-1)*stride + 1 elements. Zero and negative
// strides are expected to be normalized by the calling array layer.
//
// Behavior is unspecified when in and out overlap; callers must pass
// non-aliasing views. Transform keeps no state across calls and is safe
// to invoke concurrently on disjoint buffers.
func Transform[T vec.Lanes](in []T, inStride int, out []T, outStride int, count int, f Func[T]) {
	checkView("in", len(in), inStride, count, in == nil)
	checkView("out", len(out), outStride, count, out == nil)
	if count == 0 {
		return
	}

	lanes := vec.MaxLanes[T]()
	var srcIdx, dstIdx vec.Vec[int64]
	if inStride != 1 {
		srcIdx = vec.IndicesStride[int64](lanes, 0, int64(inStride))
	}
	if outStride != 1 {
		dstIdx = vec.IndicesStride[int64](lanes, 0, int64(outStride))
	}

	var (
		i      int
		inOff  int
		outOff int
	)
	for ; i+lanes <= count; i += lanes {
		var v vec.Vec[T]
		if inStride == 1 {
			v = vec.Load(in[inOff:])
		} else {
			v = vec.GatherIndex(in[inOff:], srcIdx)
		}
		v = f(v)
		if outStride == 1 {
			vec.Store(v, out[outOff:])
		} else {
			vec.ScatterIndex(v, out[outOff:], dstIdx)
		}
		inOff += inStride * lanes
		outOff += outStride * lanes
	}

	remaining := count - i
	if remaining == 0 {
		return
	}

	var v vec.Vec[T]
	if inStride == 1 {
		v = vec.LoadN(in[inOff:], remaining)
	} else {
		v = vec.GatherIndexN(in[inOff:], srcIdx, remaining)
	}
	v = f(v)
	if outStride == 1 {
		vec.StoreN(v, out[outOff:], remaining)
	} else {
		vec.ScatterIndexN(v, out[outOff:], dstIdx, remaining)
	}
}

// Apply is the contiguous fast path of Transform: both strides are 1 and
// the element count is min(len(in), len(out)). It skips index-vector
// setup and stride bookkeeping entirely.
func Apply[T vec.Lanes](in, out []T, f Func[T]) {
	n := min(len(in), len(out))
	lanes := vec.MaxLanes[T]()

	i := 0
	for ; i+lanes <= n; i += lanes {
		vec.Store(f(vec.Load(in[i:])), out[i:])
	}
	if remaining := n - i; remaining > 0 {
		vec.StoreN(f(vec.LoadN(in[i:], remaining)), out[i:], remaining)
	}
}

// checkView validates one side of a strided view. All checks run before
// the first store, so a rejected call writes nothing.
func checkView(name string, length, stride, count int, isNil bool) {
	if count < 0 {
		panic(fmt.Sprintf("algo: Transform: negative count %d", count))
	}
	if count == 0 {
		return
	}
	if stride < 1 {
		panic(fmt.Sprintf("algo: Transform: %s stride %d, want >= 1", name, stride))
	}
	if isNil {
		panic(fmt.Sprintf("algo: Transform: nil %s buffer with count %d", name, count))
	}
	if need := (count-1)*stride + 1; length < need {
		panic(fmt.Sprintf("algo: Transform: %s has %d elements, need %d for count %d stride %d",
			name, length, need, count, stride))
	}
}
