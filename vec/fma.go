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

import "math"

// FMA computes a*b + c per lane.
//
// When the host reports fused multiply-add support, each lane is computed
// with a single rounding step. Otherwise the fallback multiplies and then
// adds, rounding twice; results may differ from the fused form in the
// last ulp. This is a documented precision caveat, not a bug: callers
// that need bit-reproducible results across hosts should not depend on
// the fused behavior.
func FMA[T Floats](a, b, c Vec[T]) Vec[T] {
	if features.FMA {
		return fmaFused(a, b, c)
	}
	return fmaSeparate(a, b, c)
}

// MulAdd is an alias for FMA with the conventional operand order a*b + c.
func MulAdd[T Floats](a, b, c Vec[T]) Vec[T] {
	return FMA(a, b, c)
}

func fmaFused[T Floats](a, b, c Vec[T]) Vec[T] {
	n := min(len(a.data), min(len(b.data), len(c.data)))
	result := make([]T, n)
	switch ad := any(a.data).(type) {
	case []float64:
		bd := any(b.data).([]float64)
		cd := any(c.data).([]float64)
		rd := any(result).([]float64)
		for i := 0; i < n; i++ {
			rd[i] = math.FMA(ad[i], bd[i], cd[i])
		}
	case []float32:
		bd := any(b.data).([]float32)
		cd := any(c.data).([]float32)
		rd := any(result).([]float32)
		for i := 0; i < n; i++ {
			// The float32 product is exact in float64, so this rounds once
			// from the exact sum in almost all cases.
			rd[i] = float32(math.FMA(float64(ad[i]), float64(bd[i]), float64(cd[i])))
		}
	}
	return Vec[T]{data: result}
}

func fmaSeparate[T Floats](a, b, c Vec[T]) Vec[T] {
	n := min(len(a.data), min(len(b.data), len(c.data)))
	result := make([]T, n)
	for i := 0; i < n; i++ {
		result[i] = a.data[i]*b.data[i] + c.data[i]
	}
	return Vec[T]{data: result}
}
