package vec

import (
	"os"
	"strconv"
	"unsafe"
)

// DispatchLevel identifies the SIMD instruction set the kernel layer is
// modeled on for the current process.
type DispatchLevel int

const (
	// DispatchScalar indicates the pure scalar fallback.
	DispatchScalar DispatchLevel = iota

	// DispatchSSE2 indicates SSE2 (the x86-64 baseline, 128-bit).
	DispatchSSE2

	// DispatchAVX2 indicates AVX2 (256-bit).
	DispatchAVX2

	// DispatchAVX512 indicates AVX-512 (512-bit).
	DispatchAVX512

	// DispatchNEON indicates ARM NEON (128-bit).
	DispatchNEON

	// DispatchSVE indicates ARM SVE (scalable).
	DispatchSVE
)

// String returns a human-readable name for the dispatch level.
func (d DispatchLevel) String() string {
	switch d {
	case DispatchScalar:
		return "scalar"
	case DispatchSSE2:
		return "sse2"
	case DispatchAVX2:
		return "avx2"
	case DispatchAVX512:
		return "avx512"
	case DispatchNEON:
		return "neon"
	case DispatchSVE:
		return "sve"
	default:
		return "unknown"
	}
}

// Features records which operations the detected instruction set implements
// natively. Operations whose flag is false are emulated with bit-identical
// results (integer ops) or a documented precision caveat (FMA, ReduceSum);
// the public signatures are the same either way, so callers never consult
// these flags directly.
type Features struct {
	// SaturatingOps: native saturating integer add/subtract.
	SaturatingOps bool

	// WideMul8, WideMul16, WideMul32, WideMul64: a native multiply
	// producing the wrapped low half for lanes of that width. x86 has no
	// 8-bit multiply at any level, and no 64-bit low multiply before
	// AVX-512DQ; those widths run the even/odd or half-word emulations.
	WideMul8  bool
	WideMul16 bool
	WideMul32 bool
	WideMul64 bool

	// FMA: fused multiply-add with a single rounding step.
	FMA bool

	// MultiHadd: multi-operand horizontal add (HADDPS-style pairwise
	// folding) for reductions.
	MultiHadd bool
}

// currentLevel, currentWidth, and features are resolved once by init()
// in the dispatch_*.go file matching GOARCH.
var (
	currentLevel DispatchLevel
	currentWidth int
	features     Features
)

// CurrentLevel returns the active dispatch level.
func CurrentLevel() DispatchLevel {
	return currentLevel
}

// CurrentWidth returns the vector register width in bytes.
// For example: 16 for SSE2/NEON, 32 for AVX2.
func CurrentWidth() int {
	return currentWidth
}

// CurrentName returns a human-readable name for the active target.
func CurrentName() string {
	return currentLevel.String()
}

// CurrentFeatures returns the capability flags resolved at startup.
func CurrentFeatures() Features {
	return features
}

// noSimdEnv reports whether the GOVEC_NO_SIMD environment variable asks
// for the scalar fallback regardless of CPU capabilities. Useful for
// testing the emulation paths.
func noSimdEnv() bool {
	val := os.Getenv("GOVEC_NO_SIMD")
	if val == "" {
		return false
	}
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

// setScalarMode configures the scalar fallback: 16-byte vectors for
// consistency with the narrowest SIMD targets, and no native features,
// so every emulation path is exercised.
func setScalarMode() {
	currentLevel = DispatchScalar
	currentWidth = 16
	features = Features{}
}

// MaxLanes returns the number of lanes of type T per vector at the
// current register width.
//
// For example, with AVX2 (32 bytes):
//   - float32: 32/4 = 8 lanes
//   - float64: 32/8 = 4 lanes
func MaxLanes[T Lanes]() int {
	var dummy T
	elementSize := int(unsafe.Sizeof(dummy))
	if elementSize == 0 {
		return 0
	}
	return currentWidth / elementSize
}
