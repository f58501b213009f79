//go:build arm64

package vec

func init() {
	if noSimdEnv() {
		setScalarMode()
		return
	}

	// NEON is mandatory on arm64 and covers the full primitive set:
	// MUL on every lane width, SQADD/UQADD saturation, FMLA, and ADDV
	// horizontal reduction.
	currentLevel = DispatchNEON
	currentWidth = 16
	features = Features{
		SaturatingOps: true,
		WideMul8:      true,
		WideMul16:     true,
		WideMul32:     true,
		WideMul64:     false, // no 64-bit NEON multiply; emulated
		FMA:           true,
		MultiHadd:     true,
	}
}
