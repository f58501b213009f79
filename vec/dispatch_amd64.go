//go:build amd64

package vec

import "golang.org/x/sys/cpu"

func init() {
	if noSimdEnv() {
		setScalarMode()
		return
	}

	// SSE2 is the amd64 baseline; everything above it is detected.
	currentLevel = DispatchSSE2
	currentWidth = 16
	features = Features{
		SaturatingOps: true,             // PADDSB/PADDUSB family
		WideMul16:     true,             // PMULLW
		WideMul32:     cpu.X86.HasSSE41, // PMULLD
		FMA:           cpu.X86.HasFMA,   // VFMADD*
		MultiHadd:     cpu.X86.HasSSE3,  // HADDPS/HADDPD
	}

	if cpu.X86.HasAVX2 {
		currentLevel = DispatchAVX2
		currentWidth = 32
		features.WideMul32 = true
	}
	if cpu.X86.HasAVX512F {
		currentLevel = DispatchAVX512
		currentWidth = 64
		features.WideMul64 = cpu.X86.HasAVX512DQ // VPMULLQ
	}
	// No x86 level provides an 8-bit multiply; WideMul8 stays false and
	// 8-bit lanes use the even/odd emulation.
}
