//go:build !amd64 && !arm64

package vec

func init() {
	// Other architectures use the scalar fallback. Candidates for real
	// detection later: riscv64 vector extension, wasm SIMD128.
	setScalarMode()
}
