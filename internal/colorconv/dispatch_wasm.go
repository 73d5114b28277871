//go:build wasm

package colorconv

// probeCapability: WASM SIMD128 is a baseline target feature rather than a
// runtime-probed one (there is no equivalent of cpu.X86 for wasm in
// golang.org/x/sys/cpu) — if this binary was compiled for wasm, the
// 128-bit vectorized path is assumed available, per spec's "128-bit SIMD
// on WebAssembly" requirement.
func probeCapability() bool {
	return true
}
