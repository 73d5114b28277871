//go:build !amd64 && !arm64 && !wasm

package colorconv

// probeCapability: no vectorized path is implemented for this
// architecture; the kernel always falls back to the bit-exact scalar
// reference.
func probeCapability() bool {
	return false
}
