//go:build arm64

package colorconv

// probeCapability: NEON is a mandatory baseline feature of arm64, so the
// vectorized path is always available, mirroring the teacher's
// unconditional arm64 NEON overrides in internal/dsp/dsp_arm64.go (which
// never gate behind a runtime probe for the same reason).
func probeCapability() bool {
	return true
}
