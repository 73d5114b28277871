//go:build amd64

package colorconv

import "golang.org/x/sys/cpu"

// probeCapability is the one-time, O(1) runtime probe for the amd64
// vectorized path's capability-proof token: AVX2 with FMA, matching
// spec's "SIMD dispatch ... AVX2/FMA on x86-64". golang.org/x/sys/cpu
// caches its own feature detection at package init, so this call is a
// pure field read.
func probeCapability() bool {
	return cpu.X86.HasAVX2 && cpu.X86.HasFMA
}
