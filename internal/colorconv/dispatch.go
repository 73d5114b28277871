package colorconv

// Path identifies which conversion code path a given call will use. It is
// the enum-match side of spec's "impl trait with two concrete types
// selected by a process-wide once-initialized enum" design note: obtaining
// a non-zero-value capability token is the only way Path ever becomes
// PathVector, and the probe that produces the token runs exactly once per
// process (see dispatch_amd64.go / dispatch_arm64.go / dispatch_wasm.go /
// dispatch_generic.go).
type Path int

const (
	// PathScalar is the reference float implementation: ground truth,
	// used when no vector ISA capability token is available.
	PathScalar Path = iota
	// PathVector is the data-parallel, fixed-width-tile path.
	PathVector
	// PathFixedPoint is the Q-13 integer "fast" path.
	PathFixedPoint
)

// capabilityToken is a process-wide, read-mostly fact: once probed it is
// never mutated again, satisfying the "SIMD-feature-detection cache is a
// read-mostly process-wide fact initialized on first use" requirement.
var capabilityToken = probeCapability()

// HasVectorCapability reports whether the process has already proven (via
// a one-time, O(1) runtime probe) that the vectorized code path may run.
// The kernel MUST NOT execute PathVector without this being true.
func HasVectorCapability() bool {
	return capabilityToken
}

// SelectPath returns the code path this process will use for the fast
// conversion entry points when no matrix is known yet. Reference-scalar is
// always available and is also the ground truth used by tests;
// PathFixedPoint requires the same capability token as PathVector (both
// are "fast" integer/vector paths, gated identically) and is preferred
// over PathVector when available since it additionally avoids floating
// point entirely.
func SelectPath() Path {
	if HasVectorCapability() {
		return PathFixedPoint
	}
	return PathScalar
}

// SelectPathFor is SelectPath refined by the matrix actually being
// converted: PathFixedPoint requires a Q-13 coefficient derivation for m
// (see deriveQ13), which the Identity matrix has none of. Content using
// Identity still benefits from tiled, data-parallel conversion when the
// capability token is set, so it runs the vectorized float path
// (VectorRowRGB8) instead of falling all the way back to scalar; anything
// with no vector capability at all uses PathScalar regardless of m.
func SelectPathFor(m Matrix) Path {
	if !HasVectorCapability() {
		return PathScalar
	}
	if _, ok := deriveQ13(m); ok {
		return PathFixedPoint
	}
	return PathVector
}
