package colorconv

import "github.com/goavif/avifcore/internal/errs"

// Q-13 fixed-point YUV→RGB conversion: 1.0 is represented as 1<<q13Shift.
// Used by the "fast" 8-bit code path only once the SIMD capability token
// has been obtained (see dispatch.go); without the token the kernel runs
// the float scalar reference (PathScalar) instead of this integer math.
const q13Shift = 13
const q13One = 1 << q13Shift
const q13Half = 1 << (q13Shift - 1)

// bt709FullConstants are the libyuv-derived fixed-point constants for
// BT.709, full range, named per spec: Y-gain, Cr-gain, Cb-gain,
// G-U-gain, G-V-gain and their combined per-channel biases.
const (
	bt709YGain  = 18997
	bt709CrGain = 13075 // R += Cr * bt709CrGain
	bt709CbGain = 16525 // B += Cb * bt709CbGain
	bt709GUGain = 6660  // G -= Cb * bt709GUGain
	bt709GVGain = 3209  // G -= Cr * bt709GVGain
	bt709YBias  = -1160
	bt709BBias  = -17544
	bt709GBias  = 4984
	bt709RBias  = -15880
)

// mulHighRound computes round(a*b / 2^q13Shift) using integer-only math.
func mulHighRound(a, b int32) int32 {
	return (a*b + q13Half) >> q13Shift
}

func clampByte(v int32) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// FixedBT709Full converts one 8-bit (y, u, v) sample using the hardcoded
// libyuv BT.709 full-range fast path. Inputs are pre-biased (Y by -16,
// U/V by -128) before the high-rounding multiply, per spec.
func FixedBT709Full(y, u, v int) (r, g, b uint8) {
	yb := int32(y) - 16
	ub := int32(u) - 128
	vb := int32(v) - 128

	yc := mulHighRound(yb, bt709YGain) + bt709YBias

	rr := yc + mulHighRound(vb, bt709CrGain) + bt709RBias
	gg := yc - mulHighRound(ub, bt709GUGain) - mulHighRound(vb, bt709GVGain) + bt709GBias
	bb := yc + mulHighRound(ub, bt709CbGain) + bt709BBias

	return clampByte(rr), clampByte(gg), clampByte(bb)
}

// genericQ13 holds a matrix's Q-13 fixed-point coefficients, derived from
// the same float recipe as scalar.go so that round-tripped values differ
// from the scalar reference by at most 1 in any channel (spec §4.1).
type genericQ13 struct {
	// R = Y' + rCr*Cr ; B = Y' + bCb*Cb ; G = Y' - gCb*Cb - gCr*Cr
	rCr, bCb, gCb, gCr int32
}

func deriveQ13(m Matrix) (genericQ13, bool) {
	if m == MatrixYCgCo {
		return genericQ13{rCr: q13One, bCb: -q13One, gCb: q13One, gCr: -q13One}, true
	}
	kk, ok := coefficientsFor(m)
	if !ok {
		return genericQ13{}, false
	}
	kg := kk.Kg()
	toQ13 := func(f float64) int32 { return int32(f*float64(q13One) + 0.5*sign(f)) }
	return genericQ13{
		rCr: toQ13(2 * (1 - kk.Kr)),
		bCb: toQ13(2 * (1 - kk.Kb)),
		gCb: toQ13(kk.Kb / kg * 2 * (1 - kk.Kb)),
		gCr: toQ13(kk.Kr / kg * 2 * (1 - kk.Kr)),
	}, true
}

func sign(f float64) float64 {
	if f < 0 {
		return -1
	}
	return 1
}

// FixedGeneric converts one 8-bit (y, u, v) sample using Q-13 fixed-point
// coefficients derived from m's float matrix at full precision, for any
// supported non-Identity matrix and any range.
func FixedGeneric(y, u, v, bitDepth int, rng Range, m Matrix) (r, g, b uint8, err error) {
	coef, ok := deriveQ13(m)
	if !ok {
		return 0, 0, 0, unsupportedMatrixErr(m)
	}
	rp := rangeParamsFor(bitDepth, rng)

	// Normalize into Q13 directly: Y' = (y - yOffset) * q13One / yScale.
	yq := int32((float64(y) - rp.yOffset) * float64(q13One) / rp.yScale)
	cb := int32((float64(u) - rp.cOffset) * float64(q13One) / rp.cScale)
	cr := int32((float64(v) - rp.cOffset) * float64(q13One) / rp.cScale)

	var rr, gg, bb int32
	if m == MatrixYCgCo {
		rr = yq - cb + cr
		gg = yq + cb
		bb = yq - cb - cr
	} else {
		rr = yq + mulHighRound(cr, coef.rCr)
		gg = yq - mulHighRound(cb, coef.gCb) - mulHighRound(cr, coef.gCr)
		bb = yq + mulHighRound(cb, coef.bCb)
	}

	return clampByte(toByteQ13(rr)), clampByte(toByteQ13(gg)), clampByte(toByteQ13(bb)), nil
}

func toByteQ13(v int32) int32 {
	return (v*255 + q13Half) >> q13Shift
}

func unsupportedMatrixErr(m Matrix) error {
	return errs.New(errs.ColorConversion, "unsupported matrix coefficients %d", m)
}
