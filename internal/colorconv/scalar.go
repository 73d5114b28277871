package colorconv

import (
	"math"

	"github.com/goavif/avifcore/internal/errs"
)

// ScalarPixel converts one (y, u, v) sample triple to normalized [0,1] RGB
// using IEEE-754 float arithmetic. This is the reference path: ground
// truth for the ±1 equivalence tests of the vectorized and fixed-point
// paths, and used directly whenever no faster path is selected.
//
// u and v are ignored for MatrixIdentity (GBR-passthrough, used for
// monochrome and alpha conversion): r=g=b=normalized luma.
func ScalarPixel(y, u, v, bitDepth int, rng Range, m Matrix) (r, g, b float64, err error) {
	if !supported(m) {
		return 0, 0, 0, errs.New(errs.ColorConversion, "unsupported matrix coefficients %d", m)
	}
	rp := rangeParamsFor(bitDepth, rng)
	yp := (float64(y) - rp.yOffset) / rp.yScale

	if m == MatrixIdentity {
		return clamp01(yp), clamp01(yp), clamp01(yp), nil
	}

	cb := (float64(u) - rp.cOffset) / rp.cScale
	cr := (float64(v) - rp.cOffset) / rp.cScale

	if m == MatrixYCgCo {
		r = yp - cb + cr
		g = yp + cb
		b = yp - cb - cr
		return clamp01(r), clamp01(g), clamp01(b), nil
	}

	kk, ok := coefficientsFor(m)
	if !ok {
		return 0, 0, 0, errs.New(errs.ColorConversion, "unrealizable matrix %d at depth %d", m, bitDepth)
	}
	kg := kk.Kg()
	r = yp + 2*(1-kk.Kr)*cr
	b = yp + 2*(1-kk.Kb)*cb
	g = yp - (kk.Kr*(r-yp)+kk.Kb*(b-yp))/kg
	return clamp01(r), clamp01(g), clamp01(b), nil
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// QuantizeTo8 rounds a normalized [0,1] channel value to an 8-bit sample.
func QuantizeTo8(v float64) uint8 {
	return uint8(math.Round(clamp01(v) * 255))
}

// QuantizeTo16 rounds a normalized [0,1] channel value to a bit-replicated
// 16-bit sample: the source bit-depth value is left-shifted into the high
// bits of 16, with the low bits filled by bit replication so that the
// maximum source value maps to the maximum 16-bit value (0xFFFF), not a
// zero-extended one.
func QuantizeTo16(v float64, bitDepth int) uint16 {
	maxVal := uint32(1)<<uint(bitDepth) - 1
	raw := uint32(math.Round(clamp01(v) * float64(maxVal)))
	if bitDepth >= 16 {
		return uint16(raw)
	}
	shift := uint(16 - bitDepth)
	return uint16((raw << shift) | (raw >> (2*uint(bitDepth) - 16)))
}
