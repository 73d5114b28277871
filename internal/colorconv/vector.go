package colorconv

// VectorLaneAVX2 and VectorLaneSSE are tile widths for the vectorized float
// path: 8 lanes for 256-bit (AVX2) registers, 16 for 128-bit registers
// processed two at a time. VectorRowRGB8 below tiles with VectorLaneAVX2 on
// every architecture; VectorLaneSSE is not used by it.
const (
	VectorLaneAVX2 = 8
	VectorLaneSSE  = 16
)

// VectorRowRGB8 converts one row of 8-bit Y/U/V samples (already expanded
// to per-pixel chroma, i.e. post-upsample) to interleaved RGB using the
// same float recipe as ScalarPixel, processed in fixed-width tiles with no
// inter-lane data dependency — the shape a hand-written AVX2/FMA or NEON
// kernel would use, transcribed mechanically from Go rather than written
// as unverified assembly (see DESIGN.md's open-question disposition).
//
// y, u, v must all have the same length (the row width); dst must have
// room for 3*len(y) bytes.
func VectorRowRGB8(y, u, v []byte, bitDepth int, rng Range, m Matrix, dst []byte) error {
	if !supported(m) {
		return unsupportedMatrixErr(m)
	}
	n := len(y)
	lane := VectorLaneAVX2
	i := 0
	for ; i+lane <= n; i += lane {
		convertTileRGB8(y[i:i+lane], u[i:i+lane], v[i:i+lane], bitDepth, rng, m, dst[i*3:(i+lane)*3])
	}
	// Tail: remaining pixels that don't fill a full tile.
	if i < n {
		convertTileRGB8(y[i:n], u[i:n], v[i:n], bitDepth, rng, m, dst[i*3:n*3])
	}
	return nil
}

// convertTileRGB8 converts a small fixed-width tile with no data
// dependency between lanes: every lane's ScalarPixel call is independent,
// which is exactly the property that makes this loop shape
// auto-vectorizable / hand-vectorizable without restructuring.
func convertTileRGB8(y, u, v []byte, bitDepth int, rng Range, m Matrix, dst []byte) {
	for lane := 0; lane < len(y); lane++ {
		r, g, b, _ := ScalarPixel(int(y[lane]), int(u[lane]), int(v[lane]), bitDepth, rng, m)
		dst[lane*3+0] = QuantizeTo8(r)
		dst[lane*3+1] = QuantizeTo8(g)
		dst[lane*3+2] = QuantizeTo8(b)
	}
}
