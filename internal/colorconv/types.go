// Package colorconv implements the YUV→RGB color conversion kernel: chroma
// upsampling, matrix/range handling, and scalar/vectorized/fixed-point
// conversion code paths with runtime-gated SIMD dispatch.
package colorconv

// Plane8 is a read-only 8-bit plane view. Stride may exceed Width; callers
// must index rows as Buf[row*Stride : row*Stride+Width], never assume
// contiguity across rows.
type Plane8 struct {
	Buf    []byte
	Stride int
}

// Plane16 is a read-only plane view whose samples have been widened to
// uint16 (for 10/12/16-bit source depths). Stride is counted in samples.
type Plane16 struct {
	Buf    []uint16
	Stride int
}

// Row returns the width-length slice for row y, respecting Stride.
func (p Plane8) Row(y, width int) []byte {
	off := y * p.Stride
	return p.Buf[off : off+width]
}

// Row returns the width-length slice for row y, respecting Stride.
func (p Plane16) Row(y, width int) []uint16 {
	off := y * p.Stride
	return p.Buf[off : off+width]
}

// Sampling identifies the chroma subsampling layout of a YUV frame.
type Sampling int

const (
	Sampling444 Sampling = iota
	Sampling422
	Sampling420
	SamplingMono
)

// Range is the encoded integer sample range.
type Range int

const (
	RangeLimited Range = iota
	RangeFull
)

// Matrix identifies one of the supported matrix-coefficient sets.
type Matrix int

const (
	MatrixIdentity Matrix = iota
	MatrixBT601
	MatrixBT709
	MatrixBT2020NCL
	MatrixSMPTE240M
	MatrixFCC
	MatrixBT470BG
	MatrixYCgCo
)

// ChromaUpsample selects the chroma upsampling policy.
type ChromaUpsample int

const (
	// UpsampleNearest is the normative default: nearest-neighbor duplication.
	UpsampleNearest ChromaUpsample = iota
	// UpsampleBilinear is opt-in only, valid for 4:2:0 sources.
	UpsampleBilinear
)

// Planes8 bundles the three (or one, for monochrome) input plane views for
// an 8-bit conversion.
type Planes8 struct {
	Y, U, V Plane8
	Mono    bool
}

// Planes16 bundles the three (or one, for monochrome) input plane views
// for a 10/12/16-bit conversion.
type Planes16 struct {
	Y, U, V Plane16
	Mono    bool
}
