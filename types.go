package avif

import (
	"github.com/goavif/avifcore/internal/colorconv"
	"github.com/goavif/avifcore/internal/pixbuf"
)

// PixelData is the decoder's tagged pixel-buffer union (§3): exactly one
// of RGB8, RGBA8, RGB16, RGBA16, Gray8, Gray16, each with a dense,
// row-major backing array (stride == width * bytes-per-pixel, no
// inter-row padding).
type PixelData = pixbuf.PixelData

// Re-export the pixbuf discriminant values so callers never need to
// import the internal package directly.
const (
	KindRGB8   = pixbuf.RGB8
	KindRGBA8  = pixbuf.RGBA8
	KindRGB16  = pixbuf.RGB16
	KindRGBA16 = pixbuf.RGBA16
	KindGray8  = pixbuf.Gray8
	KindGray16 = pixbuf.Gray16
)

// Range is the encoded integer sample range (limited or full).
type Range = colorconv.Range

const (
	RangeLimited = colorconv.RangeLimited
	RangeFull    = colorconv.RangeFull
)

// PixelLayout identifies an AV1 frame's chroma-sampling layout, per the
// AV1-decoder collaborator contract (§6).
type PixelLayout int

const (
	LayoutI400 PixelLayout = iota // monochrome
	LayoutI420
	LayoutI422
	LayoutI444
)

func (l PixelLayout) sampling() colorconv.Sampling {
	switch l {
	case LayoutI400:
		return colorconv.SamplingMono
	case LayoutI422:
		return colorconv.Sampling422
	case LayoutI444:
		return colorconv.Sampling444
	default:
		return colorconv.Sampling420
	}
}

// ColorInfo carries the AV1 sequence header's color-info block (§3/§6):
// CICP primaries/transfer/matrix-coefficients code points and the encoded
// sample range. A nil *ColorInfo on a DecodedFrame means the sequence
// header omitted this block entirely.
type ColorInfo struct {
	Primaries          int
	Transfer           int
	MatrixCoefficients int
	Range              Range
}

// matrixFromCICP maps an ISO/IEC 23091 (H.273) matrix-coefficients code
// point onto the conversion kernel's Matrix enum.
func matrixFromCICP(cp int) (colorconv.Matrix, bool) {
	switch cp {
	case 0:
		return colorconv.MatrixIdentity, true
	case 1:
		return colorconv.MatrixBT709, true
	case 4:
		return colorconv.MatrixFCC, true
	case 5, 6:
		// 5 = BT.470BG, 6 = BT.601 (SMPTE 170M/BT.601 share a matrix).
		if cp == 5 {
			return colorconv.MatrixBT470BG, true
		}
		return colorconv.MatrixBT601, true
	case 7:
		return colorconv.MatrixSMPTE240M, true
	case 8:
		return colorconv.MatrixYCgCo, true
	case 9:
		return colorconv.MatrixBT2020NCL, true
	default:
		return 0, false
	}
}

// ImageInfo is the decoder's color/geometry descriptor (§3), surfaced
// alongside a decoded PixelData by callers that need more than the pixel
// buffer itself (Decode/DecodeWith return only the buffer, per §6's
// minimal public surface; ImageInfo is exposed for collaborators/tests
// that need to inspect intermediate metadata).
type ImageInfo struct {
	Width, Height  int
	BitDepth       int
	HasAlpha       bool
	Premultiplied  bool
	Monochrome     bool
	ColorInfo      *ColorInfo
	ChromaSampling PixelLayout
}

// PlaneView8 is an 8-bit plane view from the AV1 decoder collaborator:
// a read-only contiguous buffer plus a row stride that may exceed width.
type PlaneView8 = colorconv.Plane8

// PlaneView16 is a 10/12/16-bit plane view from the AV1 decoder
// collaborator.
type PlaneView16 = colorconv.Plane16

// DecodedFrame is one decoded AV1 frame (§3/§6): dimensions, bit depth,
// chroma layout, plane views, and sequence-header color info. Exactly one
// of the 8-bit or 16-bit plane trios is populated, selected by whether
// BitDepth == 8.
type DecodedFrame struct {
	Width, Height int
	BitDepth      int
	Layout        PixelLayout
	Y8, U8, V8    PlaneView8
	Y16, U16, V16 PlaneView16
	ColorInfo     *ColorInfo
}
