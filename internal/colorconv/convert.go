package colorconv

import (
	"github.com/goavif/avifcore/internal/errs"
	"github.com/goavif/avifcore/internal/pixbuf"
)

// Options configures a single conversion call.
type Options struct {
	Sampling Sampling
	Range    Range
	Matrix   Matrix
	Upsample ChromaUpsample // ignored unless Sampling == Sampling420
	WantAlpha bool          // if true, output carries an alpha channel initialized opaque
}

// ConvertYUV8 converts an 8-bit planar YUV frame to an interleaved RGB or
// RGBA pixel buffer. u/v may be absent only if opt.Sampling is
// SamplingMono (or planes.Mono is set), in which case this entry delegates
// to ConvertMono8; it returns Unsupported if planes are missing for a
// non-monochrome layout.
func ConvertYUV8(width, height int, planes Planes8, opt Options) (*pixbuf.PixelData, error) {
	if opt.Sampling == SamplingMono || planes.Mono {
		return ConvertMono8(width, height, planes.Y, opt.WantAlpha)
	}
	if planes.U.Buf == nil || planes.V.Buf == nil {
		return nil, errs.New(errs.Unsupported, "YUV planes missing for non-monochrome layout")
	}
	if !supported(opt.Matrix) {
		return nil, errs.New(errs.ColorConversion, "unsupported matrix coefficients %d", opt.Matrix)
	}

	kind := pixbuf.RGB8
	if opt.WantAlpha {
		kind = pixbuf.RGBA8
	}
	out := pixbuf.New8(kind, width, height)
	channels := kind.Channels()

	useUpsample := opt.Upsample
	if opt.Sampling != Sampling420 {
		useUpsample = UpsampleNearest
	}

	path := SelectPathFor(opt.Matrix)
	fast := path == PathFixedPoint && opt.Matrix == MatrixBT709 && opt.Range == RangeFull

	convertYUV8RowRange(width, planes, opt, useUpsample, path, fast, out, channels, 0, height)
	return out, nil
}

// convertYUV8RowRange converts luma rows [yStart, yEnd) of planes into
// out, following the already-resolved upsample policy and code path. It
// touches no state outside its own row range, so disjoint calls from
// separate goroutines over disjoint ranges are safe and produce output
// byte-identical to the sequential loop (see parallel.go).
func convertYUV8RowRange(width int, planes Planes8, opt Options, useUpsample ChromaUpsample, path Path, fast bool, out *pixbuf.PixelData, channels, yStart, yEnd int) {
	var curow, cvrow, rgbRow []byte
	if path == PathVector {
		curow = make([]byte, width)
		cvrow = make([]byte, width)
		rgbRow = make([]byte, width*3)
	}

	for y := yStart; y < yEnd; y++ {
		yRow := planes.Y.Row(y, width)
		dst := out.Row8(y)

		if path == PathVector {
			for x := 0; x < width; x++ {
				if useUpsample == UpsampleBilinear && opt.Sampling == Sampling420 {
					curow[x] = BilinearChroma8(planes.U, width, out.Height, x, y)
					cvrow[x] = BilinearChroma8(planes.V, width, out.Height, x, y)
				} else {
					curow[x] = NearestChroma8(planes.U, width, x, y, opt.Sampling)
					cvrow[x] = NearestChroma8(planes.V, width, x, y, opt.Sampling)
				}
			}
			// VectorRowRGB8 only errors for a matrix with no linear
			// recipe; SelectPathFor never returns PathVector for one.
			_ = VectorRowRGB8(yRow[:width], curow, cvrow, 8, opt.Range, opt.Matrix, rgbRow)
			for x := 0; x < width; x++ {
				off := x * channels
				dst[off+0] = rgbRow[x*3+0]
				dst[off+1] = rgbRow[x*3+1]
				dst[off+2] = rgbRow[x*3+2]
				if opt.WantAlpha {
					dst[off+3] = 0xFF
				}
			}
			continue
		}

		for x := 0; x < width; x++ {
			var cu, cv byte
			if useUpsample == UpsampleBilinear && opt.Sampling == Sampling420 {
				cu = BilinearChroma8(planes.U, width, out.Height, x, y)
				cv = BilinearChroma8(planes.V, width, out.Height, x, y)
			} else {
				cu = NearestChroma8(planes.U, width, x, y, opt.Sampling)
				cv = NearestChroma8(planes.V, width, x, y, opt.Sampling)
			}

			var r, g, b uint8
			if fast {
				r, g, b = FixedBT709Full(int(yRow[x]), int(cu), int(cv))
			} else if path == PathFixedPoint {
				r, g, b, _ = FixedGeneric(int(yRow[x]), int(cu), int(cv), 8, opt.Range, opt.Matrix)
			} else {
				fr, fg, fb, _ := ScalarPixel(int(yRow[x]), int(cu), int(cv), 8, opt.Range, opt.Matrix)
				r, g, b = QuantizeTo8(fr), QuantizeTo8(fg), QuantizeTo8(fb)
			}

			off := x * channels
			dst[off+0] = r
			dst[off+1] = g
			dst[off+2] = b
			if opt.WantAlpha {
				dst[off+3] = 0xFF
			}
		}
	}
}

// ConvertYUV16 converts a 10/12/16-bit planar YUV frame to an interleaved
// RGB16 or RGBA16 pixel buffer. Output samples are bit-replicated into the
// full 16-bit range (see QuantizeTo16), not zero-extended.
func ConvertYUV16(width, height, bitDepth int, planes Planes16, opt Options) (*pixbuf.PixelData, error) {
	if bitDepth != 10 && bitDepth != 12 && bitDepth != 16 {
		return nil, errs.New(errs.Unsupported, "unsupported bit depth %d for 16-bit conversion", bitDepth)
	}
	if opt.Sampling == SamplingMono || planes.Mono {
		return ConvertMono16(width, height, bitDepth, planes.Y, opt.WantAlpha)
	}
	if planes.U.Buf == nil || planes.V.Buf == nil {
		return nil, errs.New(errs.Unsupported, "YUV planes missing for non-monochrome layout")
	}
	if !supported(opt.Matrix) {
		return nil, errs.New(errs.ColorConversion, "unsupported matrix coefficients %d", opt.Matrix)
	}

	kind := pixbuf.RGB16
	if opt.WantAlpha {
		kind = pixbuf.RGBA16
	}
	out := pixbuf.New16(kind, width, height)
	channels := kind.Channels()

	useUpsample := opt.Upsample
	if opt.Sampling != Sampling420 {
		useUpsample = UpsampleNearest
	}

	for y := 0; y < height; y++ {
		yRow := planes.Y.Row(y, width)
		dst := out.Row16(y)
		for x := 0; x < width; x++ {
			var cu, cv uint16
			if useUpsample == UpsampleBilinear && opt.Sampling == Sampling420 {
				cu = BilinearChroma16(planes.U, width, height, x, y)
				cv = BilinearChroma16(planes.V, width, height, x, y)
			} else {
				cu = NearestChroma16(planes.U, width, x, y, opt.Sampling)
				cv = NearestChroma16(planes.V, width, x, y, opt.Sampling)
			}

			fr, fg, fb, _ := ScalarPixel(int(yRow[x]), int(cu), int(cv), bitDepth, opt.Range, opt.Matrix)

			off := x * channels
			dst[off+0] = QuantizeTo16(fr, bitDepth)
			dst[off+1] = QuantizeTo16(fg, bitDepth)
			dst[off+2] = QuantizeTo16(fb, bitDepth)
			if opt.WantAlpha {
				dst[off+3] = 0xFFFF
			}
		}
	}
	return out, nil
}

// ConvertMono8 produces a grayscale or (if wantAlpha) opaque-alpha RGBA
// buffer from a luma-only 8-bit plane.
func ConvertMono8(width, height int, y Plane8, wantAlpha bool) (*pixbuf.PixelData, error) {
	if !wantAlpha {
		out := pixbuf.New8(pixbuf.Gray8, width, height)
		for row := 0; row < height; row++ {
			copy(out.Row8(row), y.Row(row, width))
		}
		return out, nil
	}
	out := pixbuf.New8(pixbuf.RGBA8, width, height)
	for row := 0; row < height; row++ {
		src := y.Row(row, width)
		dst := out.Row8(row)
		for x := 0; x < width; x++ {
			v := src[x]
			dst[x*4+0], dst[x*4+1], dst[x*4+2], dst[x*4+3] = v, v, v, 0xFF
		}
	}
	return out, nil
}

// ConvertMono16 is ConvertMono8's counterpart for 10/12/16-bit luma-only
// planes.
func ConvertMono16(width, height, bitDepth int, y Plane16, wantAlpha bool) (*pixbuf.PixelData, error) {
	if !wantAlpha {
		out := pixbuf.New16(pixbuf.Gray16, width, height)
		for row := 0; row < height; row++ {
			src := y.Row(row, width)
			dst := out.Row16(row)
			for x := 0; x < width; x++ {
				dst[x] = bitReplicate(src[x], bitDepth)
			}
		}
		return out, nil
	}
	out := pixbuf.New16(pixbuf.RGBA16, width, height)
	for row := 0; row < height; row++ {
		src := y.Row(row, width)
		dst := out.Row16(row)
		for x := 0; x < width; x++ {
			v := bitReplicate(src[x], bitDepth)
			dst[x*4+0], dst[x*4+1], dst[x*4+2], dst[x*4+3] = v, v, v, 0xFFFF
		}
	}
	return out, nil
}

func bitReplicate(v uint16, bitDepth int) uint16 {
	if bitDepth >= 16 {
		return v
	}
	shift := uint(16 - bitDepth)
	return (v << shift) | (v >> (2*uint(bitDepth) - 16))
}
