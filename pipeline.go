package avif

import (
	"github.com/goavif/avifcore/internal/alpha"
	"github.com/goavif/avifcore/internal/colorconv"
	"github.com/goavif/avifcore/internal/pixbuf"
)

// Decode decodes a complete AVIF file using the default configuration and
// no cancellation support. parser and decoder are the caller-supplied
// container/AV1 collaborators (this package has no parser or codec of its
// own — see ContainerParser and AV1Decoder).
func Decode(data []byte, parser ContainerParser, decoder AV1Decoder) (*pixbuf.PixelData, error) {
	return DecodeWith(data, parser, decoder, DefaultConfig(), NeverCancel())
}

// DecodeWith decodes a complete AVIF file per cfg, checking tok for
// cancellation between every stage. The stage sequence is: parse
// container, open the AV1 decoder, decode the color payload, convert it
// to RGB(A), release the decoded color frame, decode the alpha payload
// (if present), and composite it into the output buffer.
//
// At most one decoded AV1 frame is live at a time: the color frame's
// plane storage is dropped as soon as the conversion stage has consumed
// it, before the alpha payload (if any) is decoded.
func DecodeWith(data []byte, parser ContainerParser, decoder AV1Decoder, cfg DecoderConfig, tok CancelToken) (*pixbuf.PixelData, error) {
	if err := check(tok); err != nil {
		return nil, err
	}

	parsed, err := parser.Parse(data, cfg.LenientContainer)
	if err != nil {
		return nil, parseError(err, "parsing AVIF container")
	}
	logDebug("container parsed", "alpha", parsed.AlphaPayload != nil, "premultiplied", parsed.Premultiplied)

	// Reject an oversized advertised pixel count using the container's own
	// nominal dimensions, before the AV1 decoder is even opened — no
	// bitstream is decoded for a file that fails this check.
	if err := validateFrameSize(parsed.Width, parsed.Height, cfg.frameSizeLimit()); err != nil {
		return nil, err
	}

	if err := check(tok); err != nil {
		return nil, err
	}

	handle, err := decoder.Open(cfg.av1Settings())
	if err != nil {
		return nil, decodeError(err, "opening AV1 decoder")
	}
	defer handle.Close()

	colorFrame, err := handle.Decode(parsed.PrimaryPayload)
	if err != nil {
		return nil, decodeError(err, "decoding color payload")
	}
	logDebug("color frame decoded", "width", colorFrame.Width, "height", colorFrame.Height, "bitDepth", colorFrame.BitDepth)

	if err := check(tok); err != nil {
		return nil, err
	}

	out, err := convertColorFrame(colorFrame, cfg, parsed.AlphaPayload != nil)
	if err != nil {
		return nil, err
	}
	// The decoded color frame's plane storage is no longer needed once
	// convertColorFrame has consumed it; dropping the reference here keeps
	// at most one decoded AV1 frame live at a time even while the alpha
	// payload (if any) is being decoded below.
	colorFrame = nil

	if err := check(tok); err != nil {
		return nil, err
	}

	if parsed.AlphaPayload == nil {
		return out, nil
	}

	alphaFrame, err := handle.Decode(parsed.AlphaPayload)
	if err != nil {
		return nil, decodeError(err, "decoding alpha payload")
	}
	if alphaFrame.Width != out.Width || alphaFrame.Height != out.Height {
		return nil, unsupportedError("alpha frame %dx%d does not match image %dx%d", alphaFrame.Width, alphaFrame.Height, out.Width, out.Height)
	}
	logDebug("alpha frame decoded", "width", alphaFrame.Width, "height", alphaFrame.Height, "bitDepth", alphaFrame.BitDepth)

	if err := check(tok); err != nil {
		return nil, err
	}

	rng := resolveRange(alphaFrame.ColorInfo)
	rows := frameAlphaRows{frame: alphaFrame}
	if err := alpha.Composite(out, rows, alphaFrame.BitDepth, alphaRange(rng), parsed.Premultiplied); err != nil {
		return nil, colorError(err, "compositing alpha")
	}
	logDebug("alpha composited", "premultiplied", parsed.Premultiplied)

	return out, nil
}

func validateFrameSize(w, h int, limit uint32) error {
	if w <= 0 || h <= 0 {
		return unsupportedError("invalid frame dimensions %dx%d", w, h)
	}
	if limit == 0 {
		return nil // 0 means unlimited
	}
	if uint64(w)*uint64(h) > uint64(limit) {
		return tooLargeError(w, h)
	}
	return nil
}

// resolveRange applies the sequence-header-absent fallback: Limited
// range, BT.601 matrix (matrix selection itself happens in
// convertColorFrame; this only resolves range).
func resolveRange(ci *ColorInfo) Range {
	if ci == nil {
		return colorconv.RangeLimited
	}
	return ci.Range
}

func resolveMatrix(ci *ColorInfo) (colorconv.Matrix, bool) {
	if ci == nil {
		return colorconv.MatrixBT601, true
	}
	return matrixFromCICP(ci.MatrixCoefficients)
}

func alphaRange(r Range) alpha.Range {
	if r == colorconv.RangeFull {
		return alpha.RangeFull
	}
	return alpha.RangeLimited
}

// convertColorFrame runs the color-conversion kernel over a decoded AV1
// color frame, selecting the 8-bit or 16-bit entry point by bit depth and
// the row-parallel variant when cfg requests it.
func convertColorFrame(f *DecodedFrame, cfg DecoderConfig, wantAlpha bool) (*pixbuf.PixelData, error) {
	matrix, ok := resolveMatrix(f.ColorInfo)
	if !ok {
		return nil, colorConversionError("unsupported matrix coefficients %d", f.ColorInfo.MatrixCoefficients)
	}
	rng := resolveRange(f.ColorInfo)

	opt := colorconv.Options{
		Sampling:  f.Layout.sampling(),
		Range:     rng,
		Matrix:    matrix,
		Upsample:  colorconv.ChromaUpsample(cfg.ChromaUpsample),
		WantAlpha: wantAlpha,
	}

	if f.BitDepth == 8 {
		planes := colorconv.Planes8{
			Y:    f.Y8,
			U:    f.U8,
			V:    f.V8,
			Mono: f.Layout == LayoutI400,
		}
		if workers := cfg.conversionWorkers(); workers > 1 {
			return colorconv.ConvertYUV8Parallel(f.Width, f.Height, planes, opt, workers)
		}
		return colorconv.ConvertYUV8(f.Width, f.Height, planes, opt)
	}

	planes := colorconv.Planes16{
		Y:    f.Y16,
		U:    f.U16,
		V:    f.V16,
		Mono: f.Layout == LayoutI400,
	}
	return colorconv.ConvertYUV16(f.Width, f.Height, f.BitDepth, planes, opt)
}

// frameAlphaRows adapts a DecodedFrame's luma plane to alpha.RowSource.
type frameAlphaRows struct {
	frame *DecodedFrame
}

func (r frameAlphaRows) Height() int { return r.frame.Height }

func (r frameAlphaRows) Row8(y int) []byte {
	return r.frame.Y8.Row(y, r.frame.Width)
}

func (r frameAlphaRows) Row16(y int) []uint16 {
	return r.frame.Y16.Row(y, r.frame.Width)
}
