package colorconv

import (
	"sync"

	"github.com/goavif/avifcore/internal/errs"
	"github.com/goavif/avifcore/internal/pixbuf"
)

// ConvertYUV8Parallel is ConvertYUV8's opt-in row-parallel variant: row
// ranges are disjoint and independently computed, so the result is
// byte-identical to ConvertYUV8's sequential output (spec §5: "MUST NOT
// reorder writes within a row and MUST produce the same output bytes as
// the sequential reference"). workers <= 1 falls back to ConvertYUV8.
func ConvertYUV8Parallel(width, height int, planes Planes8, opt Options, workers int) (*pixbuf.PixelData, error) {
	if workers <= 1 || height <= 1 {
		return ConvertYUV8(width, height, planes, opt)
	}
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

	if workers > height {
		workers = height
	}
	rowsPerWorker := (height + workers - 1) / workers

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		yStart := w * rowsPerWorker
		yEnd := yStart + rowsPerWorker
		if yEnd > height {
			yEnd = height
		}
		if yStart >= yEnd {
			continue
		}
		wg.Add(1)
		go func(yStart, yEnd int) {
			defer wg.Done()
			convertYUV8RowRange(width, planes, opt, useUpsample, path, fast, out, channels, yStart, yEnd)
		}(yStart, yEnd)
	}
	wg.Wait()
	return out, nil
}
