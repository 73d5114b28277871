package avif

// DefaultFrameSizeLimit bounds decoded frame area (width*height) absent an
// explicit override, chosen to keep a single decoded frame well within a
// typical process's memory budget.
const DefaultFrameSizeLimit = 16384 * 16384

// DecoderConfig controls how DecodeWith drives the container parser and
// AV1 decoder. DefaultConfig() returns the configuration Decode uses; a
// zero value is also accepted and means no frame size limit (see
// FrameSizeLimit) with sequential color conversion.
type DecoderConfig struct {
	// Threads is the worker count passed to AV1Decoder.Open and, if
	// ConversionWorkers is 0, also the row-parallelism fan-out used by the
	// color-conversion kernel for 8-bit frames. Values <= 1 mean sequential
	// conversion.
	Threads int

	// ConversionWorkers overrides the color-conversion kernel's row
	// parallelism independently of Threads. 0 means "use Threads". Row
	// parallelism applies to 8-bit frames only; 10/12-bit frames are
	// always converted sequentially.
	ConversionWorkers int

	// ApplyFilmGrain, if true, asks the AV1 decoder to apply any film
	// grain synthesis parameters present in the bitstream.
	ApplyFilmGrain bool

	// FrameSizeLimit rejects images whose width*height exceeds it with
	// ErrImageTooLarge, before any AV1 decode is attempted. 0 means
	// unlimited — DefaultConfig sets a concrete default instead of leaving
	// this at its zero value.
	FrameSizeLimit uint32

	// LenientContainer relaxes the container parser's box-ordering and
	// duplicate-box checks, for files that deviate from the recommended
	// layout without being outright invalid.
	LenientContainer bool

	// ChromaUpsample selects the chroma upsampling filter used for 4:2:0
	// content. The zero value (UpsampleNearest) matches most reference
	// decoders' default.
	ChromaUpsample ChromaUpsampleMode
}

// ChromaUpsampleMode selects how 4:2:0 chroma is upsampled to luma
// resolution.
type ChromaUpsampleMode int

const (
	UpsampleNearest ChromaUpsampleMode = iota
	UpsampleBilinear
)

// DefaultConfig returns the configuration used by Decode.
func DefaultConfig() DecoderConfig {
	return DecoderConfig{
		Threads:        1,
		FrameSizeLimit: DefaultFrameSizeLimit,
	}
}

// Clone returns an independent copy of cfg. DecoderConfig currently holds
// no reference types, so this is a plain value copy, but callers should
// still use it rather than assume the layout never grows one.
func (cfg DecoderConfig) Clone() DecoderConfig {
	return cfg
}

// frameSizeLimit returns cfg's configured limit unchanged: 0 means
// unlimited, and only DefaultConfig picks a concrete default. Callers
// (validateFrameSize) must treat 0 as "no check", not as "use the default".
func (cfg DecoderConfig) frameSizeLimit() uint32 {
	return cfg.FrameSizeLimit
}

func (cfg DecoderConfig) conversionWorkers() int {
	if cfg.ConversionWorkers > 0 {
		return cfg.ConversionWorkers
	}
	return cfg.Threads
}

func (cfg DecoderConfig) av1Settings() AV1Settings {
	return AV1Settings{
		Threads:        cfg.Threads,
		ApplyGrain:     cfg.ApplyFilmGrain,
		FrameSizeLimit: cfg.frameSizeLimit(),
	}
}
