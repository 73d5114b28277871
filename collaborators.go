package avif

// ContainerParser parses an AVIF (ISOBMFF) byte stream down to the raw AV1
// payloads the decoder needs, without itself decoding any AV1 bitstream.
// Callers supply an implementation; this package ships none (it has no
// ISOBMFF box parser of its own).
type ContainerParser interface {
	// Parse extracts the primary image's AV1 payload, and its alpha
	// payload if present, from a complete AVIF file. lenient relaxes box
	// ordering/duplicate-box checks for files that don't strictly follow
	// the spec's recommended layout.
	Parse(data []byte, lenient bool) (*ParsedContainer, error)
}

// ParsedContainer is what a ContainerParser hands back: enough to drive an
// AV1Decoder and, if alpha is present, the alpha compositor.
type ParsedContainer struct {
	// PrimaryPayload is the primary item's raw AV1 bitstream (one frame).
	PrimaryPayload []byte
	// AlphaPayload is the auxiliary alpha item's raw AV1 bitstream, or nil
	// if the file carries no alpha channel.
	AlphaPayload []byte
	// Premultiplied is true when the alpha channel is premultiplied into
	// the color channels (the 'prem' item property).
	Premultiplied bool

	// Width and Height are the primary item's nominal dimensions, taken
	// from the container's 'ispe' property. DecodeWith checks these
	// against the configured frame size limit before opening the AV1
	// decoder or decoding any payload, so an oversized advertised pixel
	// count fails with ImageTooLarge without ever touching the bitstream.
	Width, Height int
	// BitDepth is the primary item's nominal bit depth, taken from the
	// container's 'av1C' property.
	BitDepth int
	// ChromaSampling is the primary item's nominal chroma subsampling,
	// taken from the container's 'av1C' property.
	ChromaSampling PixelLayout
	// Monochrome is the container's 'av1C' monochrome flag.
	Monochrome bool
}

// AV1Decoder opens AV1 bitstreams into DecodedFrames. Callers supply an
// implementation backed by a real AV1 codec; this package has none built
// in.
type AV1Decoder interface {
	// Open prepares a decoder instance configured per settings. The
	// returned AV1Handle decodes exactly the payloads passed to it and
	// must be closed when no longer needed.
	Open(settings AV1Settings) (AV1Handle, error)
}

// AV1Settings configures an AV1Decoder.Open call, derived from
// DecoderConfig.
type AV1Settings struct {
	Threads        int
	ApplyGrain     bool
	FrameSizeLimit uint32 // 0 means unlimited
}

// AV1Handle decodes successive AV1 payloads. A single handle is used for
// both the primary (color) payload and, if present, the alpha payload, so
// at most one decoded frame from it needs to be live at a time — see the
// peak-memory invariant in DecodeWith.
type AV1Handle interface {
	Decode(payload []byte) (*DecodedFrame, error)
	Close() error
}
