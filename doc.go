// Package avif decodes AVIF still images into RGB/RGBA pixel buffers.
//
// The package orchestrates three collaborators: an AVIF container parser,
// an AV1 decoder, and an internal YUV->RGB color-conversion kernel with an
// alpha compositor. The container parser and AV1 decoder are external
// collaborators passed in by the caller (see ContainerParser and
// AV1Decoder) — this package does not itself parse ISOBMFF boxes or
// decode AV1 bitstreams.
//
// Basic usage:
//
//	img, err := avif.Decode(data, parser, decoder)
//
// Full-featured usage with a custom config and cancellation:
//
//	img, err := avif.DecodeWith(data, parser, decoder, cfg, stop)
package avif
