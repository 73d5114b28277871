// Package isobmff implements a minimal ISOBMFF (ISO/IEC 14496-12) box
// walker, scoped to what cmd/avifinfo needs to report an AVIF file's
// metadata: brand, item properties, and item references. It does not
// extract or validate AV1 bitstream payloads — that remains the job of
// the avif.ContainerParser collaborator passed to avif.Decode.
package isobmff

import (
	"encoding/binary"
	"errors"
)

// Common errors.
var (
	ErrTruncated    = errors.New("isobmff: truncated data")
	ErrInvalidBox   = errors.New("isobmff: invalid box header")
	ErrUnsupported  = errors.New("isobmff: unsupported box layout")
)

// Box is one top-level-or-nested ISOBMFF box: its four-character type and
// its body, excluding the 8 (or 16, for a 64-bit size) header bytes.
type Box struct {
	Type [4]byte
	Body []byte
}

// TypeIs reports whether b's type equals the four-character code s.
func (b Box) TypeIs(s string) bool {
	return len(s) == 4 && b.Type[0] == s[0] && b.Type[1] == s[1] && b.Type[2] == s[2] && b.Type[3] == s[3]
}

// WalkBoxes parses a sequence of sibling boxes from data, returning the
// complete list. A box with size 0 extends to the end of data, matching
// the ISOBMFF convention for the last box in a stream.
func WalkBoxes(data []byte) ([]Box, error) {
	var boxes []Box
	for len(data) > 0 {
		if len(data) < 8 {
			return nil, ErrTruncated
		}
		size := uint64(binary.BigEndian.Uint32(data[0:4]))
		var typ [4]byte
		copy(typ[:], data[4:8])
		hdr := 8
		if size == 1 {
			if len(data) < 16 {
				return nil, ErrTruncated
			}
			size = binary.BigEndian.Uint64(data[8:16])
			hdr = 16
		} else if size == 0 {
			size = uint64(len(data))
		}
		if size < uint64(hdr) || size > uint64(len(data)) {
			return nil, ErrInvalidBox
		}
		boxes = append(boxes, Box{Type: typ, Body: data[hdr:size]})
		data = data[size:]
	}
	return boxes, nil
}

// Find returns the first box of the given type among boxes, or ok=false.
func Find(boxes []Box, typ string) (Box, bool) {
	for _, b := range boxes {
		if b.TypeIs(typ) {
			return b, true
		}
	}
	return Box{}, false
}

// FullBoxHeader splits a FullBox's body into its version/flags and the
// remaining payload.
func FullBoxHeader(body []byte) (version byte, flags uint32, rest []byte, err error) {
	if len(body) < 4 {
		return 0, 0, nil, ErrTruncated
	}
	version = body[0]
	flags = uint32(body[1])<<16 | uint32(body[2])<<8 | uint32(body[3])
	return version, flags, body[4:], nil
}
