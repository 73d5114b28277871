package isobmff

import "encoding/binary"

// Ispe is the decoded 'ispe' (ImageSpatialExtentsProperty) box.
type Ispe struct {
	Width, Height uint32
}

// Pixi is the decoded 'pixi' (PixelInformationProperty) box.
type Pixi struct {
	BitsPerChannel []byte
}

// AV1Config is the decoded 'av1C' (AV1CodecConfigurationRecord) box,
// carrying the subset of the AV1 sequence header summary needed to report
// bit depth and chroma layout without decoding the bitstream itself.
type AV1Config struct {
	SeqProfile           byte
	SeqLevelIdx0         byte
	HighBitdepth         bool
	TwelveBit            bool
	Monochrome           bool
	ChromaSubsamplingX   bool
	ChromaSubsamplingY   bool
	ChromaSamplePosition byte
}

// BitDepth reports the color bit depth implied by the profile/bitdepth
// flags, per the AV1 spec's color_config semantics.
func (c AV1Config) BitDepth() int {
	if !c.HighBitdepth {
		return 8
	}
	if c.SeqProfile == 2 && c.TwelveBit {
		return 12
	}
	return 10
}

// Colr is the decoded 'colr' box, when its colour_type is 'nclx'. A colr
// box carrying an ICC profile instead is reported with HasNclx false.
type Colr struct {
	HasNclx            bool
	Primaries          uint16
	Transfer           uint16
	MatrixCoefficients uint16
	FullRange          bool
}

func parseIprp(body []byte, info *FileInfo) error {
	children, err := WalkBoxes(body)
	if err != nil {
		return err
	}
	ipco, ok := Find(children, "ipco")
	if !ok {
		return ErrUnsupported
	}
	props, err := WalkBoxes(ipco.Body)
	if err != nil {
		return err
	}

	for _, ipma := range children {
		if !ipma.TypeIs("ipma") {
			continue
		}
		if err := applyIpma(ipma.Body, props, info); err != nil {
			return err
		}
	}
	return nil
}

func applyIpma(body []byte, props []Box, info *FileInfo) error {
	version, flags, rest, err := FullBoxHeader(body)
	if err != nil {
		return err
	}
	if len(rest) < 4 {
		return ErrTruncated
	}
	entryCount := binary.BigEndian.Uint32(rest)
	rest = rest[4:]

	for i := uint32(0); i < entryCount; i++ {
		var itemID uint32
		if version < 1 {
			if len(rest) < 2 {
				return ErrTruncated
			}
			itemID = uint32(binary.BigEndian.Uint16(rest))
			rest = rest[2:]
		} else {
			if len(rest) < 4 {
				return ErrTruncated
			}
			itemID = binary.BigEndian.Uint32(rest)
			rest = rest[4:]
		}
		if len(rest) < 1 {
			return ErrTruncated
		}
		assocCount := int(rest[0])
		rest = rest[1:]

		it := info.item(itemID)
		for j := 0; j < assocCount; j++ {
			var propIndex int
			if flags&1 != 0 {
				if len(rest) < 2 {
					return ErrTruncated
				}
				propIndex = int(binary.BigEndian.Uint16(rest) & 0x7fff)
				rest = rest[2:]
			} else {
				if len(rest) < 1 {
					return ErrTruncated
				}
				propIndex = int(rest[0] & 0x7f)
				rest = rest[1:]
			}
			if propIndex == 0 || propIndex > len(props) {
				continue
			}
			applyProperty(it, props[propIndex-1])
		}
	}
	return nil
}

func applyProperty(it *ItemInfo, box Box) {
	switch {
	case box.TypeIs("ispe"):
		if ispe, ok := parseIspe(box.Body); ok {
			it.Ispe = ispe
		}
	case box.TypeIs("pixi"):
		if pixi, ok := parsePixi(box.Body); ok {
			it.Pixi = pixi
		}
	case box.TypeIs("av1C"):
		if cfg, ok := parseAV1Config(box.Body); ok {
			it.AV1Config = cfg
		}
	case box.TypeIs("colr"):
		if colr, ok := parseColr(box.Body); ok {
			it.Colr = colr
		}
	case box.TypeIs("auxC"):
		if urn, ok := parseAuxC(box.Body); ok {
			it.AuxType = urn
		}
	}
}

func parseIspe(body []byte) (*Ispe, bool) {
	_, _, rest, err := FullBoxHeader(body)
	if err != nil || len(rest) < 8 {
		return nil, false
	}
	return &Ispe{
		Width:  binary.BigEndian.Uint32(rest[0:4]),
		Height: binary.BigEndian.Uint32(rest[4:8]),
	}, true
}

func parsePixi(body []byte) (*Pixi, bool) {
	_, _, rest, err := FullBoxHeader(body)
	if err != nil || len(rest) < 1 {
		return nil, false
	}
	n := int(rest[0])
	if len(rest) < 1+n {
		return nil, false
	}
	bits := make([]byte, n)
	copy(bits, rest[1:1+n])
	return &Pixi{BitsPerChannel: bits}, true
}

func parseAV1Config(body []byte) (*AV1Config, bool) {
	if len(body) < 4 {
		return nil, false
	}
	return &AV1Config{
		SeqProfile:           body[1] >> 5,
		SeqLevelIdx0:         body[1] & 0x1f,
		HighBitdepth:         body[2]&0x40 != 0,
		TwelveBit:            body[2]&0x20 != 0,
		Monochrome:           body[2]&0x10 != 0,
		ChromaSubsamplingX:   body[2]&0x08 != 0,
		ChromaSubsamplingY:   body[2]&0x04 != 0,
		ChromaSamplePosition: body[2] & 0x03,
	}, true
}

func parseColr(body []byte) (*Colr, bool) {
	if len(body) < 4 {
		return nil, false
	}
	if string(body[0:4]) != "nclx" {
		return &Colr{HasNclx: false}, true
	}
	if len(body) < 11 {
		return nil, false
	}
	return &Colr{
		HasNclx:            true,
		Primaries:          binary.BigEndian.Uint16(body[4:6]),
		Transfer:           binary.BigEndian.Uint16(body[6:8]),
		MatrixCoefficients: binary.BigEndian.Uint16(body[8:10]),
		FullRange:          body[10]&0x80 != 0,
	}, true
}

func parseAuxC(body []byte) (string, bool) {
	_, _, rest, err := FullBoxHeader(body)
	if err != nil {
		return "", false
	}
	end := 0
	for end < len(rest) && rest[end] != 0 {
		end++
	}
	return string(rest[:end]), true
}
