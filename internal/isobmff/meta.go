package isobmff

import "encoding/binary"

// FileInfo is the subset of an AVIF file's 'meta' box this package
// extracts: the primary item, every item's type and properties, and
// which items are referenced as auxiliary (e.g. alpha) images.
type FileInfo struct {
	MajorBrand       string
	CompatibleBrands []string
	PrimaryItem      uint32
	Items            map[uint32]*ItemInfo
}

// ItemInfo describes one item in the 'iinf'/'iloc'/'iprp' box family.
type ItemInfo struct {
	ID          uint32
	Type        string
	Extents     []Extent
	Ispe        *Ispe
	Pixi        *Pixi
	AV1Config   *AV1Config
	Colr        *Colr
	AuxType     string // non-empty for an auxiliary (e.g. alpha) item
	AuxForItems []uint32
}

// Extent is one contiguous byte range of an item's data, as found via the
// 'iloc' box.
type Extent struct {
	Offset, Length uint64
}

// ParseFile parses the top-level boxes of an AVIF byte stream and
// extracts its 'meta' box content.
func ParseFile(data []byte) (*FileInfo, error) {
	boxes, err := WalkBoxes(data)
	if err != nil {
		return nil, err
	}

	info := &FileInfo{Items: make(map[uint32]*ItemInfo)}

	if ftyp, ok := Find(boxes, "ftyp"); ok {
		if err := parseFtyp(ftyp.Body, info); err != nil {
			return nil, err
		}
	}

	meta, ok := Find(boxes, "meta")
	if !ok {
		return nil, ErrUnsupported
	}
	_, _, metaBody, err := FullBoxHeader(meta.Body)
	if err != nil {
		return nil, err
	}
	children, err := WalkBoxes(metaBody)
	if err != nil {
		return nil, err
	}

	if pitm, ok := Find(children, "pitm"); ok {
		id, err := parsePitm(pitm.Body)
		if err != nil {
			return nil, err
		}
		info.PrimaryItem = id
	}
	if iinf, ok := Find(children, "iinf"); ok {
		if err := parseIinf(iinf.Body, info); err != nil {
			return nil, err
		}
	}
	if iloc, ok := Find(children, "iloc"); ok {
		if err := parseIloc(iloc.Body, info); err != nil {
			return nil, err
		}
	}
	if iref, ok := Find(children, "iref"); ok {
		if err := parseIref(iref.Body, info); err != nil {
			return nil, err
		}
	}
	if iprp, ok := Find(children, "iprp"); ok {
		if err := parseIprp(iprp.Body, info); err != nil {
			return nil, err
		}
	}

	return info, nil
}

func parseFtyp(body []byte, info *FileInfo) error {
	if len(body) < 8 {
		return ErrTruncated
	}
	info.MajorBrand = string(body[0:4])
	for off := 8; off+4 <= len(body); off += 4 {
		info.CompatibleBrands = append(info.CompatibleBrands, string(body[off:off+4]))
	}
	return nil
}

func parsePitm(body []byte) (uint32, error) {
	version, _, rest, err := FullBoxHeader(body)
	if err != nil {
		return 0, err
	}
	if version == 0 {
		if len(rest) < 2 {
			return 0, ErrTruncated
		}
		return uint32(binary.BigEndian.Uint16(rest)), nil
	}
	if len(rest) < 4 {
		return 0, ErrTruncated
	}
	return binary.BigEndian.Uint32(rest), nil
}

func (info *FileInfo) item(id uint32) *ItemInfo {
	it, ok := info.Items[id]
	if !ok {
		it = &ItemInfo{ID: id}
		info.Items[id] = it
	}
	return it
}

func parseIinf(body []byte, info *FileInfo) error {
	version, _, rest, err := FullBoxHeader(body)
	if err != nil {
		return err
	}
	var count int
	if version == 0 {
		if len(rest) < 2 {
			return ErrTruncated
		}
		count = int(binary.BigEndian.Uint16(rest))
		rest = rest[2:]
	} else {
		if len(rest) < 4 {
			return ErrTruncated
		}
		count = int(binary.BigEndian.Uint32(rest))
		rest = rest[4:]
	}

	entries, err := WalkBoxes(rest)
	if err != nil {
		return err
	}
	for i, e := range entries {
		if i >= count {
			break
		}
		if !e.TypeIs("infe") {
			continue
		}
		id, typ, err := parseInfe(e.Body)
		if err != nil {
			return err
		}
		info.item(id).Type = typ
	}
	return nil
}

func parseInfe(body []byte) (id uint32, itemType string, err error) {
	version, _, rest, err := FullBoxHeader(body)
	if err != nil {
		return 0, "", err
	}
	switch {
	case version == 2:
		if len(rest) < 8 {
			return 0, "", ErrTruncated
		}
		id = uint32(binary.BigEndian.Uint16(rest))
		itemType = string(rest[4:8])
	case version >= 3:
		if len(rest) < 10 {
			return 0, "", ErrTruncated
		}
		id = binary.BigEndian.Uint32(rest)
		itemType = string(rest[6:10])
	default:
		return 0, "", ErrUnsupported
	}
	return id, itemType, nil
}

func readUint(data []byte, size int) (uint64, []byte, error) {
	if size == 0 {
		return 0, data, nil
	}
	if len(data) < size {
		return 0, nil, ErrTruncated
	}
	var v uint64
	for i := 0; i < size; i++ {
		v = v<<8 | uint64(data[i])
	}
	return v, data[size:], nil
}

func parseIloc(body []byte, info *FileInfo) error {
	version, _, rest, err := FullBoxHeader(body)
	if err != nil {
		return err
	}
	if len(rest) < 2 {
		return ErrTruncated
	}
	offsetSize := int(rest[0] >> 4)
	lengthSize := int(rest[0] & 0xf)
	baseOffsetSize := int(rest[1] >> 4)
	indexSize := int(rest[1] & 0xf)
	rest = rest[2:]

	var itemCount int
	if version < 2 {
		if len(rest) < 2 {
			return ErrTruncated
		}
		itemCount = int(binary.BigEndian.Uint16(rest))
		rest = rest[2:]
	} else {
		if len(rest) < 4 {
			return ErrTruncated
		}
		itemCount = int(binary.BigEndian.Uint32(rest))
		rest = rest[4:]
	}

	for i := 0; i < itemCount; i++ {
		var itemID uint32
		if version < 2 {
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
		if version == 1 || version == 2 {
			if len(rest) < 2 {
				return ErrTruncated
			}
			rest = rest[2:] // construction_method (we only support method 0)
		}
		if len(rest) < 2 {
			return ErrTruncated
		}
		rest = rest[2:] // data_reference_index, always 0 (this file) for our purposes

		baseOffset, r, err := readUint(rest, baseOffsetSize)
		if err != nil {
			return err
		}
		rest = r

		if len(rest) < 2 {
			return ErrTruncated
		}
		extentCount := int(binary.BigEndian.Uint16(rest))
		rest = rest[2:]

		it := info.item(itemID)
		for j := 0; j < extentCount; j++ {
			if indexSize > 0 {
				_, r, err := readUint(rest, indexSize)
				if err != nil {
					return err
				}
				rest = r
			}
			extOffset, r, err := readUint(rest, offsetSize)
			if err != nil {
				return err
			}
			rest = r
			extLen, r, err := readUint(rest, lengthSize)
			if err != nil {
				return err
			}
			rest = r
			it.Extents = append(it.Extents, Extent{Offset: baseOffset + extOffset, Length: extLen})
		}
	}
	return nil
}

func parseIref(body []byte, info *FileInfo) error {
	version, _, rest, err := FullBoxHeader(body)
	if err != nil {
		return err
	}
	refs, err := WalkBoxes(rest)
	if err != nil {
		return err
	}
	idSize := 2
	if version != 0 {
		idSize = 4
	}
	for _, ref := range refs {
		buf := ref.Body
		fromID, buf, err := readUint(buf, idSize)
		if err != nil {
			return err
		}
		if len(buf) < 2 {
			return ErrTruncated
		}
		refCount := int(binary.BigEndian.Uint16(buf))
		buf = buf[2:]
		for i := 0; i < refCount; i++ {
			toID, rest2, err := readUint(buf, idSize)
			if err != nil {
				return err
			}
			buf = rest2
			if ref.TypeIs("auxl") {
				// fromID is the auxiliary (e.g. alpha) item; toID is the
				// item it is auxiliary for.
				auxItem := info.item(uint32(fromID))
				auxItem.AuxForItems = append(auxItem.AuxForItems, uint32(toID))
			}
		}
	}
	return nil
}
