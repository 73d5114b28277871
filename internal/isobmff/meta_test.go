package isobmff

import (
	"bytes"
	"encoding/binary"
	"testing"
)

var fb0 = []byte{0, 0, 0, 0} // FullBox header: version 0, flags 0

func u16(v uint16) []byte {
	b := make([]byte, 2)
	binary.BigEndian.PutUint16(b, v)
	return b
}

func infeBox(id uint16, itemType string) []byte {
	body := append(u16(id), 0, 0) // reserved
	body = append(body, []byte(itemType)...)
	return box("infe", append([]byte{2, 0, 0, 0}, body...)) // version 2, flags 0
}

func ispeBox(w, h uint32) []byte {
	body := append(append([]byte{}, fb0...), u32(w)...)
	body = append(body, u32(h)...)
	return box("ispe", body)
}

func av1CBox(flagsByte byte) []byte {
	return box("av1C", []byte{0x81, 0x00, flagsByte, 0x00})
}

func colrNclxBox(primaries, transfer, matrix uint16, fullRange bool) []byte {
	body := []byte("nclx")
	body = append(body, u16(primaries)...)
	body = append(body, u16(transfer)...)
	body = append(body, u16(matrix)...)
	var rangeByte byte
	if fullRange {
		rangeByte = 0x80
	}
	body = append(body, rangeByte)
	return box("colr", body)
}

func auxCBox(urn string) []byte {
	body := append(append([]byte{}, fb0...), []byte(urn)...)
	body = append(body, 0)
	return box("auxC", body)
}

// buildAVIF assembles a minimal, synthetic AVIF-shaped byte stream: a
// primary color item (id 1, 4:2:0, 8-bit, full-range BT.709 nclx) and an
// auxiliary alpha item (id 2, monochrome) referencing it via 'auxl'.
func buildAVIF() []byte {
	ftyp := box("ftyp", append([]byte("avif\x00\x00\x00\x00"), []byte("avifmif1")...))

	pitm := box("pitm", append(append([]byte{}, fb0...), u16(1)...))

	iinf := box("iinf", append(append(append([]byte{}, fb0...), u16(2)...),
		append(infeBox(1, "av01"), infeBox(2, "av01")...)...))

	ilocBody := append([]byte{}, fb0...)
	ilocBody = append(ilocBody, 0x44, 0x00) // offsetSize=4, lengthSize=4, baseOffsetSize=0, indexSize=0
	ilocBody = append(ilocBody, u16(2)...)  // item_count
	// item 1: id, data_reference_index, extent_count=1, extent_offset, extent_length
	ilocBody = append(ilocBody, u16(1)...)
	ilocBody = append(ilocBody, u16(0)...)
	ilocBody = append(ilocBody, u16(1)...)
	ilocBody = append(ilocBody, u32(0)...)
	ilocBody = append(ilocBody, u32(100)...)
	// item 2
	ilocBody = append(ilocBody, u16(2)...)
	ilocBody = append(ilocBody, u16(0)...)
	ilocBody = append(ilocBody, u16(1)...)
	ilocBody = append(ilocBody, u32(100)...)
	ilocBody = append(ilocBody, u32(50)...)
	iloc := box("iloc", ilocBody)

	auxlBody := append(u16(2), u16(1)...) // fromID=2 (alpha), refCount=1
	auxlBody = append(auxlBody, u16(1)...) // toID=1 (primary)
	auxl := box("auxl", auxlBody)
	iref := box("iref", append(append([]byte{}, fb0...), auxl...))

	ispe1 := ispeBox(800, 600)
	ispe2 := ispeBox(800, 600)
	av1C1 := av1CBox(0x0C) // 4:2:0, 8-bit
	av1C2 := av1CBox(0x10) // monochrome
	colr1 := colrNclxBox(1, 13, 1, true)
	auxC2 := auxCBox("urn:mpeg:mpegB:cicp:systems:auxiliary:alpha")

	var ipcoBody bytes.Buffer
	ipcoBody.Write(ispe1) // prop 1
	ipcoBody.Write(ispe2) // prop 2
	ipcoBody.Write(av1C1) // prop 3
	ipcoBody.Write(av1C2) // prop 4
	ipcoBody.Write(colr1) // prop 5
	ipcoBody.Write(auxC2) // prop 6
	ipco := box("ipco", ipcoBody.Bytes())

	ipmaBody := append(append([]byte{}, fb0...), u32(2)...)
	// item 1: props 1, 3, 5
	ipmaBody = append(ipmaBody, u16(1)...)
	ipmaBody = append(ipmaBody, 3, 1, 3, 5)
	// item 2: props 2, 4, 6
	ipmaBody = append(ipmaBody, u16(2)...)
	ipmaBody = append(ipmaBody, 3, 2, 4, 6)
	ipma := box("ipma", ipmaBody)

	var iprpBody bytes.Buffer
	iprpBody.Write(ipco)
	iprpBody.Write(ipma)
	iprp := box("iprp", iprpBody.Bytes())

	var metaBody bytes.Buffer
	metaBody.Write(fb0)
	metaBody.Write(pitm)
	metaBody.Write(iinf)
	metaBody.Write(iloc)
	metaBody.Write(iref)
	metaBody.Write(iprp)
	meta := box("meta", metaBody.Bytes())

	return append(append([]byte{}, ftyp...), meta...)
}

func TestParseFileBrandAndPrimaryItem(t *testing.T) {
	info, err := ParseFile(buildAVIF())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if info.MajorBrand != "avif" {
		t.Fatalf("MajorBrand = %q, want avif", info.MajorBrand)
	}
	if info.PrimaryItem != 1 {
		t.Fatalf("PrimaryItem = %d, want 1", info.PrimaryItem)
	}
	if len(info.Items) != 2 {
		t.Fatalf("len(Items) = %d, want 2", len(info.Items))
	}
}

func TestParseFilePrimaryItemProperties(t *testing.T) {
	info, err := ParseFile(buildAVIF())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	primary := info.Items[1]
	if primary == nil {
		t.Fatal("item 1 missing")
	}
	if primary.Type != "av01" {
		t.Fatalf("Type = %q, want av01", primary.Type)
	}
	if primary.Ispe == nil || primary.Ispe.Width != 800 || primary.Ispe.Height != 600 {
		t.Fatalf("Ispe = %+v, want 800x600", primary.Ispe)
	}
	if primary.AV1Config == nil || primary.AV1Config.BitDepth() != 8 {
		t.Fatalf("AV1Config = %+v, want 8-bit", primary.AV1Config)
	}
	if primary.AV1Config.Monochrome {
		t.Fatal("primary item must not be reported monochrome")
	}
	if primary.Colr == nil || !primary.Colr.HasNclx {
		t.Fatal("expected an nclx colr box on the primary item")
	}
	if primary.Colr.MatrixCoefficients != 1 || !primary.Colr.FullRange {
		t.Fatalf("Colr = %+v, want matrix=1 full-range", primary.Colr)
	}
	if len(primary.Extents) != 1 || primary.Extents[0].Offset != 0 || primary.Extents[0].Length != 100 {
		t.Fatalf("Extents = %+v, want one extent (0, 100)", primary.Extents)
	}
}

func TestParseFileAlphaItemResolvedViaAuxlReference(t *testing.T) {
	info, err := ParseFile(buildAVIF())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	alpha := info.Items[2]
	if alpha == nil {
		t.Fatal("item 2 missing")
	}
	if len(alpha.AuxForItems) != 1 || alpha.AuxForItems[0] != 1 {
		t.Fatalf("AuxForItems = %v, want [1] (auxiliary for the primary item)", alpha.AuxForItems)
	}
	if alpha.AuxType != "urn:mpeg:mpegB:cicp:systems:auxiliary:alpha" {
		t.Fatalf("AuxType = %q, unexpected", alpha.AuxType)
	}
	if alpha.AV1Config == nil || !alpha.AV1Config.Monochrome {
		t.Fatalf("alpha item AV1Config = %+v, want Monochrome=true", alpha.AV1Config)
	}
	if len(alpha.Extents) != 1 || alpha.Extents[0].Offset != 100 || alpha.Extents[0].Length != 50 {
		t.Fatalf("Extents = %+v, want one extent (100, 50)", alpha.Extents)
	}
}
