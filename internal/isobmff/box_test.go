package isobmff

import (
	"bytes"
	"encoding/binary"
	"testing"
)

func u32(v uint32) []byte {
	b := make([]byte, 4)
	binary.BigEndian.PutUint32(b, v)
	return b
}

// box builds a complete box (size + type + body) with a correct size
// field computed from len(body), so callers never hand-compute sizes.
func box(typ string, body []byte) []byte {
	var buf bytes.Buffer
	buf.Write(u32(uint32(8 + len(body))))
	buf.WriteString(typ)
	buf.Write(body)
	return buf.Bytes()
}

func TestWalkBoxesSimpleSiblings(t *testing.T) {
	data := append(box("ftyp", []byte("avifavif")), box("meta", []byte{1, 2, 3, 4})...)
	boxes, err := WalkBoxes(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(boxes) != 2 {
		t.Fatalf("len(boxes) = %d, want 2", len(boxes))
	}
	if !boxes[0].TypeIs("ftyp") || !boxes[1].TypeIs("meta") {
		t.Fatalf("unexpected box types: %v, %v", boxes[0].Type, boxes[1].Type)
	}
	if string(boxes[0].Body) != "avifavif" {
		t.Fatalf("ftyp body = %q, want %q", boxes[0].Body, "avifavif")
	}
}

func TestWalkBoxesZeroSizeExtendsToEnd(t *testing.T) {
	body := []byte("rest-of-the-stream")
	data := append(u32(0), append([]byte("mdat"), body...)...)
	boxes, err := WalkBoxes(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(boxes) != 1 || !bytes.Equal(boxes[0].Body, body) {
		t.Fatalf("zero-size box did not extend to end of data: %+v", boxes)
	}
}

func TestWalkBoxesExtendedSize(t *testing.T) {
	body := []byte("payload")
	var buf bytes.Buffer
	buf.Write(u32(1))
	buf.WriteString("free")
	sizeField := make([]byte, 8)
	binary.BigEndian.PutUint64(sizeField, uint64(16+len(body)))
	buf.Write(sizeField)
	buf.Write(body)

	boxes, err := WalkBoxes(buf.Bytes())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(boxes) != 1 || !bytes.Equal(boxes[0].Body, body) {
		t.Fatalf("64-bit extended size not handled: %+v", boxes)
	}
}

func TestWalkBoxesTruncatedHeader(t *testing.T) {
	_, err := WalkBoxes([]byte{0, 0, 0, 1, 'f', 't'})
	if err != ErrTruncated {
		t.Fatalf("err = %v, want ErrTruncated", err)
	}
}

func TestWalkBoxesSizeExceedsData(t *testing.T) {
	_, err := WalkBoxes([]byte{0, 0, 0, 20, 'f', 't', 'y', 'p'})
	if err != ErrInvalidBox {
		t.Fatalf("err = %v, want ErrInvalidBox", err)
	}
}

func TestFindMissing(t *testing.T) {
	boxes, _ := WalkBoxes(box("ftyp", []byte("avifavif")))
	if _, ok := Find(boxes, "meta"); ok {
		t.Fatal("Find reported a box that isn't there")
	}
}

func TestFullBoxHeaderSplitsVersionFlagsAndRest(t *testing.T) {
	body := []byte{1, 0x00, 0x00, 0x2a, 'h', 'i'}
	version, flags, rest, err := FullBoxHeader(body)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if version != 1 {
		t.Fatalf("version = %d, want 1", version)
	}
	if flags != 0x2a {
		t.Fatalf("flags = %#x, want 0x2a", flags)
	}
	if string(rest) != "hi" {
		t.Fatalf("rest = %q, want %q", rest, "hi")
	}
}
