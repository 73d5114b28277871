package colorconv

import "testing"

func TestVectorRowRGB8MatchesScalarPixel(t *testing.T) {
	y := []byte{16, 80, 128, 200, 235, 16, 80, 128, 200, 235}
	u := []byte{128, 100, 128, 160, 90, 128, 100, 128, 160, 90}
	v := []byte{128, 140, 128, 110, 200, 128, 140, 128, 110, 200}
	dst := make([]byte, len(y)*3)

	if err := VectorRowRGB8(y, u, v, 8, RangeLimited, MatrixBT601, dst); err != nil {
		t.Fatalf("VectorRowRGB8 returned error: %v", err)
	}

	for i := range y {
		fr, fg, fb, err := ScalarPixel(int(y[i]), int(u[i]), int(v[i]), 8, RangeLimited, MatrixBT601)
		if err != nil {
			t.Fatalf("ScalarPixel(%d) returned error: %v", i, err)
		}
		wantR, wantG, wantB := QuantizeTo8(fr), QuantizeTo8(fg), QuantizeTo8(fb)
		if got := dst[i*3+0]; got != wantR {
			t.Errorf("pixel %d R = %d, want %d", i, got, wantR)
		}
		if got := dst[i*3+1]; got != wantG {
			t.Errorf("pixel %d G = %d, want %d", i, got, wantG)
		}
		if got := dst[i*3+2]; got != wantB {
			t.Errorf("pixel %d B = %d, want %d", i, got, wantB)
		}
	}
}

func TestVectorRowRGB8HandlesTileTailRemainder(t *testing.T) {
	// One more sample than a single AVX2 tile (VectorLaneAVX2 == 8), so
	// convertTileRGB8 must run once for the full tile and once for the
	// one-sample tail.
	n := VectorLaneAVX2 + 1
	y := make([]byte, n)
	u := make([]byte, n)
	v := make([]byte, n)
	for i := range y {
		y[i], u[i], v[i] = byte(16+i), 128, 128
	}
	dst := make([]byte, n*3)

	if err := VectorRowRGB8(y, u, v, 8, RangeLimited, MatrixBT601, dst); err != nil {
		t.Fatalf("VectorRowRGB8 returned error: %v", err)
	}
	for i := range y {
		if dst[i*3+0] != dst[i*3+1] || dst[i*3+1] != dst[i*3+2] {
			t.Fatalf("pixel %d not gray with neutral chroma: (%d,%d,%d)", i, dst[i*3+0], dst[i*3+1], dst[i*3+2])
		}
	}
}

func TestVectorRowRGB8RejectsUnsupportedMatrix(t *testing.T) {
	y := []byte{128}
	u := []byte{128}
	v := []byte{128}
	dst := make([]byte, 3)
	if err := VectorRowRGB8(y, u, v, 8, RangeFull, Matrix(99), dst); err == nil {
		t.Fatal("expected an error for an unsupported matrix")
	}
}
