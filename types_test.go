package avif

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestImageInfoStructuralEquality(t *testing.T) {
	ci := &ColorInfo{Primaries: 1, Transfer: 13, MatrixCoefficients: 1, Range: RangeFull}
	a := ImageInfo{
		Width: 800, Height: 600, BitDepth: 8,
		HasAlpha: true, ColorInfo: ci, ChromaSampling: LayoutI420,
	}
	b := ImageInfo{
		Width: 800, Height: 600, BitDepth: 8,
		HasAlpha: true, ColorInfo: &ColorInfo{Primaries: 1, Transfer: 13, MatrixCoefficients: 1, Range: RangeFull},
		ChromaSampling: LayoutI420,
	}
	if diff := cmp.Diff(a, b); diff != "" {
		t.Fatalf("ImageInfo mismatch (-want +got):\n%s", diff)
	}
}

func TestImageInfoStructuralInequality(t *testing.T) {
	a := ImageInfo{Width: 800, Height: 600, ChromaSampling: LayoutI420}
	b := ImageInfo{Width: 800, Height: 600, ChromaSampling: LayoutI444}
	if cmp.Diff(a, b) == "" {
		t.Fatal("expected a diff between I420 and I444 chroma sampling")
	}
}

func TestPixelDataStructuralEquality(t *testing.T) {
	a := PixelData{Kind: KindRGB8, Width: 2, Height: 1, Pix8: []byte{1, 2, 3, 4, 5, 6}}
	b := PixelData{Kind: KindRGB8, Width: 2, Height: 1, Pix8: []byte{1, 2, 3, 4, 5, 6}}
	if diff := cmp.Diff(a, b); diff != "" {
		t.Fatalf("PixelData mismatch (-want +got):\n%s", diff)
	}
}

func TestMatrixFromCICPKnownCodePoints(t *testing.T) {
	tests := []struct {
		cp   int
		want bool
	}{
		{0, true}, {1, true}, {5, true}, {6, true}, {8, true}, {9, true},
		{255, false},
	}
	for _, tt := range tests {
		_, ok := matrixFromCICP(tt.cp)
		if ok != tt.want {
			t.Errorf("matrixFromCICP(%d) ok = %v, want %v", tt.cp, ok, tt.want)
		}
	}
}
