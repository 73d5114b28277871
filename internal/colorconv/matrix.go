package colorconv

// coefficients holds the classical (Kr, Kb) matrix-coefficient pair; Kg is
// always derived as 1 - Kr - Kb, per spec.
type coefficients struct {
	Kr, Kb float64
}

// coefficientsFor returns the (Kr, Kb) pair for m, and ok=false if m has no
// linear Kr/Kb form (Identity and YCgCo are handled separately).
func coefficientsFor(m Matrix) (coefficients, bool) {
	switch m {
	case MatrixBT601, MatrixBT470BG:
		return coefficients{Kr: 0.299, Kb: 0.114}, true
	case MatrixBT709:
		return coefficients{Kr: 0.2126, Kb: 0.0722}, true
	case MatrixBT2020NCL:
		return coefficients{Kr: 0.2627, Kb: 0.0593}, true
	case MatrixSMPTE240M:
		return coefficients{Kr: 0.212, Kb: 0.087}, true
	case MatrixFCC:
		return coefficients{Kr: 0.30, Kb: 0.11}, true
	default:
		return coefficients{}, false
	}
}

// Kg returns the derived green luma coefficient.
func (c coefficients) Kg() float64 { return 1 - c.Kr - c.Kb }

// rangeParams bundles the offset/scale pair used to normalize a raw sample
// of bitDepth bits into [0,1] (luma) or [-0.5,0.5] (chroma), per rng.
type rangeParams struct {
	yOffset, yScale float64
	cOffset, cScale float64
}

func rangeParamsFor(bitDepth int, rng Range) rangeParams {
	maxVal := float64(int(1)<<uint(bitDepth) - 1)
	shift := float64(int(1) << uint(bitDepth-8))
	cMid := 128 * shift
	if rng == RangeFull {
		return rangeParams{
			yOffset: 0, yScale: maxVal,
			cOffset: cMid, cScale: maxVal,
		}
	}
	return rangeParams{
		yOffset: 16 * shift, yScale: 219 * shift,
		cOffset: cMid, cScale: 224 * shift,
	}
}

// supported reports whether m is one of the matrices the kernel implements.
// All matrices in Matrix are realizable at every supported bit depth
// (8/10/12); this exists so convert.go has a single place to reject
// unknown values.
func supported(m Matrix) bool {
	switch m {
	case MatrixIdentity, MatrixBT601, MatrixBT709, MatrixBT2020NCL,
		MatrixSMPTE240M, MatrixFCC, MatrixBT470BG, MatrixYCgCo:
		return true
	default:
		return false
	}
}
