package colorconv

// NearestChroma16 is NearestChroma8's counterpart for 10/12/16-bit planes.
func NearestChroma16(plane Plane16, lumaW, x, y int, sampling Sampling) uint16 {
	cw, _ := chromaDims(lumaW, 0, sampling)
	switch sampling {
	case Sampling444:
		return plane.Row(y, cw)[x]
	case Sampling422:
		return plane.Row(y, cw)[x/2]
	case Sampling420:
		return plane.Row(y/2, cw)[x/2]
	default:
		return 0
	}
}

// BilinearChroma16 is BilinearChroma8's counterpart for 10/12/16-bit
// planes, 4:2:0 only.
func BilinearChroma16(plane Plane16, lumaW, lumaH, x, y int) uint16 {
	cw, ch := chromaDims(lumaW, lumaH, Sampling420)
	cx := (float64(x)+0.5)/2 - 0.5
	cy := (float64(y)+0.5)/2 - 0.5
	cx = clampF(cx, 0, float64(cw-1))
	cy = clampF(cy, 0, float64(ch-1))

	x0 := int(cx)
	y0 := int(cy)
	x1 := minInt(x0+1, cw-1)
	y1 := minInt(y0+1, ch-1)
	fx := cx - float64(x0)
	fy := cy - float64(y0)

	v00 := float64(plane.Row(y0, cw)[x0])
	v01 := float64(plane.Row(y0, cw)[x1])
	v10 := float64(plane.Row(y1, cw)[x0])
	v11 := float64(plane.Row(y1, cw)[x1])

	top := v00*(1-fx) + v01*fx
	bot := v10*(1-fx) + v11*fx
	return uint16(top*(1-fy) + bot*fy + 0.5)
}
