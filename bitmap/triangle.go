package bitmap

// Vec2 is a 2D point in screen space.
type Vec2 struct {
	X, Y float64
}

// 4-bit sub-pixel precision for the triangle edge functions.
const (
	spBits = 4
	spMul  = 1 << spBits
	spMulF = float64(spMul)
	spMask = spMul - 1
)

// DrawTriangle rasterizes a filled triangle with three signed edge
// functions in 4-bit fixed point. The top-left rule is applied by biasing
// the constant of every edge that is not a top or left edge by -1, so two
// triangles sharing an edge neither double-paint nor leave a gap. Pixels
// are written unconditionally, no blending.
func (b *Bitmap) DrawTriangle(v0, v1, v2 Vec2, color uint32) {
	vx := [3]int32{
		int32(v0.X * spMulF),
		int32(v1.X * spMulF),
		int32(v2.X * spMulF),
	}
	vy := [3]int32{
		int32(v0.Y * spMulF),
		int32(v1.Y * spMulF),
		int32(v2.Y * spMulF),
	}

	minX := (min(vx[0], vx[1], vx[2]) + spMask) >> spBits
	maxX := (max(vx[0], vx[1], vx[2]) + spMask) >> spBits
	minY := (min(vy[0], vy[1], vy[2]) + spMask) >> spBits
	maxY := (max(vy[0], vy[1], vy[2]) + spMask) >> spBits

	minXi := max(minX, 0)
	maxXi := min(maxX, int32(b.Width))
	minYi := max(minY, 0)
	maxYi := min(maxY, int32(b.Height))

	dx01 := vx[0] - vx[1]
	dx12 := vx[1] - vx[2]
	dx20 := vx[2] - vx[0]

	dy01 := vy[0] - vy[1]
	dy12 := vy[1] - vy[2]
	dy20 := vy[2] - vy[0]

	fdx01 := dx01 << spBits
	fdx12 := dx12 << spBits
	fdx20 := dx20 << spBits

	fdy01 := -dy01 << spBits
	fdy12 := -dy12 << spBits
	fdy20 := -dy20 << spBits

	c0 := dy01*vx[0] - dx01*vy[0]
	c1 := dy12*vx[1] - dx12*vy[1]
	c2 := dy20*vx[2] - dx20*vy[2]

	// Top-left rule: edges that are neither top (horizontal, going right)
	// nor left (going up) lose the tie.
	if !(dy01 < 0 || (dy01 == 0 && dx01 > 0)) {
		c0--
	}
	if !(dy12 < 0 || (dy12 == 0 && dx12 > 0)) {
		c1--
	}
	if !(dy20 < 0 || (dy20 == 0 && dx20 > 0)) {
		c2--
	}

	w0Row := c0 + ((dx01*minYi - dy01*minXi) << spBits)
	w1Row := c1 + ((dx12*minYi - dy12*minXi) << spBits)
	w2Row := c2 + ((dx20*minYi - dy20*minXi) << spBits)

	for y := minYi; y < maxYi; y++ {
		w0 := w0Row
		w1 := w1Row
		w2 := w2Row

		for x := minXi; x < maxXi; x++ {
			if w0|w1|w2 >= 0 {
				b.pix[int(x)+int(y)*b.Stride] = color
			}
			w0 += fdy01
			w1 += fdy12
			w2 += fdy20
		}
		w0Row += fdx01
		w1Row += fdx12
		w2Row += fdx20
	}
}
