package bitmap

import "math"

// DrawLine steps max(|dx|,|dy|)+1 times along a unit-normalized direction,
// truncating to integers at every step. This is the renderer's historical
// stepping, kept for frame parity with existing output; shallow slopes can
// revisit pixels.
func (b *Bitmap) DrawLine(x0, y0, x1, y1 float64, color uint32) {
	dx := x1 - x0
	dy := y1 - y0

	l := math.Max(math.Abs(dx), math.Abs(dy))
	if l == 0 {
		b.Plot(int(x0), int(y0), color)
		return
	}
	il := int(l)
	dx /= l
	dy /= l
	for i := 0; i <= il; i++ {
		b.Plot(int(x0), int(y0), color)
		x0 += dx
		y0 += dy
	}
}

// DrawRectangle draws the rectangle spanned by the two corner points.
// Corners are sorted and, for the filled variant, clamped to the buffer, so
// the call is total for any input.
func (b *Bitmap) DrawRectangle(x0, y0, x1, y1 int, filled bool, color uint32) {
	if !filled {
		fx0, fy0 := float64(x0), float64(y0)
		fx1, fy1 := float64(x1), float64(y1)
		b.DrawLine(fx0, fy0, fx1, fy0, color)
		b.DrawLine(fx0, fy1, fx1, fy1, color)
		b.DrawLine(fx0, fy0, fx0, fy1, color)
		b.DrawLine(fx1, fy0, fx1, fy1, color)
		return
	}

	if x0 > x1 {
		x0, x1 = x1, x0
	}
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	x0 = max(x0, 0)
	y0 = max(y0, 0)
	x1 = min(x1, b.Width-1)
	y1 = min(y1, b.Height-1)

	for y := y0; y <= y1; y++ {
		row := b.pix[y*b.Stride:]
		for x := x0; x <= x1; x++ {
			row[x] = color
		}
	}
}
