package bitmap

import "math"

// Scale factors below this are treated as a no-op rather than risking a
// divide by near-zero in the fixed-point step.
const minScale = 0.001

// clipRect shrinks a fw x fh footprint placed at (x, y) so it fits a
// dw x dh destination. It returns the offset into the footprint (sx, sy),
// the destination origin (tx, ty) and the surviving extent (sw, sh). A
// non-positive extent means nothing is visible. Every composite draw
// reduces to this clip.
func clipRect(fw, fh, x, y, dw, dh int) (sx, sy, tx, ty, sw, sh int) {
	sw, sh = fw, fh
	if x < 0 {
		sw += x
		sx = -x
	} else {
		tx = x
	}
	if y < 0 {
		sh += y
		sy = -y
	} else {
		ty = y
	}
	sw = min(sw, dw-tx)
	sh = min(sh, dh-ty)
	return
}

// DrawOn copies every source pixel with a non-zero alpha byte onto dst at
// (x, y). The copied sub-rectangle is clipped to dst bounds, so the call
// never writes outside dst for any placement.
func (b *Bitmap) DrawOn(dst *Bitmap, x, y int) {
	sx, sy, tx, ty, sw, sh := clipRect(b.Width, b.Height, x, y, dst.Width, dst.Height)
	if sw <= 0 || sh <= 0 {
		return
	}

	for row := 0; row < sh; row++ {
		src := b.pix[(sy+row)*b.Stride:]
		out := dst.pix[(ty+row)*dst.Stride:]
		for col := 0; col < sw; col++ {
			c := src[sx+col]
			if c&0xff000000 != 0 {
				out[tx+col] = c
			}
		}
	}
}

// DrawOnScaled resamples the source into a footprint of
// (|w*scaleX|, |h*scaleY|) destination pixels, nearest neighbor. A
// negative scale mirrors along that axis. Scales below minScale do
// nothing.
func (b *Bitmap) DrawOnScaled(dst *Bitmap, x, y int, scaleX, scaleY float64) {
	b.drawScaled(dst, x, y, scaleX, scaleY, nil)
}

// Key skin-tone colors baked into the player sprite sheet, and the palette
// pairs they remap to per worn-mask color. Index 0 is the unworn look
// (the same skin, dimmed), 1/2/3 are red/green/blue.
const (
	keyColor0 = 0xffdcb9
	keyColor1 = 0xe9be93
)

var recolorTable = [4][2]uint32{
	{(keyColor0 >> 2) & 0x3f3f3f, (keyColor1 >> 2) & 0x3f3f3f},
	{0xba1102, 0x681102},
	{0x096509, 0x224202},
	{0x2211b7, 0x221168},
}

// DrawOnScaledRecolor is DrawOnScaled with the two key skin-tone colors
// remapped through the palette pair selected by colorIndex. One sprite
// sheet serves every mask state.
func (b *Bitmap) DrawOnScaledRecolor(dst *Bitmap, x, y int, scaleX, scaleY float64, colorIndex int) {
	set := recolorTable[colorIndex&3]
	b.drawScaled(dst, x, y, scaleX, scaleY, func(c uint32, _, _ int) uint32 {
		switch c & 0xffffff {
		case keyColor0:
			return 0xff000000 | set[0]
		case keyColor1:
			return 0xff000000 | set[1]
		}
		return c
	})
}

// drawScaled is the shared nearest-neighbor loop. The per-destination
// sampling step is a 16.16 fixed-point delta of (65536/footprintDim) *
// srcDim, computed in integer math so a scale of exactly 1 reproduces
// DrawOn pixel for pixel. Mirroring starts the accumulator at the far end
// of the footprint and walks it backwards. The shade callback, when
// non-nil, maps each opaque source pixel to the color written, given the
// destination coordinates.
func (b *Bitmap) drawScaled(dst *Bitmap, x, y int, scaleX, scaleY float64, shade func(c uint32, dx, dy int) uint32) {
	if math.Abs(scaleX) < minScale || math.Abs(scaleY) < minScale {
		return
	}

	fw := int(math.Abs(float64(b.Width) * scaleX))
	fh := int(math.Abs(float64(b.Height) * scaleY))
	if fw <= 0 || fh <= 0 {
		return
	}

	du := (b.Width << 16) / fw
	dv := (b.Height << 16) / fh
	if scaleX < 0 {
		du = -du
	}
	if scaleY < 0 {
		dv = -dv
	}

	sx, sy, tx, ty, sw, sh := clipRect(fw, fh, x, y, dst.Width, dst.Height)
	if sw <= 0 || sh <= 0 {
		return
	}

	v := sy * dv
	if dv < 0 {
		v = (fh - 1 - sy) * -dv
	}

	for row := 0; row < sh; row++ {
		u := sx * du
		if du < 0 {
			u = (fw - 1 - sx) * -du
		}
		src := b.pix[(v>>16)*b.Stride:]
		out := dst.pix[(ty+row)*dst.Stride:]
		for col := 0; col < sw; col++ {
			c := src[u>>16]
			if c&0xff000000 != 0 {
				if shade != nil {
					c = shade(c, tx+col, ty+row)
				}
				out[tx+col] = c
			}
			u += du
		}
		v += dv
	}
}
