package bitmap

// Mute floors: how dark an unlit tile may get. Non-gated tiles keep a
// higher floor so neutral level geometry stays readable without light.
const (
	muteGated    = 0x0f
	muteNonGated = 0x2f
	muteBackdrop = 0x0f
)

// DrawTile composites a tile sprite onto dst at (x, y) under the radial
// light and the active color mask. For every covered pixel the inner and
// outer brightness are sampled at its offset from the light translation
// (lightX, lightY); each channel is scaled by
// max(mute, outer*maskChannel>>8) where the mute floor is raised by the
// inner falloff. Gated tiles are then per-channel blended over the
// existing destination keyed by tileColor&activeMask, which makes them
// fade rather than pop when the mask changes; non-gated tiles write the
// lit color directly.
func (b *Bitmap) DrawTile(dst *Bitmap, x, y int, gated bool, tileColor, activeMask uint32, aura *Aura, lightX, lightY int) {
	rmask := (activeMask >> 16) & 0xff
	gmask := (activeMask >> 8) & 0xff
	bmask := activeMask & 0xff

	base := uint32(muteNonGated)
	if gated {
		base = muteGated
	}
	fade := tileColor & activeMask

	sx, sy, tx, ty, sw, sh := clipRect(b.Width, b.Height, x, y, dst.Width, dst.Height)
	if sw <= 0 || sh <= 0 {
		return
	}

	for row := 0; row < sh; row++ {
		src := b.pix[(sy+row)*b.Stride:]
		out := dst.pix[(ty+row)*dst.Stride:]
		py := ty + row
		for col := 0; col < sw; col++ {
			c := src[sx+col]
			if c&0xff000000 == 0 {
				continue
			}

			inner, outer := aura.Sample(tx+col-lightX, py-lightY)
			lit := litColor(c, outer, max(inner, base), rmask, gmask, bmask)

			i := tx + col
			if gated {
				out[i] = BlendPerChannel(out[i], lit, fade)
			} else {
				out[i] = lit
			}
		}
	}
}

// litColor scales each channel of c by max(mute, outer*maskChannel>>8)
// and forces the result opaque.
func litColor(c, outer, mute, rmask, gmask, bmask uint32) uint32 {
	rs := max((outer*rmask)>>8, mute)
	gs := max((outer*gmask)>>8, mute)
	bs := max((outer*bmask)>>8, mute)

	r := min((((c>>16)&0xff)*rs)>>8, 0xff)
	g := min((((c>>8)&0xff)*gs)>>8, 0xff)
	bl := min(((c&0xff)*bs)>>8, 0xff)

	return 0xff000000 | r<<16 | g<<8 | bl
}

// DrawBackground is the same lighting arithmetic applied to a scaled
// background layer: no color gating, and the brightness samples are
// attenuated so large backdrops sit behind the lit playfield. The
// resampling and clipping ride the shared scaled-blit loop.
func (b *Bitmap) DrawBackground(dst *Bitmap, x, y int, scaleX, scaleY float64, activeMask uint32, aura *Aura, lightX, lightY int) {
	rmask := (activeMask >> 16) & 0xff
	gmask := (activeMask >> 8) & 0xff
	bmask := activeMask & 0xff

	b.drawScaled(dst, x, y, scaleX, scaleY, func(c uint32, dx, dy int) uint32 {
		inner, outer := aura.Sample(dx-lightX, dy-lightY)
		inner >>= 2
		outer >>= 2
		return litColor(c, outer, max(inner, uint32(muteBackdrop)), rmask, gmask, bmask)
	})
}
