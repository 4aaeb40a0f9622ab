package bitmap

// Named packed ARGB colors. Source art uses alpha 0x00 (no pixel) or 0xff
// (opaque); the compositor also feeds synthesized per-channel mask values
// through the same bit layout.
const (
	Red     uint32 = 0xffff0000
	Green   uint32 = 0xff00ff00
	Blue    uint32 = 0xff0000ff
	Yellow  uint32 = 0xffffff00
	Cyan    uint32 = 0xff00ffff
	Magenta uint32 = 0xffff00ff
	Orange  uint32 = 0xffff7f00
	Purple  uint32 = 0xff7f00ff
	Grey    uint32 = 0xff777777
	Black   uint32 = 0xff000000
	White   uint32 = Red | Green | Blue
)

// Blend lerps b over a with a single factor in [0,255]. Output alpha is
// forced opaque.
func Blend(a, b, factor uint32) uint32 {
	ar := (a >> 16) & 0xff
	ag := (a >> 8) & 0xff
	ab := a & 0xff

	br := (b >> 16) & 0xff
	bg := (b >> 8) & 0xff
	bb := b & 0xff

	r := min((ar*(255-factor)+br*factor)>>8, 0xff)
	g := min((ag*(255-factor)+bg*factor)>>8, 0xff)
	bl := min((ab*(255-factor)+bb*factor)>>8, 0xff)

	return 0xff000000 | r<<16 | g<<8 | bl
}

// BlendPerChannel is Blend with an independent factor per channel, packed
// into the RGB bytes of factor. Gated tiles fade through this when the
// active color mask changes.
func BlendPerChannel(a, b, factor uint32) uint32 {
	ar := (a >> 16) & 0xff
	ag := (a >> 8) & 0xff
	ab := a & 0xff

	fr := (factor >> 16) & 0xff
	fg := (factor >> 8) & 0xff
	fb := factor & 0xff

	br := (b >> 16) & 0xff
	bg := (b >> 8) & 0xff
	bb := b & 0xff

	r := min((ar*(255-fr)+br*fr)>>8, 0xff)
	g := min((ag*(255-fg)+bg*fg)>>8, 0xff)
	bl := min((ab*(255-fb)+bb*fb)>>8, 0xff)

	return 0xff000000 | r<<16 | g<<8 | bl
}

// AddBlend adds b to a with per-channel saturation. Output alpha is forced
// opaque.
func AddBlend(a, b uint32) uint32 {
	r := min(((a>>16)&0xff)+((b>>16)&0xff), 0xff)
	g := min(((a>>8)&0xff)+((b>>8)&0xff), 0xff)
	bl := min((a&0xff)+(b&0xff), 0xff)

	return 0xff000000 | r<<16 | g<<8 | bl
}
