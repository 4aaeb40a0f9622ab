package bitmap

import (
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Font is a 256-entry glyph table indexed by lower-cased ASCII. Slot 254
// holds the micro sign, slot 255 the catch-all glyph for anything the
// table cannot represent. Strings advance a fixed per-character pitch.
type Font struct {
	GlyphWidth  int
	GlyphHeight int
	Pitch       int

	glyphs [256][][]bool
}

// BuildFont rasterizes a glyph table from a font face at load time. Cell
// size is taken from the face metrics; coverage is thresholded into the
// boolean table.
func BuildFont(face font.Face) *Font {
	m := face.Metrics()
	ascent := m.Ascent.Ceil()
	h := (m.Ascent + m.Descent).Ceil()
	w := 6
	if adv, ok := face.GlyphAdvance('M'); ok {
		w = adv.Ceil()
	}

	f := &Font{
		GlyphWidth:  w,
		GlyphHeight: h,
		Pitch:       w + 1,
	}

	box := boxGlyph(w, h)
	blank := blankGlyph(w, h)
	for i := range f.glyphs {
		if i < 32 {
			f.glyphs[i] = blank
		} else {
			f.glyphs[i] = box
		}
	}
	for c := rune(32); c < 127; c++ {
		f.glyphs[c] = renderGlyph(face, c, w, h, ascent)
	}
	f.glyphs[254] = renderGlyph(face, 'µ', w, h, ascent)

	return f
}

// DrawString draws s starting at (x, y). Every glyph pixel is drawn twice:
// once in the requested color and once offset by (+1,+1) in black, faking
// a drop shadow.
func (f *Font) DrawString(dst *Bitmap, s string, x, y int, colr uint32) {
	for _, c := range s {
		var ci int
		switch {
		case c < 128:
			if c >= 'A' && c <= 'Z' {
				c += 'a' - 'A'
			}
			ci = int(c)
		case c == 'µ' || c == 'μ':
			ci = 254
		default:
			ci = 255
		}

		for v, row := range f.glyphs[ci] {
			for u, set := range row {
				if set {
					dst.Plot(x+u, y+v, colr)
					dst.Plot(x+1+u, y+1+v, Black)
				}
			}
		}

		x += f.Pitch
	}
}

func renderGlyph(face font.Face, r rune, w, h, ascent int) [][]bool {
	img := image.NewAlpha(image.Rect(0, 0, w, h))
	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.Alpha{A: 0xff}),
		Face: face,
		Dot:  fixed.P(0, ascent),
	}
	d.DrawString(string(r))

	g := make([][]bool, h)
	for y := range g {
		g[y] = make([]bool, w)
		for x := range g[y] {
			g[y][x] = img.AlphaAt(x, y).A >= 0x80
		}
	}
	return g
}

// boxGlyph is the catch-all "unsupported character" outline.
func boxGlyph(w, h int) [][]bool {
	g := make([][]bool, h)
	for y := range g {
		g[y] = make([]bool, w)
		for x := range g[y] {
			g[y][x] = y == 0 || y == h-1 || x == 0 || x == w-1
		}
	}
	return g
}

func blankGlyph(w, h int) [][]bool {
	g := make([][]bool, h)
	for y := range g {
		g[y] = make([]bool, w)
	}
	return g
}
