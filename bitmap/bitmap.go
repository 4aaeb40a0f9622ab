// Package bitmap implements the software pixel compositor: packed-ARGB
// pixel buffers and the blit, rasterize and lighting primitives every
// frame is rendered with.
package bitmap

import "fmt"

// Bitmap is a dense 2D array of packed 32-bit ARGB values with an explicit
// row stride. It either owns its backing slice (art assets, allocated once
// at load time) or borrows caller memory for exactly one frame (the
// presentation framebuffer). A borrowed bitmap must never be retained past
// frame hand-off.
type Bitmap struct {
	Width  int
	Height int
	Stride int

	pix      []uint32
	borrowed bool
}

// New allocates a zero-filled owned bitmap with stride == width.
func New(width, height int) *Bitmap {
	return &Bitmap{
		Width:  width,
		Height: height,
		Stride: width,
		pix:    make([]uint32, width*height),
	}
}

// Wrap creates a borrowed view over caller-owned memory. The caller
// guarantees x + y*stride < len(pix) for all 0 <= x < width,
// 0 <= y < height, for the lifetime of the view (one frame).
func Wrap(pix []uint32, width, height, stride int) *Bitmap {
	return &Bitmap{
		Width:    width,
		Height:   height,
		Stride:   stride,
		pix:      pix,
		borrowed: true,
	}
}

// FromRGBA repacks a flat top-left-origin RGBA buffer (4 bytes per pixel,
// as handed over by an external image decoder) into packed ARGB. Any other
// layout is a load error.
func FromRGBA(data []byte, width, height int) (*Bitmap, error) {
	if len(data) != width*height*4 {
		return nil, fmt.Errorf("repack %dx%d: got %d bytes, want %d (RGBA only)",
			width, height, len(data), width*height*4)
	}
	b := New(width, height)
	for i := range b.pix {
		r := uint32(data[i*4+0])
		g := uint32(data[i*4+1])
		bl := uint32(data[i*4+2])
		a := uint32(data[i*4+3])
		b.pix[i] = a<<24 | r<<16 | g<<8 | bl
	}
	return b, nil
}

// Pix exposes the backing slice. Index with x + y*Stride.
func (b *Bitmap) Pix() []uint32 { return b.pix }

// Borrowed reports whether the bitmap aliases caller-owned memory.
func (b *Bitmap) Borrowed() bool { return b.borrowed }

// Clear fills every pixel, including any stride padding.
func (b *Bitmap) Clear(color uint32) {
	for i := range b.pix {
		b.pix[i] = color
	}
}

// Plot writes one pixel. Out-of-range coordinates are a no-op.
func (b *Bitmap) Plot(x, y int, color uint32) {
	if x < 0 || x >= b.Width || y < 0 || y >= b.Height {
		return
	}
	b.pix[x+y*b.Stride] = color
}

// At reads one pixel. Out-of-range coordinates return 0.
func (b *Bitmap) At(x, y int) uint32 {
	if x < 0 || x >= b.Width || y < 0 || y >= b.Height {
		return 0
	}
	return b.pix[x+y*b.Stride]
}
