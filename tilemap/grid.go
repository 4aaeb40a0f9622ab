package tilemap

import (
	"math"

	"github.com/automoto/masklight/bitmap"
)

// EmptyTile is the sentinel id for a cell with no tile.
const EmptyTile = -1

// Grid is the 2D array of signed tile ids making up one level layer.
// Built at load time, mutated only by the editor, read every frame by
// rendering and by external collision queries.
type Grid struct {
	Width    int
	Height   int
	TileSize int
	Tiles    []int
}

// NewGrid allocates a grid with every cell empty.
func NewGrid(width, height, tileSize int) *Grid {
	g := &Grid{
		Width:    width,
		Height:   height,
		TileSize: tileSize,
		Tiles:    make([]int, width*height),
	}
	for i := range g.Tiles {
		g.Tiles[i] = EmptyTile
	}
	return g
}

// TileAt returns the id at tile coordinates (tx, ty), EmptyTile outside
// the grid.
func (g *Grid) TileAt(tx, ty int) int {
	if tx < 0 || ty < 0 || tx >= g.Width || ty >= g.Height {
		return EmptyTile
	}
	return g.Tiles[tx+ty*g.Width]
}

// SetTile writes the id at (tx, ty). Out-of-range coordinates are a no-op.
func (g *Grid) SetTile(tx, ty, id int) {
	if tx < 0 || ty < 0 || tx >= g.Width || ty >= g.Height {
		return
	}
	g.Tiles[tx+ty*g.Width] = id
}

// WorldToTile converts a world position to tile coordinates,
// componentwise floor(pos / tileSize).
func (g *Grid) WorldToTile(wx, wy float64) (int, int) {
	ts := float64(g.TileSize)
	return int(math.Floor(wx / ts)), int(math.Floor(wy / ts))
}

// SampleFlags returns the flags of the tile under the world position,
// gated by the active color mask. Outside the grid, on empty cells and on
// ids with no atlas definition it returns FlagNone. A gated tile whose
// color does not intersect the mask also returns FlagNone; non-gated
// flags are never suppressed by any mask value.
func (g *Grid) SampleFlags(a *Atlas, wx, wy float64, activeMask uint32) Flags {
	mask := activeMask & 0xffffff

	tx, ty := g.WorldToTile(wx, wy)
	if tx < 0 || ty < 0 || tx >= g.Width || ty >= g.Height {
		return FlagNone
	}

	id := g.Tiles[tx+ty*g.Width]
	if id == EmptyTile {
		return FlagNone
	}
	tile := a.Lookup(id)
	if tile == nil {
		return FlagNone
	}
	if tile.Flags.Gated() && tile.Color&mask == 0 {
		return FlagNone
	}
	return tile.Flags
}

// Draw composites the camera-visible part of the grid onto dst. The
// viewport is projected into tile space, clamped to the grid, and only
// that rectangle is walked. activeMask is the instantaneous mask the game
// logic gates on; lerpedMask is its smoothed value and drives the lighting
// and the gated-tile fade. editorMode bypasses lighting and gating and
// draws every tile at full brightness.
func (g *Grid) Draw(a *Atlas, dst *bitmap.Bitmap, camX, camY float64, activeMask, lerpedMask uint32, lightX, lightY int, editorMode bool) {
	ts := float64(g.TileSize)

	tileMinX := int(math.Max(camX/ts, 0))
	tileMinY := int(math.Max(camY/ts, 0))
	tileMaxX := int(clampf(math.Ceil((camX+float64(dst.Width))/ts), 0, float64(g.Width)))
	tileMaxY := int(clampf(math.Ceil((camY+float64(dst.Height))/ts), 0, float64(g.Height)))

	for y := 0; y < tileMaxY-tileMinY; y++ {
		for x := 0; x < tileMaxX-tileMinX; x++ {
			tx := tileMinX + x
			ty := tileMinY + y

			id := g.Tiles[tx+ty*g.Width]
			if id == EmptyTile {
				continue
			}
			tile := a.Lookup(id)
			if tile == nil {
				tile = a.Unsupported
			}

			// Fully faded-out gated tiles composite to nothing; skip them.
			if !editorMode && tile.Flags.Gated() &&
				tile.Color&activeMask&0xffffff == 0 && tile.Color&lerpedMask&0xffffff == 0 {
				continue
			}

			sx := x*g.TileSize - int(camX) + tileMinX*g.TileSize
			sy := y*g.TileSize - int(camY) + tileMinY*g.TileSize

			if editorMode {
				tile.Sprite.DrawOn(dst, sx, sy)
				continue
			}
			tile.Sprite.DrawTile(dst, sx, sy, tile.Flags.Gated(), tile.Color, lerpedMask, a.Aura, lightX, lightY)
		}
	}
}

// EditorDraw draws the grid at an arbitrary zoom with no lighting, for
// authoring visibility. Unknown ids render as the placeholder.
func (g *Grid) EditorDraw(a *Atlas, dst *bitmap.Bitmap, camX, camY, zoom float64) {
	ts := float64(g.TileSize)
	drawTS := ts * zoom

	maxX := int(math.Ceil(float64(dst.Width)/drawTS)) + 1
	maxY := int(math.Ceil(float64(dst.Height)/drawTS)) + 1

	startX := int(camX / ts)
	startY := int(camY / ts)

	offX := math.Mod(camX, ts) * zoom
	offY := math.Mod(camY, ts) * zoom

	minX, minY := 0, 0
	if startX < 0 {
		minX = -startX
	}
	if startY < 0 {
		minY = -startY
	}
	if startX+maxX >= g.Width {
		maxX = g.Width - startX
	}
	if startY+maxY >= g.Height {
		maxY = g.Height - startY
	}

	for y := minY; y < maxY; y++ {
		drawY := int(math.Floor(drawTS*float64(y) - offY))
		for x := minX; x < maxX; x++ {
			drawX := int(math.Floor(drawTS*float64(x) - offX))

			id := g.Tiles[(startX+x)+(startY+y)*g.Width]
			if id == EmptyTile {
				continue
			}
			tile := a.Lookup(id)
			if tile == nil {
				tile = a.Unsupported
			}
			tile.Sprite.DrawOnScaled(dst, drawX, drawY, zoom, zoom)
		}
	}
}

func clampf(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
