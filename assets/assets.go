// Package assets builds the game's art and loads the embedded level. The
// tile sheet, player sprite and backdrop are generated with the bitmap
// primitives, so the repository carries no binary image files; a real
// sprite sheet decoded by an external image loader drops in through
// bitmap.FromRGBA without touching this layout.
package assets

import (
	"embed"
	"fmt"

	"github.com/automoto/masklight/bitmap"
	"github.com/automoto/masklight/config"
	"github.com/automoto/masklight/tilemap"
)

//go:embed all:levels
var levelFS embed.FS

// Sheet layout: one block of tile shapes per palette color. Ids derive
// from sheet cell coordinates, so they are sparse and stable.
var (
	sheetColors = []uint32{bitmap.Grey, bitmap.Red, bitmap.Green, bitmap.Blue}

	colorOrigins = [][2]int{
		{0, 0},
		{0, 16},
		{0, 32},
		{0, 48},
	}

	tileOffsets = [][2]int{
		{0, 0},  // solid block
		{8, 0},  // spike
		{16, 0}, // thin platform
	}

	tileFlags = []tilemap.Flags{
		tilemap.FlagCollision,
		tilemap.FlagHazard,
		tilemap.FlagCollision,
	}
)

type Assets struct {
	Atlas      *tilemap.Atlas
	Grid       *tilemap.Grid
	Background *bitmap.Bitmap
	Player     *bitmap.Bitmap

	SpawnX, SpawnY float64
}

// Load builds the art and reads the embedded level. Any failure here is a
// startup abort; there is no partial-level recovery.
func Load() (*Assets, error) {
	ts := config.C.TileSize

	sheet := buildTileSheet(ts)
	atlas := tilemap.BuildAtlas(sheet, ts, config.C.AuraSize,
		sheetColors, colorOrigins, tileOffsets, tileFlags)

	grid, err := tilemap.LoadFile(levelFS, "levels/level1.csv", ts)
	if err != nil {
		return nil, fmt.Errorf("load assets: %w", err)
	}

	return &Assets{
		Atlas:      atlas,
		Grid:       grid,
		Background: buildBackground(),
		Player:     buildPlayer(),
		SpawnX:     24,
		SpawnY:     80,
	}, nil
}

// buildTileSheet draws every tile shape once per palette color at the
// canonical sheet positions.
func buildTileSheet(ts int) *bitmap.Bitmap {
	sheet := bitmap.New(64, 64)

	for i, c := range sheetColors {
		ox, oy := colorOrigins[i][0], colorOrigins[i][1]

		// Solid block: filled body with a darker inset frame.
		sheet.DrawRectangle(ox, oy, ox+ts-1, oy+ts-1, true, c)
		sheet.DrawRectangle(ox+1, oy+1, ox+ts-2, oy+ts-2, false, shade(c, 140))

		// Spike: triangle pointing up.
		sx := float64(ox + tileOffsets[1][0])
		sy := float64(oy)
		sheet.DrawTriangle(
			bitmap.Vec2{X: sx, Y: sy + float64(ts)},
			bitmap.Vec2{X: sx + float64(ts), Y: sy + float64(ts)},
			bitmap.Vec2{X: sx + float64(ts)/2, Y: sy},
			c,
		)

		// Thin platform: top slab with a darker underside.
		px := ox + tileOffsets[2][0]
		sheet.DrawRectangle(px, oy, px+ts-1, oy+2, true, c)
		sheet.DrawRectangle(px, oy+3, px+ts-1, oy+3, true, shade(c, 110))
	}
	return sheet
}

// buildPlayer draws the demo player sprite using the two key skin-tone
// colors, so DrawOnScaledRecolor can restyle it per worn mask.
func buildPlayer() *bitmap.Bitmap {
	w := config.Player.FrameWidth
	h := config.Player.FrameHeight
	p := bitmap.New(w, h)

	key0 := 0xff000000 | uint32(0xffdcb9)
	key1 := 0xff000000 | uint32(0xe9be93)

	// Head
	p.DrawRectangle(2, 0, w-3, 4, true, key0)
	// Eyes
	p.Plot(3, 2, bitmap.Black)
	p.Plot(w-4, 2, bitmap.Black)
	// Torso
	p.DrawRectangle(1, 5, w-2, h-4, true, key1)
	// Legs
	p.DrawRectangle(2, h-3, 3, h-1, true, key0)
	p.DrawRectangle(w-4, h-3, w-3, h-1, true, key0)
	return p
}

// buildBackground paints a small backdrop that DrawBackground scales over
// the whole frame: a night gradient with far hills.
func buildBackground() *bitmap.Bitmap {
	const w, h = 128, 90
	bg := bitmap.New(w, h)

	for y := 0; y < h; y++ {
		v := uint32(0x18 + y*0x30/h)
		bg.DrawRectangle(0, y, w-1, y, true, 0xff000000|v<<8|(v+0x18))
	}

	hill := uint32(0xff0a1a2a)
	bg.DrawTriangle(bitmap.Vec2{X: -20, Y: float64(h)}, bitmap.Vec2{X: 80, Y: float64(h)}, bitmap.Vec2{X: 30, Y: 48}, hill)
	bg.DrawTriangle(bitmap.Vec2{X: 50, Y: float64(h)}, bitmap.Vec2{X: 150, Y: float64(h)}, bitmap.Vec2{X: 100, Y: 40}, hill)

	return bg
}

// shade scales each RGB channel by factor/256, keeping alpha opaque.
func shade(c uint32, factor uint32) uint32 {
	r := ((c >> 16 & 0xff) * factor) >> 8
	g := ((c >> 8 & 0xff) * factor) >> 8
	b := ((c & 0xff) * factor) >> 8
	return 0xff000000 | r<<16 | g<<8 | b
}
