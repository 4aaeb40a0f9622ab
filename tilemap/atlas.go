package tilemap

import (
	"sort"

	"github.com/automoto/masklight/bitmap"
)

// Tile is one tile definition: its sprite, its native palette color, its
// behavior flags and the stable id level files refer to it by.
type Tile struct {
	ID     int
	Sprite *bitmap.Bitmap
	Color  uint32
	Flags  Flags
}

// Atlas is the sparse id->tile map plus the precomputed radial brightness
// tables for the moving light. Ids have gaps: they derive from
// sprite-sheet cell coordinates, not authoring order. Unknown ids resolve
// to a placeholder tile that renders but contributes no flags.
type Atlas struct {
	TileSize    int
	Unsupported *Tile
	Aura        *bitmap.Aura

	tiles map[int]*Tile
}

// NewAtlas creates an empty atlas with a placeholder tile and light tables
// of the given side length.
func NewAtlas(tileSize, auraSize int) *Atlas {
	return &Atlas{
		TileSize:    tileSize,
		Unsupported: placeholderTile(tileSize),
		Aura:        bitmap.NewAura(auraSize),
		tiles:       map[int]*Tile{},
	}
}

// Register adds or replaces a tile definition.
func (a *Atlas) Register(t *Tile) {
	a.tiles[t.ID] = t
}

// Lookup returns the definition for id, or nil if the id is unknown.
func (a *Atlas) Lookup(id int) *Tile {
	return a.tiles[id]
}

// IDs returns every registered id in ascending order.
func (a *Atlas) IDs() []int {
	ids := make([]int, 0, len(a.tiles))
	for id := range a.tiles {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// BuildAtlas cuts tile sprites out of a sheet. colorOrigins[i] is the
// top-left of the block of tiles drawn in colors[i]; tileOffsets[j] is the
// position of shape j relative to that origin, carrying tileFlags[j]. Each
// tile is keyed by its cell index in the sheet, so ids stay stable when
// shapes are added. Red/green/blue palette colors gate their tiles.
func BuildAtlas(sheet *bitmap.Bitmap, tileSize, auraSize int, colors []uint32, colorOrigins [][2]int, tileOffsets [][2]int, tileFlags []Flags) *Atlas {
	a := NewAtlas(tileSize, auraSize)
	strideInTiles := sheet.Width / tileSize

	for i, c := range colors {
		origin := colorOrigins[i]
		for j, off := range tileOffsets {
			x := origin[0] + off[0]
			y := origin[1] + off[1]

			sprite := bitmap.New(tileSize, tileSize)
			sheet.DrawOn(sprite, -x, -y)

			flags := tileFlags[j]
			switch c {
			case bitmap.Red:
				flags |= FlagGatedRed
			case bitmap.Green:
				flags |= FlagGatedGreen
			case bitmap.Blue:
				flags |= FlagGatedBlue
			}

			a.Register(&Tile{
				ID:     x/tileSize + y/tileSize*strideInTiles,
				Sprite: sprite,
				Color:  c,
				Flags:  flags,
			})
		}
	}
	return a
}

// placeholderTile builds the magenta checker drawn for ids with no
// definition.
func placeholderTile(tileSize int) *Tile {
	sprite := bitmap.New(tileSize, tileSize)
	for y := 0; y < tileSize; y++ {
		for x := 0; x < tileSize; x++ {
			c := bitmap.Magenta
			if (x/2+y/2)%2 == 0 {
				c = bitmap.Black
			}
			sprite.Plot(x, y, c)
		}
	}
	return &Tile{ID: -1, Sprite: sprite, Color: bitmap.Black, Flags: FlagNone}
}
