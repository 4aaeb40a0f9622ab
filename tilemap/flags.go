// Package tilemap holds the level tile layer: the sparse tile atlas with
// its radial light tables, and the grid of tile ids with gated flag
// sampling and viewport-clipped drawing.
package tilemap

// Flags is the per-tile behavior bit set. The GatedX bits mean the tile
// counts as solid/visible only while the active color mask intersects its
// color.
type Flags uint32

const (
	FlagNone      Flags = 0x0
	FlagCollision Flags = 0x1
	FlagHazard    Flags = 0x2

	FlagGatedRed   Flags = 0x4
	FlagGatedGreen Flags = 0x8
	FlagGatedBlue  Flags = 0x10

	flagGatedAny = FlagGatedRed | FlagGatedGreen | FlagGatedBlue
)

// Has reports whether all bits of o are set.
func (f Flags) Has(o Flags) bool { return f&o == o }

// Intersects reports whether any bit of o is set.
func (f Flags) Intersects(o Flags) bool { return f&o != 0 }

// Gated reports whether the tile's visibility depends on the active color
// mask.
func (f Flags) Gated() bool { return f.Intersects(flagGatedAny) }
