package tilemap

import (
	"fmt"
	"io/fs"

	"github.com/lafriks/go-tiled"
)

// LoadTMX imports a Tiled TMX map as a grid. The first tile layer is used;
// nil cells become EmptyTile and every other cell keeps its tileset-local
// id, which matches atlas ids when the tileset image is the game's sprite
// sheet. It takes an fs.FS so callers can pass embed.FS or os.DirFS.
func LoadTMX(fsys fs.FS, tmxPath string) (*Grid, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}
	if len(levelMap.Layers) == 0 {
		return nil, fmt.Errorf("load TMX %s: no tile layers", tmxPath)
	}

	layer := levelMap.Layers[0]
	g := NewGrid(levelMap.Width, levelMap.Height, levelMap.TileWidth)

	for y := 0; y < levelMap.Height; y++ {
		for x := 0; x < levelMap.Width; x++ {
			tile := layer.Tiles[y*levelMap.Width+x]
			if tile.IsNil() {
				continue
			}
			if tile.HorizontalFlip || tile.VerticalFlip || tile.DiagonalFlip {
				return nil, fmt.Errorf("load TMX %s: flipped tile at (%d,%d) not supported", tmxPath, x, y)
			}
			g.Tiles[x+y*g.Width] = int(tile.ID)
		}
	}
	return g, nil
}
