package assets

import (
	"testing"

	"github.com/automoto/masklight/bitmap"
	"github.com/automoto/masklight/config"
	"github.com/automoto/masklight/tilemap"
)

func TestLoadBuildsWorld(t *testing.T) {
	a, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if a.Grid == nil || a.Grid.Width == 0 || a.Grid.Height == 0 {
		t.Fatal("no level grid")
	}
	if a.Grid.TileSize != config.C.TileSize {
		t.Fatalf("tile size = %d, want %d", a.Grid.TileSize, config.C.TileSize)
	}

	if a.Player.Width != config.Player.FrameWidth || a.Player.Height != config.Player.FrameHeight {
		t.Fatalf("player sprite %dx%d", a.Player.Width, a.Player.Height)
	}
	if a.Background == nil || a.Atlas == nil {
		t.Fatal("missing background or atlas")
	}
}

func TestAtlasCarriesEveryShapePerColor(t *testing.T) {
	a, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	cases := []struct {
		id    int
		flags tilemap.Flags
	}{
		{0, tilemap.FlagCollision},                           // grey block
		{1, tilemap.FlagHazard},                              // grey spike
		{2, tilemap.FlagCollision},                           // grey platform
		{16, tilemap.FlagCollision | tilemap.FlagGatedRed},   // red block
		{32, tilemap.FlagCollision | tilemap.FlagGatedGreen}, // green block
		{48, tilemap.FlagCollision | tilemap.FlagGatedBlue},  // blue block
		{50, tilemap.FlagCollision | tilemap.FlagGatedBlue},  // blue platform
	}
	for _, c := range cases {
		tile := a.Atlas.Lookup(c.id)
		if tile == nil {
			t.Fatalf("tile %d not registered", c.id)
		}
		if tile.Flags != c.flags {
			t.Fatalf("tile %d flags = %v, want %v", c.id, tile.Flags, c.flags)
		}
	}
}

func TestPlayerSpriteUsesRecolorKeys(t *testing.T) {
	a, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	key0, key1 := false, false
	for _, c := range a.Player.Pix() {
		switch c {
		case 0xffffdcb9:
			key0 = true
		case 0xffe9be93:
			key1 = true
		}
	}
	if !key0 || !key1 {
		t.Fatalf("sprite missing key colors: key0=%v key1=%v", key0, key1)
	}
}

func TestLevelSpawnIsClear(t *testing.T) {
	a, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	// The spawn cell must not start inside solid geometry.
	flags := a.Grid.SampleFlags(a.Atlas, a.SpawnX, a.SpawnY, bitmap.White&0xffffff)
	if flags.Has(tilemap.FlagCollision) || flags.Has(tilemap.FlagHazard) {
		t.Fatalf("spawn point inside geometry: %v", flags)
	}
}
