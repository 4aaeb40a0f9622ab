package tilemap

import (
	"testing"

	"github.com/automoto/masklight/bitmap"
)

func TestBuildAtlasIDsAndFlags(t *testing.T) {
	// 32x32 sheet of 8px tiles: two palette rows with two shapes each.
	sheet := bitmap.New(32, 32)
	sheet.DrawRectangle(0, 0, 15, 7, true, bitmap.Grey)
	sheet.DrawRectangle(0, 8, 15, 15, true, bitmap.Red)

	colors := []uint32{bitmap.Grey, bitmap.Red}
	origins := [][2]int{{0, 0}, {0, 8}}
	offsets := [][2]int{{0, 0}, {8, 0}}
	flags := []Flags{FlagCollision, FlagHazard}

	a := BuildAtlas(sheet, 8, 16, colors, origins, offsets, flags)

	// Ids are sheet cell indices: row 0 cells 0 and 1, row 1 cells 4 and 5.
	wantIDs := []int{0, 1, 4, 5}
	ids := a.IDs()
	if len(ids) != len(wantIDs) {
		t.Fatalf("IDs = %v, want %v", ids, wantIDs)
	}
	for i, id := range wantIDs {
		if ids[i] != id {
			t.Fatalf("IDs = %v, want %v", ids, wantIDs)
		}
	}

	grey := a.Lookup(0)
	if grey.Flags != FlagCollision || grey.Color != bitmap.Grey {
		t.Fatalf("grey block = %v color %#x", grey.Flags, grey.Color)
	}

	// Red palette tiles pick up the red gate automatically.
	redBlock := a.Lookup(4)
	if redBlock.Flags != FlagCollision|FlagGatedRed {
		t.Fatalf("red block flags = %v", redBlock.Flags)
	}
	redSpike := a.Lookup(5)
	if redSpike.Flags != FlagHazard|FlagGatedRed {
		t.Fatalf("red spike flags = %v", redSpike.Flags)
	}

	// Sprites are cut from the sheet at the right cell.
	if got := grey.Sprite.At(3, 3); got != bitmap.Grey {
		t.Fatalf("grey sprite pixel = %#x", got)
	}
	if got := redBlock.Sprite.At(3, 3); got != bitmap.Red {
		t.Fatalf("red sprite pixel = %#x", got)
	}
}

func TestLookupUnknownID(t *testing.T) {
	a := NewAtlas(8, 16)
	if a.Lookup(123) != nil {
		t.Fatal("unknown id resolved")
	}
	if a.Unsupported == nil || a.Unsupported.Sprite == nil {
		t.Fatal("no placeholder tile")
	}
	if a.Unsupported.Flags != FlagNone {
		t.Fatalf("placeholder flags = %v", a.Unsupported.Flags)
	}
}

func TestRegisterReplaces(t *testing.T) {
	a := NewAtlas(8, 16)
	s := bitmap.New(8, 8)
	a.Register(&Tile{ID: 3, Sprite: s, Color: bitmap.Grey, Flags: FlagCollision})
	a.Register(&Tile{ID: 3, Sprite: s, Color: bitmap.Blue, Flags: FlagHazard})

	got := a.Lookup(3)
	if got.Color != bitmap.Blue || got.Flags != FlagHazard {
		t.Fatalf("replace kept %v %#x", got.Flags, got.Color)
	}
	if len(a.IDs()) != 1 {
		t.Fatalf("IDs = %v", a.IDs())
	}
}
