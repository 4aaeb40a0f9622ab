package systems

import (
	"testing"

	"github.com/automoto/masklight/assets"
	"github.com/automoto/masklight/bitmap"
	"github.com/automoto/masklight/components"
	"github.com/automoto/masklight/config"
	"github.com/automoto/masklight/tags"
	"github.com/automoto/masklight/tilemap"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// newPlayerWorld builds a 6x4 room: a plain floor on the bottom row, a
// red-gated wall at tile (3,2) and a hazard at (5,2).
func newPlayerWorld(t *testing.T) (*ecs.ECS, *components.PlayerData, *components.MaskData) {
	t.Helper()

	atlas := tilemap.NewAtlas(8, 16)
	solid := bitmap.New(8, 8)
	solid.Clear(bitmap.Grey)
	atlas.Register(&tilemap.Tile{ID: 5, Sprite: solid, Color: bitmap.Grey, Flags: tilemap.FlagCollision})
	atlas.Register(&tilemap.Tile{ID: 6, Sprite: solid, Color: bitmap.Grey, Flags: tilemap.FlagHazard})
	gate := bitmap.New(8, 8)
	gate.Clear(bitmap.Red)
	atlas.Register(&tilemap.Tile{ID: 7, Sprite: gate, Color: bitmap.Red, Flags: tilemap.FlagCollision | tilemap.FlagGatedRed})

	grid := tilemap.NewGrid(6, 4, 8)
	for tx := 0; tx < 6; tx++ {
		grid.SetTile(tx, 3, 5)
	}
	grid.SetTile(3, 2, 7)
	grid.SetTile(5, 2, 6)

	e := ecs.NewECS(donburi.NewWorld())

	levelEntry := e.World.Entry(e.World.Create(tags.Level, components.Level))
	components.Level.SetValue(levelEntry, components.LevelData{
		Assets: &assets.Assets{
			Atlas:  atlas,
			Grid:   grid,
			SpawnX: 8,
			SpawnY: 10,
		},
	})

	playerEntry := e.World.Entry(e.World.Create(tags.Player, components.Player))
	components.Player.SetValue(playerEntry, components.PlayerData{
		Position: dmath.Vec2{X: 8, Y: 10},
	})

	maskEntry := e.World.Entry(e.World.Create(components.Mask))

	return e, components.Player.Get(playerEntry), components.Mask.Get(maskEntry)
}

func TestPlayerGravityAndLanding(t *testing.T) {
	e, p, _ := newPlayerWorld(t)
	p.Position.Y = 0

	UpdatePlayer(e)
	if p.Velocity.Y != config.Player.Gravity {
		t.Fatalf("Velocity.Y = %v, want %v", p.Velocity.Y, config.Player.Gravity)
	}
	if p.OnGround {
		t.Fatal("airborne player reports grounded")
	}

	for i := 0; i < 120; i++ {
		UpdatePlayer(e)
	}
	if !p.OnGround {
		t.Fatal("player never landed")
	}
	// Snapped so the sprite bottom sits on the floor row at y=24.
	if got := p.Position.Y + float64(config.Player.FrameHeight); got != 24 {
		t.Fatalf("sprite bottom = %v, want 24", got)
	}
	if p.Velocity.Y != 0 {
		t.Fatalf("grounded Velocity.Y = %v", p.Velocity.Y)
	}
}

func TestPlayerJump(t *testing.T) {
	e, p, _ := newPlayerWorld(t)
	for i := 0; i < 120; i++ {
		UpdatePlayer(e)
	}
	if !p.OnGround {
		t.Fatal("setup: player not grounded")
	}

	p.JumpHeld = true
	UpdatePlayer(e)
	if p.OnGround {
		t.Fatal("still grounded after jump")
	}
	if p.Velocity.Y >= 0 {
		t.Fatalf("jump Velocity.Y = %v, want upward", p.Velocity.Y)
	}
}

func TestPlayerGatedWallBlocksOnlyWithMask(t *testing.T) {
	// Wearing red: the gated wall is solid and stops the walk.
	e, p, mask := newPlayerWorld(t)
	SetWornMask(mask, 1)
	p.MoveX = 1
	for i := 0; i < 180; i++ {
		UpdatePlayer(e)
		p.MoveX = 1
	}
	if p.Position.X >= 17 {
		t.Fatalf("player inside gated wall: x = %v", p.Position.X)
	}
	if p.FacingLeft {
		t.Fatal("facing right yet FacingLeft set")
	}

	// No mask: the same wall is intangible. Stop once past it, before
	// the spike further right.
	e2, p2, mask2 := newPlayerWorld(t)
	SetWornMask(mask2, 0)
	passed := false
	for i := 0; i < 180 && !passed; i++ {
		p2.MoveX = 1
		UpdatePlayer(e2)
		passed = p2.Position.X > 24
	}
	if !passed {
		t.Fatalf("player blocked by inactive gate: x = %v", p2.Position.X)
	}
}

func TestPlayerHazardRespawns(t *testing.T) {
	e, p, mask := newPlayerWorld(t)
	SetWornMask(mask, 0)

	// Walk off to the right, through the inactive gate and into the spike.
	for i := 0; i < 600; i++ {
		p.MoveX = 1
		UpdatePlayer(e)
		if p.Position.X == 8 && p.Velocity.X == 0 && i > 10 {
			// Respawned back at the spawn point.
			return
		}
	}
	t.Fatal("player never hit the hazard and respawned")
}

func TestPlayerFriction(t *testing.T) {
	e, p, _ := newPlayerWorld(t)
	for i := 0; i < 120; i++ {
		UpdatePlayer(e)
	}

	p.MoveX = 1
	UpdatePlayer(e)
	moving := p.Velocity.X
	if moving <= 0 {
		t.Fatalf("Velocity.X = %v after input", moving)
	}

	p.MoveX = 0
	UpdatePlayer(e)
	if p.Velocity.X >= moving {
		t.Fatalf("friction did not slow: %v -> %v", moving, p.Velocity.X)
	}
}
