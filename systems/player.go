package systems

import (
	"math"

	"github.com/automoto/masklight/components"
	"github.com/automoto/masklight/config"
	"github.com/automoto/masklight/tags"
	"github.com/automoto/masklight/tilemap"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlayer integrates demo player movement against the tile layer.
// Solidity comes exclusively from Grid.SampleFlags under the
// instantaneous active mask, which is what makes gated tiles walkable
// only while the matching mask is worn.
func UpdatePlayer(e *ecs.ECS) {
	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	maskEntry, ok := components.Mask.First(e.World)
	if !ok {
		return
	}

	p := components.Player.Get(playerEntry)
	level := components.Level.Get(levelEntry)
	mask := components.Mask.Get(maskEntry)

	grid := level.Assets.Grid
	atlas := level.Assets.Atlas
	cfg := config.Player
	w := float64(cfg.FrameWidth)
	h := float64(cfg.FrameHeight)

	p.Velocity.X += p.MoveX * cfg.Acceleration
	if p.MoveX == 0 {
		p.Velocity.X *= cfg.Friction
	}
	p.Velocity.X = math.Max(-cfg.MaxSpeed, math.Min(cfg.MaxSpeed, p.Velocity.X))
	if p.MoveX < 0 {
		p.FacingLeft = true
	} else if p.MoveX > 0 {
		p.FacingLeft = false
	}

	if p.JumpHeld && p.OnGround {
		p.Velocity.Y = -cfg.JumpSpeed
		p.OnGround = false
	}
	p.Velocity.Y = math.Min(p.Velocity.Y+cfg.Gravity, cfg.MaxFallSpeed)

	// Horizontal sweep.
	nx := p.Position.X + p.Velocity.X
	if boxSolid(grid, atlas, mask.Active, nx, p.Position.Y, nx+w-1, p.Position.Y+h-1) {
		p.Velocity.X = 0
	} else {
		p.Position.X = nx
	}

	// Vertical sweep. The support probe one pixel under the feet keeps a
	// standing player pinned to the surface instead of re-falling into it
	// every frame.
	ts := float64(grid.TileSize)
	p.OnGround = false
	switch {
	case p.Velocity.Y >= 0 && boxSolid(grid, atlas, mask.Active, p.Position.X, p.Position.Y+h, p.Position.X+w-1, p.Position.Y+h):
		p.Position.Y = math.Floor((p.Position.Y+h)/ts)*ts - h
		p.Velocity.Y = 0
		p.OnGround = true
	case p.Velocity.Y >= 0:
		ny := p.Position.Y + p.Velocity.Y
		if boxSolid(grid, atlas, mask.Active, p.Position.X, ny+h-1, p.Position.X+w-1, ny+h-1) {
			p.Position.Y = math.Floor((ny+h-1)/ts)*ts - h
			p.Velocity.Y = 0
			p.OnGround = true
		} else {
			p.Position.Y = ny
		}
	default:
		ny := p.Position.Y + p.Velocity.Y
		if boxSolid(grid, atlas, mask.Active, p.Position.X, ny, p.Position.X+w-1, ny) {
			p.Velocity.Y = 0
		} else {
			p.Position.Y = ny
		}
	}

	// Hazards respawn the player.
	cx := p.Position.X + w/2
	cy := p.Position.Y + h/2
	if grid.SampleFlags(atlas, cx, cy, mask.Active).Has(tilemap.FlagHazard) ||
		grid.SampleFlags(atlas, cx, p.Position.Y+h-1, mask.Active).Has(tilemap.FlagHazard) {
		p.Position.X = level.Assets.SpawnX
		p.Position.Y = level.Assets.SpawnY
		p.Velocity.X = 0
		p.Velocity.Y = 0
	}
}

// boxSolid samples the collision flag across the edge points of an
// axis-aligned box. Points are spaced no wider than a tile.
func boxSolid(grid *tilemap.Grid, atlas *tilemap.Atlas, mask uint32, x0, y0, x1, y1 float64) bool {
	step := float64(grid.TileSize)
	for y := y0; ; y += step {
		if y > y1 {
			y = y1
		}
		for x := x0; ; x += step {
			if x > x1 {
				x = x1
			}
			if grid.SampleFlags(atlas, x, y, mask).Has(tilemap.FlagCollision) {
				return true
			}
			if x == x1 {
				break
			}
		}
		if y == y1 {
			break
		}
	}
	return false
}
