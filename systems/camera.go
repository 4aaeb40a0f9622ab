package systems

import (
	"math"

	"github.com/automoto/masklight/components"
	"github.com/automoto/masklight/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCamera eases the camera toward the player with a velocity
// driven horizontal look-ahead, then clamps to the level bounds.
func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	playerEntry, ok := components.Player.First(e.World)
	if !ok {
		return
	}
	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return
	}

	camera := components.Camera.Get(cameraEntry)
	player := components.Player.Get(playerEntry)
	level := components.Level.Get(levelEntry)
	cfg := config.Camera

	if math.Abs(player.Velocity.X) > cfg.LookAheadSpeedThreshold {
		target := cfg.LookAheadDistanceX
		if player.Velocity.X < 0 {
			target = -target
		}
		camera.LookAheadX += (target - camera.LookAheadX) * cfg.LookAheadSmoothing
	} else {
		camera.LookAheadX += (0 - camera.LookAheadX) * cfg.LookAheadSmoothing
	}

	screenW := float64(config.C.Width)
	screenH := float64(config.C.Height)
	centerX := player.Position.X + float64(config.Player.FrameWidth)/2
	centerY := player.Position.Y + float64(config.Player.FrameHeight)/2

	targetX := centerX + camera.LookAheadX - screenW/2
	targetY := centerY - screenH/2

	camera.Position.X += (targetX - camera.Position.X) * cfg.FollowSmoothing
	camera.Position.Y += (targetY - camera.Position.Y) * cfg.FollowSmoothing

	grid := level.Assets.Grid
	maxX := float64(grid.Width*grid.TileSize) - screenW
	maxY := float64(grid.Height*grid.TileSize) - screenH
	camera.Position.X = clampCamera(camera.Position.X, 0, maxX)
	camera.Position.Y = clampCamera(camera.Position.Y, 0, maxY)
}

func clampCamera(v, lo, hi float64) float64 {
	if hi < lo {
		// Level smaller than the viewport, pin to the origin.
		return lo
	}
	return math.Max(lo, math.Min(hi, v))
}
