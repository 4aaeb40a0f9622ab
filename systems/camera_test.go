package systems

import (
	"math"
	"testing"

	"github.com/automoto/masklight/assets"
	"github.com/automoto/masklight/components"
	"github.com/automoto/masklight/config"
	"github.com/automoto/masklight/tags"
	"github.com/automoto/masklight/tilemap"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

func newCameraWorld(t *testing.T, gridW, gridH int) (*ecs.ECS, *components.PlayerData, *components.CameraData) {
	t.Helper()

	e := ecs.NewECS(donburi.NewWorld())

	levelEntry := e.World.Entry(e.World.Create(tags.Level, components.Level))
	components.Level.SetValue(levelEntry, components.LevelData{
		Assets: &assets.Assets{
			Grid: tilemap.NewGrid(gridW, gridH, config.C.TileSize),
		},
	})

	playerEntry := e.World.Entry(e.World.Create(tags.Player, components.Player))
	components.Player.SetValue(playerEntry, components.PlayerData{
		Position: dmath.Vec2{X: 500, Y: 300},
	})

	cameraEntry := e.World.Entry(e.World.Create(tags.Camera, components.Camera))
	components.Camera.SetValue(cameraEntry, components.CameraData{Zoom: 1})

	return e, components.Player.Get(playerEntry), components.Camera.Get(cameraEntry)
}

func TestCameraConvergesOnPlayer(t *testing.T) {
	// 1280x720 world, plenty of slack around the player.
	e, p, cam := newCameraWorld(t, 160, 90)

	for i := 0; i < 600; i++ {
		UpdateCamera(e)
	}

	wantX := p.Position.X + float64(config.Player.FrameWidth)/2 - float64(config.C.Width)/2
	wantY := p.Position.Y + float64(config.Player.FrameHeight)/2 - float64(config.C.Height)/2
	if math.Abs(cam.Position.X-wantX) > 1 || math.Abs(cam.Position.Y-wantY) > 1 {
		t.Fatalf("camera at (%v,%v), want near (%v,%v)", cam.Position.X, cam.Position.Y, wantX, wantY)
	}
}

func TestCameraClampsToLevelBounds(t *testing.T) {
	e, p, cam := newCameraWorld(t, 160, 90)

	// Park the player in the top-left corner; the camera must not show
	// past the level edge.
	p.Position = dmath.Vec2{X: 0, Y: 0}
	for i := 0; i < 600; i++ {
		UpdateCamera(e)
	}
	if cam.Position.X != 0 || cam.Position.Y != 0 {
		t.Fatalf("camera at (%v,%v), want clamped to origin", cam.Position.X, cam.Position.Y)
	}

	// Bottom-right corner clamps against the far edge.
	p.Position = dmath.Vec2{X: 1270, Y: 710}
	for i := 0; i < 600; i++ {
		UpdateCamera(e)
	}
	maxX := float64(160*config.C.TileSize - config.C.Width)
	maxY := float64(90*config.C.TileSize - config.C.Height)
	if cam.Position.X != maxX || cam.Position.Y != maxY {
		t.Fatalf("camera at (%v,%v), want (%v,%v)", cam.Position.X, cam.Position.Y, maxX, maxY)
	}
}

func TestCameraSmallerLevelPinsToOrigin(t *testing.T) {
	// 80x64 world, smaller than the 320x180 viewport.
	e, _, cam := newCameraWorld(t, 10, 8)
	cam.Position = dmath.Vec2{X: 50, Y: 50}

	UpdateCamera(e)
	if cam.Position.X != 0 || cam.Position.Y != 0 {
		t.Fatalf("camera at (%v,%v), want origin", cam.Position.X, cam.Position.Y)
	}
}

func TestCameraLookAheadLeadsMotion(t *testing.T) {
	e, p, cam := newCameraWorld(t, 160, 90)
	p.Velocity.X = config.Camera.LookAheadSpeedThreshold * 4

	for i := 0; i < 600; i++ {
		UpdateCamera(e)
	}
	if cam.LookAheadX <= 0 {
		t.Fatalf("LookAheadX = %v, want positive for rightward motion", cam.LookAheadX)
	}

	p.Velocity.X = 0
	for i := 0; i < 2000; i++ {
		UpdateCamera(e)
	}
	if math.Abs(cam.LookAheadX) > 0.5 {
		t.Fatalf("LookAheadX = %v, want decayed toward zero", cam.LookAheadX)
	}
}
