package systems

import (
	"log"

	"github.com/automoto/masklight/components"
	"github.com/automoto/masklight/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"
)

// UpdateInput translates raw key state into per-tick intents: player
// movement, worn-mask switching, editor toggling. It is the only system
// that touches the input device.
func UpdateInput(e *ecs.ECS) {
	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	player := components.Player.Get(playerEntry)

	player.MoveX = 0
	if ebiten.IsKeyPressed(ebiten.KeyLeft) || ebiten.IsKeyPressed(ebiten.KeyA) {
		player.MoveX -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyRight) || ebiten.IsKeyPressed(ebiten.KeyD) {
		player.MoveX += 1
	}
	player.JumpHeld = ebiten.IsKeyPressed(ebiten.KeySpace) ||
		ebiten.IsKeyPressed(ebiten.KeyUp) || ebiten.IsKeyPressed(ebiten.KeyW)

	maskEntry, ok := components.Mask.First(e.World)
	if ok {
		mask := components.Mask.Get(maskEntry)
		switch {
		case inpututil.IsKeyJustPressed(ebiten.Key0):
			SetWornMask(mask, 0)
		case inpututil.IsKeyJustPressed(ebiten.Key1):
			SetWornMask(mask, 1)
		case inpututil.IsKeyJustPressed(ebiten.Key2):
			SetWornMask(mask, 2)
		case inpututil.IsKeyJustPressed(ebiten.Key3):
			SetWornMask(mask, 3)
		}
	}

	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry)

	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		level.EditorMode = !level.EditorMode
	}

	if cameraEntry, ok := components.Camera.First(e.World); ok && level.EditorMode {
		camera := components.Camera.Get(cameraEntry)
		if inpututil.IsKeyJustPressed(ebiten.KeyEqual) {
			camera.Zoom *= 2
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyMinus) && camera.Zoom > 0.25 {
			camera.Zoom /= 2
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF5) {
		maskEntry, ok := components.Mask.First(e.World)
		if !ok {
			return
		}
		mask := components.Mask.Get(maskEntry)
		if err := SaveSettings(&SavedSettings{
			WornIndex:  mask.WornIndex,
			EditorMode: level.EditorMode,
		}); err != nil {
			log.Printf("Warning: Could not save settings: %v", err)
		}
	}
}
