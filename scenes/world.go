package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/masklight/assets"
	"github.com/automoto/masklight/components"
	"github.com/automoto/masklight/config"
	"github.com/automoto/masklight/systems"
	"github.com/automoto/masklight/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

type PlatformerScene struct {
	ecs   *ecs.ECS
	saved *systems.SavedSettings
	once  sync.Once
}

// NewPlatformerScene creates the playable scene. Saved settings may be
// nil, in which case defaults apply.
func NewPlatformerScene(saved *systems.SavedSettings) *PlatformerScene {
	return &PlatformerScene{saved: saved}
}

func (ps *PlatformerScene) Update() {
	ps.once.Do(ps.configure)
	ps.ecs.Update()
}

func (ps *PlatformerScene) Draw(screen *ebiten.Image) {
	// Always clear to prevent flashes from the OS window background.
	screen.Fill(color.Black)

	if ps.ecs == nil {
		return
	}
	ps.ecs.Draw(screen)
}

func (ps *PlatformerScene) configure() {
	loaded, err := assets.Load()
	if err != nil {
		panic("failed to load level assets: " + err.Error())
	}

	e := ecs.NewECS(donburi.NewWorld())

	e.AddSystem(systems.UpdateInput)
	e.AddSystem(systems.UpdateMask)
	e.AddSystem(systems.UpdatePlayer)
	e.AddSystem(systems.UpdateCamera)

	e.AddRenderer(ecs.LayerDefault, systems.DrawWorld)

	ps.ecs = e

	levelEntry := e.World.Entry(e.World.Create(tags.Level, components.Level))
	components.Level.SetValue(levelEntry, components.LevelData{
		Assets:     loaded,
		EditorMode: config.Debug.StartInEditor,
	})

	playerEntry := e.World.Entry(e.World.Create(tags.Player, components.Player))
	components.Player.SetValue(playerEntry, components.PlayerData{
		Position: math.Vec2{X: loaded.SpawnX, Y: loaded.SpawnY},
	})

	cameraEntry := e.World.Entry(e.World.Create(tags.Camera, components.Camera))
	components.Camera.SetValue(cameraEntry, components.CameraData{
		Position: math.Vec2{
			X: loaded.SpawnX - float64(config.C.Width)/2,
			Y: loaded.SpawnY - float64(config.C.Height)/2,
		},
		Zoom: 1,
	})

	maskEntry := e.World.Entry(e.World.Create(components.Mask))
	mask := components.Mask.Get(maskEntry)
	systems.SetWornMask(mask, 0)
	mask.Lerped = mask.Active

	if ps.saved != nil {
		systems.SetWornMask(mask, ps.saved.WornIndex)
		mask.Lerped = mask.Active
		level := components.Level.Get(levelEntry)
		level.EditorMode = ps.saved.EditorMode
	}
}
