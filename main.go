package main

import (
	"image"
	"log"

	"github.com/automoto/masklight/config"
	"github.com/automoto/masklight/fonts"
	"github.com/automoto/masklight/scenes"
	"github.com/automoto/masklight/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

func NewGame(saved *systems.SavedSettings) *Game {
	fonts.LoadDefaults()

	return &Game{
		bounds: image.Rectangle{},
		scene:  scenes.NewPlatformerScene(saved),
	}
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	ebiten.SetWindowSize(config.C.Width*config.C.WindowScale, config.C.Height*config.C.WindowScale)
	ebiten.SetWindowTitle("masklight")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	saved, _ := systems.LoadSettings()

	if err := ebiten.RunGame(NewGame(saved)); err != nil {
		log.Fatal(err)
	}
}
