package systems

import (
	"github.com/automoto/masklight/bitmap"
	"github.com/automoto/masklight/components"
	"github.com/automoto/masklight/config"
	"github.com/automoto/masklight/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

var (
	framePix  []uint32
	frameRGBA []byte
	frameImg  *ebiten.Image
	hudFont   *bitmap.Font
)

var maskNames = [4]string{"none", "red", "green", "blue"}

// DrawWorld composites the whole scene into a software framebuffer and
// hands the result to the GPU as a single texture upload per frame. The
// bitmap view over the framebuffer is borrowed and lives exactly one
// frame.
func DrawWorld(e *ecs.ECS, screen *ebiten.Image) {
	w, h := config.C.Width, config.C.Height
	if framePix == nil {
		framePix = make([]uint32, w*h)
		frameRGBA = make([]byte, w*h*4)
		frameImg = ebiten.NewImage(w, h)
		hudFont = bitmap.BuildFont(fonts.HUD.Get())
	}
	frame := bitmap.Wrap(framePix, w, h, w)

	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	playerEntry, ok := components.Player.First(e.World)
	if !ok {
		return
	}
	maskEntry, ok := components.Mask.First(e.World)
	if !ok {
		return
	}
	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	player := components.Player.Get(playerEntry)
	mask := components.Mask.Get(maskEntry)
	level := components.Level.Get(levelEntry)

	grid := level.Assets.Grid
	atlas := level.Assets.Atlas
	camX, camY := camera.Position.X, camera.Position.Y

	lightX, lightY := lightOrigin(player, camX, camY)

	frame.Clear(bitmap.Black)

	if level.EditorMode && camera.Zoom != 1 {
		grid.EditorDraw(atlas, frame, camX, camY, camera.Zoom)
	} else {
		drawBackdrop(frame, level, mask.Lerped, camX, lightX, lightY)
		grid.Draw(atlas, frame, camX, camY, mask.Active, mask.Lerped, lightX, lightY, level.EditorMode)
		drawPlayer(frame, level, player, mask, camX, camY)
	}

	drawHUD(frame, mask, level)
	present(frame, screen)
}

// lightOrigin places the aura tables so their bright center rides the
// player's center in screen space. The translation names the table
// origin, not its center, so it backs off half a table on both axes.
func lightOrigin(player *components.PlayerData, camX, camY float64) (int, int) {
	half := config.C.AuraSize / 2
	x := int(player.Position.X+float64(config.Player.FrameWidth)/2-camX) - half
	y := int(player.Position.Y+float64(config.Player.FrameHeight)/2-camY) - half
	return x, y
}

// drawBackdrop tiles the parallax background across the viewport,
// scaled up 2x so one strip covers the full frame height.
func drawBackdrop(frame *bitmap.Bitmap, level *components.LevelData, lerpedMask uint32, camX float64, lightX, lightY int) {
	bg := level.Assets.Background
	aura := level.Assets.Atlas.Aura
	const scale = 2.0
	stripW := bg.Width * int(scale)

	// Half-speed scroll, wrapped to the strip width.
	off := int(camX/2) % stripW
	if off < 0 {
		off += stripW
	}
	for x := -off; x < frame.Width; x += stripW {
		bg.DrawBackground(frame, x, 0, scale, scale, lerpedMask, aura, lightX, lightY)
	}
}

func drawPlayer(frame *bitmap.Bitmap, level *components.LevelData, player *components.PlayerData, mask *components.MaskData, camX, camY float64) {
	px := int(player.Position.X - camX)
	py := int(player.Position.Y - camY)
	scaleX := 1.0
	if player.FacingLeft {
		scaleX = -1.0
	}
	level.Assets.Player.DrawOnScaledRecolor(frame, px, py, scaleX, 1, mask.WornIndex)
}

func drawHUD(frame *bitmap.Bitmap, mask *components.MaskData, level *components.LevelData) {
	hudFont.DrawString(frame, "mask "+maskNames[mask.WornIndex&3], 2, 2, bitmap.White)
	if level.EditorMode {
		hudFont.DrawString(frame, "editor", 2, 2+hudFont.GlyphHeight+2, bitmap.Yellow)
	}
}

// present repacks the ARGB framebuffer into RGBA bytes and uploads it.
func present(frame *bitmap.Bitmap, screen *ebiten.Image) {
	for i, c := range frame.Pix() {
		frameRGBA[i*4+0] = byte(c >> 16)
		frameRGBA[i*4+1] = byte(c >> 8)
		frameRGBA[i*4+2] = byte(c)
		frameRGBA[i*4+3] = byte(c >> 24)
	}
	frameImg.WritePixels(frameRGBA)
	screen.DrawImage(frameImg, nil)
}
