package systems

import (
	"github.com/automoto/masklight/bitmap"
	"github.com/automoto/masklight/components"
	"github.com/automoto/masklight/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

// wornMasks maps the worn-mask index to the active color mask value.
var wornMasks = [4]uint32{bitmap.Black, bitmap.Red, bitmap.Green, bitmap.Blue}

// SetWornMask switches the active mask immediately (game logic gates on
// it right away) and restarts the per-channel tweens that carry the
// rendered mask toward it.
func SetWornMask(mask *components.MaskData, index int) {
	mask.WornIndex = index & 3
	mask.Active = wornMasks[mask.WornIndex]

	for c := 0; c < 3; c++ {
		shift := uint(16 - 8*c)
		from := float32((mask.Lerped >> shift) & 0xff)
		to := float32((mask.Active >> shift) & 0xff)
		mask.Tweens[c] = gween.New(from, to, config.Mask.FadeSeconds, ease.Linear)
	}
}

// UpdateMask advances the mask fade. Ticks run at 60 Hz.
func UpdateMask(e *ecs.ECS) {
	maskEntry, ok := components.Mask.First(e.World)
	if !ok {
		return
	}
	mask := components.Mask.Get(maskEntry)

	lerped := uint32(0xff000000)
	for c := 0; c < 3; c++ {
		shift := uint(16 - 8*c)
		v := (mask.Active >> shift) & 0xff
		if tw := mask.Tweens[c]; tw != nil {
			f, done := tw.Update(1.0 / 60.0)
			v = uint32(f) & 0xff
			if done {
				mask.Tweens[c] = nil
				v = (mask.Active >> shift) & 0xff
			}
		}
		lerped |= v << shift
	}
	mask.Lerped = lerped
}
