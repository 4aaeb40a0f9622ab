package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// MaskData is the externally owned active color mask plus its smoothed
// value. Game logic gates collision on Active; rendering consumes Lerped
// so gated tiles fade instead of popping.
type MaskData struct {
	Active uint32
	Lerped uint32

	// WornIndex selects the player recolor palette: 0 none, 1 red,
	// 2 green, 3 blue.
	WornIndex int

	// Per-channel tweens driving Lerped toward Active.
	Tweens [3]*gween.Tween
}

var Mask = donburi.NewComponentType[MaskData]()
