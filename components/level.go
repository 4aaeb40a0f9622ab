package components

import (
	"github.com/automoto/masklight/assets"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	Assets *assets.Assets

	// EditorMode bypasses lighting and gating for authoring visibility.
	EditorMode bool
}

var Level = donburi.NewComponentType[LevelData]()
