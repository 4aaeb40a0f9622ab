package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type CameraData struct {
	Position   math.Vec2 // top-left corner of the viewport in world space
	LookAheadX float64   // Current smoothed X offset for look-ahead
	Zoom       float64   // editor-draw zoom, 1.0 in play mode
}

var Camera = donburi.NewComponentType[CameraData]()
