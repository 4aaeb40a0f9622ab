package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type PlayerData struct {
	Position math.Vec2 // top-left corner of the sprite in world space
	Velocity math.Vec2

	FacingLeft bool
	OnGround   bool

	// MoveX is the horizontal input intent for this tick, -1..1.
	MoveX    float64
	JumpHeld bool
}

var Player = donburi.NewComponentType[PlayerData]()
