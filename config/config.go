// Package config holds the game's tuning values: the fixed logical
// render resolution, tile and light table sizes, and camera/player/mask
// behavior.
package config

// Config holds general game configuration. Width and Height are the fixed
// logical resolution every frame is composited at; the presentation layer
// scales the finished framebuffer to the window.
type Config struct {
	Width  int
	Height int

	WindowScale int // initial window size multiplier
	TileSize    int
	AuraSize    int // side length of the radial brightness tables
}

// PlayerConfig contains demo player movement configuration
type PlayerConfig struct {
	Acceleration float64
	MaxSpeed     float64
	JumpSpeed    float64
	Gravity      float64
	MaxFallSpeed float64
	Friction     float64

	// Dimensions
	FrameWidth  int
	FrameHeight int
}

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	FollowSmoothing         float64 // How fast camera follows player (0.0-1.0)
	LookAheadDistanceX      float64 // Max horizontal look-ahead offset in pixels
	LookAheadSmoothing      float64 // How fast look-ahead offset changes (0.0-1.0)
	LookAheadSpeedThreshold float64 // Minimum speed to update look-ahead
}

// MaskConfig contains active-color-mask behavior configuration
type MaskConfig struct {
	FadeSeconds float32 // How long gated tiles take to fade in/out
}

// DebugConfig contains debug/testing options
type DebugConfig struct {
	StartInEditor bool // Boot with lighting and gating bypassed
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Camera CameraConfig
var Mask MaskConfig
var Debug DebugConfig

func init() {
	C = &Config{
		Width:       320,
		Height:      180,
		WindowScale: 4,
		TileSize:    8,
		AuraSize:    256,
	}

	Player = PlayerConfig{
		Acceleration: 0.5,
		MaxSpeed:     2.5,
		JumpSpeed:    4.5,
		Gravity:      0.25,
		MaxFallSpeed: 5.0,
		Friction:     0.8,

		FrameWidth:  8,
		FrameHeight: 14,
	}

	Camera = CameraConfig{
		FollowSmoothing:         0.08,
		LookAheadDistanceX:      24.0,
		LookAheadSmoothing:      0.05,
		LookAheadSpeedThreshold: 0.3,
	}

	Mask = MaskConfig{
		FadeSeconds: 0.35,
	}

	Debug = DebugConfig{
		StartInEditor: false,
	}
}
