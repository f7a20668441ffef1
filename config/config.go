package config

import (
	"image/color"
	"math"
)

// Config holds general window configuration
type Config struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	Scale  int `yaml:"scale"`
	TPS    int `yaml:"tps"`
}

// PhysicsConfig contains physics-related configuration values
type PhysicsConfig struct {
	// Defaults for actors that opt in to gravity
	Gravity          float64 `yaml:"gravity"`
	GravityDirection float64 `yaml:"gravityDirection"` // radians, pi/2 is screen down
	MaxFallSpeed     float64 `yaml:"maxFallSpeed"`

	// Horizontal control in the playground
	WalkSpeed float64 `yaml:"walkSpeed"`
	Friction  float64 `yaml:"friction"`
	JumpSpeed float64 `yaml:"jumpSpeed"`

	// Broad phase
	CellSize int `yaml:"cellSize"` // resolv space cell size in pixels
}

// AnimationConfig contains animation-related configuration values
type AnimationConfig struct {
	FramePeriod float64 `yaml:"framePeriod"` // seconds between frame advances
}

// ActorConfig contains defaults applied to actors built without a spec
type ActorConfig struct {
	SpriteSheet string  `yaml:"spriteSheet"`
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
}

// AssetsConfig points at the data files the playground loads
type AssetsConfig struct {
	TextureMap string `yaml:"textureMap"`
	Level      string `yaml:"level"`
	ActorDir   string `yaml:"actorDir"`
}

// DebugConfig contains debug overlay options
type DebugConfig struct {
	Overlay      bool       `yaml:"overlay"`
	HotReload    bool       `yaml:"hotReload"`
	BoxColor     color.RGBA `yaml:"-"`
	SolidColor   color.RGBA `yaml:"-"`
	SlopeColor   color.RGBA `yaml:"-"`
	OneWayColor  color.RGBA `yaml:"-"`
	GroundedTint color.RGBA `yaml:"-"`
}

// Global configuration instances
var C *Config
var Physics PhysicsConfig
var Animation AnimationConfig
var Actor ActorConfig
var Assets AssetsConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White  = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Red    = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green  = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	Blue   = color.RGBA{R: 0, G: 100, B: 255, A: 255}
	Orange = color.RGBA{R: 255, G: 140, B: 0, A: 255}

	SolidFill  = color.RGBA{R: 70, G: 70, B: 90, A: 255}
	Background = color.RGBA{R: 20, G: 20, B: 28, A: 255}
)

func init() {
	Reset()
}

// Reset restores every global to its built-in default.
func Reset() {
	C = &Config{
		Width:  640,
		Height: 360,
		Scale:  2,
		TPS:    60,
	}

	Physics = PhysicsConfig{
		Gravity:          0.75,
		GravityDirection: math.Pi / 2,
		MaxFallSpeed:     10.0,

		WalkSpeed: 3.0,
		Friction:  0.5,
		JumpSpeed: 12.0,

		CellSize: 16,
	}

	Animation = AnimationConfig{
		FramePeriod: 0.1,
	}

	Actor = ActorConfig{
		SpriteSheet: "DebugTexture",
		Width:       16,
		Height:      16,
	}

	Assets = AssetsConfig{
		TextureMap: "assets/data/textures.yaml",
		Level:      "assets/levels/playground.tmx",
		ActorDir:   "assets/data/actors",
	}

	Debug = DebugConfig{
		Overlay:      false,
		HotReload:    true,
		BoxColor:     Green,
		SolidColor:   Blue,
		SlopeColor:   Orange,
		OneWayColor:  Yellow,
		GroundedTint: Red,
	}
}
