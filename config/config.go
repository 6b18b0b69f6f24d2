package config

import "image/color"

// PhysicsConfig contains the per-frame movement constants.
type PhysicsConfig struct {
	Gravity            float64 `yaml:"gravity"`
	MoveSpeed          float64 `yaml:"move_speed"`
	JumpPower          float64 `yaml:"jump_power"`
	CollisionTolerance float64 `yaml:"collision_tolerance"` // slop below a platform top that still counts as a landing
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Dimensions
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`

	// Spawn
	SpawnX       float64 `yaml:"spawn_x"`
	SpawnOffsetY float64 `yaml:"spawn_offset_y"` // above the ground platform's bottom

	// Sprites
	WalkSprite string `yaml:"walk_sprite"`
	IdleSprite string `yaml:"idle_sprite"`
}

// LevelConfig contains play field and level object configuration
type LevelConfig struct {
	FieldWidth  float64 `yaml:"field_width"`
	FieldHeight float64 `yaml:"field_height"`

	// Platform height is fixed by its image
	PlatformHeight float64 `yaml:"platform_height"`
	PlatformSprite string  `yaml:"platform_sprite"`

	SeedWidth  float64 `yaml:"seed_width"`
	SeedHeight float64 `yaml:"seed_height"`
	SeedSprite string  `yaml:"seed_sprite"`

	// Seconds a collected seed keeps fading before its entity is destroyed
	SeedFadeSeconds float64 `yaml:"seed_fade_seconds"`

	FirstLevel  int    `yaml:"first_level"`
	TitleFormat string `yaml:"title_format"`
}

// LevelCompleteConfig contains level complete banner configuration
type LevelCompleteConfig struct {
	OverlayColor color.RGBA
	TextColor    color.RGBA
	ButtonColor  color.RGBA
	ButtonHover  color.RGBA
	Message      string
	NextLabel    string
	RestartLabel string
}

// UIConfig contains HUD and placeholder sprite colors
type UIConfig struct {
	SkyColor      color.RGBA
	TitleColor    color.RGBA
	TitleX        int
	TitleY        int
	TitleFontSize float64

	// Placeholder colors keyed by sprite filename
	SpriteColors map[string]color.RGBA
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	TPS    int
	Title  string
}

// Global configuration instances
var C *Config
var Physics PhysicsConfig
var Player PlayerConfig
var Level LevelConfig
var LevelComplete LevelCompleteConfig
var UI UIConfig

var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Sky          = color.RGBA{R: 120, G: 190, B: 235, A: 255}
	Earth        = color.RGBA{R: 110, G: 80, B: 50, A: 255}
	SeedGreen    = color.RGBA{R: 90, G: 200, B: 90, A: 255}
	Coral        = color.RGBA{R: 240, G: 110, B: 90, A: 255}
	DarkGreen    = color.RGBA{R: 40, G: 100, B: 40, A: 255}
	LightGreen   = color.RGBA{R: 100, G: 255, B: 100, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

func init() {
	C = &Config{
		Width:  900,
		Height: 500,
		TPS:    60,
		Title:  "Save the World",
	}

	Physics = PhysicsConfig{
		Gravity:            0.8,
		MoveSpeed:          5,
		JumpPower:          16,
		CollisionTolerance: 5,
	}

	Player = PlayerConfig{
		Width:        40,
		Height:       60,
		SpawnX:       100,
		SpawnOffsetY: 20,
		WalkSprite:   "player_walk.gif",
		IdleSprite:   "player_idle.gif",
	}

	Level = LevelConfig{
		FieldWidth:      900,
		FieldHeight:     500,
		PlatformHeight:  20,
		PlatformSprite:  "platform.gif",
		SeedWidth:       24,
		SeedHeight:      24,
		SeedSprite:      "seed.gif",
		SeedFadeSeconds: 0.3,
		FirstLevel:      1,
		TitleFormat:     "Save the World - Level %d",
	}

	LevelComplete = LevelCompleteConfig{
		OverlayColor: BlackOverlay,
		TextColor:    White,
		ButtonColor:  DarkGreen,
		ButtonHover:  SeedGreen,
		Message:      "You collected all the seeds!",
		NextLabel:    "Next Level",
		RestartLabel: "Restart Game",
	}

	UI = UIConfig{
		SkyColor:      Sky,
		TitleColor:    White,
		TitleX:        12,
		TitleY:        28,
		TitleFontSize: 20,
		SpriteColors: map[string]color.RGBA{
			"player_walk.gif": Coral,
			"player_idle.gif": {R: 220, G: 90, B: 70, A: 255},
			"platform.gif":    Earth,
			"seed.gif":        SeedGreen,
		},
	}
}
