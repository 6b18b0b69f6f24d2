package systems

import (
	"github.com/automoto/savetheworld/components"
	cfg "github.com/automoto/savetheworld/config"
	"github.com/automoto/savetheworld/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

const pausedText = "Paused"

// TogglePause flips the pause flag and returns the new state.
func TogglePause(ecs *ecs.ECS) bool {
	entry, ok := getSession(ecs)
	if !ok {
		return false
	}
	pause := components.Pause.Get(entry)
	pause.IsPaused = !pause.IsPaused
	cfg.Log.Debug("pause toggled", "paused", pause.IsPaused)
	return pause.IsPaused
}

func IsPaused(ecs *ecs.ECS) bool {
	entry, ok := getSession(ecs)
	if !ok {
		return false
	}
	return components.Pause.Get(entry).IsPaused
}

// DrawPause renders the pause overlay
func DrawPause(ecs *ecs.ECS, screen *ebiten.Image) {
	if !IsPaused(ecs) {
		return
	}

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	vector.DrawFilledRect(screen, 0, 0, float32(width), float32(height), cfg.LevelComplete.OverlayColor, false)

	face := fonts.Banner.Get()
	text.Draw(screen, pausedText, face, centerTextX(pausedText, face, width), int(height/2), cfg.LevelComplete.TextColor)
}
