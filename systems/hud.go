package systems

import (
	cfg "github.com/automoto/savetheworld/config"
	"github.com/automoto/savetheworld/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

// DrawHUD renders the title label in the top-left corner.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	title := Title(ecs)
	if title == "" {
		return
	}
	text.Draw(screen, title, fonts.Title.Get(), cfg.UI.TitleX, cfg.UI.TitleY, cfg.UI.TitleColor)
}

// DrawLevelComplete dims the field and prints the banner message. The
// action button itself is an ebitenui widget owned by the scene.
func DrawLevelComplete(ecs *ecs.ECS, screen *ebiten.Image) {
	lc := GetLevelComplete(ecs)
	if lc == nil || !lc.IsComplete {
		return
	}

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	vector.DrawFilledRect(
		screen,
		0, 0,
		float32(width), float32(height),
		cfg.LevelComplete.OverlayColor,
		false,
	)

	msgFont := fonts.Banner.Get()
	msgX := centerTextX(lc.Message, msgFont, width)
	text.Draw(screen, lc.Message, msgFont, msgX, int(height/2)-30, cfg.LevelComplete.TextColor)
}

// centerTextX calculates the X position to center text on screen
func centerTextX(s string, face font.Face, screenWidth float64) int {
	bounds := text.BoundString(face, s)
	textWidth := bounds.Dx()
	return int((screenWidth - float64(textWidth)) / 2)
}
