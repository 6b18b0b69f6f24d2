package systems

import (
	"github.com/automoto/savetheworld/assets"
	"github.com/automoto/savetheworld/components"
	cfg "github.com/automoto/savetheworld/config"
	"github.com/automoto/savetheworld/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	drawOp = &ebiten.DrawImageOptions{}
)

// UpdateRender projects the player's field position onto its sprite.
func UpdateRender(e *ecs.ECS) {
	playerEntry, ok := getPlayer(e)
	if !ok {
		return
	}
	projectPlayer(playerEntry)
}

func projectPlayer(playerEntry *donburi.Entry) {
	obj := components.Object.Get(playerEntry)
	player := components.Player.Get(playerEntry)
	sprite := components.Sprite.Get(playerEntry)

	sprite.ScreenX, sprite.ScreenY = obj.Rect().ToScreen(cfg.Level.FieldHeight)
	sprite.FlipX = !player.FacingRight
}

// DrawLevel fills the field with the level background.
func DrawLevel(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.UI.SkyColor)

	level, ok := getLevel(ecs)
	if !ok || level.Background == "" {
		return
	}
	bg := assets.Image(level.Background)
	drawOp.GeoM.Reset()
	drawOp.ColorScale.Reset()
	w, h := bg.Bounds().Dx(), bg.Bounds().Dy()
	drawOp.GeoM.Scale(cfg.Level.FieldWidth/float64(w), cfg.Level.FieldHeight/float64(h))
	screen.DrawImage(bg, drawOp)
}

// DrawPlatforms renders every platform sprite.
func DrawPlatforms(ecs *ecs.ECS, screen *ebiten.Image) {
	tags.Platform.Each(ecs.World, func(e *donburi.Entry) {
		drawSprite(screen, e)
	})
}

// DrawSeeds renders seeds, including those still fading out.
func DrawSeeds(ecs *ecs.ECS, screen *ebiten.Image) {
	tags.Collectible.Each(ecs.World, func(e *donburi.Entry) {
		drawSprite(screen, e)
	})
}

func DrawPlayer(ecs *ecs.ECS, screen *ebiten.Image) {
	playerEntry, ok := getPlayer(ecs)
	if !ok {
		return
	}
	drawSprite(screen, playerEntry)
}

// drawSprite stretches the sprite image over the entity's collision box.
func drawSprite(screen *ebiten.Image, e *donburi.Entry) {
	sprite := components.Sprite.Get(e)
	obj := components.Object.Get(e)
	img := assets.Image(sprite.Image)
	w, h := img.Bounds().Dx(), img.Bounds().Dy()

	drawOp.GeoM.Reset()
	drawOp.ColorScale.Reset()
	drawOp.GeoM.Scale(obj.W/float64(w), obj.H/float64(h))
	if sprite.FlipX {
		drawOp.GeoM.Scale(-1, 1)
		drawOp.GeoM.Translate(obj.W, 0)
	}
	drawOp.GeoM.Translate(sprite.ScreenX, sprite.ScreenY)
	drawOp.ColorScale.ScaleAlpha(sprite.Alpha)
	screen.DrawImage(img, drawOp)
}
