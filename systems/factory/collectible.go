package factory

import (
	"github.com/automoto/savetheworld/archetypes"
	"github.com/automoto/savetheworld/components"
	cfg "github.com/automoto/savetheworld/config"
	"github.com/automoto/savetheworld/levels"
	"github.com/automoto/savetheworld/tags"
	"github.com/solarlune/resolv"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateCollectible(ecs *ecs.ECS, c levels.Collectible) *donburi.Entry {
	seed := archetypes.Collectible.Spawn(ecs)

	w, h := cfg.Level.SeedWidth, cfg.Level.SeedHeight
	obj := resolv.NewObject(c.Left, c.Bottom, w, h, tags.ResolvCollectible)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = seed

	objData := components.ObjectData{Object: obj}
	components.Object.SetValue(seed, objData)
	components.Collectible.SetValue(seed, components.CollectibleData{})

	x, y := objData.Rect().ToScreen(cfg.Level.FieldHeight)
	components.Sprite.SetValue(seed, components.SpriteData{
		Image:   cfg.Level.SeedSprite,
		ScreenX: x,
		ScreenY: y,
		Alpha:   1,
	})

	addToSpace(ecs, obj)

	return seed
}

// NewSeedFade returns the tween that fades a collected seed out.
func NewSeedFade() *gween.Tween {
	return gween.New(1, 0, float32(cfg.Level.SeedFadeSeconds), ease.OutQuad)
}
