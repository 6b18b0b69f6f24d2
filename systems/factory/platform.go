package factory

import (
	"github.com/automoto/savetheworld/archetypes"
	"github.com/automoto/savetheworld/components"
	cfg "github.com/automoto/savetheworld/config"
	"github.com/automoto/savetheworld/levels"
	"github.com/automoto/savetheworld/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreatePlatform(ecs *ecs.ECS, p levels.Platform) *donburi.Entry {
	platform := archetypes.Platform.Spawn(ecs)

	h := cfg.Level.PlatformHeight
	obj := resolv.NewObject(p.Left, p.Bottom, p.Width, h, tags.ResolvPlatform)
	obj.SetShape(resolv.NewRectangle(0, 0, p.Width, h))
	obj.Data = platform

	objData := components.ObjectData{Object: obj}
	components.Object.SetValue(platform, objData)

	// Platforms never move, so their projection is computed once
	x, y := objData.Rect().ToScreen(cfg.Level.FieldHeight)
	components.Sprite.SetValue(platform, components.SpriteData{
		Image:   cfg.Level.PlatformSprite,
		ScreenX: x,
		ScreenY: y,
		Alpha:   1,
	})

	addToSpace(ecs, obj)

	return platform
}
