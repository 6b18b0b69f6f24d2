package factory

import (
	"github.com/automoto/savetheworld/archetypes"
	"github.com/automoto/savetheworld/components"
	cfg "github.com/automoto/savetheworld/config"
	"github.com/automoto/savetheworld/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer spawns the player once per session. Level loads move it
// rather than recreating it.
func CreatePlayer(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	w, h := cfg.Player.Width, cfg.Player.Height
	obj := resolv.NewObject(x, y, w, h, tags.ResolvPlayer)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = player
	components.Object.SetValue(player, components.ObjectData{Object: obj})

	components.Player.SetValue(player, components.PlayerData{
		FacingRight: true,
	})
	components.Physics.SetValue(player, components.PhysicsData{})
	components.Sprite.SetValue(player, components.SpriteData{
		Image: cfg.Player.IdleSprite,
		Alpha: 1,
	})

	addToSpace(ecs, obj)

	return player
}
