package systems

import (
	"github.com/automoto/savetheworld/components"
	cfg "github.com/automoto/savetheworld/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdateAnimation picks the walking sprite while a horizontal key is held.
func UpdateAnimation(e *ecs.ECS) {
	playerEntry, ok := getPlayer(e)
	if !ok {
		return
	}
	player := components.Player.Get(playerEntry)
	sprite := components.Sprite.Get(playerEntry)

	if player.Walking {
		sprite.Image = cfg.Player.WalkSprite
	} else {
		sprite.Image = cfg.Player.IdleSprite
	}
}
