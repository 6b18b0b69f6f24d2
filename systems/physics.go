package systems

import (
	"github.com/automoto/savetheworld/components"
	cfg "github.com/automoto/savetheworld/config"
	"github.com/automoto/savetheworld/gamemath"
	"github.com/yohamta/donburi/ecs"
)

// UpdateGravity integrates vertical motion for an airborne player. Grounded
// is cleared every frame and must be re-established by a collision pass.
func UpdateGravity(e *ecs.ECS) {
	playerEntry, ok := getPlayer(e)
	if !ok {
		return
	}
	physics := components.Physics.Get(playerEntry)
	obj := components.Object.Get(playerEntry)

	if !physics.Grounded {
		obj.Y, physics.SpeedY = gamemath.Integrate(obj.Y, physics.SpeedY, cfg.Physics.Gravity)
		obj.Update()
	}
	physics.Grounded = false
}

// UpdatePlatformCollisions lands the player on platforms in definition
// order. A later match overrides an earlier one.
func UpdatePlatformCollisions(e *ecs.ECS) {
	playerEntry, ok := getPlayer(e)
	if !ok {
		return
	}
	level, ok := getLevel(e)
	if !ok {
		return
	}
	physics := components.Physics.Get(playerEntry)
	obj := components.Object.Get(playerEntry)

	for _, platformEntry := range level.Platforms {
		if !platformEntry.Valid() {
			continue
		}
		surface := components.Object.Get(platformEntry).Rect()
		body := obj.Rect()
		if !gamemath.Lands(body, physics.SpeedY, surface, cfg.Physics.CollisionTolerance) {
			continue
		}
		obj.Y = surface.Top()
		physics.SpeedY = 0
		physics.Grounded = true
	}
	obj.Update()
}

// UpdateGroundClamp keeps the player from falling through the floor.
func UpdateGroundClamp(e *ecs.ECS) {
	playerEntry, ok := getPlayer(e)
	if !ok {
		return
	}
	physics := components.Physics.Get(playerEntry)
	obj := components.Object.Get(playerEntry)

	floor := cfg.Level.PlatformHeight
	if obj.Y < floor {
		obj.Y = floor
		physics.SpeedY = 0
		physics.Grounded = true
		obj.Update()
	}
}
