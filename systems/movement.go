package systems

import (
	"github.com/automoto/savetheworld/components"
	cfg "github.com/automoto/savetheworld/config"
	"github.com/automoto/savetheworld/gamemath"
	"github.com/yohamta/donburi/ecs"
)

// UpdateMovement applies horizontal input. Right is handled before left, so
// holding both leaves the player in place facing left.
func UpdateMovement(e *ecs.ECS) {
	playerEntry, ok := getPlayer(e)
	if !ok {
		return
	}
	input := getInput(e)
	obj := components.Object.Get(playerEntry)
	player := components.Player.Get(playerEntry)

	right := input.AnyHeld(cfg.Input.Bindings[cfg.ActionMoveRight])
	left := input.AnyHeld(cfg.Input.Bindings[cfg.ActionMoveLeft])

	if right {
		obj.X += cfg.Physics.MoveSpeed
		player.FacingRight = true
	}
	if left {
		obj.X -= cfg.Physics.MoveSpeed
		player.FacingRight = false
	}
	player.Walking = right || left

	obj.X = gamemath.ClampFloat(obj.X, 0, cfg.Level.FieldWidth-obj.W)
	obj.Update()
}

// UpdateJump starts a jump when the jump key is held on the ground.
func UpdateJump(e *ecs.ECS) {
	playerEntry, ok := getPlayer(e)
	if !ok {
		return
	}
	physics := components.Physics.Get(playerEntry)
	if !physics.Grounded {
		return
	}
	if getInput(e).AnyHeld(cfg.Input.Bindings[cfg.ActionJump]) {
		physics.SpeedY = cfg.Physics.JumpPower
		physics.Grounded = false
	}
}
