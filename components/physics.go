package components

import (
	"github.com/yohamta/donburi"
)

// PhysicsData is the player's vertical motion state. SpeedY is positive
// when rising.
type PhysicsData struct {
	SpeedY   float64
	Grounded bool
}

var Physics = donburi.NewComponentType[PhysicsData]()
