package components

import (
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	FacingRight bool
	Walking     bool // a horizontal movement key was held this frame
}

var Player = donburi.NewComponentType[PlayerData]()
