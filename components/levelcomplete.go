package components

import "github.com/yohamta/donburi"

// LevelCompleteData stores the state of the level complete banner
type LevelCompleteData struct {
	IsComplete   bool
	Message      string
	ActionLabel  string // "Next Level" or "Restart Game"
	HasNextLevel bool
}

var LevelComplete = donburi.NewComponentType[LevelCompleteData]()
