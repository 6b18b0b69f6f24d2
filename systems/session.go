package systems

import (
	"github.com/automoto/savetheworld/components"
	"github.com/automoto/savetheworld/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func getSession(e *ecs.ECS) (*donburi.Entry, bool) {
	return components.Session.First(e.World)
}

// getInput returns the session key-state map.
func getInput(e *ecs.ECS) *components.InputData {
	entry, ok := getSession(e)
	if !ok {
		return &components.InputData{}
	}
	return components.Input.Get(entry)
}

func getLevel(e *ecs.ECS) (*components.LevelData, bool) {
	entry, ok := components.Level.First(e.World)
	if !ok {
		return nil, false
	}
	return components.Level.Get(entry), true
}

func getPlayer(e *ecs.ECS) (*donburi.Entry, bool) {
	return tags.Player.First(e.World)
}

// Phase returns the current level phase, or PhaseLoading before a session
// exists.
func Phase(e *ecs.ECS) components.Phase {
	entry, ok := getSession(e)
	if !ok {
		return components.PhaseLoading
	}
	return components.Session.Get(entry).Phase
}

func setPhase(e *ecs.ECS, p components.Phase) {
	if entry, ok := getSession(e); ok {
		components.Session.Get(entry).Phase = p
	}
}

// Title returns the text shown in the title label.
func Title(e *ecs.ECS) string {
	entry, ok := getSession(e)
	if !ok {
		return ""
	}
	return components.Session.Get(entry).Title
}

// GetLevelComplete returns the banner state, or nil before a session exists.
func GetLevelComplete(e *ecs.ECS) *components.LevelCompleteData {
	entry, ok := getSession(e)
	if !ok {
		return nil
	}
	return components.LevelComplete.Get(entry)
}

// IsLevelComplete checks if the banner is shown
func IsLevelComplete(e *ecs.ECS) bool {
	lc := GetLevelComplete(e)
	return lc != nil && lc.IsComplete
}

// PressKey and ReleaseKey feed key events into the session key-state map.
func PressKey(e *ecs.ECS, key string) {
	if entry, ok := getSession(e); ok {
		components.Input.Get(entry).Press(key)
	}
}

func ReleaseKey(e *ecs.ECS, key string) {
	if entry, ok := getSession(e); ok {
		components.Input.Get(entry).Release(key)
	}
}
