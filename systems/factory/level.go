package factory

import (
	"github.com/automoto/savetheworld/archetypes"
	"github.com/automoto/savetheworld/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevel creates the empty level holder. Contents are filled by
// systems.LoadLevel.
func CreateLevel(ecs *ecs.ECS) *donburi.Entry {
	level := archetypes.Level.Spawn(ecs)
	components.Level.SetValue(level, components.LevelData{})
	return level
}

// CreateSession creates the singleton holding phase, key states, pause and
// the level complete banner.
func CreateSession(ecs *ecs.ECS) *donburi.Entry {
	session := archetypes.Session.Spawn(ecs)
	components.Session.SetValue(session, components.SessionData{
		Phase: components.PhaseLoading,
	})
	components.Input.SetValue(session, components.InputData{
		Keys: make(map[string]bool),
	})
	components.LevelComplete.SetValue(session, components.LevelCompleteData{})
	components.Pause.SetValue(session, components.PauseData{})
	return session
}
