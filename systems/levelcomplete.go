package systems

import (
	"github.com/automoto/savetheworld/components"
	cfg "github.com/automoto/savetheworld/config"
	"github.com/automoto/savetheworld/levels"
	"github.com/yohamta/donburi/ecs"
)

// UpdateLevelComplete shows the banner once every seed of the level has
// been collected. It does nothing while the banner is already shown.
func UpdateLevelComplete(e *ecs.ECS) {
	if Phase(e) != components.PhasePlaying {
		return
	}
	lc := GetLevelComplete(e)
	if lc == nil || lc.IsComplete {
		return
	}
	if RemainingSeeds(e) > 0 {
		return
	}

	level, ok := getLevel(e)
	if !ok {
		return
	}

	lc.IsComplete = true
	lc.Message = cfg.LevelComplete.Message
	lc.HasNextLevel = level.LevelIndex < levels.Count()
	if lc.HasNextLevel {
		lc.ActionLabel = cfg.LevelComplete.NextLabel
	} else {
		lc.ActionLabel = cfg.LevelComplete.RestartLabel
	}
	setPhase(e, components.PhaseComplete)

	cfg.Log.Info("level complete", "level", level.LevelIndex, "action", lc.ActionLabel)
}
