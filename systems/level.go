package systems

import (
	"fmt"

	"github.com/automoto/savetheworld/components"
	cfg "github.com/automoto/savetheworld/config"
	"github.com/automoto/savetheworld/levels"
	"github.com/automoto/savetheworld/systems/factory"
	"github.com/automoto/savetheworld/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const spaceCellSize = 20

// Setup creates the session singletons: collision space, level holder and
// session state. It is safe to call more than once.
func Setup(e *ecs.ECS) {
	if _, ok := components.Space.First(e.World); !ok {
		factory.CreateSpace(e,
			int(cfg.Level.FieldWidth), int(cfg.Level.FieldHeight),
			spaceCellSize, spaceCellSize,
		)
	}
	if _, ok := components.Level.First(e.World); !ok {
		factory.CreateLevel(e)
	}
	if _, ok := getSession(e); !ok {
		factory.CreateSession(e)
	}
}

// Register adds the frame systems in their fixed order.
func Register(e *ecs.ECS) {
	e.AddSystem(UpdateMovement)
	e.AddSystem(UpdateJump)
	e.AddSystem(UpdateGravity)
	e.AddSystem(UpdatePlatformCollisions)
	e.AddSystem(UpdateGroundClamp)
	e.AddSystem(UpdatePickups)
	e.AddSystem(UpdateCollectibleRemoval)
	e.AddSystem(UpdateLevelComplete)
	e.AddSystem(UpdateAnimation)
	e.AddSystem(UpdateRender)
}

// LoadLevel replaces the current level with level n. An unknown n is logged
// and returned with nothing changed.
func LoadLevel(e *ecs.ECS, n int) error {
	def, err := levels.Get(n)
	if err != nil {
		cfg.Log.Error("cannot load level", "level", n, "err", err)
		return err
	}

	Setup(e)
	setPhase(e, components.PhaseLoading)

	levelEntry, _ := components.Level.First(e.World)
	level := components.Level.Get(levelEntry)
	clearLevel(e, level)

	for _, p := range def.Platforms {
		level.Platforms = append(level.Platforms, factory.CreatePlatform(e, p))
	}
	for _, c := range def.Collectibles {
		level.Collectibles = append(level.Collectibles, factory.CreateCollectible(e, c))
	}
	level.CurrentLevel = def
	level.LevelIndex = n
	level.Background = def.Background

	sessionEntry, _ := getSession(e)
	components.Session.Get(sessionEntry).Title = fmt.Sprintf(cfg.Level.TitleFormat, n)
	*components.LevelComplete.Get(sessionEntry) = components.LevelCompleteData{}

	resetPlayer(e, def)
	setPhase(e, components.PhasePlaying)

	cfg.Log.Info("level loaded",
		"level", n,
		"platforms", len(level.Platforms),
		"seeds", len(level.Collectibles),
	)
	return nil
}

// AdvanceLevel loads the level after the current one, wrapping back to the
// first level after the last.
func AdvanceLevel(e *ecs.ECS) error {
	current := 0
	if level, ok := getLevel(e); ok {
		current = level.LevelIndex
	}
	next := current + 1
	if next > levels.Count() {
		next = 1
	}
	return LoadLevel(e, next)
}

// CurrentLevelIndex returns the loaded level's 1-based index, or 0.
func CurrentLevelIndex(e *ecs.ECS) int {
	level, ok := getLevel(e)
	if !ok {
		return 0
	}
	return level.LevelIndex
}

// clearLevel destroys every platform and seed, including seeds still fading.
func clearLevel(e *ecs.ECS, level *components.LevelData) {
	var doomed []*donburi.Entry
	tags.Platform.Each(e.World, func(entry *donburi.Entry) {
		doomed = append(doomed, entry)
	})
	tags.Collectible.Each(e.World, func(entry *donburi.Entry) {
		doomed = append(doomed, entry)
	})
	for _, entry := range doomed {
		factory.RemoveFromSpace(components.Object.Get(entry).Object)
		e.World.Remove(entry.Entity())
	}
	level.Platforms = nil
	level.Collectibles = nil
}

func resetPlayer(e *ecs.ECS, def *levels.Level) {
	x := cfg.Player.SpawnX
	y := def.Ground().Bottom + cfg.Player.SpawnOffsetY

	playerEntry, ok := getPlayer(e)
	if !ok {
		playerEntry = factory.CreatePlayer(e, x, y)
	}

	obj := components.Object.Get(playerEntry)
	obj.X, obj.Y = x, y
	obj.Update()

	*components.Physics.Get(playerEntry) = components.PhysicsData{}
	*components.Player.Get(playerEntry) = components.PlayerData{FacingRight: true}
	components.Sprite.Get(playerEntry).Image = cfg.Player.IdleSprite

	projectPlayer(playerEntry)
}
