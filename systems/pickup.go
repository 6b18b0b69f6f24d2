package systems

import (
	"github.com/automoto/savetheworld/components"
	cfg "github.com/automoto/savetheworld/config"
	"github.com/automoto/savetheworld/systems/factory"
	"github.com/automoto/savetheworld/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePickups collects every uncollected seed the player strictly
// overlaps. The space query only narrows the candidates; edge contact does
// not count.
func UpdatePickups(e *ecs.ECS) {
	playerEntry, ok := getPlayer(e)
	if !ok {
		return
	}
	playerObj := components.Object.Get(playerEntry)

	check := playerObj.Check(0, 0, tags.ResolvCollectible)
	if check == nil {
		return
	}

	body := playerObj.Rect()
	for _, seedObj := range check.ObjectsByTags(tags.ResolvCollectible) {
		seedEntry, ok := seedObj.Data.(*donburi.Entry)
		if !ok || seedEntry == nil || !seedEntry.Valid() {
			continue
		}
		seed := components.Collectible.Get(seedEntry)
		if seed.Collected {
			continue
		}
		if !body.Overlaps(components.Object.Get(seedEntry).Rect()) {
			continue
		}
		seed.Collected = true
		seed.Fade = factory.NewSeedFade()
		cfg.Log.Debug("seed collected", "x", seedObj.X, "y", seedObj.Y)
	}
}

// UpdateCollectibleRemoval advances the fade of collected seeds and destroys
// them once it finishes.
func UpdateCollectibleRemoval(e *ecs.ECS) {
	dt := float32(1) / float32(cfg.C.TPS)

	var finished []*donburi.Entry
	tags.Collectible.Each(e.World, func(entry *donburi.Entry) {
		seed := components.Collectible.Get(entry)
		if !seed.Collected || seed.Fade == nil {
			return
		}
		alpha, done := seed.Fade.Update(dt)
		components.Sprite.Get(entry).Alpha = alpha
		if done {
			finished = append(finished, entry)
		}
	})

	for _, entry := range finished {
		destroyCollectible(e, entry)
	}
}

// RemainingSeeds counts seeds that have not been collected.
func RemainingSeeds(e *ecs.ECS) int {
	n := 0
	tags.Collectible.Each(e.World, func(entry *donburi.Entry) {
		if !components.Collectible.Get(entry).Collected {
			n++
		}
	})
	return n
}

func destroyCollectible(e *ecs.ECS, entry *donburi.Entry) {
	factory.RemoveFromSpace(components.Object.Get(entry).Object)
	if level, ok := getLevel(e); ok {
		for i, c := range level.Collectibles {
			if c == entry {
				level.Collectibles = append(level.Collectibles[:i], level.Collectibles[i+1:]...)
				break
			}
		}
	}
	e.World.Remove(entry.Entity())
}
