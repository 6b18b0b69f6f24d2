package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// CollectibleData marks a seed. Once Collected is set the seed no longer
// counts toward the level; Fade runs until the entity is destroyed.
type CollectibleData struct {
	Collected bool
	Fade      *gween.Tween
}

var Collectible = donburi.NewComponentType[CollectibleData]()
