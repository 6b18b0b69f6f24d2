package components

import (
	"github.com/automoto/savetheworld/levels"
	"github.com/yohamta/donburi"
)

// LevelData owns the entities instantiated for the loaded level. The slices
// keep definition order, which is also collision resolution order.
type LevelData struct {
	CurrentLevel *levels.Level
	LevelIndex   int
	Platforms    []*donburi.Entry
	Collectibles []*donburi.Entry
	Background   string
}

var Level = donburi.NewComponentType[LevelData]()
