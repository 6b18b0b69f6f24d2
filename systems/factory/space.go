package factory

import (
	"github.com/automoto/savetheworld/archetypes"
	"github.com/automoto/savetheworld/components"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateSpace(ecs *ecs.ECS, width, height, cellWidth, cellHeight int) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	spaceData := resolv.NewSpace(width, height, cellWidth, cellHeight)
	components.Space.Set(space, spaceData)
	return space
}

// addToSpace registers obj with the collision space if one exists.
func addToSpace(ecs *ecs.ECS, obj *resolv.Object) {
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}
}

// RemoveFromSpace unregisters obj from whichever space holds it.
func RemoveFromSpace(obj *resolv.Object) {
	if obj.Space == nil {
		return
	}
	obj.Space.Remove(obj)
}
