package components

import (
	"github.com/automoto/savetheworld/gamemath"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData wraps the entity's collision object. X/Y are field
// coordinates: left edge and bottom offset.
type ObjectData struct {
	*resolv.Object
}

// Rect returns the object's bounds as a plain rectangle.
func (o ObjectData) Rect() gamemath.Rect {
	return gamemath.Rect{X: o.X, Y: o.Y, W: o.W, H: o.H}
}

var Object = donburi.NewComponentType[ObjectData]()
