package components

import (
	"github.com/yohamta/donburi"
)

// SpriteData is the one-way projection of an entity onto the screen.
// Image is the sprite filename; ScreenX/ScreenY are the top-left corner in
// screen pixels.
type SpriteData struct {
	Image   string
	ScreenX float64
	ScreenY float64
	FlipX   bool
	Alpha   float32
}

var Sprite = donburi.NewComponentType[SpriteData]()
