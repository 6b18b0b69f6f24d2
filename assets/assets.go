package assets

import (
	"image/color"

	"github.com/automoto/savetheworld/config"
	"github.com/hajimehoshi/ebiten/v2"
)

// placeholderSize is the edge of the generated square; draws stretch it to
// the entity's box.
const placeholderSize = 8

var fallbackColor = color.RGBA{R: 255, G: 0, B: 255, A: 255}

// ImageLoader resolves sprite filenames to images. There is no image
// pipeline: every filename maps to a solid block in its configured color.
type ImageLoader struct {
	cache map[string]*ebiten.Image
}

func NewImageLoader() *ImageLoader {
	return &ImageLoader{
		cache: make(map[string]*ebiten.Image),
	}
}

func (l *ImageLoader) Image(name string) *ebiten.Image {
	if img, ok := l.cache[name]; ok {
		return img
	}

	img := ebiten.NewImage(placeholderSize, placeholderSize)
	img.Fill(ColorFor(name))
	l.cache[name] = img

	return img
}

// ColorFor returns the placeholder color for a sprite filename. Unknown
// names get a loud magenta.
func ColorFor(name string) color.RGBA {
	if c, ok := config.UI.SpriteColors[name]; ok {
		return c
	}
	return fallbackColor
}

var imageLoader = NewImageLoader()

// Image returns the cached image for a sprite filename.
func Image(name string) *ebiten.Image {
	return imageLoader.Image(name)
}
