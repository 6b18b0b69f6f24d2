// Package levels is the static level store. Level definitions are authored
// as Tiled maps, embedded in the binary and parsed once at startup; they are
// immutable afterwards and addressed by 1-based index.
package levels

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"

	"github.com/lafriks/go-tiled"
)

//go:embed data/*.tmx
var levelFS embed.FS

// ErrNotFound is returned when a level index has no definition.
var ErrNotFound = errors.New("level not found")

// Platform is a static surface in field coordinates. Its height comes from
// the platform image, not from the level definition.
type Platform struct {
	Left, Bottom, Width float64
}

// Collectible is a seed spawn point in field coordinates.
type Collectible struct {
	Left, Bottom float64
}

// Level is one hand-authored stage. Platforms[0] is the ground.
type Level struct {
	Index        int
	Platforms    []Platform
	Collectibles []Collectible
	Background   string
}

// Ground returns the base platform.
func (l *Level) Ground() Platform {
	if len(l.Platforms) == 0 {
		return Platform{}
	}
	return l.Platforms[0]
}

var store = MustLoad(levelFS, "data/level%d.tmx", 3)

// Get returns the level with the given 1-based index.
func Get(n int) (*Level, error) {
	if n < 1 || n > len(store) {
		return nil, fmt.Errorf("level %d: %w", n, ErrNotFound)
	}
	return store[n-1], nil
}

// Count returns the number of defined levels.
func Count() int {
	return len(store)
}

// MustLoad parses count maps named by pattern (formatted with 1..count).
// Embedded level data is part of the program, so a bad map panics.
func MustLoad(fsys fs.FS, pattern string, count int) []*Level {
	out := make([]*Level, 0, count)
	for i := 1; i <= count; i++ {
		level, err := Parse(fsys, fmt.Sprintf(pattern, i))
		if err != nil {
			panic(fmt.Sprintf("Failed to load level %d: %v", i, err))
		}
		level.Index = i
		out = append(out, level)
	}
	return out
}

// Parse reads one Tiled map. Objects in the "Platforms" and "Seeds" groups
// become platforms and collectibles in document order; the first image
// layer names the background. Tiled is y-down, so positions are flipped
// into bottom offsets.
func Parse(fsys fs.FS, path string) (*Level, error) {
	levelMap, err := tiled.LoadFile(path, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", path, err)
	}

	mapHeight := float64(levelMap.Height * levelMap.TileHeight)
	level := &Level{}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case "Platforms":
			for _, o := range og.Objects {
				level.Platforms = append(level.Platforms, Platform{
					Left:   o.X,
					Bottom: mapHeight - (o.Y + o.Height),
					Width:  o.Width,
				})
			}
		case "Seeds":
			for _, o := range og.Objects {
				level.Collectibles = append(level.Collectibles, Collectible{
					Left:   o.X,
					Bottom: mapHeight - (o.Y + o.Height),
				})
			}
		}
	}

	for _, imgLayer := range levelMap.ImageLayers {
		if imgLayer.Image != nil && imgLayer.Image.Source != "" {
			level.Background = imgLayer.Image.Source
			break
		}
	}

	if len(level.Platforms) == 0 {
		return nil, fmt.Errorf("level %s has no platforms", path)
	}

	return level, nil
}
