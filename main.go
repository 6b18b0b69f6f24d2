// savetheworld is a small platformer: collect every seed to clear a level.
//
// Usage:
//
//	savetheworld                 - Play from the first level
//	savetheworld levels          - List the built-in levels
//
// Flags:
//
//	--level <n>         - Level to start on (default: 1)
//	--config <path>     - YAML tuning overrides
//	--watch             - Reload the config file when it changes
//	--log-level <name>  - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"image"
	"os"

	"github.com/automoto/savetheworld/config"
	"github.com/automoto/savetheworld/fonts"
	"github.com/automoto/savetheworld/levels"
	"github.com/automoto/savetheworld/scenes"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
)

var (
	flagLevel    int
	flagConfig   string
	flagWatch    bool
	flagLogLevel string
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

func NewGame(scene Scene) *Game {
	return &Game{
		bounds: image.Rectangle{},
		scene:  scene,
	}
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "savetheworld",
	Short: "Save the World - collect every seed to clear the level",
	Long: `Save the World is a small platformer. Move with A/D or the arrow
keys, jump with Space, W or Up, and collect every seed to clear the level.

Examples:
  savetheworld
  savetheworld --level 2
  savetheworld --config tuning.yaml --watch`,
	SilenceUsage: true,
	RunE:         runGame,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.Flags().IntVar(&flagLevel, "level", 1, "Level to start on")
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "Path to a YAML tuning file")
	rootCmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload the tuning file when it changes")

	rootCmd.AddCommand(levelsCmd)
}

func runGame(cmd *cobra.Command, args []string) error {
	if err := config.SetLogLevel(flagLogLevel); err != nil {
		return err
	}
	if _, err := levels.Get(flagLevel); err != nil {
		return fmt.Errorf("--level: %w", err)
	}

	tuning, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	config.Apply(tuning)

	var watcher *config.Watcher
	if flagWatch {
		if flagConfig == "" {
			return fmt.Errorf("--watch requires --config")
		}
		watcher, err = config.Watch(flagConfig)
		if err != nil {
			return fmt.Errorf("watch %s: %w", flagConfig, err)
		}
		defer watcher.Close()
	}

	if err := fonts.LoadDefaults(); err != nil {
		return err
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetTPS(config.C.TPS)

	config.Log.Info("starting", "level", flagLevel, "config", flagConfig, "watch", flagWatch)
	return ebiten.RunGame(NewGame(scenes.NewPlatformerScene(flagLevel, watcher)))
}
