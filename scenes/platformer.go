package scenes

import (
	"strings"
	"sync"

	cfg "github.com/automoto/savetheworld/config"
	"github.com/automoto/savetheworld/loop"
	"github.com/automoto/savetheworld/systems"
	"github.com/automoto/savetheworld/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

type PlatformerScene struct {
	ecs        *ecs.ECS
	scheduler  *loop.Scheduler
	banner     *ui.BannerUI
	watcher    *cfg.Watcher
	startLevel int
	advance    bool
	once       sync.Once

	pressed  []ebiten.Key
	released []ebiten.Key
}

// NewPlatformerScene creates the game scene starting at startLevel. watcher
// may be nil.
func NewPlatformerScene(startLevel int, watcher *cfg.Watcher) *PlatformerScene {
	return &PlatformerScene{startLevel: startLevel, watcher: watcher}
}

func (ps *PlatformerScene) Update() {
	ps.once.Do(ps.configure)

	ps.pollKeys()
	ps.drainConfig()

	if ps.justPressed(cfg.ActionPause) {
		if systems.TogglePause(ps.ecs) {
			ps.scheduler.Stop()
		} else {
			ps.scheduler.Start()
		}
	}

	ps.scheduler.Tick()

	if lc := systems.GetLevelComplete(ps.ecs); lc != nil && lc.IsComplete && !systems.IsPaused(ps.ecs) {
		ps.banner.SetLabel(lc.ActionLabel)
		ps.banner.Update()
		if ps.justPressed(cfg.ActionConfirm) {
			ps.advance = true
		}
	}

	if ps.advance {
		ps.advance = false
		if err := systems.AdvanceLevel(ps.ecs); err != nil {
			cfg.Log.Error("advance failed", "err", err)
		}
	}
}

func (ps *PlatformerScene) Draw(screen *ebiten.Image) {
	if ps.ecs == nil {
		return
	}
	ps.ecs.Draw(screen)

	if systems.IsLevelComplete(ps.ecs) && !systems.IsPaused(ps.ecs) {
		ps.banner.Draw(screen)
	}
}

func (ps *PlatformerScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	systems.Setup(ecs)
	systems.Register(ecs)

	ecs.AddRenderer(cfg.Default, systems.DrawLevel)
	ecs.AddRenderer(cfg.Default, systems.DrawPlatforms)
	ecs.AddRenderer(cfg.Default, systems.DrawSeeds)
	ecs.AddRenderer(cfg.Default, systems.DrawPlayer)
	ecs.AddRenderer(cfg.HUD, systems.DrawHUD)
	ecs.AddRenderer(cfg.HUD, systems.DrawLevelComplete)
	ecs.AddRenderer(cfg.HUD, systems.DrawPause)

	ps.ecs = ecs
	ps.scheduler = loop.New(ecs)
	ps.banner = ui.NewBannerUI(func() {
		ps.advance = true
	})

	if err := systems.LoadLevel(ps.ecs, ps.startLevel); err != nil {
		cfg.Log.Warn("falling back to first level", "requested", ps.startLevel)
		if err := systems.LoadLevel(ps.ecs, cfg.Level.FirstLevel); err != nil {
			panic("failed to load first level: " + err.Error())
		}
	}

	ps.scheduler.Start()
}

// pollKeys turns this frame's key transitions into press and release
// events.
func (ps *PlatformerScene) pollKeys() {
	ps.pressed = inpututil.AppendJustPressedKeys(ps.pressed[:0])
	ps.released = inpututil.AppendJustReleasedKeys(ps.released[:0])

	for _, k := range ps.pressed {
		systems.PressKey(ps.ecs, keyName(k))
	}
	for _, k := range ps.released {
		systems.ReleaseKey(ps.ecs, keyName(k))
	}
}

// justPressed reports whether a key bound to action went down this frame.
func (ps *PlatformerScene) justPressed(action cfg.ActionID) bool {
	for _, k := range ps.pressed {
		name := keyName(k)
		for _, bound := range cfg.Input.Bindings[action] {
			if name == bound {
				return true
			}
		}
	}
	return false
}

func keyName(k ebiten.Key) string {
	return strings.ToLower(k.String())
}

// drainConfig applies reloaded tuning without blocking the frame.
func (ps *PlatformerScene) drainConfig() {
	if ps.watcher == nil {
		return
	}
	for {
		select {
		case t := <-ps.watcher.Updates:
			cfg.Apply(t)
			cfg.Log.Info("config reloaded")
		case err := <-ps.watcher.Errors:
			cfg.Log.Warn("config reload failed", "err", err)
		default:
			return
		}
	}
}
