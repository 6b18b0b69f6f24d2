package systems

import (
	"errors"
	"math"
	"testing"

	"github.com/automoto/savetheworld/components"
	cfg "github.com/automoto/savetheworld/config"
	"github.com/automoto/savetheworld/levels"
	"github.com/automoto/savetheworld/loop"
	"github.com/automoto/savetheworld/systems/factory"
	"github.com/automoto/savetheworld/tags"
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func init() {
	cfg.Log.SetLevel(log.FatalLevel)
}

const eps = 1e-9

func newTestGame(t *testing.T, level int) (*ecs.ECS, *loop.Scheduler) {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	Setup(e)
	Register(e)
	if err := LoadLevel(e, level); err != nil {
		t.Fatalf("LoadLevel(%d): %v", level, err)
	}
	return e, loop.New(e)
}

func player(t *testing.T, e *ecs.ECS) (*components.ObjectData, *components.PhysicsData, *components.PlayerData) {
	t.Helper()
	entry, ok := tags.Player.First(e.World)
	if !ok {
		t.Fatal("no player entity")
	}
	return components.Object.Get(entry), components.Physics.Get(entry), components.Player.Get(entry)
}

func teleport(obj *components.ObjectData, x, y float64) {
	obj.X, obj.Y = x, y
	obj.Update()
}

func levelData(t *testing.T, e *ecs.ECS) *components.LevelData {
	t.Helper()
	l, ok := getLevel(e)
	if !ok {
		t.Fatal("no level entity")
	}
	return l
}

// collectAll walks the player onto every seed of the loaded level.
func collectAll(t *testing.T, e *ecs.ECS, s *loop.Scheduler) {
	t.Helper()
	obj, _, _ := player(t, e)
	for _, seed := range levelData(t, e).CurrentLevel.Collectibles {
		teleport(obj, seed.Left, seed.Bottom)
		s.Step()
	}
}

func TestLoadLevelResetsSession(t *testing.T) {
	e, _ := newTestGame(t, 1)

	obj, physics, p := player(t, e)
	if obj.X != 100 || obj.Y != 20 {
		t.Errorf("player at (%v, %v), want (100, 20)", obj.X, obj.Y)
	}
	if physics.SpeedY != 0 || physics.Grounded {
		t.Errorf("physics = %+v, want zero", *physics)
	}
	if !p.FacingRight {
		t.Error("player should face right after load")
	}

	level := levelData(t, e)
	if len(level.Platforms) != 4 || len(level.Collectibles) != 3 {
		t.Errorf("got %d platforms, %d seeds; want 4, 3", len(level.Platforms), len(level.Collectibles))
	}
	if level.Background != "mapa 1.0.gif" {
		t.Errorf("background = %q", level.Background)
	}
	if got := Title(e); got != "Save the World - Level 1" {
		t.Errorf("title = %q", got)
	}
	if Phase(e) != components.PhasePlaying {
		t.Errorf("phase = %v, want playing", Phase(e))
	}
	if IsLevelComplete(e) {
		t.Error("banner shown right after load")
	}

	entry, _ := tags.Player.First(e.World)
	sprite := components.Sprite.Get(entry)
	if sprite.ScreenX != 100 || sprite.ScreenY != 420 || sprite.FlipX {
		t.Errorf("sprite = %+v, want (100, 420) unflipped", *sprite)
	}
}

func TestMovementClampsToField(t *testing.T) {
	tests := []struct {
		name   string
		startX float64
		key    string
		wantX  float64
		right  bool
	}{
		{name: "left edge", startX: 2, key: "a", wantX: 0},
		{name: "left arrow", startX: 3, key: "ArrowLeft", wantX: 0},
		{name: "right edge", startX: 858, key: "d", wantX: 860, right: true},
		{name: "right arrow", startX: 300, key: "arrowright", wantX: 305, right: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, s := newTestGame(t, 1)
			obj, _, p := player(t, e)
			teleport(obj, tt.startX, 20)

			PressKey(e, tt.key)
			s.Step()

			if obj.X != tt.wantX {
				t.Errorf("x = %v, want %v", obj.X, tt.wantX)
			}
			if p.FacingRight != tt.right {
				t.Errorf("FacingRight = %v, want %v", p.FacingRight, tt.right)
			}
		})
	}
}

func TestBothDirectionsHeldFacesLeft(t *testing.T) {
	e, s := newTestGame(t, 1)
	obj, _, p := player(t, e)

	PressKey(e, "a")
	PressKey(e, "d")
	s.Step()

	if obj.X != 100 {
		t.Errorf("x = %v, want 100", obj.X)
	}
	if p.FacingRight {
		t.Error("holding both keys should face left")
	}

	entry, _ := tags.Player.First(e.World)
	sprite := components.Sprite.Get(entry)
	if sprite.Image != cfg.Player.WalkSprite || !sprite.FlipX {
		t.Errorf("sprite = %+v, want flipped walk sprite", *sprite)
	}

	ReleaseKey(e, "a")
	ReleaseKey(e, "d")
	s.Step()
	if sprite.Image != cfg.Player.IdleSprite {
		t.Errorf("sprite image = %q after release, want idle", sprite.Image)
	}
}

func TestLandingZeroesVelocity(t *testing.T) {
	e, s := newTestGame(t, 1)
	obj, physics, _ := player(t, e)

	// Fall onto the platform at (150, 150, 120) whose top is 170
	teleport(obj, 230, 172)
	physics.SpeedY = -1.2

	s.Step()

	if !physics.Grounded {
		t.Fatal("player should be grounded after landing")
	}
	if physics.SpeedY != 0 {
		t.Errorf("SpeedY = %v, want 0", physics.SpeedY)
	}
	if obj.Y != 170 {
		t.Errorf("y = %v, want 170", obj.Y)
	}
}

func TestStandingStaysGrounded(t *testing.T) {
	e, s := newTestGame(t, 1)
	obj, physics, _ := player(t, e)

	for i := 0; i < 10; i++ {
		s.Step()
	}
	if !physics.Grounded || physics.SpeedY != 0 || obj.Y != 20 {
		t.Errorf("after 10 idle frames: y=%v vy=%v grounded=%v", obj.Y, physics.SpeedY, physics.Grounded)
	}
}

func TestGravityClearsGrounded(t *testing.T) {
	e, s := newTestGame(t, 1)
	_, physics, _ := player(t, e)
	s.Step()
	if !physics.Grounded {
		t.Fatal("expected grounded after first frame")
	}

	UpdateGravity(e)

	if physics.Grounded {
		t.Error("grounded should be false immediately after the gravity step")
	}
}

func TestJumpFromGround(t *testing.T) {
	e, s := newTestGame(t, 1)
	obj, physics, _ := player(t, e)
	s.Step()
	startY := obj.Y

	PressKey(e, " ")
	UpdateJump(e)
	if physics.SpeedY != 16 || physics.Grounded {
		t.Fatalf("after jump: vy=%v grounded=%v, want 16/false", physics.SpeedY, physics.Grounded)
	}

	UpdateGravity(e)
	if math.Abs(physics.SpeedY-15.2) > eps {
		t.Errorf("vy = %v, want 15.2", physics.SpeedY)
	}
	if math.Abs(obj.Y-startY-15.2) > eps {
		t.Errorf("y rose by %v, want 15.2", obj.Y-startY)
	}
}

func TestJumpRequiresGround(t *testing.T) {
	e, _ := newTestGame(t, 1)
	_, physics, _ := player(t, e)

	PressKey(e, "w")
	UpdateJump(e)

	if physics.SpeedY != 0 {
		t.Errorf("airborne jump set vy = %v", physics.SpeedY)
	}
}

func TestEdgeTouchingSeedNotCollected(t *testing.T) {
	e, s := newTestGame(t, 1)
	obj, _, _ := player(t, e)

	// Seed at (180, 170); player right edge sits exactly on its left edge
	teleport(obj, 180-cfg.Player.Width, 175)
	s.Step()

	if n := RemainingSeeds(e); n != 3 {
		t.Errorf("remaining seeds = %d, want 3", n)
	}
}

func TestPickupAndFadeRemoval(t *testing.T) {
	e, s := newTestGame(t, 1)
	obj, _, _ := player(t, e)
	level := levelData(t, e)
	first := level.Collectibles[0]

	teleport(obj, 180, 175)
	s.Step()

	seed := components.Collectible.Get(first)
	if !seed.Collected {
		t.Fatal("seed under the player was not collected")
	}
	if RemainingSeeds(e) != 2 {
		t.Errorf("remaining seeds = %d, want 2", RemainingSeeds(e))
	}
	if !first.Valid() {
		t.Fatal("seed destroyed before its fade finished")
	}

	frames := int(cfg.Level.SeedFadeSeconds*float64(cfg.C.TPS)) + 2
	for i := 0; i < frames; i++ {
		s.Step()
	}
	if first.Valid() {
		t.Error("seed entity still alive after fade")
	}
	if len(level.Collectibles) != 2 {
		t.Errorf("level holds %d seeds, want 2", len(level.Collectibles))
	}
}

func TestCompletionFiresOnce(t *testing.T) {
	e, s := newTestGame(t, 1)
	collectAll(t, e, s)

	lc := GetLevelComplete(e)
	if !lc.IsComplete {
		t.Fatal("level not complete after collecting every seed")
	}
	if lc.Message != cfg.LevelComplete.Message {
		t.Errorf("message = %q", lc.Message)
	}
	if lc.ActionLabel != cfg.LevelComplete.NextLabel || !lc.HasNextLevel {
		t.Errorf("action = %q hasNext=%v, want next level", lc.ActionLabel, lc.HasNextLevel)
	}
	if Phase(e) != components.PhaseComplete {
		t.Errorf("phase = %v, want complete", Phase(e))
	}

	lc.ActionLabel = "unchanged"
	for i := 0; i < 30; i++ {
		s.Step()
	}
	if lc.ActionLabel != "unchanged" {
		t.Error("banner was re-triggered on a later frame")
	}
}

func TestLastLevelOffersRestartAndWraps(t *testing.T) {
	e, s := newTestGame(t, levels.Count())
	collectAll(t, e, s)

	lc := GetLevelComplete(e)
	if lc.ActionLabel != cfg.LevelComplete.RestartLabel || lc.HasNextLevel {
		t.Fatalf("action = %q hasNext=%v, want restart", lc.ActionLabel, lc.HasNextLevel)
	}

	if err := AdvanceLevel(e); err != nil {
		t.Fatalf("AdvanceLevel: %v", err)
	}

	if got := CurrentLevelIndex(e); got != 1 {
		t.Errorf("level = %d, want 1", got)
	}
	if IsLevelComplete(e) || Phase(e) != components.PhasePlaying {
		t.Error("banner should be hidden and phase playing after wrap")
	}
	if n := RemainingSeeds(e); n != 3 {
		t.Errorf("remaining seeds = %d, want 3", n)
	}
	obj, physics, p := player(t, e)
	if obj.X != 100 || obj.Y != 20 || physics.SpeedY != 0 || !p.FacingRight {
		t.Errorf("player not reset: (%v, %v) vy=%v right=%v", obj.X, obj.Y, physics.SpeedY, p.FacingRight)
	}
}

func TestAdvanceToNextLevel(t *testing.T) {
	e, s := newTestGame(t, 1)
	collectAll(t, e, s)

	if err := AdvanceLevel(e); err != nil {
		t.Fatalf("AdvanceLevel: %v", err)
	}
	if got := CurrentLevelIndex(e); got != 2 {
		t.Errorf("level = %d, want 2", got)
	}
	if got := Title(e); got != "Save the World - Level 2" {
		t.Errorf("title = %q", got)
	}

	count := 0
	tags.Collectible.Each(e.World, func(*donburi.Entry) { count++ })
	if count != 4 {
		t.Errorf("seed entities = %d, want 4 (old fading seeds must be gone)", count)
	}
}

func TestLoadUnknownLevelKeepsState(t *testing.T) {
	e, _ := newTestGame(t, 1)
	obj, _, _ := player(t, e)
	teleport(obj, 321, 45)

	err := LoadLevel(e, 4)
	if !errors.Is(err, levels.ErrNotFound) {
		t.Fatalf("LoadLevel(4) error = %v, want ErrNotFound", err)
	}

	if got := CurrentLevelIndex(e); got != 1 {
		t.Errorf("level = %d, want 1", got)
	}
	if got := Title(e); got != "Save the World - Level 1" {
		t.Errorf("title = %q", got)
	}
	if n := len(levelData(t, e).Platforms); n != 4 {
		t.Errorf("platforms = %d, want 4", n)
	}
	if obj.X != 321 || obj.Y != 45 {
		t.Errorf("player moved to (%v, %v)", obj.X, obj.Y)
	}
}

// Platforms are checked in definition order against the position left by
// earlier matches, so a later lower platform overrides an earlier higher one
// and a later higher one no longer qualifies.
func TestOverlappingPlatformsResolveInOrder(t *testing.T) {
	tests := []struct {
		name  string
		order []levels.Platform
		wantY float64
	}{
		{
			name:  "lower then higher",
			order: []levels.Platform{{Left: 400, Bottom: 380, Width: 100}, {Left: 400, Bottom: 383, Width: 100}},
			wantY: 400,
		},
		{
			name:  "higher then lower",
			order: []levels.Platform{{Left: 400, Bottom: 383, Width: 100}, {Left: 400, Bottom: 380, Width: 100}},
			wantY: 400,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, _ := newTestGame(t, 1)
			level := levelData(t, e)
			for _, p := range tt.order {
				level.Platforms = append(level.Platforms, factory.CreatePlatform(e, p))
			}
			obj, physics, _ := player(t, e)
			teleport(obj, 420, 403)
			physics.SpeedY = -1

			UpdatePlatformCollisions(e)

			if obj.Y != tt.wantY {
				t.Errorf("y = %v, want %v", obj.Y, tt.wantY)
			}
			if !physics.Grounded || physics.SpeedY != 0 {
				t.Errorf("grounded=%v vy=%v after landing", physics.Grounded, physics.SpeedY)
			}
		})
	}
}

func TestTogglePause(t *testing.T) {
	e, _ := newTestGame(t, 1)

	if IsPaused(e) {
		t.Fatal("new session starts paused")
	}
	if !TogglePause(e) || !IsPaused(e) {
		t.Error("first toggle should pause")
	}
	if TogglePause(e) || IsPaused(e) {
		t.Error("second toggle should resume")
	}
}
