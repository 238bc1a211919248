package shooter

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-shooter/internal/config"
	"github.com/vovakirdan/tui-shooter/internal/core"
	"github.com/vovakirdan/tui-shooter/internal/engine"
)

var testRuntime = core.RuntimeConfig{
	ScreenW:  80,
	ScreenH:  24,
	TickRate: 25,
}

func newTestGame(t *testing.T, opts ...engine.Option) *Game {
	t.Helper()
	opts = append([]engine.Option{engine.WithStrict(true)}, opts...)
	g := NewWithConfig(config.DefaultShooterConfig(), opts...)
	g.Reset(testRuntime)
	return g
}

func frame(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func TestGameDeterminism(t *testing.T) {
	inputs := make([]core.InputFrame, 600)
	for i := range inputs {
		switch {
		case i%7 == 0:
			inputs[i] = frame(core.ActionShoot)
		case i%31 == 0:
			inputs[i] = frame(core.ActionJump, core.ActionRight)
		case i%13 == 0:
			inputs[i] = frame(core.ActionLeft)
		default:
			inputs[i] = frame()
		}
	}

	run := func() uint64 {
		g := newTestGame(t)
		for _, in := range inputs {
			g.Step(in)
		}
		snap := g.Snapshot()
		return snap.Hash()
	}

	h1, h2 := run(), run()
	if h1 != h2 {
		t.Errorf("Determinism failed: hashes differ. Run1=%d, Run2=%d", h1, h2)
	}
}

func TestTicksFor(t *testing.T) {
	tests := []struct {
		ms, rate, expected int
	}{
		{2000, 25, 50},
		{50, 25, 1},
		{40, 25, 1},
		{10, 25, 1},
		{1000, 60, 60},
		{2000, 0, 50},
	}
	for _, tt := range tests {
		if got := ticksFor(tt.ms, tt.rate); got != tt.expected {
			t.Errorf("ticksFor(%d, %d) = %d, expected %d", tt.ms, tt.rate, got, tt.expected)
		}
	}
}

func TestEnemyShootCadence(t *testing.T) {
	g := newTestGame(t)

	for i := 0; i < 49; i++ {
		g.Step(frame())
	}
	if n := len(g.state.EnemyBullets); n != 0 {
		t.Fatalf("len(EnemyBullets) = %d after 49 ticks, expected 0", n)
	}

	g.Step(frame())
	if n := len(g.state.EnemyBullets); n != 2 {
		t.Errorf("len(EnemyBullets) = %d after 50 ticks, expected 2", n)
	}
}

func TestStepMapsActions(t *testing.T) {
	g := newTestGame(t)
	startX := g.state.Player.Pos.X

	g.Step(frame(core.ActionRight))
	if got, want := g.state.Player.Pos.X, startX+g.cfg.Player.MoveSpeed; got != want {
		t.Errorf("Player X = %v, expected %v", got, want)
	}

	g.Step(frame(core.ActionShoot))
	if len(g.state.Bullets) != 1 {
		t.Errorf("len(Bullets) = %d, expected 1", len(g.state.Bullets))
	}

	g.Step(frame(core.ActionToggleDefense))
	if !g.state.Player.InDefense {
		t.Error("InDefense = false, expected true after toggle")
	}
	g.Step(frame(core.ActionToggleDefense))
	if g.state.Player.InDefense {
		t.Error("InDefense = true, expected false after second toggle")
	}

	g.Step(frame(core.ActionJump))
	if g.state.Player.OnGround {
		t.Error("OnGround = true, expected airborne after jump")
	}
}

func TestPauseStopsSimulation(t *testing.T) {
	g := newTestGame(t)
	g.Step(frame())
	ticks := g.State().Ticks

	state := g.Step(frame(core.ActionPause)).State
	if !state.Paused {
		t.Fatal("Paused = false, expected true")
	}
	for i := 0; i < 10; i++ {
		g.Step(frame(core.ActionShoot))
	}
	if g.State().Ticks != ticks || len(g.state.Bullets) != 0 {
		t.Errorf("simulation advanced while paused: ticks=%d bullets=%d", g.State().Ticks, len(g.state.Bullets))
	}

	g.Step(frame(core.ActionPause))
	if g.State().Paused {
		t.Error("Paused = true, expected false after second toggle")
	}
	if g.State().Ticks != ticks+1 {
		t.Errorf("Ticks = %d, expected %d", g.State().Ticks, ticks+1)
	}
}

func TestRestartAfterGameOver(t *testing.T) {
	store := engine.NewMemoryStore()
	g := newTestGame(t, engine.WithStore(store))

	g.state.Score = 400
	g.state.Player.Health = 1
	g.state.Enemies = []engine.Enemy{{ID: 99, Pos: engine.Vec2{X: 110}, HP: 3}}

	state := g.Step(frame()).State
	if !state.GameOver {
		t.Fatal("GameOver = false, expected true")
	}
	if state.BestScore != 400 {
		t.Errorf("BestScore = %d, expected 400", state.BestScore)
	}

	state = g.Step(frame(core.ActionRestart)).State
	if state.GameOver {
		t.Fatal("GameOver = true after restart, expected false")
	}
	if state.Health != 5 || state.Score != 0 || state.Kills != 0 || state.Ticks != 0 {
		t.Errorf("State = %+v, expected fresh session", state)
	}
	if state.BestScore != 400 {
		t.Errorf("BestScore = %d after restart, expected 400", state.BestScore)
	}
	if len(g.state.Enemies) != 2 {
		t.Errorf("len(Enemies) = %d, expected 2", len(g.state.Enemies))
	}
}

func TestRenderPlayfield(t *testing.T) {
	g := newTestGame(t)
	screen := core.NewScreen(testRuntime.ScreenW, testRuntime.ScreenH)

	g.Render(screen)

	if !strings.Contains(screen.Row(0), "Score: 0") {
		t.Errorf("HUD row = %q, expected score", screen.Row(0))
	}
	if got := screen.Get(0, 23); got != GroundChar {
		t.Errorf("ground cell = %q, expected %q", got, GroundChar)
	}
	// Player spans x 100..200 of a 1280-wide world, i.e. columns 6..11.
	if got := screen.Get(6, 22); got != PlayerChar {
		t.Errorf("player cell = %q, expected %q", got, PlayerChar)
	}
	if cell := screen.GetCell(6, 22); cell.Color != core.ColorBrightGreen {
		t.Errorf("player color = %v, expected %v", cell.Color, core.ColorBrightGreen)
	}
	if !strings.Contains(screen.String(), string(EnemyChar)) {
		t.Error("no enemy drawn")
	}
}

func TestRenderGameOver(t *testing.T) {
	g := newTestGame(t)
	g.state.Player.Health = 1
	g.state.Enemies = []engine.Enemy{{ID: 99, Pos: engine.Vec2{X: 110}, HP: 3}}
	g.Step(frame())

	screen := core.NewScreen(testRuntime.ScreenW, testRuntime.ScreenH)
	g.Render(screen)

	if !strings.Contains(screen.String(), "GAME OVER") {
		t.Error("game over box not drawn")
	}
}

func TestGameMetadata(t *testing.T) {
	g := New()
	if g.ID() != "shooter" {
		t.Errorf("ID() = %s, expected shooter", g.ID())
	}
	if g.Title() == "" {
		t.Error("Title() is empty")
	}
	if s := g.State(); s.GameOver || s.Score != 0 {
		t.Errorf("State() before Reset = %+v, expected zero", s)
	}
}

func TestResetAlignsTickLengthWithRate(t *testing.T) {
	cfg := config.DefaultShooterConfig()
	cfg.Achievements = []config.AchievementConfig{
		{ID: "two_seconds", Name: "Two Seconds", Kind: config.AchievementSurvival, Threshold: 2},
	}
	g := NewWithConfig(cfg, engine.WithStrict(true))
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 50})

	if got := g.engine.Config().Schedule.TickMS; got != 20 {
		t.Fatalf("engine tick_ms = %d, expected 20 at 50 ticks per second", got)
	}

	for i := 0; i < 99; i++ {
		g.Step(frame())
	}
	if g.state.Achievements[0].Unlocked {
		t.Fatal("survival unlocked before two seconds of play")
	}
	g.Step(frame())
	if !g.state.Achievements[0].Unlocked {
		t.Error("survival still locked after two seconds of play")
	}
}
