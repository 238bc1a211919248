// Package shooter adapts the simulation engine to the terminal platform.
// It maps input frames to engine commands, drives the enemy-fire and
// wave-check cadences from the fixed tick, and draws the world onto a
// character screen.
package shooter

import (
	"errors"
	"math"

	"github.com/vovakirdan/tui-shooter/internal/config"
	"github.com/vovakirdan/tui-shooter/internal/core"
	"github.com/vovakirdan/tui-shooter/internal/engine"
)

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
// Unknown values fall back to the config file as-is.
func SetDifficultyPreset(preset string) {
	p, err := config.ParsePreset(preset)
	if err != nil {
		p = ""
	}
	difficultyPreset = p
}

// LoadConfig loads the shooter config honoring the CLI path and preset.
// A config that cannot be loaded falls back to the built-in defaults.
func LoadConfig() (config.ShooterConfig, error) {
	cfg, err := config.LoadShooter(configPath)
	if err != nil {
		cfg = config.DefaultShooterConfig()
	}
	config.ApplyShooterPreset(&cfg, difficultyPreset)
	return cfg, err
}

// Game implements the side-scrolling shooter for the terminal platform.
type Game struct {
	opts    []engine.Option
	engine  *engine.Engine
	state   *engine.State
	cfg     config.ShooterConfig
	runtime core.RuntimeConfig
	paused  bool

	shootEvery int // Ticks between enemy volleys
	waveEvery  int // Ticks between wave checks
	sinceShoot int
	sinceWave  int
}

// New creates a new shooter game. The options are passed to the engine,
// typically a score store and a logger.
func New(opts ...engine.Option) *Game {
	return &Game{opts: opts}
}

// NewWithConfig creates a game with an explicit config instead of loading one.
func NewWithConfig(cfg config.ShooterConfig, opts ...engine.Option) *Game {
	g := New(opts...)
	g.setConfig(cfg)
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "shooter"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Side Shooter"
}

// Reset starts a new session. The first call builds the engine and loads
// the best score; later calls keep best score and achievements.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	if g.engine == nil {
		cfg, _ := LoadConfig()
		g.setConfig(cfg)
	}
	// Play time (survival achievements) follows the rate the host ticks at.
	if ms := config.TickMSForRate(runtime.TickRate); runtime.TickRate > 0 && ms != g.cfg.Schedule.TickMS {
		g.cfg.Schedule.TickMS = ms
		g.setConfig(g.cfg)
	}
	if g.state == nil {
		g.state = g.engine.NewState()
	} else {
		g.engine.Reset(g.state)
	}

	g.paused = false
	g.shootEvery = ticksFor(g.cfg.Schedule.EnemyShootMS, runtime.TickRate)
	g.waveEvery = ticksFor(g.cfg.Schedule.WaveCheckMS, runtime.TickRate)
	g.sinceShoot = 0
	g.sinceWave = 0
}

func (g *Game) setConfig(cfg config.ShooterConfig) {
	g.cfg = cfg
	g.engine = engine.New(cfg, g.opts...)
}

// ticksFor converts a millisecond cadence into a whole number of ticks.
func ticksFor(ms, tickRate int) int {
	if tickRate <= 0 {
		tickRate = core.DefaultConfig().TickRate
	}
	n := int(math.Round(float64(ms) * float64(tickRate) / 1000))
	return core.Max(n, 1)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if !g.state.Alive() {
		if in.Has(core.ActionRestart) {
			g.Reset(g.runtime)
			return core.StepResult{State: g.State()}
		}
		g.engine.Advance(g.state) // Let explosions finish
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	for _, cmd := range g.commands(in) {
		if err := g.engine.Apply(g.state, cmd); errors.Is(err, engine.ErrGameOver) {
			break
		}
	}

	g.engine.Advance(g.state)

	g.sinceShoot++
	if g.sinceShoot >= g.shootEvery {
		g.sinceShoot = 0
		g.engine.EnemyShoot(g.state)
	}
	g.sinceWave++
	if g.sinceWave >= g.waveEvery {
		g.sinceWave = 0
		g.engine.WaveCheck(g.state)
	}

	return core.StepResult{State: g.State()}
}

// commands maps the actions of one frame to engine commands in a fixed order.
func (g *Game) commands(in core.InputFrame) []engine.Command {
	if in.Empty() {
		return nil
	}
	var cmds []engine.Command
	if in.Has(core.ActionToggleDefense) {
		cmds = append(cmds, engine.ToggleDefense(!g.state.Player.InDefense))
	}
	if in.Has(core.ActionLeft) {
		cmds = append(cmds, engine.MoveLeft(0))
	}
	if in.Has(core.ActionRight) {
		cmds = append(cmds, engine.MoveRight(0))
	}
	if in.Has(core.ActionJump) {
		cmds = append(cmds, engine.Jump(0))
	}
	if in.Has(core.ActionShoot) {
		cmds = append(cmds, engine.Shoot())
	}
	return cmds
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.state == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:     g.state.Score,
		BestScore: g.state.BestScore,
		Health:    g.state.Player.Health,
		Kills:     g.state.DeadEnemyCount,
		Ticks:     g.state.Timer,
		GameOver:  !g.state.Alive(),
		Paused:    g.paused,
	}
}

// Snapshot returns a deep copy of the simulation state.
func (g *Game) Snapshot() engine.Snapshot {
	return g.state.Snapshot()
}
