// Package engine implements the deterministic simulation of the side-scrolling
// shooter: commands, the fixed-interval tick, AABB collision resolution, wave
// respawning, scoring and achievements.
//
// The engine holds configuration and injected collaborators only. All game
// data lives in a State value that the host owns and passes into every call.
// Calls are synchronous and must not overlap.
package engine

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-shooter/internal/config"
)

// ScoreStore persists named integers across sessions.
type ScoreStore interface {
	// GetInt returns the stored value and whether it exists.
	GetInt(key string) (int, bool, error)
	// SetInt stores a value. The engine does not wait on or retry failures.
	SetInt(key string, value int) error
}

// MaxStore is a ScoreStore that can raise a value without lowering it.
// Stores shared by concurrent sessions implement it so a session holding a
// stale best score cannot overwrite a higher one.
type MaxStore interface {
	ScoreStore
	// MaxInt stores max(current, value) and returns the resulting value.
	MaxInt(key string, value int) (int, error)
}

// AchievementSink is notified when an achievement unlocks.
type AchievementSink interface {
	UnlockAchievement(id string, at time.Time) (bool, error)
}

// Engine applies commands and ticks to a State.
type Engine struct {
	cfg        config.ShooterConfig
	difficulty *config.DifficultyManager
	store      ScoreStore
	sink       AchievementSink
	logger     *log.Logger
	now        func() time.Time
	strict     bool
}

// Option configures an Engine.
type Option func(*Engine)

// WithStore sets the best-score store. Defaults to an in-memory store.
func WithStore(store ScoreStore) Option {
	return func(e *Engine) {
		if store != nil {
			e.store = store
		}
	}
}

// WithAchievementSink sets the receiver of achievement unlocks.
func WithAchievementSink(sink AchievementSink) Option {
	return func(e *Engine) {
		e.sink = sink
	}
}

// WithLogger sets the logger. Defaults to a discarding logger.
func WithLogger(logger *log.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithClock sets the time source used for achievement timestamps.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		if now != nil {
			e.now = now
		}
	}
}

// WithStrict makes invariant violations panic instead of being clamped.
func WithStrict(strict bool) Option {
	return func(e *Engine) {
		e.strict = strict
	}
}

// New creates an engine for the given configuration.
func New(cfg config.ShooterConfig, opts ...Option) *Engine {
	e := &Engine{
		cfg:        cfg,
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
		store:      NewMemoryStore(),
		logger:     log.New(io.Discard),
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Config returns the engine configuration.
func (e *Engine) Config() config.ShooterConfig {
	return e.cfg
}

// NewState creates the initial state of a session and loads the persisted
// best score.
func (e *Engine) NewState() *State {
	s := &State{
		Achievements: make([]Achievement, 0, len(e.cfg.Achievements)),
	}
	for _, a := range e.cfg.Achievements {
		s.Achievements = append(s.Achievements, Achievement{
			ID:          a.ID,
			Name:        a.Name,
			Description: a.Description,
		})
	}

	best, ok, err := e.store.GetInt(e.cfg.Scoring.BestScoreKey)
	switch {
	case err != nil:
		e.logger.Warn("could not load best score", "error", err)
	case ok && best > 0:
		s.BestScore = best
	}

	e.Reset(s)
	return s
}

// Reset reinitializes the session: full health, zero score and counters, the
// initial two-enemy wave and no projectiles. Best score and achievements are
// kept. It is the only way out of PhaseGameOver.
func (e *Engine) Reset(s *State) {
	s.Player = Player{
		Pos:      Vec2{X: e.clampX(e.cfg.Player.StartX), Y: 0},
		OnGround: true,
		Health:   e.cfg.Player.MaxHealth,
		Alive:    true,
	}
	s.Enemies = s.Enemies[:0]
	s.Bullets = s.Bullets[:0]
	s.EnemyBullets = s.EnemyBullets[:0]
	s.Explosions = s.Explosions[:0]
	s.Score = 0
	s.DeadEnemyCount = 0
	s.Timer = 0
	s.Wave = 0
	s.Phase = PhasePlaying
	s.GameOverReason = ""

	for _, spawn := range e.cfg.Waves.Initial {
		s.Enemies = append(s.Enemies, Enemy{
			ID:  s.newID(),
			Pos: Vec2{X: spawn.X, Y: spawn.Y},
			HP:  spawn.HP,
		})
	}
	s.Wave = 1

	e.enforce(s)
}

// enforce checks invariants after an operation. Strict engines panic on a
// violation; others log it and clamp the state back into range.
func (e *Engine) enforce(s *State) {
	err := s.Validate(e.cfg.Player.MaxHealth)
	if err == nil {
		return
	}
	if e.strict {
		panic(err)
	}

	e.logger.Error("clamping state", "error", err)

	p := &s.Player
	if p.Health < 0 {
		p.Health = 0
	}
	if p.Health > e.cfg.Player.MaxHealth {
		p.Health = e.cfg.Player.MaxHealth
	}
	if p.Health == 0 || s.Phase == PhaseGameOver {
		p.Health = 0
		p.Alive = false
		s.Phase = PhaseGameOver
	} else {
		p.Alive = true
	}

	s.Enemies = filter(s.Enemies, func(en Enemy) bool { return en.HP > 0 })
	s.Bullets = filter(s.Bullets, func(b Bullet) bool { return b.Lifetime > 0 })
	s.EnemyBullets = filter(s.EnemyBullets, func(b Bullet) bool { return b.Lifetime > 0 })
	s.Explosions = filter(s.Explosions, func(x Explosion) bool { return x.Lifetime > 0 })

	if s.Score < 0 {
		s.Score = 0
	}
	if s.BestScore < 0 {
		s.BestScore = 0
	}
	if s.DeadEnemyCount < 0 {
		s.DeadEnemyCount = 0
	}
	if s.Timer < 0 {
		s.Timer = 0
	}
}

// filter compacts a slice in place, keeping elements for which keep returns true.
func filter[T any](items []T, keep func(T) bool) []T {
	out := items[:0]
	for _, it := range items {
		if keep(it) {
			out = append(out, it)
		}
	}
	return out
}
