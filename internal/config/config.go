// Package config provides YAML-based game configuration loading and
// difficulty management for the shooter.
package config

import (
	"errors"
	"fmt"
	"math"
)

// ShooterConfig contains all tunables of the side-scrolling shooter.
// Distances are world units (pixels of the reference 1280x720 field),
// lifetimes and durations are simulation ticks unless suffixed with MS.
type ShooterConfig struct {
	World        WorldConfig         `yaml:"world"`
	Player       PlayerConfig        `yaml:"player"`
	Physics      PhysicsConfig       `yaml:"physics"`
	Bullets      BulletConfig        `yaml:"bullets"`
	EnemyBullets EnemyBulletConfig   `yaml:"enemy_bullets"`
	Enemies      EnemyConfig         `yaml:"enemies"`
	Explosions   ExplosionConfig     `yaml:"explosions"`
	Waves        WavesConfig         `yaml:"waves"`
	Scoring      ScoringConfig       `yaml:"scoring"`
	Schedule     ScheduleConfig      `yaml:"schedule"`
	Achievements []AchievementConfig `yaml:"achievements"`
	Difficulty   DifficultyConfig    `yaml:"difficulty"`
}

// WorldConfig defines the playfield bounds.
type WorldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PlayerConfig defines the player entity.
type PlayerConfig struct {
	StartX      float64 `yaml:"start_x"`
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	MaxHealth   int     `yaml:"max_health"`
	MoveSpeed   float64 `yaml:"move_speed"`
	JumpImpulse float64 `yaml:"jump_impulse"`
}

// PhysicsConfig defines per-tick motion constants.
type PhysicsConfig struct {
	Gravity     float64 `yaml:"gravity"`
	BulletSpeed float64 `yaml:"bullet_speed"`
	EnemySpeed  float64 `yaml:"enemy_speed"`
}

// BulletConfig defines player bullets.
type BulletConfig struct {
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	OffsetX  float64 `yaml:"offset_x"` // Spawn offset from the player's position
	OffsetY  float64 `yaml:"offset_y"`
	Lifetime int     `yaml:"lifetime"`
}

// EnemyBulletConfig defines bullets fired by enemies.
type EnemyBulletConfig struct {
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	Lifetime int     `yaml:"lifetime"`
}

// EnemyConfig defines enemy hitboxes.
type EnemyConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// ExplosionConfig defines cosmetic explosions.
type ExplosionConfig struct {
	Width           float64 `yaml:"width"`
	Height          float64 `yaml:"height"`
	KillLifetime    int     `yaml:"kill_lifetime"`    // Spawned when an enemy is destroyed
	ContactLifetime int     `yaml:"contact_lifetime"` // Spawned when the player dies
}

// EnemySpawn is one entry of a wave template.
// For the initial wave X is absolute; for respawn waves it is an offset
// past the right edge of the world.
type EnemySpawn struct {
	X  float64 `yaml:"x"`
	Y  float64 `yaml:"y"`
	HP int     `yaml:"hp"`
}

// WavesConfig defines the fixed enemy wave templates.
type WavesConfig struct {
	Initial []EnemySpawn `yaml:"initial"`
	Respawn []EnemySpawn `yaml:"respawn"`
}

// ScoringConfig defines score awards and persistence keys.
type ScoringConfig struct {
	KillAward    int    `yaml:"kill_award"`
	BestScoreKey string `yaml:"best_score_key"`
}

// ScheduleConfig defines the host cadences in milliseconds.
// TickMS is the length of one simulation tick; --fps overrides it.
type ScheduleConfig struct {
	TickMS       int `yaml:"tick_ms"`
	EnemyShootMS int `yaml:"enemy_shoot_ms"`
	WaveCheckMS  int `yaml:"wave_check_ms"`
}

const defaultTickMS = 40

// TickRate returns the ticks per second implied by TickMS.
func (s ScheduleConfig) TickRate() int {
	ms := s.TickMS
	if ms <= 0 {
		ms = defaultTickMS
	}
	return max(int(math.Round(1000/float64(ms))), 1)
}

// TickMSForRate returns the tick length in milliseconds for a tick rate.
// Non-positive rates give the default tick length.
func TickMSForRate(rate int) int {
	if rate <= 0 {
		return defaultTickMS
	}
	return max(int(math.Round(1000/float64(rate))), 1)
}

// AchievementKind selects the counter an achievement threshold is compared to.
type AchievementKind string

const (
	AchievementKills    AchievementKind = "kills"
	AchievementScore    AchievementKind = "score"
	AchievementSurvival AchievementKind = "survival" // elapsed seconds
)

// AchievementConfig defines a threshold-triggered achievement.
type AchievementConfig struct {
	ID          string          `yaml:"id"`
	Name        string          `yaml:"name"`
	Description string          `yaml:"description"`
	Kind        AchievementKind `yaml:"kind"`
	Threshold   int             `yaml:"threshold"` // Seconds for survival
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  ProgressionKind `yaml:"type"`
	MaxAt int             `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Multiplier added to enemy speed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI value into a preset.
// An empty string means "use the config file as-is".
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s), nil
	}
	return "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", s)
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("invalid config")

// Validate checks that the config describes a playable field.
func (c ShooterConfig) Validate() error {
	positive := []struct {
		name string
		v    float64
	}{
		{"world.width", c.World.Width},
		{"world.height", c.World.Height},
		{"player.width", c.Player.Width},
		{"player.height", c.Player.Height},
		{"bullets.width", c.Bullets.Width},
		{"bullets.height", c.Bullets.Height},
		{"enemy_bullets.width", c.EnemyBullets.Width},
		{"enemy_bullets.height", c.EnemyBullets.Height},
		{"enemies.width", c.Enemies.Width},
		{"enemies.height", c.Enemies.Height},
	}
	for _, p := range positive {
		if p.v <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %v", ErrInvalidConfig, p.name, p.v)
		}
	}

	if c.Player.Width > c.World.Width {
		return fmt.Errorf("%w: player wider than world", ErrInvalidConfig)
	}
	if c.Player.MaxHealth <= 0 {
		return fmt.Errorf("%w: player.max_health must be positive", ErrInvalidConfig)
	}
	if c.Bullets.Lifetime <= 0 || c.EnemyBullets.Lifetime <= 0 {
		return fmt.Errorf("%w: bullet lifetimes must be positive", ErrInvalidConfig)
	}
	if c.Explosions.KillLifetime <= c.Explosions.ContactLifetime {
		return fmt.Errorf("%w: explosions.kill_lifetime must exceed contact_lifetime", ErrInvalidConfig)
	}
	if len(c.Waves.Initial) == 0 || len(c.Waves.Respawn) == 0 {
		return fmt.Errorf("%w: wave templates must not be empty", ErrInvalidConfig)
	}
	for i, s := range append(append([]EnemySpawn{}, c.Waves.Initial...), c.Waves.Respawn...) {
		if s.HP <= 0 {
			return fmt.Errorf("%w: wave entry %d has hp %d", ErrInvalidConfig, i, s.HP)
		}
	}
	if c.Scoring.BestScoreKey == "" {
		return fmt.Errorf("%w: scoring.best_score_key is empty", ErrInvalidConfig)
	}
	if c.Schedule.TickMS <= 0 || c.Schedule.EnemyShootMS <= 0 || c.Schedule.WaveCheckMS <= 0 {
		return fmt.Errorf("%w: schedule intervals must be positive", ErrInvalidConfig)
	}

	switch c.Difficulty.Progression.Type {
	case ProgressScore, ProgressTime, ProgressNone:
	default:
		return fmt.Errorf("%w: unknown difficulty progression %q", ErrInvalidConfig, c.Difficulty.Progression.Type)
	}

	seen := make(map[string]bool, len(c.Achievements))
	for _, a := range c.Achievements {
		if a.ID == "" || seen[a.ID] {
			return fmt.Errorf("%w: achievement id %q empty or duplicated", ErrInvalidConfig, a.ID)
		}
		seen[a.ID] = true
		switch a.Kind {
		case AchievementKills, AchievementScore, AchievementSurvival:
		default:
			return fmt.Errorf("%w: achievement %s has unknown kind %q", ErrInvalidConfig, a.ID, a.Kind)
		}
	}
	return nil
}
