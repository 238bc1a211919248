package config

import "math"

// ProgressionKind selects what drives the difficulty level.
type ProgressionKind string

const (
	ProgressScore ProgressionKind = "score" // Level follows the score
	ProgressTime  ProgressionKind = "time"  // Level follows elapsed ticks
	ProgressNone  ProgressionKind = "none"  // Level stays at InitialLevel
)

// DifficultyManager scales enemy speed with the progress of a session.
type DifficultyManager struct {
	cfg   DifficultyConfig
	floor float64
}

// NewDifficultyManager creates a manager for cfg.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:   cfg,
		floor: clampF(cfg.InitialLevel, 0, 1),
	}
}

// IsEnabled reports whether the level can change during a session.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != ProgressNone
}

// Level returns the difficulty in [0, 1] for the given score and tick count.
// A disabled manager reports 0 so base values apply unchanged.
func (d *DifficultyManager) Level(score, ticks int) float64 {
	if !d.cfg.Enabled {
		return 0
	}

	var driver int
	switch d.cfg.Progression.Type {
	case ProgressScore:
		driver = score
	case ProgressTime:
		driver = ticks
	default:
		return d.floor
	}

	maxAt := math.Max(float64(d.cfg.Progression.MaxAt), 1)
	progress := clampF(float64(driver)/maxAt, 0, 1)
	return d.floor + progress*(1-d.floor)
}

// Speed scales baseSpeed up to base * (1 + SpeedMultiplier) at level 1.
func (d *DifficultyManager) Speed(baseSpeed float64, score, ticks int) float64 {
	return baseSpeed * (1 + d.Level(score, ticks)*d.cfg.Scaling.SpeedMultiplier)
}

func clampF(val, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, val))
}
