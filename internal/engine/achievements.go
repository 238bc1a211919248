package engine

import "github.com/vovakirdan/tui-shooter/internal/config"

// evaluateAchievements unlocks every achievement whose threshold has been
// reached. Unlocks are permanent for the lifetime of the state.
func (e *Engine) evaluateAchievements(s *State) {
	for i, def := range e.cfg.Achievements {
		if i >= len(s.Achievements) {
			break
		}
		a := &s.Achievements[i]
		if a.Unlocked || !reached(e.cfg, def, s) {
			continue
		}

		at := e.now()
		a.Unlocked = true
		a.UnlockedAt = &at
		e.logger.Info("achievement unlocked", "id", a.ID, "name", a.Name)

		if e.sink == nil {
			continue
		}
		if _, err := e.sink.UnlockAchievement(a.ID, at); err != nil {
			e.logger.Warn("could not record achievement", "id", a.ID, "error", err)
		}
	}
}

func reached(cfg config.ShooterConfig, def config.AchievementConfig, s *State) bool {
	switch def.Kind {
	case config.AchievementKills:
		return s.DeadEnemyCount >= def.Threshold
	case config.AchievementScore:
		return s.Score >= def.Threshold
	case config.AchievementSurvival:
		return s.Timer*tickMS(cfg) >= def.Threshold*1000
	default:
		return false
	}
}

// tickMS is the configured tick length, used to turn ticks into play time.
func tickMS(cfg config.ShooterConfig) int {
	if cfg.Schedule.TickMS > 0 {
		return cfg.Schedule.TickMS
	}
	return config.TickMSForRate(0)
}
