package config

import (
	_ "embed"
)

//go:embed defaults/shooter.yaml
var defaultShooterYAML []byte

// DefaultShooterConfig returns the default shooter configuration.
// It mirrors defaults/shooter.yaml and is used when the embedded YAML
// cannot be parsed.
func DefaultShooterConfig() ShooterConfig {
	return ShooterConfig{
		World: WorldConfig{
			Width:  1280,
			Height: 720,
		},
		Player: PlayerConfig{
			StartX:      100,
			Width:       100,
			Height:      100,
			MaxHealth:   5,
			MoveSpeed:   10,
			JumpImpulse: 12,
		},
		Physics: PhysicsConfig{
			Gravity:     0.5,
			BulletSpeed: 11,
			EnemySpeed:  2.5,
		},
		Bullets: BulletConfig{
			Width:    50,
			Height:   50,
			OffsetX:  40,
			OffsetY:  35,
			Lifetime: 100,
		},
		EnemyBullets: EnemyBulletConfig{
			Width:    20,
			Height:   20,
			Lifetime: 100,
		},
		Enemies: EnemyConfig{
			Width:  90,
			Height: 90,
		},
		Explosions: ExplosionConfig{
			Width:           40,
			Height:          40,
			KillLifetime:    20,
			ContactLifetime: 8,
		},
		Waves: WavesConfig{
			Initial: []EnemySpawn{
				{X: 700, HP: 3},
				{X: 900, HP: 5},
			},
			Respawn: []EnemySpawn{
				{X: 100, HP: 3},
				{X: 300, HP: 4},
				{X: 500, HP: 5},
			},
		},
		Scoring: ScoringConfig{
			KillAward:    100,
			BestScoreKey: "best_score",
		},
		Schedule: ScheduleConfig{
			TickMS:       40,
			EnemyShootMS: 2000,
			WaveCheckMS:  50,
		},
		Achievements: []AchievementConfig{
			{ID: "first_blood", Name: "First Blood", Description: "Destroy your first enemy", Kind: AchievementKills, Threshold: 1},
			{ID: "sharpshooter", Name: "Sharpshooter", Description: "Destroy 10 enemies in one run", Kind: AchievementKills, Threshold: 10},
			{ID: "exterminator", Name: "Exterminator", Description: "Destroy 50 enemies in one run", Kind: AchievementKills, Threshold: 50},
			{ID: "four_digits", Name: "Four Digits", Description: "Reach a score of 1000", Kind: AchievementScore, Threshold: 1000},
			{ID: "ace", Name: "Ace", Description: "Reach a score of 5000", Kind: AchievementScore, Threshold: 5000},
			{ID: "survivor", Name: "Survivor", Description: "Survive for one minute", Kind: AchievementSurvival, Threshold: 60},
			{ID: "veteran", Name: "Veteran", Description: "Survive for five minutes", Kind: AchievementSurvival, Threshold: 300},
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  ProgressScore,
				MaxAt: 5000,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 1.0,
			},
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultShooterYAML
}
