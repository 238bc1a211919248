package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadShooter loads the shooter configuration.
// Search order: customPath -> ~/.shooter/configs/shooter.yaml -> ./configs/shooter.yaml -> embedded default
//
// Files are decoded on top of the defaults, so a file only needs the keys it
// changes. Lists (waves, achievements) are replaced wholesale when present.
func LoadShooter(customPath string) (ShooterConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return ShooterConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parseOverDefaults(data)
		if err != nil {
			return ShooterConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("shooter.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parseOverDefaults(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/shooter.yaml"); err == nil {
		if cfg, err := parseOverDefaults(data); err == nil {
			return cfg, nil
		}
	}

	return embeddedDefault(), nil
}

// parseOverDefaults decodes data on top of the embedded default and validates the result.
func parseOverDefaults(data []byte) (ShooterConfig, error) {
	cfg := embeddedDefault()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return ShooterConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return ShooterConfig{}, err
	}
	return cfg, nil
}

func embeddedDefault() ShooterConfig {
	var cfg ShooterConfig
	if err := yaml.Unmarshal(defaultShooterYAML, &cfg); err != nil {
		return DefaultShooterConfig() // Fallback to hardcoded if embed fails
	}
	return cfg
}

// Marshal renders a config back to YAML.
func Marshal(cfg ShooterConfig) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".shooter", "configs", filename)
}

// ApplyShooterPreset modifies the config based on a difficulty preset.
func ApplyShooterPreset(cfg *ShooterConfig, preset DifficultyPreset) {
	switch preset {
	case "":
		return
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
		return
	}

	cfg.Difficulty.Enabled = true
	cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)

	switch preset {
	case DifficultyEasy:
		cfg.Player.MaxHealth = 7
	case DifficultyHard:
		cfg.Player.MaxHealth = 3
	}
}
