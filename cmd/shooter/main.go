// shooter is a side-scrolling shooter played in the terminal.
//
// Usage:
//
//	shooter play             - Play a session
//	shooter serve            - Start SSH server for remote play
//	shooter scores           - Show best runs, stats and achievements
//	shooter config           - Print the effective game config
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: from the config, 25)
//	--db <path>           - Set database path (default: ~/.shooter/scores.db)
//	--config <path>       - Use a custom game config YAML
//	--difficulty <preset> - easy, normal, hard or fixed
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-shooter/internal/config"
	"github.com/vovakirdan/tui-shooter/internal/games/shooter"
)

var (
	// Global flags
	flagFPS        int
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "shooter",
	Short: "Side Shooter - a side-scrolling shooter in your terminal",
	Long: `Side Shooter is a terminal side-scroller: move, jump and shoot your way
through endless enemy waves while they shoot back.

Available commands:
  play     - Play a session
  serve    - Start SSH server for remote play
  scores   - View best runs and achievements
  config   - Print the effective game config

Examples:
  shooter play
  shooter play --difficulty hard
  shooter serve --ssh :2222
  shooter scores
  shooter config > ~/.shooter/configs/shooter.yaml`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate in ticks per second (default: from schedule.tick_ms)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.shooter/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// loadGameConfig resolves the game config from the global flags.
func loadGameConfig() (config.ShooterConfig, error) {
	if _, err := config.ParsePreset(flagDifficulty); err != nil {
		return config.ShooterConfig{}, err
	}
	if flagFPS < 0 {
		return config.ShooterConfig{}, fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}

	shooter.SetConfigPath(flagConfig)
	shooter.SetDifficultyPreset(flagDifficulty)

	cfg, err := shooter.LoadConfig()
	if err != nil && flagConfig != "" {
		return config.ShooterConfig{}, fmt.Errorf("loading config: %w", err)
	}
	if flagFPS > 0 {
		cfg.Schedule.TickMS = config.TickMSForRate(flagFPS)
	}
	return cfg, nil
}

// tickRate returns the simulation rate for cfg, honoring --fps.
func tickRate(cfg config.ShooterConfig) int {
	if flagFPS > 0 {
		return flagFPS
	}
	return cfg.Schedule.TickRate()
}
