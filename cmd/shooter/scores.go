package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-shooter/internal/platform/tui"
	"github.com/vovakirdan/tui-shooter/internal/storage"
)

var (
	flagLimit       int
	flagInteractive bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show best runs, stats and achievements",
	Long: `Display the best runs, aggregate statistics and unlocked achievements.

Examples:
  shooter scores
  shooter scores --limit 25
  shooter scores --interactive`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Open the interactive scoreboard")
}

func runScores(_ *cobra.Command, _ []string) error {
	gameCfg, err := loadGameConfig()
	if err != nil {
		return err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if flagInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		return tui.RunScoreboard(store, gameCfg, width, height)
	}

	runs, err := store.TopRuns(flagLimit)
	if err != nil {
		return fmt.Errorf("retrieving runs: %w", err)
	}

	fmt.Println("Best Runs - Side Shooter")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'shooter play' to set the first high score!")
		return nil
	}

	fmt.Printf("  %-4s  %-12s  %-8s  %-6s  %s\n", "Rank", "Player", "Score", "Kills", "Date")
	fmt.Printf("  %-4s  %-12s  %-8s  %-6s  %s\n", "----", "------", "-----", "-----", "----")
	for i, r := range runs {
		fmt.Printf("  %-4d  %-12s  %-8d  %-6d  %s\n", i+1, r.Player, r.Score, r.Kills, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	if stats, err := store.Stats(); err == nil {
		fmt.Println()
		fmt.Printf("Runs: %d  Best: %d  Average: %.0f  Total kills: %d\n",
			stats.Runs, stats.HighScore, stats.AvgScore, stats.TotalKills)
	}
	if best, ok, err := store.GetInt(gameCfg.Scoring.BestScoreKey); err == nil && ok {
		fmt.Printf("Best score on record: %d\n", best)
	}

	unlocked, err := store.Achievements()
	if err != nil {
		return fmt.Errorf("retrieving achievements: %w", err)
	}
	names := make(map[string]string, len(gameCfg.Achievements))
	for _, a := range gameCfg.Achievements {
		names[a.ID] = a.Name
	}

	fmt.Println()
	fmt.Printf("Achievements (%d/%d)\n", len(unlocked), len(gameCfg.Achievements))
	for _, a := range unlocked {
		name := names[a.ID]
		if name == "" {
			name = a.ID
		}
		fmt.Printf("  %-16s  %s\n", name, a.UnlockedAt.Local().Format("2006-01-02 15:04"))
	}
	return nil
}
