package main

import (
	"fmt"
	"io"
	"os"
	"os/user"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-shooter/internal/core"
	"github.com/vovakirdan/tui-shooter/internal/platform/tui"
	"github.com/vovakirdan/tui-shooter/internal/storage"
)

var (
	flagLogFile string
	flagDebug   bool
	flagName    string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a session",
	Long: `Start a session in the terminal.

Controls:
  Left, Right    - Move
  Space/Up/W     - Jump
  S              - Shoot
  D              - Toggle defense (blocks enemy bullets and contact)
  P/Esc          - Pause
  R              - Restart (after game over)
  Tab            - Scoreboard
  Ctrl+S         - Screenshot
  Q/Ctrl+C       - Quit

Difficulty options:
  easy   - Extra health, enemies speed up slowly with score
  normal - Enemies start at 30% of the speed-up and progress with score
  hard   - Less health, enemies start at 70% of the speed-up
  fixed  - No progression

Examples:
  shooter play
  shooter play --difficulty hard
  shooter play --config ./my-shooter.yaml
  shooter play --log-file ./shooter.log --debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (the game owns the terminal)")
	playCmd.Flags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")
	playCmd.Flags().StringVar(&flagName, "name", "", "Player name recorded with runs (default: current user)")
}

func runPlay(_ *cobra.Command, _ []string) error {
	gameCfg, err := loadGameConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := openLogger(flagLogFile, flagDebug)
	if err != nil {
		return err
	}
	defer closeLog()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: tickRate(gameCfg),
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	game := tui.NewGame(gameCfg, store, logger)
	return tui.Run(game, tui.Options{
		Store:   store,
		Shooter: gameCfg,
		Player:  playerName(),
		Logger:  logger,
	}, cfg)
}

// openLogger returns a file logger, or a discarding one when path is empty.
func openLogger(path string, debug bool) (*log.Logger, func(), error) {
	if path == "" {
		return log.New(io.Discard), func() {}, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "shooter",
	})
	if debug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, func() { f.Close() }, nil
}

func playerName() string {
	if flagName != "" {
		return flagName
	}
	if u, err := user.Current(); err == nil {
		return u.Username
	}
	return ""
}
