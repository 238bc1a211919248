package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-shooter/internal/config"
	"github.com/vovakirdan/tui-shooter/internal/core"
	"github.com/vovakirdan/tui-shooter/internal/engine"
	"github.com/vovakirdan/tui-shooter/internal/games/shooter"
	"github.com/vovakirdan/tui-shooter/internal/storage"
)

// Game is the interface the platform drives.
// Games contain pure logic with no Bubble Tea dependency; the platform
// handles input mapping, timing, and rendering.
type Game interface {
	// ID returns a unique identifier used for screenshots and logs.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset initializes or restarts the game.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current game state into the provided screen buffer.
	Render(dst *core.Screen)

	// State returns the current game state.
	State() core.GameState
}

// NewGame builds a shooter wired to the score store and logger.
// A nil store keeps scores in memory for the lifetime of the game.
func NewGame(cfg config.ShooterConfig, store *storage.Store, logger *log.Logger) *shooter.Game {
	opts := []engine.Option{engine.WithLogger(logger)}
	if store != nil {
		opts = append(opts, engine.WithStore(store), engine.WithAchievementSink(store))
	}
	return shooter.NewWithConfig(cfg, opts...)
}

// Options configures a game Model.
type Options struct {
	Store   *storage.Store // May be nil; runs are then not recorded
	Shooter config.ShooterConfig
	Player  string
	Logger  *log.Logger
}

// Model is the Bubble Tea model for running the game.
type Model struct {
	game       Game
	screen     *core.Screen
	opts       Options
	config     core.RuntimeConfig
	keys       *KeyMapper
	help       help.Model
	board      *ScoreboardModel
	inputFrame core.InputFrame
	gameState  core.GameState
	quitting   bool
	runSaved   bool // Whether the current run has been recorded
}

// helpRows is the number of terminal rows reserved for the help line.
const helpRows = 1

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game Game, opts Options, cfg core.RuntimeConfig) Model {
	if cfg.TickRate <= 0 {
		cfg.TickRate = opts.Shooter.Schedule.TickRate()
	}
	opts.Shooter.Schedule.TickMS = config.TickMSForRate(cfg.TickRate)
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, core.Max(cfg.ScreenH-helpRows, 1)),
		opts:       opts,
		config:     cfg,
		keys:       NewKeyMapper(),
		help:       h,
		inputFrame: core.NewInputFrame(),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.board != nil {
		return m.updateBoard(msg)
	}

	keys := m.keys.Keys()
	switch {
	case key.Matches(msg, keys.Scores):
		board := NewScoreboardModel(m.opts.Store, m.opts.Shooter, m.config.ScreenW, m.config.ScreenH)
		board.embedded = true
		m.board = &board
		return m, nil
	case key.Matches(msg, keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	}

	if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// updateBoard forwards messages to the open scoreboard.
func (m Model) updateBoard(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.board.Update(msg)
	board, ok := next.(ScoreboardModel)
	if !ok {
		return m, cmd
	}

	switch {
	case board.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case board.IsGoingBack():
		m.board = nil
		return m, nil
	}

	m.board = &board
	return m, cmd
}

// handleResize processes window resize events.
// The world is independent of the terminal size, so the session continues.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, core.Max(msg.Height-helpRows, 1))
	m.help.Width = msg.Width

	if m.board != nil {
		return m.updateBoard(msg)
	}
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	// The scoreboard pauses the game.
	if m.board != nil {
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	wasOver := m.gameState.GameOver
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if wasOver && !m.gameState.GameOver {
		m.runSaved = false
	}
	if m.gameState.GameOver && !m.runSaved {
		m.saveRun()
		m.runSaved = true
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// saveRun records the finished run. Failures are logged and the game continues.
func (m *Model) saveRun() {
	st := m.gameState
	m.opts.Logger.Info("run finished", "player", m.opts.Player, "score", st.Score, "kills", st.Kills, "ticks", st.Ticks)
	if m.opts.Store == nil || st.Score <= 0 {
		return
	}

	id, err := m.opts.Store.SaveRun(storage.Run{
		Player: m.opts.Player,
		Score:  st.Score,
		Kills:  st.Kills,
		Ticks:  st.Ticks,
		TickMS: m.opts.Shooter.Schedule.TickMS,
	})
	if err != nil {
		m.opts.Logger.Warn("could not save run", "error", err)
		return
	}
	m.opts.Logger.Debug("run saved", "id", id)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.opts.Logger.Warn("could not save screenshot", "error", err)
		return
	}
	dir := filepath.Join(home, ".shooter", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.opts.Logger.Warn("could not save screenshot", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.opts.Logger.Warn("could not save screenshot", "error", err)
		return
	}
	m.opts.Logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.board != nil {
		return m.board.View()
	}

	m.game.Render(m.screen)

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys.Keys()))
}

// Run starts the Bubble Tea program with the given game.
func Run(game Game, opts Options, cfg core.RuntimeConfig) error {
	model := NewModel(game, opts, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
