package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-shooter/internal/config"
	"github.com/vovakirdan/tui-shooter/internal/storage"
)

// Scoreboard layout constants
const (
	minWidthForSidebar = 80  // Minimum width to show the tab sidebar
	sidebarWidth       = 20  // Width of the tab sidebar
	maxRuns            = 100 // Max runs to load
)

// boardTab is one page of the scoreboard.
type boardTab int

const (
	tabRuns boardTab = iota
	tabAchievements
	tabCount
)

func (t boardTab) title() string {
	if t == tabAchievements {
		return "Achievements"
	}
	return "Top Runs"
}

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	NextTab key.Binding
	PrevTab key.Binding
	Back    key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextTab, k.PrevTab, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextTab, k.PrevTab},
		{k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("right/l", "next page"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("left/h", "prev page"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b", "tab"),
			key.WithHelp("esc/tab", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel is the Bubble Tea model for the scoreboard screen.
// It lists the best runs and every configured achievement.
type ScoreboardModel struct {
	store        *storage.Store
	achievements []config.AchievementConfig
	tickMS       int
	runs         []storage.Run
	unlocked     map[string]storage.UnlockedAchievement
	tab          boardTab
	table        table.Model
	help         help.Model
	keys         ScoreboardKeyMap
	width        int
	height       int
	embedded     bool // Hosted inside the game model; Back closes instead of quitting
	quitting     bool
	goingBack    bool
	showSidebar  bool
}

// NewScoreboardModel creates a new scoreboard model.
func NewScoreboardModel(store *storage.Store, cfg config.ShooterConfig, width, height int) ScoreboardModel {
	h := help.New()
	h.ShowAll = false

	m := ScoreboardModel{
		store:        store,
		achievements: cfg.Achievements,
		tickMS:       cfg.Schedule.TickMS,
		keys:         DefaultScoreboardKeyMap(),
		help:         h,
		width:        width,
		height:       height,
		showSidebar:  width >= minWidthForSidebar,
	}
	m.reload()
	return m
}

// reload fetches runs and achievements and rebuilds the table.
func (m *ScoreboardModel) reload() {
	m.runs = nil
	m.unlocked = make(map[string]storage.UnlockedAchievement)

	if m.store != nil {
		if runs, err := m.store.TopRuns(maxRuns); err == nil {
			m.runs = runs
		}
		if list, err := m.store.Achievements(); err == nil {
			for _, a := range list {
				m.unlocked[a.ID] = a
			}
		}
	}

	m.table = m.createTable()
	m.updateTableRows()
}

// tableWidth returns the width available to the table.
func (m *ScoreboardModel) tableWidth() int {
	w := m.width - 4 // Margins
	if m.showSidebar {
		w -= sidebarWidth + 3 // Sidebar + border + gap
	}
	return w
}

// createTable creates a new table with columns for the current tab.
func (m *ScoreboardModel) createTable() table.Model {
	var columns []table.Column
	switch m.tab {
	case tabAchievements:
		columns = []table.Column{
			{Title: "Achievement", Width: 16},
			{Title: "Goal", Width: 30},
			{Title: "Unlocked", Width: 14},
		}
		if w := m.tableWidth(); w > 70 {
			columns[1].Width = w - 36
		}
	default:
		columns = []table.Column{
			{Title: "Rank", Width: 6},
			{Title: "Player", Width: 12},
			{Title: "Score", Width: 8},
			{Title: "Kills", Width: 6},
			{Title: "Time", Width: 7},
			{Title: "Date", Width: 14},
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(m.height-8), // Leave room for header, help, and margins
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// updateTableRows fills the table for the current tab.
func (m *ScoreboardModel) updateTableRows() {
	var rows []table.Row
	switch m.tab {
	case tabAchievements:
		rows = make([]table.Row, len(m.achievements))
		for i, a := range m.achievements {
			status := "locked"
			if u, ok := m.unlocked[a.ID]; ok {
				status = u.UnlockedAt.Local().Format("Jan 02 15:04")
			}
			rows[i] = table.Row{a.Name, a.Description, status}
		}
	default:
		rows = make([]table.Row, len(m.runs))
		for i, r := range m.runs {
			player := r.Player
			if player == "" {
				player = "-"
			}
			rows[i] = table.Row{
				fmt.Sprintf("#%d", i+1),
				player,
				fmt.Sprintf("%d", r.Score),
				fmt.Sprintf("%d", r.Kills),
				formatDuration(r.Duration(m.tickMS)),
				r.CreatedAt.Format("Jan 02 15:04"),
			}
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// formatDuration renders a play time as m:ss.
func formatDuration(d time.Duration) string {
	secs := int(d / time.Second)
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}

func (m *ScoreboardModel) switchTab(delta int) {
	m.tab = boardTab((int(m.tab) + delta + int(tabCount)) % int(tabCount))
	m.table = m.createTable()
	m.updateTableRows()
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			if m.embedded {
				return m, nil
			}
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextTab):
			m.switchTab(1)
			return m, nil

		case key.Matches(msg, m.keys.PrevTab):
			m.switchTab(-1)
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showSidebar = m.width >= minWidthForSidebar
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || (m.goingBack && !m.embedded) {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)

	title := fmt.Sprintf("SIDE SHOOTER - %s", strings.ToUpper(m.tab.title()))
	b.WriteString(titleStyle.Render(centerText(title, m.width)))
	b.WriteString("\n\n")

	if m.showSidebar {
		b.WriteString(m.renderWideLayout())
	} else {
		b.WriteString(m.renderNarrowLayout())
	}

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderWideLayout renders the scoreboard with a sidebar listing the pages.
func (m ScoreboardModel) renderWideLayout() string {
	sidebarStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Width(sidebarWidth).
		Padding(0, 1)

	var sidebar strings.Builder
	sidebar.WriteString("Pages\n")
	sidebar.WriteString(strings.Repeat("-", sidebarWidth-4))
	sidebar.WriteString("\n")

	for t := boardTab(0); t < tabCount; t++ {
		cursor := "  "
		style := lipgloss.NewStyle()
		if t == m.tab {
			cursor = "> "
			style = style.Bold(true).Foreground(lipgloss.Color("229"))
		}
		sidebar.WriteString(style.Render(cursor + t.title()))
		sidebar.WriteString("\n")
	}

	if stats := m.stats(); stats != "" {
		sidebar.WriteString("\n")
		sidebar.WriteString(stats)
	}

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	return lipgloss.JoinHorizontal(lipgloss.Top,
		sidebarStyle.Render(sidebar.String()),
		"  ",
		tableStyle.Render(m.renderTableContent()),
	)
}

// renderNarrowLayout renders the scoreboard with page tabs above the table.
func (m ScoreboardModel) renderNarrowLayout() string {
	var b strings.Builder

	tabStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	activeTabStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Padding(0, 1)

	tabs := make([]string, 0, tabCount)
	for t := boardTab(0); t < tabCount; t++ {
		if t == m.tab {
			tabs = append(tabs, activeTabStyle.Render(t.title()))
		} else {
			tabs = append(tabs, tabStyle.Render(" "+t.title()+" "))
		}
	}
	b.WriteString(centerText(strings.Join(tabs, " "), m.width))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	b.WriteString(centerText(tableStyle.Render(m.renderTableContent()), m.width))

	return b.String()
}

// stats renders aggregate run statistics for the sidebar.
func (m ScoreboardModel) stats() string {
	if m.store == nil {
		return ""
	}
	s, err := m.store.Stats()
	if err != nil || s.Runs == 0 {
		return ""
	}
	return fmt.Sprintf("Runs: %d\nBest: %d\nAvg:  %.0f\nKills: %d", s.Runs, s.HighScore, s.AvgScore, s.TotalKills)
}

// renderTableContent renders the table or empty message.
func (m ScoreboardModel) renderTableContent() string {
	if m.tab == tabRuns && len(m.runs) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		return emptyStyle.Render("No runs recorded yet.\nPlay a game to set a high score!")
	}

	return m.table.View()
}

// IsGoingBack returns true if the user closed the scoreboard.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// centerText centers text within the given width.
func centerText(text string, width int) string {
	textWidth := lipgloss.Width(text)
	if textWidth >= width {
		return text
	}
	padding := (width - textWidth) / 2
	return strings.Repeat(" ", padding) + text
}

// RunScoreboard runs the scoreboard screen as a standalone program.
func RunScoreboard(store *storage.Store, cfg config.ShooterConfig, width, height int) error {
	model := NewScoreboardModel(store, cfg, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
