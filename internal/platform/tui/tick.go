// Package tui provides the Bubble Tea integration for the shooter.
// It runs the terminal game loop and hosts sessions over SSH.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-shooter/internal/core"
)

// TickMsg advances the simulation by one fixed step.
type TickMsg time.Time

// tickInterval converts a tick rate into the wall-clock step length.
// Non-positive rates use the default rate.
func tickInterval(tickRate int) time.Duration {
	if tickRate <= 0 {
		tickRate = core.DefaultConfig().TickRate
	}
	return time.Second / time.Duration(tickRate)
}

func tickCmd(tickRate int) tea.Cmd {
	return tea.Tick(tickInterval(tickRate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
