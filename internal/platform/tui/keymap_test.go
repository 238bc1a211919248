package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-shooter/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		expected core.Action
		quit     bool
	}{
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft, false},
		{"a is unbound", runeKey('a'), core.ActionNone, false},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight, false},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionJump, false},
		{"up arrow", tea.KeyMsg{Type: tea.KeyUp}, core.ActionJump, false},
		{"s", runeKey('s'), core.ActionShoot, false},
		{"d", runeKey('d'), core.ActionToggleDefense, false},
		{"p", runeKey('p'), core.ActionPause, false},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionPause, false},
		{"r", runeKey('r'), core.ActionRestart, false},
		{"q", runeKey('q'), core.ActionQuit, true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound", runeKey('z'), core.ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, quit := km.MapKey(tt.msg)
			if action != tt.expected {
				t.Errorf("MapKey(%s) action = %v, expected %v", tt.name, action, tt.expected)
			}
			if quit != tt.quit {
				t.Errorf("MapKey(%s) quit = %v, expected %v", tt.name, quit, tt.quit)
			}
		})
	}
}

func TestMapKeyToFrame(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	if km.MapKeyToFrame(runeKey('s'), &frame) {
		t.Error("MapKeyToFrame(s) reported quit")
	}
	km.MapKeyToFrame(tea.KeyMsg{Type: tea.KeyLeft}, &frame)

	if !frame.Has(core.ActionShoot) || !frame.Has(core.ActionLeft) {
		t.Errorf("frame = %v, expected Shoot and Left", frame.Actions)
	}
	if frame.Has(core.ActionJump) {
		t.Error("frame has Jump, expected not set")
	}

	if !km.MapKeyToFrame(runeKey('q'), &frame) {
		t.Error("MapKeyToFrame(q) did not report quit")
	}
}

func TestKeyMapHelp(t *testing.T) {
	keys := DefaultGameKeyMap()
	if len(keys.ShortHelp()) == 0 {
		t.Error("ShortHelp() is empty")
	}
	total := 0
	for _, col := range keys.FullHelp() {
		total += len(col)
	}
	if total != 10 {
		t.Errorf("FullHelp() has %d bindings, expected 10", total)
	}
}
