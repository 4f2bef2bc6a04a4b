package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-brawl/internal/core"
)

func TestMapSetupKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		expected core.Action
	}{
		{"enter starts", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionStart},
		{"tab next", tea.KeyMsg{Type: tea.KeyTab}, core.ActionNextField},
		{"down next", tea.KeyMsg{Type: tea.KeyDown}, core.ActionNextField},
		{"shift+tab prev", tea.KeyMsg{Type: tea.KeyShiftTab}, core.ActionPrevField},
		{"up prev", tea.KeyMsg{Type: tea.KeyUp}, core.ActionPrevField},
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"q is text", runeKey('q'), core.ActionNone},
		{"p is text", runeKey('p'), core.ActionNone},
		{"esc ignored", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := km.MapSetupKey(tc.msg); got != tc.expected {
				t.Errorf("MapSetupKey(%q) = %v, expected %v", tc.msg.String(), got, tc.expected)
			}
		})
	}
}

func TestMapMatchKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		expected core.Action
	}{
		{"q quits", runeKey('q'), core.ActionQuit},
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"p pauses", runeKey('p'), core.ActionPause},
		{"r restarts", runeKey('r'), core.ActionRestart},
		{"esc goes back", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack},
		{"enter ignored", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionNone},
		{"other rune ignored", runeKey('x'), core.ActionNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := km.MapMatchKey(tc.msg); got != tc.expected {
				t.Errorf("MapMatchKey(%q) = %v, expected %v", tc.msg.String(), got, tc.expected)
			}
		})
	}
}

func TestHelpBindingsHaveText(t *testing.T) {
	keys := NewKeyMapper().Keys()
	for _, b := range append(setupHelp{keys}.ShortHelp(), matchHelp{keys}.ShortHelp()...) {
		if b.Help().Key == "" || b.Help().Desc == "" {
			t.Errorf("binding %v has no help text", b.Keys())
		}
	}
}
