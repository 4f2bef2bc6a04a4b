package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-brawl/internal/core"
)

// KeyMap defines the key bindings for the setup form and the match screen.
type KeyMap struct {
	Start     key.Binding
	NextField key.Binding
	PrevField key.Binding
	Pause     key.Binding
	Restart   key.Binding
	Back      key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Start: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "fight"),
		),
		NextField: key.NewBinding(
			key.WithKeys("tab", "down"),
			key.WithHelp("tab", "next field"),
		),
		PrevField: key.NewBinding(
			key.WithKeys("shift+tab", "up"),
			key.WithHelp("S-tab", "prev field"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "rematch"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "stop"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// setupHelp lists the bindings shown under the setup form.
type setupHelp struct{ k KeyMap }

func (h setupHelp) ShortHelp() []key.Binding {
	return []key.Binding{h.k.Start, h.k.NextField, h.k.PrevField, h.k.ForceQuit}
}

func (h setupHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{h.ShortHelp()}
}

// matchHelp lists the bindings shown under the arena.
type matchHelp struct{ k KeyMap }

func (h matchHelp) ShortHelp() []key.Binding {
	return []key.Binding{h.k.Pause, h.k.Back, h.k.Restart, h.k.Quit}
}

func (h matchHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{h.ShortHelp()}
}

// KeyMapper translates Bubble Tea key messages to actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	keys KeyMap
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{keys: DefaultKeyMap()}
}

// Keys returns the bindings in use.
func (km *KeyMapper) Keys() KeyMap {
	return km.keys
}

// MapSetupKey translates a key pressed on the setup form. Printable keys
// belong to the text inputs there, so only ctrl+c quits.
func (km *KeyMapper) MapSetupKey(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, km.keys.ForceQuit):
		return core.ActionQuit
	case key.Matches(msg, km.keys.Start):
		return core.ActionStart
	case key.Matches(msg, km.keys.NextField):
		return core.ActionNextField
	case key.Matches(msg, km.keys.PrevField):
		return core.ActionPrevField
	}
	return core.ActionNone
}

// MapMatchKey translates a key pressed on the match screen.
func (km *KeyMapper) MapMatchKey(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, km.keys.ForceQuit), key.Matches(msg, km.keys.Quit):
		return core.ActionQuit
	case key.Matches(msg, km.keys.Pause):
		return core.ActionPause
	case key.Matches(msg, km.keys.Restart):
		return core.ActionRestart
	case key.Matches(msg, km.keys.Back):
		return core.ActionBack
	}
	return core.ActionNone
}
