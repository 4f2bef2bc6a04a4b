// Package tui provides the Bubble Tea integration for brawl.
// It handles the terminal UI loop, input mapping, and match orchestration.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a simulation tick. Gen identifies the tick loop
// that scheduled it; the model drops ticks from a superseded loop.
type TickMsg struct {
	At  time.Time
	Gen int
}

// tickCmd returns a Bubble Tea command that sends one tick message after a
// tick interval at the specified rate.
func tickCmd(tickRate, gen int) tea.Cmd {
	interval := time.Second / time.Duration(max(1, tickRate))
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{At: t, Gen: gen}
	})
}
