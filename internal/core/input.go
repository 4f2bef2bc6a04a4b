package core

// Action is a semantic user intent, abstracted from physical key presses.
type Action int

const (
	ActionNone      Action = iota
	ActionStart            // Enter - start the match from the setup form
	ActionNextField        // Tab, Down - next setup field
	ActionPrevField        // Shift+Tab, Up - previous setup field
	ActionPause            // P - pause/unpause the running match
	ActionRestart          // R - back to setup after the match
	ActionBack             // Esc - leave a sub-screen
	ActionQuit             // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionStart:
		return "Start"
	case ActionNextField:
		return "NextField"
	case ActionPrevField:
		return "PrevField"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
