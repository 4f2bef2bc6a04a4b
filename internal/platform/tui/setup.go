package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-brawl/internal/fight"
)

// Setup form fields, in focus order.
const (
	fieldName1 = iota
	fieldImage1
	fieldName2
	fieldImage2
	fieldCount
)

const (
	nameLimit  = 24
	imageLimit = 256
)

// SetupForm collects the name and image reference for both fighters.
type SetupForm struct {
	inputs [fieldCount]textinput.Model
	focus  int
	err    string
}

// NewSetupForm creates a form prefilled with the given setups.
func NewSetupForm(prefill [2]fight.FighterSetup) SetupForm {
	var f SetupForm
	for i := range f.inputs {
		in := textinput.New()
		in.Prompt = ""
		in.Width = 32
		player := i/2 + 1
		if i%2 == 0 {
			in.CharLimit = nameLimit
			in.Placeholder = fight.DefaultName(player)
			in.SetValue(prefill[i/2].Name)
		} else {
			in.CharLimit = imageLimit
			in.Placeholder = "image path or URL (optional)"
			in.SetValue(prefill[i/2].ImageRef)
		}
		f.inputs[i] = in
	}
	f.inputs[fieldName1].Focus()
	return f
}

// Setups returns the fighter setups as typed. Empty names are left empty;
// the match substitutes the defaults.
func (f SetupForm) Setups() [2]fight.FighterSetup {
	return [2]fight.FighterSetup{
		{
			Name:     strings.TrimSpace(f.inputs[fieldName1].Value()),
			ImageRef: strings.TrimSpace(f.inputs[fieldImage1].Value()),
		},
		{
			Name:     strings.TrimSpace(f.inputs[fieldName2].Value()),
			ImageRef: strings.TrimSpace(f.inputs[fieldImage2].Value()),
		},
	}
}

// Focused returns the index of the focused field.
func (f SetupForm) Focused() int {
	return f.focus
}

// SetError shows a message under the form until the next edit.
func (f *SetupForm) SetError(msg string) {
	f.err = msg
}

// Move shifts focus by delta fields, wrapping around.
func (f *SetupForm) Move(delta int) tea.Cmd {
	f.inputs[f.focus].Blur()
	f.focus = ((f.focus+delta)%fieldCount + fieldCount) % fieldCount
	return f.inputs[f.focus].Focus()
}

// Update forwards a message to the focused input.
func (f SetupForm) Update(msg tea.Msg) (SetupForm, tea.Cmd) {
	if _, ok := msg.(tea.KeyMsg); ok {
		f.err = ""
	}
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return f, cmd
}

// View renders the form.
func (f SetupForm) View(width int) string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)
	labelStyle := lipgloss.NewStyle().Width(8).Foreground(lipgloss.Color("245"))
	errStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("9"))

	panels := make([]string, 2)
	for p := range 2 {
		color := lipgloss.Color("9")
		if p == 1 {
			color = lipgloss.Color("12")
		}
		header := lipgloss.NewStyle().Bold(true).Foreground(color).Render(fight.DefaultName(p + 1))

		var b strings.Builder
		b.WriteString(header)
		b.WriteString("\n\n")
		b.WriteString(labelStyle.Render("Name"))
		b.WriteString(f.inputs[p*2].View())
		b.WriteString("\n")
		b.WriteString(labelStyle.Render("Image"))
		b.WriteString(f.inputs[p*2+1].View())

		border := lipgloss.Color("240")
		if f.focus/2 == p {
			border = color
		}
		panels[p] = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(border).
			Padding(0, 1).
			Width(44).
			Render(b.String())
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(centerText("BRAWL - choose your fighters", width)))
	b.WriteString("\n")
	if width >= 2*48 {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, panels[0], "  ", panels[1]))
	} else {
		b.WriteString(lipgloss.JoinVertical(lipgloss.Left, panels[0], panels[1]))
	}
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color("245")).
		Render("Stats are rolled when the match starts."))
	if f.err != "" {
		b.WriteString("\n")
		b.WriteString(errStyle.Render(f.err))
	}
	return b.String()
}
