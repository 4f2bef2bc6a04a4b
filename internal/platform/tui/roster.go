package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-brawl/internal/storage"
)

// RosterStore is the subset of the profile store the browser needs.
type RosterStore interface {
	Profiles() ([]storage.Profile, error)
	RemoveProfile(name string) (bool, error)
}

// RosterKeyMap defines the key bindings for the roster browser.
type RosterKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Pick   key.Binding
	Delete key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k RosterKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Pick, k.Delete, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k RosterKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Pick, k.Delete, k.Quit},
	}
}

// DefaultRosterKeyMap returns default key bindings.
func DefaultRosterKeyMap() RosterKeyMap {
	return RosterKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Pick: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "pick fighter"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d", "delete"),
			key.WithHelp("d", "delete"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// RosterModel is the Bubble Tea model for browsing saved fighter profiles.
// Picking two profiles ends the browser with them as the match lineup.
type RosterModel struct {
	store    RosterStore
	profiles []storage.Profile
	picked   []storage.Profile
	table    table.Model
	help     help.Model
	keys     RosterKeyMap
	width    int
	height   int
	status   string
	quitting bool
}

// NewRosterModel creates a roster browser.
func NewRosterModel(store RosterStore, width, height int) RosterModel {
	h := help.New()
	h.ShowAll = false

	m := RosterModel{
		store:  store,
		keys:   DefaultRosterKeyMap(),
		help:   h,
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	m.loadProfiles()
	return m
}

// createTable creates a new table with appropriate columns.
func (m *RosterModel) createTable() table.Model {
	imageWidth := max(12, min(40, m.width-4-24-18))
	columns := []table.Column{
		{Title: "Name", Width: 24},
		{Title: "Image", Width: imageWidth},
		{Title: "Added", Width: 14},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(3, m.height-8)),
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

// loadProfiles refreshes the table from the store.
func (m *RosterModel) loadProfiles() {
	m.profiles = nil
	if m.store != nil {
		profiles, err := m.store.Profiles()
		if err != nil {
			m.status = fmt.Sprintf("cannot load roster: %v", err)
		} else {
			m.profiles = profiles
		}
	}

	rows := make([]table.Row, len(m.profiles))
	for i, p := range m.profiles {
		image := p.Image
		if image == "" {
			image = "-"
		}
		added := ""
		if !p.CreatedAt.IsZero() {
			added = p.CreatedAt.Format("Jan 02 15:04")
		}
		rows[i] = table.Row{p.Name, image, added}
	}
	m.table.SetRows(rows)
	if m.table.Cursor() >= len(rows) {
		m.table.SetCursor(max(0, len(rows)-1))
	}
}

// Init initializes the roster model.
func (m RosterModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the roster browser.
func (m RosterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Pick):
			p, ok := m.selected()
			if !ok {
				return m, nil
			}
			m.picked = append(m.picked, p)
			if len(m.picked) == 2 {
				return m, tea.Quit
			}
			m.status = fmt.Sprintf("Fighter 1: %s. Pick fighter 2.", p.Name)
			return m, nil

		case key.Matches(msg, m.keys.Delete):
			p, ok := m.selected()
			if !ok || m.store == nil {
				return m, nil
			}
			if _, err := m.store.RemoveProfile(p.Name); err != nil {
				m.status = fmt.Sprintf("cannot delete %s: %v", p.Name, err)
			} else {
				m.status = fmt.Sprintf("Deleted %s.", p.Name)
			}
			m.loadProfiles()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.loadProfiles()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m RosterModel) selected() (storage.Profile, bool) {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.profiles) {
		return storage.Profile{}, false
	}
	return m.profiles[i], true
}

// View renders the roster browser.
func (m RosterModel) View() string {
	if m.quitting || len(m.picked) == 2 {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)
	b.WriteString(titleStyle.Render(centerText("ROSTER", m.width)))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	if len(m.profiles) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		b.WriteString(tableStyle.Render(emptyStyle.Render("No fighters saved yet.\nAdd one with: brawl roster add <name> [image]")))
	} else {
		b.WriteString(tableStyle.Render(m.table.View()))
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Render(m.status))
	}

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// Picked returns the profiles chosen for a match, in pick order.
func (m RosterModel) Picked() []storage.Profile {
	return m.picked
}

// RunRoster runs the roster browser. It returns the two picked profiles, or
// nil if the user quit first.
func RunRoster(store RosterStore, width, height int) ([]storage.Profile, error) {
	p := tea.NewProgram(
		NewRosterModel(store, width, height),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, err
	}

	m, ok := finalModel.(RosterModel)
	if !ok || len(m.picked) < 2 {
		return nil, nil
	}
	return m.picked, nil
}
