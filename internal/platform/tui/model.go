package tui

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-brawl/internal/core"
	"github.com/vovakirdan/tui-brawl/internal/fight"
)

// Phase is the screen the model is showing.
type Phase int

const (
	PhaseSetup Phase = iota // fighter setup form
	PhaseMatch              // arena, running or finished
)

// Options configures a Model.
type Options struct {
	Config core.RuntimeConfig
	Setups [2]fight.FighterSetup // form prefill
	Clock  fight.Clock           // nil uses the system clock
	Sink   fight.Sink            // optional observer of every frame
}

// Model is the Bubble Tea model for a brawl session: setup form, then the
// live match, then back to setup on rematch.
type Model struct {
	config core.RuntimeConfig
	keys   *KeyMapper
	help   help.Model
	form   SetupForm
	match  *fight.Match
	clock  *fight.PausableClock
	screen *core.Screen
	layout Layout
	frame  fight.Frame
	phase  Phase

	// gen identifies the live tick loop. Bumping it orphans any tick
	// already scheduled, which is how end, pause and restart stop the loop.
	gen      int
	quitting bool
}

// NewModel creates a model showing the setup form.
func NewModel(opts Options) Model {
	cfg := opts.Config
	def := core.DefaultConfig()
	if cfg.TickRate <= 0 {
		cfg.TickRate = def.TickRate
	}
	if cfg.CellWidth <= 0 || cfg.CellHeight <= 0 {
		cfg.CellWidth, cfg.CellHeight = def.CellWidth, def.CellHeight
	}

	clock := opts.Clock
	if clock == nil {
		clock = fight.NewSystemClock()
	}

	var matchOpts []fight.Option
	if opts.Sink != nil {
		matchOpts = append(matchOpts, fight.WithSink(opts.Sink))
	}

	m := Model{
		config: cfg,
		keys:   NewKeyMapper(),
		help:   help.New(),
		form:   NewSetupForm(opts.Setups),
		match:  fight.NewMatch(fight.NewRand(cfg.Seed), matchOpts...),
		clock:  fight.NewPausableClock(clock),
		screen: core.NewScreen(0, 0),
	}
	m.resize(cfg.ScreenW, cfg.ScreenH)
	return m
}

// Phase returns the current screen.
func (m Model) Phase() Phase {
	return m.phase
}

// Frame returns the last frame produced by the match.
func (m Model) Frame() fight.Frame {
	return m.frame
}

// Gen returns the current tick loop generation.
func (m Model) Gen() int {
	return m.gen
}

// Paused reports whether the running match is paused.
func (m Model) Paused() bool {
	return m.clock.Paused()
}

// Init starts the cursor blink on the setup form.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		if m.phase == PhaseSetup {
			return m.handleSetupKey(msg)
		}
		return m.handleMatchKey(msg)

	case TickMsg:
		return m.handleTick(msg)
	}

	if m.phase == PhaseSetup {
		var cmd tea.Cmd
		m.form, cmd = m.form.Update(msg)
		return m, cmd
	}
	return m, nil
}

// resize updates the screen buffer. A running match keeps its arena; only
// the next match picks up the new size.
func (m *Model) resize(width, height int) {
	m.config.ScreenW = width
	m.config.ScreenH = height
	screenH := max(0, height-1) // last row holds the help line
	m.screen.Resize(width, screenH)
	m.layout = NewLayout(width, screenH, m.config.CellWidth, m.config.CellHeight)
	m.help.Width = width
}

func (m Model) handleSetupKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.MapSetupKey(msg) {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionStart:
		return m.startMatch()
	case core.ActionNextField:
		return m, m.form.Move(1)
	case core.ActionPrevField:
		return m, m.form.Move(-1)
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.Update(msg)
	return m, cmd
}

// startMatch sizes the arena from the terminal and starts the tick loop.
func (m Model) startMatch() (tea.Model, tea.Cmd) {
	arena := m.layout.ArenaSize()
	if _, err := m.match.Start(m.form.Setups(), arena, m.clock.Now()); err != nil {
		if errors.Is(err, fight.ErrInvalidArena) {
			m.form.SetError(fmt.Sprintf("Terminal too small for the arena (%.0fx%.0f px, need %.0fx%.0f).",
				arena.Width, arena.Height, fight.MinArenaWidth, fight.MinArenaHeight))
		} else {
			m.form.SetError(err.Error())
		}
		return m, nil
	}

	m.phase = PhaseMatch
	m.frame = m.match.Frame()
	m.gen++
	return m, tickCmd(m.config.TickRate, m.gen)
}

func (m Model) handleMatchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.MapMatchKey(msg) {
	case core.ActionQuit:
		if m.match.State() == fight.StateRunning {
			//nolint:errcheck // match is running, Stop cannot fail here
			m.match.Stop()
		}
		m.quitting = true
		return m, tea.Quit

	case core.ActionPause:
		return m.togglePause()

	case core.ActionBack:
		if m.match.State() == fight.StateRunning {
			//nolint:errcheck // match is running, Stop cannot fail here
			m.match.Stop()
			m.clock.Resume()
			m.frame = m.match.Frame()
			m.gen++
		}
		return m, nil

	case core.ActionRestart:
		if m.match.State() != fight.StateEnded {
			return m, nil
		}
		m.match.Restart()
		m.phase = PhaseSetup
		m.frame = m.match.Frame()
		m.gen++
		return m, textinput.Blink
	}
	return m, nil
}

func (m Model) togglePause() (tea.Model, tea.Cmd) {
	if m.match.State() != fight.StateRunning {
		return m, nil
	}
	if m.clock.Paused() {
		m.clock.Resume()
		return m, tickCmd(m.config.TickRate, m.gen)
	}
	m.clock.Pause()
	m.gen++
	return m, nil
}

// handleTick advances the match one step and schedules the next tick while
// the match is running. Ticks from an older loop are dropped.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if msg.Gen != m.gen || m.phase != PhaseMatch || m.clock.Paused() {
		return m, nil
	}

	res := m.match.Tick(m.clock.Now())
	m.frame = res.Frame
	if res.Ended() {
		return m, nil
	}
	return m, tickCmd(m.config.TickRate, m.gen)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	if m.phase == PhaseSetup {
		return m.form.View(m.config.ScreenW) + "\n\n" +
			helpStyle.Render(m.help.View(setupHelp{m.keys.Keys()}))
	}

	DrawFrame(m.screen, m.layout, m.frame)
	if m.clock.Paused() {
		mid := m.layout.Box.Y + m.layout.Box.H/2
		m.screen.DrawTextCentered(mid, " PAUSED ", core.ColorOrange)
	}
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(matchHelp{m.keys.Keys()}))
}

// Run starts the Bubble Tea program with the given options.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
