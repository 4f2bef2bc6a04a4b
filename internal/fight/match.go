// Package fight implements the exhibition fight simulation: fighter creation,
// physics, AI pursuit, collision and combat resolution, and the match state
// machine that orders them each tick.
//
// The package is pure. Randomness, time and presentation are injected through
// Rand, the timestamps passed to Start and Tick, and Sink.
package fight

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Lifecycle errors.
var (
	ErrMatchNotInSetup = errors.New("fight: match is not in setup")
	ErrMatchNotRunning = errors.New("fight: match is not running")
	ErrInvalidArena    = errors.New("fight: arena too small for two fighters")
)

// State is the match lifecycle state.
type State int

const (
	StateSetup State = iota
	StateRunning
	StateEnded
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateSetup:
		return "setup"
	case StateRunning:
		return "running"
	case StateEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// EndReason explains why a match ended.
type EndReason int

const (
	ReasonNone EndReason = iota
	ReasonKnockout
	ReasonRingOut
	ReasonStopped
)

// String returns a human-readable name for the reason.
func (r EndReason) String() string {
	switch r {
	case ReasonKnockout:
		return "knockout"
	case ReasonRingOut:
		return "ring-out"
	case ReasonStopped:
		return "stopped"
	default:
		return "none"
	}
}

// FighterSetup is one fighter's configuration from the input collector.
type FighterSetup struct {
	Name     string
	ImageRef string
}

// DefaultName is the placeholder label for a fighter with an empty name.
func DefaultName(id int) string {
	if id == 2 {
		return "Fighter 2"
	}
	return "Fighter 1"
}

// Frame is the state handed to the presentation sink after each tick.
type Frame struct {
	MatchID  string
	State    State
	Tick     uint64
	Elapsed  time.Duration
	Message  string
	Fighters [2]FighterSnapshot
	Winner   int // fighter ID, 0 if none
	Reason   EndReason
}

// Sink receives frames. It must not retain or mutate match state.
type Sink interface {
	Sync(Frame)
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(Frame)

// Sync calls f.
func (f SinkFunc) Sync(fr Frame) {
	f(fr)
}

// TickResult is returned by Match.Tick.
type TickResult struct {
	Events []Event
	Frame  Frame
}

// Ended reports whether the match is over after this tick.
func (r TickResult) Ended() bool {
	return r.Frame.State == StateEnded
}

// Option configures a Match.
type Option func(*Match)

// WithTuning overrides the constant set.
func WithTuning(t Tuning) Option {
	return func(m *Match) {
		m.tuning = t
	}
}

// WithSink attaches the presentation sink.
func WithSink(s Sink) Option {
	return func(m *Match) {
		m.sink = s
	}
}

// Match owns both fighters and advances them tick by tick.
type Match struct {
	tuning Tuning
	rng    Rand
	sink   Sink

	id        string
	state     State
	arena     Arena
	fighters  [2]*Fighter
	startedAt time.Duration
	elapsed   time.Duration
	tick      uint64
	message   string
	winner    int
	reason    EndReason
}

// NewMatch creates a match in the Setup state.
func NewMatch(rng Rand, opts ...Option) *Match {
	m := &Match{
		tuning: DefaultTuning(),
		rng:    rng,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// ID returns the identifier of the current or last match, empty in setup.
func (m *Match) ID() string {
	return m.id
}

// State returns the lifecycle state.
func (m *Match) State() State {
	return m.state
}

// Arena returns the bounds fixed at start.
func (m *Match) Arena() Arena {
	return m.arena
}

// Tuning returns the constant set in use.
func (m *Match) Tuning() Tuning {
	return m.tuning
}

// Start creates both fighters, places them, and enters Running.
func (m *Match) Start(setups [2]FighterSetup, arena Arena, now time.Duration) ([]Event, error) {
	if m.state != StateSetup {
		return nil, ErrMatchNotInSetup
	}
	if !arena.Valid() {
		return nil, ErrInvalidArena
	}

	for i, s := range setups {
		id := i + 1
		name := s.Name
		if name == "" {
			name = DefaultName(id)
		}
		m.fighters[i] = NewFighter(name, s.ImageRef, id, m.rng)
	}

	m.id = uuid.NewString()
	m.arena = arena
	m.startedAt = now
	m.elapsed = 0
	m.tick = 0
	m.winner = 0
	m.reason = ReasonNone
	m.place()

	m.state = StateRunning
	events := []Event{{Kind: EventFight}}
	m.announce(events)
	m.sync()
	return events, nil
}

// place sizes the fighters from their starting health and puts them at their
// spawn points inside the arena.
func (m *Match) place() {
	t := &m.tuning
	spawnX := [2]float64{t.SpawnX1, t.SpawnX2}
	for i, f := range m.fighters {
		size := DerivedSize(f.Health)
		f.Width = size
		f.Height = size
		f.Pos.X = min(m.arena.Width*spawnX[i], m.arena.Width-size)
		f.Pos.Y = min(m.arena.Height*t.SpawnY, m.arena.Height-size)
	}
}

// Tick runs one pipeline pass: AI, physics, collision, victory check, then
// presentation sync. Outside Running it does nothing, so a tick scheduled
// before the match ended is dropped.
func (m *Match) Tick(now time.Duration) TickResult {
	if m.state != StateRunning {
		return TickResult{Frame: m.Frame()}
	}

	m.tick++
	m.elapsed = max(0, now-m.startedAt)
	f1, f2 := m.fighters[0], m.fighters[1]
	t := &m.tuning
	var events []Event

	UpdateAI(f1, f2, m.elapsed, m.arena, t)
	UpdateAI(f2, f1, m.elapsed, m.arena, t)

	for i, f := range m.fighters {
		if StepPhysics(f, m.arena, t) {
			winner := m.fighters[1-i]
			events = append(events, Event{
				Kind:   EventRingOut,
				Tick:   m.tick,
				Actor:  winner.Name,
				Target: f.Name,
			})
			m.end(winner.ID, ReasonRingOut)
			return m.finishTick(events)
		}
	}

	if ex, ok := CheckCollision(f1, f2, m.rng, t); ok {
		events = append(events, exchangeEvent(ex, m.tick))
	}

	if e, ok := m.checkVictory(); ok {
		events = append(events, e)
	}

	return m.finishTick(events)
}

// checkVictory ends the match if an active fighter has no health left.
// Fighter 1 is checked first; only one knockout is ever recorded.
func (m *Match) checkVictory() (Event, bool) {
	for i, f := range m.fighters {
		if f.Active && f.Health <= 0 {
			f.Active = false
			winner := m.fighters[1-i]
			m.end(winner.ID, ReasonKnockout)
			return Event{
				Kind:   EventKnockout,
				Tick:   m.tick,
				Actor:  winner.Name,
				Target: f.Name,
			}, true
		}
	}
	return Event{}, false
}

func (m *Match) finishTick(events []Event) TickResult {
	m.announce(events)
	frame := m.sync()
	return TickResult{Events: events, Frame: frame}
}

func (m *Match) end(winner int, reason EndReason) {
	m.state = StateEnded
	m.winner = winner
	m.reason = reason
}

// Stop cancels a running match without a winner.
func (m *Match) Stop() error {
	if m.state != StateRunning {
		return ErrMatchNotRunning
	}
	m.end(0, ReasonStopped)
	m.announce([]Event{{Kind: EventStopped, Tick: m.tick}})
	m.sync()
	return nil
}

// Restart returns to Setup and drops both fighters.
func (m *Match) Restart() {
	m.state = StateSetup
	m.fighters = [2]*Fighter{}
	m.message = ""
	m.winner = 0
	m.reason = ReasonNone
	m.tick = 0
	m.elapsed = 0
}

// Winner returns the winning fighter's snapshot once the match has ended
// with a winner.
func (m *Match) Winner() (FighterSnapshot, bool) {
	if m.state != StateEnded || m.winner == 0 {
		return FighterSnapshot{}, false
	}
	return m.fighters[m.winner-1].Snapshot(), true
}

// Reason returns why the match ended.
func (m *Match) Reason() EndReason {
	return m.reason
}

// Frame returns the current presentation frame.
func (m *Match) Frame() Frame {
	fr := Frame{
		MatchID: m.id,
		State:   m.state,
		Tick:    m.tick,
		Elapsed: m.elapsed,
		Message: m.message,
		Winner:  m.winner,
		Reason:  m.reason,
	}
	for i, f := range m.fighters {
		if f != nil {
			fr.Fighters[i] = f.Snapshot()
		}
	}
	return fr
}

// announce keeps the latest event message for the message line.
func (m *Match) announce(events []Event) {
	if len(events) > 0 {
		m.message = events[len(events)-1].Message()
	}
}

func (m *Match) sync() Frame {
	fr := m.Frame()
	if m.sink != nil {
		m.sink.Sync(fr)
	}
	return fr
}
