package fight

import "fmt"

// EventKind identifies what happened during a tick.
type EventKind int

const (
	EventFight    EventKind = iota // match started
	EventDodge                     // defender avoided the hit
	EventBlock                     // defender reduced the hit
	EventHit                       // full hit landed
	EventKnockout                  // a fighter's health reached zero
	EventRingOut                   // a fighter left the arena
	EventStopped                   // match cancelled without a winner
)

// String returns a short name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventFight:
		return "fight"
	case EventDodge:
		return "dodge"
	case EventBlock:
		return "block"
	case EventHit:
		return "hit"
	case EventKnockout:
		return "knockout"
	case EventRingOut:
		return "ring-out"
	case EventStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// Event is something the presentation layer may announce.
type Event struct {
	Kind   EventKind
	Tick   uint64
	Actor  string  // attacker, winner, or the fighter that left the arena
	Target string  // defender or loser
	Amount float64 // damage dealt, if any
}

// IsVictory reports whether the event ended the match with a winner.
func (e Event) IsVictory() bool {
	return e.Kind == EventKnockout || e.Kind == EventRingOut
}

// Message renders the event as the one-line text shown to the viewer.
func (e Event) Message() string {
	switch e.Kind {
	case EventFight:
		return "FIGHT!"
	case EventDodge:
		return fmt.Sprintf("%s dodged the attack!", e.Target)
	case EventBlock:
		return fmt.Sprintf("%s reduced damage! (-%.1f)", e.Target, e.Amount)
	case EventHit:
		return fmt.Sprintf("%s hits %s for %.1f!", e.Actor, e.Target, e.Amount)
	case EventKnockout:
		return fmt.Sprintf("%s WINS by knockout!", e.Actor)
	case EventRingOut:
		return fmt.Sprintf("%s was knocked out of the arena! %s WINS!", e.Target, e.Actor)
	case EventStopped:
		return "Match stopped."
	default:
		return ""
	}
}

// exchangeEvent converts a resolved clash into its announcement.
func exchangeEvent(ex Exchange, tick uint64) Event {
	e := Event{
		Tick:   tick,
		Actor:  ex.Attacker.Name,
		Target: ex.Defender.Name,
		Amount: ex.Damage,
	}
	switch {
	case ex.Dodged:
		e.Kind = EventDodge
	case ex.Blocked:
		e.Kind = EventBlock
	default:
		e.Kind = EventHit
	}
	return e
}
