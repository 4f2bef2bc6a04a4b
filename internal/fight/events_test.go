package fight

import "testing"

func TestEventMessage(t *testing.T) {
	tests := []struct {
		name     string
		event    Event
		expected string
	}{
		{"fight", Event{Kind: EventFight}, "FIGHT!"},
		{"dodge", Event{Kind: EventDodge, Actor: "A", Target: "B"}, "B dodged the attack!"},
		{"block", Event{Kind: EventBlock, Actor: "A", Target: "B", Amount: 3.26}, "B reduced damage! (-3.3)"},
		{"hit", Event{Kind: EventHit, Actor: "A", Target: "B", Amount: 7}, "A hits B for 7.0!"},
		{"knockout", Event{Kind: EventKnockout, Actor: "A", Target: "B"}, "A WINS by knockout!"},
		{"ring-out", Event{Kind: EventRingOut, Actor: "A", Target: "B"}, "B was knocked out of the arena! A WINS!"},
		{"stopped", Event{Kind: EventStopped}, "Match stopped."},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.event.Message(); got != tc.expected {
				t.Errorf("Message() = %q, expected %q", got, tc.expected)
			}
		})
	}
}

func TestExchangeEventKind(t *testing.T) {
	a := &Fighter{Name: "A"}
	b := &Fighter{Name: "B"}

	tests := []struct {
		ex       Exchange
		expected EventKind
	}{
		{Exchange{Attacker: a, Defender: b, Dodged: true}, EventDodge},
		{Exchange{Attacker: a, Defender: b, Blocked: true, Damage: 2}, EventBlock},
		{Exchange{Attacker: a, Defender: b, Damage: 4}, EventHit},
	}

	for _, tc := range tests {
		e := exchangeEvent(tc.ex, 9)
		if e.Kind != tc.expected {
			t.Errorf("exchangeEvent kind = %v, expected %v", e.Kind, tc.expected)
		}
		if e.Tick != 9 || e.Actor != "A" || e.Target != "B" {
			t.Errorf("exchangeEvent = %+v, expected tick 9 from A to B", e)
		}
		if e.IsVictory() {
			t.Errorf("%v should not be a victory", e.Kind)
		}
	}
}
