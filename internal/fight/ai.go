package fight

import (
	"math"
	"time"
)

// UpdateAI fires self's pursuit decision if its cooldown has elapsed.
// Each fighter runs on its own timer. The timer resets whenever the decision
// fires, even if the opponent is inactive or sits exactly on self's center
// and no force is applied. Returns whether the decision fired.
func UpdateAI(self, opponent *Fighter, elapsed time.Duration, arena Arena, t *Tuning) bool {
	if !self.Active {
		return false
	}
	if elapsed-self.LastAIAction <= t.AICooldown {
		return false
	}
	self.LastAIAction = elapsed

	if !opponent.Active {
		return true
	}

	dir, ok := opponent.Center().Sub(self.Center()).Normalize()
	if !ok {
		return true
	}

	drive := float64(self.Speed) / 100
	self.Vel.X += dir.X * drive * t.PursuitImpulse

	// Hop toward the opponent only from a standing start.
	if self.grounded(arena, t) && math.Abs(self.Vel.Y) < t.RestEpsilon {
		self.Vel.Y -= drive * t.JumpImpulse
	}
	return true
}
