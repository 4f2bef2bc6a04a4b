package fight

import "math"

// StepPhysics advances one active fighter by a single fixed tick.
// It returns true when the fighter left the arena by more than the ring-out
// margin; the fighter is then inactive and no contact resolution is applied.
func StepPhysics(f *Fighter, arena Arena, t *Tuning) (ringOut bool) {
	if !f.Active {
		return false
	}

	f.Vel.Y += t.Gravity
	f.Vel.X *= t.Friction
	f.Vel.Y *= t.VerticalDamping

	f.Pos = f.Pos.Add(f.Vel)

	// Judged before clamping: after contact resolution only the open ceiling
	// could ever be left.
	if arena.ringOut(f, t.RingOutMargin) {
		f.Active = false
		return true
	}

	// Floor
	if f.Pos.Y+f.Height > arena.Height {
		f.Pos.Y = arena.Height - f.Height
		f.Vel.Y = -f.Vel.Y * t.BounceEnergy
		f.Vel.X *= t.GroundDrag
		if math.Abs(f.Vel.Y) < t.RestEpsilon {
			f.Vel.Y = 0
		}
	}

	// Walls
	if f.Pos.X < 0 {
		f.Pos.X = 0
		f.Vel.X = -f.Vel.X * t.BounceEnergy
	}
	if f.Pos.X+f.Width > arena.Width {
		f.Pos.X = arena.Width - f.Width
		f.Vel.X = -f.Vel.X * t.BounceEnergy
	}

	return false
}
