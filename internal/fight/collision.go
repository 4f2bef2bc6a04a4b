package fight

import "github.com/vovakirdan/tui-brawl/internal/core"

// Contact describes an overlap between the two fighters' collision circles.
type Contact struct {
	Normal     core.Vec2 // unit vector from fighter 1's center towards fighter 2's
	Distance   float64   // center-to-center distance before separation
	Overlap    float64   // sum of radii minus Distance
	Degenerate bool      // centers coincided; Normal is the +X fallback
}

// Exchange is the outcome of one resolved clash.
type Exchange struct {
	Attacker  *Fighter
	Defender  *Fighter
	Dodged    bool
	Blocked   bool
	Damage    float64
	Knockback float64
}

// DetectCollision reports whether two active fighters' circles overlap.
func DetectCollision(f1, f2 *Fighter) (Contact, bool) {
	if !f1.Active || !f2.Active {
		return Contact{}, false
	}

	c1, c2 := f1.Center(), f2.Center()
	overlap, ok := core.CirclesOverlap(c1, f1.Radius(), c2, f2.Radius())
	if !ok {
		return Contact{}, false
	}

	delta := c2.Sub(c1)
	n, nonZero := delta.Normalize()
	if !nonZero {
		n = core.V(1, 0)
	}
	return Contact{
		Normal:     n,
		Distance:   delta.Len(),
		Overlap:    overlap,
		Degenerate: !nonZero,
	}, true
}

// Separate pushes both fighters apart by half the overlap each along the
// contact normal, leaving their circles just touching.
func Separate(f1, f2 *Fighter, c Contact, slop float64) {
	push := c.Normal.Scale((c.Overlap + slop) / 2)
	f1.Pos = f1.Pos.Sub(push)
	f2.Pos = f2.Pos.Add(push)
}

// ChooseAttacker picks the faster fighter as attacker. Ties go to f1.
// sign is +1 when f1 attacks and -1 otherwise; it orients the contact
// normal away from the attacker.
func ChooseAttacker(f1, f2 *Fighter) (attacker, defender *Fighter, sign float64) {
	if f1.SpeedMagnitude() >= f2.SpeedMagnitude() {
		return f1, f2, 1
	}
	return f2, f1, -1
}

// DodgeChance is the probability that defender avoids a hit entirely.
func DodgeChance(defender *Fighter, t *Tuning) float64 {
	return float64(defender.Speed) / t.DodgeDivisor
}

// BlockChance is the probability that defender halves an incoming hit.
func BlockChance(defender *Fighter, t *Tuning) float64 {
	return float64(defender.Defense) / t.BlockDivisor
}

// RollDamage returns the attacker's base damage plus a bounded random bonus.
func RollDamage(attacker *Fighter, rng Rand, t *Tuning) float64 {
	base := float64(attacker.Strength) / t.DamageDivisor
	return base * (1 + rng.Float64()*t.DamageBonus)
}

// ResolveCombat runs dodge, block, damage and knockback for a contact.
// Rolls are drawn in that order from rng. Defender health may go negative.
func ResolveCombat(f1, f2 *Fighter, c Contact, rng Rand, t *Tuning) Exchange {
	attacker, defender, sign := ChooseAttacker(f1, f2)
	ex := Exchange{Attacker: attacker, Defender: defender}

	if rng.Float64() < DodgeChance(defender, t) {
		ex.Dodged = true
	} else {
		ex.Blocked = rng.Float64() < BlockChance(defender, t)
		damage := RollDamage(attacker, rng, t)
		if ex.Blocked {
			damage *= t.BlockMultiplier
		}
		defender.Health -= damage
		ex.Damage = damage
	}

	if !c.Degenerate {
		ex.Knockback = applyKnockback(attacker, defender, c.Normal.Scale(sign), t)
	}
	return ex
}

// applyKnockback pushes defender along dir (pointing away from the attacker)
// with an upward bias, and recoils the attacker the other way.
func applyKnockback(attacker, defender *Fighter, dir core.Vec2, t *Tuning) float64 {
	power := float64(attacker.Strength) / 100 * t.KnockbackPower
	resistance := float64(defender.Defense) / 100 * t.KnockbackResistance
	magnitude := power / (1 + resistance)

	push := dir.Scale(magnitude)
	defender.Vel = defender.Vel.Add(push)
	defender.Vel.Y -= t.KnockbackLift
	attacker.Vel = attacker.Vel.Sub(push.Scale(t.RecoilFactor))
	return magnitude
}

// CheckCollision detects, separates and resolves a clash between f1 and f2.
func CheckCollision(f1, f2 *Fighter, rng Rand, t *Tuning) (Exchange, bool) {
	c, ok := DetectCollision(f1, f2)
	if !ok {
		return Exchange{}, false
	}
	Separate(f1, f2, c, t.SeparationSlop)
	return ResolveCombat(f1, f2, c, rng, t), true
}
