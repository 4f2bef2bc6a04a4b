package fight

import "time"

// Tuning is the fixed constant set the simulation runs with.
// Values follow the lighter of the two historical profiles (gravity 0.3,
// 800ms AI cooldown) with impulse magnitudes raised for a terminal-sized arena.
type Tuning struct {
	// Physics, per tick
	Gravity         float64
	Friction        float64 // horizontal velocity multiplier
	VerticalDamping float64 // vertical velocity multiplier
	BounceEnergy    float64 // fraction of speed kept after a floor/wall bounce
	GroundDrag      float64 // extra horizontal multiplier on floor contact
	RestEpsilon     float64 // rebound speeds below this come to rest
	RingOutMargin   float64 // multiples of fighter size past an edge before ring-out

	// AI
	AICooldown      time.Duration
	PursuitImpulse  float64 // horizontal impulse at speed 100
	JumpImpulse     float64 // vertical impulse at speed 100
	GroundTolerance float64 // pixels above the floor still counted as grounded

	// Combat
	DodgeDivisor        float64
	BlockDivisor        float64
	BlockMultiplier     float64
	DamageDivisor       float64
	DamageBonus         float64 // max random bonus as a fraction of base damage
	KnockbackPower      float64
	KnockbackResistance float64
	KnockbackLift       float64 // upward bias added to the defender
	RecoilFactor        float64 // fraction of knockback returned to the attacker
	SeparationSlop      float64

	// Spawn placement as fractions of the arena
	SpawnX1, SpawnX2, SpawnY float64
}

// DefaultTuning returns the canonical constant set.
func DefaultTuning() Tuning {
	return Tuning{
		Gravity:         0.3,
		Friction:        0.98,
		VerticalDamping: 0.995,
		BounceEnergy:    0.6,
		GroundDrag:      0.8,
		RestEpsilon:     0.5,
		RingOutMargin:   2,

		AICooldown:      800 * time.Millisecond,
		PursuitImpulse:  3.0,
		JumpImpulse:     6.0,
		GroundTolerance: 1.0,

		DodgeDivisor:        300,
		BlockDivisor:        250,
		BlockMultiplier:     0.5,
		DamageDivisor:       10,
		DamageBonus:         0.5,
		KnockbackPower:      4.0,
		KnockbackResistance: 0.5,
		KnockbackLift:       1.0,
		RecoilFactor:        0.3,
		SeparationSlop:      1e-6,

		SpawnX1: 0.25,
		SpawnX2: 0.75,
		SpawnY:  0.3,
	}
}

// Arena is the rectangular fighting area in pixels. The floor is at y = Height.
type Arena struct {
	Width  float64
	Height float64
}

// Smallest arena that can hold two full-size fighters side by side.
const (
	MinArenaWidth  = 2 * MaxSize
	MinArenaHeight = MaxSize
)

// Valid reports whether the arena can host a match.
func (a Arena) Valid() bool {
	return a.Width >= MinArenaWidth && a.Height >= MinArenaHeight
}

// ringOut reports whether f's box has crossed more than margin times its own
// size past any edge.
func (a Arena) ringOut(f *Fighter, margin float64) bool {
	w, h := f.Width, f.Height
	return f.Pos.X < -margin*w ||
		f.Pos.X+w > a.Width+margin*w ||
		f.Pos.Y < -margin*h ||
		f.Pos.Y+h > a.Height+margin*h
}
