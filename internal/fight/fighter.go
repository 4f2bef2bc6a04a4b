package fight

import (
	"math"
	"time"

	"github.com/vovakirdan/tui-brawl/internal/core"
)

// Stat range shared by strength, defense, speed and starting health.
const (
	MinStat = 20
	MaxStat = 100
)

// Size bounds: a fighter at 0 health is BaseSize, at 100 health MaxSize.
const (
	BaseSize = 60.0
	MaxSize  = BaseSize + 40.0
)

// Fighter is one combatant. It is owned and mutated only by its Match;
// everything else sees it through a FighterSnapshot.
type Fighter struct {
	ID       int // 1 or 2
	Name     string
	ImageRef string

	Strength int
	Defense  int
	Speed    int

	Health    float64
	MaxHealth float64

	Pos    core.Vec2 // top-left corner of the bounding box
	Vel    core.Vec2
	Width  float64
	Height float64

	LastAIAction time.Duration
	Active       bool
}

// NewFighter creates a fighter with four independent random stats in
// [MinStat, MaxStat], drawn in the order strength, defense, speed, health.
func NewFighter(name, imageRef string, id int, rng Rand) *Fighter {
	f := &Fighter{
		ID:       id,
		Name:     name,
		ImageRef: imageRef,
		Active:   true,
	}
	f.Strength = randomStat(rng)
	f.Defense = randomStat(rng)
	f.Speed = randomStat(rng)
	f.Health = float64(randomStat(rng))
	f.MaxHealth = f.Health
	return f
}

func randomStat(rng Rand) int {
	return MinStat + rng.Intn(MaxStat-MinStat+1)
}

// DerivedSize maps health to a sprite/hitbox edge length: 60 at 0, 100 at 100.
// It is applied once at match start; losing health does not shrink a fighter.
func DerivedSize(health float64) float64 {
	return BaseSize + (health/100)*40
}

// Center returns the center of the bounding box.
func (f *Fighter) Center() core.Vec2 {
	return core.V(f.Pos.X+f.Width/2, f.Pos.Y+f.Height/2)
}

// Radius is the collision circle radius.
func (f *Fighter) Radius() float64 {
	return f.Width / 2
}

// SpeedMagnitude returns |v|.
func (f *Fighter) SpeedMagnitude() float64 {
	return f.Vel.Len()
}

func (f *Fighter) grounded(arena Arena, t *Tuning) bool {
	return f.Pos.Y+f.Height >= arena.Height-t.GroundTolerance
}

// FighterSnapshot is the read-only view of a fighter handed to presentation.
type FighterSnapshot struct {
	ID        int
	Name      string
	ImageRef  string
	Strength  int
	Defense   int
	Speed     int
	Health    float64
	MaxHealth float64
	X, Y      float64
	VX, VY    float64
	Width     float64
	Height    float64
	Active    bool
}

// Snapshot copies the fighter's current state.
func (f *Fighter) Snapshot() FighterSnapshot {
	return FighterSnapshot{
		ID:        f.ID,
		Name:      f.Name,
		ImageRef:  f.ImageRef,
		Strength:  f.Strength,
		Defense:   f.Defense,
		Speed:     f.Speed,
		Health:    f.Health,
		MaxHealth: f.MaxHealth,
		X:         f.Pos.X,
		Y:         f.Pos.Y,
		VX:        f.Vel.X,
		VY:        f.Vel.Y,
		Width:     f.Width,
		Height:    f.Height,
		Active:    f.Active,
	}
}

// DisplayHealth is health rounded up and clamped at zero, as shown on screen.
func (s FighterSnapshot) DisplayHealth() int {
	return int(math.Max(0, math.Ceil(s.Health)))
}

// HealthFraction is the remaining share of max health in [0, 1].
func (s FighterSnapshot) HealthFraction() float64 {
	if s.MaxHealth <= 0 {
		return 0
	}
	return core.ClampF(s.Health/s.MaxHealth, 0, 1)
}
