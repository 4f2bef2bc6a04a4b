package fight

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-brawl/internal/core"
)

func TestDetectCollision(t *testing.T) {
	tests := []struct {
		name     string
		gap      float64 // center distance minus sum of radii
		inactive bool
		expected bool
	}{
		{"overlapping", -10, false, true},
		{"touching", 0, false, false},
		{"apart", 25, false, false},
		{"overlapping but inactive", -10, true, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f1 := newTestFighter(1, 50, 50, 50, 50)
			f2 := newTestFighter(2, 50, 50, 50, 100)
			sum := f1.Radius() + f2.Radius()
			centerAt(f1, 300, 300)
			centerAt(f2, 300+sum+tc.gap, 300)
			f2.Active = !tc.inactive

			c, ok := DetectCollision(f1, f2)
			assert.Equal(t, tc.expected, ok)
			if ok {
				assert.InDelta(t, -tc.gap, c.Overlap, 1e-9)
				assert.InDelta(t, 1.0, c.Normal.X, 1e-9)
				assert.False(t, c.Degenerate)
			}
		})
	}
}

func TestSeparationRestoresDistance(t *testing.T) {
	tu := ptrTuning()
	rng := NewRand(42)

	for i := 0; i < 2000; i++ {
		f1 := newTestFighter(1, 50, 50, 50, float64(MinStat+rng.Intn(81)))
		f2 := newTestFighter(2, 50, 50, 50, float64(MinStat+rng.Intn(81)))
		sum := f1.Radius() + f2.Radius()

		centerAt(f1, 200+rng.Float64()*400, 100+rng.Float64()*300)
		offset := core.FromAngle(rng.Float64() * 2 * math.Pi).Scale(rng.Float64() * sum * 0.99)
		c2 := f1.Center().Add(offset)
		centerAt(f2, c2.X, c2.Y)

		_, collided := CheckCollision(f1, f2, rng, tu)
		require.True(t, collided)

		d := f1.Center().Dist(f2.Center())
		assert.GreaterOrEqual(t, d, sum, "separation must restore at least the sum of radii")

		// Already separated: a second pass changes nothing
		p1, p2 := f1.Pos, f2.Pos
		_, again := CheckCollision(f1, f2, rng, tu)
		assert.False(t, again)
		assert.Equal(t, p1, f1.Pos)
		assert.Equal(t, p2, f2.Pos)
	}
}

func TestSeparationIsSymmetric(t *testing.T) {
	f1 := newTestFighter(1, 50, 50, 50, 50)
	f2 := newTestFighter(2, 50, 50, 50, 50)
	centerAt(f1, 300, 300)
	centerAt(f2, 360, 300)

	c, ok := DetectCollision(f1, f2)
	require.True(t, ok)
	Separate(f1, f2, c, 0)

	assert.InDelta(t, 290, f1.Center().X, 1e-9)
	assert.InDelta(t, 370, f2.Center().X, 1e-9)
}

func TestDegenerateCollision(t *testing.T) {
	tu := ptrTuning()
	f1 := newTestFighter(1, 50, 50, 50, 50)
	f2 := newTestFighter(2, 50, 50, 50, 50)
	centerAt(f1, 300, 300)
	centerAt(f2, 300, 300)
	f1.Vel = core.V(2, 0)

	ex, ok := CheckCollision(f1, f2, &scriptedRand{floats: []float64{0.99, 0.99, 0}}, tu)
	require.True(t, ok)

	assert.Zero(t, ex.Knockback, "no knockback without a direction")
	assert.Equal(t, core.V(2, 0), f1.Vel)
	assert.Equal(t, core.Vec2{}, f2.Vel)
	assert.Less(t, f1.Center().X, f2.Center().X, "fallback axis separates along +X")
	assert.GreaterOrEqual(t, f1.Center().Dist(f2.Center()), f1.Radius()+f2.Radius())
	for _, f := range []*Fighter{f1, f2} {
		assert.False(t, math.IsNaN(f.Pos.X) || math.IsNaN(f.Pos.Y))
	}
}

func TestChooseAttacker(t *testing.T) {
	f1 := newTestFighter(1, 50, 50, 50, 50)
	f2 := newTestFighter(2, 50, 50, 50, 50)

	f1.Vel = core.V(1, 0)
	f2.Vel = core.V(0, -3)
	a, d, sign := ChooseAttacker(f1, f2)
	assert.Same(t, f2, a)
	assert.Same(t, f1, d)
	assert.Equal(t, -1.0, sign)

	// Equal magnitudes: fighter 1 attacks
	f1.Vel = core.V(3, 4)
	f2.Vel = core.V(-5, 0)
	a, d, sign = ChooseAttacker(f1, f2)
	assert.Same(t, f1, a)
	assert.Same(t, f2, d)
	assert.Equal(t, 1.0, sign)
}

func clash(attacker, defender *Fighter) Contact {
	centerAt(attacker, 300, 300)
	centerAt(defender, 300+attacker.Radius(), 300)
	attacker.Vel = core.V(5, 0)
	defender.Vel = core.Vec2{}
	c, _ := DetectCollision(attacker, defender)
	return c
}

func TestResolveCombatRolls(t *testing.T) {
	tests := []struct {
		name    string
		floats  []float64
		dodged  bool
		blocked bool
		damage  float64
	}{
		{"dodge", []float64{0.0}, true, false, 0},
		{"block with no bonus", []float64{0.99, 0.0, 0.0}, false, true, 4},
		{"full hit with half bonus", []float64{0.99, 0.99, 0.5}, false, false, 10},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tu := ptrTuning()
			attacker := newTestFighter(1, 80, 50, 50, 50)
			defender := newTestFighter(2, 50, 50, 50, 50)
			c := clash(attacker, defender)

			ex := ResolveCombat(attacker, defender, c, &scriptedRand{floats: tc.floats}, tu)

			assert.Same(t, attacker, ex.Attacker)
			assert.Equal(t, tc.dodged, ex.Dodged)
			assert.Equal(t, tc.blocked, ex.Blocked)
			assert.InDelta(t, tc.damage, ex.Damage, 1e-9)
			assert.InDelta(t, 50-tc.damage, defender.Health, 1e-9)
			assert.Greater(t, ex.Knockback, 0.0, "knockback applies even on a dodge")
		})
	}
}

func TestKnockbackDirection(t *testing.T) {
	tu := ptrTuning()
	attacker := newTestFighter(1, 100, 50, 50, 50)
	defender := newTestFighter(2, 50, 50, 50, 50)
	c := clash(attacker, defender)

	ex := ResolveCombat(attacker, defender, c, &scriptedRand{floats: []float64{0.0}}, tu)

	// power 4, resistance 0.25
	assert.InDelta(t, 3.2, ex.Knockback, 1e-9)
	assert.InDelta(t, 3.2, defender.Vel.X, 1e-9, "defender is pushed away from the attacker")
	assert.InDelta(t, -tu.KnockbackLift, defender.Vel.Y, 1e-9, "defender gets an upward bias")
	assert.InDelta(t, 5-3.2*tu.RecoilFactor, attacker.Vel.X, 1e-9, "attacker recoils")
}

func TestKnockbackWhenFighterTwoAttacks(t *testing.T) {
	tu := ptrTuning()
	f1 := newTestFighter(1, 50, 50, 50, 50)
	f2 := newTestFighter(2, 100, 50, 50, 50)
	centerAt(f1, 300, 300)
	centerAt(f2, 300+f1.Radius(), 300)
	f2.Vel = core.V(-5, 0)

	c, ok := DetectCollision(f1, f2)
	require.True(t, ok)
	ResolveCombat(f1, f2, c, &scriptedRand{floats: []float64{0.0}}, tu)

	assert.Less(t, f1.Vel.X, 0.0, "fighter 1 is pushed left, away from fighter 2")
	assert.Greater(t, f2.Vel.X, -5.0, "fighter 2 recoils to the right")
}

func TestDefenseReducesKnockback(t *testing.T) {
	tu := ptrTuning()
	soft := newTestFighter(2, 50, 20, 50, 50)
	hard := newTestFighter(2, 50, 100, 50, 50)
	a1 := newTestFighter(1, 80, 50, 50, 50)
	a2 := newTestFighter(1, 80, 50, 50, 50)

	k1 := ResolveCombat(a1, soft, clash(a1, soft), &scriptedRand{floats: []float64{0.0}}, tu).Knockback
	k2 := ResolveCombat(a2, hard, clash(a2, hard), &scriptedRand{floats: []float64{0.0}}, tu).Knockback

	assert.Greater(t, k1, k2)
}

func TestDodgeProbabilityConverges(t *testing.T) {
	tu := ptrTuning()
	rng := NewRand(99)
	const trials = 20000

	dodges := 0
	for i := 0; i < trials; i++ {
		attacker := newTestFighter(1, 50, 50, 50, 100)
		defender := newTestFighter(2, 50, 50, 60, 100)
		if ResolveCombat(attacker, defender, clash(attacker, defender), rng, tu).Dodged {
			dodges++
		}
	}

	assert.InDelta(t, 60.0/tu.DodgeDivisor, float64(dodges)/trials, 0.015)
}

func TestDefensiveFighterTakesLessDamage(t *testing.T) {
	tu := ptrTuning()

	// A: strength 100, defense 20, speed 20. B: strength 20, defense 100, speed 100.
	a := newTestFighter(1, 100, 20, 20, 100)
	b := newTestFighter(2, 20, 100, 100, 100)

	// Equal speed magnitudes: the tie-break makes A the attacker every time.
	for i := 0; i < 1000; i++ {
		a.Vel = core.V(3, 4)
		b.Vel = core.V(0, -5)
		attacker, _, _ := ChooseAttacker(a, b)
		require.Same(t, a, attacker)
	}

	// Same attacker against each defensive profile.
	averageTaken := func(defense, speed int, seed int64) float64 {
		rng := NewRand(seed)
		total := 0.0
		for i := 0; i < 1000; i++ {
			attacker := newTestFighter(1, 60, 50, 50, 100)
			defender := newTestFighter(2, 50, defense, speed, 100)
			total += ResolveCombat(attacker, defender, clash(attacker, defender), rng, tu).Damage
		}
		return total / 1000
	}

	takenA := averageTaken(a.Defense, a.Speed, 2024)
	takenB := averageTaken(b.Defense, b.Speed, 2024)

	assert.Less(t, takenB, takenA*0.8, "B's defense and speed should cut damage measurably (A=%.2f B=%.2f)", takenA, takenB)
}
