package fight

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/tui-brawl/internal/core"
)

// airborne places f and its opponent mid-arena, away from the floor.
func airborne() (self, opp *Fighter) {
	self = newTestFighter(1, 50, 50, 50, 50)
	opp = newTestFighter(2, 50, 50, 50, 50)
	centerAt(self, 200, 200)
	centerAt(opp, 600, 200)
	return self, opp
}

func TestAICooldown(t *testing.T) {
	tu := ptrTuning()
	self, opp := airborne()

	assert.False(t, UpdateAI(self, opp, 500*time.Millisecond, testArena, tu))
	assert.False(t, UpdateAI(self, opp, tu.AICooldown, testArena, tu), "cooldown must be exceeded, not just reached")
	assert.Zero(t, self.Vel.X)

	assert.True(t, UpdateAI(self, opp, 900*time.Millisecond, testArena, tu))
	assert.Equal(t, 900*time.Millisecond, self.LastAIAction)

	// Next decision measured from the last one
	assert.False(t, UpdateAI(self, opp, 1500*time.Millisecond, testArena, tu))
	assert.True(t, UpdateAI(self, opp, 1701*time.Millisecond, testArena, tu))
}

func TestAIPursuitImpulse(t *testing.T) {
	tu := ptrTuning()
	self, opp := airborne()

	UpdateAI(self, opp, time.Second, testArena, tu)

	assert.InDelta(t, 0.5*tu.PursuitImpulse, self.Vel.X, 1e-9, "impulse scales with speed stat")
	assert.Zero(t, self.Vel.Y, "no jump while airborne")

	// Opponent on the left pushes the other way
	self2, opp2 := airborne()
	centerAt(opp2, 50, 200)
	UpdateAI(self2, opp2, time.Second, testArena, tu)
	assert.Less(t, self2.Vel.X, 0.0)
}

func TestAIJumpFromStandingStart(t *testing.T) {
	tu := ptrTuning()
	self, opp := airborne()
	self.Pos.Y = testArena.Height - self.Height

	UpdateAI(self, opp, time.Second, testArena, tu)
	assert.InDelta(t, -0.5*tu.JumpImpulse, self.Vel.Y, 1e-9)

	// Already moving vertically: no extra hop
	self2, opp2 := airborne()
	self2.Pos.Y = testArena.Height - self2.Height
	self2.Vel.Y = -4
	UpdateAI(self2, opp2, time.Second, testArena, tu)
	assert.Equal(t, -4.0, self2.Vel.Y)
}

func TestAIInactiveOpponentResetsTimer(t *testing.T) {
	tu := ptrTuning()
	self, opp := airborne()
	opp.Active = false

	assert.True(t, UpdateAI(self, opp, time.Second, testArena, tu))
	assert.Equal(t, time.Second, self.LastAIAction)
	assert.Equal(t, core.Vec2{}, self.Vel, "no force toward an inactive opponent")
}

func TestAIInactiveSelfIsSkipped(t *testing.T) {
	tu := ptrTuning()
	self, opp := airborne()
	self.Active = false

	assert.False(t, UpdateAI(self, opp, time.Second, testArena, tu))
	assert.Zero(t, self.LastAIAction)
}

func TestAIZeroDistance(t *testing.T) {
	tu := ptrTuning()
	self, opp := airborne()
	centerAt(opp, 200, 200)

	assert.True(t, UpdateAI(self, opp, time.Second, testArena, tu))
	assert.False(t, math.IsNaN(self.Vel.X) || math.IsNaN(self.Vel.Y))
	assert.Equal(t, core.Vec2{}, self.Vel)
	assert.Equal(t, time.Second, self.LastAIAction)
}

func TestAITimersAreIndependent(t *testing.T) {
	tu := ptrTuning()
	f1, f2 := airborne()
	f2.LastAIAction = 500 * time.Millisecond

	assert.True(t, UpdateAI(f1, f2, 1000*time.Millisecond, testArena, tu))
	assert.False(t, UpdateAI(f2, f1, 1000*time.Millisecond, testArena, tu))
	assert.True(t, UpdateAI(f2, f1, 1400*time.Millisecond, testArena, tu))
}
