package fight

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/tui-brawl/internal/core"
)

func TestNewFighterStatRange(t *testing.T) {
	rng := NewRand(12345)

	for i := 0; i < 2000; i++ {
		f := NewFighter("x", "img", 1, rng)

		for _, stat := range []int{f.Strength, f.Defense, f.Speed} {
			assert.GreaterOrEqual(t, stat, MinStat)
			assert.LessOrEqual(t, stat, MaxStat)
		}
		assert.GreaterOrEqual(t, f.Health, float64(MinStat))
		assert.LessOrEqual(t, f.Health, float64(MaxStat))
		assert.Equal(t, f.Health, f.MaxHealth, "max health must equal initial health")
		assert.True(t, f.Active)
		assert.Equal(t, core.Vec2{}, f.Pos)
		assert.Equal(t, core.Vec2{}, f.Vel)
		assert.Zero(t, f.LastAIAction)
	}
}

func TestNewFighterDrawOrder(t *testing.T) {
	rng := &scriptedRand{ints: []int{0, 80, 40, 10}}

	f := NewFighter("Rocky", "rocky.png", 2, rng)

	assert.Equal(t, "Rocky", f.Name)
	assert.Equal(t, "rocky.png", f.ImageRef)
	assert.Equal(t, 2, f.ID)
	assert.Equal(t, 20, f.Strength)
	assert.Equal(t, 100, f.Defense)
	assert.Equal(t, 60, f.Speed)
	assert.Equal(t, 30.0, f.Health)
	assert.Equal(t, 30.0, f.MaxHealth)
}

func TestDerivedSize(t *testing.T) {
	assert.Equal(t, 60.0, DerivedSize(0))
	assert.Equal(t, 100.0, DerivedSize(100))
	assert.Equal(t, 80.0, DerivedSize(50))

	prev := DerivedSize(0)
	for h := 1; h <= 100; h++ {
		size := DerivedSize(float64(h))
		assert.GreaterOrEqual(t, size, prev, "size must not shrink as health grows (h=%d)", h)
		prev = size
	}
}

func TestFighterGeometry(t *testing.T) {
	f := newTestFighter(1, 50, 50, 50, 50)
	f.Pos = core.V(10, 20)
	f.Vel = core.V(3, 4)

	assert.Equal(t, core.V(50, 60), f.Center())
	assert.Equal(t, 40.0, f.Radius())
	assert.Equal(t, 5.0, f.SpeedMagnitude())
}

func TestSnapshotDisplayHealth(t *testing.T) {
	tests := []struct {
		name     string
		health   float64
		display  int
		fraction float64
	}{
		{"full", 80, 80, 1},
		{"fractional rounds up", 12.1, 13, 12.1 / 80},
		{"negative clamps to zero", -3.2, 0, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := newTestFighter(1, 50, 50, 50, 80)
			f.Health = tc.health
			s := f.Snapshot()

			assert.Equal(t, tc.display, s.DisplayHealth())
			assert.InDelta(t, tc.fraction, s.HealthFraction(), 1e-9)
		})
	}
}
