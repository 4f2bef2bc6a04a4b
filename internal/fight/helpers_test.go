package fight

import "github.com/vovakirdan/tui-brawl/internal/core"

// scriptedRand replays fixed sequences, cycling when exhausted.
type scriptedRand struct {
	floats []float64
	ints   []int
	fi, ii int
}

func (r *scriptedRand) Float64() float64 {
	if len(r.floats) == 0 {
		return 0
	}
	v := r.floats[r.fi%len(r.floats)]
	r.fi++
	return v
}

func (r *scriptedRand) Intn(n int) int {
	if len(r.ints) == 0 {
		return 0
	}
	v := r.ints[r.ii%len(r.ints)]
	r.ii++
	return v % n
}

var testArena = Arena{Width: 800, Height: 500}

// newTestFighter builds an active fighter with explicit stats and size.
func newTestFighter(id, strength, defense, speed int, health float64) *Fighter {
	size := DerivedSize(health)
	return &Fighter{
		ID:        id,
		Name:      DefaultName(id),
		Strength:  strength,
		Defense:   defense,
		Speed:     speed,
		Health:    health,
		MaxHealth: health,
		Width:     size,
		Height:    size,
		Active:    true,
	}
}

// centerAt moves f so its center is at (x, y).
func centerAt(f *Fighter, x, y float64) {
	f.Pos = core.V(x-f.Width/2, y-f.Height/2)
}

func ptrTuning() *Tuning {
	t := DefaultTuning()
	return &t
}
