package core

// RuntimeConfig contains per-session settings handed to the platform layer.
type RuntimeConfig struct {
	ScreenW    int   // Screen width in characters
	ScreenH    int   // Screen height in characters
	TickRate   int   // Simulation ticks per second (default 60)
	Seed       int64 // RNG seed; 0 means seed from the clock
	CellWidth  int   // Arena pixels per terminal column
	CellHeight int   // Arena pixels per terminal row
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:    80,
		ScreenH:    24,
		TickRate:   60,
		Seed:       0,
		CellWidth:  10,
		CellHeight: 20,
	}
}
