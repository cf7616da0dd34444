package core

// Fixed play-field dimensions. The simulation never re-queries them mid-run.
const (
	WorldWidth  = 960
	WorldHeight = 360
)

// RuntimeConfig contains configuration passed to the simulation at initialization.
type RuntimeConfig struct {
	WorldW   float64 // Play-field width in world units
	WorldH   float64 // Play-field height in world units
	TickRate int     // Simulation ticks per second (default 60)
	Seed     int64   // RNG seed for deterministic generation
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		WorldW:   WorldWidth,
		WorldH:   WorldHeight,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}
