package core

// RuntimeConfig contains the settings a platform driver needs to run a game.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Driver ticks per second (default 60)
	Seed     int64 // RNG seed; 0 means use current time in platform layer
	Muted    bool  // Disable audio
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}
