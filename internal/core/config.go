package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The game uses this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in cells (terminal) or pixels (window)
	ScreenH  int   // Screen height in cells (terminal) or pixels (window)
	TickRate int   // Platform ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the coarse state of the game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Final score formula applied to current counters
	Running  bool // Whether a round is in progress
	GameOver bool // Whether the last round has ended
}

// StepResult is returned by Game.Step() after each platform tick.
type StepResult struct {
	State GameState
}
