package core

// RuntimeConfig contains configuration passed to the engine at reset.
type RuntimeConfig struct {
	ScreenW  int // Screen width in characters
	ScreenH  int // Screen height in characters
	TickRate int // Simulation ticks per second
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
	}
}

// GameState communicates attempt status to the platform after a tick.
type GameState struct {
	Solved   bool   // Whether the quest evaluator returned success
	Steps    int    // Accepted moves so far
	Guidance string // Player-facing hint when not yet solved
}

// StepResult is returned by the engine after each simulation tick.
type StepResult struct {
	State GameState
}
