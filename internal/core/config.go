package core

// RuntimeConfig contains configuration passed to the game at initialization.
type RuntimeConfig struct {
	ScreenW  int // Screen width in characters
	ScreenH  int // Screen height in characters
	TickRate int // Simulation ticks per second (default 60)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// GameState represents the current state of a game.
// Returned by State() to communicate status to the platform.
type GameState struct {
	Score         int  // Total score for the run
	Level         int  // Current level id
	GameOver      bool // Lives ran out
	LevelComplete bool // Goal reached, waiting for the next level
	Finished      bool // Every level completed
	Paused        bool // Ticks suspended by the player
}

// Ended reports whether the run is over and its score should be recorded.
func (s GameState) Ended() bool {
	return s.GameOver || s.Finished
}

// StepResult is returned by Step() after each simulation tick.
type StepResult struct {
	State GameState
}
