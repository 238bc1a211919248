package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and to convert millisecond
// cadences into tick counts.
type RuntimeConfig struct {
	ScreenW  int // Screen width in characters
	ScreenH  int // Screen height in characters
	TickRate int // Simulation ticks per second
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
// 25 ticks per second matches the 40ms physics cadence.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 25,
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score     int  // Current score
	BestScore int  // Best score known to the game
	Health    int  // Remaining player health
	Kills     int  // Enemies destroyed this run
	Ticks     int  // Elapsed simulation ticks this run
	GameOver  bool // Whether the game has ended
	Paused    bool // Whether the game is paused
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
