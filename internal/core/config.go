package core

// RuntimeConfig is what the platform hands a game on Reset.
type RuntimeConfig struct {
	ScreenW  int // Screen width in cells
	ScreenH  int // Screen height in cells
	TickRate int // Frames per second
}

// DefaultConfig returns the runtime defaults used before the first resize.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// GameState is the status a game reports to the platform after each frame.
type GameState struct {
	Ticks     uint64 // Simulation ticks run so far
	Remaining int    // Unbroken bricks
	Paused    bool
	BallLost  bool // The ball has left the arena and will not return
	Cleared   bool // Every brick is broken
}

// Over reports whether the round has ended.
func (s GameState) Over() bool {
	return s.BallLost || s.Cleared
}

// StepResult is returned by Game.Step.
type StepResult struct {
	State GameState
}
