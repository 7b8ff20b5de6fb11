package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Frame callbacks per second requested from the scheduler (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
	Best     int   // Best score loaded from storage at boot
}

// Phase is the coarse game state exposed to the platform.
type Phase string

const (
	PhaseMenu    Phase = "menu"
	PhasePlaying Phase = "playing"
	PhasePaused  Phase = "paused"
	PhaseOver    Phase = "over"
)

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Phase    Phase
	Score    int  // Current score
	Best     int  // Best score across runs, including the current one
	Lives    int  // Remaining lives
	Wave     int  // Level (asteroids) or section (trench)
	GameOver bool // Whether the run has ended
	Victory  bool // Run ended by destroying the objective
	Paused   bool // Whether the game is paused
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}
