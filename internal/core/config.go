package core

import "time"

// RuntimeConfig contains settings the platform passes to the game at startup.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW      int           // Screen width in characters
	ScreenH      int           // Screen height in characters
	TickInterval time.Duration // Fixed simulation step
	Seed         int64         // RNG seed for deterministic gameplay
}

// SessionState is the top-level lifecycle state of a play session.
type SessionState int

const (
	StateIdle    SessionState = iota // Waiting for the first jump
	StateRunning                     // Physics and obstacles active
	StatePaused                      // Frozen, waiting for resume
	StateOver                        // Collision happened, waiting for restart
)

// String returns a human-readable name for the state.
func (s SessionState) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateRunning:
		return "Running"
	case StatePaused:
		return "Paused"
	case StateOver:
		return "Over"
	default:
		return "Unknown"
	}
}

// GameState is the compact status the platform inspects after each step.
type GameState struct {
	Score   int
	Best    int
	State   SessionState
	Overlay bool // A modal (summary or best score) is waiting for acknowledgement
}

// Running reports whether the clock should be ticking.
func (g GameState) Running() bool {
	return g.State == StateRunning
}

// StepResult is returned after applying input or advancing one tick.
// Events are in the order they happened.
type StepResult struct {
	State  GameState
	Events []Event
}
