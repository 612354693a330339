package core

import "time"

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Host frames per second (default 60)
	Seed     int64 // RNG seed for platform generation
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

// GameState represents the current state of a game session.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	Perfects int  // Landings inside the perfect area
	GameOver bool // Whether the session has ended
	Paused   bool // Whether the session is paused
}

// StepResult is returned by Game.Step() after each host frame.
type StepResult struct {
	State GameState
}

// Game is the interface the platform drives. Implementations hold pure
// simulation logic and know nothing about the terminal.
type Game interface {
	// ID returns a unique identifier, also used as the leaderboard key.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset starts a fresh session.
	Reset(cfg RuntimeConfig)

	// Step applies the frame's input and advances the simulation to now.
	// The first frame after Reset only establishes the clock baseline.
	// A non-nil error is fatal for the session.
	Step(in InputFrame, now time.Time) (StepResult, error)

	// Render draws the current state into dst.
	Render(dst *Screen)

	// State returns the current session status.
	State() GameState
}
