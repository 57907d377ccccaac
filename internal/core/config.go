package core

import "time"

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Screen refreshes per second (the timer only needs 1)
	Seed     int64 // RNG seed for mine placement
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 4,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    float64 // Current score
	GameOver bool    // Whether the game has ended, won or lost
	Won      bool    // Whether the game ended in a victory
	Paused   bool    // Whether the game is paused
}

// StepResult is returned by Game.Step() after input is applied.
type StepResult struct {
	State GameState
}

// Summary describes a round for result records.
type Summary struct {
	Elapsed  time.Duration // Time since the first action
	Undos    int
	FlagUses int // Distinct cells ever flagged
}
