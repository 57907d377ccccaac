package minesweeper

import "github.com/vovakirdan/tui-mines/internal/mines"

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StateWon         GameStateType = "won"
	StateLost        GameStateType = "lost"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the game state for determinism testing and replay.
type Snapshot struct {
	Preset  string
	Board   mines.Snapshot
	CursorX int
	CursorY int
	Actions int // Actions that changed the board
	Score   float64
	State   GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.board.IsVictorious():
		state = StateWon
	case g.board.IsDefeated():
		state = StateLost
	}

	return Snapshot{
		Preset:  g.active.Name,
		Board:   g.board.Snapshot(),
		CursorX: g.cursorX,
		CursorY: g.cursorY,
		Actions: g.actions,
		Score:   g.board.CurrentScore(),
		State:   state,
	}
}
