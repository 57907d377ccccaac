package mines

// Outcome is the state of a game as seen from its board.
type Outcome int

const (
	OutcomePlaying Outcome = iota
	OutcomeWon
	OutcomeLost
)

// String returns a human-readable name for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomePlaying:
		return "playing"
	case OutcomeWon:
		return "won"
	case OutcomeLost:
		return "lost"
	default:
		return "unknown"
	}
}

// IsDefeated reports whether a mine has been revealed.
func (b *Board) IsDefeated() bool {
	for _, cell := range b.cells {
		if cell.Detonated() {
			return true
		}
	}
	return false
}

// IsVictorious reports whether every safe cell is revealed and no mine is.
// A board with no safe cells is won as long as nothing has detonated.
func (b *Board) IsVictorious() bool {
	for _, cell := range b.cells {
		if (!cell.mined && !cell.revealed) || cell.Detonated() {
			return false
		}
	}
	return true
}

// Outcome folds IsDefeated and IsVictorious into one value.
func (b *Board) Outcome() Outcome {
	switch {
	case b.IsDefeated():
		return OutcomeLost
	case b.IsVictorious():
		return OutcomeWon
	default:
		return OutcomePlaying
	}
}
