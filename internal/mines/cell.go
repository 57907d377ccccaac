package mines

import "fmt"

// Status is the display state of a cell. It is always derived from the
// cell's flags and never stored.
type Status int

const (
	StatusUntouched Status = iota
	StatusFlagged
	StatusRevealed
	StatusDetonated
)

// String returns a human-readable name for the status.
func (s Status) String() string {
	switch s {
	case StatusUntouched:
		return "untouched"
	case StatusFlagged:
		return "flagged"
	case StatusRevealed:
		return "revealed"
	case StatusDetonated:
		return "detonated"
	default:
		return "unknown"
	}
}

// Cell is a single tile of the board.
// Cells are values: Flag and Reveal return a new Cell and never modify the receiver.
type Cell struct {
	mined          bool
	flagged        bool
	revealed       bool
	minedNeighbors int
}

// WithMine returns a hidden, unflagged cell holding a mine.
func WithMine() Cell {
	return Cell{mined: true}
}

// WithoutMine returns a hidden, unflagged cell without a mine.
func WithoutMine() Cell {
	return Cell{}
}

// Mined reports whether the cell holds a mine.
func (c Cell) Mined() bool {
	return c.mined
}

// Flagged reports whether the player has flagged the cell.
func (c Cell) Flagged() bool {
	return c.flagged
}

// Revealed reports whether the cell has been revealed.
func (c Cell) Revealed() bool {
	return c.revealed
}

// MinedNeighbors returns how many of the four cardinal neighbors hold a mine.
// The value is computed when the cell is placed on a board.
func (c Cell) MinedNeighbors() int {
	return c.minedNeighbors
}

// Detonated reports whether the cell is a revealed mine.
func (c Cell) Detonated() bool {
	return c.mined && c.revealed
}

// Status projects the cell flags to a single status.
// Precedence: detonated > revealed > flagged > untouched.
func (c Cell) Status() Status {
	switch {
	case c.Detonated():
		return StatusDetonated
	case c.revealed:
		return StatusRevealed
	case c.flagged:
		return StatusFlagged
	default:
		return StatusUntouched
	}
}

// Flag toggles the flag. Flagging a revealed cell is illegal.
func (c Cell) Flag() (Cell, error) {
	if c.revealed {
		return c, fmt.Errorf("mines: cannot flag a revealed cell: %w", ErrIllegalState)
	}
	c.flagged = !c.flagged
	return c, nil
}

// Reveal returns the cell revealed. Any flag is dropped.
func (c Cell) Reveal() Cell {
	c.revealed = true
	c.flagged = false
	return c
}

// withMinedNeighbors is only used while a board is being built.
func (c Cell) withMinedNeighbors(n int) Cell {
	c.minedNeighbors = n
	return c
}
