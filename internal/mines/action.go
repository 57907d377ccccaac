package mines

import (
	"fmt"
	"slices"
)

// Action is a player action targeting a single cell.
type Action int

const (
	ActionReveal Action = iota
	ActionFlag
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionReveal:
		return "reveal"
	case ActionFlag:
		return "flag"
	default:
		return "unknown"
	}
}

// SendAction applies action to the cell at index and returns the resulting board.
// The receiver is never modified. Revealing an already revealed cell returns
// the receiver itself and records no history.
func (b *Board) SendAction(index int, action Action) (*Board, error) {
	if index < 0 || index >= len(b.cells) {
		return nil, fmt.Errorf("mines: index %d outside board of %d cells: %w", index, len(b.cells), ErrIndexOutOfRange)
	}

	switch action {
	case ActionReveal:
		return b.reveal(index)
	case ActionFlag:
		return b.flag(index)
	default:
		return nil, fmt.Errorf("mines: unknown action %d: %w", int(action), ErrIllegalState)
	}
}

func (b *Board) flag(index int) (*Board, error) {
	flagged, err := b.cells[index].Flag()
	if err != nil {
		return nil, err
	}

	cells := slices.Clone(b.cells)
	cells[index] = flagged

	score := b.score.start(b.clock()).withFlag(index)
	return newBoard(b.columns, cells, score, b.cells, b.clock)
}

func (b *Board) reveal(index int) (*Board, error) {
	if b.cells[index].revealed {
		return b, nil
	}

	cells := floodReveal(b.columns, slices.Clone(b.cells), index)
	return newBoard(b.columns, cells, b.score.start(b.clock()), b.cells, b.clock)
}

// floodReveal reveals cells[start] and, breadth first, every untouched cell
// reachable through cells with no mined neighbors. Expansion stops at numbered
// cells and at a detonated mine. cells is modified in place.
func floodReveal(columns int, cells []Cell, start int) []Cell {
	rows := len(cells) / columns
	queued := make([]bool, len(cells))
	queue := []int{start}
	queued[start] = true

	for len(queue) > 0 {
		i := queue[0]
		queue = queue[1:]

		cell := cells[i].Reveal()
		cells[i] = cell
		if cell.Detonated() || cell.minedNeighbors > 0 {
			continue
		}

		for _, dir := range directions {
			n, ok := NeighborIndex(columns, rows, i, dir)
			if !ok || queued[n] || cells[n].Status() != StatusUntouched {
				continue
			}
			queued[n] = true
			queue = append(queue, n)
		}
	}

	return cells
}
