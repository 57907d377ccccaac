// Package mines implements the rules of a Minesweeper-style puzzle: cells,
// board construction with 4-connected neighbor counts, flood-fill reveal,
// single-step undo, outcome detection and a time-penalized score.
//
// A Board is immutable. Every state-changing action returns a new Board and
// leaves the old one valid, so a Board can be shared freely between readers.
package mines

import (
	"fmt"
	"iter"
	"math/rand/v2"
	"slices"
	"strings"
)

// Direction is one of the four cardinal directions.
// Diagonals are never neighbors.
type Direction int

const (
	Up Direction = iota
	Right
	Down
	Left
)

// directions lists every direction in the order neighbors are visited.
var directions = [...]Direction{Up, Right, Down, Left}

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	default:
		return "unknown"
	}
}

// NeighborIndex returns the index of the cell next to index in the given
// direction on a columns x rows board. The second result is false when the
// move would cross a board edge.
func NeighborIndex(columns, rows, index int, dir Direction) (int, bool) {
	x := index % columns
	y := index / columns

	switch dir {
	case Up:
		if y > 0 {
			return columns*(y-1) + x, true
		}
	case Right:
		if x < columns-1 {
			return columns*y + x + 1, true
		}
	case Down:
		if y < rows-1 {
			return columns*(y+1) + x, true
		}
	case Left:
		if x > 0 {
			return columns*y + x - 1, true
		}
	}
	return 0, false
}

// Board is the full grid of cells plus the one-step history and score state.
type Board struct {
	columns  int
	rows     int
	cells    []Cell
	previous []Cell // nil when there is nothing to undo
	score    ScoreState
	clock    Clock
}

// NewBoard lays out cells in rows of the given width.
// The cells are copied; each safe cell gets its mined neighbor count.
func NewBoard(columns int, cells []Cell, opts ...Option) (*Board, error) {
	o := buildOptions(opts)
	return newBoard(columns, cells, o.score, o.previous, o.clock)
}

// newBoard validates everything before allocating, so a failed call leaves
// no partial state behind.
func newBoard(columns int, cells []Cell, score ScoreState, previous []Cell, clock Clock) (*Board, error) {
	if columns <= 0 {
		return nil, fmt.Errorf("mines: column count %d must be positive: %w", columns, ErrInvalidDimensions)
	}
	if len(cells) == 0 || len(cells)%columns != 0 {
		return nil, fmt.Errorf("mines: %d cells cannot be split into rows of %d: %w",
			len(cells), columns, ErrInvalidDimensions)
	}
	if previous != nil && len(previous) != len(cells) {
		return nil, fmt.Errorf("mines: previous board has %d cells, want %d: %w",
			len(previous), len(cells), ErrInconsistentHistory)
	}

	rows := len(cells) / columns
	owned := make([]Cell, len(cells))
	for i, cell := range cells {
		if !cell.mined {
			cell = cell.withMinedNeighbors(countMinedNeighbors(columns, rows, cells, i))
		}
		owned[i] = cell
	}

	return &Board{
		columns:  columns,
		rows:     rows,
		cells:    owned,
		previous: slices.Clone(previous),
		score:    score.clone(),
		clock:    clock,
	}, nil
}

func countMinedNeighbors(columns, rows int, cells []Cell, index int) int {
	count := 0
	for _, dir := range directions {
		if n, ok := NeighborIndex(columns, rows, index, dir); ok && cells[n].mined {
			count++
		}
	}
	return count
}

// Generate creates a rows x columns board with mineCount mines placed
// uniformly at random. A mine count above the cell total mines every cell.
func Generate(rows, columns, mineCount int, opts ...Option) (*Board, error) {
	if rows <= 0 || columns <= 0 {
		return nil, fmt.Errorf("mines: cannot generate a %dx%d board: %w", rows, columns, ErrInvalidDimensions)
	}
	o := buildOptions(opts)

	cells := make([]Cell, rows*columns)
	for i := range cells {
		if i < mineCount {
			cells[i] = WithMine()
		} else {
			cells[i] = WithoutMine()
		}
	}
	shuffle(o.rng, cells)

	return newBoard(columns, cells, ScoreState{}, nil, o.clock)
}

// shuffle is a Fisher-Yates shuffle. A nil rng uses the global source.
func shuffle(rng *rand.Rand, cells []Cell) {
	intN := rand.IntN
	if rng != nil {
		intN = rng.IntN
	}
	for i := len(cells) - 1; i > 0; i-- {
		j := intN(i + 1)
		cells[i], cells[j] = cells[j], cells[i]
	}
}

// Columns returns the board width.
func (b *Board) Columns() int {
	return b.columns
}

// Rows returns the board height.
func (b *Board) Rows() int {
	return b.rows
}

// Len returns the number of cells.
func (b *Board) Len() int {
	return len(b.cells)
}

// Index converts coordinates to a cell index. It does not check bounds.
func (b *Board) Index(x, y int) int {
	return b.columns*y + x
}

// Coordinates converts a cell index to (x, y).
func (b *Board) Coordinates(index int) (x, y int) {
	return index % b.columns, index / b.columns
}

// CellAt returns the cell at index, or false if index is outside the board.
func (b *Board) CellAt(index int) (Cell, bool) {
	if index < 0 || index >= len(b.cells) {
		return Cell{}, false
	}
	return b.cells[index], true
}

// CellAtXY returns the cell at column x of row y, or false if outside the board.
func (b *Board) CellAtXY(x, y int) (Cell, bool) {
	if x < 0 || x >= b.columns || y < 0 || y >= b.rows {
		return Cell{}, false
	}
	return b.cells[b.Index(x, y)], true
}

// All iterates the cells in row-major order.
func (b *Board) All() iter.Seq2[int, Cell] {
	return func(yield func(int, Cell) bool) {
		for i, cell := range b.cells {
			if !yield(i, cell) {
				return
			}
		}
	}
}

// Cells returns a copy of the cells in row-major order.
func (b *Board) Cells() []Cell {
	return slices.Clone(b.cells)
}

// MineCount returns the number of mined cells.
func (b *Board) MineCount() int {
	n := 0
	for _, cell := range b.cells {
		if cell.mined {
			n++
		}
	}
	return n
}

// FlagCount returns the number of cells currently flagged.
func (b *Board) FlagCount() int {
	n := 0
	for _, cell := range b.cells {
		if cell.Status() == StatusFlagged {
			n++
		}
	}
	return n
}

// RemainingMines is the classic mine counter: mines minus flags.
// It goes negative when the player places more flags than there are mines.
func (b *Board) RemainingMines() int {
	return b.MineCount() - b.FlagCount()
}

// String renders the board one row per line:
// '#' untouched, 'F' flagged, '*' detonated, '.' revealed with no mined
// neighbors, or the mined neighbor count.
func (b *Board) String() string {
	var sb strings.Builder
	sb.Grow(len(b.cells) + b.rows)

	for i, cell := range b.cells {
		if i > 0 && i%b.columns == 0 {
			sb.WriteByte('\n')
		}
		sb.WriteRune(cellRune(cell))
	}
	return sb.String()
}

func cellRune(c Cell) rune {
	switch c.Status() {
	case StatusDetonated:
		return '*'
	case StatusRevealed:
		if c.minedNeighbors == 0 {
			return '.'
		}
		return rune('0' + c.minedNeighbors)
	case StatusFlagged:
		return 'F'
	default:
		return '#'
	}
}
