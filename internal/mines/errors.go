package mines

import "errors"

var (
	// ErrInvalidDimensions is returned when a board cannot be laid out:
	// a non-positive column count, no cells, or a cell count that is not
	// a multiple of the column count.
	ErrInvalidDimensions = errors.New("invalid board dimensions")

	// ErrInconsistentHistory is returned when the previous cells of a board
	// do not have the same length as its current cells.
	ErrInconsistentHistory = errors.New("inconsistent board history")

	// ErrIllegalState is returned when an action does not apply to a cell,
	// such as flagging a revealed cell.
	ErrIllegalState = errors.New("illegal cell state")

	// ErrIndexOutOfRange is returned when an action targets a cell index
	// outside the board.
	ErrIndexOutOfRange = errors.New("cell index out of range")
)
