package mines

// CanUndo reports whether the board still holds the state before the last action.
func (b *Board) CanUndo() bool {
	return b.previous != nil
}

// Undo returns the board as it was before the last reveal or flag, with the
// undo counted against the score. Only one step is kept: undoing a board
// without history returns the receiver unchanged.
func (b *Board) Undo() *Board {
	if b.previous == nil {
		return b
	}

	score := b.score.clone()
	score.Undos++

	undone, err := newBoard(b.columns, b.previous, score, nil, b.clock)
	if err != nil {
		// previous was checked against the cell count when b was built
		panic(err)
	}
	return undone
}
