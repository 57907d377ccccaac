package mines

// Snapshot captures the observable state of a board for comparisons in tests
// and replays.
type Snapshot struct {
	Columns  int
	Rows     int
	Statuses []Status
	Mines    int
	Undos    int
	FlagUses int
	Started  bool
	CanUndo  bool
	Outcome  Outcome
}

// Snapshot returns the current board snapshot.
func (b *Board) Snapshot() Snapshot {
	statuses := make([]Status, len(b.cells))
	for i, cell := range b.cells {
		statuses[i] = cell.Status()
	}

	return Snapshot{
		Columns:  b.columns,
		Rows:     b.rows,
		Statuses: statuses,
		Mines:    b.MineCount(),
		Undos:    b.score.Undos,
		FlagUses: b.score.FlagUses(),
		Started:  b.score.Started(),
		CanUndo:  b.CanUndo(),
		Outcome:  b.Outcome(),
	}
}
