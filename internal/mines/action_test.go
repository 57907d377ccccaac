package mines

import (
	"errors"
	"testing"
)

func TestRevealAlreadyRevealedIsNoop(t *testing.T) {
	b := mustBoard(t, 2, layout("x."))
	b = mustAction(t, b, 1, ActionReveal)
	b = b.Undo()
	b = mustAction(t, b, 1, ActionReveal)

	again := mustAction(t, b, 1, ActionReveal)
	if again != b {
		t.Error("revealing a revealed cell should return the same board")
	}
	if again.String() != b.String() {
		t.Errorf("board changed: %q vs %q", again.String(), b.String())
	}
	if again.CanUndo() != b.CanUndo() {
		t.Error("redundant reveal must not change undo availability")
	}
}

func TestRevealStopsAtMinedNeighbors(t *testing.T) {
	b := mustBoard(t, 2, layout(
		"x."+
			"..",
	))

	b = mustAction(t, b, 1, ActionReveal)

	if !revealedAt(t, b, 1, 0) {
		t.Error("target cell should be revealed")
	}
	if revealedAt(t, b, 0, 1) || revealedAt(t, b, 1, 1) {
		t.Error("a cell with mined neighbors must not cascade")
	}
}

func TestRevealMineDoesNotCascade(t *testing.T) {
	b := mustBoard(t, 2, layout(
		"x."+
			"..",
	))

	b = mustAction(t, b, 0, ActionReveal)

	if !revealedAt(t, b, 0, 0) {
		t.Error("mine should be revealed")
	}
	if revealedAt(t, b, 1, 0) || revealedAt(t, b, 0, 1) || revealedAt(t, b, 1, 1) {
		t.Error("a detonation must not reveal other cells")
	}
}

func TestRevealCascadesThroughEmptyCells(t *testing.T) {
	b := mustBoard(t, 2, layout(
		"x."+
			"..",
	))

	b = mustAction(t, b, 3, ActionReveal)

	if !revealedAt(t, b, 1, 0) || !revealedAt(t, b, 0, 1) || !revealedAt(t, b, 1, 1) {
		t.Errorf("empty cell should reveal its neighbors, got\n%s", b)
	}
	if revealedAt(t, b, 0, 0) {
		t.Error("flood fill must never reveal a mine")
	}
}

func TestRevealCascadeStopsAtBoundary(t *testing.T) {
	b := mustBoard(t, 3, layout(
		"..."+
			".x."+
			"...",
	))

	b = mustAction(t, b, 0, ActionReveal)

	if !revealedAt(t, b, 1, 0) || !revealedAt(t, b, 0, 1) {
		t.Error("neighbors of the empty corner should be revealed")
	}
	if revealedAt(t, b, 2, 0) || revealedAt(t, b, 0, 2) || revealedAt(t, b, 1, 2) {
		t.Errorf("cascade went past numbered cells:\n%s", b)
	}
}

func TestRevealOpensWholeRegion(t *testing.T) {
	b := mustBoard(t, 5, layout(
		"....."+
			"....."+
			"xxxxx"+
			"....."+
			".....",
	))

	b = mustAction(t, b, 0, ActionReveal)

	want := "....." + "\n" +
		"11111" + "\n" +
		"#####" + "\n" +
		"#####" + "\n" +
		"#####"
	if got := b.String(); got != want {
		t.Errorf("String() =\n%s\nwant\n%s", got, want)
	}
}

func TestRevealSkipsFlaggedCells(t *testing.T) {
	b := mustBoard(t, 3, layout("..."))
	b = mustAction(t, b, 1, ActionFlag)
	b = mustAction(t, b, 0, ActionReveal)

	if cell, _ := b.CellAt(1); cell.Status() != StatusFlagged {
		t.Errorf("flagged cell status = %v, want flagged", cell.Status())
	}
	if cell, _ := b.CellAt(2); cell.Revealed() {
		t.Error("cascade should not pass through a flagged cell")
	}
}

func TestRevealFlaggedTargetDropsFlag(t *testing.T) {
	b := mustBoard(t, 2, layout("x."))
	b = mustAction(t, b, 1, ActionFlag)
	b = mustAction(t, b, 1, ActionReveal)

	cell, _ := b.CellAt(1)
	if !cell.Revealed() || cell.Flagged() {
		t.Errorf("revealed flagged cell = %+v, want revealed without flag", cell)
	}
}

func TestSendActionDoesNotMutateReceiver(t *testing.T) {
	before := mustBoard(t, 3, layout("........x"))
	snapshot := before.String()

	after := mustAction(t, before, 0, ActionReveal)
	after = mustAction(t, after, 8, ActionFlag)

	if before.String() != snapshot {
		t.Errorf("original board changed from %q to %q", snapshot, before.String())
	}
	if before.CanUndo() {
		t.Error("original board gained history")
	}
	if after.String() == snapshot {
		t.Error("derived board should differ from the original")
	}
}

func TestFlagRevealedCellFails(t *testing.T) {
	b := mustBoard(t, 2, layout("x."))
	b = mustAction(t, b, 1, ActionReveal)

	next, err := b.SendAction(1, ActionFlag)
	if !errors.Is(err, ErrIllegalState) {
		t.Errorf("SendAction(flag) error = %v, want ErrIllegalState", err)
	}
	if next != nil {
		t.Error("failed action should not return a board")
	}
	if cell, _ := b.CellAt(1); cell.Flagged() {
		t.Error("failed flag modified the board")
	}
}

func TestSendActionOutOfRange(t *testing.T) {
	b := mustBoard(t, 2, layout(".."))

	for _, index := range []int{-1, 2, 100} {
		if _, err := b.SendAction(index, ActionReveal); !errors.Is(err, ErrIndexOutOfRange) {
			t.Errorf("SendAction(%d) error = %v, want ErrIndexOutOfRange", index, err)
		}
	}
}

func TestSendActionUnknown(t *testing.T) {
	b := mustBoard(t, 2, layout(".."))
	if _, err := b.SendAction(0, Action(99)); err == nil {
		t.Error("unknown action should fail")
	}
}
