package mines

import (
	"testing"
	"time"
)

// fakeClock is a manually advanced Clock.
type fakeClock struct {
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

// layout builds cells from a string: 'x' is a mine, anything else is safe.
func layout(s string) []Cell {
	cells := make([]Cell, 0, len(s))
	for _, r := range s {
		if r == 'x' {
			cells = append(cells, WithMine())
		} else {
			cells = append(cells, WithoutMine())
		}
	}
	return cells
}

func mustBoard(t *testing.T, columns int, cells []Cell, opts ...Option) *Board {
	t.Helper()
	b, err := NewBoard(columns, cells, opts...)
	if err != nil {
		t.Fatalf("NewBoard() failed: %v", err)
	}
	return b
}

func mustAction(t *testing.T, b *Board, index int, action Action) *Board {
	t.Helper()
	next, err := b.SendAction(index, action)
	if err != nil {
		t.Fatalf("SendAction(%d, %v) failed: %v", index, action, err)
	}
	return next
}

func revealedAt(t *testing.T, b *Board, x, y int) bool {
	t.Helper()
	cell, ok := b.CellAtXY(x, y)
	if !ok {
		t.Fatalf("CellAtXY(%d, %d) is outside the board", x, y)
	}
	return cell.Revealed()
}
