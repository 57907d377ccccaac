package mines

import (
	"math/rand/v2"
	"testing"
)

func TestNewGameIsNeitherLostNorWon(t *testing.T) {
	b, err := Generate(1, 1, 0)
	if err != nil {
		t.Fatalf("Generate() failed: %v", err)
	}
	if b.IsDefeated() || b.IsVictorious() {
		t.Error("a new game should be neither lost nor won")
	}
	if b.Outcome() != OutcomePlaying {
		t.Errorf("Outcome() = %v, want playing", b.Outcome())
	}
}

func TestGameLostWhenMineRevealed(t *testing.T) {
	b := mustBoard(t, 1, layout("x."))
	if b.IsDefeated() || b.IsVictorious() {
		t.Fatal("untouched board should be neither lost nor won")
	}

	b = mustAction(t, b, 0, ActionReveal)
	if !b.IsDefeated() {
		t.Error("revealing a mine should lose the game")
	}
	if b.IsVictorious() {
		t.Error("a lost game cannot be won")
	}
	if b.Outcome() != OutcomeLost {
		t.Errorf("Outcome() = %v, want lost", b.Outcome())
	}
}

func TestGameWonWhenAllSafeCellsRevealed(t *testing.T) {
	b := mustBoard(t, 1, layout(".x."))

	b = mustAction(t, b, 0, ActionReveal)
	if b.IsDefeated() || b.IsVictorious() {
		t.Fatal("one safe cell left: game should still be in progress")
	}

	b = mustAction(t, b, 2, ActionReveal)
	if b.IsDefeated() {
		t.Error("no mine was revealed")
	}
	if !b.IsVictorious() {
		t.Error("every safe cell is revealed: game should be won")
	}
	if b.Outcome() != OutcomeWon {
		t.Errorf("Outcome() = %v, want won", b.Outcome())
	}
}

func TestAllMinedBoardIsWonImmediately(t *testing.T) {
	b, err := Generate(2, 2, 4)
	if err != nil {
		t.Fatalf("Generate() failed: %v", err)
	}
	if !b.IsVictorious() {
		t.Error("a board with no safe cells is won until a mine is revealed")
	}

	b = mustAction(t, b, 0, ActionReveal)
	if b.IsVictorious() || !b.IsDefeated() {
		t.Error("revealing a mine should lose even a board with no safe cells")
	}
}

func TestRemainingMines(t *testing.T) {
	b := mustBoard(t, 2, layout("x..."))
	if b.RemainingMines() != 1 {
		t.Errorf("RemainingMines() = %d, want 1", b.RemainingMines())
	}

	b = mustAction(t, b, 1, ActionFlag)
	b = mustAction(t, b, 2, ActionFlag)
	if b.RemainingMines() != -1 {
		t.Errorf("RemainingMines() = %d, want -1", b.RemainingMines())
	}
	if b.FlagCount() != 2 {
		t.Errorf("FlagCount() = %d, want 2", b.FlagCount())
	}
}

func TestNeverWonAndLost(t *testing.T) {
	rng := rand.New(rand.NewPCG(11, 13))

	for game := range 200 {
		b, err := Generate(1+rng.IntN(6), 1+rng.IntN(6), rng.IntN(8), WithRand(rng))
		if err != nil {
			t.Fatalf("Generate() failed: %v", err)
		}

		for range 20 {
			switch rng.IntN(3) {
			case 0:
				b = b.Undo()
			default:
				action := ActionReveal
				if rng.IntN(2) == 0 {
					action = ActionFlag
				}
				next, err := b.SendAction(rng.IntN(b.Len()), action)
				if err != nil {
					continue // flagging a revealed cell
				}
				b = next
			}

			if b.IsDefeated() && b.IsVictorious() {
				t.Fatalf("game %d is both won and lost:\n%s", game, b)
			}
		}
	}
}

func TestSnapshot(t *testing.T) {
	b := mustBoard(t, 2, layout("x..."))
	b = mustAction(t, b, 1, ActionFlag)

	snap := b.Snapshot()
	if snap.Columns != 2 || snap.Rows != 2 || snap.Mines != 1 {
		t.Errorf("Snapshot() dimensions = %+v", snap)
	}
	if snap.Statuses[1] != StatusFlagged {
		t.Errorf("Statuses[1] = %v, want flagged", snap.Statuses[1])
	}
	if !snap.Started || !snap.CanUndo || snap.FlagUses != 1 {
		t.Errorf("Snapshot() = %+v, want started, undoable, one flag", snap)
	}
	if snap.Outcome != OutcomePlaying {
		t.Errorf("Outcome = %v, want playing", snap.Outcome)
	}
}
