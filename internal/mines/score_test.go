package mines

import (
	"testing"
	"time"
)

func newScoreBoard(t *testing.T, clock *fakeClock) *Board {
	t.Helper()
	b, err := Generate(10, 10, 0, WithClock(clock.Now))
	if err != nil {
		t.Fatalf("Generate() failed: %v", err)
	}
	return b
}

func TestScoreBeforeFirstAction(t *testing.T) {
	clock := newFakeClock()
	b := newScoreBoard(t, clock)

	clock.Advance(time.Hour)
	if got := b.CurrentScore(); got != 100 {
		t.Errorf("CurrentScore() = %v, want 100", got)
	}
	if b.ScoreState().Started() {
		t.Error("clock should not start before the first action")
	}
}

func TestScoreFlagPenalty(t *testing.T) {
	clock := newFakeClock()
	b := newScoreBoard(t, clock)

	b = mustAction(t, b, 0, ActionFlag)
	b = mustAction(t, b, 1, ActionFlag)

	if got := b.CurrentScore(); got != 98 {
		t.Errorf("CurrentScore() = %v, want 98", got)
	}
}

func TestScoreFlagCountedOncePerCell(t *testing.T) {
	clock := newFakeClock()
	b := newScoreBoard(t, clock)

	for i, want := range []bool{true, false, true} {
		b = mustAction(t, b, 0, ActionFlag)
		cell, _ := b.CellAt(0)
		if cell.Flagged() != want {
			t.Fatalf("toggle %d: Flagged() = %v, want %v", i, cell.Flagged(), want)
		}
		if got := b.CurrentScore(); got != 99 {
			t.Errorf("toggle %d: CurrentScore() = %v, want 99", i, got)
		}
	}
}

func TestScoreUndoPenalty(t *testing.T) {
	clock := newFakeClock()
	b := newScoreBoard(t, clock)

	b = mustAction(t, b, 0, ActionReveal)
	b = b.Undo()
	if got := b.CurrentScore(); got != 95 {
		t.Errorf("CurrentScore() = %v, want 95", got)
	}

	b = mustAction(t, b, 0, ActionReveal)
	b = b.Undo()
	if got := b.CurrentScore(); got != 90 {
		t.Errorf("CurrentScore() = %v, want 90", got)
	}
}

func TestScoreTimePenalty(t *testing.T) {
	clock := newFakeClock()
	b := newScoreBoard(t, clock)

	clock.Advance(time.Minute)
	b = mustAction(t, b, 0, ActionFlag)

	tests := []struct {
		elapsed time.Duration
		want    float64
	}{
		{0, 99},
		{time.Second, 98.8},
		{3 * time.Second, 98.4},
		{1250 * time.Millisecond, 98.8}, // 98.75 rounds half up
		{10 * time.Second, 97},
		{time.Hour, 0},
	}

	for _, tt := range tests {
		t.Run(tt.elapsed.String(), func(t *testing.T) {
			now := b.ScoreState().StartTime.Add(tt.elapsed)
			if got := b.ScoreAt(now); got != tt.want {
				t.Errorf("ScoreAt(+%v) = %v, want %v", tt.elapsed, got, tt.want)
			}
		})
	}
}

func TestScoreFollowsClock(t *testing.T) {
	clock := newFakeClock()
	b := newScoreBoard(t, clock)
	b = mustAction(t, b, 0, ActionReveal)

	first := b.CurrentScore()
	clock.Advance(5 * time.Second)
	second := b.CurrentScore()

	if first != 100 {
		t.Errorf("score right after the first action = %v, want 100", first)
	}
	if second != 99 {
		t.Errorf("score five seconds later = %v, want 99", second)
	}
	if b.Elapsed(clock.Now()) != 5*time.Second {
		t.Errorf("Elapsed() = %v, want 5s", b.Elapsed(clock.Now()))
	}
}

func TestScoreStateIsCopied(t *testing.T) {
	clock := newFakeClock()
	b := newScoreBoard(t, clock)
	b = mustAction(t, b, 0, ActionFlag)

	state := b.ScoreState()
	state.Flagged[5] = struct{}{}
	state.Undos = 10

	if b.ScoreState().FlagUses() != 1 || b.ScoreState().Undos != 0 {
		t.Error("ScoreState() must return a copy")
	}
}

func TestScoreFailedActionDoesNotStartClock(t *testing.T) {
	clock := newFakeClock()
	b := newScoreBoard(t, clock)

	if _, err := b.SendAction(-1, ActionReveal); err == nil {
		t.Fatal("out of range action should fail")
	}
	if b.ScoreState().Started() {
		t.Error("failed action started the clock")
	}
}
