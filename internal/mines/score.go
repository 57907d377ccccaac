package mines

import (
	"maps"
	"math"
	"time"
)

// Score penalties.
const (
	CostPerUndo   = 5.0
	CostPerFlag   = 1.0
	CostPerSecond = 0.2
)

// ScoreState is the bookkeeping the score is computed from.
// It is carried over to every board derived from an action or an undo.
type ScoreState struct {
	// StartTime is when the first action was taken. Zero until then.
	StartTime time.Time

	// Undos counts the undos performed.
	Undos int

	// Flagged holds every index that has ever been flagged.
	// Unflagging does not remove an index.
	Flagged map[int]struct{}
}

// Started reports whether the first action has been taken.
func (s ScoreState) Started() bool {
	return !s.StartTime.IsZero()
}

// FlagUses returns the number of distinct cells ever flagged.
func (s ScoreState) FlagUses() int {
	return len(s.Flagged)
}

func (s ScoreState) clone() ScoreState {
	s.Flagged = maps.Clone(s.Flagged)
	return s
}

// start records now as the start time unless the clock is already running.
func (s ScoreState) start(now time.Time) ScoreState {
	s = s.clone()
	if !s.Started() {
		s.StartTime = now
	}
	return s
}

func (s ScoreState) withFlag(index int) ScoreState {
	s = s.clone()
	if s.Flagged == nil {
		s.Flagged = make(map[int]struct{})
	}
	s.Flagged[index] = struct{}{}
	return s
}

// ScoreState returns a copy of the board's score bookkeeping.
func (b *Board) ScoreState() ScoreState {
	return b.score.clone()
}

// Elapsed returns the time since the first action, or zero before it.
func (b *Board) Elapsed(now time.Time) time.Duration {
	if !b.score.Started() || now.Before(b.score.StartTime) {
		return 0
	}
	return now.Sub(b.score.StartTime)
}

// CurrentScore is ScoreAt for the board clock's current time.
// Two calls may differ as time passes.
func (b *Board) CurrentScore() float64 {
	return b.ScoreAt(b.clock())
}

// ScoreAt returns the score the board would have at now.
// The maximum is the cell count; undos, distinct flagged cells and elapsed
// seconds are subtracted, the result is floored at zero and rounded half up
// to one decimal place. Before the first action the score is the maximum.
func (b *Board) ScoreAt(now time.Time) float64 {
	maxScore := float64(len(b.cells))
	if !b.score.Started() {
		return maxScore
	}

	elapsed := float64(b.Elapsed(now).Milliseconds()) / 1000
	score := maxScore -
		float64(b.score.Undos)*CostPerUndo -
		float64(b.score.FlagUses())*CostPerFlag -
		elapsed*CostPerSecond

	return roundTenths(math.Max(0, score))
}

func roundTenths(v float64) float64 {
	return math.Floor(v*10+0.5) / 10
}
