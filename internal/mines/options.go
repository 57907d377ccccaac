package mines

import (
	"math/rand/v2"
	"time"
)

// Clock returns the current time. Boards read it when the first action is
// taken and whenever the current score is queried.
type Clock func() time.Time

// Option configures board construction.
type Option func(*options)

type options struct {
	clock    Clock
	rng      *rand.Rand
	score    ScoreState
	previous []Cell
}

// WithClock sets the time source used for the score. Defaults to time.Now.
func WithClock(clock Clock) Option {
	return func(o *options) {
		o.clock = clock
	}
}

// WithRand sets the random source used by Generate to place mines.
func WithRand(rng *rand.Rand) Option {
	return func(o *options) {
		o.rng = rng
	}
}

// WithScoreState seeds the board with existing score bookkeeping.
func WithScoreState(s ScoreState) Option {
	return func(o *options) {
		o.score = s
	}
}

// WithPrevious attaches the cells of a prior board so the new board can be undone.
// A nil slice means no history.
func WithPrevious(cells []Cell) Option {
	return func(o *options) {
		o.previous = cells
	}
}

func buildOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.clock == nil {
		o.clock = time.Now
	}
	return o
}
