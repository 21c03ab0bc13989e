package search

import (
	"math"
	"time"
)

// Deadline reports how much time a search has left. It is queried once on
// entry to every search call.
type Deadline interface {
	TimeLeft() time.Duration
}

// DeadlineFunc adapts a function to the Deadline interface.
type DeadlineFunc func() time.Duration

func (f DeadlineFunc) TimeLeft() time.Duration {
	return f()
}

// NoDeadline never runs out.
var NoDeadline = DeadlineFunc(func() time.Duration { return math.MaxInt64 })

// TurnClock is a Deadline that starts counting down when it is created.
type TurnClock struct {
	start time.Time
	limit time.Duration
	now   func() time.Time
}

// NewTurnClock starts a clock that runs out after limit.
func NewTurnClock(limit time.Duration) *TurnClock {
	return newTurnClock(limit, time.Now)
}

func newTurnClock(limit time.Duration, now func() time.Time) *TurnClock {
	return &TurnClock{start: now(), limit: limit, now: now}
}

func (c *TurnClock) Elapsed() time.Duration {
	return c.now().Sub(c.start)
}

// TimeLeft may be negative once the limit has passed.
func (c *TurnClock) TimeLeft() time.Duration {
	return c.limit - c.Elapsed()
}

func (c *TurnClock) Expired() bool {
	return c.TimeLeft() <= 0
}

func (c *TurnClock) Limit() time.Duration {
	return c.limit
}
