package pkg

import (
	"context"
	"fmt"
	"time"
)

// Clock drives a loop at a fixed cadence and measures the real time between
// iterations, so a late tick still advances the game by the right amount.
type Clock struct {
	Tick time.Duration

	now  func() time.Time
	last time.Time
}

func NewClock(tick time.Duration) *Clock {
	return &Clock{Tick: tick, now: time.Now}
}

// Reset makes the next Elapsed measure from now.
func (cl *Clock) Reset() {
	cl.last = cl.now()
}

// Elapsed returns the time since the previous call or Reset.
func (cl *Clock) Elapsed() time.Duration {
	now := cl.now()
	if cl.last.IsZero() {
		cl.last = now
		return 0
	}

	elapsed := now.Sub(cl.last)
	cl.last = now

	return elapsed
}

// Run calls fn once per tick with the elapsed time until ctx is done or fn
// returns false.
func (cl *Clock) Run(ctx context.Context, fn func(elapsed time.Duration) bool) {
	ticker := time.NewTicker(cl.Tick)
	defer ticker.Stop()

	cl.Reset()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if !fn(cl.Elapsed()) {
				return
			}
		}
	}
}

// FormatDuration renders d as m:ss.
func FormatDuration(d time.Duration) string {
	return fmt.Sprintf("%d:%02d", int(d.Minutes()), int(d.Seconds())%60)
}
