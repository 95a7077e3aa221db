package power

import (
	"fmt"
	"io"
	"time"
)

// Countdown is a ticking timer decoupled from terminal rendering. Each
// tick overwrites the previous one in place via carriage return; the
// final tick is followed by a newline so subsequent output starts
// clean.
type Countdown struct {
	// From is the starting tick value. Ticks run From..1.
	From int

	// Interval is the pause after each tick. Tests inject zero.
	Interval time.Duration

	// Out receives the rendered ticks.
	Out io.Writer

	// Label prefixes every tick, e.g. "Shutting down in".
	Label string
}

// Run emits every tick in order and blocks until the countdown is
// exhausted. There is no cancellation: once started, the countdown
// always completes.
func (c Countdown) Run() {
	for n := c.From; n >= 1; n-- {
		fmt.Fprintf(c.Out, "\r  %s %2d s ", c.Label, n)
		if c.Interval > 0 {
			time.Sleep(c.Interval)
		}
	}
	fmt.Fprintln(c.Out)
}
