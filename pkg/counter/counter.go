// Package counter tracks a countdown or count-up timer between two
// adjustable reference points and renders it as an HH:MM:SS clock.
//
// A Counter holds an optional start and an optional end. Counting Down shows
// the time left until end, counting Up shows the time elapsed since start.
// The display never goes below 00:00:00, and when the active reference is
// absent it shows zero.
//
// Counter does no locking. Callers sharing one across goroutines must
// serialise access themselves.
package counter

import (
	"github.com/psantana5/streamclock/pkg/clock"
)

// Counter is a timer between two optional reference points
type Counter struct {
	start     Reference
	end       Reference
	direction Direction
}

// New creates a counter with the given direction and reference points
func New(direction Direction, start, end Reference) *Counter {
	return &Counter{
		start:     start,
		end:       end,
		direction: direction,
	}
}

// Down creates a counter that shows the time remaining until end
func Down(start, end Reference) *Counter {
	return New(CountDown, start, end)
}

// Up creates a counter that shows the time elapsed since start
func Up(start, end Reference) *Counter {
	return New(CountUp, start, end)
}

// Start returns the start reference
func (c *Counter) Start() Reference { return c.start }

// End returns the end reference
func (c *Counter) End() Reference { return c.end }

// Direction returns the active direction
func (c *Counter) Direction() Direction { return c.direction }

// Flip toggles between counting down and counting up
func (c *Counter) Flip() {
	c.direction = c.direction.Opposite()
}

// TryMoveStart shifts start by delta seconds. The counter is left unchanged
// on error.
func (c *Counter) TryMoveStart(delta int64) error {
	return move(&c.start, "start", delta)
}

// TryMoveEnd shifts end by delta seconds. The counter is left unchanged
// on error.
func (c *Counter) TryMoveEnd(delta int64) error {
	return move(&c.end, "end", delta)
}

func move(ref *Reference, name string, delta int64) error {
	at, ok := ref.Get()
	if !ok {
		return &MoveError{Reference: name, Delta: delta, Err: ErrMissingReference}
	}
	next, err := at.TryAdd(delta)
	if err != nil {
		return &MoveError{Reference: name, Delta: delta, Err: err}
	}
	*ref = Some(next)
	return nil
}

// active returns the reference the current direction displays against
func (c *Counter) active() Reference {
	if c.direction == CountUp {
		return c.start
	}
	return c.end
}

// Ready reports whether the reference for the active direction is set.
// A counter that is not ready always displays zero.
func (c *Counter) Ready() bool {
	return c.active().IsSet()
}

// Value returns the displayed number of seconds at now, never negative
func (c *Counter) Value(now clock.TimeStamp) int64 {
	at, ok := c.active().Get()
	if !ok {
		return 0
	}
	if c.direction == CountUp {
		return now.Since(at)
	}
	return at.Since(now)
}

// Hours returns the hours field of the clock at now. It is unbounded.
func (c *Counter) Hours(now clock.TimeStamp) int64 {
	return c.Value(now) / 3600
}

// Minutes returns the minutes field of the clock at now, in [0, 59]
func (c *Counter) Minutes(now clock.TimeStamp) int64 {
	return c.Value(now) / 60 % 60
}

// Seconds returns the seconds field of the clock at now, in [0, 59]
func (c *Counter) Seconds(now clock.TimeStamp) int64 {
	return c.Value(now) % 60
}

// Format renders the counter at now as HH:MM:SS
func (c *Counter) Format(now clock.TimeStamp) string {
	return FormatSeconds(c.Value(now))
}

// Render renders the counter against src
func (c *Counter) Render(src clock.Source) string {
	return c.Format(src.Now())
}

// String renders the counter against the wall clock
func (c *Counter) String() string {
	return c.Render(clock.System{})
}
