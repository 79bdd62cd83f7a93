package counter

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/psantana5/streamclock/pkg/clock"
)

// base is an arbitrary fixed "now" so tests never read the wall clock
var base = clock.Unix(1_700_000_000)

func at(offset int64) Reference {
	return Some(base.Add(offset))
}

func TestDisplay(t *testing.T) {
	tests := []struct {
		name    string
		counter *Counter
		want    string
	}{
		{"seconds since", Up(at(-10), None()), "00:00:10"},
		{"seconds until", Down(None(), at(10)), "00:00:10"},
		{"minutes since", Up(at(-600), None()), "00:10:00"},
		{"minutes until", Down(None(), at(600)), "00:10:00"},
		{"hours since", Up(at(-36000), None()), "10:00:00"},
		{"hours until", Down(None(), at(36000)), "10:00:00"},
		{"days since", Up(at(-864000), None()), "240:00:00"},
		{"days until", Down(None(), at(864000)), "240:00:00"},
		{"mixed fields", Down(None(), at(3661)), "01:01:01"},
		{"end in the past", Down(None(), at(-5)), "00:00:00"},
		{"start in the future", Up(at(5), None()), "00:00:00"},
		{"down without end", Down(at(-100), None()), "00:00:00"},
		{"up without start", Up(None(), at(100)), "00:00:00"},
		{"nothing set", Up(None(), None()), "00:00:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.counter.Format(base)
			if got != tt.want {
				t.Errorf("Format() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatSeconds(t *testing.T) {
	tests := []struct {
		seconds int64
		want    string
	}{
		{0, "00:00:00"},
		{59, "00:00:59"},
		{60, "00:01:00"},
		{3661, "01:01:01"},
		{86399, "23:59:59"},
		{360000, "100:00:00"},
		{-1, "00:00:00"},
	}

	for _, tt := range tests {
		if got := FormatSeconds(tt.seconds); got != tt.want {
			t.Errorf("FormatSeconds(%d) = %q, want %q", tt.seconds, got, tt.want)
		}
	}
}

func TestDownThenFlip(t *testing.T) {
	src := clock.NewManual(base)
	c := Down(at(-600), at(600))

	if got := c.Render(src); got != "00:10:00" {
		t.Errorf("down at construction = %q, want 00:10:00", got)
	}
	src.Advance(1)
	if got := c.Render(src); got != "00:09:59" {
		t.Errorf("down one second later = %q, want 00:09:59", got)
	}

	src.Set(base)
	c.Flip()
	if c.Direction() != CountUp {
		t.Fatalf("Direction() after Flip = %v, want up", c.Direction())
	}
	if got := c.Render(src); got != "00:10:00" {
		t.Errorf("up after flip = %q, want 00:10:00", got)
	}
}

func TestFlipIsItsOwnInverse(t *testing.T) {
	c := Down(at(-10), at(20))
	before := c.Format(base)

	c.Flip()
	if got := c.Format(base); got != "00:00:10" {
		t.Errorf("after one flip = %q, want 00:00:10", got)
	}
	c.Flip()

	if c.Direction() != CountDown {
		t.Errorf("Direction() after two flips = %v, want down", c.Direction())
	}
	if got := c.Format(base); got != before {
		t.Errorf("after two flips = %q, want %q", got, before)
	}
}

func TestMove(t *testing.T) {
	tests := []struct {
		name    string
		counter *Counter
		move    func(*Counter) error
		want    string
	}{
		{"add time to down", Down(None(), at(0)), func(c *Counter) error { return c.TryMoveEnd(10) }, "00:00:10"},
		{"remove time from down", Down(None(), at(20)), func(c *Counter) error { return c.TryMoveEnd(-10) }, "00:00:10"},
		{"remove time from down past zero", Down(None(), at(0)), func(c *Counter) error { return c.TryMoveEnd(-10) }, "00:00:00"},
		{"add time to up", Up(at(0), None()), func(c *Counter) error { return c.TryMoveStart(-30) }, "00:00:30"},
		{"remove time from up", Up(at(-20), None()), func(c *Counter) error { return c.TryMoveStart(10) }, "00:00:10"},
		{"remove time from up past zero", Up(at(0), None()), func(c *Counter) error { return c.TryMoveStart(10) }, "00:00:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.move(tt.counter); err != nil {
				t.Fatalf("move failed: %v", err)
			}
			if got := tt.counter.Format(base); got != tt.want {
				t.Errorf("Format() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMoveMissingReference(t *testing.T) {
	c := Up(None(), at(100))

	err := c.TryMoveStart(-30)
	if !errors.Is(err, ErrMissingReference) {
		t.Fatalf("TryMoveStart error = %v, want ErrMissingReference", err)
	}
	var merr *MoveError
	if !errors.As(err, &merr) || merr.Reference != "start" || merr.Delta != -30 {
		t.Errorf("expected *MoveError for start, got %#v", err)
	}
	if c.Start().IsSet() {
		t.Error("start became set after a failed move")
	}
	if end, _ := c.End().Get(); !end.Equal(base.Add(100)) {
		t.Errorf("end changed to %v", end)
	}

	d := Down(at(0), None())
	if err := d.TryMoveEnd(5); !errors.Is(err, ErrMissingReference) {
		t.Errorf("TryMoveEnd error = %v, want ErrMissingReference", err)
	}
}

func TestMoveOverflow(t *testing.T) {
	c := Up(Some(clock.Unix(math.MaxInt64-1)), None())

	if err := c.TryMoveStart(1); err != nil {
		t.Fatalf("move to the boundary failed: %v", err)
	}
	err := c.TryMoveStart(1)
	if !errors.Is(err, clock.ErrTimeOverflow) {
		t.Fatalf("TryMoveStart error = %v, want ErrTimeOverflow", err)
	}
	if start, _ := c.Start().Get(); start.Unix() != math.MaxInt64 {
		t.Errorf("start changed after overflow: %d", start.Unix())
	}
}

func TestClockFields(t *testing.T) {
	tests := []struct {
		name                    string
		remaining               int64
		hours, minutes, seconds int64
	}{
		{"zero", 0, 0, 0, 0},
		{"under a minute", 59, 0, 0, 59},
		{"one of each", 3661, 1, 1, 1},
		{"wraps minutes", 100, 0, 1, 40},
		{"past 99 hours", 360_000 + 59*60 + 59, 100, 59, 59},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Down(None(), at(tt.remaining))
			if got := c.Hours(base); got != tt.hours {
				t.Errorf("Hours() = %d, want %d", got, tt.hours)
			}
			if got := c.Minutes(base); got != tt.minutes {
				t.Errorf("Minutes() = %d, want %d", got, tt.minutes)
			}
			if got := c.Seconds(base); got != tt.seconds {
				t.Errorf("Seconds() = %d, want %d", got, tt.seconds)
			}
			want := fmt.Sprintf("%02d:%02d:%02d", tt.hours, tt.minutes, tt.seconds)
			if got := c.Format(base); got != want {
				t.Errorf("Format() = %q, want %q", got, want)
			}
		})
	}
}

func TestReady(t *testing.T) {
	c := Down(at(0), None())
	if c.Ready() {
		t.Error("down counter without end reported ready")
	}
	c.Flip()
	if !c.Ready() {
		t.Error("up counter with start reported not ready")
	}
}

func TestStringUsesWallClock(t *testing.T) {
	c := Down(None(), Some(clock.Now().Add(3600)))
	got := c.String()
	if got != "01:00:00" && got != "00:59:59" {
		t.Errorf("String() = %q, want about an hour", got)
	}
}

func TestSnapshot(t *testing.T) {
	c := Up(at(-75), None())
	s := c.Snapshot(base)

	if s.Direction != CountUp || !s.Ready || s.Seconds != 75 || s.Display != "00:01:15" {
		t.Errorf("unexpected snapshot: %+v", s)
	}
	if s.End.IsSet() {
		t.Error("snapshot end should be absent")
	}
}
