package counter

import (
	"fmt"

	"github.com/psantana5/streamclock/pkg/clock"
)

// FormatSeconds renders n seconds as HH:MM:SS. Hours are at least two digits
// wide and grow as needed; negative input renders as 00:00:00.
func FormatSeconds(n int64) string {
	if n < 0 {
		n = 0
	}
	return fmt.Sprintf("%02d:%02d:%02d", n/3600, n/60%60, n%60)
}

// Snapshot is a point-in-time view of a counter for reporting
type Snapshot struct {
	Direction Direction       `json:"direction" yaml:"direction"`
	Start     Reference       `json:"start" yaml:"start"`
	End       Reference       `json:"end" yaml:"end"`
	Now       clock.TimeStamp `json:"now" yaml:"now"`
	Ready     bool            `json:"ready" yaml:"ready"`
	Seconds   int64           `json:"seconds" yaml:"seconds"`
	Display   string          `json:"display" yaml:"display"`
}

// Snapshot captures the counter as displayed at now
func (c *Counter) Snapshot(now clock.TimeStamp) Snapshot {
	value := c.Value(now)
	return Snapshot{
		Direction: c.direction,
		Start:     c.start,
		End:       c.end,
		Now:       now,
		Ready:     c.Ready(),
		Seconds:   value,
		Display:   FormatSeconds(value),
	}
}
