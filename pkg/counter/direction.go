package counter

import (
	"fmt"
	"strings"
)

// Direction selects which reference point the counter displays against
type Direction int

const (
	// CountDown shows the time remaining until end
	CountDown Direction = iota
	// CountUp shows the time elapsed since start
	CountUp
)

func (d Direction) String() string {
	switch d {
	case CountDown:
		return "down"
	case CountUp:
		return "up"
	default:
		return "unknown"
	}
}

// Opposite returns the other direction
func (d Direction) Opposite() Direction {
	if d == CountUp {
		return CountDown
	}
	return CountUp
}

// ParseDirection parses "down" or "up", ignoring case and surrounding space
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "down":
		return CountDown, nil
	case "up":
		return CountUp, nil
	default:
		return CountDown, fmt.Errorf("%w: %q", ErrInvalidDirection, s)
	}
}

// MarshalText implements encoding.TextMarshaler
func (d Direction) MarshalText() ([]byte, error) {
	if d != CountDown && d != CountUp {
		return nil, fmt.Errorf("%w: %d", ErrInvalidDirection, int(d))
	}
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (d *Direction) UnmarshalText(text []byte) error {
	parsed, err := ParseDirection(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
