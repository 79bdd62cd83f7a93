// Package clock provides a second-resolution TimeStamp and the time sources
// a Counter is evaluated against.
package clock

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"
)

var (
	// ErrTimeOverflow is returned when shifting a TimeStamp would leave the
	// representable range.
	ErrTimeOverflow = errors.New("time could not be added due to an overflow")

	// ErrInvalidTime is returned when a time string cannot be parsed.
	ErrInvalidTime = errors.New("invalid time string")

	// ErrTimeOutOfRange is returned when a TimeStamp has no RFC 3339 form.
	ErrTimeOutOfRange = errors.New("time outside the RFC 3339 year range")
)

// ParseError wraps a failed Parse with the offending input
type ParseError struct {
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %q: %v", e.Input, e.Err)
}

// Unwrap implements error unwrapping
func (e *ParseError) Unwrap() error {
	return e.Err
}

// TimeStamp is an instant in UTC with whole-second resolution.
// The zero value is the Unix epoch.
type TimeStamp struct {
	sec int64
}

// Now returns the current wall-clock instant truncated to whole seconds
func Now() TimeStamp {
	return FromTime(time.Now())
}

// Unix returns the TimeStamp sec seconds after the Unix epoch
func Unix(sec int64) TimeStamp {
	return TimeStamp{sec: sec}
}

// FromTime converts t, dropping any sub-second part
func FromTime(t time.Time) TimeStamp {
	return TimeStamp{sec: t.Unix()}
}

// Parse reads an RFC 3339 timestamp such as "2024-05-01T20:00:00Z".
func Parse(s string) (TimeStamp, error) {
	t, err := time.Parse(time.RFC3339, strings.TrimSpace(s))
	if err != nil {
		return TimeStamp{}, &ParseError{Input: s, Err: ErrInvalidTime}
	}
	return FromTime(t), nil
}

// Unix returns the number of seconds since the Unix epoch
func (t TimeStamp) Unix() int64 {
	return t.sec
}

// Time returns t as a UTC time.Time
func (t TimeStamp) Time() time.Time {
	return time.Unix(t.sec, 0).UTC()
}

// Sub returns t-u in seconds, saturating at the int64 bounds.
func (t TimeStamp) Sub(u TimeStamp) int64 {
	return saturatingSub(t.sec, u.sec)
}

// Since returns how many seconds t is after u, or zero when t is not after u.
func (t TimeStamp) Since(u TimeStamp) int64 {
	if t.sec <= u.sec {
		return 0
	}
	return saturatingSub(t.sec, u.sec)
}

// Add returns t shifted by seconds, saturating at the int64 bounds.
// Use TryAdd when an overflow must be reported.
func (t TimeStamp) Add(seconds int64) TimeStamp {
	if next, err := t.TryAdd(seconds); err == nil {
		return next
	}
	if seconds > 0 {
		return TimeStamp{sec: math.MaxInt64}
	}
	return TimeStamp{sec: math.MinInt64}
}

// TryAdd returns t shifted by seconds, or ErrTimeOverflow if the result
// does not fit.
func (t TimeStamp) TryAdd(seconds int64) (TimeStamp, error) {
	if (seconds > 0 && t.sec > math.MaxInt64-seconds) ||
		(seconds < 0 && t.sec < math.MinInt64-seconds) {
		return t, ErrTimeOverflow
	}
	return TimeStamp{sec: t.sec + seconds}, nil
}

// Before reports whether t is earlier than u
func (t TimeStamp) Before(u TimeStamp) bool { return t.sec < u.sec }

// After reports whether t is later than u
func (t TimeStamp) After(u TimeStamp) bool { return t.sec > u.sec }

// Equal reports whether t and u are the same instant
func (t TimeStamp) Equal(u TimeStamp) bool { return t.sec == u.sec }

// String renders t as RFC 3339 in UTC. Outside the years 0000 to 9999 the
// result cannot be parsed back; MarshalText reports that case as an error.
func (t TimeStamp) String() string {
	return t.Time().Format(time.RFC3339)
}

// MarshalText implements encoding.TextMarshaler. It fails with
// ErrTimeOutOfRange when the year falls outside 0000 to 9999.
func (t TimeStamp) MarshalText() ([]byte, error) {
	if y := t.Time().Year(); y < 0 || y > 9999 {
		return nil, fmt.Errorf("%w: year %d", ErrTimeOutOfRange, y)
	}
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (t *TimeStamp) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

func saturatingSub(a, b int64) int64 {
	switch {
	case b < 0 && a > math.MaxInt64+b:
		return math.MaxInt64
	case b > 0 && a < math.MinInt64+b:
		return math.MinInt64
	}
	return a - b
}
