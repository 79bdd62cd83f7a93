package counter

import (
	"encoding/json"
	"fmt"

	"github.com/psantana5/streamclock/pkg/clock"
	"gopkg.in/yaml.v3"
)

// Reference is an optional reference point. The zero value is absent.
type Reference struct {
	at  clock.TimeStamp
	set bool
}

// Some returns a Reference holding ts
func Some(ts clock.TimeStamp) Reference {
	return Reference{at: ts, set: true}
}

// None returns an absent Reference
func None() Reference {
	return Reference{}
}

// Get returns the timestamp and whether it is present
func (r Reference) Get() (clock.TimeStamp, bool) {
	return r.at, r.set
}

// IsSet reports whether the reference is present
func (r Reference) IsSet() bool {
	return r.set
}

// String renders the timestamp, or "-" when absent
func (r Reference) String() string {
	if !r.set {
		return "-"
	}
	return r.at.String()
}

// MarshalText renders an absent reference as the empty string
func (r Reference) MarshalText() ([]byte, error) {
	if !r.set {
		return []byte{}, nil
	}
	return r.at.MarshalText()
}

// UnmarshalText treats the empty string as absent
func (r *Reference) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*r = None()
		return nil
	}
	var ts clock.TimeStamp
	if err := ts.UnmarshalText(text); err != nil {
		return err
	}
	*r = Some(ts)
	return nil
}

// MarshalJSON renders an absent reference as null
func (r Reference) MarshalJSON() ([]byte, error) {
	if !r.set {
		return []byte("null"), nil
	}
	text, err := r.at.MarshalText()
	if err != nil {
		return nil, err
	}
	return json.Marshal(string(text))
}

// UnmarshalJSON accepts null, "" or an RFC 3339 string
func (r *Reference) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*r = None()
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("reference must be a string or null: %w", err)
	}
	return r.UnmarshalText([]byte(s))
}

// MarshalYAML implements yaml.Marshaler
func (r Reference) MarshalYAML() (interface{}, error) {
	if !r.set {
		return nil, nil
	}
	text, err := r.at.MarshalText()
	if err != nil {
		return nil, err
	}
	return string(text), nil
}

// UnmarshalYAML implements yaml.Unmarshaler
func (r *Reference) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("reference must be a scalar, line %d", value.Line)
	}
	if value.Tag == "!!null" {
		*r = None()
		return nil
	}
	return r.UnmarshalText([]byte(value.Value))
}
