package clock

import "sync"

// Source supplies the present instant a Counter is compared against.
type Source interface {
	Now() TimeStamp
}

// System reads the wall clock
type System struct{}

// Now returns the current wall-clock instant
func (System) Now() TimeStamp {
	return Now()
}

// Manual is a Source whose present only moves when told to.
// Safe for concurrent use.
type Manual struct {
	mu  sync.Mutex
	now TimeStamp
}

// NewManual creates a Manual source starting at now
func NewManual(now TimeStamp) *Manual {
	return &Manual{now: now}
}

// Now returns the current instant
func (m *Manual) Now() TimeStamp {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

// Set moves the source to now
func (m *Manual) Set(now TimeStamp) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = now
}

// Advance moves the source by seconds, which may be negative
func (m *Manual) Advance(seconds int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = m.now.Add(seconds)
}
