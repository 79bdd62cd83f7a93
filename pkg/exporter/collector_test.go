package exporter

import (
	"bytes"
	"strings"
	"sync"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/psantana5/streamclock/pkg/clock"
	"github.com/psantana5/streamclock/pkg/counter"
)

var base = clock.Unix(1_700_000_000)

func TestCollectorValues(t *testing.T) {
	src := clock.NewManual(base)
	c := counter.Down(counter.None(), counter.Some(base.Add(90)))
	col := NewCollector("stream", c, src)

	expected := `
# HELP streamclock_counter_reference_set Whether the reference point is set (1) or absent (0)
# TYPE streamclock_counter_reference_set gauge
streamclock_counter_reference_set{counter="stream",reference="end"} 1
streamclock_counter_reference_set{counter="stream",reference="start"} 0
# HELP streamclock_counter_seconds Seconds currently displayed by the counter (remaining when counting down, elapsed when counting up)
# TYPE streamclock_counter_seconds gauge
streamclock_counter_seconds{counter="stream",direction="down"} 90
`
	err := testutil.CollectAndCompare(col, strings.NewReader(expected),
		"streamclock_counter_seconds", "streamclock_counter_reference_set")
	if err != nil {
		t.Fatalf("unexpected metrics: %v", err)
	}

	if n := testutil.CollectAndCount(col); n != 4 {
		t.Errorf("CollectAndCount = %d, want 4", n)
	}
}

func TestCollectorSamplesEachCollect(t *testing.T) {
	src := clock.NewManual(base)
	c := counter.Up(counter.Some(base), counter.None())
	col := NewCollector("uptime", c, src).WithLock(&sync.Mutex{})

	src.Advance(42)
	expected := `
# HELP streamclock_counter_seconds Seconds currently displayed by the counter (remaining when counting down, elapsed when counting up)
# TYPE streamclock_counter_seconds gauge
streamclock_counter_seconds{counter="uptime",direction="up"} 42
`
	if err := testutil.CollectAndCompare(col, strings.NewReader(expected), "streamclock_counter_seconds"); err != nil {
		t.Fatalf("unexpected metrics: %v", err)
	}
}

func TestWriteText(t *testing.T) {
	src := clock.NewManual(base)
	c := counter.Down(counter.None(), counter.Some(base.Add(3661)))

	reg := prometheus.NewRegistry()
	reg.MustRegister(NewCollector("stream", c, src))

	var buf bytes.Buffer
	if err := WriteText(&buf, reg); err != nil {
		t.Fatalf("WriteText failed: %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		"# TYPE streamclock_counter_seconds gauge",
		`streamclock_counter_seconds{counter="stream",direction="down"} 3661`,
		`streamclock_counter_reference_set{counter="stream",reference="start"} 0`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}
