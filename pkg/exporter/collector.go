// Package exporter exposes counters as Prometheus metrics so an overlay host
// can publish them through its own registry.
package exporter

import (
	"bytes"
	"fmt"
	"io"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/psantana5/streamclock/pkg/clock"
	"github.com/psantana5/streamclock/pkg/counter"
)

var (
	secondsDesc = prometheus.NewDesc(
		"streamclock_counter_seconds",
		"Seconds currently displayed by the counter (remaining when counting down, elapsed when counting up)",
		[]string{"counter", "direction"}, nil,
	)
	referenceSetDesc = prometheus.NewDesc(
		"streamclock_counter_reference_set",
		"Whether the reference point is set (1) or absent (0)",
		[]string{"counter", "reference"}, nil,
	)
	referenceTimestampDesc = prometheus.NewDesc(
		"streamclock_counter_reference_timestamp_seconds",
		"Unix time of the reference point",
		[]string{"counter", "reference"}, nil,
	)
)

// Collector samples a counter each time it is collected
type Collector struct {
	name    string
	counter *counter.Counter
	source  clock.Source
	lock    sync.Locker
}

// NewCollector creates a collector for c evaluated against src
func NewCollector(name string, c *counter.Counter, src clock.Source) *Collector {
	return &Collector{
		name:    name,
		counter: c,
		source:  src,
	}
}

// WithLock makes the collector hold l while reading the counter. Hosts that
// mutate the counter from another goroutine pass the mutex guarding it.
func (col *Collector) WithLock(l sync.Locker) *Collector {
	col.lock = l
	return col
}

// Describe implements prometheus.Collector
func (col *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- secondsDesc
	ch <- referenceSetDesc
	ch <- referenceTimestampDesc
}

// Collect implements prometheus.Collector
func (col *Collector) Collect(ch chan<- prometheus.Metric) {
	if col.lock != nil {
		col.lock.Lock()
		defer col.lock.Unlock()
	}

	now := col.source.Now()
	ch <- prometheus.MustNewConstMetric(secondsDesc, prometheus.GaugeValue,
		float64(col.counter.Value(now)), col.name, col.counter.Direction().String())

	refs := []struct {
		label string
		ref   counter.Reference
	}{
		{"start", col.counter.Start()},
		{"end", col.counter.End()},
	}
	for _, r := range refs {
		ts, ok := r.ref.Get()
		set := 0.0
		if ok {
			set = 1
			ch <- prometheus.MustNewConstMetric(referenceTimestampDesc, prometheus.GaugeValue,
				float64(ts.Unix()), col.name, r.label)
		}
		ch <- prometheus.MustNewConstMetric(referenceSetDesc, prometheus.GaugeValue,
			set, col.name, r.label)
	}
}

// WriteText gathers g and writes the text exposition format to w
func WriteText(w io.Writer, g prometheus.Gatherer) error {
	metricFamilies, err := g.Gather()
	if err != nil {
		return fmt.Errorf("failed to gather metrics: %w", err)
	}

	var buf bytes.Buffer
	encoder := expfmt.NewEncoder(&buf, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, mf := range metricFamilies {
		if err := encoder.Encode(mf); err != nil {
			return fmt.Errorf("failed to encode metric %s: %w", mf.GetName(), err)
		}
	}

	_, err = w.Write(buf.Bytes())
	return err
}
