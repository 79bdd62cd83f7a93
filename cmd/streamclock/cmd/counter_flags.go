package cmd

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/psantana5/streamclock/pkg/clock"
	"github.com/psantana5/streamclock/pkg/counter"
	"github.com/spf13/cobra"
)

// counterOptions are the per-invocation adjustments applied on top of the
// configured counter
type counterOptions struct {
	in        time.Duration
	since     time.Duration
	moveStart string
	moveEnd   string
	flip      bool
}

func addCounterFlags(cmd *cobra.Command, opts *counterOptions) {
	cmd.Flags().String("direction", "", "counter direction: down (until end) or up (since start)")
	cmd.Flags().String("start", "", "start time, RFC 3339")
	cmd.Flags().String("end", "", "end time, RFC 3339")
	cmd.Flags().DurationVar(&opts.in, "in", 0, "set end to now plus this duration")
	cmd.Flags().DurationVar(&opts.since, "since", 0, "set start to now minus this duration")
	cmd.Flags().StringVar(&opts.moveStart, "move-start", "", "shift start by a signed offset (seconds or duration, e.g. -30 or 5m)")
	cmd.Flags().StringVar(&opts.moveEnd, "move-end", "", "shift end by a signed offset (seconds or duration, e.g. 90 or -1h)")
	cmd.Flags().BoolVar(&opts.flip, "flip", false, "flip the counter direction")
}

// buildCounter creates the configured counter and applies opts relative to
// now. A move against an absent reference is reported and skipped.
func (a *app) buildCounter(opts *counterOptions, now clock.TimeStamp) (*counter.Counter, error) {
	start, end := a.cfg.Start, a.cfg.End
	if opts.since > 0 {
		start = counter.Some(now.Add(-int64(opts.since / time.Second)))
	}
	if opts.in > 0 {
		end = counter.Some(now.Add(int64(opts.in / time.Second)))
	}
	c := counter.New(a.cfg.Direction, start, end)

	moves := []struct {
		name   string
		offset string
		apply  func(int64) error
	}{
		{"start", opts.moveStart, c.TryMoveStart},
		{"end", opts.moveEnd, c.TryMoveEnd},
	}
	for _, m := range moves {
		if m.offset == "" {
			continue
		}
		delta, err := parseOffset(m.offset)
		if err != nil {
			return nil, fmt.Errorf("--move-%s: %w", m.name, err)
		}
		if err := m.apply(delta); err != nil {
			a.logger.Warn("cannot move reference point", map[string]interface{}{
				"reference": m.name,
				"delta":     delta,
				"error":     err.Error(),
			})
		}
	}

	if opts.flip {
		c.Flip()
	}
	if !c.Ready() {
		a.logger.Warn("reference point for the active direction is not set, displaying zero",
			map[string]interface{}{"direction": c.Direction().String()})
	}
	return c, nil
}

// parseOffset reads a signed offset as whole seconds ("-30") or as a Go
// duration ("1h30m", "-5m"). Sub-second parts are dropped.
func parseOffset(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("invalid offset %q: want seconds or a duration like 5m", s)
	}
	return int64(d / time.Second), nil
}
