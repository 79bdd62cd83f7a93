package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/psantana5/streamclock/pkg/counter"
	"github.com/spf13/cobra"
)

type watchOptions struct {
	counterOptions
	exitAtZero bool
	count      int
}

func newWatchCmd(a *app) *cobra.Command {
	opts := &watchOptions{}
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Redraw the clock until interrupted",
		Long: `Watch prints the clock once per refresh interval until SIGINT/SIGTERM.
Text output is one line per tick, so it can be piped into an overlay
renderer; --output json writes one JSON snapshot per line.

Example:
  streamclock watch --in 5m --exit-at-zero
  streamclock watch --direction up --since 2h --refresh 500ms`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.setup(cmd); err != nil {
				return err
			}
			c, err := a.buildCounter(&opts.counterOptions, a.source.Now())
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			a.logger.Info("watching counter", map[string]interface{}{
				"direction": c.Direction().String(),
				"refresh":   a.cfg.Refresh.String(),
			})
			err = a.watch(ctx, cmd.OutOrStdout(), c, opts)
			if err != nil && !errors.Is(err, context.Canceled) {
				return fmt.Errorf("watch failed: %w", err)
			}
			a.logger.Info("watch stopped")
			return nil
		},
	}
	addCounterFlags(cmd, &opts.counterOptions)
	cmd.Flags().Duration("refresh", time.Second, "redraw interval")
	cmd.Flags().BoolVar(&opts.exitAtZero, "exit-at-zero", false, "stop once a countdown reaches 00:00:00")
	cmd.Flags().IntVar(&opts.count, "count", 0, "stop after this many redraws (0 = unlimited)")
	return cmd
}

// watch renders c immediately and then on every tick until ctx is done
func (a *app) watch(ctx context.Context, w io.Writer, c *counter.Counter, opts *watchOptions) error {
	ticker := time.NewTicker(a.cfg.Refresh)
	defer ticker.Stop()

	for drawn := 0; ; {
		now := a.source.Now()
		if err := a.draw(w, c.Snapshot(now)); err != nil {
			return err
		}
		drawn++

		if opts.count > 0 && drawn >= opts.count {
			return nil
		}
		if opts.exitAtZero && c.Direction() == counter.CountDown && c.Ready() && c.Value(now) == 0 {
			a.logger.Info("countdown finished")
			return nil
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

func (a *app) draw(w io.Writer, s counter.Snapshot) error {
	if a.cfg.Output == "json" {
		data, err := json.Marshal(s)
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	}
	_, err := fmt.Fprintln(w, s.Display)
	return err
}
