package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/psantana5/streamclock/pkg/counter"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newShowCmd(a *app) *cobra.Command {
	opts := &counterOptions{}
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the clock once",
		Long: `Print the counter as HH:MM:SS, or as a full snapshot with --output json|yaml.

Example:
  streamclock show --in 10m
  streamclock show --direction up --since 1h30m --move-start -30
  streamclock show --end 2024-05-01T20:00:00Z -o json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.setup(cmd); err != nil {
				return err
			}
			now := a.source.Now()
			c, err := a.buildCounter(opts, now)
			if err != nil {
				return err
			}
			return writeSnapshot(cmd.OutOrStdout(), a.cfg.Output, c.Snapshot(now))
		},
	}
	addCounterFlags(cmd, opts)
	return cmd
}

// writeSnapshot renders s in the requested format; text is just the clock
func writeSnapshot(w io.Writer, format string, s counter.Snapshot) error {
	switch format {
	case "json":
		output, err := json.MarshalIndent(s, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		_, err = fmt.Fprintln(w, string(output))
		return err

	case "yaml":
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(s); err != nil {
			return fmt.Errorf("failed to marshal YAML: %w", err)
		}
		return encoder.Close()

	default: // text
		_, err := fmt.Fprintln(w, s.Display)
		return err
	}
}
