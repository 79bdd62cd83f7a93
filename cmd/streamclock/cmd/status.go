package cmd

import (
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

func newStatusCmd(a *app) *cobra.Command {
	opts := &counterOptions{}
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show the counter and its reference points as a table",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.setup(cmd); err != nil {
				return err
			}
			now := a.source.Now()
			c, err := a.buildCounter(opts, now)
			if err != nil {
				return err
			}
			if a.cfg.Output != "text" {
				return writeSnapshot(cmd.OutOrStdout(), a.cfg.Output, c.Snapshot(now))
			}

			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.Header("Direction", "Start", "End", "Display", "Hours", "Minutes", "Seconds", "Total")
			if err := table.Append(
				c.Direction().String(),
				c.Start().String(),
				c.End().String(),
				c.Format(now),
				fmt.Sprintf("%d", c.Hours(now)),
				fmt.Sprintf("%d", c.Minutes(now)),
				fmt.Sprintf("%d", c.Seconds(now)),
				fmt.Sprintf("%d", c.Value(now)),
			); err != nil {
				return fmt.Errorf("failed to build table: %w", err)
			}
			return table.Render()
		},
	}
	addCounterFlags(cmd, opts)
	return cmd
}
