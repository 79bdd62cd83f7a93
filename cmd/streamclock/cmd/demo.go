package cmd

import (
	"fmt"

	"github.com/psantana5/streamclock/pkg/counter"
	"github.com/spf13/cobra"
)

const twentyDays = 20 * 24 * 3600

func newDemoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Print a 20 day countdown and a 20 day count-up",
		RunE: func(cmd *cobra.Command, args []string) error {
			now := a.source.Now()
			down := counter.Down(counter.Some(now), counter.Some(now.Add(twentyDays)))
			up := counter.Up(counter.Some(now.Add(-twentyDays)), counter.Some(now))

			_, err := fmt.Fprintf(cmd.OutOrStdout(), "Down: %s\nUp: %s\n", down.Format(now), up.Format(now))
			return err
		},
	}
}
