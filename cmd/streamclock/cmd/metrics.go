package cmd

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/psantana5/streamclock/pkg/exporter"
	"github.com/spf13/cobra"
)

func newMetricsCmd(a *app) *cobra.Command {
	opts := &counterOptions{}
	var name string
	cmd := &cobra.Command{
		Use:   "metrics",
		Short: "Print the counter in Prometheus text exposition format",
		Long: `Print the counter as Prometheus metrics on stdout, for node_exporter's
textfile collector or any scraper that reads files.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.setup(cmd); err != nil {
				return err
			}
			c, err := a.buildCounter(opts, a.source.Now())
			if err != nil {
				return err
			}

			reg := prometheus.NewRegistry()
			if err := reg.Register(exporter.NewCollector(name, c, a.source)); err != nil {
				return err
			}
			return exporter.WriteText(cmd.OutOrStdout(), reg)
		},
	}
	addCounterFlags(cmd, opts)
	cmd.Flags().StringVar(&name, "name", "default", "value of the counter label")
	return cmd
}
