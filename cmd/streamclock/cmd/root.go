package cmd

import (
	"fmt"

	"github.com/psantana5/streamclock/internal/config"
	"github.com/psantana5/streamclock/internal/logging"
	"github.com/psantana5/streamclock/pkg/clock"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// app carries the state shared by every subcommand of one command tree
type app struct {
	v       *viper.Viper
	cfgFile string
	source  clock.Source
	cfg     config.Config
	logger  *logging.Logger
}

// Execute runs the streamclock command tree against the wall clock
func Execute() error {
	return NewRootCmd(clock.System{}).Execute()
}

// NewRootCmd builds the command tree. src is the "now" every counter is
// rendered against.
func NewRootCmd(src clock.Source) *cobra.Command {
	a := &app{
		v:      viper.New(),
		source: src,
	}

	rootCmd := &cobra.Command{
		Use:   "streamclock",
		Short: "Countdown and count-up clock for livestream overlays",
		Long: `streamclock renders a countdown to an end time, or a count-up from a start
time, as an HH:MM:SS clock that never goes below 00:00:00.

Settings come from $HOME/.streamclock/config.yaml (or --config), STREAMCLOCK_*
environment variables, and flags, in increasing order of precedence.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default is $HOME/.streamclock/config.yaml)")
	rootCmd.PersistentFlags().StringP("output", "o", "text", "output format: text, json or yaml")
	rootCmd.PersistentFlags().String("log-level", "info", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().String("log-format", "text", "log format: text or json")

	rootCmd.AddCommand(
		newShowCmd(a),
		newStatusCmd(a),
		newWatchCmd(a),
		newMetricsCmd(a),
		newConfigCmd(a),
		newDemoCmd(a),
	)
	return rootCmd
}

// setup binds the flags of the running command, loads the configuration and
// creates the logger. Every RunE calls it first.
func (a *app) setup(cmd *cobra.Command) error {
	bindings := map[string]string{
		"output":     "output",
		"log_level":  "log-level",
		"log_format": "log-format",
		"direction":  "direction",
		"start":      "start",
		"end":        "end",
		"refresh":    "refresh",
	}
	for key, name := range bindings {
		if err := bindFlag(a.v, key, cmd.Flags().Lookup(name)); err != nil {
			return err
		}
	}

	if err := config.Init(a.v, a.cfgFile); err != nil {
		return err
	}
	cfg, err := config.Load(a.v)
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	a.cfg = cfg

	a.logger = logging.NewLogger(logging.ParseLevel(cfg.LogLevel), cfg.LogFormat == "json")
	a.logger.SetOutput(cmd.ErrOrStderr())
	a.logger.Debug("configuration loaded", map[string]interface{}{
		"config_file": a.v.ConfigFileUsed(),
		"direction":   cfg.Direction.String(),
	})
	return nil
}

func bindFlag(v *viper.Viper, key string, flag *pflag.Flag) error {
	if flag == nil {
		return nil
	}
	if err := v.BindPFlag(key, flag); err != nil {
		return fmt.Errorf("failed to bind flag --%s: %w", flag.Name, err)
	}
	return nil
}
