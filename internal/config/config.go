// Package config loads streamclock settings from a YAML file, STREAMCLOCK_*
// environment variables and command-line flags through viper.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/psantana5/streamclock/pkg/clock"
	"github.com/psantana5/streamclock/pkg/counter"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable
const EnvPrefix = "STREAMCLOCK"

// Config is the effective streamclock configuration
type Config struct {
	Direction counter.Direction `yaml:"direction"`
	Start     counter.Reference `yaml:"start"`
	End       counter.Reference `yaml:"end"`
	LogLevel  string            `yaml:"log_level"`
	LogFormat string            `yaml:"log_format"`
	Output    string            `yaml:"output"`
	Refresh   time.Duration     `yaml:"refresh"`
}

// SetDefaults registers default values on v
func SetDefaults(v *viper.Viper) {
	v.SetDefault("direction", "down")
	v.SetDefault("start", "")
	v.SetDefault("end", "")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "text")
	v.SetDefault("output", "text")
	v.SetDefault("refresh", time.Second)
}

// Init points v at the config file and environment. An explicit cfgFile must
// exist; the default $HOME/.streamclock/config.yaml is optional.
func Init(v *viper.Viper, cfgFile string) error {
	SetDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".streamclock"))
		}
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("failed to read config: %w", err)
	}
	return nil
}

// Load reads and validates the configuration held by v
func Load(v *viper.Viper) (Config, error) {
	direction, err := counter.ParseDirection(v.GetString("direction"))
	if err != nil {
		return Config{}, fmt.Errorf("direction: %w", err)
	}
	start, err := loadReference(v, "start")
	if err != nil {
		return Config{}, fmt.Errorf("start: %w", err)
	}
	end, err := loadReference(v, "end")
	if err != nil {
		return Config{}, fmt.Errorf("end: %w", err)
	}

	cfg := Config{
		Direction: direction,
		Start:     start,
		End:       end,
		LogLevel:  strings.ToLower(v.GetString("log_level")),
		LogFormat: strings.ToLower(v.GetString("log_format")),
		Output:    strings.ToLower(v.GetString("output")),
		Refresh:   v.GetDuration("refresh"),
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the values that cannot be checked while parsing
func (c Config) Validate() error {
	switch c.Output {
	case "text", "json", "yaml":
	default:
		return fmt.Errorf("output: unsupported format %q (want text, json or yaml)", c.Output)
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("log_format: unsupported format %q (want text or json)", c.LogFormat)
	}
	if c.Refresh <= 0 {
		return fmt.Errorf("refresh: must be positive, got %s", c.Refresh)
	}
	return nil
}

// Counter builds the counter described by the configuration
func (c Config) Counter() *counter.Counter {
	return counter.New(c.Direction, c.Start, c.End)
}

// loadReference reads key from v. YAML decodes an unquoted timestamp into a
// time.Time, so that case is taken as is instead of being reparsed.
func loadReference(v *viper.Viper, key string) (counter.Reference, error) {
	switch raw := v.Get(key).(type) {
	case nil:
		return counter.None(), nil
	case time.Time:
		return counter.Some(clock.FromTime(raw)), nil
	case *time.Time:
		if raw == nil {
			return counter.None(), nil
		}
		return counter.Some(clock.FromTime(*raw)), nil
	default:
		return ParseReference(v.GetString(key))
	}
}

// ParseReference parses an RFC 3339 timestamp; the empty string is absent
func ParseReference(s string) (counter.Reference, error) {
	if strings.TrimSpace(s) == "" {
		return counter.None(), nil
	}
	ts, err := clock.Parse(s)
	if err != nil {
		return counter.None(), err
	}
	return counter.Some(ts), nil
}
