// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strings"
	"time"

	"github.com/katalvlaran/dimking/animation"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const envPrefix = "DIMKING"

const (
	formatText = "text"
	formatJSON = "json"
)

var (
	errInvalidFormat = errors.New("dimking: format must be text or json")
	errInvalidScale  = errors.New("dimking: scale must be finite and > 0")
)

// config is what every command reads from flags, env and the config file.
type config struct {
	Seed     int64            `mapstructure:"seed"`
	Scale    float64          `mapstructure:"scale"`
	Format   string           `mapstructure:"format"`
	LogLevel string           `mapstructure:"log-level"`
	Driver   animation.Config `mapstructure:"driver"`
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	return v
}

// loadConfig binds flags, reads the optional config file and decodes the
// result over the defaults.
func loadConfig(v *viper.Viper, flags *pflag.FlagSet) (config, error) {
	if err := v.BindPFlags(flags); err != nil {
		return config{}, err
	}
	setDriverDefaults(v, animation.DefaultConfig())
	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	cfg := config{Driver: animation.DefaultConfig()}
	if err := v.Unmarshal(&cfg); err != nil {
		return config{}, fmt.Errorf("decode config: %w", err)
	}
	if cfg.Format != formatText && cfg.Format != formatJSON {
		return config{}, fmt.Errorf("%q: %w", cfg.Format, errInvalidFormat)
	}
	if !(cfg.Scale > 0) || math.IsInf(cfg.Scale, 0) {
		return config{}, fmt.Errorf("scale %g: %w", cfg.Scale, errInvalidScale)
	}
	if err := cfg.Driver.Validate(); err != nil {
		return config{}, err
	}

	return cfg, nil
}

// setDriverDefaults registers every driver.* key so that AutomaticEnv
// resolves DIMKING_DRIVER_<KEY> for it; viper only looks up env vars for
// keys it already knows.
func setDriverDefaults(v *viper.Viper, c animation.Config) {
	for key, val := range map[string]float64{
		"leg_duration":    c.LegDuration,
		"return_duration": c.ReturnDuration,
		"start_pause_min": c.StartPauseMin,
		"start_pause_max": c.StartPauseMax,
		"leg_pause_min":   c.LegPauseMin,
		"leg_pause_max":   c.LegPauseMax,
		"leg_angle":       c.LegAngle,
		"steepness":       c.Steepness,
	} {
		v.SetDefault("driver."+key, val)
	}
}

// setupLogger routes the global logger to a console writer on w.
func setupLogger(level string, w io.Writer) error {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		return fmt.Errorf("log level %q: %w", level, err)
	}
	zerolog.SetGlobalLevel(lvl)
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}).
		With().Timestamp().Logger()

	return nil
}
