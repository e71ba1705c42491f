// SPDX-License-Identifier: MIT

package animation

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"github.com/rs/zerolog"
)

// Timings of one rotation cycle, in seconds.
const (
	DefaultLegDuration    = 2.0
	DefaultReturnDuration = 2.0
	DefaultStartPauseMin  = 1.75
	DefaultStartPauseMax  = 2.25
	DefaultLegPauseMin    = 0.5
	DefaultLegPauseMax    = 0.6

	// DefaultLegAngle is the angle, in radians, swept by one leg.
	DefaultLegAngle = 1.0

	// DefaultFPS is the frame rate of a wall-clock driver.
	DefaultFPS = 60
)

// ErrInvalidConfig signals a Config with non-positive durations, inverted
// pause ranges or a non-finite angle.
var ErrInvalidConfig = errors.New("animation: invalid driver config")

// Config holds the pacing of the driver loop.
type Config struct {
	LegDuration    float64 `mapstructure:"leg_duration" json:"leg_duration"`
	ReturnDuration float64 `mapstructure:"return_duration" json:"return_duration"`
	StartPauseMin  float64 `mapstructure:"start_pause_min" json:"start_pause_min"`
	StartPauseMax  float64 `mapstructure:"start_pause_max" json:"start_pause_max"`
	LegPauseMin    float64 `mapstructure:"leg_pause_min" json:"leg_pause_min"`
	LegPauseMax    float64 `mapstructure:"leg_pause_max" json:"leg_pause_max"`
	LegAngle       float64 `mapstructure:"leg_angle" json:"leg_angle"`
	Steepness      float64 `mapstructure:"steepness" json:"steepness"`
}

// DefaultConfig returns the stock pacing.
func DefaultConfig() Config {
	return Config{
		LegDuration:    DefaultLegDuration,
		ReturnDuration: DefaultReturnDuration,
		StartPauseMin:  DefaultStartPauseMin,
		StartPauseMax:  DefaultStartPauseMax,
		LegPauseMin:    DefaultLegPauseMin,
		LegPauseMax:    DefaultLegPauseMax,
		LegAngle:       DefaultLegAngle,
		Steepness:      DefaultSteepness,
	}
}

func finite(xs ...float64) bool {
	for _, x := range xs {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}

	return true
}

// Validate checks the config.
func (c Config) Validate() error {
	switch {
	case !finite(c.LegDuration, c.ReturnDuration, c.StartPauseMin, c.StartPauseMax,
		c.LegPauseMin, c.LegPauseMax, c.LegAngle, c.Steepness):
		return fmt.Errorf("non-finite value: %w", ErrInvalidConfig)
	case c.LegDuration <= 0 || c.ReturnDuration <= 0:
		return fmt.Errorf("durations must be > 0: %w", ErrInvalidConfig)
	case c.StartPauseMin < 0 || c.StartPauseMax < c.StartPauseMin:
		return fmt.Errorf("start pause [%g, %g]: %w", c.StartPauseMin, c.StartPauseMax, ErrInvalidConfig)
	case c.LegPauseMin < 0 || c.LegPauseMax < c.LegPauseMin:
		return fmt.Errorf("leg pause [%g, %g]: %w", c.LegPauseMin, c.LegPauseMax, ErrInvalidConfig)
	case c.Steepness <= 0:
		return fmt.Errorf("steepness %g: %w", c.Steepness, ErrInvalidConfig)
	}

	return nil
}

// Option configures NewDriver.
type Option func(*driverOptions)

type driverOptions struct {
	cfg   Config
	clock Clock
	rng   *rand.Rand
	log   zerolog.Logger
}

// WithConfig replaces the pacing.
func WithConfig(c Config) Option { return func(o *driverOptions) { o.cfg = c } }

// WithClock sets the frame source. NewDriver requires one.
func WithClock(c Clock) Option { return func(o *driverOptions) { o.clock = c } }

// WithRand sets the source for pause lengths. The driver goroutine owns it.
func WithRand(r *rand.Rand) Option { return func(o *driverOptions) { o.rng = r } }

// WithLogger sets the driver's logger.
func WithLogger(l zerolog.Logger) Option { return func(o *driverOptions) { o.log = l } }
