// SPDX-License-Identifier: MIT

package puzzle

import (
	"math"
	"math/rand"
	"time"

	"github.com/katalvlaran/dimking/animation"
	"github.com/katalvlaran/dimking/schlafli"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	// DefaultRotationCount is the number of rotations shown per cycle.
	DefaultRotationCount = 5

	// DefaultScale enlarges the unit-normalized polytope for display.
	DefaultScale = 2.5

	// restEpsilon bounds the drift tolerated after the return to origin.
	restEpsilon = 1e-9
)

const (
	panicRotationCount = "puzzle: WithRotationCount: count must be ≥ 1"
	panicScale         = "puzzle: WithScale: scale must be finite and > 0"
	panicNilRand       = "puzzle: WithRand: nil source"
)

// Option configures a Module.
type Option func(*options)

type options struct {
	rng           *rand.Rand
	shapes        []string
	rotationCount int
	scale         float64
	clock         animation.Clock
	driverConfig  animation.Config
	genOpts       []schlafli.Option
	log           zerolog.Logger
}

func defaultOptions() options {
	return options{
		shapes:        schlafli.DefaultShapes,
		rotationCount: DefaultRotationCount,
		scale:         DefaultScale,
		driverConfig:  animation.DefaultConfig(),
		log:           log.Logger,
	}
}

// WithSeed makes the session reproducible.
func WithSeed(seed int64) Option {
	return func(o *options) { o.rng = rand.New(rand.NewSource(seed)) }
}

// WithRand supplies the random source. The Module serializes access to it.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic(panicNilRand)
	}

	return func(o *options) { o.rng = r }
}

// WithShapes replaces the catalogue the shape is drawn from.
func WithShapes(shapes []string) Option {
	return func(o *options) { o.shapes = append([]string(nil), shapes...) }
}

// WithShape forces a single shape.
func WithShape(shape string) Option {
	return func(o *options) { o.shapes = []string{shape} }
}

// WithRotationCount sets how many rotations are drawn.
func WithRotationCount(n int) Option {
	if n < 1 {
		panic(panicRotationCount)
	}

	return func(o *options) { o.rotationCount = n }
}

// WithScale sets the display scale of the polytope.
func WithScale(k float64) Option {
	if math.IsNaN(k) || math.IsInf(k, 0) || k <= 0 {
		panic(panicScale)
	}

	return func(o *options) { o.scale = k }
}

// WithClock sets the animation frame source. Without it the module paces
// the rotation with a TickerClock at animation.DefaultFPS and stops it on
// Close.
func WithClock(c animation.Clock) Option {
	return func(o *options) { o.clock = c }
}

// WithDriverConfig sets the animation pacing.
func WithDriverConfig(c animation.Config) Option {
	return func(o *options) { o.driverConfig = c }
}

// WithGeneratorOptions forwards options to schlafli.Generate.
func WithGeneratorOptions(opts ...schlafli.Option) Option {
	return func(o *options) { o.genOpts = append(o.genOpts, opts...) }
}

// WithLogger sets the parent logger; the module adds its own fields.
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) { o.log = l }
}

func gatherOptions(opts ...Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.rng == nil {
		o.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return o
}
