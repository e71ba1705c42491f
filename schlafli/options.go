// SPDX-License-Identifier: MIT

package schlafli

import (
	"math"

	"github.com/rs/zerolog"
)

const (
	// DefaultKeyPrecision is the number of decimals kept in a vertex key.
	DefaultKeyPrecision = 5

	// DefaultKeyOffset shifts coordinates before rounding so that the common
	// exact values (0, ±0.5, ±1) never sit on a rounding boundary.
	DefaultKeyOffset = 0.123

	// DefaultMaxVertices bounds the orbit; the 120-cell has 600 vertices and
	// the largest star polytopes 120, so the cap only trips on bad symbols.
	DefaultMaxVertices = 4096

	// planarTolerance snaps ss to 1 for flat (Euclidean tiling) symbols.
	planarTolerance = 1e-9

	maxKeyPrecision = 12
)

const (
	panicKeyPrecision = "schlafli: WithKeyPrecision: precision must be in [0, 12]"
	panicKeyOffset    = "schlafli: WithKeyOffset: offset must be finite"
	panicMaxVertices  = "schlafli: WithMaxVertices: limit must be ≥ 2"
)

// Option configures Generate and VerifyClosure.
type Option func(*options)

type options struct {
	keyPrecision int
	keyOffset    float64
	maxVertices  int
	log          zerolog.Logger
}

func defaultOptions() options {
	return options{
		keyPrecision: DefaultKeyPrecision,
		keyOffset:    DefaultKeyOffset,
		maxVertices:  DefaultMaxVertices,
		log:          zerolog.Nop(),
	}
}

func gatherOptions(opts ...Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// WithKeyPrecision sets the decimals kept when keying vertices.
func WithKeyPrecision(decimals int) Option {
	if decimals < 0 || decimals > maxKeyPrecision {
		panic(panicKeyPrecision)
	}

	return func(o *options) { o.keyPrecision = decimals }
}

// WithKeyOffset sets the shift applied before rounding.
func WithKeyOffset(offset float64) Option {
	if math.IsNaN(offset) || math.IsInf(offset, 0) {
		panic(panicKeyOffset)
	}

	return func(o *options) { o.keyOffset = offset }
}

// WithMaxVertices caps the vertex orbit.
func WithMaxVertices(limit int) Option {
	if limit < 2 {
		panic(panicMaxVertices)
	}

	return func(o *options) { o.maxVertices = limit }
}

// WithLogger receives per-level debug events.
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) { o.log = l }
}
