// SPDX-License-Identifier: MIT

package polytope

import (
	"math"

	"github.com/rs/zerolog"
)

// DefaultScale multiplies the normalized generator output.
const DefaultScale = 1.0

const panicScale = "polytope: WithScale: scale must be finite and > 0"

// Option configures New.
type Option func(*options)

type options struct {
	scale float64
	log   zerolog.Logger
}

func gatherOptions(opts ...Option) options {
	o := options{scale: DefaultScale, log: zerolog.Nop()}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// WithScale multiplies every generated coordinate by k.
func WithScale(k float64) Option {
	if math.IsNaN(k) || math.IsInf(k, 0) || k <= 0 {
		panic(panicScale)
	}

	return func(o *options) { o.scale = k }
}

// WithLogger receives trace events for mutations.
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) { o.log = l }
}
