// SPDX-License-Identifier: MIT

package animation

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"sync/atomic"

	"github.com/katalvlaran/dimking/vecn"
)

var (
	// ErrDriverRunning is returned by Start while a previous run is still active.
	ErrDriverRunning = errors.New("animation: driver already running")

	// ErrNilClock is returned by NewDriver when no frame source was given.
	ErrNilClock = errors.New("animation: nil clock")
)

// Target is what the driver moves. *polytope.Polytope satisfies it.
type Target interface {
	Rotate(a, b int, theta float64) error
	Vertices() []vecn.Vec
	BlendToOriginal(from []vecn.Vec, t float64) error
	Reset()
}

// Leg is one rotation of the cycle, inside the (A, B) plane.
type Leg struct {
	A, B int
}

// Driver runs the rotation loop. While running it is the only writer of
// the target's vertices.
type Driver struct {
	target Target
	legs   []Leg
	opts   driverOptions

	transitioning atomic.Bool

	mu      sync.Mutex
	running bool
	done    chan struct{}
	err     error
	cycles  int
}

// NewDriver prepares a driver for target. Nothing runs until Start.
// A clock must be supplied with WithClock: TickerClock for wall-clock
// pacing, FixedClock for deterministic stepping.
func NewDriver(target Target, legs []Leg, opts ...Option) (*Driver, error) {
	if target == nil {
		return nil, errors.New("animation: nil target")
	}
	o := driverOptions{cfg: DefaultConfig()}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if err := o.cfg.Validate(); err != nil {
		return nil, err
	}
	if o.clock == nil {
		return nil, ErrNilClock
	}
	if o.rng == nil {
		o.rng = rand.New(rand.NewSource(1))
	}
	closed := make(chan struct{})
	close(closed)

	return &Driver{
		target: target,
		legs:   append([]Leg(nil), legs...),
		opts:   o,
		done:   closed,
	}, nil
}

// Start launches the loop on a new goroutine.
func (d *Driver) Start(ctx context.Context) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.running {
		return ErrDriverRunning
	}
	d.running = true
	d.err = nil
	d.transitioning.Store(false)
	d.done = make(chan struct{})
	go d.run(ctx, d.done)

	return nil
}

// Transition asks the loop to stop. The current leg always completes, then
// the vertices return to their origin before Done is closed.
func (d *Driver) Transition() { d.transitioning.Store(true) }

// Transitioning reports whether a stop was requested.
func (d *Driver) Transitioning() bool { return d.transitioning.Load() }

// Done is closed when the current run exits. Before the first Start it is
// already closed.
func (d *Driver) Done() <-chan struct{} {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.done
}

// Running reports whether the loop is active.
func (d *Driver) Running() bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.running
}

// Err returns why the last run ended early (context or target error).
func (d *Driver) Err() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.err
}

// Cycles returns the number of completed rotation cycles.
func (d *Driver) Cycles() int {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.cycles
}

func (d *Driver) run(ctx context.Context, done chan struct{}) {
	log := d.opts.log
	err := d.loop(ctx)
	// snap back even when interrupted mid-leg
	d.target.Reset()
	if err != nil {
		log.Debug().Err(err).Msg("rotation loop interrupted")
	}

	d.mu.Lock()
	d.running = false
	d.err = err
	d.transitioning.Store(false)
	d.mu.Unlock()
	close(done)
}

func (d *Driver) loop(ctx context.Context) error {
	cfg := d.opts.cfg
	for !d.transitioning.Load() {
		if err := d.pause(ctx, d.uniform(cfg.StartPauseMin, cfg.StartPauseMax)); err != nil {
			return err
		}
		for i, leg := range d.legs {
			if d.transitioning.Load() {
				break
			}
			d.opts.log.Debug().Int("leg", i).Int("a", leg.A).Int("b", leg.B).Msg("rotating")
			if err := d.runLeg(ctx, leg); err != nil {
				return err
			}
			if !d.transitioning.Load() {
				if err := d.pause(ctx, d.uniform(cfg.LegPauseMin, cfg.LegPauseMax)); err != nil {
					return err
				}
			}
		}
		if err := d.returnToOrigin(ctx); err != nil {
			return err
		}
		d.target.Reset()

		d.mu.Lock()
		d.cycles++
		d.mu.Unlock()
	}

	return nil
}

// runLeg sweeps cfg.LegAngle over cfg.LegDuration seconds of frames.
func (d *Driver) runLeg(ctx context.Context, leg Leg) error {
	cfg := d.opts.cfg
	tr := NewTracker(cfg.Steepness)
	for elapsed := 0.0; elapsed < cfg.LegDuration; {
		if delta := tr.Advance(elapsed / cfg.LegDuration); delta > 0 {
			if err := d.target.Rotate(leg.A, leg.B, delta*cfg.LegAngle); err != nil {
				return fmt.Errorf("leg %v: %w", leg, err)
			}
		}
		dt, err := d.opts.clock.Tick(ctx)
		if err != nil {
			return err
		}
		elapsed += dt
	}
	if rest := tr.Finish(); rest > 0 {
		if err := d.target.Rotate(leg.A, leg.B, rest*cfg.LegAngle); err != nil {
			return fmt.Errorf("leg %v: %w", leg, err)
		}
	}

	return nil
}

// returnToOrigin eases from the current positions back to the originals.
func (d *Driver) returnToOrigin(ctx context.Context) error {
	cfg := d.opts.cfg
	from := d.target.Vertices()
	for elapsed := 0.0; elapsed < cfg.ReturnDuration; {
		t := Ease(elapsed/cfg.ReturnDuration, cfg.Steepness)
		if err := d.target.BlendToOriginal(from, t); err != nil {
			return fmt.Errorf("return to origin: %w", err)
		}
		dt, err := d.opts.clock.Tick(ctx)
		if err != nil {
			return err
		}
		elapsed += dt
	}

	return nil
}

// pause waits for the given seconds of frames, or until a transition is
// requested.
func (d *Driver) pause(ctx context.Context, seconds float64) error {
	for elapsed := 0.0; elapsed < seconds && !d.transitioning.Load(); {
		dt, err := d.opts.clock.Tick(ctx)
		if err != nil {
			return err
		}
		elapsed += dt
	}

	return nil
}

func (d *Driver) uniform(lo, hi float64) float64 {
	return lo + d.opts.rng.Float64()*(hi-lo)
}
