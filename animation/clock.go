// SPDX-License-Identifier: MIT

package animation

import (
	"context"
	"errors"
	"time"
)

// ErrInvalidStep signals a non-positive frame step or rate.
var ErrInvalidStep = errors.New("animation: frame step must be > 0")

// Clock yields once per frame and reports the seconds elapsed since the
// previous frame.
type Clock interface {
	Tick(ctx context.Context) (dt float64, err error)
}

// FixedClock advances by a constant step without sleeping.
type FixedClock struct {
	dt float64
}

// NewFixedClock returns a FixedClock stepping dt seconds per frame.
func NewFixedClock(dt float64) (*FixedClock, error) {
	if !(dt > 0) {
		return nil, ErrInvalidStep
	}

	return &FixedClock{dt: dt}, nil
}

// Tick returns the fixed step, or ctx.Err() once ctx is done.
func (c *FixedClock) Tick(ctx context.Context) (float64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	return c.dt, nil
}

// TickerClock paces frames with a time.Ticker.
type TickerClock struct {
	ticker *time.Ticker
	last   time.Time
}

// NewTickerClock returns a clock firing fps times per second.
func NewTickerClock(fps int) (*TickerClock, error) {
	if fps <= 0 {
		return nil, ErrInvalidStep
	}

	return &TickerClock{
		ticker: time.NewTicker(time.Second / time.Duration(fps)),
		last:   time.Now(),
	}, nil
}

// Tick blocks until the next frame and returns the measured interval.
func (c *TickerClock) Tick(ctx context.Context) (float64, error) {
	select {
	case <-ctx.Done():
		return 0, ctx.Err()
	case now := <-c.ticker.C:
		dt := now.Sub(c.last).Seconds()
		c.last = now

		return dt, nil
	}
}

// Stop releases the ticker.
func (c *TickerClock) Stop() { c.ticker.Stop() }
