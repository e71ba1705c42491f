package animation_test

import (
	"context"
	"math"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/katalvlaran/dimking/animation"
	"github.com/katalvlaran/dimking/vecn"
	"github.com/stretchr/testify/require"
)

type rotation struct {
	a, b  int
	theta float64
}

// fakeTarget records what the driver does to it.
type fakeTarget struct {
	mu        sync.Mutex
	rotations []rotation
	blends    []float64
	resets    int
	onRotate  func()
}

func (f *fakeTarget) Rotate(a, b int, theta float64) error {
	f.mu.Lock()
	f.rotations = append(f.rotations, rotation{a, b, theta})
	hook := f.onRotate
	f.mu.Unlock()
	if hook != nil {
		hook()
	}

	return nil
}

func (f *fakeTarget) Vertices() []vecn.Vec { return []vecn.Vec{vecn.New(1, 0)} }

func (f *fakeTarget) BlendToOriginal(_ []vecn.Vec, t float64) error {
	f.mu.Lock()
	f.blends = append(f.blends, t)
	f.mu.Unlock()

	return nil
}

func (f *fakeTarget) Reset() {
	f.mu.Lock()
	f.resets++
	f.mu.Unlock()
}

func waitDone(t *testing.T, d *animation.Driver) {
	t.Helper()
	select {
	case <-d.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("driver did not finish")
	}
}

func fastClock(t *testing.T) animation.Clock {
	t.Helper()
	c, err := animation.NewFixedClock(0.05)
	require.NoError(t, err)

	return c
}

// TestTransitionCompletesCurrentLeg requests a stop during the first leg and
// checks that leg still sweeps its full angle with forward-only increments.
func TestTransitionCompletesCurrentLeg(t *testing.T) {
	target := &fakeTarget{}
	d, err := animation.NewDriver(target, []animation.Leg{{A: 0, B: 3}, {A: 1, B: 2}},
		animation.WithClock(fastClock(t)))
	require.NoError(t, err)
	target.onRotate = d.Transition

	require.NoError(t, d.Start(context.Background()))
	waitDone(t, d)

	target.mu.Lock()
	defer target.mu.Unlock()
	var sum float64
	for _, r := range target.rotations {
		require.Equal(t, 0, r.a)
		require.Equal(t, 3, r.b)
		require.Greater(t, r.theta, 0.0)
		sum += r.theta
	}
	require.InDelta(t, animation.DefaultLegAngle, sum, 1e-12)
	require.NotEmpty(t, target.blends)
	// one Reset after the return pass, one when the run exits
	require.Equal(t, 2, target.resets)
	require.False(t, d.Running())
	require.NoError(t, d.Err())
	require.Equal(t, 1, d.Cycles())
}

// TestReturnToOriginBlendIsMonotonic checks the return pass starts at t = 0
// and never blends backwards.
func TestReturnToOriginBlendIsMonotonic(t *testing.T) {
	target := &fakeTarget{}
	d, err := animation.NewDriver(target, []animation.Leg{{A: 0, B: 1}},
		animation.WithClock(fastClock(t)))
	require.NoError(t, err)
	target.onRotate = d.Transition

	require.NoError(t, d.Start(context.Background()))
	waitDone(t, d)

	target.mu.Lock()
	defer target.mu.Unlock()
	require.Equal(t, 0.0, target.blends[0])
	for i := 1; i < len(target.blends); i++ {
		require.GreaterOrEqual(t, target.blends[i], target.blends[i-1])
	}
}

// TestStartTwice checks Done is closed before the first run, a second Start
// while running fails and a finished driver restarts.
func TestStartTwice(t *testing.T) {
	target := &fakeTarget{}
	d, err := animation.NewDriver(target, []animation.Leg{{A: 0, B: 1}},
		animation.WithClock(fastClock(t)))
	require.NoError(t, err)

	// Done is closed before the first run
	select {
	case <-d.Done():
	default:
		t.Fatal("Done should be closed before Start")
	}

	require.NoError(t, d.Start(context.Background()))
	require.ErrorIs(t, d.Start(context.Background()), animation.ErrDriverRunning)
	d.Transition()
	waitDone(t, d)

	// restartable once finished
	require.NoError(t, d.Start(context.Background()))
	require.False(t, d.Transitioning())
	d.Transition()
	waitDone(t, d)
}

// TestContextCancelStopsAndResets cancels mid-leg and expects the context
// error and a snap back to the originals.
func TestContextCancelStopsAndResets(t *testing.T) {
	target := &fakeTarget{}
	ctx, cancel := context.WithCancel(context.Background())
	d, err := animation.NewDriver(target, []animation.Leg{{A: 0, B: 1}},
		animation.WithClock(fastClock(t)))
	require.NoError(t, err)
	target.onRotate = cancel

	require.NoError(t, d.Start(ctx))
	waitDone(t, d)
	require.ErrorIs(t, d.Err(), context.Canceled)

	// interrupted runs still restore the originals

	target.mu.Lock()
	defer target.mu.Unlock()
	require.Equal(t, 1, target.resets)
}

// TestConfigValidate breaks one field at a time and expects both Validate
// and NewDriver to refuse it.
func TestConfigValidate(t *testing.T) {
	require.NoError(t, animation.DefaultConfig().Validate())

	bad := []func(c *animation.Config){
		func(c *animation.Config) { c.LegDuration = 0 },
		func(c *animation.Config) { c.StartPauseMax = 1 },
		func(c *animation.Config) { c.LegPauseMin = -1 },
		func(c *animation.Config) { c.LegAngle = math.Inf(1) },
		func(c *animation.Config) { c.Steepness = 0 },
	}
	for i, mutate := range bad {
		c := animation.DefaultConfig()
		mutate(&c)
		require.ErrorIs(t, c.Validate(), animation.ErrInvalidConfig, "case %d", i)

		_, err := animation.NewDriver(&fakeTarget{}, nil, animation.WithConfig(c), animation.WithClock(fastClock(t)))
		require.ErrorIs(t, err, animation.ErrInvalidConfig)
	}

	_, err := animation.NewDriver(nil, nil)
	require.Error(t, err)
}

// TestDriverRequiresClock checks that a driver without a frame source is
// refused instead of falling back to a step that never sleeps.
func TestDriverRequiresClock(t *testing.T) {
	_, err := animation.NewDriver(&fakeTarget{}, []animation.Leg{{A: 0, B: 1}})
	require.ErrorIs(t, err, animation.ErrNilClock)

	_, err = animation.NewDriver(&fakeTarget{}, nil, animation.WithClock(nil))
	require.ErrorIs(t, err, animation.ErrNilClock) // explicit nil is no better
}

// TestTickerClockPacesDriver runs the stock pacing on a wall-clock ticker
// and checks that the rotation count stays near the frame rate.
func TestTickerClockPacesDriver(t *testing.T) {
	clock, err := animation.NewTickerClock(animation.DefaultFPS)
	require.NoError(t, err)
	defer clock.Stop()

	cfg := animation.DefaultConfig()
	cfg.StartPauseMin, cfg.StartPauseMax = 0, 0
	var rotations atomic.Int64
	target := &fakeTarget{onRotate: func() { rotations.Add(1) }}
	d, err := animation.NewDriver(target, []animation.Leg{{A: 0, B: 1}},
		animation.WithConfig(cfg), animation.WithClock(clock))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, d.Start(ctx))
	time.Sleep(200 * time.Millisecond)
	cancel()
	waitDone(t, d)

	// 200ms at 60 fps is about 12 frames; a spinning loop would be thousands.
	require.Positive(t, rotations.Load())
	require.Less(t, rotations.Load(), int64(40))
}
