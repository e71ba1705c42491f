// SPDX-License-Identifier: MIT

package puzzle

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/katalvlaran/dimking/animation"
	"github.com/katalvlaran/dimking/polytope"
	"github.com/katalvlaran/dimking/schlafli"
	"github.com/rs/zerolog"
)

// State is the phase of a Module.
type State int

const (
	// Rotating: the polytope turns; the first click starts the transition.
	Rotating State = iota
	// PreSolving: waiting for the current rotation leg to finish.
	PreSolving
	// Solving: vertices are colored and presses are validated.
	Solving
	// Solved: every number was entered, or the shape could not be built.
	Solved
)

func (s State) String() string {
	switch s {
	case Rotating:
		return "rotating"
	case PreSolving:
		return "presolving"
	case Solving:
		return "solving"
	case Solved:
		return "solved"
	}

	return fmt.Sprintf("State(%d)", int(s))
}

// Reporter receives the verdicts of a Module.
type Reporter interface {
	HandlePass()
	HandleStrike()
}

type nopReporter struct{}

func (nopReporter) HandlePass()   {}
func (nopReporter) HandleStrike() {}

var moduleIDCounter atomic.Int64

// Module is one puzzle session.
type Module struct {
	id       int
	session  string
	opts     options
	reporter Reporter
	log      zerolog.Logger

	mu        sync.Mutex
	ctx       context.Context
	cancel    context.CancelFunc
	started   bool
	symbol    schlafli.Symbol
	poly      *polytope.Polytope
	driver    *animation.Driver
	ticker    *animation.TickerClock // owned; nil when WithClock was given
	rotations []RotationPair
	state     State
	ready     chan struct{}

	palette  Palette
	colors   []Color
	solve    []int
	progress int
	entry    *Entry
	strikes  int
}

// New prepares a Module. Nothing is generated until Start.
func New(reporter Reporter, opts ...Option) (*Module, error) {
	o := gatherOptions(opts...)
	if len(o.shapes) == 0 {
		return nil, ErrNoShapes
	}
	if err := o.driverConfig.Validate(); err != nil {
		return nil, err
	}
	if reporter == nil {
		reporter = nopReporter{}
	}
	id := int(moduleIDCounter.Add(1))
	session := uuid.NewString()

	return &Module{
		id:       id,
		session:  session,
		opts:     o,
		reporter: reporter,
		log: o.log.With().
			Str("module", "dimking").
			Int("id", id).
			Str("session", session).
			Logger(),
		ready: make(chan struct{}),
	}, nil
}

// ID returns the instance number used in logs.
func (m *Module) ID() int { return m.id }

// Session returns the unique session id.
func (m *Module) Session() string { return m.session }

// Start picks a shape, builds it and starts the rotation. When the shape
// cannot be generated the module passes itself and enters Solved.
func (m *Module) Start(ctx context.Context) error {
	m.mu.Lock()
	if m.started {
		m.mu.Unlock()
		return ErrAlreadyStarted
	}
	m.started = true
	m.ctx, m.cancel = context.WithCancel(ctx)

	text := m.opts.shapes[m.opts.rng.Intn(len(m.opts.shapes))]
	m.log.Info().Str("shape", text).Msg("picked shape")

	if err := m.buildLocked(text); err != nil {
		m.log.Error().Err(err).Str("shape", text).Msg("unable to generate polytope, passing")
		m.state = Solved
		m.mu.Unlock()
		m.reporter.HandlePass()

		return nil
	}
	err := m.driver.Start(m.ctx)
	m.mu.Unlock()

	return err
}

func (m *Module) buildLocked(text string) error {
	st, err := schlafli.GenerateString(text, m.opts.genOpts...)
	if err != nil {
		return err
	}
	poly, err := polytope.New(st, polytope.WithScale(m.opts.scale), polytope.WithLogger(m.log))
	if err != nil {
		return fmt.Errorf("%w: %w", schlafli.ErrPolytopeGeneration, err)
	}

	pairs := RotationPairs(poly.Dimension())
	m.rotations = make([]RotationPair, m.opts.rotationCount)
	legs := make([]animation.Leg, m.opts.rotationCount)
	for i := range m.rotations {
		p := pairs[m.opts.rng.Intn(len(pairs))]
		m.rotations[i] = p
		legs[i] = animation.Leg{A: p.A, B: p.B}
	}

	driverOpts := []animation.Option{
		animation.WithConfig(m.opts.driverConfig),
		animation.WithRand(newChildRand(m.opts.rng)),
		animation.WithLogger(m.log),
	}
	clock := m.opts.clock
	if clock == nil {
		ticker, err := animation.NewTickerClock(animation.DefaultFPS)
		if err != nil {
			return err
		}
		m.ticker, clock = ticker, ticker
	}
	driverOpts = append(driverOpts, animation.WithClock(clock))
	driver, err := animation.NewDriver(poly, legs, driverOpts...)
	if err != nil {
		return err
	}

	m.symbol = st.Symbol
	m.poly = poly
	m.driver = driver
	m.state = Rotating
	poly.OnVertexSelected(func(i int) {
		if err := m.SelectVertex(i); err != nil {
			m.log.Warn().Err(err).Int("vertex", i).Msg("click dropped")
		}
	})
	m.log.Info().Str("rotations", joinPairs(m.rotations)).Msg("rotations chosen")

	return nil
}

// SelectVertex handles a click on vertex i.
func (m *Module) SelectVertex(i int) error {
	var pass, strike bool
	defer func() {
		if strike {
			m.reporter.HandleStrike()
		}
		if pass {
			m.reporter.HandlePass()
		}
	}()

	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.started {
		return ErrNotStarted
	}
	if m.state == Solved {
		return nil
	}
	if i < 0 || i >= m.poly.VertexCount() {
		return fmt.Errorf("SelectVertex(%d): %w", i, polytope.ErrIndexOutOfRange)
	}
	m.log.Debug().Int("vertex", i).Str("state", m.state.String()).Msg("vertex clicked")

	switch m.state {
	case Rotating:
		m.state = PreSolving
		m.driver.Transition()
		go m.preSolve(m.driver.Done(), m.ready)
	case Solving:
		c := m.colors[i]
		v, _ := m.palette.Value(c)
		out := m.entry.Press(v)
		m.log.Info().
			Str("color", c.String()).
			Int("value", v).
			Int("left", m.entry.Remaining()).
			Str("outcome", out.String()).
			Msg("color pressed")
		switch out {
		case Accepted:
			m.log.Info().Int("number", m.entry.Target()).Msg("sequence correct")
			m.progress++
			if m.progress == len(m.solve) {
				m.state = Solved
				pass = true
				m.log.Info().Msg("module solved")
			} else {
				m.entry = NewEntry(m.solve[m.progress], len(m.palette))
			}
		case Rejected:
			m.log.Info().
				Int("count", m.entry.Count()).
				Ints("values", m.entry.Values()).
				Int("sum", m.entry.Sum()).
				Int("expected", m.entry.Target()).
				Msg("invalid number entered, strike")
			strike = true
			if err := m.resetLocked(); err != nil {
				return err
			}
		}
	}

	return nil
}

// preSolve waits for the driver to stop, then colors the vertices.
func (m *Module) preSolve(driverDone <-chan struct{}, ready chan struct{}) {
	select {
	case <-driverDone:
	case <-m.ctx.Done():
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state != PreSolving {
		return
	}
	if rest, err := m.poly.AtRest(restEpsilon); err != nil || !rest {
		m.log.Warn().Err(err).Msg("shape did not return to its resting pose")
	}
	n := m.poly.VertexCount()
	palette := ChoosePalette(m.opts.rng, n)
	colors, err := AssignColors(m.opts.rng, n, palette)
	if err != nil {
		m.log.Error().Err(err).Msg("color assignment failed")
		return
	}
	solve, err := SolveNumbers(m.rotations, m.symbol)
	if err != nil {
		m.log.Error().Err(err).Msg("solve numbers failed")
		return
	}

	m.palette = palette
	m.colors = colors
	m.solve = solve
	m.progress = 0
	m.entry = NewEntry(solve[0], len(palette))
	m.state = Solving

	seqs, names := m.sequencesLocked()
	m.log.Info().Str("palette", palette.String()).Msg("colors assigned")
	m.log.Info().Ints("solve_numbers", solve).Str("sequences", seqs).Str("colors", names).Msg("expected input")
	close(ready)
}

// resetLocked returns to Rotating after a strike.
func (m *Module) resetLocked() error {
	m.strikes++
	m.progress = 0
	m.entry = nil
	m.palette = nil
	m.colors = nil
	m.solve = nil
	m.state = Rotating
	m.ready = make(chan struct{})

	return m.driver.Start(m.ctx)
}

// sequencesLocked renders the expected press sequences as values and colors.
func (m *Module) sequencesLocked() (string, string) {
	values := make([]string, 0, len(m.solve))
	colors := make([]string, 0, len(m.solve))
	for _, n := range m.solve {
		seq, err := Decompose(n, len(m.palette))
		if err != nil {
			values = append(values, "?")
			colors = append(colors, "?")
			continue
		}
		vs := make([]string, len(seq))
		cs := make([]string, len(seq))
		for i, v := range seq {
			vs[i] = fmt.Sprint(v)
			if v < len(m.palette) {
				cs[i] = m.palette[v].String()
			} else {
				cs[i] = "?"
			}
		}
		values = append(values, strings.Join(vs, "-"))
		colors = append(colors, strings.Join(cs, "-"))
	}

	return strings.Join(values, ", "), strings.Join(colors, ", ")
}

// Skip forces the transition to solving and waits for it.
func (m *Module) Skip(ctx context.Context) error {
	m.mu.Lock()
	if !m.started {
		m.mu.Unlock()
		return ErrNotStarted
	}
	if m.state != Rotating {
		m.mu.Unlock()
		return ErrNotRotating
	}
	ready := m.ready
	m.mu.Unlock()

	if err := m.SelectVertex(0); err != nil {
		return err
	}

	return m.wait(ctx, ready)
}

// Ready is closed once the current transition reaches Solving.
func (m *Module) Ready() <-chan struct{} {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.ready
}

func (m *Module) wait(ctx context.Context, ready <-chan struct{}) error {
	select {
	case <-ready:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// PressColor clicks the first vertex carrying c.
func (m *Module) PressColor(c Color) error {
	m.mu.Lock()
	if m.state != Solving {
		m.mu.Unlock()
		return fmt.Errorf("PressColor(%s): %w", c, ErrNotSolving)
	}
	idx := -1
	for i, vc := range m.colors {
		if vc == c {
			idx = i
			break
		}
	}
	poly := m.poly
	m.mu.Unlock()
	if idx < 0 {
		return fmt.Errorf("PressColor(%s): %w", c, ErrColorNotShown)
	}

	return poly.Select(idx)
}

// State returns the current phase.
func (m *Module) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.state
}

// Polytope returns the live polytope, or nil before Start or after an
// auto-pass.
func (m *Module) Polytope() *polytope.Polytope {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.poly
}

// Rotations returns the chosen rotation pairs.
func (m *Module) Rotations() []RotationPair {
	m.mu.Lock()
	defer m.mu.Unlock()

	return append([]RotationPair(nil), m.rotations...)
}

// Palette returns the colors in play while solving.
func (m *Module) Palette() Palette {
	m.mu.Lock()
	defer m.mu.Unlock()

	return append(Palette(nil), m.palette...)
}

// Close stops the animation and waits for it to exit.
func (m *Module) Close() error {
	m.mu.Lock()
	cancel, driver, ticker := m.cancel, m.driver, m.ticker
	m.mu.Unlock()
	if cancel == nil {
		return nil
	}
	cancel()
	if driver != nil {
		<-driver.Done()
	}
	if ticker != nil {
		ticker.Stop()
	}

	return nil
}

func joinPairs(ps []RotationPair) string {
	parts := make([]string, len(ps))
	for i, p := range ps {
		parts[i] = p.String()
	}

	return strings.Join(parts, ", ")
}
