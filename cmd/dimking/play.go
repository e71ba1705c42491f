// SPDX-License-Identifier: MIT

package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/katalvlaran/dimking/animation"
	"github.com/katalvlaran/dimking/command"
	"github.com/katalvlaran/dimking/puzzle"
	"github.com/katalvlaran/dimking/schlafli"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// printReporter announces verdicts on the command output.
type printReporter struct {
	out    io.Writer
	solved chan struct{}
}

func (r *printReporter) HandlePass() {
	fmt.Fprintln(r.out, "PASS")
	close(r.solved)
}

func (r *printReporter) HandleStrike() { fmt.Fprintln(r.out, "STRIKE") }

func newPlayCmd(a *app) *cobra.Command {
	var (
		shape     string
		stars     bool
		rotations int
		fps       int
		fixedStep bool
	)
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Run a headless session fed by commands on stdin",
		Long: "Reads one command per line: go, press <colors>, status, help or quit.\n" +
			strings.ReplaceAll(command.HelpMessage, "!{0} ", ""),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if rotations < 1 {
				return fmt.Errorf("rotations %d: %w", rotations, puzzle.ErrNoRotations)
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			clock, closeClock, err := newClock(fps, fixedStep)
			if err != nil {
				return err
			}
			defer closeClock()

			opts := []puzzle.Option{
				puzzle.WithScale(a.cfg.Scale),
				puzzle.WithRotationCount(rotations),
				puzzle.WithClock(clock),
				puzzle.WithDriverConfig(a.cfg.Driver),
				puzzle.WithLogger(log.Logger),
			}
			if a.cfg.Seed != 0 {
				opts = append(opts, puzzle.WithSeed(a.cfg.Seed))
			}
			switch {
			case shape != "":
				opts = append(opts, puzzle.WithShape(shape))
			case stars:
				opts = append(opts, puzzle.WithShapes(schlafli.StarShapes))
			}

			out := cmd.OutOrStdout()
			rep := &printReporter{out: out, solved: make(chan struct{})}
			m, err := puzzle.New(rep, opts...)
			if err != nil {
				return err
			}
			defer m.Close()
			if err := m.Start(ctx); err != nil {
				return err
			}

			return playLoop(ctx, a, m, cmd.InOrStdin(), out, rep.solved)
		},
	}
	f := cmd.Flags()
	f.StringVar(&shape, "shape", "", "force a Schläfli symbol instead of a random shape")
	f.BoolVar(&stars, "stars", false, "draw from the star polytopes")
	f.IntVar(&rotations, "rotations", puzzle.DefaultRotationCount, "rotations per cycle")
	f.IntVar(&fps, "fps", animation.DefaultFPS, "frame rate of the rotation")
	f.BoolVar(&fixedStep, "fixed-step", false, "advance 1/fps seconds per frame without sleeping")

	return cmd
}

// newClock paces frames on the wall clock unless fixed asks for
// back-to-back frames of 1/fps seconds each.
func newClock(fps int, fixed bool) (animation.Clock, func(), error) {
	if fps <= 0 {
		return nil, nil, fmt.Errorf("fps %d: %w", fps, animation.ErrInvalidStep)
	}
	if fixed {
		c, err := animation.NewFixedClock(1 / float64(fps))
		if err != nil {
			return nil, nil, err
		}

		return c, func() {}, nil
	}
	c, err := animation.NewTickerClock(fps)
	if err != nil {
		return nil, nil, err
	}

	return c, c.Stop, nil
}

type scanResult struct {
	line string
	ok   bool
}

func playLoop(ctx context.Context, a *app, m *puzzle.Module, in io.Reader, out io.Writer, solved <-chan struct{}) error {
	lines := make(chan scanResult)
	go func() {
		sc := bufio.NewScanner(in)
		for sc.Scan() {
			select {
			case lines <- scanResult{line: sc.Text(), ok: true}:
			case <-ctx.Done():
				return
			}
		}
		select {
		case lines <- scanResult{}:
		case <-ctx.Done():
		}
	}()

	for {
		select {
		case <-solved:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		case r := <-lines:
			if !r.ok {
				return nil
			}
			text := strings.TrimSpace(r.line)
			switch strings.ToLower(text) {
			case "":
				continue
			case "quit", "exit":
				return nil
			case "help":
				fmt.Fprintln(out, strings.ReplaceAll(command.HelpMessage, "!{0} ", ""))
				continue
			case "status":
				if err := printStatus(a, m, out); err != nil {
					return err
				}
				continue
			}
			if err := command.Run(ctx, m, text); err != nil {
				log.Warn().Err(err).Str("command", text).Msg("command rejected")
				fmt.Fprintf(out, "error: %v\n", err)
				continue
			}
			if m.State() == puzzle.Solving {
				if err := printStatus(a, m, out); err != nil {
					return err
				}
			}
		}
	}
}

func printStatus(a *app, m *puzzle.Module, out io.Writer) error {
	s := m.Snapshot()
	if a.cfg.Format == formatJSON {
		return writeJSON(out, s)
	}
	fmt.Fprintf(out, "%s %s, %d vertices, rotations %s\n",
		s.State, s.Shape, s.Vertices, strings.Join(s.Rotations, " "))
	if len(s.Palette) > 0 {
		counts := make(map[puzzle.Color]int, len(s.Palette))
		for _, c := range s.VertexColors {
			counts[c]++
		}
		parts := make([]string, len(s.Palette))
		for i, c := range s.Palette {
			parts[i] = fmt.Sprintf("%s×%d", c, counts[c])
		}
		fmt.Fprintf(out, "colors: %s; number %d of %d\n",
			strings.Join(parts, " "), s.Progress+1, len(s.SolveNumbers))
	}

	return nil
}
