// SPDX-License-Identifier: MIT

package command

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/katalvlaran/dimking/puzzle"
)

var (
	// ErrInvalidCommand signals text that is not a known command.
	ErrInvalidCommand = errors.New("command: invalid command")

	// ErrUnknownColor signals a press naming a color outside the catalogue.
	ErrUnknownColor = errors.New("command: unknown color")
)

// HelpMessage is shown to remote players.
const HelpMessage = "Use !{0} go to stop the rotations and start solving. " +
	"Use !{0} press <colors> to press vertices by color, " +
	"e.g. !{0} press r b k or !{0} press red-blue-key."

var goWords = []string{"go", "activate", "stop", "run", "start", "on", "off"}

// Kind tells commands apart.
type Kind int

const (
	// Go stops the rotations.
	Go Kind = iota
	// Press presses colors in order.
	Press
)

func (k Kind) String() string {
	switch k {
	case Go:
		return "go"
	case Press:
		return "press"
	}

	return fmt.Sprintf("Kind(%d)", int(k))
}

// Command is one parsed command.
type Command struct {
	Kind   Kind
	Colors []puzzle.Color
}

func isColorSeparator(r rune) bool {
	return r == ' ' || r == ',' || r == ';' || r == '-' || r == '\t'
}

// Parse reads one command line.
func Parse(text string) (Command, error) {
	fields := strings.Fields(strings.ToLower(text))
	if len(fields) == 0 {
		return Command{}, fmt.Errorf("Parse(%q): %w", text, ErrInvalidCommand)
	}
	if len(fields) == 1 && slices.Contains(goWords, fields[0]) {
		return Command{Kind: Go}, nil
	}
	if fields[0] != "press" || len(fields) == 1 {
		return Command{}, fmt.Errorf("Parse(%q): %w", text, ErrInvalidCommand)
	}

	rest := strings.TrimSpace(text)[len(fields[0]):]
	tokens := strings.FieldsFunc(rest, isColorSeparator)
	if len(tokens) == 0 {
		return Command{}, fmt.Errorf("Parse(%q): %w", text, ErrInvalidCommand)
	}
	colors := make([]puzzle.Color, 0, len(tokens))
	for _, tok := range tokens {
		c, err := puzzle.ParseColor(tok)
		if err != nil {
			return Command{}, fmt.Errorf("Parse(%q): %q: %w", text, tok, ErrUnknownColor)
		}
		colors = append(colors, c)
	}

	return Command{Kind: Press, Colors: colors}, nil
}

// Target is what commands act on. *puzzle.Module satisfies it.
type Target interface {
	Skip(ctx context.Context) error
	PressColor(c puzzle.Color) error
}

// Execute runs cmd against t. A press sequence stops at the first color
// that cannot be pressed.
func Execute(ctx context.Context, t Target, cmd Command) error {
	switch cmd.Kind {
	case Go:
		return t.Skip(ctx)
	case Press:
		for i, c := range cmd.Colors {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := t.PressColor(c); err != nil {
				return fmt.Errorf("press %d (%s): %w", i+1, c, err)
			}
		}

		return nil
	}

	return fmt.Errorf("Execute(%v): %w", cmd.Kind, ErrInvalidCommand)
}

// Run parses text and executes it.
func Run(ctx context.Context, t Target, text string) error {
	cmd, err := Parse(text)
	if err != nil {
		return err
	}

	return Execute(ctx, t, cmd)
}
