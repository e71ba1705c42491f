// SPDX-License-Identifier: MIT

package schlafli

import (
	"fmt"
	"strconv"
	"strings"
)

// MaxEntry bounds the numerator and denominator of a symbol entry.
const MaxEntry = 1 << 16

// Fraction is one Schläfli entry, p or p/d (star polygons).
type Fraction struct {
	Num int `json:"num"`
	Den int `json:"den"`
}

// Value returns Num/Den.
func (f Fraction) Value() float64 { return float64(f.Num) / float64(f.Den) }

// Digit returns the number a player reads off the entry:
// Num for integral entries, Num+Den for star entries.
func (f Fraction) Digit() int {
	if f.Den == 1 {
		return f.Num
	}

	return f.Num + f.Den
}

// String renders "p" or "p/d".
func (f Fraction) String() string {
	if f.Den == 1 {
		return strconv.Itoa(f.Num)
	}

	return strconv.Itoa(f.Num) + "/" + strconv.Itoa(f.Den)
}

// Symbol is an ordered Schläfli symbol.
type Symbol []Fraction

// Dimension of the polytope described by s.
func (s Symbol) Dimension() int { return len(s) + 1 }

// Values returns the entries as floats.
func (s Symbol) Values() []float64 {
	out := make([]float64, len(s))
	for i, f := range s {
		out[i] = f.Value()
	}

	return out
}

// Digits returns Fraction.Digit for every entry.
func (s Symbol) Digits() []int {
	out := make([]int, len(s))
	for i, f := range s {
		out[i] = f.Digit()
	}

	return out
}

// String renders "{4,3,3}".
func (s Symbol) String() string {
	parts := make([]string, len(s))
	for i, f := range s {
		parts[i] = f.String()
	}

	return "{" + strings.Join(parts, ",") + "}"
}

// Prefix returns the symbol of the facet at dimension k+1 (first k entries).
func (s Symbol) Prefix(k int) Symbol { return s[:k] }

func isSymbolSeparator(r rune) bool {
	return r == ' ' || r == ',' || r == '\t' || r == '{' || r == '}'
}

// ParseSymbol accepts "4 3 3", "{4,3,3}" and star forms like "5/2 5 3".
// Each entry must be a positive fraction with value ≥ 2 whose parts do not
// exceed MaxEntry.
func ParseSymbol(text string) (Symbol, error) {
	fields := strings.FieldsFunc(text, isSymbolSeparator)
	if len(fields) == 0 {
		return nil, fmt.Errorf("ParseSymbol(%q): empty: %w", text, ErrMalformedSymbol)
	}
	sym := make(Symbol, 0, len(fields))
	for _, field := range fields {
		f, err := parseFraction(field)
		if err != nil {
			return nil, fmt.Errorf("ParseSymbol(%q): %w", text, err)
		}
		sym = append(sym, f)
	}

	return sym, nil
}

// MustParseSymbol is ParseSymbol for literals known to be valid.
func MustParseSymbol(text string) Symbol {
	sym, err := ParseSymbol(text)
	if err != nil {
		panic(err)
	}

	return sym
}

func parseFraction(field string) (Fraction, error) {
	numText, denText, isFraction := strings.Cut(field, "/")
	num, err := strconv.Atoi(numText)
	if err != nil {
		return Fraction{}, fmt.Errorf("entry %q: %w", field, ErrMalformedSymbol)
	}
	den := 1
	if isFraction {
		if den, err = strconv.Atoi(denText); err != nil {
			return Fraction{}, fmt.Errorf("entry %q: %w", field, ErrMalformedSymbol)
		}
	}
	f := Fraction{Num: num, Den: den}
	if err = f.validate(); err != nil {
		return Fraction{}, fmt.Errorf("entry %q: %w", field, err)
	}

	return f, nil
}

func (f Fraction) validate() error {
	switch {
	case f.Num <= 0 || f.Den <= 0:
		return ErrMalformedSymbol
	case f.Num > MaxEntry || f.Den > MaxEntry:
		return fmt.Errorf("entry exceeds %d: %w", MaxEntry, ErrMalformedSymbol)
	case f.Num/2 < f.Den: // Num/Den < 2
		return ErrMalformedSymbol
	}

	return nil
}

// validate checks every entry of s.
func (s Symbol) validate() error {
	if len(s) == 0 {
		return ErrMalformedSymbol
	}
	for i, f := range s {
		if err := f.validate(); err != nil {
			return fmt.Errorf("entry %d (%s): %w", i, f, err)
		}
	}

	return nil
}

// ParseShapeList splits a ';'-separated list of symbols.
func ParseShapeList(text string) ([]Symbol, error) {
	var out []Symbol
	for _, part := range strings.Split(text, ";") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		sym, err := ParseSymbol(part)
		if err != nil {
			return nil, err
		}
		out = append(out, sym)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("ParseShapeList(%q): %w", text, ErrMalformedSymbol)
	}

	return out, nil
}

// DefaultShapes lists the shapes the puzzle draws from.
var DefaultShapes = []string{
	"3 3 3", "3 3 4", "3 3 5", "3 4 3", "4 3 3",
	"3 3 3 3", "3 3 3 4", "4 3 3 3",
}

// StarShapes lists the 4-dimensional star polytopes built on pentagrams.
// They are opt-in; face meshes of star faces are not convex.
var StarShapes = []string{
	"3 5 5/2", "5/2 5 3", "5 5/2 5", "5 3 5/2", "5/2 3 5",
	"5/2 5 5/2", "5 5/2 3", "3 5/2 5", "3 3 5/2", "5/2 3 3",
}
