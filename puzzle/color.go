// SPDX-License-Identifier: MIT

package puzzle

import (
	"fmt"
	"math/rand"
	"slices"
	"strings"

	"github.com/zyedidia/generic/mapset"
)

// Color is one of the ten vertex colors.
type Color int

// The catalogue, in canonical order. First letters are unique.
const (
	Red Color = iota
	Blue
	Yellow
	Green
	Orange
	Cyan
	Magenta
	Lime
	Key
	White
)

// ColorCount is the size of the catalogue.
const ColorCount = 10

var colorNames = [ColorCount]string{
	"Red", "Blue", "Yellow", "Green", "Orange", "Cyan", "Magenta", "Lime", "Key", "White",
}

var colorHex = [ColorCount]string{
	"FF0000", "0000FF", "FFFF00", "008000", "FF8000", "00FFFF", "FF00FF", "00FF00", "000000", "FFFFFF",
}

// AllColors returns the catalogue in canonical order.
func AllColors() []Color {
	out := make([]Color, ColorCount)
	for i := range out {
		out[i] = Color(i)
	}

	return out
}

// Valid reports whether c is in the catalogue.
func (c Color) Valid() bool { return c >= 0 && c < ColorCount }

// String returns the color name.
func (c Color) String() string {
	if !c.Valid() {
		return fmt.Sprintf("Color(%d)", int(c))
	}

	return colorNames[c]
}

// Letter returns the first letter of the name.
func (c Color) Letter() byte { return c.String()[0] }

// Hex returns the RGB value as six hex digits.
func (c Color) Hex() string {
	if !c.Valid() {
		return ""
	}

	return colorHex[c]
}

// MarshalText encodes the color by name.
func (c Color) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("Color(%d): %w", int(c), ErrUnknownColor)
	}

	return []byte(c.String()), nil
}

// ParseColor accepts a full name or a first letter, case-insensitive.
func ParseColor(text string) (Color, error) {
	t := strings.TrimSpace(text)
	for i, name := range colorNames {
		if strings.EqualFold(t, name) || (len(t) == 1 && strings.EqualFold(t, name[:1])) {
			return Color(i), nil
		}
	}

	return 0, fmt.Errorf("ParseColor(%q): %w", text, ErrUnknownColor)
}

// Palette is the ordered set of colors in play; a color's value is its index.
type Palette []Color

// Value returns the index of c in the palette.
func (p Palette) Value(c Color) (int, bool) {
	i := slices.Index(p, c)

	return i, i >= 0
}

// Validate rejects empty palettes, unknown colors and duplicates.
func (p Palette) Validate() error {
	if len(p) == 0 {
		return fmt.Errorf("empty palette: %w", ErrInvalidPalette)
	}
	seen := mapset.New[Color]()
	for _, c := range p {
		if !c.Valid() {
			return fmt.Errorf("palette color %d: %w", int(c), ErrUnknownColor)
		}
		if seen.Has(c) {
			return fmt.Errorf("%s twice: %w", c, ErrInvalidPalette)
		}
		seen.Put(c)
	}

	return nil
}

// String joins the color names with dashes.
func (p Palette) String() string {
	parts := make([]string, len(p))
	for i, c := range p {
		parts[i] = c.String()
	}

	return strings.Join(parts, "-")
}

// ChoosePalette picks min(vertexCount, ColorCount) distinct colors at random
// and returns them in canonical order.
func ChoosePalette(rng *rand.Rand, vertexCount int) Palette {
	k := min(max(vertexCount, 0), ColorCount)
	perm := rng.Perm(ColorCount)[:k]
	p := make(Palette, k)
	for i, idx := range perm {
		p[i] = Color(idx)
	}
	slices.Sort(p)

	return p
}

// AssignColors colors vertexCount vertices so that every palette color is
// used at least once: a random permutation of the vertices receives the
// palette in order, and the rest get random palette colors.
func AssignColors(rng *rand.Rand, vertexCount int, palette Palette) ([]Color, error) {
	if err := palette.Validate(); err != nil {
		return nil, err
	}
	if len(palette) > vertexCount {
		return nil, fmt.Errorf("%d colors for %d vertices: %w", len(palette), vertexCount, ErrInvalidPalette)
	}
	out := make([]Color, vertexCount)
	for i, v := range rng.Perm(vertexCount) {
		if i < len(palette) {
			out[v] = palette[i]
		} else {
			out[v] = palette[rng.Intn(len(palette))]
		}
	}

	return out, nil
}
