package schlafli_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/katalvlaran/dimking/schlafli"
	"github.com/stretchr/testify/require"
)

// TestParseSymbol accepts bare, braced, star and ragged spellings and checks
// the canonical form, dimension and digits of each.
func TestParseSymbol(t *testing.T) {
	cases := []struct {
		in     string
		want   string
		dim    int
		digits []int
	}{
		{"4 3 3", "{4,3,3}", 4, []int{4, 3, 3}},
		{"{3,3,5}", "{3,3,5}", 4, []int{3, 3, 5}},
		{"5/2 5 3", "{5/2,5,3}", 4, []int{7, 5, 3}},
		{"  3, 3 ,3 3 ", "{3,3,3,3}", 5, []int{3, 3, 3, 3}},
		{"4/1", "{4}", 2, []int{4}}, // unit denominator prints as an integer
	}
	for _, tc := range cases {
		sym, err := schlafli.ParseSymbol(tc.in)
		require.NoError(t, err, tc.in)
		require.Equal(t, tc.want, sym.String())
		require.Equal(t, tc.dim, sym.Dimension())
		require.Equal(t, tc.digits, sym.Digits())
	}
}

// TestParseSymbolErrors rejects empty input, non-numbers, zero denominators
// and entries below 2.
func TestParseSymbolErrors(t *testing.T) {
	for _, in := range []string{"", "{}", "x 3", "3 1", "3/0", "5/3", "-4", "3/x"} {
		_, err := schlafli.ParseSymbol(in)
		require.ErrorIs(t, err, schlafli.ErrMalformedSymbol, "input %q", in)
	}
}

// TestEntrySizeIsBounded feeds entries whose denominator would overflow
// 2·Den, and parts just past MaxEntry, and expects them refused.
func TestEntrySizeIsBounded(t *testing.T) {
	huge := fmt.Sprintf("5/%d", math.MaxInt)
	_, err := schlafli.ParseSymbol(huge)
	require.ErrorIs(t, err, schlafli.ErrMalformedSymbol, "input %q", huge)

	_, err = schlafli.Generate(schlafli.Symbol{{Num: 5, Den: math.MaxInt}})
	require.ErrorIs(t, err, schlafli.ErrMalformedSymbol) // hand-built symbols take the same check

	_, err = schlafli.ParseSymbol(fmt.Sprint(schlafli.MaxEntry + 1))
	require.ErrorIs(t, err, schlafli.ErrMalformedSymbol)
	_, err = schlafli.ParseSymbol(fmt.Sprintf("%d/%d", schlafli.MaxEntry, schlafli.MaxEntry/2))
	require.NoError(t, err) // the cap itself is allowed
}

// TestFractionDigit checks that star entries read as Num+Den.
func TestFractionDigit(t *testing.T) {
	require.Equal(t, 4, schlafli.Fraction{Num: 4, Den: 1}.Digit())
	require.Equal(t, 7, schlafli.Fraction{Num: 5, Den: 2}.Digit()) // pentagram reads 5+2
	require.Equal(t, 2.5, schlafli.Fraction{Num: 5, Den: 2}.Value())
}

// TestShapeLists parses both catalogues and the ';'-separated list form.
func TestShapeLists(t *testing.T) {
	for _, list := range [][]string{schlafli.DefaultShapes, schlafli.StarShapes} {
		for _, s := range list {
			_, err := schlafli.ParseSymbol(s)
			require.NoError(t, err, s)
		}
	}

	syms, err := schlafli.ParseShapeList("3 3 3;4 3 3;")
	require.NoError(t, err)
	require.Len(t, syms, 2)

	_, err = schlafli.ParseShapeList(" ; ") // nothing but separators
	require.ErrorIs(t, err, schlafli.ErrMalformedSymbol)
	_, err = schlafli.ParseShapeList("3 3;q")
	require.ErrorIs(t, err, schlafli.ErrMalformedSymbol)

	require.Panics(t, func() { schlafli.MustParseSymbol("nope") })
}
