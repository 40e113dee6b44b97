package locale_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/locale"
)

func TestNumGet_GetInt(t *testing.T) {
	t.Parallel()

	g := locale.NewNumGet()
	p := locale.NewNumPunct()

	tests := []struct {
		name  string
		input string
		flags locale.Flags
		want  int64
		n     int
	}{
		{"plain", "42", 0, 42, 2},
		{"negative", "-17", 0, -17, 3},
		{"explicit plus", "+9", 0, 9, 2},
		{"grouped", "1,234,567", 0, 1234567, 9},
		{"stops at trailing text", "12x", 0, 12, 2},
		{"stops at dangling separator", "1,234,", 0, 1234, 5},
		{"bad grouping takes plain run", "12,3", 0, 12, 2},
		{"hex", "ff", locale.Hex, 255, 2},
		{"hex with prefix", "0xFF", locale.Hex, 255, 4},
		{"octal", "17", locale.Oct, 15, 2},
		{"empty", "", 0, 0, 0},
		{"no digits", "abc", 0, 0, 0},
		{"lone sign", "-", 0, 0, 0},
		{"overflow", "99999999999999999999", 0, 0, 0},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			v, n := g.GetInt(p, tt.input, tt.flags)
			require.Equal(t, tt.n, n)
			require.Equal(t, tt.want, v)
		})
	}
}

func TestNumGet_GetUint(t *testing.T) {
	t.Parallel()

	g := locale.NewNumGet()
	p := locale.NewNumPunct()

	t.Run("parses plain and grouped", func(t *testing.T) {
		t.Parallel()
		v, n := g.GetUint(p, "4,294,967,296", 0)
		require.Equal(t, 13, n)
		require.Equal(t, uint64(4294967296), v)
	})

	t.Run("rejects minus sign", func(t *testing.T) {
		t.Parallel()
		v, n := g.GetUint(p, "-5", 0)
		require.Zero(t, n)
		require.Zero(t, v)
	})

	t.Run("accepts plus sign", func(t *testing.T) {
		t.Parallel()
		v, n := g.GetUint(p, "+5", 0)
		require.Equal(t, 2, n)
		require.Equal(t, uint64(5), v)
	})
}

func TestNumGet_GetFloat(t *testing.T) {
	t.Parallel()

	g := locale.NewNumGet()

	t.Run("default punctuation", func(t *testing.T) {
		t.Parallel()
		p := locale.NewNumPunct()

		tests := []struct {
			name  string
			input string
			want  float64
			n     int
		}{
			{"integer only", "42", 42, 2},
			{"fraction", "3.25", 3.25, 4},
			{"grouped integer part", "1,234.5", 1234.5, 7},
			{"leading point", ".5", 0.5, 2},
			{"negative exponent", "-2.5e3", -2500, 6},
			{"exponent with sign", "1e-2", 0.01, 4},
			{"bare e not consumed", "2e", 2, 1},
			{"no digits", "x", 0, 0},
			{"lone point", ".", 0, 0},
		}
		for _, tt := range tests {
			tt := tt
			t.Run(tt.name, func(t *testing.T) {
				t.Parallel()
				v, n := g.GetFloat(p, tt.input, 0)
				require.Equal(t, tt.n, n)
				require.InDelta(t, tt.want, v, 1e-9)
			})
		}
	})

	t.Run("german punctuation", func(t *testing.T) {
		t.Parallel()
		p := locale.NumPunctDeDE()
		v, n := g.GetFloat(p, "1.234,5", 0)
		require.Equal(t, 7, n)
		require.InDelta(t, 1234.5, v, 1e-9)
	})
}

func TestNumGet_GetBool(t *testing.T) {
	t.Parallel()

	g := locale.NewNumGet()
	p := locale.NewNumPunct()

	t.Run("numeric", func(t *testing.T) {
		t.Parallel()
		v, n := g.GetBool(p, "0 rest", 0)
		require.Equal(t, 1, n)
		require.False(t, v)

		v, n = g.GetBool(p, "7", 0)
		require.Equal(t, 1, n)
		require.True(t, v)
	})

	t.Run("alpha", func(t *testing.T) {
		t.Parallel()
		v, n := g.GetBool(p, "true!", locale.BoolAlpha)
		require.Equal(t, 4, n)
		require.True(t, v)

		v, n = g.GetBool(p, "false", locale.BoolAlpha)
		require.Equal(t, 5, n)
		require.False(t, v)

		_, n = g.GetBool(p, "yes", locale.BoolAlpha)
		require.Zero(t, n)
	})

	t.Run("alpha with custom names", func(t *testing.T) {
		t.Parallel()
		p := locale.NewNumPunct(locale.WithBoolNames("ja", "nein"))
		v, n := g.GetBool(p, "nein", locale.BoolAlpha)
		require.Equal(t, 4, n)
		require.False(t, v)
	})
}
