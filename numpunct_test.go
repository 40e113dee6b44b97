package locale_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/locale"
)

func TestNewNumPunct(t *testing.T) {
	t.Parallel()

	t.Run("defaults", func(t *testing.T) {
		t.Parallel()
		p := locale.NewNumPunct()
		require.Equal(t, '.', p.DecimalPoint())
		require.Equal(t, ',', p.ThousandsSep())
		require.Equal(t, []int{3}, p.Grouping())
		require.Equal(t, "true", p.TrueName())
		require.Equal(t, "false", p.FalseName())
	})

	t.Run("options", func(t *testing.T) {
		t.Parallel()
		p := locale.NewNumPunct(
			locale.WithDecimalPoint(','),
			locale.WithThousandsSep('.'),
			locale.WithGrouping(3, 2),
			locale.WithBoolNames("да", "нет"),
		)
		require.Equal(t, ',', p.DecimalPoint())
		require.Equal(t, '.', p.ThousandsSep())
		require.Equal(t, []int{3, 2}, p.Grouping())
		require.Equal(t, "да", p.TrueName())
	})

	t.Run("grouping copy is caller-owned", func(t *testing.T) {
		t.Parallel()
		p := locale.NewNumPunct()
		g := p.Grouping()
		g[0] = 99
		require.Equal(t, []int{3}, p.Grouping())
	})

	t.Run("empty grouping disables separators", func(t *testing.T) {
		t.Parallel()
		p := locale.NewNumPunct(locale.WithGrouping())
		np := locale.NewNumPut()
		dst := make([]byte, 16)
		n := np.PutInt(dst, p, 0, 1234567, ' ')
		require.Equal(t, "1234567", string(dst[:n]))
	})
}

func TestFlags(t *testing.T) {
	t.Parallel()

	t.Run("width round trips", func(t *testing.T) {
		t.Parallel()
		f := locale.Hex.WithWidth(12)
		require.Equal(t, 12, f.FieldWidth())
		require.NotZero(t, f&locale.Hex)
	})

	t.Run("width can be replaced", func(t *testing.T) {
		t.Parallel()
		f := locale.Flags(0).WithWidth(8).WithWidth(3)
		require.Equal(t, 3, f.FieldWidth())
	})

	t.Run("width clamps", func(t *testing.T) {
		t.Parallel()
		require.Zero(t, locale.Flags(0).WithWidth(-5).FieldWidth())
		require.Equal(t, 0xffff, locale.Flags(0).WithWidth(1<<20).FieldWidth())
	})

	t.Run("zero value means no width", func(t *testing.T) {
		t.Parallel()
		require.Zero(t, locale.Flags(0).FieldWidth())
	})
}
