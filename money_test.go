package locale_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/locale"
)

func TestMoneyGet_GetValue(t *testing.T) {
	t.Parallel()

	mg := locale.NewMoneyGet()

	t.Run("us dollars", func(t *testing.T) {
		t.Parallel()
		p := locale.NewMoneyPunct()

		tests := []struct {
			name  string
			input string
			flags locale.Flags
			want  int64
			n     int
		}{
			{"full amount", "$1,234.56", 0, 123456, 9},
			{"negative", "-$1,234.56", 0, -123456, 10},
			{"no symbol", "1,234.56", 0, 123456, 8},
			{"no fraction pads", "$12", 0, 1200, 3},
			{"short fraction pads", "$12.5", 0, 1250, 5},
			{"long fraction truncates", "$12.567", 0, 1256, 6},
			{"small amount", "$0.05", 0, 5, 5},
			{"zero never negative", "-$0.00", 0, 0, 6},
			{"symbol required", "1,234.56", locale.ShowBase, 0, 0},
			{"symbol after value rejected", "1,234.56$", locale.ShowBase, 0, 0},
			{"empty", "", 0, 0, 0},
			{"no digits", "$", 0, 0, 0},
		}
		for _, tt := range tests {
			tt := tt
			t.Run(tt.name, func(t *testing.T) {
				t.Parallel()
				v, n := mg.GetValue(p, tt.input, tt.flags)
				require.Equal(t, tt.n, n)
				require.Equal(t, tt.want, v)
			})
		}
	})

	t.Run("german euros", func(t *testing.T) {
		t.Parallel()
		p := locale.MoneyPunctDeDE()

		v, n := mg.GetValue(p, "1.234,56 €", 0)
		require.Equal(t, len("1.234,56 €"), n)
		require.Equal(t, int64(123456), v)

		v, n = mg.GetValue(p, "-1.234,56 €", 0)
		require.Equal(t, len("-1.234,56 €"), n)
		require.Equal(t, int64(-123456), v)
	})

	t.Run("yen without fraction digits", func(t *testing.T) {
		t.Parallel()
		p := locale.MoneyPunctJaJP()
		v, n := mg.GetValue(p, "¥1,234", 0)
		require.Equal(t, len("¥1,234"), n)
		require.Equal(t, int64(1234), v)
	})
}

func TestMoneyGet_GetDigits(t *testing.T) {
	t.Parallel()

	mg := locale.NewMoneyGet()
	p := locale.NewMoneyPunct()

	digits, n := mg.GetDigits(p, "$1,234.56", 0)
	require.Equal(t, 9, n)
	require.Equal(t, "123456", digits)

	digits, n = mg.GetDigits(p, "-$0.99", 0)
	require.Equal(t, 6, n)
	require.Equal(t, "-99", digits)
}

func TestMoneyPut_PutValue(t *testing.T) {
	t.Parallel()

	mp := locale.NewMoneyPut()

	t.Run("us dollars", func(t *testing.T) {
		t.Parallel()
		p := locale.NewMoneyPunct()

		tests := []struct {
			name string
			v    int64
			want string
		}{
			{"positive", 123456, "$1,234.56"},
			{"negative", -123456, "-$1,234.56"},
			{"cents only", 5, "$0.05"},
			{"zero", 0, "$0.00"},
		}
		for _, tt := range tests {
			tt := tt
			t.Run(tt.name, func(t *testing.T) {
				t.Parallel()
				dst := make([]byte, 32)
				n := mp.PutValue(dst, p, 0, tt.v, ' ')
				require.Equal(t, tt.want, string(dst[:n]))
			})
		}
	})

	t.Run("german euros", func(t *testing.T) {
		t.Parallel()
		p := locale.MoneyPunctDeDE()
		dst := make([]byte, 32)
		n := mp.PutValue(dst, p, 0, -123456, ' ')
		require.Equal(t, "-1.234,56 €", string(dst[:n]))
	})

	t.Run("yen without fraction", func(t *testing.T) {
		t.Parallel()
		p := locale.MoneyPunctJaJP()
		dst := make([]byte, 32)
		n := mp.PutValue(dst, p, 0, 1234, ' ')
		require.Equal(t, "¥1,234", string(dst[:n]))
	})

	t.Run("width padding", func(t *testing.T) {
		t.Parallel()
		p := locale.NewMoneyPunct()
		dst := make([]byte, 32)
		n := mp.PutValue(dst, p, locale.Flags(0).WithWidth(12), 5, ' ')
		require.Equal(t, "       $0.05", string(dst[:n]))
	})
}

func TestMoneyPut_PutDigits(t *testing.T) {
	t.Parallel()

	mp := locale.NewMoneyPut()
	p := locale.NewMoneyPunct()

	t.Run("formats literal digits", func(t *testing.T) {
		t.Parallel()
		dst := make([]byte, 32)
		n := mp.PutDigits(dst, p, 0, "-123456", ' ')
		require.Equal(t, "-$1,234.56", string(dst[:n]))
	})

	t.Run("rejects non-digits", func(t *testing.T) {
		t.Parallel()
		dst := make([]byte, 32)
		require.Zero(t, mp.PutDigits(dst, p, 0, "12a4", ' '))
		require.Zero(t, mp.PutDigits(dst, p, 0, "", ' '))
	})
}

func TestMoney_RoundTrip(t *testing.T) {
	t.Parallel()

	mp := locale.NewMoneyPut()
	mg := locale.NewMoneyGet()

	for _, p := range []*locale.MoneyPunct{
		locale.MoneyPunctEnUS(),
		locale.MoneyPunctEnGB(),
		locale.MoneyPunctDeDE(),
		locale.MoneyPunctFrFR(),
		locale.MoneyPunctJaJP(),
	} {
		for _, v := range []int64{0, 5, 100, -123456, 987654321} {
			dst := make([]byte, 64)
			n := mp.PutValue(dst, p, 0, v, ' ')
			got, consumed := mg.GetValue(p, string(dst[:n]), 0)
			require.Equal(t, n, consumed, "punct %q value %d", p.CurrencySymbol(), v)
			require.Equal(t, v, got, "punct %q value %d", p.CurrencySymbol(), v)
		}
	}
}
