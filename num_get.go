package locale

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/dmitrymomot/locale/internal/scan"
)

// NumGet parses typed numeric values from text using a locale's numeric
// punctuation. Every method consumes the longest valid prefix of s and
// returns the parsed value along with the number of bytes consumed. Zero
// consumption signals failure; the value result is then the type's zero
// value. No method ever returns an error.
type NumGet struct{}

// NewNumGet creates a numeric parsing facet.
func NewNumGet() *NumGet { return &NumGet{} }

// Category returns CategoryNumGet. Callable on a nil receiver.
func (*NumGet) Category() Category { return CategoryNumGet }

// GetBool parses a boolean. With BoolAlpha set it matches p's true/false
// names; otherwise it parses an integer, treating zero as false and any
// other value as true.
func (g *NumGet) GetBool(p *NumPunct, s string, flags Flags) (bool, int) {
	if flags&BoolAlpha != 0 {
		if strings.HasPrefix(s, p.TrueName()) {
			return true, len(p.TrueName())
		}
		if strings.HasPrefix(s, p.FalseName()) {
			return false, len(p.FalseName())
		}
		return false, 0
	}
	v, n := g.GetInt(p, s, flags)
	if n == 0 {
		return false, 0
	}
	return v != 0, n
}

// GetInt parses a signed integer in the base selected by flags. Grouping
// separators are accepted in base 10 at the boundaries described by p's
// grouping sizes. Out-of-range values fail with zero consumption.
func (g *NumGet) GetInt(p *NumPunct, s string, flags Flags) (int64, int) {
	neg, i := scan.Sign(s)
	base := flags.base()
	i += scan.BasePrefix(s[i:], base)

	digits, n := scanInteger(p, s[i:], base)
	if n == 0 {
		return 0, 0
	}
	i += n

	if neg {
		digits = "-" + digits
	}
	v, err := strconv.ParseInt(digits, base, 64)
	if err != nil {
		return 0, 0
	}
	return v, i
}

// GetUint parses an unsigned integer in the base selected by flags. A
// leading '+' is accepted, a leading '-' is not.
func (g *NumGet) GetUint(p *NumPunct, s string, flags Flags) (uint64, int) {
	i := 0
	if len(s) > 0 && s[0] == '+' {
		i = 1
	}
	base := flags.base()
	i += scan.BasePrefix(s[i:], base)

	digits, n := scanInteger(p, s[i:], base)
	if n == 0 {
		return 0, 0
	}
	i += n

	v, err := strconv.ParseUint(digits, base, 64)
	if err != nil {
		return 0, 0
	}
	return v, i
}

// GetFloat parses a floating point number: an optionally grouped integer
// part, an optional fraction introduced by p's decimal point, and an
// optional exponent. At least one digit must occur in the integer or
// fraction part.
func (g *NumGet) GetFloat(p *NumPunct, s string, flags Flags) (float64, int) {
	neg, i := scan.Sign(s)

	intDigits, n := scanInteger(p, s[i:], 10)
	i += n

	var fracDigits string
	if r, size := utf8.DecodeRuneInString(s[i:]); r == p.DecimalPoint() {
		d, dn := scan.Digits(s[i+size:], 10)
		if dn > 0 || len(intDigits) > 0 {
			fracDigits = d
			i += size + dn
		}
	}
	if len(intDigits) == 0 && len(fracDigits) == 0 {
		return 0, 0
	}

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	if intDigits == "" {
		b.WriteByte('0')
	} else {
		b.WriteString(intDigits)
	}
	b.WriteByte('.')
	if fracDigits == "" {
		b.WriteByte('0')
	} else {
		b.WriteString(fracDigits)
	}

	// Optional exponent; only consumed when followed by digits.
	if j := i; j < len(s) && (s[j] == 'e' || s[j] == 'E') {
		k := j + 1
		if k < len(s) && (s[k] == '+' || s[k] == '-') {
			k++
		}
		if d, dn := scan.Digits(s[k:], 10); dn > 0 {
			b.WriteString(s[j : k+len(d)])
			i = k + dn
		}
	}

	v, err := strconv.ParseFloat(b.String(), 64)
	if err != nil {
		return 0, 0
	}
	return v, i
}

// scanInteger consumes digits, honoring grouping in base 10 only.
func scanInteger(p *NumPunct, s string, base int) (digits string, n int) {
	if base == 10 {
		return scan.Integer(s, 10, p.ThousandsSep(), p.groupSizes())
	}
	return scan.Digits(s, base)
}
