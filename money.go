package locale

import (
	"slices"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/dmitrymomot/locale/internal/scan"
)

// MoneyPart names one component of a monetary layout.
type MoneyPart uint8

const (
	// MoneyNone pads the layout; it consumes and emits nothing.
	MoneyNone MoneyPart = iota
	// MoneySpace is whitespace between components; parsing requires at
	// least one space character.
	MoneySpace
	// MoneySymbol is the currency symbol.
	MoneySymbol
	// MoneySign is the positive or negative sign string.
	MoneySign
	// MoneyValue is the amount itself.
	MoneyValue
)

// MoneyPattern orders the four components of a monetary rendering, for
// example {MoneySymbol, MoneySign, MoneyNone, MoneyValue} for "$-1.23".
type MoneyPattern [4]MoneyPart

// MoneyPunct describes the monetary punctuation of a locale: currency
// symbol, sign strings, fraction digits, digit grouping, and the component
// order for positive and negative amounts. It is immutable after creation
// and safe for concurrent use.
type MoneyPunct struct {
	decimalPoint rune
	thousandsSep rune
	grouping     []int
	symbol       string
	positiveSign string
	negativeSign string
	fracDigits   int
	posFormat    MoneyPattern
	negFormat    MoneyPattern
}

// MoneyPunctOption configures a MoneyPunct during construction.
type MoneyPunctOption func(*MoneyPunct)

// NewMoneyPunct creates a monetary punctuation facet. Without options it
// renders US dollars: "$1,234.56", negative "-$1,234.56", two fraction
// digits.
func NewMoneyPunct(opts ...MoneyPunctOption) *MoneyPunct {
	p := &MoneyPunct{
		decimalPoint: '.',
		thousandsSep: ',',
		grouping:     []int{3},
		symbol:       "$",
		positiveSign: "",
		negativeSign: "-",
		fracDigits:   2,
		posFormat:    MoneyPattern{MoneySymbol, MoneySign, MoneyNone, MoneyValue},
		negFormat:    MoneyPattern{MoneySign, MoneySymbol, MoneyNone, MoneyValue},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// WithMoneyDecimalPoint sets the monetary decimal point character.
func WithMoneyDecimalPoint(r rune) MoneyPunctOption {
	return func(p *MoneyPunct) {
		p.decimalPoint = r
	}
}

// WithMoneyThousandsSep sets the monetary thousands separator character.
func WithMoneyThousandsSep(r rune) MoneyPunctOption {
	return func(p *MoneyPunct) {
		p.thousandsSep = r
	}
}

// WithMoneyGrouping sets the monetary digit group sizes; no sizes disables
// grouping.
func WithMoneyGrouping(sizes ...int) MoneyPunctOption {
	return func(p *MoneyPunct) {
		p.grouping = slices.Clone(sizes)
	}
}

// WithCurrencySymbol sets the currency symbol string.
func WithCurrencySymbol(symbol string) MoneyPunctOption {
	return func(p *MoneyPunct) {
		p.symbol = symbol
	}
}

// WithSigns sets the positive and negative sign strings. The positive sign
// may be empty.
func WithSigns(positive, negative string) MoneyPunctOption {
	return func(p *MoneyPunct) {
		p.positiveSign = positive
		p.negativeSign = negative
	}
}

// WithFracDigits sets how many fraction digits the scaled integer
// representation implies (2 means amounts are in cents).
func WithFracDigits(n int) MoneyPunctOption {
	return func(p *MoneyPunct) {
		if n >= 0 {
			p.fracDigits = n
		}
	}
}

// WithMoneyFormats sets the component order for positive and negative
// amounts.
func WithMoneyFormats(pos, neg MoneyPattern) MoneyPunctOption {
	return func(p *MoneyPunct) {
		p.posFormat = pos
		p.negFormat = neg
	}
}

// Category returns CategoryMoneyPunct. Callable on a nil receiver.
func (*MoneyPunct) Category() Category { return CategoryMoneyPunct }

// DecimalPoint returns the monetary decimal point character.
func (p *MoneyPunct) DecimalPoint() rune { return p.decimalPoint }

// ThousandsSep returns the monetary thousands separator character.
func (p *MoneyPunct) ThousandsSep() rune { return p.thousandsSep }

// Grouping returns a copy of the monetary digit group sizes.
func (p *MoneyPunct) Grouping() []int { return slices.Clone(p.grouping) }

// CurrencySymbol returns the currency symbol string.
func (p *MoneyPunct) CurrencySymbol() string { return p.symbol }

// PositiveSign returns the positive sign string, possibly empty.
func (p *MoneyPunct) PositiveSign() string { return p.positiveSign }

// NegativeSign returns the negative sign string.
func (p *MoneyPunct) NegativeSign() string { return p.negativeSign }

// FracDigits returns the number of implied fraction digits.
func (p *MoneyPunct) FracDigits() int { return p.fracDigits }

// PosFormat returns the component order for positive amounts.
func (p *MoneyPunct) PosFormat() MoneyPattern { return p.posFormat }

// NegFormat returns the component order for negative amounts.
func (p *MoneyPunct) NegFormat() MoneyPattern { return p.negFormat }

// MoneyGet parses monetary amounts laid out per a locale's monetary
// punctuation. Component order is validated strictly against the punctuation
// patterns; any mismatch fails with zero consumption and a zero value.
type MoneyGet struct{}

// NewMoneyGet creates a monetary parsing facet.
func NewMoneyGet() *MoneyGet { return &MoneyGet{} }

// Category returns CategoryMoneyGet. Callable on a nil receiver.
func (*MoneyGet) Category() Category { return CategoryMoneyGet }

// GetValue parses an amount into a scaled integer: the numeric value
// multiplied by 10^FracDigits, so "$1,234.56" with two fraction digits
// yields 123456. Returns the value and the number of bytes consumed; zero
// consumption signals failure.
func (mg *MoneyGet) GetValue(p *MoneyPunct, s string, flags Flags) (int64, int) {
	digits, n := mg.GetDigits(p, s, flags)
	if n == 0 {
		return 0, 0
	}
	v, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return 0, 0
	}
	return v, n
}

// GetDigits parses an amount into its literal scaled digit run, with a
// leading '-' for negative amounts ("-123456" for -$1,234.56). Returns the
// digits and the number of bytes consumed; zero consumption signals failure.
func (mg *MoneyGet) GetDigits(p *MoneyPunct, s string, flags Flags) (string, int) {
	if digits, n, ok := walkMoneyPattern(p, s, flags, p.posFormat); ok {
		return digits, n
	}
	if p.negFormat != p.posFormat {
		if digits, n, ok := walkMoneyPattern(p, s, flags, p.negFormat); ok {
			return digits, n
		}
	}
	return "", 0
}

// walkMoneyPattern matches s against one component order. At the sign
// position either sign string may occur; the one matched decides the
// amount's sign.
func walkMoneyPattern(p *MoneyPunct, s string, flags Flags, pattern MoneyPattern) (digits string, n int, ok bool) {
	i := 0
	negative := false
	value := ""
	seenValue := false

	for _, part := range pattern {
		switch part {
		case MoneyNone:
			i += scan.Spaces(s[i:])

		case MoneySpace:
			spaces := scan.Spaces(s[i:])
			if spaces == 0 {
				return "", 0, false
			}
			i += spaces

		case MoneySymbol:
			if strings.HasPrefix(s[i:], p.symbol) {
				i += len(p.symbol)
			} else if flags&ShowBase != 0 {
				// Symbol is mandatory only when the caller asked for it.
				return "", 0, false
			}

		case MoneySign:
			switch {
			case p.negativeSign != "" && strings.HasPrefix(s[i:], p.negativeSign):
				negative = true
				i += len(p.negativeSign)
			case p.positiveSign != "" && strings.HasPrefix(s[i:], p.positiveSign):
				i += len(p.positiveSign)
			}

		case MoneyValue:
			v, vn := scanMoneyValue(p, s[i:])
			if vn == 0 {
				return "", 0, false
			}
			value = v
			seenValue = true
			i += vn
		}
	}
	if !seenValue {
		return "", 0, false
	}
	value = strings.TrimLeft(value, "0")
	if value == "" {
		value = "0"
	}
	if negative && value != "0" {
		value = "-" + value
	}
	return value, i, true
}

// scanMoneyValue consumes a grouped integer part plus an optional fraction
// and returns the scaled digit run (fraction padded or truncated to exactly
// FracDigits digits).
func scanMoneyValue(p *MoneyPunct, s string) (digits string, n int) {
	intDigits, n := scan.Integer(s, 10, p.thousandsSep, p.grouping)
	if n == 0 {
		return "", 0
	}

	frac := ""
	if r, size := utf8.DecodeRuneInString(s[n:]); r == p.decimalPoint && p.fracDigits > 0 {
		d, dn := scan.Digits(s[n+size:], 10)
		if dn > 0 {
			if dn > p.fracDigits {
				d = d[:p.fracDigits]
				dn = p.fracDigits
			}
			frac = d
			n += size + dn
		}
	}
	for len(frac) < p.fracDigits {
		frac += "0"
	}
	return intDigits + frac, n
}

// MoneyPut formats monetary amounts laid out per a locale's monetary
// punctuation. Like NumPut, it writes at most len(dst) bytes, truncating at
// the buffer boundary.
type MoneyPut struct{}

// NewMoneyPut creates a monetary formatting facet.
func NewMoneyPut() *MoneyPut { return &MoneyPut{} }

// Category returns CategoryMoneyPut. Callable on a nil receiver.
func (*MoneyPut) Category() Category { return CategoryMoneyPut }

// PutValue formats a scaled integer amount (123456 with two fraction digits
// renders as 1,234.56 plus symbol and sign per the pattern). Returns the
// number of bytes written.
func (mp *MoneyPut) PutValue(dst []byte, p *MoneyPunct, flags Flags, v int64, filler byte) int {
	neg := v < 0
	if neg {
		v = -v
	}
	return mp.put(dst, p, flags, strconv.FormatInt(v, 10), neg, filler)
}

// PutDigits formats a literal scaled digit run, with an optional leading
// '-' selecting the negative pattern. Returns the number of bytes written.
func (mp *MoneyPut) PutDigits(dst []byte, p *MoneyPunct, flags Flags, digits string, filler byte) int {
	neg := strings.HasPrefix(digits, "-")
	digits = strings.TrimPrefix(digits, "-")
	for _, c := range []byte(digits) {
		if c < '0' || c > '9' {
			return 0
		}
	}
	if digits == "" {
		return 0
	}
	return mp.put(dst, p, flags, digits, neg, filler)
}

func (mp *MoneyPut) put(dst []byte, p *MoneyPunct, flags Flags, digits string, neg bool, filler byte) int {
	// Split the scaled digit run into whole and fraction parts.
	for len(digits) < p.fracDigits+1 {
		digits = "0" + digits
	}
	cut := len(digits) - p.fracDigits
	whole := scan.InsertSeparators(digits[:cut], p.grouping, p.thousandsSep)

	var value strings.Builder
	value.WriteString(whole)
	if p.fracDigits > 0 {
		value.WriteRune(p.decimalPoint)
		value.WriteString(digits[cut:])
	}

	pattern := p.posFormat
	sign := p.positiveSign
	if neg {
		pattern = p.negFormat
		sign = p.negativeSign
	}

	var b strings.Builder
	for _, part := range pattern {
		switch part {
		case MoneySpace:
			b.WriteByte(' ')
		case MoneySymbol:
			b.WriteString(p.symbol)
		case MoneySign:
			b.WriteString(sign)
		case MoneyValue:
			b.WriteString(value.String())
		}
	}
	return emit(dst, b.String(), flags, filler)
}
