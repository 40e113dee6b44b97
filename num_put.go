package locale

import (
	"strconv"
	"strings"

	"github.com/dmitrymomot/locale/internal/scan"
)

// NumPut formats typed numeric values into a caller-supplied buffer using a
// locale's numeric punctuation. Every method writes at most len(dst) bytes
// and returns the number of bytes written; output is truncated at the buffer
// boundary, so callers must size dst for the widest possible rendering.
type NumPut struct{}

// NewNumPut creates a numeric formatting facet.
func NewNumPut() *NumPut { return &NumPut{} }

// Category returns CategoryNumPut. Callable on a nil receiver.
func (*NumPut) Category() Category { return CategoryNumPut }

// PutBool formats a boolean: p's true/false names with BoolAlpha, "1"/"0"
// otherwise.
func (np *NumPut) PutBool(dst []byte, p *NumPunct, flags Flags, v bool, filler byte) int {
	var s string
	switch {
	case flags&BoolAlpha != 0 && v:
		s = p.TrueName()
	case flags&BoolAlpha != 0:
		s = p.FalseName()
	case v:
		s = "1"
	default:
		s = "0"
	}
	return emit(dst, s, flags, filler)
}

// PutInt formats a signed integer in the base selected by flags, grouping
// base-10 digits per p.
func (np *NumPut) PutInt(dst []byte, p *NumPunct, flags Flags, v int64, filler byte) int {
	neg := v < 0
	var digits string
	if neg {
		// Format via unsigned to survive math.MinInt64.
		digits = strconv.FormatUint(uint64(-(v + 1))+1, flags.base())
	} else {
		digits = strconv.FormatUint(uint64(v), flags.base())
	}
	return emit(dst, assembleInt(p, flags, digits, neg), flags, filler)
}

// PutUint formats an unsigned integer in the base selected by flags.
func (np *NumPut) PutUint(dst []byte, p *NumPunct, flags Flags, v uint64, filler byte) int {
	digits := strconv.FormatUint(v, flags.base())
	return emit(dst, assembleInt(p, flags, digits, false), flags, filler)
}

// PutFloat formats a floating point number with the shortest representation
// that round-trips, using p's decimal point and grouping the integer part.
func (np *NumPut) PutFloat(dst []byte, p *NumPunct, flags Flags, v float64, filler byte) int {
	s := strconv.FormatFloat(v, 'f', -1, 64)

	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	intPart, fracPart, hasFrac := strings.Cut(s, ".")
	var b strings.Builder
	if neg {
		b.WriteByte('-')
	} else if flags&ShowPos != 0 {
		b.WriteByte('+')
	}
	b.WriteString(scan.InsertSeparators(intPart, p.groupSizes(), p.ThousandsSep()))
	if hasFrac {
		b.WriteRune(p.DecimalPoint())
		b.WriteString(fracPart)
	}
	return emit(dst, b.String(), flags, filler)
}

// assembleInt applies grouping, base prefix and sign to a bare digit run.
func assembleInt(p *NumPunct, flags Flags, digits string, neg bool) string {
	if flags.base() == 16 && flags&Uppercase != 0 {
		digits = strings.ToUpper(digits)
	}
	if flags.base() == 10 {
		digits = scan.InsertSeparators(digits, p.groupSizes(), p.ThousandsSep())
	}

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	} else if flags&ShowPos != 0 {
		b.WriteByte('+')
	}
	if flags&ShowBase != 0 {
		switch flags.base() {
		case 16:
			if flags&Uppercase != 0 {
				b.WriteString("0X")
			} else {
				b.WriteString("0x")
			}
		case 8:
			b.WriteByte('0')
		}
	}
	b.WriteString(digits)
	return b.String()
}

// emit pads s to the field width from flags and copies it into dst,
// truncating at the buffer boundary. Returns the number of bytes written.
func emit(dst []byte, s string, flags Flags, filler byte) int {
	if filler == 0 {
		filler = ' '
	}
	if w := flags.FieldWidth(); len(s) < w {
		pad := strings.Repeat(string(filler), w-len(s))
		if flags&AlignLeft != 0 {
			s += pad
		} else {
			s = pad + s
		}
	}
	return copy(dst, s)
}
