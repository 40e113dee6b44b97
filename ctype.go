package locale

import (
	"unicode"
	"unicode/utf8"
)

// Mask is a bitset of character classes. A character may belong to several
// classes at once (a digit is also alphanumeric, printable and graphic).
type Mask uint16

const (
	Upper Mask = 1 << iota
	Lower
	Alpha
	Digit
	Xdigit
	Space
	Print
	Graph
	Cntrl
	Punct
	Alnum
)

// Ctype classifies characters and maps their case for one locale. The
// default classification follows the Unicode character database; supply a
// custom classifier to restrict or extend it.
//
// Ctype is immutable after construction and safe for concurrent use.
type Ctype struct {
	classify func(r rune) Mask
	upper    func(r rune) rune
	lower    func(r rune) rune
	widen    func(c byte) rune
	narrow   func(r rune, repl byte) byte
}

// CtypeOption configures a Ctype during construction.
type CtypeOption func(*Ctype)

// NewCtype creates a character classification facet. Without options it
// classifies per Unicode and maps case with the unicode package.
func NewCtype(opts ...CtypeOption) *Ctype {
	ct := &Ctype{
		classify: classifyUnicode,
		upper:    unicode.ToUpper,
		lower:    unicode.ToLower,
		widen:    func(c byte) rune { return rune(c) },
		narrow:   narrowASCII,
	}
	for _, opt := range opts {
		opt(ct)
	}
	return ct
}

// WithClassifier replaces the classification function.
func WithClassifier(fn func(r rune) Mask) CtypeOption {
	return func(ct *Ctype) {
		if fn != nil {
			ct.classify = fn
		}
	}
}

// WithCaseMapping replaces the upper and lower case mapping functions.
func WithCaseMapping(upper, lower func(r rune) rune) CtypeOption {
	return func(ct *Ctype) {
		if upper != nil {
			ct.upper = upper
		}
		if lower != nil {
			ct.lower = lower
		}
	}
}

// WithWidenNarrow replaces the byte-to-rune and rune-to-byte conversions.
func WithWidenNarrow(widen func(c byte) rune, narrow func(r rune, repl byte) byte) CtypeOption {
	return func(ct *Ctype) {
		if widen != nil {
			ct.widen = widen
		}
		if narrow != nil {
			ct.narrow = narrow
		}
	}
}

// Category returns CategoryCtype. Callable on a nil receiver.
func (*Ctype) Category() Category { return CategoryCtype }

// Is reports whether r belongs to any of the classes in m.
func (ct *Ctype) Is(m Mask, r rune) bool {
	return ct.classify(r)&m != 0
}

// ScanIs returns the byte offset of the first rune in s matching m, or
// len(s) when no rune matches.
func (ct *Ctype) ScanIs(m Mask, s string) int {
	for i, r := range s {
		if ct.Is(m, r) {
			return i
		}
	}
	return len(s)
}

// ScanNot returns the byte offset of the first rune in s not matching m, or
// len(s) when every rune matches.
func (ct *Ctype) ScanNot(m Mask, s string) int {
	for i, r := range s {
		if !ct.Is(m, r) {
			return i
		}
	}
	return len(s)
}

// ToUpper maps a single rune to upper case.
func (ct *Ctype) ToUpper(r rune) rune { return ct.upper(r) }

// ToLower maps a single rune to lower case.
func (ct *Ctype) ToLower(r rune) rune { return ct.lower(r) }

// ToUpperInPlace upper-cases b in place. Only single-byte characters are
// mapped; bytes that are part of multi-byte sequences pass through
// unchanged, so the buffer length never changes.
func (ct *Ctype) ToUpperInPlace(b []byte) {
	mapInPlace(b, ct.upper)
}

// ToLowerInPlace lower-cases b in place under the same single-byte rule as
// ToUpperInPlace.
func (ct *Ctype) ToLowerInPlace(b []byte) {
	mapInPlace(b, ct.lower)
}

// Widen converts a byte to its rune representation.
func (ct *Ctype) Widen(c byte) rune { return ct.widen(c) }

// WidenBytes converts each byte of src independently.
func (ct *Ctype) WidenBytes(src []byte) []rune {
	out := make([]rune, len(src))
	for i, c := range src {
		out[i] = ct.widen(c)
	}
	return out
}

// Narrow converts a rune to a byte, substituting repl for runes with no
// single-byte representation.
func (ct *Ctype) Narrow(r rune, repl byte) byte { return ct.narrow(r, repl) }

// NarrowRunes converts each rune of src independently, substituting repl
// where there is no single-byte representation.
func (ct *Ctype) NarrowRunes(src []rune, repl byte) []byte {
	out := make([]byte, len(src))
	for i, r := range src {
		out[i] = ct.narrow(r, repl)
	}
	return out
}

func mapInPlace(b []byte, m func(rune) rune) {
	for i, c := range b {
		if c >= utf8.RuneSelf {
			continue
		}
		if r := m(rune(c)); r < utf8.RuneSelf {
			b[i] = byte(r)
		}
	}
}

func narrowASCII(r rune, repl byte) byte {
	if r >= 0 && r < utf8.RuneSelf {
		return byte(r)
	}
	return repl
}

func classifyUnicode(r rune) Mask {
	var m Mask
	if unicode.IsUpper(r) {
		m |= Upper
	}
	if unicode.IsLower(r) {
		m |= Lower
	}
	if unicode.IsLetter(r) {
		m |= Alpha | Alnum
	}
	if unicode.IsDigit(r) {
		m |= Digit | Alnum
	}
	if isHexDigit(r) {
		m |= Xdigit
	}
	if unicode.IsSpace(r) {
		m |= Space
	}
	if unicode.IsPrint(r) {
		m |= Print
	}
	if unicode.IsGraphic(r) && !unicode.IsSpace(r) {
		m |= Graph
	}
	if unicode.IsControl(r) {
		m |= Cntrl
	}
	if unicode.IsPunct(r) || unicode.IsSymbol(r) {
		m |= Punct
	}
	return m
}

func isHexDigit(r rune) bool {
	switch {
	case r >= '0' && r <= '9':
		return true
	case r >= 'a' && r <= 'f':
		return true
	case r >= 'A' && r <= 'F':
		return true
	}
	return false
}
