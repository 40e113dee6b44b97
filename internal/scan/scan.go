// Package scan provides the low-level digit and grouping helpers shared by
// the numeric and monetary facets. All functions operate on UTF-8 text and
// report consumption in bytes; zero consumption signals that nothing valid
// was found.
package scan

import (
	"strings"
	"unicode/utf8"
)

// DigitVal returns the value of c as a digit in the given base, or -1 when c
// is not a digit of that base.
func DigitVal(c byte, base int) int {
	var v int
	switch {
	case c >= '0' && c <= '9':
		v = int(c - '0')
	case c >= 'a' && c <= 'z':
		v = int(c-'a') + 10
	case c >= 'A' && c <= 'Z':
		v = int(c-'A') + 10
	default:
		return -1
	}
	if v >= base {
		return -1
	}
	return v
}

// Sign consumes an optional leading sign. It returns whether the value is
// negative and the number of bytes consumed (0 or 1).
func Sign(s string) (neg bool, n int) {
	if s == "" {
		return false, 0
	}
	switch s[0] {
	case '-':
		return true, 1
	case '+':
		return false, 1
	}
	return false, 0
}

// BasePrefix consumes a "0x"/"0X" prefix when base is 16. It returns the
// number of bytes consumed. A lone "0" is left for the digit scanner.
func BasePrefix(s string, base int) int {
	if base == 16 && len(s) >= 3 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') && DigitVal(s[2], 16) >= 0 {
		return 2
	}
	return 0
}

// Digits consumes a plain run of base-N digits and returns them along with
// the number of bytes consumed.
func Digits(s string, base int) (digits string, n int) {
	for n < len(s) && DigitVal(s[n], base) >= 0 {
		n++
	}
	return s[:n], n
}

// Integer consumes the longest valid run of base-N digits, optionally broken
// by the separator at the group boundaries described by sizes. Sizes count
// digits right to left from the end of the integer part, the last size
// repeating. The returned digits string has separators removed.
//
// When separators occur but the resulting groups do not match sizes, only
// the digits before the first separator are consumed.
func Integer(s string, base int, sep rune, sizes []int) (digits string, n int) {
	if sep == 0 || len(sizes) == 0 {
		return Digits(s, base)
	}

	var b strings.Builder
	var groups []int
	group := 0
	i := 0
	for i < len(s) {
		if DigitVal(s[i], base) >= 0 {
			b.WriteByte(s[i])
			group++
			i++
			continue
		}
		r, size := utf8.DecodeRuneInString(s[i:])
		// A separator must sit between two digits.
		if r == sep && group > 0 && i+size < len(s) && DigitVal(s[i+size], base) >= 0 {
			groups = append(groups, group)
			group = 0
			i += size
			continue
		}
		break
	}
	if group > 0 {
		groups = append(groups, group)
	}
	if len(groups) == 0 {
		return "", 0
	}
	if len(groups) == 1 || ValidGroups(groups, sizes) {
		return b.String(), i
	}
	// Grouping mismatch: fall back to the leading run of plain digits.
	return Digits(s, base)
}

// ValidGroups reports whether the left-to-right group lengths match the
// right-to-left group sizes. All groups except the leftmost must match
// exactly; the leftmost may be shorter but not empty.
func ValidGroups(groups, sizes []int) bool {
	if len(groups) == 0 {
		return false
	}
	si := 0
	for gi := len(groups) - 1; gi > 0; gi-- {
		if groups[gi] != sizes[min(si, len(sizes)-1)] {
			return false
		}
		si++
	}
	want := sizes[min(si, len(sizes)-1)]
	return groups[0] >= 1 && groups[0] <= want
}

// InsertSeparators rewrites a run of digits with the separator inserted at
// the group boundaries described by sizes (right to left, last size
// repeating). Empty sizes or a zero separator return digits unchanged.
func InsertSeparators(digits string, sizes []int, sep rune) string {
	if len(sizes) == 0 || sep == 0 || len(digits) == 0 {
		return digits
	}

	// Collect boundary positions walking right to left.
	var cuts []int
	si := 0
	pos := len(digits)
	for {
		size := sizes[min(si, len(sizes)-1)]
		if size <= 0 || pos-size <= 0 {
			break
		}
		pos -= size
		cuts = append(cuts, pos)
		si++
	}
	if len(cuts) == 0 {
		return digits
	}

	var b strings.Builder
	b.Grow(len(digits) + len(cuts)*utf8.RuneLen(sep))
	prev := 0
	for i := len(cuts) - 1; i >= 0; i-- {
		b.WriteString(digits[prev:cuts[i]])
		b.WriteRune(sep)
		prev = cuts[i]
	}
	b.WriteString(digits[prev:])
	return b.String()
}

// Spaces consumes a run of ASCII whitespace and returns the number of bytes
// consumed.
func Spaces(s string) int {
	n := 0
	for n < len(s) && (s[n] == ' ' || s[n] == '\t') {
		n++
	}
	return n
}
