package locale

// Flags selects base, sign display, alignment and related options for the
// numeric, monetary and calendar parse/format facets. The zero value means
// base 10, no base prefix, right alignment, no minimum width.
type Flags uint32

const (
	// Dec, Hex and Oct select the integer base. When none is set, Dec applies.
	Dec Flags = 1 << iota
	Hex
	Oct
	// ShowBase emits (and requires, when parsing money) the base prefix or
	// currency symbol.
	ShowBase
	// ShowPos emits a leading '+' for non-negative values.
	ShowPos
	// Uppercase uses upper-case digits and prefixes in base 16.
	Uppercase
	// BoolAlpha parses and formats booleans as the punctuation facet's
	// true/false names instead of 1/0.
	BoolAlpha
	// AlignLeft pads on the right instead of the left when a minimum field
	// width is set.
	AlignLeft
)

const (
	widthShift = 16
	widthMask  = 0xffff
)

// WithWidth returns f with the minimum field width set. Width occupies the
// high bits of the flag word, so it survives bitwise composition with the
// option bits. Widths outside [0, 65535] are clamped.
func (f Flags) WithWidth(w int) Flags {
	if w < 0 {
		w = 0
	}
	if w > widthMask {
		w = widthMask
	}
	return (f &^ (widthMask << widthShift)) | Flags(w)<<widthShift
}

// FieldWidth returns the minimum field width encoded in f, 0 when unset.
func (f Flags) FieldWidth() int {
	return int(f>>widthShift) & widthMask
}

// base returns the integer base selected by f.
func (f Flags) base() int {
	switch {
	case f&Hex != 0:
		return 16
	case f&Oct != 0:
		return 8
	default:
		return 10
	}
}
