package locale

import "slices"

// NumPunct describes the numeric punctuation of a locale: decimal point,
// thousands separator, digit grouping, and the textual names for booleans.
// It is immutable after creation and safe for concurrent use.
type NumPunct struct {
	decimalPoint rune
	thousandsSep rune
	grouping     []int
	trueName     string
	falseName    string
}

// NumPunctOption configures a NumPunct during construction.
type NumPunctOption func(*NumPunct)

// NewNumPunct creates a numeric punctuation facet. Without options it uses
// period decimal point, comma separator and groups of three.
func NewNumPunct(opts ...NumPunctOption) *NumPunct {
	p := &NumPunct{
		decimalPoint: '.',
		thousandsSep: ',',
		grouping:     []int{3},
		trueName:     "true",
		falseName:    "false",
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// WithDecimalPoint sets the decimal point character.
func WithDecimalPoint(r rune) NumPunctOption {
	return func(p *NumPunct) {
		p.decimalPoint = r
	}
}

// WithThousandsSep sets the thousands separator character.
func WithThousandsSep(r rune) NumPunctOption {
	return func(p *NumPunct) {
		p.thousandsSep = r
	}
}

// WithGrouping sets the digit group sizes, counted right to left from the
// decimal point; the last size repeats. Calling with no sizes disables
// grouping entirely.
func WithGrouping(sizes ...int) NumPunctOption {
	return func(p *NumPunct) {
		p.grouping = slices.Clone(sizes)
	}
}

// WithBoolNames sets the strings used for true and false by the BoolAlpha
// flag.
func WithBoolNames(trueName, falseName string) NumPunctOption {
	return func(p *NumPunct) {
		if trueName != "" {
			p.trueName = trueName
		}
		if falseName != "" {
			p.falseName = falseName
		}
	}
}

// Category returns CategoryNumPunct. Callable on a nil receiver.
func (*NumPunct) Category() Category { return CategoryNumPunct }

// DecimalPoint returns the decimal point character.
func (p *NumPunct) DecimalPoint() rune { return p.decimalPoint }

// ThousandsSep returns the thousands separator character.
func (p *NumPunct) ThousandsSep() rune { return p.thousandsSep }

// Grouping returns a copy of the digit group sizes; empty means no grouping.
func (p *NumPunct) Grouping() []int { return slices.Clone(p.grouping) }

// TrueName returns the textual name for true.
func (p *NumPunct) TrueName() string { return p.trueName }

// FalseName returns the textual name for false.
func (p *NumPunct) FalseName() string { return p.falseName }

// groupSizes returns the shared grouping slice for in-package callers.
func (p *NumPunct) groupSizes() []int { return p.grouping }
