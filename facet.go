package locale

// Category identifies the slot a facet occupies within a Locale.
// The set of categories is closed: every facet kind shipped by this package
// has exactly one category, and a Locale holds exactly one facet per category.
type Category int

// Recognized facet categories.
const (
	CategoryCtype Category = iota
	CategoryNumPunct
	CategoryNumGet
	CategoryNumPut
	CategoryCollate
	CategoryTimeGet
	CategoryTimePut
	CategoryMoneyPunct
	CategoryMoneyGet
	CategoryMoneyPut
	CategoryMessages

	categoryCount
)

// String returns the category name for diagnostics.
func (c Category) String() string {
	switch c {
	case CategoryCtype:
		return "ctype"
	case CategoryNumPunct:
		return "numpunct"
	case CategoryNumGet:
		return "numget"
	case CategoryNumPut:
		return "numput"
	case CategoryCollate:
		return "collate"
	case CategoryTimeGet:
		return "timeget"
	case CategoryTimePut:
		return "timeput"
	case CategoryMoneyPunct:
		return "moneypunct"
	case CategoryMoneyGet:
		return "moneyget"
	case CategoryMoneyPut:
		return "moneyput"
	case CategoryMessages:
		return "messages"
	default:
		return "unknown"
	}
}

// Facet is a single unit of locale-specific behavior. Facet implementations
// are immutable after construction and may be shared by any number of locales
// and goroutines. Customization happens through constructor options, not
// mutation: build a new facet and install it with Locale.With or New.
//
// The Category method must be callable on a zero (nil) receiver; it maps the
// facet's static type to its registry slot.
type Facet interface {
	Category() Category
}
