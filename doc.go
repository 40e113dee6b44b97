// Package locale provides locale-aware character classification, numeric,
// monetary and calendar parsing/formatting, collation, and message catalogs
// behind a single facet mechanism.
//
// A Locale is an immutable bundle of facets, one per category. Callers
// retrieve the facet implementing a capability with the typed lookup
// functions:
//
//	loc, _ := locale.New("de-DE")
//	np := locale.Use[*locale.NumPunct](loc)
//	fmt.Println(string(np.DecimalPoint())) // ","
//
// Facets not installed explicitly are constructed lazily on first use, with
// defaults chosen from the locale name. Lazy construction is safe under
// concurrent first use; after that, lookups are lock-free.
//
// # Customization
//
// Locales are never mutated. To customize, build a facet with constructor
// options and derive a new locale:
//
//	punct := locale.NewNumPunct(
//		locale.WithDecimalPoint(','),
//		locale.WithThousandsSep('.'),
//	)
//	custom := locale.Classic().With(punct)
//
// The derived locale shares every facet it does not override, so derivation
// costs O(overridden categories). Locales already in use elsewhere are
// unaffected.
//
// # Parsing and formatting conventions
//
// Parse methods (NumGet, MoneyGet, TimeGet) consume the longest valid prefix
// of their input and return the number of bytes consumed. Zero consumption
// signals failure, with the output left at the type's zero value; no error
// values and no panics on malformed input. Format methods (NumPut, MoneyPut,
// TimePut) write into a caller-supplied buffer and truncate at its boundary,
// so callers size the buffer for the widest possible rendering.
//
// # Character classification
//
// The ctype facet classifies runes against a bitmask vocabulary and maps
// case. Free helpers mirror the C predicates:
//
//	locale.IsAlpha('é', loc) // true
//	locale.IsDigit('7', loc) // true
//
// # Messages
//
// The messages facet resolves numbered messages from named catalogs loaded
// through a CatalogSource, typically an embedded filesystem:
//
//	msgs := locale.NewMessages(
//		locale.WithCatalogSource(locale.NewFSCatalogSource(catalogFS)),
//	)
//	loc, _ := locale.New("de-DE", msgs)
//
//	cat, err := locale.Use[*locale.Messages](loc).Open("errors", loc)
//	// ...
//	text := locale.Use[*locale.Messages](loc).Get(cat, 1, 2, "permission denied")
//
// Lookup misses return the caller's fallback text and never fail hard.
// Catalog handles are owner-managed: pair every Open with a Close.
package locale
