package locale

import "fmt"

// Use returns the facet of type T installed in loc, constructing the default
// for T's category on first use. T is one of the concrete facet pointer types
// (*Ctype, *NumPunct, *NumGet, ...).
//
// Lookup by an unrecognized category, or retrieving a custom facet whose
// dynamic type differs from T, is a programming error and panics. For every
// known category the call otherwise always succeeds, because a default is
// synthesized when nothing was installed.
func Use[T Facet](loc Locale) T {
	var zero T
	c := zero.Category()
	f := loc.data().facet(c)
	t, ok := f.(T)
	if !ok {
		panic(fmt.Sprintf("locale: facet for category %s is %T, not %T", c, f, zero))
	}
	return t
}

// Has reports whether loc already holds a facet for T's category, either
// installed explicitly or defaulted by an earlier Use call. It never
// constructs anything.
func Has[T Facet](loc Locale) bool {
	var zero T
	return loc.data().installed(zero.Category())
}
