package locale

import (
	"fmt"
	"sync"
	"sync/atomic"

	"golang.org/x/text/language"
)

// Locale is an immutable, shareable bundle of facets. The zero value behaves
// like the classic locale. Copying a Locale copies a reference to shared
// state, so passing it by value is cheap and safe.
//
// A Locale is never mutated after construction. Deriving a customized locale
// with With produces a new value that shares every facet the derivation did
// not override.
type Locale struct {
	d *localeData
}

type localeData struct {
	name  string
	tag   language.Tag
	slots [categoryCount]slot
}

// slot holds one facet per category. The facet pointer is written exactly
// once: either eagerly at construction time or lazily by the once guard on
// first lookup. Reads after installation are lock-free.
type slot struct {
	once sync.Once
	f    atomic.Pointer[Facet]
}

var classicLocale = Locale{d: &localeData{name: "C", tag: language.Und}}

// Classic returns the process-wide default locale. It classifies characters
// and formats numbers the way an untagged locale does: period decimal
// point, comma thousands separator, English calendar names, bytewise
// collation.
func Classic() Locale {
	return classicLocale
}

// New creates a locale for the given BCP 47 name (for example "de-DE"),
// optionally installing explicit facets for selected categories. Facets not
// supplied are constructed lazily on first use, using defaults appropriate
// for the name.
//
// The names "C", "POSIX" and "" map to the classic locale's behavior.
func New(name string, facets ...Facet) (Locale, error) {
	tag := language.Und
	switch name {
	case "", "C", "POSIX":
		if name == "" {
			name = "C"
		}
	default:
		t, err := language.Parse(name)
		if err != nil {
			return Locale{}, fmt.Errorf("%w: %q: %v", ErrBadLocaleName, name, err)
		}
		tag = t
	}

	d := &localeData{name: name, tag: tag}
	for _, f := range facets {
		if f == nil {
			return Locale{}, ErrNilFacet
		}
		if err := d.install(f); err != nil {
			return Locale{}, err
		}
	}
	return Locale{d: d}, nil
}

// With derives a new locale from l, replacing the facets of the categories
// the given facets belong to. Every other category keeps sharing l's facet
// instance, including facets l has not constructed yet (those remain lazy in
// the derived locale too). The receiver is left untouched, so locales already
// in use by other goroutines are unaffected.
func (l Locale) With(facets ...Facet) Locale {
	base := l.data()
	d := &localeData{name: base.name, tag: base.tag}
	for i := range base.slots {
		if p := base.slots[i].f.Load(); p != nil {
			d.slots[i].f.Store(p)
		}
	}
	for _, f := range facets {
		if f == nil {
			panic(ErrNilFacet)
		}
		if err := d.install(f); err != nil {
			panic(err)
		}
	}
	return Locale{d: d}
}

// Name returns the locale's name, "C" for the classic locale.
func (l Locale) Name() string {
	return l.data().name
}

// Tag returns the parsed language tag, language.Und for the classic locale.
func (l Locale) Tag() language.Tag {
	return l.data().tag
}

func (l Locale) data() *localeData {
	if l.d == nil {
		return classicLocale.d
	}
	return l.d
}

// install places f into its category slot. Only called during construction,
// before the locale is shared.
func (d *localeData) install(f Facet) error {
	c := f.Category()
	if c < 0 || c >= categoryCount {
		return fmt.Errorf("locale: facet %T reports unknown category %d", f, int(c))
	}
	d.slots[c].f.Store(&f)
	return nil
}

// facet returns the installed facet for c, constructing and caching the
// default on first use. Concurrent first use from multiple goroutines
// observes a single constructed instance; subsequent lookups are lock-free.
func (d *localeData) facet(c Category) Facet {
	if c < 0 || c >= categoryCount {
		panic(fmt.Sprintf("locale: unknown facet category %d", int(c)))
	}
	s := &d.slots[c]
	if p := s.f.Load(); p != nil {
		return *p
	}
	s.once.Do(func() {
		f := newDefaultFacet(c, d)
		s.f.Store(&f)
	})
	return *s.f.Load()
}

// installed reports whether the category slot holds a facet, without
// triggering default construction.
func (d *localeData) installed(c Category) bool {
	if c < 0 || c >= categoryCount {
		return false
	}
	return d.slots[c].f.Load() != nil
}
