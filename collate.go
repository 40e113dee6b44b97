package locale

import (
	"hash/fnv"
	"strings"
	"sync"

	xcollate "golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Collate orders and hashes text for one locale. The default compares
// bytewise; build with WithCollationTag to order per a language's collation
// rules via golang.org/x/text/collate.
//
// Compare and Transform agree: Compare(a, b) equals the sign of comparing
// Transform(a) and Transform(b) bytewise. Hash is computed over the raw
// text, so two spans that Compare equal but differ bytewise may hash
// differently; callers needing hash-equality for collation-equal text must
// hash the Transform output themselves.
type Collate struct {
	compare   func(a, b string) int
	transform func(s string) string
}

// CollateOption configures a Collate during construction.
type CollateOption func(*Collate)

// NewCollate creates a collation facet. Without options it orders bytewise.
func NewCollate(opts ...CollateOption) *Collate {
	c := &Collate{
		compare:   strings.Compare,
		transform: func(s string) string { return s },
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// WithCollationTag orders text per the collation rules of the given
// language tag.
func WithCollationTag(tag language.Tag) CollateOption {
	return func(c *Collate) {
		// collate.Collator keeps internal iterator state, so serialize
		// access to one instance.
		var mu sync.Mutex
		col := xcollate.New(tag)
		var buf xcollate.Buffer

		c.compare = func(a, b string) int {
			mu.Lock()
			defer mu.Unlock()
			return col.CompareString(a, b)
		}
		c.transform = func(s string) string {
			mu.Lock()
			defer mu.Unlock()
			buf.Reset()
			return string(col.KeyFromString(&buf, s))
		}
	}
}

// WithCompare replaces both the comparison and the sort-key transform. The
// two must agree: bytewise order of transforms must match compare.
func WithCompare(compare func(a, b string) int, transform func(s string) string) CollateOption {
	return func(c *Collate) {
		if compare != nil {
			c.compare = compare
		}
		if transform != nil {
			c.transform = transform
		}
	}
}

// Category returns CategoryCollate. Callable on a nil receiver.
func (*Collate) Category() Category { return CategoryCollate }

// Compare returns -1, 0 or 1 ordering a against b in this locale.
func (c *Collate) Compare(a, b string) int {
	v := c.compare(a, b)
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	default:
		return 0
	}
}

// Transform returns the sort key for s: bytewise comparison of two sort
// keys yields the same order as Compare on the originals.
func (c *Collate) Transform(s string) string {
	return c.transform(s)
}

// Hash returns a 32-bit FNV-1a hash of the raw text. See the type comment
// for how this relates to Compare equality.
func (c *Collate) Hash(s string) uint32 {
	h := fnv.New32a()
	_, _ = h.Write([]byte(s))
	return h.Sum32()
}
