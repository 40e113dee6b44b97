package locale

import (
	"fmt"
	"sync"

	"golang.org/x/sync/singleflight"
)

// Catalog is a handle to an open message catalog. Handles are owned by the
// caller: every successful Open must be paired with a Close.
type Catalog int

// InvalidCatalog is returned by Open on failure.
const InvalidCatalog Catalog = -1

// CatalogSource loads the raw contents of a named message catalog for a
// locale: messages keyed by set and id. Open may call Load from multiple
// goroutines.
type CatalogSource interface {
	Load(name string, loc Locale) (map[int]map[int]string, error)
}

// Messages looks up translated text in named catalogs. Catalog contents are
// supplied by a CatalogSource (see NewFSCatalogSource); without a source
// every Open fails with ErrNoCatalogSource.
//
// The table of open catalogs is the facet's only mutable state and is
// guarded internally, so a Messages facet shared across locales and
// goroutines is safe. Concurrent opens of the same catalog are deduplicated,
// loading the backing data once.
type Messages struct {
	source  CatalogSource
	missing func(name string, set, id int)

	group singleflight.Group

	mu   sync.Mutex
	open map[Catalog]*openCatalog
	next Catalog
}

type openCatalog struct {
	name string
	sets map[int]map[int]string
}

// MessagesOption configures a Messages facet during construction.
type MessagesOption func(*Messages)

// NewMessages creates a message catalog facet.
func NewMessages(opts ...MessagesOption) *Messages {
	m := &Messages{open: make(map[Catalog]*openCatalog)}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// WithCatalogSource sets the backend that loads catalog contents.
func WithCatalogSource(src CatalogSource) MessagesOption {
	return func(m *Messages) {
		m.source = src
	}
}

// WithMissingMessageHandler sets a handler invoked when a lookup misses.
// Useful for spotting untranslated messages during development.
func WithMissingMessageHandler(fn func(name string, set, id int)) MessagesOption {
	return func(m *Messages) {
		m.missing = fn
	}
}

// Category returns CategoryMessages. Callable on a nil receiver.
func (*Messages) Category() Category { return CategoryMessages }

// Open loads the named catalog for loc and returns a handle to it. The
// handle stays valid until Close. Opening the same name concurrently from
// several goroutines loads the data once; each caller still receives its
// own handle.
func (m *Messages) Open(name string, loc Locale) (Catalog, error) {
	if m.source == nil {
		return InvalidCatalog, ErrNoCatalogSource
	}

	key := loc.Name() + "\x00" + name
	v, err, _ := m.group.Do(key, func() (any, error) {
		return m.source.Load(name, loc)
	})
	if err != nil {
		return InvalidCatalog, fmt.Errorf("locale: opening catalog %q: %w", name, err)
	}
	sets := v.(map[int]map[int]string)

	m.mu.Lock()
	defer m.mu.Unlock()
	c := m.next
	m.next++
	m.open[c] = &openCatalog{name: name, sets: sets}
	return c, nil
}

// Get looks up the message (set, id) in the open catalog c. On any miss --
// closed handle, unknown set, unknown id -- it returns fallback; lookups
// never fail hard.
func (m *Messages) Get(c Catalog, set, id int, fallback string) string {
	m.mu.Lock()
	cat, ok := m.open[c]
	m.mu.Unlock()
	if !ok {
		if m.missing != nil {
			m.missing("", set, id)
		}
		return fallback
	}
	if msg, ok := cat.sets[set][id]; ok {
		return msg
	}
	if m.missing != nil {
		m.missing(cat.name, set, id)
	}
	return fallback
}

// Close releases the catalog handle. Closing an already-closed or invalid
// handle is a no-op.
func (m *Messages) Close(c Catalog) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.open, c)
}
