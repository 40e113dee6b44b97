package locale

import "errors"

var (
	ErrBadLocaleName   = errors.New("locale: malformed locale name")
	ErrNilFacet        = errors.New("locale: nil facet")
	ErrNoCatalogSource = errors.New("locale: no catalog source configured")
	ErrCatalogNotFound = errors.New("locale: message catalog not found")
	ErrInvalidCatalog  = errors.New("locale: invalid message catalog file")
)
