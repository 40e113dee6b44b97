// Package middlewares provides net/http middleware for resolving the
// request's locale.
//
// DetectLocale tries a chain of language sources (cookie, Accept-Language,
// query parameter) and stores the best-matching locale in the request
// context:
//
//	en, _ := locale.New("en-US")
//	de, _ := locale.New("de-DE")
//
//	mux := http.NewServeMux()
//	handler := middlewares.DetectLocale(
//		middlewares.WithLocales(en, de),
//	)(mux)
//
// Handlers read the resolved locale back with FromContext:
//
//	loc := middlewares.FromContext(r.Context())
//	np := locale.Use[*locale.NumPunct](loc)
package middlewares
