package middlewares

import (
	"context"
	"net/http"

	"golang.org/x/text/language"

	"github.com/dmitrymomot/locale"
)

type localeCtxKey struct{}

// Source extracts a language hint from the request. Returns the value and
// true if found, or ("", false) if not present.
type Source func(r *http.Request) (string, bool)

// FromCookie returns a source that reads a language from a cookie.
func FromCookie(name string) Source {
	return func(r *http.Request) (string, bool) {
		c, err := r.Cookie(name)
		if err != nil || c.Value == "" {
			return "", false
		}
		return c.Value, true
	}
}

// FromQuery returns a source that reads a language from a query parameter.
func FromQuery(name string) Source {
	return func(r *http.Request) (string, bool) {
		v := r.URL.Query().Get(name)
		if v == "" {
			return "", false
		}
		return v, true
	}
}

// FromHeader returns a source that reads a language from a request header.
// Use FromAcceptLanguage for the Accept-Language header; this source takes
// the raw value.
func FromHeader(name string) Source {
	return func(r *http.Request) (string, bool) {
		v := r.Header.Get(name)
		if v == "" {
			return "", false
		}
		return v, true
	}
}

// FromAcceptLanguage returns a source that reads the Accept-Language header.
// The header is matched against the configured locales later, quality
// values included, via language.MatchStrings.
func FromAcceptLanguage() Source {
	return FromHeader("Accept-Language")
}

// LocaleConfig configures the DetectLocale middleware.
type LocaleConfig struct {
	locales  []locale.Locale
	tags     []language.Tag
	fallback locale.Locale
	sources  []Source
}

// LocaleOption configures LocaleConfig.
type LocaleOption func(*LocaleConfig)

// WithLocales sets the locales requests may resolve to. The first one also
// becomes the fallback unless WithFallback overrides it. Locales whose name
// is not a parseable language tag (such as the classic locale) only match
// exactly by name.
func WithLocales(locs ...locale.Locale) LocaleOption {
	return func(cfg *LocaleConfig) {
		cfg.locales = locs
	}
}

// WithFallback sets the locale used when no source yields a match.
func WithFallback(loc locale.Locale) LocaleOption {
	return func(cfg *LocaleConfig) {
		cfg.fallback = loc
	}
}

// WithSources sets the language sources, tried in order.
func WithSources(sources ...Source) LocaleOption {
	return func(cfg *LocaleConfig) {
		cfg.sources = sources
	}
}

// DetectLocale returns middleware that resolves the request's locale and
// stores it in the request context for FromContext. Defaults: sources are
// the "lang" cookie then Accept-Language; the fallback is the first
// configured locale, or the classic locale when none are configured.
func DetectLocale(opts ...LocaleOption) func(http.Handler) http.Handler {
	cfg := &LocaleConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	if len(cfg.sources) == 0 {
		cfg.sources = []Source{FromCookie("lang"), FromAcceptLanguage()}
	}
	if cfg.fallback == (locale.Locale{}) {
		if len(cfg.locales) > 0 {
			cfg.fallback = cfg.locales[0]
		} else {
			cfg.fallback = locale.Classic()
		}
	}

	cfg.tags = make([]language.Tag, len(cfg.locales))
	for i, loc := range cfg.locales {
		cfg.tags[i] = loc.Tag()
	}
	matcher := language.NewMatcher(cfg.tags)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			loc := cfg.fallback
			for _, src := range cfg.sources {
				hint, ok := src(r)
				if !ok {
					continue
				}
				if match, found := cfg.resolve(matcher, hint); found {
					loc = match
					break
				}
			}
			ctx := context.WithValue(r.Context(), localeCtxKey{}, loc)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// resolve maps a language hint to one of the configured locales: exact name
// match first, then best tag match including Accept-Language lists.
func (cfg *LocaleConfig) resolve(matcher language.Matcher, hint string) (locale.Locale, bool) {
	for _, loc := range cfg.locales {
		if loc.Name() == hint {
			return loc, true
		}
	}
	if len(cfg.locales) == 0 {
		return locale.Locale{}, false
	}
	desired, _, err := language.ParseAcceptLanguage(hint)
	if err != nil {
		return locale.Locale{}, false
	}
	_, idx, conf := matcher.Match(desired...)
	if conf == language.No {
		return locale.Locale{}, false
	}
	return cfg.locales[idx], true
}

// FromContext returns the locale resolved by DetectLocale, or the classic
// locale when the middleware is not in the chain.
func FromContext(ctx context.Context) locale.Locale {
	if loc, ok := ctx.Value(localeCtxKey{}).(locale.Locale); ok {
		return loc
	}
	return locale.Classic()
}
