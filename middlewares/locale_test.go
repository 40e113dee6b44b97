package middlewares_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/locale"
	"github.com/dmitrymomot/locale/middlewares"
)

func testLocales(t *testing.T) []locale.Locale {
	t.Helper()
	en, err := locale.New("en-US")
	require.NoError(t, err)
	de, err := locale.New("de-DE")
	require.NoError(t, err)
	return []locale.Locale{en, de}
}

// echoLocale responds with the name of the locale resolved for the request.
func echoLocale() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(middlewares.FromContext(r.Context()).Name()))
	})
}

func TestDetectLocale(t *testing.T) {
	t.Parallel()

	t.Run("resolves from accept language", func(t *testing.T) {
		t.Parallel()
		h := middlewares.DetectLocale(middlewares.WithLocales(testLocales(t)...))(echoLocale())

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Accept-Language", "de, en;q=0.8")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		require.Equal(t, "de-DE", rec.Body.String())
	})

	t.Run("cookie wins over accept language", func(t *testing.T) {
		t.Parallel()
		h := middlewares.DetectLocale(middlewares.WithLocales(testLocales(t)...))(echoLocale())

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Accept-Language", "de")
		req.AddCookie(&http.Cookie{Name: "lang", Value: "en-US"})
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		require.Equal(t, "en-US", rec.Body.String())
	})

	t.Run("falls back to first locale", func(t *testing.T) {
		t.Parallel()
		h := middlewares.DetectLocale(middlewares.WithLocales(testLocales(t)...))(echoLocale())

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		require.Equal(t, "en-US", rec.Body.String())
	})

	t.Run("explicit fallback", func(t *testing.T) {
		t.Parallel()
		locs := testLocales(t)
		h := middlewares.DetectLocale(
			middlewares.WithLocales(locs...),
			middlewares.WithFallback(locs[1]),
		)(echoLocale())

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		require.Equal(t, "de-DE", rec.Body.String())
	})

	t.Run("unknown language keeps fallback", func(t *testing.T) {
		t.Parallel()
		h := middlewares.DetectLocale(middlewares.WithLocales(testLocales(t)...))(echoLocale())

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Accept-Language", "zz-ZZ;q=nope")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		require.Equal(t, "en-US", rec.Body.String())
	})

	t.Run("custom query source", func(t *testing.T) {
		t.Parallel()
		h := middlewares.DetectLocale(
			middlewares.WithLocales(testLocales(t)...),
			middlewares.WithSources(middlewares.FromQuery("locale")),
		)(echoLocale())

		req := httptest.NewRequest(http.MethodGet, "/?locale=de-DE", nil)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		require.Equal(t, "de-DE", rec.Body.String())
	})

	t.Run("no locales configured resolves classic", func(t *testing.T) {
		t.Parallel()
		h := middlewares.DetectLocale()(echoLocale())

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Accept-Language", "de")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		require.Equal(t, "C", rec.Body.String())
	})
}

func TestFromContext(t *testing.T) {
	t.Parallel()

	// Without the middleware the classic locale is returned.
	require.Equal(t, "C", middlewares.FromContext(context.Background()).Name())
}

func TestSources(t *testing.T) {
	t.Parallel()

	t.Run("cookie", func(t *testing.T) {
		t.Parallel()
		src := middlewares.FromCookie("lang")

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		_, ok := src(req)
		require.False(t, ok)

		req.AddCookie(&http.Cookie{Name: "lang", Value: "fr"})
		v, ok := src(req)
		require.True(t, ok)
		require.Equal(t, "fr", v)
	})

	t.Run("header", func(t *testing.T) {
		t.Parallel()
		src := middlewares.FromHeader("X-Lang")

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		_, ok := src(req)
		require.False(t, ok)

		req.Header.Set("X-Lang", "de")
		v, ok := src(req)
		require.True(t, ok)
		require.Equal(t, "de", v)
	})

	t.Run("query", func(t *testing.T) {
		t.Parallel()
		src := middlewares.FromQuery("l")

		req := httptest.NewRequest(http.MethodGet, "/?l=es", nil)
		v, ok := src(req)
		require.True(t, ok)
		require.Equal(t, "es", v)
	})
}
