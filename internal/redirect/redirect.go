// Package redirect sends locale-less document requests to their localised URL.
//
// A request for "/pricing" with "Accept-Language: de" is answered with
// "302 Found, Location: /de/pricing". Requests that already carry a supported
// locale, and requests the skipper classifies as assets, pass through.
//
// The redirect always prefixes the negotiated locale, including the default:
// the built output keeps every locale under its own directory.
package redirect

import (
	"log/slog"
	"net/http"

	"github.com/openticketai/sitekit/internal/locale"
)

// Handler returns middleware performing the locale redirect.
// A nil skipper uses the default skip rules; a nil logger discards logs.
func Handler(set locale.Set, skipper *locale.Skipper, logger *slog.Logger) func(http.Handler) http.Handler {
	if skipper == nil {
		skipper = locale.NewSkipper(nil)
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			p := r.URL.Path
			if set.HasLocalePrefix(p) {
				w.Header().Set("Content-Language", set.LocaleFromPath(p))
				next.ServeHTTP(w, r)
				return
			}
			if skip, rule := skipper.Skip(p); skip {
				logger.Debug("redirect skipped", "path", p, "rule", rule)
				next.ServeHTTP(w, r)
				return
			}

			loc := set.PreferredLocale(r.Header.Get("Accept-Language"))
			// Escaped form, so %3F or %2F stay part of the path.
			target := Target(r.URL.EscapedPath(), loc)
			if r.URL.RawQuery != "" {
				target += "?" + r.URL.RawQuery
			}
			logger.Debug("redirect", "path", p, "locale", loc, "location", target)
			w.Header().Add("Vary", "Accept-Language")
			http.Redirect(w, r, target, http.StatusFound)
		})
	}
}

// Target returns the localised location for a locale-less path.
func Target(p, loc string) string {
	if p == "" || p[0] != '/' {
		p = "/" + p
	}
	return "/" + loc + p
}
