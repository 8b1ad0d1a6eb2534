// Package preview serves the built site locally with the locale redirect
// in front of it, the way the production host does.
package preview

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/openticketai/sitekit/internal/locale"
	"github.com/openticketai/sitekit/internal/redirect"
)

// LocalePath is the JSON endpoint reporting the negotiated locale. It lives
// under /api/ so the redirect never applies to it.
const LocalePath = "/api/locale"

// localeResponse is the body served at LocalePath.
type localeResponse struct {
	Locale    string   `json:"locale"`
	Default   string   `json:"default"`
	Supported []string `json:"supported"`
}

// NewRouter returns a handler serving root with the locale redirect.
// A nil skipper uses the default skip rules; a nil logger discards logs.
func NewRouter(root string, set locale.Set, skipper *locale.Skipper, logger *slog.Logger) http.Handler {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(accessLog(logger))
	r.Use(redirect.Handler(set, skipper, logger))

	r.Get(LocalePath, func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Header().Add("Vary", "Accept-Language")
		err := json.NewEncoder(w).Encode(localeResponse{
			Locale:    set.PreferredLocale(req.Header.Get("Accept-Language")),
			Default:   set.Default(),
			Supported: set.Supported(),
		})
		if err != nil {
			logger.Error("encode locale response", "request_id", middleware.GetReqID(req.Context()), "err", err)
		}
	})
	r.Handle("/*", http.FileServer(http.Dir(root)))
	return r
}

// accessLog logs one line per request at debug level.
func accessLog(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)
			logger.Debug("request",
				"request_id", middleware.GetReqID(r.Context()),
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
			)
		})
	}
}
