package api

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"golang.org/x/time/rate"

	"github.com/matchdeck/matchdeck/internal/config"
	"github.com/matchdeck/matchdeck/internal/db"
	_ "github.com/matchdeck/matchdeck/internal/docs"
	"github.com/matchdeck/matchdeck/internal/matches"
	"github.com/matchdeck/matchdeck/internal/static"
	"github.com/matchdeck/matchdeck/internal/status"
)

// SecureHeadersWithConfig returns middleware that adds security headers,
// including HSTS when the deployment terminates TLS.
func SecureHeadersWithConfig(enableHSTS bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-Content-Type-Options", "nosniff")
			w.Header().Set("X-Frame-Options", "DENY")
			w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")
			w.Header().Set("Permissions-Policy", "geolocation=(), microphone=(), camera=()")

			if enableHSTS {
				w.Header().Set("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
			}

			next.ServeHTTP(w, r)
		})
	}
}

// NewRouter builds the HTTP router serving the JSON API and the static frontend.
func NewRouter(collector *status.Collector, svc *matches.Service, store *db.Store, cfg *config.Config) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// Only trust X-Forwarded-For behind a reverse proxy we control. With
	// TrustProxy off (the default), the direct connection IP is used so
	// clients cannot spoof their way past rate limiting.
	if cfg.TrustProxy {
		r.Use(middleware.RealIP)
	}

	r.Use(SecureHeadersWithConfig(cfg.EnableHSTS))

	// High enough to never bother a dashboard, low enough to blunt abuse
	apiLimiter := NewIPRateLimiter(rate.Limit(100), 200)

	statusH := NewStatusHandler(collector)
	matchesH := NewMatchesHandler(svc)
	eventsH := NewEventHandler(svc)

	// Kubernetes health probes (no rate limiting)
	r.Get("/healthz", Healthz)
	r.Get("/readyz", Readyz(store))

	r.Route("/api", func(api chi.Router) {
		api.Use(RateLimitMiddleware(apiLimiter))

		api.Get("/status", statusH.GetStatus)
		api.Get("/matches/live", matchesH.GetLiveMatches)
		api.Get("/matches/recent", matchesH.GetRecentMatches)
		api.Get("/matches/{id}", matchesH.GetMatch)
		api.Get("/events", eventsH.GetEvents)

		// API Documentation (Swagger UI)
		api.Get("/docs/*", httpSwagger.Handler(
			httpSwagger.URL("/api/docs/doc.json"),
		))
	})

	// Static Assets (Frontend)
	r.Handle("/*", static.Handler())

	return r
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// serveFetch is the shared contract of the read-only dashboard endpoints:
// one collaborator call, 200 with the shaped result, or 500 with the shaped
// error body. errShape receives the final message, which is the error's own
// text unless that text is empty, in which case fallback is used.
func serveFetch(w http.ResponseWriter, r *http.Request, fallback string, fetch func(ctx context.Context) (any, error), errShape func(msg string) any) {
	v, err := fetch(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errShape(errorMessage(err, fallback)))
		return
	}
	writeJSON(w, http.StatusOK, v)
}

func errorMessage(err error, fallback string) string {
	if msg := strings.TrimSpace(err.Error()); msg != "" {
		return msg
	}
	return fallback
}
