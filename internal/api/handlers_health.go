package api

import (
	"net/http"
	"time"

	"github.com/matchdeck/matchdeck/internal/db"
)

// Healthz is the liveness probe: the process is up and serving.
func Healthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":    "ok",
		"timestamp": time.Now().UTC(),
	})
}

// Readyz is the readiness probe: 200 only when the store is reachable.
func Readyz(store *db.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := store.Ping(); err != nil {
			writeJSON(w, http.StatusServiceUnavailable, map[string]any{
				"status":    "unavailable",
				"timestamp": time.Now().UTC(),
			})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"status":    "ok",
			"timestamp": time.Now().UTC(),
		})
	}
}
