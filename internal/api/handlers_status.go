package api

import (
	"context"
	"log"
	"net/http"

	"github.com/matchdeck/matchdeck/internal/logging"
	"github.com/matchdeck/matchdeck/internal/status"
)

// StatusSource produces the system status snapshot.
type StatusSource interface {
	SystemStatus(ctx context.Context) (status.Snapshot, error)
}

type StatusHandler struct {
	source StatusSource
	logger *log.Logger
}

func NewStatusHandler(source StatusSource) *StatusHandler {
	return &StatusHandler{source: source, logger: logging.New("api")}
}

// GetStatus returns the current system status snapshot.
// @Summary      Get system status
// @Tags         status
// @Produce      json
// @Success      200  {object} status.Snapshot
// @Failure      500  {object} object{error=string}
// @Router       /status [get]
func (h *StatusHandler) GetStatus(w http.ResponseWriter, r *http.Request) {
	serveFetch(w, r, "Failed to fetch system status",
		func(ctx context.Context) (any, error) {
			snap, err := h.source.SystemStatus(ctx)
			if err != nil {
				h.logger.Printf("status fetch failed: %s", sanitizeLog(err.Error()))
				return nil, err
			}
			return snap, nil
		},
		func(msg string) any {
			return map[string]string{"error": msg}
		},
	)
}
