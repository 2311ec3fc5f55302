package api

import (
	"context"
	"log"
	"net/http"
	"strconv"

	"github.com/matchdeck/matchdeck/internal/logging"
	"github.com/matchdeck/matchdeck/internal/matches"
)

// EventSource produces the match transition log.
type EventSource interface {
	Events(ctx context.Context, limit int) ([]matches.Event, error)
}

type EventHandler struct {
	source EventSource
	logger *log.Logger
}

func NewEventHandler(source EventSource) *EventHandler {
	return &EventHandler{source: source, logger: logging.New("api")}
}

// GetEvents returns recent match transitions (started/finished), newest first.
// @Summary      Get match events
// @Tags         events
// @Produce      json
// @Param        limit  query  int  false  "maximum number of events (default 20, max 100)"
// @Success      200  {object} object{events=[]matches.Event}
// @Failure      500  {object} object{error=string}
// @Router       /events [get]
func (h *EventHandler) GetEvents(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	serveFetch(w, r, "Failed to fetch match events",
		func(ctx context.Context) (any, error) {
			events, err := h.source.Events(ctx, limit)
			if err != nil {
				h.logger.Printf("events fetch failed: %s", sanitizeLog(err.Error()))
				return nil, err
			}
			if events == nil {
				events = []matches.Event{}
			}
			return map[string]any{"events": events}, nil
		},
		func(msg string) any {
			return map[string]string{"error": msg}
		},
	)
}
