package api

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/matchdeck/matchdeck/internal/logging"
	"github.com/matchdeck/matchdeck/internal/matches"
	"github.com/matchdeck/matchdeck/internal/upstream"
)

// MatchSource produces the match lists shown on the dashboard.
type MatchSource interface {
	LiveMatches(ctx context.Context) ([]matches.Match, error)
	Match(ctx context.Context, id string) (*matches.Match, error)
	RecentMatches(ctx context.Context, limit int) ([]matches.Match, error)
}

type MatchesHandler struct {
	source MatchSource
	logger *log.Logger
}

func NewMatchesHandler(source MatchSource) *MatchesHandler {
	return &MatchesHandler{source: source, logger: logging.New("api")}
}

// GetLiveMatches returns the matches currently in play.
// The error body carries an empty matches array so clients can render an
// empty list without null-checking.
// @Summary      Get live matches
// @Tags         matches
// @Produce      json
// @Success      200  {object} object{matches=[]matches.Match}
// @Failure      500  {object} object{error=string,matches=[]matches.Match}
// @Router       /matches/live [get]
func (h *MatchesHandler) GetLiveMatches(w http.ResponseWriter, r *http.Request) {
	serveFetch(w, r, "Failed to fetch live matches",
		func(ctx context.Context) (any, error) {
			live, err := h.source.LiveMatches(ctx)
			if err != nil {
				h.logger.Printf("live matches fetch failed: %s", sanitizeLog(err.Error()))
				return nil, err
			}
			if live == nil {
				live = []matches.Match{}
			}
			return map[string]any{"matches": live}, nil
		},
		func(msg string) any {
			return map[string]any{"error": msg, "matches": []matches.Match{}}
		},
	)
}

// GetMatch returns a single match by feed id.
// @Summary      Get match detail
// @Tags         matches
// @Produce      json
// @Param        id  path  string  true  "match id"
// @Success      200  {object} matches.Match
// @Failure      404  {object} object{error=string}
// @Failure      500  {object} object{error=string}
// @Router       /matches/{id} [get]
func (h *MatchesHandler) GetMatch(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	m, err := h.source.Match(r.Context(), id)
	if err != nil {
		if errors.Is(err, upstream.ErrNotFound) {
			writeError(w, http.StatusNotFound, "match not found")
			return
		}
		h.logger.Printf("match fetch failed: %s", sanitizeLog(err.Error()))
		writeError(w, http.StatusInternalServerError, errorMessage(err, "Failed to fetch match"))
		return
	}

	writeJSON(w, http.StatusOK, m)
}

// GetRecentMatches returns recently finished matches, newest first.
// @Summary      Get recently finished matches
// @Tags         matches
// @Produce      json
// @Param        limit  query  int  false  "maximum number of matches (default 20, max 100)"
// @Success      200  {object} object{matches=[]matches.Match}
// @Failure      500  {object} object{error=string,matches=[]matches.Match}
// @Router       /matches/recent [get]
func (h *MatchesHandler) GetRecentMatches(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	serveFetch(w, r, "Failed to fetch recent matches",
		func(ctx context.Context) (any, error) {
			recent, err := h.source.RecentMatches(ctx, limit)
			if err != nil {
				h.logger.Printf("recent matches fetch failed: %s", sanitizeLog(err.Error()))
				return nil, err
			}
			if recent == nil {
				recent = []matches.Match{}
			}
			return map[string]any{"matches": recent}, nil
		},
		func(msg string) any {
			return map[string]any{"error": msg, "matches": []matches.Match{}}
		},
	)
}
