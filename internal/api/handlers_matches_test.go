package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/matchdeck/matchdeck/internal/matches"
	"github.com/matchdeck/matchdeck/internal/upstream"
)

type stubMatchSource struct {
	live     []matches.Match
	detail   *matches.Match
	recent   []matches.Match
	liveErr  error
	matchErr error
	gotLim   int
}

func (s *stubMatchSource) LiveMatches(ctx context.Context) ([]matches.Match, error) {
	return s.live, s.liveErr
}

func (s *stubMatchSource) Match(ctx context.Context, id string) (*matches.Match, error) {
	if s.matchErr != nil {
		return nil, s.matchErr
	}
	return s.detail, nil
}

func (s *stubMatchSource) RecentMatches(ctx context.Context, limit int) ([]matches.Match, error) {
	s.gotLim = limit
	return s.recent, nil
}

func TestGetLiveMatches(t *testing.T) {
	m := matches.Match{
		ID:        "m1",
		Game:      "cs2",
		HomeTeam:  "Alpha",
		AwayTeam:  "Beta",
		HomeScore: 12,
		AwayScore: 9,
		State:     matches.StateLive,
		StartedAt: time.Now().UTC(),
	}
	h := NewMatchesHandler(&stubMatchSource{live: []matches.Match{m}})

	req := httptest.NewRequest("GET", "/api/matches/live", nil)
	w := httptest.NewRecorder()

	h.GetLiveMatches(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var body struct {
		Matches []matches.Match `json:"matches"`
	}
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(body.Matches) != 1 {
		t.Fatalf("expected 1 match, got %d", len(body.Matches))
	}
	if body.Matches[0].ID != "m1" || body.Matches[0].HomeScore != 12 {
		t.Errorf("unexpected match %+v", body.Matches[0])
	}
}

func TestGetLiveMatches_EmptyList(t *testing.T) {
	h := NewMatchesHandler(&stubMatchSource{live: []matches.Match{}})

	req := httptest.NewRequest("GET", "/api/matches/live", nil)
	w := httptest.NewRecorder()

	h.GetLiveMatches(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var body map[string]json.RawMessage
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if string(body["matches"]) != "[]" {
		t.Errorf("expected matches to be [], got %s", body["matches"])
	}
}

func TestGetLiveMatches_NilBecomesEmptyArray(t *testing.T) {
	h := NewMatchesHandler(&stubMatchSource{live: nil})

	req := httptest.NewRequest("GET", "/api/matches/live", nil)
	w := httptest.NewRecorder()

	h.GetLiveMatches(w, req)

	var body map[string]json.RawMessage
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if string(body["matches"]) != "[]" {
		t.Errorf("expected matches to be [], got %s", body["matches"])
	}
}

func TestGetLiveMatches_Failure(t *testing.T) {
	h := NewMatchesHandler(&stubMatchSource{liveErr: errors.New("fetch live matches: feed down")})

	req := httptest.NewRequest("GET", "/api/matches/live", nil)
	w := httptest.NewRecorder()

	h.GetLiveMatches(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}

	var body map[string]json.RawMessage
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	var msg string
	if err := json.Unmarshal(body["error"], &msg); err != nil {
		t.Fatalf("failed to decode error field: %v", err)
	}
	if msg != "fetch live matches: feed down" {
		t.Errorf("expected upstream message, got %q", msg)
	}

	// The error body always carries an empty matches array
	if string(body["matches"]) != "[]" {
		t.Errorf("expected matches placeholder [], got %s", body["matches"])
	}
}

func TestGetLiveMatches_FailureWithoutMessage(t *testing.T) {
	h := NewMatchesHandler(&stubMatchSource{liveErr: blankError{}})

	req := httptest.NewRequest("GET", "/api/matches/live", nil)
	w := httptest.NewRecorder()

	h.GetLiveMatches(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}

	var body map[string]json.RawMessage
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	var msg string
	_ = json.Unmarshal(body["error"], &msg)
	if msg != "Failed to fetch live matches" {
		t.Errorf("expected fallback message, got %q", msg)
	}
	if string(body["matches"]) != "[]" {
		t.Errorf("expected matches placeholder [], got %s", body["matches"])
	}
}

func matchDetailRequest(id string) *http.Request {
	req := httptest.NewRequest("GET", "/api/matches/"+id, nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", id)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestGetMatch(t *testing.T) {
	m := matches.Match{ID: "m1", Game: "cs2", HomeTeam: "Alpha", AwayTeam: "Beta", State: matches.StateLive}
	h := NewMatchesHandler(&stubMatchSource{detail: &m})

	w := httptest.NewRecorder()
	h.GetMatch(w, matchDetailRequest("m1"))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var got matches.Match
	if err := json.NewDecoder(w.Body).Decode(&got); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if got.ID != "m1" || got.HomeTeam != "Alpha" {
		t.Errorf("unexpected match %+v", got)
	}
}

func TestGetMatch_NotFound(t *testing.T) {
	err := fmt.Errorf("fetch match m404: %w", upstream.ErrNotFound)
	h := NewMatchesHandler(&stubMatchSource{matchErr: err})

	w := httptest.NewRecorder()
	h.GetMatch(w, matchDetailRequest("m404"))

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestGetMatch_Failure(t *testing.T) {
	h := NewMatchesHandler(&stubMatchSource{matchErr: errors.New("fetch match m1: feed down")})

	w := httptest.NewRecorder()
	h.GetMatch(w, matchDetailRequest("m1"))

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}

	var body map[string]string
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if body["error"] != "fetch match m1: feed down" {
		t.Errorf("expected upstream message, got %q", body["error"])
	}
}

func TestGetRecentMatches(t *testing.T) {
	src := &stubMatchSource{recent: []matches.Match{{ID: "m9", State: matches.StateFinished}}}
	h := NewMatchesHandler(src)

	req := httptest.NewRequest("GET", "/api/matches/recent?limit=5", nil)
	w := httptest.NewRecorder()

	h.GetRecentMatches(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if src.gotLim != 5 {
		t.Errorf("expected limit 5 passed through, got %d", src.gotLim)
	}

	var body struct {
		Matches []matches.Match `json:"matches"`
	}
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(body.Matches) != 1 || body.Matches[0].ID != "m9" {
		t.Errorf("unexpected matches %+v", body.Matches)
	}
}
