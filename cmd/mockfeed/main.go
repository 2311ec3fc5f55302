// mockfeed serves a fake match feed API for local development. Point the
// dashboard at it with UPSTREAM_URL=http://localhost:8080 and any api key.
package main

import (
	"encoding/json"
	"flag"
	"log"
	"math/rand"
	"net/http"
	"strings"
	"sync"
	"time"
)

type teamResponse struct {
	Name  string `json:"name"`
	Score int    `json:"score"`
}

type matchResponse struct {
	MatchID     string `json:"match_id"`
	Game        string `json:"game"`
	Competition string `json:"competition_name"`
	Status      string `json:"status"`
	StartedAt   int64  `json:"started_at"`
	Teams       struct {
		Home teamResponse `json:"home"`
		Away teamResponse `json:"away"`
	} `json:"teams"`
}

type feedState struct {
	mu      sync.Mutex
	matches []matchResponse
}

func newMatch(id, game, competition, home, away string) matchResponse {
	m := matchResponse{
		MatchID:     id,
		Game:        game,
		Competition: competition,
		Status:      "live",
		StartedAt:   time.Now().Add(-20 * time.Minute).Unix(),
	}
	m.Teams.Home = teamResponse{Name: home}
	m.Teams.Away = teamResponse{Name: away}
	return m
}

// tick advances scores and occasionally finishes a match and starts a new
// one, so the dashboard has transitions to show.
func (s *feedState) tick() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.matches {
		switch rand.Intn(4) {
		case 0:
			s.matches[i].Teams.Home.Score++
		case 1:
			s.matches[i].Teams.Away.Score++
		}
	}

	if rand.Intn(10) == 0 && len(s.matches) > 1 {
		s.matches = s.matches[1:]
	}
	if rand.Intn(10) == 0 {
		id := time.Now().Format("m-150405")
		s.matches = append(s.matches, newMatch(id, "cs2", "Weekly Open", "Nova", "Drift"))
	}
}

func (s *feedState) live() []matchResponse {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]matchResponse, len(s.matches))
	copy(out, s.matches)
	return out
}

func (s *feedState) byID(id string) (matchResponse, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, m := range s.matches {
		if m.MatchID == id {
			return m, true
		}
	}
	return matchResponse{}, false
}

func main() {
	listen := flag.String("listen", ":8080", "listen address")
	flag.Parse()

	state := &feedState{matches: []matchResponse{
		newMatch("m-1001", "cs2", "Masters Copenhagen", "Astra", "Vortex"),
		newMatch("m-1002", "dota2", "Regional League", "Titan Five", "Night Owls"),
		newMatch("m-1003", "lol", "Summer Split", "Redline", "Harbor"),
	}}

	go func() {
		for range time.Tick(5 * time.Second) {
			state.tick()
		}
	}()

	mux := http.NewServeMux()
	mux.HandleFunc("/matches", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]any{"items": state.live()})
	})
	mux.HandleFunc("/matches/", func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimPrefix(r.URL.Path, "/matches/")
		m, ok := state.byID(id)
		if !ok {
			http.NotFound(w, r)
			return
		}
		writeJSON(w, m)
	})

	log.Printf("mock feed listening on %s", *listen)
	log.Fatal(http.ListenAndServe(*listen, mux))
}

func writeJSON(w http.ResponseWriter, payload any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(payload)
}
