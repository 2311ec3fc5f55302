package matches

import "time"

// Match states as reported by the upstream feed.
const (
	StateLive     = "live"
	StateFinished = "finished"
)

type Match struct {
	ID          string    `json:"id"`
	Game        string    `json:"game"`
	Competition string    `json:"competition"`
	HomeTeam    string    `json:"homeTeam"`
	AwayTeam    string    `json:"awayTeam"`
	HomeScore   int       `json:"homeScore"`
	AwayScore   int       `json:"awayScore"`
	State       string    `json:"state"`
	StartedAt   time.Time `json:"startedAt"`
}

// Event records a match transition observed by the tracker.
type Event struct {
	ID        string    `json:"id"`
	MatchID   string    `json:"matchId"`
	Type      string    `json:"type"` // started | finished
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}
