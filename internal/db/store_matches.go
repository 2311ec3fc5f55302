package db

import (
	"crypto/rand"
	"encoding/hex"
	"time"

	"github.com/matchdeck/matchdeck/internal/matches"
)

func generateEventID() string {
	b := make([]byte, 8)
	if _, err := rand.Read(b); err != nil {
		return "evt-" + time.Now().Format("20060102150405")
	}
	return hex.EncodeToString(b)
}

// UpsertMatchSnapshot stores the latest observed state of a match. One row
// per match id; repeated observations overwrite scores and state.
func (s *Store) UpsertMatchSnapshot(m matches.Match, capturedAt time.Time) error {
	_, err := s.db.Exec(s.rebind(`
		INSERT INTO match_snapshots (match_id, game, competition, home_team, away_team, home_score, away_score, state, started_at, captured_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(match_id) DO UPDATE SET
			home_score = excluded.home_score,
			away_score = excluded.away_score,
			state = excluded.state,
			captured_at = excluded.captured_at`),
		m.ID, m.Game, m.Competition, m.HomeTeam, m.AwayTeam, m.HomeScore, m.AwayScore, m.State, m.StartedAt.UTC(), capturedAt.UTC())
	return err
}

// GetRecentMatches returns the most recently captured snapshots in the given
// state, newest first.
func (s *Store) GetRecentMatches(state string, limit int) ([]matches.Match, error) {
	rows, err := s.db.Query(s.rebind(`
		SELECT match_id, game, competition, home_team, away_team, home_score, away_score, state, started_at
		FROM match_snapshots
		WHERE state = ?
		ORDER BY captured_at DESC
		LIMIT ?`), state, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []matches.Match{}
	for rows.Next() {
		var m matches.Match
		if err := rows.Scan(&m.ID, &m.Game, &m.Competition, &m.HomeTeam, &m.AwayTeam, &m.HomeScore, &m.AwayScore, &m.State, &m.StartedAt); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (s *Store) RecordMatchEvent(matchID, eventType, message string) error {
	_, err := s.db.Exec(s.rebind(`
		INSERT INTO match_events (id, match_id, type, message, timestamp)
		VALUES (?, ?, ?, ?, ?)`),
		generateEventID(), matchID, eventType, message, time.Now().UTC())
	return err
}

func (s *Store) GetMatchEvents(limit int) ([]matches.Event, error) {
	rows, err := s.db.Query(s.rebind(`
		SELECT id, match_id, type, message, timestamp
		FROM match_events
		ORDER BY timestamp DESC
		LIMIT ?`), limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []matches.Event{}
	for rows.Next() {
		var e matches.Event
		if err := rows.Scan(&e.ID, &e.MatchID, &e.Type, &e.Message, &e.Timestamp); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
