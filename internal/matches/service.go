package matches

import (
	"context"
	"fmt"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// Feed is the upstream source of match data.
type Feed interface {
	LiveMatches(ctx context.Context) ([]Match, error)
	Match(ctx context.Context, id string) (*Match, error)
}

// Storage persists match snapshots and transition events.
type Storage interface {
	UpsertMatchSnapshot(m Match, capturedAt time.Time) error
	GetRecentMatches(state string, limit int) ([]Match, error)
	RecordMatchEvent(matchID, eventType, message string) error
	GetMatchEvents(limit int) ([]Event, error)
}

const liveCacheKey = "matches:live"

const defaultListLimit = 20

// Service answers the dashboard's match queries. Live reads are served from
// a short-lived cache primed by the tracker; a cache miss falls through to
// the upstream feed.
type Service struct {
	feed  Feed
	store Storage
	cache *gocache.Cache
}

func NewService(feed Feed, store Storage, ttl time.Duration) *Service {
	if ttl <= 0 {
		ttl = 10 * time.Second
	}
	return &Service{
		feed:  feed,
		store: store,
		cache: gocache.New(ttl, 2*ttl),
	}
}

// LiveMatches returns the matches currently in play. The result is never nil
// on success.
func (s *Service) LiveMatches(ctx context.Context) ([]Match, error) {
	if v, ok := s.cache.Get(liveCacheKey); ok {
		return v.([]Match), nil
	}

	live, err := s.feed.LiveMatches(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch live matches: %w", err)
	}
	if live == nil {
		live = []Match{}
	}
	s.cache.Set(liveCacheKey, live, gocache.DefaultExpiration)
	return live, nil
}

// primeLive replaces the cached live set. Called by the tracker after each
// successful refresh so request handlers rarely hit the feed directly.
func (s *Service) primeLive(live []Match) {
	if live == nil {
		live = []Match{}
	}
	s.cache.Set(liveCacheKey, live, gocache.DefaultExpiration)
}

// Match returns a single match by feed id. The cached live set is checked
// first so detail views of in-play matches skip the feed round trip.
func (s *Service) Match(ctx context.Context, id string) (*Match, error) {
	if v, ok := s.cache.Get(liveCacheKey); ok {
		for _, m := range v.([]Match) {
			if m.ID == id {
				return &m, nil
			}
		}
	}

	m, err := s.feed.Match(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("fetch match %s: %w", id, err)
	}
	return m, nil
}

// RecentMatches returns recently finished matches, newest first.
func (s *Service) RecentMatches(ctx context.Context, limit int) ([]Match, error) {
	if limit <= 0 || limit > 100 {
		limit = defaultListLimit
	}
	return s.store.GetRecentMatches(StateFinished, limit)
}

// Events returns recent match transitions, newest first.
func (s *Service) Events(ctx context.Context, limit int) ([]Event, error) {
	if limit <= 0 || limit > 100 {
		limit = defaultListLimit
	}
	return s.store.GetMatchEvents(limit)
}
