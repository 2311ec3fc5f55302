package matches

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/matchdeck/matchdeck/internal/notifications"
)

const refreshTimeout = 15 * time.Second

// EventNotifier receives match transition events for out-of-band delivery.
type EventNotifier interface {
	Enqueue(event notifications.Event)
}

// TrackerStats is the tracker state surfaced on the status endpoint.
type TrackerStats struct {
	LiveCount   int
	LastRefresh *time.Time
	LastError   string
}

// Tracker polls the upstream feed on an interval, keeps the live cache warm,
// persists snapshots and records started/finished transitions.
type Tracker struct {
	feed     Feed
	store    Storage
	svc      *Service
	notifier EventNotifier
	interval time.Duration
	logger   *log.Logger

	mu          sync.RWMutex
	prev        map[string]Match // live set from the previous refresh
	liveCount   int
	lastRefresh *time.Time
	lastErr     error

	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

func NewTracker(feed Feed, store Storage, svc *Service, interval time.Duration, logger *log.Logger) *Tracker {
	if interval <= 0 {
		interval = 15 * time.Second
	}
	return &Tracker{
		feed:     feed,
		store:    store,
		svc:      svc,
		interval: interval,
		logger:   logger,
		prev:     make(map[string]Match),
		stopCh:   make(chan struct{}),
	}
}

// SetNotifier attaches a notifier for match transition events. Must be
// called before Start.
func (t *Tracker) SetNotifier(n EventNotifier) {
	t.notifier = n
}

func (t *Tracker) Start() {
	t.wg.Add(1)
	go func() {
		defer t.wg.Done()

		// Immediate refresh so the dashboard has data right after boot
		t.refresh()

		ticker := time.NewTicker(t.interval)
		defer ticker.Stop()
		for {
			select {
			case <-t.stopCh:
				return
			case <-ticker.C:
				t.refresh()
			}
		}
	}()
}

// Stop halts the poll loop and waits for the in-flight refresh to finish.
func (t *Tracker) Stop() {
	t.stopOnce.Do(func() { close(t.stopCh) })
	t.wg.Wait()
}

func (t *Tracker) Stats() TrackerStats {
	t.mu.RLock()
	defer t.mu.RUnlock()

	stats := TrackerStats{
		LiveCount:   t.liveCount,
		LastRefresh: t.lastRefresh,
	}
	if t.lastErr != nil {
		stats.LastError = t.lastErr.Error()
	}
	return stats
}

func (t *Tracker) refresh() {
	ctx, cancel := context.WithTimeout(context.Background(), refreshTimeout)
	defer cancel()

	live, err := t.feed.LiveMatches(ctx)
	if err != nil {
		t.mu.Lock()
		wasHealthy := t.lastErr == nil
		t.lastErr = err
		t.mu.Unlock()
		if t.logger != nil {
			t.logger.Printf("refresh failed: %v", err)
		}
		// Notify once per outage, not once per failed poll.
		if wasHealthy && t.notifier != nil {
			t.notifier.Enqueue(notifications.Event{
				Type:    notifications.EventFeedDown,
				Message: err.Error(),
				Time:    time.Now().UTC(),
			})
		}
		return
	}

	now := time.Now().UTC()
	current := make(map[string]Match, len(live))
	for _, m := range live {
		current[m.ID] = m
	}

	t.mu.RLock()
	prev := t.prev
	t.mu.RUnlock()

	for _, m := range live {
		if _, seen := prev[m.ID]; !seen {
			msg := fmt.Sprintf("%s vs %s went live", m.HomeTeam, m.AwayTeam)
			if err := t.store.RecordMatchEvent(m.ID, "started", msg); err != nil && t.logger != nil {
				t.logger.Printf("record started event for %s: %v", m.ID, err)
			}
			if t.notifier != nil {
				t.notifier.Enqueue(notifications.Event{
					MatchID: m.ID,
					Type:    notifications.EventMatchStarted,
					Message: msg,
					Time:    now,
				})
			}
		}
		if err := t.store.UpsertMatchSnapshot(m, now); err != nil && t.logger != nil {
			t.logger.Printf("persist snapshot for %s: %v", m.ID, err)
		}
	}

	// Matches that dropped out of the live set are finished. The last
	// observed scores stand as the final result.
	for id, m := range prev {
		if _, still := current[id]; still {
			continue
		}
		m.State = StateFinished
		if err := t.store.UpsertMatchSnapshot(m, now); err != nil && t.logger != nil {
			t.logger.Printf("persist final snapshot for %s: %v", id, err)
		}
		msg := fmt.Sprintf("%s vs %s finished %d-%d", m.HomeTeam, m.AwayTeam, m.HomeScore, m.AwayScore)
		if err := t.store.RecordMatchEvent(id, "finished", msg); err != nil && t.logger != nil {
			t.logger.Printf("record finished event for %s: %v", id, err)
		}
		if t.notifier != nil {
			t.notifier.Enqueue(notifications.Event{
				MatchID: id,
				Type:    notifications.EventMatchFinished,
				Message: msg,
				Time:    now,
			})
		}
	}

	if t.svc != nil {
		t.svc.primeLive(live)
	}

	t.mu.Lock()
	t.prev = current
	t.liveCount = len(current)
	t.lastRefresh = &now
	t.lastErr = nil
	t.mu.Unlock()
}
