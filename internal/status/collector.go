package status

import (
	"context"
	"fmt"
	"time"

	"github.com/matchdeck/matchdeck/internal/matches"
)

// Version is reported on the status endpoint. Bumped on release.
const Version = "0.4.1"

type Snapshot struct {
	Status      string     `json:"status"` // ok | degraded
	Version     string     `json:"version"`
	Uptime      string     `json:"uptime"`
	Timestamp   time.Time  `json:"timestamp"`
	DBSizeBytes int64      `json:"dbSizeBytes"`
	LiveMatches int        `json:"liveMatches"`
	Upstream    string     `json:"upstream"` // ok | unreachable
	LastRefresh *time.Time `json:"lastRefresh,omitempty"`
}

// SizeReporter is the slice of the store the collector needs.
type SizeReporter interface {
	DBSize() (int64, error)
}

// TrackerSource exposes the match tracker's runtime counters.
type TrackerSource interface {
	Stats() matches.TrackerStats
}

// Collector assembles the system status snapshot for the dashboard.
type Collector struct {
	store     SizeReporter
	tracker   TrackerSource
	startedAt time.Time
}

func NewCollector(store SizeReporter, tracker TrackerSource) *Collector {
	return &Collector{
		store:     store,
		tracker:   tracker,
		startedAt: time.Now(),
	}
}

func (c *Collector) SystemStatus(ctx context.Context) (Snapshot, error) {
	size, err := c.store.DBSize()
	if err != nil {
		return Snapshot{}, fmt.Errorf("db size: %w", err)
	}

	stats := c.tracker.Stats()

	snap := Snapshot{
		Status:      "ok",
		Version:     Version,
		Uptime:      formatUptime(time.Since(c.startedAt)),
		Timestamp:   time.Now().UTC(),
		DBSizeBytes: size,
		LiveMatches: stats.LiveCount,
		Upstream:    "ok",
		LastRefresh: stats.LastRefresh,
	}
	if stats.LastError != "" {
		snap.Status = "degraded"
		snap.Upstream = "unreachable"
	}
	return snap, nil
}

func formatUptime(d time.Duration) string {
	d = d.Round(time.Second)
	h := d / time.Hour
	d -= h * time.Hour
	m := d / time.Minute
	d -= m * time.Minute
	s := d / time.Second
	if h > 0 {
		return fmt.Sprintf("%dh %dm %ds", h, m, s)
	}
	return fmt.Sprintf("%dm %ds", m, s)
}
