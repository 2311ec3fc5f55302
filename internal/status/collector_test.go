package status

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/matchdeck/matchdeck/internal/matches"
)

type fakeSizer struct {
	size int64
	err  error
}

func (f fakeSizer) DBSize() (int64, error) { return f.size, f.err }

type fakeTracker struct {
	stats matches.TrackerStats
}

func (f fakeTracker) Stats() matches.TrackerStats { return f.stats }

func TestSystemStatus(t *testing.T) {
	refreshed := time.Now().UTC()
	c := NewCollector(fakeSizer{size: 4096}, fakeTracker{stats: matches.TrackerStats{
		LiveCount:   3,
		LastRefresh: &refreshed,
	}})

	snap, err := c.SystemStatus(context.Background())
	if err != nil {
		t.Fatalf("SystemStatus failed: %v", err)
	}

	if snap.Status != "ok" {
		t.Errorf("expected status ok, got %q", snap.Status)
	}
	if snap.Upstream != "ok" {
		t.Errorf("expected upstream ok, got %q", snap.Upstream)
	}
	if snap.Version != Version {
		t.Errorf("expected version %q, got %q", Version, snap.Version)
	}
	if snap.DBSizeBytes != 4096 {
		t.Errorf("expected db size 4096, got %d", snap.DBSizeBytes)
	}
	if snap.LiveMatches != 3 {
		t.Errorf("expected 3 live matches, got %d", snap.LiveMatches)
	}
	if snap.LastRefresh == nil || !snap.LastRefresh.Equal(refreshed) {
		t.Errorf("unexpected LastRefresh %v", snap.LastRefresh)
	}
	if snap.Uptime == "" {
		t.Error("expected uptime string")
	}
}

func TestSystemStatus_UpstreamDown(t *testing.T) {
	c := NewCollector(fakeSizer{size: 1}, fakeTracker{stats: matches.TrackerStats{
		LastError: "feed api status 502: upstream exploded",
	}})

	snap, err := c.SystemStatus(context.Background())
	if err != nil {
		t.Fatalf("SystemStatus failed: %v", err)
	}
	if snap.Status != "degraded" {
		t.Errorf("expected status degraded, got %q", snap.Status)
	}
	if snap.Upstream != "unreachable" {
		t.Errorf("expected upstream unreachable, got %q", snap.Upstream)
	}
}

func TestSystemStatus_StoreError(t *testing.T) {
	c := NewCollector(fakeSizer{err: errors.New("DB down")}, fakeTracker{})

	if _, err := c.SystemStatus(context.Background()); err == nil {
		t.Fatal("expected error when store is unavailable")
	}
}

func TestFormatUptime(t *testing.T) {
	cases := []struct {
		in   time.Duration
		want string
	}{
		{90 * time.Second, "1m 30s"},
		{time.Hour + 5*time.Minute + time.Second, "1h 5m 1s"},
		{0, "0m 0s"},
	}
	for _, tc := range cases {
		if got := formatUptime(tc.in); got != tc.want {
			t.Errorf("formatUptime(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
