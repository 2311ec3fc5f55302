package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	ListenAddr string

	// DBType selects the store dialect: "sqlite" (default) or "postgres".
	DBType      string
	DBPath      string // sqlite file path
	DatabaseURL string // postgres DSN, required when DBType is "postgres"

	// Upstream match feed.
	UpstreamURL    string
	UpstreamAPIKey string

	PollInterval time.Duration // tracker refresh interval
	CacheTTL     time.Duration // live match cache lifetime

	// SlackWebhookURL enables Slack notifications for match transitions
	// when set.
	SlackWebhookURL string

	// TrustProxy enables X-Forwarded-For handling. Only set this when the
	// service sits behind a reverse proxy you control, otherwise clients can
	// spoof their IP and dodge rate limiting.
	TrustProxy bool
	EnableHSTS bool
}

func Default() Config {
	return Config{
		ListenAddr:   ":9210",
		DBType:       "sqlite",
		DBPath:       "matchdeck.db",
		PollInterval: 15 * time.Second,
		CacheTTL:     10 * time.Second,
	}
}

func Load() (*Config, error) {
	cfg := Default()

	if listen := os.Getenv("LISTEN_ADDR"); listen != "" {
		cfg.ListenAddr = listen
	}

	if dbType := os.Getenv("DB_TYPE"); dbType != "" {
		cfg.DBType = dbType
	}
	if dbPath := os.Getenv("DB_PATH"); dbPath != "" {
		cfg.DBPath = dbPath
	}
	cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	if cfg.DBType == "postgres" && cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DB_TYPE=postgres requires DATABASE_URL")
	}

	cfg.UpstreamURL = os.Getenv("UPSTREAM_URL")
	cfg.UpstreamAPIKey = os.Getenv("UPSTREAM_API_KEY")

	if v := os.Getenv("POLL_INTERVAL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid POLL_INTERVAL %q: %w", v, err)
		}
		cfg.PollInterval = d
	}
	if v := os.Getenv("CACHE_TTL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid CACHE_TTL %q: %w", v, err)
		}
		cfg.CacheTTL = d
	}

	cfg.SlackWebhookURL = os.Getenv("SLACK_WEBHOOK_URL")

	cfg.TrustProxy = boolEnv("TRUST_PROXY")
	cfg.EnableHSTS = boolEnv("ENABLE_HSTS")

	return &cfg, nil
}

func boolEnv(key string) bool {
	b, _ := strconv.ParseBool(os.Getenv(key))
	return b
}
