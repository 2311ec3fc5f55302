package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/matchdeck/matchdeck/internal/api"
	"github.com/matchdeck/matchdeck/internal/config"
	"github.com/matchdeck/matchdeck/internal/db"
	"github.com/matchdeck/matchdeck/internal/logging"
	"github.com/matchdeck/matchdeck/internal/matches"
	"github.com/matchdeck/matchdeck/internal/notifications"
	"github.com/matchdeck/matchdeck/internal/status"
	"github.com/matchdeck/matchdeck/internal/upstream"
)

func main() {
	logger := logging.New("matchdeck")

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, err := db.NewStore(db.DBConfig{
		Type: db.Dialect(cfg.DBType),
		Path: cfg.DBPath,
		DSN:  cfg.DatabaseURL,
	})
	if err != nil {
		logger.Fatalf("init database: %v", err)
	}
	defer func() { _ = store.Close() }()

	var feedOpts []upstream.Option
	if cfg.UpstreamURL != "" {
		feedOpts = append(feedOpts, upstream.WithBaseURL(cfg.UpstreamURL))
	}
	feed := upstream.New(cfg.UpstreamAPIKey, feedOpts...)

	svc := matches.NewService(feed, store, cfg.CacheTTL)

	tracker := matches.NewTracker(feed, store, svc, cfg.PollInterval, logging.New("tracker"))
	if cfg.SlackWebhookURL != "" {
		notifier := notifications.NewService(notifications.NewSlackNotifier(cfg.SlackWebhookURL))
		notifier.Start()
		tracker.SetNotifier(notifier)
	}
	tracker.Start()
	defer tracker.Stop()

	collector := status.NewCollector(store, tracker)

	r := api.NewRouter(collector, svc, store, cfg)

	srv := &http.Server{
		Addr:    cfg.ListenAddr,
		Handler: r,
	}

	go func() {
		logger.Printf("starting server on %s", cfg.ListenAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("listen: %v", err)
		}
	}()

	<-ctx.Done()
	logger.Println("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Fatalf("server forced to shutdown: %v", err)
	}

	logger.Println("server exiting")
}
