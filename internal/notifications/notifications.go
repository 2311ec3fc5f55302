package notifications

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"
)

// EventType defines the type of event that occurred
type EventType string

const (
	EventMatchStarted  EventType = "match_started"
	EventMatchFinished EventType = "match_finished"
	EventFeedDown      EventType = "feed_down"
)

// Event represents the data needed to send a notification
type Event struct {
	MatchID string
	Type    EventType
	Message string
	Time    time.Time
}

// Notifier interfaces for different notification providers
type Notifier interface {
	Send(event Event) error
}

// Service manages the notification queue and dispatching
type Service struct {
	notifiers []Notifier
	queue     chan Event
}

func NewService(notifiers ...Notifier) *Service {
	return &Service{
		notifiers: notifiers,
		queue:     make(chan Event, 100),
	}
}

func (s *Service) Start() {
	go s.worker()
}

func (s *Service) worker() {
	for event := range s.queue {
		s.dispatch(event)
	}
}

func (s *Service) dispatch(event Event) {
	for _, n := range s.notifiers {
		if err := n.Send(event); err != nil {
			log.Printf("Failed to send notification for %s: %v", event.MatchID, err)
		}
	}
}

func (s *Service) Enqueue(event Event) {
	select {
	case s.queue <- event:
	default:
		log.Printf("Notification queue full, dropping event for %s", event.MatchID)
	}
}

// SlackNotifier posts match events to a Slack incoming webhook.
type SlackNotifier struct {
	webhookURL string
	client     *http.Client
}

func NewSlackNotifier(webhookURL string) *SlackNotifier {
	return &SlackNotifier{
		webhookURL: webhookURL,
		client:     &http.Client{Timeout: 10 * time.Second},
	}
}

func (n *SlackNotifier) Send(event Event) error {
	if n.webhookURL == "" {
		return fmt.Errorf("webhook url missing")
	}

	color := "#36a64f" // Green
	switch event.Type {
	case EventMatchFinished:
		color = "#6c757d" // Gray
	case EventFeedDown:
		color = "#dc3545" // Red
	}

	title := "Match Started"
	switch event.Type {
	case EventMatchFinished:
		title = "Match Finished"
	case EventFeedDown:
		title = "Match Feed Unreachable"
	}

	payload := map[string]interface{}{
		"text": "*" + title + "*",
		"attachments": []map[string]interface{}{
			{
				"color": color,
				"text":  event.Message,
				"ts":    event.Time.Unix(),
			},
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	resp, err := n.client.Post(n.webhookURL, "application/json", bytes.NewReader(body))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("slack webhook returned %d", resp.StatusCode)
	}
	return nil
}
