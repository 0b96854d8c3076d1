package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
	"skywarden.dev/weather-alert-service/pkg/common"
)

// Notification is the channel-agnostic payload pushed to subscribers when a
// high-severity alert is produced.
type Notification struct {
	AlertID  string            `json:"alert_id"`
	Title    string            `json:"title"`
	Body     string            `json:"body"`
	Severity string            `json:"severity"`
	Data     map[string]string `json:"data,omitempty"`
}

// Channel delivers a notification over one transport.
type Channel interface {
	Name() string
	Send(ctx context.Context, n Notification) error
}

// LogChannel writes notifications to the service log. It is the default
// channel when no webhook is configured.
type LogChannel struct{}

func (LogChannel) Name() string { return "log" }

func (LogChannel) Send(_ context.Context, n Notification) error {
	common.GetLoggerWith(
		common.LoggerNameNotify,
		zap.String(common.LoggerFieldAlertCategory, common.LoggerCategoryNotifyChannel),
	).Info("Notification",
		zap.String("alert_id", n.AlertID),
		zap.String("severity", n.Severity),
		zap.String("title", n.Title),
	)
	return nil
}

// WebhookChannel POSTs the notification as JSON to a configured endpoint.
type WebhookChannel struct {
	URL    string
	Client *http.Client
}

func NewWebhookChannel(url string) *WebhookChannel {
	return &WebhookChannel{
		URL:    url,
		Client: &http.Client{Timeout: 10 * time.Second},
	}
}

func (w *WebhookChannel) Name() string { return "webhook" }

func (w *WebhookChannel) Send(ctx context.Context, n Notification) error {
	body, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("marshal notification: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.URL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := w.Client.Do(req)
	if err != nil {
		return fmt.Errorf("post webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("webhook returned status %d", resp.StatusCode)
	}
	return nil
}

// Multi fans a notification out to every wrapped channel and returns the
// first error after all sends have been attempted.
type Multi struct {
	Channels []Channel
}

func (m *Multi) Name() string { return "multi" }

func (m *Multi) Send(ctx context.Context, n Notification) error {
	var firstErr error
	for _, ch := range m.Channels {
		if err := ch.Send(ctx, n); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("%s: %w", ch.Name(), err)
		}
	}
	return firstErr
}
