package notify

import (
	"context"
	"sync"

	"go.uber.org/zap"
	"skywarden.dev/weather-alert-service/pkg/common"
	"skywarden.dev/weather-alert-service/pkg/models"
	"skywarden.dev/weather-alert-service/pkg/observability"
)

const seenCap = 1000

// Dispatcher decides which alerts are worth pushing and fans them out over
// the configured channel. Only high-severity alerts are pushed, and each
// alert ID is pushed at most once while it remains in the dedupe window.
type Dispatcher struct {
	channel Channel
	metrics *observability.Metrics

	mu   sync.Mutex
	seen map[string]struct{}
}

func NewDispatcher(channel Channel, metrics *observability.Metrics) *Dispatcher {
	if channel == nil {
		channel = LogChannel{}
	}
	return &Dispatcher{
		channel: channel,
		metrics: metrics,
		seen:    make(map[string]struct{}),
	}
}

// MaybeNotifyWeather pushes SEVERE and HIGH weather alerts.
func (d *Dispatcher) MaybeNotifyWeather(ctx context.Context, alerts []models.Alert) {
	for _, a := range alerts {
		if a.Severity != models.SeveritySevere && a.Severity != models.SeverityHigh {
			continue
		}
		d.dispatch(ctx, Notification{
			AlertID:  a.ID,
			Title:    a.Title,
			Body:     a.Message,
			Severity: string(a.Severity),
			Data:     map[string]string{"type": string(a.Type)},
		})
	}
}

// MaybeNotifySeismic pushes critical and warning seismic alerts.
func (d *Dispatcher) MaybeNotifySeismic(ctx context.Context, alerts []models.SeismicAlert) {
	for _, a := range alerts {
		if a.Severity != models.SeismicCritical && a.Severity != models.SeismicWarning {
			continue
		}
		d.dispatch(ctx, Notification{
			AlertID:  a.ID,
			Title:    a.Title,
			Body:     a.UserMessage,
			Severity: string(a.Severity),
			Data:     map[string]string{"type": a.Type},
		})
	}
}

func (d *Dispatcher) dispatch(ctx context.Context, n Notification) {
	if !d.markSeen(n.AlertID) {
		return
	}

	logger := common.GetLoggerWith(
		common.LoggerNameNotify,
		zap.String(common.LoggerFieldAlertCategory, common.LoggerCategoryNotifyChannel),
	)

	if err := d.channel.Send(ctx, n); err != nil {
		logger.Warn("Notification delivery failed",
			zap.String("alert_id", n.AlertID),
			zap.String("channel", d.channel.Name()),
			zap.Error(err),
		)
		if d.metrics != nil {
			d.metrics.NotificationsSent.WithLabelValues(d.channel.Name(), "error").Inc()
		}
		return
	}

	if d.metrics != nil {
		d.metrics.NotificationsSent.WithLabelValues(d.channel.Name(), "success").Inc()
	}
}

// markSeen records the alert ID and reports whether it was new. The dedupe
// set is reset once it grows past seenCap.
func (d *Dispatcher) markSeen(id string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, ok := d.seen[id]; ok {
		return false
	}
	if len(d.seen) >= seenCap {
		d.seen = make(map[string]struct{})
	}
	d.seen[id] = struct{}{}
	return true
}
