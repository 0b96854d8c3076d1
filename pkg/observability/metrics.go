package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters and histograms for the alert service.
type Metrics struct {
	ProviderRequests *prometheus.CounterVec   // labels: provider={openweather,usgs}, outcome={success,error}
	ProviderDuration *prometheus.HistogramVec // labels: provider={openweather,usgs}
	CacheLookups     *prometheus.CounterVec   // labels: kind={current,forecast,seismic}, result={hit,miss}

	AlertsGenerated   *prometheus.CounterVec // labels: type (HEATWAVE, STORM, ...)
	SeismicAlerts     *prometheus.CounterVec // labels: kind={earthquake,tsunami}
	NotificationsSent *prometheus.CounterVec // labels: channel, outcome={success,error}
}

// NewMetrics creates and registers all service metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		ProviderRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "weather_alert",
			Name:      "provider_requests_total",
			Help:      "Upstream provider requests by provider and outcome.",
		}, []string{"provider", "outcome"}),
		ProviderDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "weather_alert",
			Name:      "provider_request_duration_seconds",
			Help:      "Upstream provider request duration in seconds.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}, []string{"provider"}),
		CacheLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "weather_alert",
			Name:      "cache_lookups_total",
			Help:      "Cache lookups by payload kind and result.",
		}, []string{"kind", "result"}),
		AlertsGenerated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "weather_alert",
			Name:      "alerts_generated_total",
			Help:      "Weather alerts emitted by the detection engine, by type.",
		}, []string{"type"}),
		SeismicAlerts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "weather_alert",
			Name:      "seismic_alerts_total",
			Help:      "Seismic alerts produced by the classifier, by kind.",
		}, []string{"kind"}),
		NotificationsSent: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "weather_alert",
			Name:      "notifications_sent_total",
			Help:      "Push notification deliveries by channel and outcome.",
		}, []string{"channel", "outcome"}),
	}

	prometheus.MustRegister(
		m.ProviderRequests,
		m.ProviderDuration,
		m.CacheLookups,
		m.AlertsGenerated,
		m.SeismicAlerts,
		m.NotificationsSent,
	)

	return m
}

// NewMetricsForTesting creates Metrics with a fresh registry to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		ProviderRequests:  prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "weather_alert", Name: "provider_requests_total"}, []string{"provider", "outcome"}),
		ProviderDuration:  prometheus.NewHistogramVec(prometheus.HistogramOpts{Namespace: "weather_alert", Name: "provider_request_duration_seconds"}, []string{"provider"}),
		CacheLookups:      prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "weather_alert", Name: "cache_lookups_total"}, []string{"kind", "result"}),
		AlertsGenerated:   prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "weather_alert", Name: "alerts_generated_total"}, []string{"type"}),
		SeismicAlerts:     prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "weather_alert", Name: "seismic_alerts_total"}, []string{"kind"}),
		NotificationsSent: prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "weather_alert", Name: "notifications_sent_total"}, []string{"channel", "outcome"}),
	}
}
