package models

import "time"

// SeismicSeverity is the three-level seismic classification (critical >
// warning > info). Serialized lowercase; distinct from the weather Severity
// vocabulary.
type SeismicSeverity string

const (
	SeismicCritical SeismicSeverity = "critical"
	SeismicWarning  SeismicSeverity = "warning"
	SeismicInfo     SeismicSeverity = "info"
)

func (s SeismicSeverity) Rank() int {
	switch s {
	case SeismicCritical:
		return 3
	case SeismicWarning:
		return 2
	case SeismicInfo:
		return 1
	default:
		return 0
	}
}

const (
	SeismicKindEarthquake = "earthquake"
	SeismicKindTsunami    = "tsunami"
)

// SeismicEvent is a normalized provider event record, read-only to the
// classifier.
type SeismicEvent struct {
	ID          string    `json:"id"`
	Magnitude   float64   `json:"magnitude"`
	Place       string    `json:"place"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	DepthKm     float64   `json:"depth_km"`
	Time        time.Time `json:"time"`
	FeltReports int       `json:"felt_reports"`
	Tsunami     bool      `json:"tsunami"`
	URL         string    `json:"url"`
	Type        string    `json:"type"`
}

type EpicenterLocation struct {
	Description string  `json:"description"`
	Lat         float64 `json:"lat"`
	Lon         float64 `json:"lon"`
}

// SeismicAlert is created fresh per request; never persisted by the core.
type SeismicAlert struct {
	ID          string            `json:"id"`
	Type        string            `json:"type"`
	Severity    SeismicSeverity   `json:"severity"`
	Title       string            `json:"title"`
	Message     string            `json:"message"`
	UserMessage string            `json:"user_message"`
	Location    EpicenterLocation `json:"location"`
	DistanceKm  float64           `json:"distance_km"`
	EventTime   time.Time         `json:"event_time"`
	Metadata    map[string]any    `json:"metadata"`
	Source      string            `json:"source"`
	SourceURL   string            `json:"source_url"`
	UserType    string            `json:"user_type"`
}
