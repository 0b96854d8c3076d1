package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"
	"skywarden.dev/weather-alert-service/pkg/common"
	"skywarden.dev/weather-alert-service/pkg/models"
	"skywarden.dev/weather-alert-service/pkg/observability"
)

const (
	DefaultUSGSBaseURL = "https://earthquake.usgs.gov/earthquakes/feed/v1.0/summary"

	usgsFeed45Day  = "4.5_day.geojson"
	usgsFeedAllDay = "all_day.geojson"

	// events below this magnitude or older than this never produce alerts
	usgsMinAlertMagnitude = 4.0
	usgsMaxEventAge       = 24 * time.Hour
)

type USGSOpts struct {
	BaseURL string
	Clock   clockwork.Clock
	Metrics *observability.Metrics
	Client  *http.Client
}

// USGS fetches recent earthquakes from the USGS GeoJSON summary feeds and
// normalizes them to SeismicEvent records.
type USGS struct {
	opts USGSOpts
}

func NewUSGS(opts USGSOpts) *USGS {
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultUSGSBaseURL
	}
	if opts.Clock == nil {
		opts.Clock = clockwork.NewRealClock()
	}
	if opts.Client == nil {
		opts.Client = &http.Client{Timeout: 10 * time.Second}
	}
	return &USGS{opts: opts}
}

type usgsFeature struct {
	ID         string `json:"id"`
	Properties struct {
		Mag     *float64 `json:"mag"`
		Place   string   `json:"place"`
		Time    int64    `json:"time"` // unix ms
		Felt    *int     `json:"felt"`
		Tsunami int      `json:"tsunami"`
		URL     string   `json:"url"`
		Type    string   `json:"type"`
	} `json:"properties"`
	Geometry struct {
		Coordinates []float64 `json:"coordinates"` // lon, lat, depth
	} `json:"geometry"`
}

type usgsResponse struct {
	Features []usgsFeature `json:"features"`
}

// FetchEarthquakes returns recent events worth alerting on. The 4.5+ feed is
// used when the caller's threshold allows it, the all-magnitudes feed
// otherwise. Events below magnitude 4.0, older than 24 hours, or not of type
// "earthquake" (quarry blasts, explosions) are dropped.
func (u *USGS) FetchEarthquakes(ctx context.Context, minMagnitude float64) ([]models.SeismicEvent, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameProvider,
		zap.String(common.LoggerFieldAlertCategory, common.LoggerCategorySeismicFetch),
	)

	feed := usgsFeedAllDay
	if minMagnitude >= 4.5 {
		feed = usgsFeed45Day
	}

	start := u.opts.Clock.Now()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.opts.BaseURL+"/"+feed, nil)
	if err != nil {
		return nil, err
	}

	resp, err := u.opts.Client.Do(req)
	if u.opts.Metrics != nil {
		u.opts.Metrics.ProviderDuration.WithLabelValues("usgs").Observe(u.opts.Clock.Since(start).Seconds())
	}
	if err != nil {
		u.countRequest("error")
		return nil, fmt.Errorf("fetch usgs feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		u.countRequest("error")
		return nil, fmt.Errorf("usgs returned status %d", resp.StatusCode)
	}

	var raw usgsResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		u.countRequest("error")
		return nil, fmt.Errorf("decode usgs response: %w", err)
	}
	u.countRequest("success")

	now := u.opts.Clock.Now()
	events := make([]models.SeismicEvent, 0, len(raw.Features))
	for _, f := range raw.Features {
		if len(f.Geometry.Coordinates) < 2 {
			continue
		}
		ev := models.SeismicEvent{
			ID:        f.ID,
			Place:     f.Properties.Place,
			Longitude: f.Geometry.Coordinates[0],
			Latitude:  f.Geometry.Coordinates[1],
			Time:      time.UnixMilli(f.Properties.Time),
			Tsunami:   f.Properties.Tsunami == 1,
			URL:       f.Properties.URL,
			Type:      f.Properties.Type,
		}
		if f.Properties.Mag != nil {
			ev.Magnitude = *f.Properties.Mag
		}
		if len(f.Geometry.Coordinates) > 2 {
			ev.DepthKm = f.Geometry.Coordinates[2]
		}
		if f.Properties.Felt != nil {
			ev.FeltReports = *f.Properties.Felt
		}

		if u.isRelevant(ev, now) {
			events = append(events, ev)
		}
	}

	logger.Info("Fetched relevant earthquakes", zap.Int("count", len(events)), zap.String("feed", feed))
	return events, nil
}

func (u *USGS) isRelevant(ev models.SeismicEvent, now time.Time) bool {
	if ev.Magnitude < usgsMinAlertMagnitude {
		return false
	}
	if now.Sub(ev.Time) > usgsMaxEventAge {
		return false
	}
	return strings.ToLower(ev.Type) == "earthquake"
}

func (u *USGS) countRequest(outcome string) {
	if u.opts.Metrics != nil {
		u.opts.Metrics.ProviderRequests.WithLabelValues("usgs", outcome).Inc()
	}
}
