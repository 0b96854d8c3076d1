package alerting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"skywarden.dev/weather-alert-service/pkg/common"
	"skywarden.dev/weather-alert-service/pkg/models"
	_ "skywarden.dev/weather-alert-service/pkg/testing"
)

// Tokyo, roughly 1160km from Seoul
const (
	seoulLat = 37.5665
	seoulLon = 126.9780
)

func eventAt(id string, mag, lat, lon, depth float64, tsunami bool) models.SeismicEvent {
	return models.SeismicEvent{
		ID:        id,
		Magnitude: mag,
		Place:     "10km NE of Somewhere",
		Latitude:  lat,
		Longitude: lon,
		DepthKm:   depth,
		Time:      time.Date(2026, 8, 1, 3, 0, 0, 0, time.UTC),
		Tsunami:   tsunami,
		URL:       "https://earthquake.usgs.gov/earthquakes/eventpage/" + id,
		Type:      "earthquake",
	}
}

func TestClassifyEarthquakesSeverity(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, core, _, _, _, _, _ := GetMockCoreWithMemorySqliteDialector(t, false, false, false, false, false)
	defer ctrl.Finish()

	// ~85km north of Seoul
	near := eventAt("us7000near", 7.2, 38.33, seoulLon, 20, false)
	alerts := core.Seismic.ClassifyEarthquakes([]models.SeismicEvent{near}, seoulLat, seoulLon, "GENERAL", 1000)
	assert.Len(t, alerts, 1)
	assert.Equal(t, models.SeismicCritical, alerts[0].Severity)
	assert.Equal(t, "eq_us7000near", alerts[0].ID)
	assert.Equal(t, models.SeismicKindEarthquake, alerts[0].Type)
	assert.Equal(t, "Magnitude 7.2 Earthquake", alerts[0].Title)

	// same magnitude ~170km away drops to warning
	far := eventAt("us7000far", 7.2, 39.10, seoulLon, 20, false)
	alerts = core.Seismic.ClassifyEarthquakes([]models.SeismicEvent{far}, seoulLat, seoulLon, "GENERAL", 1000)
	assert.Len(t, alerts, 1)
	assert.Equal(t, models.SeismicWarning, alerts[0].Severity)
}

func TestClassifyEarthquakesDistanceFilter(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, core, _, _, _, _, _ := GetMockCoreWithMemorySqliteDialector(t, false, false, false, false, false)
	defer ctrl.Finish()

	// m4.2 has a 50km impact radius; an event ~85km away only survives if
	// the caller's search radius covers it
	small := eventAt("us7000small", 4.2, 38.33, seoulLon, 10, false)

	alerts := core.Seismic.ClassifyEarthquakes([]models.SeismicEvent{small}, seoulLat, seoulLon, "GENERAL", 50)
	assert.Len(t, alerts, 0)

	alerts = core.Seismic.ClassifyEarthquakes([]models.SeismicEvent{small}, seoulLat, seoulLon, "GENERAL", 200)
	assert.Len(t, alerts, 1)
}

func TestClassifyEarthquakesSortedByDistance(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, core, _, _, _, _, _ := GetMockCoreWithMemorySqliteDialector(t, false, false, false, false, false)
	defer ctrl.Finish()

	events := []models.SeismicEvent{
		eventAt("us7000b", 6.0, 39.10, seoulLon, 20, false), // ~170km
		eventAt("us7000a", 6.0, 38.33, seoulLon, 20, false), // ~85km
	}

	alerts := core.Seismic.ClassifyEarthquakes(events, seoulLat, seoulLon, "GENERAL", 1000)
	assert.Len(t, alerts, 2)
	assert.Equal(t, "eq_us7000a", alerts[0].ID)
	assert.Equal(t, "eq_us7000b", alerts[1].ID)
	assert.Less(t, alerts[0].DistanceKm, alerts[1].DistanceKm)
}

func TestClassifyEarthquakesAdviceByUserType(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, core, _, _, _, _, _ := GetMockCoreWithMemorySqliteDialector(t, false, false, false, false, false)
	defer ctrl.Finish()

	near := eventAt("us7000adv", 7.2, 38.33, seoulLon, 20, false)

	alerts := core.Seismic.ClassifyEarthquakes([]models.SeismicEvent{near}, seoulLat, seoulLon, "STUDENT", 1000)
	assert.Len(t, alerts, 1)
	assert.Contains(t, alerts[0].UserMessage, "Follow your school's earthquake drill procedures.")

	// unrecognized user types fall back to GENERAL advice
	alerts = core.Seismic.ClassifyEarthquakes([]models.SeismicEvent{near}, seoulLat, seoulLon, "ASTRONAUT", 1000)
	assert.Len(t, alerts, 1)
	assert.Contains(t, alerts[0].UserMessage, "DROP, COVER, and HOLD ON!")
	assert.Equal(t, "ASTRONAUT", alerts[0].UserType)
}

func TestClassifyEarthquakesMetadata(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, core, _, _, _, _, _ := GetMockCoreWithMemorySqliteDialector(t, false, false, false, false, false)
	defer ctrl.Finish()

	ev := eventAt("us7000meta", 6.1, 38.33, seoulLon, 35, true)
	ev.FeltReports = 120

	alerts := core.Seismic.ClassifyEarthquakes([]models.SeismicEvent{ev}, seoulLat, seoulLon, "GENERAL", 1000)
	assert.Len(t, alerts, 1)
	assert.Equal(t, 6.1, alerts[0].Metadata["magnitude"])
	assert.Equal(t, 35.0, alerts[0].Metadata["depth_km"])
	assert.Equal(t, 120, alerts[0].Metadata["felt_reports"])
	assert.Equal(t, true, alerts[0].Metadata["tsunami_potential"])
	assert.Equal(t, "USGS", alerts[0].Source)
	assert.Equal(t, ev.URL, alerts[0].SourceURL)
}

func TestClassifyTsunamisFiltering(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, core, _, _, _, _, _ := GetMockCoreWithMemorySqliteDialector(t, false, false, false, false, false)
	defer ctrl.Finish()

	events := []models.SeismicEvent{
		eventAt("us7000nflag", 7.5, 38.33, seoulLon, 20, false), // no tsunami flag
		eventAt("us7000weak", 5.8, 38.33, seoulLon, 20, true),   // flagged but below 6.0
		eventAt("us7000hit", 7.8, 38.33, seoulLon, 20, true),
	}

	alerts := core.Seismic.ClassifyTsunamis(events, seoulLat, seoulLon, "GENERAL", 1000)
	assert.Len(t, alerts, 1)
	assert.Equal(t, "tsunami_us7000hit", alerts[0].ID)
	assert.Equal(t, models.SeismicKindTsunami, alerts[0].Type)
	// m7.5+ within 300km is critical on a coast
	assert.Equal(t, models.SeismicCritical, alerts[0].Severity)
}

func TestClassifyTsunamisArrivalEstimate(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, core, _, _, _, _, _ := GetMockCoreWithMemorySqliteDialector(t, false, false, false, false, false)
	defer ctrl.Finish()

	// ~85km away: arrival minutes surface in the message and metadata
	near := eventAt("us7000tnear", 7.8, 38.33, seoulLon, 20, true)
	alerts := core.Seismic.ClassifyTsunamis([]models.SeismicEvent{near}, seoulLat, seoulLon, "GENERAL", 1000)
	assert.Len(t, alerts, 1)
	assert.Contains(t, alerts[0].UserMessage, "Tsunami waves may arrive in approximately")
	assert.NotNil(t, alerts[0].Metadata["estimated_arrival_minutes"])

	// ~890km away: no arrival estimate, distance instead
	far := eventAt("us7000tfar", 7.8, 45.57, seoulLon, 20, true)
	alerts = core.Seismic.ClassifyTsunamis([]models.SeismicEvent{far}, seoulLat, seoulLon, "GENERAL", 1000)
	assert.Len(t, alerts, 1)
	assert.Contains(t, alerts[0].UserMessage, "Tsunami waves possible.")
	assert.Nil(t, alerts[0].Metadata["estimated_arrival_minutes"])
}

func TestClassifyTsunamisInlandLocation(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, core, _, _, _, _, _ := GetMockCoreWithMemorySqliteDialector(t, false, false, false, false, false)
	defer ctrl.Finish()

	core.Coastal = func(lat, lon float64) bool { return false }

	ev := eventAt("us7000inland", 8.2, 38.33, seoulLon, 20, true)
	alerts := core.Seismic.ClassifyTsunamis([]models.SeismicEvent{ev}, seoulLat, seoulLon, "GENERAL", 1000)
	assert.Len(t, alerts, 1)
	assert.Equal(t, models.SeismicInfo, alerts[0].Severity)
	assert.Equal(t, false, alerts[0].Metadata["is_coastal_area"])
}

func TestClassifyTsunamisSortOrder(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, core, _, _, _, _, _ := GetMockCoreWithMemorySqliteDialector(t, false, false, false, false, false)
	defer ctrl.Finish()

	events := []models.SeismicEvent{
		eventAt("us7000wnear", 6.8, 38.33, seoulLon, 20, true), // warning, ~85km
		eventAt("us7000crit", 8.2, 39.10, seoulLon, 20, true),  // critical, ~170km
		eventAt("us7000wfar", 6.8, 39.10, seoulLon, 20, true),  // warning, ~170km
	}

	alerts := core.Seismic.ClassifyTsunamis(events, seoulLat, seoulLon, "GENERAL", 1000)
	assert.Len(t, alerts, 3)
	// critical first; within the warning tier the farther event leads
	assert.Equal(t, "tsunami_us7000crit", alerts[0].ID)
	assert.Equal(t, "tsunami_us7000wfar", alerts[1].ID)
	assert.Equal(t, "tsunami_us7000wnear", alerts[2].ID)
}
