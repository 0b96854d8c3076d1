package alerting

import (
	"time"

	"github.com/jonboulle/clockwork"
	"skywarden.dev/weather-alert-service/pkg/db"
	"skywarden.dev/weather-alert-service/pkg/models"
)

type IEngine interface {
	CheckAlerts(
		forecast []models.ForecastPoint,
		currentTemp, currentHumidity, currentWind float64,
		userType string,
		thresholds *models.ThresholdSet,
	) []models.Alert
}

type ISeismic interface {
	ClassifyEarthquakes(events []models.SeismicEvent, lat, lon float64, userType string, maxDistanceKm float64) []models.SeismicAlert
	ClassifyTsunamis(events []models.SeismicEvent, lat, lon float64, userType string, maxDistanceKm float64) []models.SeismicAlert
}

type IHistory interface {
	StoreAlerts(alerts []models.Alert) error
	RecentAlerts(limit int) ([]models.Alert, error)
	DismissAlert(alertID string) error
}

type IPreference interface {
	UpsertPreferences(userID string, input *models.UserPreferences) error
	GetPreferences(userID string) (*models.UserPreferences, error)
	DeletePreferences(userID string) error
}

type IToken interface {
	RegisterToken(userID, token, platform string) (int, error)
	GetTokens(userID string) ([]string, error)
	RemoveToken(userID, token string) (bool, error)
}

// CoastalResolver reports whether a location is close enough to a coastline
// for tsunami waves to matter. The default resolver treats every location as
// coastal; a real coastline lookup can be swapped in without touching the
// classifier.
type CoastalResolver func(lat, lon float64) bool

type Core struct {
	Db      db.DB
	Clock   clockwork.Clock
	Coastal CoastalResolver

	Engine     IEngine
	Seismic    ISeismic
	History    IHistory
	Preference IPreference
	Token      IToken
}

type ServiceOpts struct {
	Engine     IEngine
	Seismic    ISeismic
	History    IHistory
	Preference IPreference
	Token      IToken
}

func (c *Core) WithServices(opts ServiceOpts) *Core {
	if opts.Engine != nil {
		c.Engine = opts.Engine
	}
	if opts.Seismic != nil {
		c.Seismic = opts.Seismic
	}
	if opts.History != nil {
		c.History = opts.History
	}
	if opts.Preference != nil {
		c.Preference = opts.Preference
	}
	if opts.Token != nil {
		c.Token = opts.Token
	}
	return c
}

func (c *Core) clock() clockwork.Clock {
	if c.Clock == nil {
		c.Clock = clockwork.NewRealClock()
	}
	return c.Clock
}

// Now is the core's observed time, from the injected clock.
func (c *Core) Now() time.Time {
	return c.clock().Now()
}

func (c *Core) coastal() CoastalResolver {
	if c.Coastal == nil {
		return func(lat, lon float64) bool { return true }
	}
	return c.Coastal
}
