package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"
	"skywarden.dev/weather-alert-service/pkg/alerting"
	"skywarden.dev/weather-alert-service/pkg/cache"
	"skywarden.dev/weather-alert-service/pkg/common"
	"skywarden.dev/weather-alert-service/pkg/models"
	"skywarden.dev/weather-alert-service/pkg/observability"
)

const (
	DefaultOpenWeatherBaseURL = "https://api.openweathermap.org/data/2.5"
	DefaultOpenWeatherGeoURL  = "http://api.openweathermap.org/geo/1.0"

	// forecast endpoint returns one point per 3 hours, capped at 5 days
	forecastPointsPerDay = 8
	forecastMaxPoints    = 40
)

type OpenWeatherOpts struct {
	BaseURL     string
	GeoURL      string
	APIKey      string
	TTLCurrent  time.Duration
	TTLForecast time.Duration
	Cache       *cache.Cache
	Clock       clockwork.Clock
	Metrics     *observability.Metrics
	Client      *http.Client
}

// OpenWeather fetches current conditions and forecasts from the
// OpenWeatherMap API and normalizes them to metric units (°C, km/h, km, mm).
type OpenWeather struct {
	opts OpenWeatherOpts
}

func NewOpenWeather(opts OpenWeatherOpts) *OpenWeather {
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultOpenWeatherBaseURL
	}
	if opts.GeoURL == "" {
		opts.GeoURL = DefaultOpenWeatherGeoURL
	}
	if opts.TTLCurrent == 0 {
		opts.TTLCurrent = 5 * time.Minute
	}
	if opts.TTLForecast == 0 {
		opts.TTLForecast = 30 * time.Minute
	}
	if opts.Clock == nil {
		opts.Clock = clockwork.NewRealClock()
	}
	if opts.Cache == nil {
		opts.Cache = cache.New(opts.Clock)
	}
	if opts.Client == nil {
		opts.Client = &http.Client{Timeout: 10 * time.Second}
	}
	return &OpenWeather{opts: opts}
}

// raw response shapes, subset of the OpenWeatherMap payloads

type owmWeatherDesc struct {
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

type owmMain struct {
	Temp      float64 `json:"temp"`
	FeelsLike float64 `json:"feels_like"`
	Humidity  int     `json:"humidity"`
	Pressure  int     `json:"pressure"`
}

type owmCurrentResponse struct {
	Name  string `json:"name"`
	Coord struct {
		Lat float64 `json:"lat"`
		Lon float64 `json:"lon"`
	} `json:"coord"`
	Sys struct {
		Country string `json:"country"`
		Sunrise int64  `json:"sunrise"`
		Sunset  int64  `json:"sunset"`
	} `json:"sys"`
	Main owmMain `json:"main"`
	Wind struct {
		Speed float64 `json:"speed"`
		Deg   int     `json:"deg"`
	} `json:"wind"`
	Visibility *int             `json:"visibility"`
	Weather    []owmWeatherDesc `json:"weather"`
}

type owmForecastItem struct {
	Dt   int64   `json:"dt"`
	Main owmMain `json:"main"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
	Rain struct {
		ThreeHours float64 `json:"3h"`
	} `json:"rain"`
	Weather []owmWeatherDesc `json:"weather"`
}

type owmForecastResponse struct {
	City struct {
		Name    string `json:"name"`
		Country string `json:"country"`
		Coord   struct {
			Lat float64 `json:"lat"`
			Lon float64 `json:"lon"`
		} `json:"coord"`
	} `json:"city"`
	List []owmForecastItem `json:"list"`
}

type owmGeoEntry struct {
	Name string `json:"name"`
}

func (o *OpenWeather) CurrentWeather(ctx context.Context, lat, lon float64, city string) (*models.WeatherData, error) {
	var cacheKey string
	if city != "" {
		cacheKey = fmt.Sprintf("current_weather_city_%s", city)
	} else {
		cacheKey = fmt.Sprintf("current_weather_%v_%v", lat, lon)
	}
	if cached, ok := o.opts.Cache.Get(cacheKey); ok {
		o.countCache("current", "hit")
		return cached.(*models.WeatherData), nil
	}
	o.countCache("current", "miss")

	params := url.Values{}
	params.Set("appid", o.opts.APIKey)
	params.Set("units", "metric")
	if city != "" {
		params.Set("q", city)
	} else {
		params.Set("lat", fmt.Sprintf("%v", lat))
		params.Set("lon", fmt.Sprintf("%v", lon))
	}

	var raw owmCurrentResponse
	if err := o.getJSON(ctx, o.opts.BaseURL+"/weather", params, &raw); err != nil {
		return nil, fmt.Errorf("fetch current weather: %w", err)
	}

	// coordinate lookups get a more precise name via reverse geocoding;
	// failures fall back to the name in the weather payload
	if city == "" {
		if name := o.reverseGeocode(ctx, lat, lon); name != "" {
			raw.Name = name
		}
	}

	data := o.normalizeCurrent(raw)
	o.opts.Cache.Set(cacheKey, data, o.opts.TTLCurrent)
	return data, nil
}

func (o *OpenWeather) DailyForecast(ctx context.Context, lat, lon float64, days int) (*models.DailyForecastResponse, error) {
	cacheKey := fmt.Sprintf("daily_forecast_%v_%v_%d", lat, lon, days)
	if cached, ok := o.opts.Cache.Get(cacheKey); ok {
		o.countCache("forecast", "hit")
		return cached.(*models.DailyForecastResponse), nil
	}
	o.countCache("forecast", "miss")

	params := url.Values{}
	params.Set("appid", o.opts.APIKey)
	params.Set("units", "metric")
	params.Set("lat", fmt.Sprintf("%v", lat))
	params.Set("lon", fmt.Sprintf("%v", lon))
	params.Set("cnt", fmt.Sprintf("%d", days*forecastPointsPerDay))

	var raw owmForecastResponse
	if err := o.getJSON(ctx, o.opts.BaseURL+"/forecast", params, &raw); err != nil {
		return nil, fmt.Errorf("fetch daily forecast: %w", err)
	}

	resp := o.normalizeDaily(raw, days)
	o.opts.Cache.Set(cacheKey, resp, o.opts.TTLForecast)
	return resp, nil
}

func (o *OpenWeather) HourlyForecast(ctx context.Context, lat, lon float64, hours int) (*models.HourlyForecastResponse, error) {
	cacheKey := fmt.Sprintf("hourly_forecast_%v_%v_%d", lat, lon, hours)
	if cached, ok := o.opts.Cache.Get(cacheKey); ok {
		o.countCache("forecast", "hit")
		return cached.(*models.HourlyForecastResponse), nil
	}
	o.countCache("forecast", "miss")

	cnt := hours / 3
	if cnt > forecastMaxPoints {
		cnt = forecastMaxPoints
	}

	params := url.Values{}
	params.Set("appid", o.opts.APIKey)
	params.Set("units", "metric")
	params.Set("lat", fmt.Sprintf("%v", lat))
	params.Set("lon", fmt.Sprintf("%v", lon))
	params.Set("cnt", fmt.Sprintf("%d", cnt))

	var raw owmForecastResponse
	if err := o.getJSON(ctx, o.opts.BaseURL+"/forecast", params, &raw); err != nil {
		return nil, fmt.Errorf("fetch hourly forecast: %w", err)
	}

	resp := o.normalizeHourly(raw, hours)
	o.opts.Cache.Set(cacheKey, resp, o.opts.TTLForecast)
	return resp, nil
}

func (o *OpenWeather) normalizeCurrent(raw owmCurrentResponse) *models.WeatherData {
	visibilityM := 10000
	if raw.Visibility != nil {
		visibilityM = *raw.Visibility
	}
	condition, icon := "", ""
	if len(raw.Weather) > 0 {
		condition = titleCase(raw.Weather[0].Description)
		icon = raw.Weather[0].Icon
	}

	current := models.CurrentWeather{
		Temperature:   raw.Main.Temp,
		FeelsLike:     raw.Main.FeelsLike,
		Humidity:      raw.Main.Humidity,
		Pressure:      raw.Main.Pressure,
		WindSpeed:     raw.Wind.Speed * 3.6,
		WindDirection: raw.Wind.Deg,
		Visibility:    float64(visibilityM) / 1000,
		Condition:     condition,
		Icon:          icon,
		Sunrise:       raw.Sys.Sunrise,
		Sunset:        raw.Sys.Sunset,
		Timestamp:     o.opts.Clock.Now(),
	}

	snap := current.Snapshot()
	score := alerting.RiskScore(snap.Temperature, snap.Precipitation, snap.WindSpeed, snap.Humidity, snap.Visibility)

	return &models.WeatherData{
		Location: models.Location{
			City:    raw.Name,
			Country: raw.Sys.Country,
			Lat:     raw.Coord.Lat,
			Lon:     raw.Coord.Lon,
		},
		Current:   current,
		RiskScore: roundTo2(score),
		RiskLevel: alerting.RiskLevel(score),
	}
}

func (o *OpenWeather) normalizeDaily(raw owmForecastResponse, days int) *models.DailyForecastResponse {
	type dayAccum struct {
		temps      []float64
		conditions []string
		icons      []string
		precip     float64
		humidity   []int
		windSpeeds []float64
	}

	items := raw.List
	if limit := days * forecastPointsPerDay; len(items) > limit {
		items = items[:limit]
	}

	var order []string
	byDay := map[string]*dayAccum{}
	for _, item := range items {
		date := time.Unix(item.Dt, 0).Format("2006-01-02")
		acc, ok := byDay[date]
		if !ok {
			acc = &dayAccum{}
			byDay[date] = acc
			order = append(order, date)
		}
		condition, icon := "", ""
		if len(item.Weather) > 0 {
			condition = item.Weather[0].Description
			icon = item.Weather[0].Icon
		}
		acc.temps = append(acc.temps, item.Main.Temp)
		acc.conditions = append(acc.conditions, condition)
		acc.icons = append(acc.icons, icon)
		acc.precip += item.Rain.ThreeHours
		acc.humidity = append(acc.humidity, item.Main.Humidity)
		acc.windSpeeds = append(acc.windSpeeds, item.Wind.Speed*3.6)
	}

	if len(order) > days {
		order = order[:days]
	}

	forecasts := make([]models.DailyForecast, 0, len(order))
	for _, date := range order {
		acc := byDay[date]

		tempMax, tempMin := acc.temps[0], acc.temps[0]
		for _, t := range acc.temps[1:] {
			if t > tempMax {
				tempMax = t
			}
			if t < tempMin {
				tempMin = t
			}
		}

		humiditySum := 0
		for _, h := range acc.humidity {
			humiditySum += h
		}
		windSum := 0.0
		for _, w := range acc.windSpeeds {
			windSum += w
		}

		rainChance := int(acc.precip * 2)
		if rainChance > 100 {
			rainChance = 100
		}

		forecasts = append(forecasts, models.DailyForecast{
			Date:          date,
			TempMax:       tempMax,
			TempMin:       tempMin,
			Condition:     titleCase(mostFrequent(acc.conditions)),
			Icon:          mostFrequent(acc.icons),
			Precipitation: roundTo2(acc.precip),
			RainChance:    rainChance,
			Humidity:      humiditySum / len(acc.humidity),
			WindSpeed:     roundTo2(windSum / float64(len(acc.windSpeeds))),
		})
	}

	return &models.DailyForecastResponse{
		Location: models.Location{
			City:    raw.City.Name,
			Country: raw.City.Country,
			Lat:     raw.City.Coord.Lat,
			Lon:     raw.City.Coord.Lon,
		},
		Forecast: forecasts,
	}
}

func (o *OpenWeather) normalizeHourly(raw owmForecastResponse, hours int) *models.HourlyForecastResponse {
	items := raw.List
	if limit := hours / 3; len(items) > limit {
		items = items[:limit]
	}

	forecasts := common.Mapper(items, func(item owmForecastItem) models.ForecastPoint {
		condition, icon := "", ""
		if len(item.Weather) > 0 {
			condition = titleCase(item.Weather[0].Description)
			icon = item.Weather[0].Icon
		}
		return models.ForecastPoint{
			Timestamp:     time.Unix(item.Dt, 0),
			Temperature:   item.Main.Temp,
			FeelsLike:     item.Main.FeelsLike,
			Condition:     condition,
			Icon:          icon,
			Precipitation: item.Rain.ThreeHours,
			Humidity:      float64(item.Main.Humidity),
			WindSpeed:     item.Wind.Speed * 3.6,
		}
	})

	return &models.HourlyForecastResponse{
		Location: models.Location{
			City:    raw.City.Name,
			Country: raw.City.Country,
			Lat:     raw.City.Coord.Lat,
			Lon:     raw.City.Coord.Lon,
		},
		Forecast: forecasts,
	}
}

func (o *OpenWeather) reverseGeocode(ctx context.Context, lat, lon float64) string {
	params := url.Values{}
	params.Set("lat", fmt.Sprintf("%v", lat))
	params.Set("lon", fmt.Sprintf("%v", lon))
	params.Set("limit", "1")
	params.Set("appid", o.opts.APIKey)

	var entries []owmGeoEntry
	if err := o.getJSON(ctx, o.opts.GeoURL+"/reverse", params, &entries); err != nil {
		common.GetLoggerWith(
			common.LoggerNameProvider,
			zap.String(common.LoggerFieldAlertCategory, common.LoggerCategoryWeatherFetch),
		).Warn("Reverse geocoding failed", zap.Error(err))
		return ""
	}
	if len(entries) == 0 {
		return ""
	}
	return entries[0].Name
}

func (o *OpenWeather) getJSON(ctx context.Context, rawURL string, params url.Values, out any) error {
	start := o.opts.Clock.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL+"?"+params.Encode(), nil)
	if err != nil {
		return err
	}

	resp, err := o.opts.Client.Do(req)
	if o.opts.Metrics != nil {
		o.opts.Metrics.ProviderDuration.WithLabelValues("openweather").Observe(o.opts.Clock.Since(start).Seconds())
	}
	if err != nil {
		o.countRequest("error")
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		o.countRequest("error")
		return fmt.Errorf("openweather returned status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		o.countRequest("error")
		return fmt.Errorf("decode openweather response: %w", err)
	}

	o.countRequest("success")
	return nil
}

func (o *OpenWeather) countRequest(outcome string) {
	if o.opts.Metrics != nil {
		o.opts.Metrics.ProviderRequests.WithLabelValues("openweather", outcome).Inc()
	}
}

func (o *OpenWeather) countCache(kind, result string) {
	if o.opts.Metrics != nil {
		o.opts.Metrics.CacheLookups.WithLabelValues(kind, result).Inc()
	}
}

// mostFrequent returns the most common value, first-seen winning ties.
func mostFrequent(values []string) string {
	counts := map[string]int{}
	best, bestCount := "", 0
	for _, v := range values {
		counts[v]++
		if counts[v] > bestCount {
			best, bestCount = v, counts[v]
		}
	}
	return best
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

func roundTo2(v float64) float64 {
	return math.Round(v*100) / 100
}
