package provider

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"skywarden.dev/weather-alert-service/pkg/common"
	"skywarden.dev/weather-alert-service/pkg/observability"
)

func init() {
	common.SetTestLoggerNop()
}

const currentWeatherBody = `{
	"name": "Seoul",
	"coord": {"lat": 37.57, "lon": 126.98},
	"sys": {"country": "KR", "sunrise": 1700000000, "sunset": 1700040000},
	"main": {"temp": 28.4, "feels_like": 30.1, "humidity": 72, "pressure": 1008},
	"wind": {"speed": 10.0, "deg": 180},
	"visibility": 8000,
	"weather": [{"description": "scattered clouds", "icon": "03d"}]
}`

func forecastBody(items string) string {
	return fmt.Sprintf(`{
		"city": {"name": "Seoul", "country": "KR", "coord": {"lat": 37.57, "lon": 126.98}},
		"list": [%s]
	}`, items)
}

func forecastItem(dt int64, temp, rain3h, windMS float64, humidity int, desc string) string {
	return fmt.Sprintf(`{
		"dt": %d,
		"main": {"temp": %v, "feels_like": %v, "humidity": %d, "pressure": 1010},
		"wind": {"speed": %v},
		"rain": {"3h": %v},
		"weather": [{"description": %q, "icon": "10d"}]
	}`, dt, temp, temp, humidity, windMS, rain3h, desc)
}

func newTestOpenWeather(t *testing.T, handler http.Handler) (*OpenWeather, *httptest.Server) {
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	ow := NewOpenWeather(OpenWeatherOpts{
		BaseURL: srv.URL,
		GeoURL:  srv.URL + "/geo",
		APIKey:  "test-key",
		Metrics: observability.NewMetricsForTesting(),
	})
	return ow, srv
}

func TestCurrentWeatherNormalization(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/weather", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-key", r.URL.Query().Get("appid"))
		assert.Equal(t, "metric", r.URL.Query().Get("units"))
		fmt.Fprint(w, currentWeatherBody)
	})
	mux.HandleFunc("/geo/reverse", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `[{"name": "Jongno-gu"}]`)
	})
	ow, _ := newTestOpenWeather(t, mux)

	data, err := ow.CurrentWeather(context.Background(), 37.57, 126.98, "")
	assert.Nil(t, err)

	// reverse geocoding refines the location name
	assert.Equal(t, "Jongno-gu", data.Location.City)
	assert.Equal(t, "KR", data.Location.Country)

	// m/s to km/h, m to km
	assert.InDelta(t, 36.0, data.Current.WindSpeed, 0.001)
	assert.InDelta(t, 8.0, data.Current.Visibility, 0.001)
	assert.Equal(t, "Scattered Clouds", data.Current.Condition)

	assert.Greater(t, data.RiskScore, 0.0)
	assert.NotEmpty(t, data.RiskLevel)
}

func TestCurrentWeatherByCitySkipsGeocoding(t *testing.T) {
	geoCalls := 0
	mux := http.NewServeMux()
	mux.HandleFunc("/weather", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Seoul", r.URL.Query().Get("q"))
		fmt.Fprint(w, currentWeatherBody)
	})
	mux.HandleFunc("/geo/reverse", func(w http.ResponseWriter, r *http.Request) {
		geoCalls++
		fmt.Fprint(w, `[]`)
	})
	ow, _ := newTestOpenWeather(t, mux)

	data, err := ow.CurrentWeather(context.Background(), 0, 0, "Seoul")
	assert.Nil(t, err)
	assert.Equal(t, "Seoul", data.Location.City)
	assert.Equal(t, 0, geoCalls)
}

func TestCurrentWeatherCached(t *testing.T) {
	fetches := 0
	mux := http.NewServeMux()
	mux.HandleFunc("/weather", func(w http.ResponseWriter, r *http.Request) {
		fetches++
		fmt.Fprint(w, currentWeatherBody)
	})
	ow, _ := newTestOpenWeather(t, mux)

	_, err := ow.CurrentWeather(context.Background(), 0, 0, "Seoul")
	assert.Nil(t, err)
	_, err = ow.CurrentWeather(context.Background(), 0, 0, "Seoul")
	assert.Nil(t, err)
	assert.Equal(t, 1, fetches)
}

func TestCurrentWeatherUpstreamError(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/weather", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})
	ow, _ := newTestOpenWeather(t, mux)

	_, err := ow.CurrentWeather(context.Background(), 0, 0, "Seoul")
	assert.NotNil(t, err)
	assert.Contains(t, err.Error(), "401")
}

func TestHourlyForecastNormalization(t *testing.T) {
	base := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC).Unix()
	items := forecastItem(base, 30, 2.5, 5.0, 70, "light rain") + "," +
		forecastItem(base+3*3600, 31, 0, 6.0, 65, "few clouds")

	mux := http.NewServeMux()
	mux.HandleFunc("/forecast", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, forecastBody(items))
	})
	ow, _ := newTestOpenWeather(t, mux)

	resp, err := ow.HourlyForecast(context.Background(), 37.57, 126.98, 6)
	assert.Nil(t, err)
	assert.Equal(t, 2, len(resp.Forecast))
	assert.InDelta(t, 18.0, resp.Forecast[0].WindSpeed, 0.001)
	assert.InDelta(t, 2.5, resp.Forecast[0].Precipitation, 0.001)
	assert.Equal(t, "Light Rain", resp.Forecast[0].Condition)
}

func TestDailyForecastAggregation(t *testing.T) {
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC).Unix()
	// two points on day one, one on day two
	items := forecastItem(base, 20, 1.0, 5.0, 60, "light rain") + "," +
		forecastItem(base+3*3600, 30, 2.0, 10.0, 80, "light rain") + "," +
		forecastItem(base+24*3600, 25, 0, 5.0, 70, "few clouds")

	mux := http.NewServeMux()
	mux.HandleFunc("/forecast", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, forecastBody(items))
	})
	ow, _ := newTestOpenWeather(t, mux)

	resp, err := ow.DailyForecast(context.Background(), 37.57, 126.98, 7)
	assert.Nil(t, err)
	assert.Equal(t, 2, len(resp.Forecast))

	day := resp.Forecast[0]
	assert.Equal(t, 30.0, day.TempMax)
	assert.Equal(t, 20.0, day.TempMin)
	assert.InDelta(t, 3.0, day.Precipitation, 0.001)
	assert.Equal(t, 6, day.RainChance)
	assert.Equal(t, 70, day.Humidity)
	assert.InDelta(t, 27.0, day.WindSpeed, 0.001)
	assert.Equal(t, "Light Rain", day.Condition)
}

func TestForecastEmptyWeatherArray(t *testing.T) {
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC).Unix()
	// upstream sometimes omits weather entries entirely
	bare := fmt.Sprintf(`{
		"dt": %d,
		"main": {"temp": 30, "feels_like": 30, "humidity": 70, "pressure": 1010},
		"wind": {"speed": 5.0},
		"weather": []
	}`, base)

	mux := http.NewServeMux()
	mux.HandleFunc("/forecast", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, forecastBody(bare))
	})
	ow, _ := newTestOpenWeather(t, mux)

	hourly, err := ow.HourlyForecast(context.Background(), 37.57, 126.98, 3)
	assert.Nil(t, err)
	assert.Equal(t, 1, len(hourly.Forecast))
	assert.Equal(t, "", hourly.Forecast[0].Condition)
	assert.Equal(t, "", hourly.Forecast[0].Icon)

	daily, err := ow.DailyForecast(context.Background(), 37.58, 126.98, 1)
	assert.Nil(t, err)
	assert.Equal(t, 1, len(daily.Forecast))
	assert.Equal(t, "", daily.Forecast[0].Condition)
	assert.Equal(t, "", daily.Forecast[0].Icon)
	assert.Equal(t, 30.0, daily.Forecast[0].TempMax)
}

func TestMostFrequentFirstSeenWinsTies(t *testing.T) {
	assert.Equal(t, "a", mostFrequent([]string{"a", "b"}))
	assert.Equal(t, "b", mostFrequent([]string{"a", "b", "b"}))
}
