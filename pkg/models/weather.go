package models

import "time"

type Location struct {
	City    string  `json:"city"`
	Country string  `json:"country"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
}

// WeatherSnapshot is the normalized single-moment reading the risk score is
// computed from. Units: °C, mm, km/h, %, km.
type WeatherSnapshot struct {
	Temperature   float64 `json:"temperature"`
	Precipitation float64 `json:"precipitation"`
	WindSpeed     float64 `json:"wind_speed"`
	Humidity      float64 `json:"humidity"`
	Visibility    float64 `json:"visibility"`
}

type CurrentWeather struct {
	Temperature   float64   `json:"temperature"`
	FeelsLike     float64   `json:"feels_like"`
	Humidity      int       `json:"humidity"`
	Pressure      int       `json:"pressure"`
	WindSpeed     float64   `json:"wind_speed"`
	WindDirection int       `json:"wind_direction"`
	Visibility    float64   `json:"visibility"`
	Condition     string    `json:"condition"`
	Icon          string    `json:"icon"`
	Sunrise       int64     `json:"sunrise"`
	Sunset        int64     `json:"sunset"`
	Timestamp     time.Time `json:"timestamp"`
}

func (c CurrentWeather) Snapshot() WeatherSnapshot {
	return WeatherSnapshot{
		Temperature: c.Temperature,
		// current-weather responses carry no precipitation reading
		Precipitation: 0,
		WindSpeed:     c.WindSpeed,
		Humidity:      float64(c.Humidity),
		Visibility:    c.Visibility,
	}
}

type WeatherData struct {
	Location  Location       `json:"location"`
	Current   CurrentWeather `json:"current"`
	RiskScore float64        `json:"risk_score"`
	RiskLevel string         `json:"risk_level"`
}

// ForecastPoint is one entry of the 3-hour-cadence forecast series.
type ForecastPoint struct {
	Timestamp     time.Time `json:"timestamp"`
	Temperature   float64   `json:"temperature"`
	FeelsLike     float64   `json:"feels_like"`
	Condition     string    `json:"condition"`
	Icon          string    `json:"icon"`
	Precipitation float64   `json:"precipitation"`
	Humidity      float64   `json:"humidity"`
	WindSpeed     float64   `json:"wind_speed"`
}

type HourlyForecastResponse struct {
	Location Location        `json:"location"`
	Forecast []ForecastPoint `json:"forecast"`
}

type DailyForecast struct {
	Date          string  `json:"date"`
	TempMax       float64 `json:"temp_max"`
	TempMin       float64 `json:"temp_min"`
	Condition     string  `json:"condition"`
	Icon          string  `json:"icon"`
	Precipitation float64 `json:"precipitation"`
	RainChance    int     `json:"rain_chance"`
	Humidity      int     `json:"humidity"`
	WindSpeed     float64 `json:"wind_speed"`
}

type DailyForecastResponse struct {
	Location Location        `json:"location"`
	Forecast []DailyForecast `json:"forecast"`
}
