package provider

import (
	"context"

	"skywarden.dev/weather-alert-service/pkg/models"
)

// IWeather fetches and normalizes weather data from an upstream provider.
type IWeather interface {
	CurrentWeather(ctx context.Context, lat, lon float64, city string) (*models.WeatherData, error)
	DailyForecast(ctx context.Context, lat, lon float64, days int) (*models.DailyForecastResponse, error)
	HourlyForecast(ctx context.Context, lat, lon float64, hours int) (*models.HourlyForecastResponse, error)
}

// ISeismicFeed fetches normalized seismic events from an upstream feed.
type ISeismicFeed interface {
	FetchEarthquakes(ctx context.Context, minMagnitude float64) ([]models.SeismicEvent, error)
}
