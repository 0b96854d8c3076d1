package main

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"skywarden.dev/weather-alert-service/pkg/alerting"
	"skywarden.dev/weather-alert-service/pkg/cache"
	"skywarden.dev/weather-alert-service/pkg/common"
	"skywarden.dev/weather-alert-service/pkg/db"
	alertHttp "skywarden.dev/weather-alert-service/pkg/http"
	"skywarden.dev/weather-alert-service/pkg/notify"
	"skywarden.dev/weather-alert-service/pkg/observability"
	"skywarden.dev/weather-alert-service/pkg/provider"
)

func main() {
	var err error

	err = godotenv.Load()
	if err != nil {
		log.Fatal("Error loading .env file, copy .env.example to .env first if in development")
	}

	var dbInstance *db.DB
	weatherDbType := os.Getenv(common.EnvKeyWeatherDBType)
	switch weatherDbType {
	case "file":
		dbInstance = db.GetInstance(db.UseSqliteDialector())
	case "memory":
		dbInstance = db.GetInstance(db.UseMemorySqliteDialector())
	default:
		log.Fatal("Unknown WEATHER_DB_TYPE: " + weatherDbType)
	}

	httpHostPort := strings.TrimSpace(os.Getenv(common.EnvKeyWeatherHttpHostPort))

	var defaultRate float64
	var defaultBurst int64

	if defaultRate, err = strconv.ParseFloat(os.Getenv(common.EnvKeyWeatherDefaultRate), 64); err != nil {
		log.Fatal("Invalid WEATHER_DEFAULT_RATE, or not set in .env, should be a float64 value")
	}

	if defaultBurst, err = strconv.ParseInt(os.Getenv(common.EnvKeyWeatherDefaultBurst), 10, 64); err != nil {
		log.Fatal("Invalid WEATHER_DEFAULT_BURST, or not set in .env, should be an int value")
	}

	apiKey := strings.TrimSpace(os.Getenv(common.EnvKeyOpenWeatherApiKey))
	if apiKey == "" {
		log.Fatal("WEATHER_OPENWEATHER_API_KEY not set in .env")
	}

	logger := common.GetLogger()

	clock := clockwork.NewRealClock()
	metrics := observability.NewMetrics()
	sharedCache := cache.New(clock)

	core := alerting.Core{
		Db:    *dbInstance,
		Clock: clock,
	}
	core.WithServices(alerting.ServiceOpts{
		Engine:     core.GetIEngine(),
		Seismic:    core.GetISeismic(),
		History:    core.GetIHistory(),
		Preference: core.GetIPreference(),
		Token:      core.GetIToken(),
	})

	weather := provider.NewOpenWeather(provider.OpenWeatherOpts{
		BaseURL:     os.Getenv(common.EnvKeyOpenWeatherBaseUrl),
		APIKey:      apiKey,
		TTLCurrent:  envDuration(common.EnvKeyCacheTTLCurrent, 5*time.Minute),
		TTLForecast: envDuration(common.EnvKeyCacheTTLForecast, 30*time.Minute),
		Cache:       sharedCache,
		Clock:       clock,
		Metrics:     metrics,
	})

	feed := provider.NewUSGS(provider.USGSOpts{
		BaseURL: os.Getenv(common.EnvKeyUsgsBaseUrl),
		Clock:   clock,
		Metrics: metrics,
	})

	var channel notify.Channel = notify.LogChannel{}
	if webhookURL := strings.TrimSpace(os.Getenv(common.EnvKeyNotifyWebhookUrl)); webhookURL != "" {
		channel = &notify.Multi{Channels: []notify.Channel{
			notify.LogChannel{},
			notify.NewWebhookChannel(webhookURL),
		}}
	}
	dispatcher := notify.NewDispatcher(channel, metrics)

	if httpHostPort == "" {
		// fallback to default http port
		httpHostPort = ":1080"
	}

	logger.Info("Starting HTTP server on port " + httpHostPort)
	rs := &alertHttp.RestfulServer{
		Server:           gin.Default(),
		Core:             &core,
		Weather:          weather,
		SeismicFeed:      feed,
		Dispatcher:       dispatcher,
		Metrics:          metrics,
		RateLimiterStore: alerting.NewRateLimiterStore(rate.Limit(defaultRate), int(defaultBurst)),
	}
	rs.Setup()

	logger.Info("http server created with:",
		zap.String("default_limiter",
			fmt.Sprintf("{\"default_rate\": %v, \"default_burst\": %v}", defaultRate, defaultBurst)))

	logger.Info("Starting HTTP server on: " + httpHostPort)
	if err := rs.Server.Run(httpHostPort); err != nil {
		log.Fatalf("http server failed to serve: %v", err)
	}
}

func envDuration(key string, fallback time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		log.Fatalf("Invalid %s, should be a duration like 5m: %v", key, err)
	}
	return d
}
