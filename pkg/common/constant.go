package common

const (
	EnvKeyGoEnv string = "GO_ENV"

	EnvKeyRunIntegrationTests string = "RUN_INTEGRATION_TESTS"

	EnvKeyWeatherDBType string = "WEATHER_DB_TYPE"
	EnvKeyWeatherDbPath string = "WEATHER_DB_PATH"

	EnvKeyWeatherHttpHostPort string = "WEATHER_HTTP_HOST_PORT"

	EnvKeyWeatherDefaultRate  string = "WEATHER_DEFAULT_RATE"
	EnvKeyWeatherDefaultBurst string = "WEATHER_DEFAULT_BURST"

	EnvKeyOpenWeatherApiKey  string = "WEATHER_OPENWEATHER_API_KEY"
	EnvKeyOpenWeatherBaseUrl string = "WEATHER_OPENWEATHER_BASE_URL"
	EnvKeyUsgsBaseUrl        string = "WEATHER_USGS_BASE_URL"

	EnvKeyCacheTTLCurrent  string = "WEATHER_CACHE_TTL_CURRENT"
	EnvKeyCacheTTLForecast string = "WEATHER_CACHE_TTL_FORECAST"

	EnvKeyNotifyWebhookUrl string = "WEATHER_NOTIFY_WEBHOOK_URL"

	LoggerNameAlertCore     string = "alert_core"
	LoggerNameProvider      string = "provider"
	LoggerNameNotify        string = "notify"
	LoggerNameRestfulServer string = "restful_server"

	LoggerFieldAlertCategory    string = "category"
	LoggerCategoryEngine        string = "engine"
	LoggerCategorySeismic       string = "seismic"
	LoggerCategoryHistory       string = "history"
	LoggerCategoryPreference    string = "preference"
	LoggerCategoryToken         string = "token"
	LoggerCategoryWeatherFetch  string = "weather_fetch"
	LoggerCategorySeismicFetch  string = "seismic_fetch"
	LoggerCategoryNotifyChannel string = "channel"
)
