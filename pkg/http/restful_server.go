package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"
	"skywarden.dev/weather-alert-service/pkg/alerting"
	"skywarden.dev/weather-alert-service/pkg/notify"
	"skywarden.dev/weather-alert-service/pkg/observability"
	"skywarden.dev/weather-alert-service/pkg/provider"
)

type RestfulServer struct {
	Server           *gin.Engine
	Core             *alerting.Core
	Weather          provider.IWeather
	SeismicFeed      provider.ISeismicFeed
	Dispatcher       *notify.Dispatcher
	Metrics          *observability.Metrics
	RateLimiterStore *alerting.RateLimiterStore
}

func (rs *RestfulServer) GetLimiter(clientID string) *rate.Limiter {
	if rs.RateLimiterStore == nil {
		return nil
	} else {
		return rs.RateLimiterStore.GetLimiter(clientID)
	}
}

func (rs *RestfulServer) CheckClientLimiter(clientID string) bool {
	limiter := rs.GetLimiter(clientID)
	if limiter == nil {
		return true
	}
	return limiter.Allow()
}

func (rs *RestfulServer) Setup() {
	rs.Server.GET("/healthz", rs.HealthCheck)
	rs.Server.GET("/metrics", gin.WrapH(promhttp.Handler()))

	weather := rs.Server.Group("/api/weather")
	{
		weather.GET("/current", rs.GetCurrentWeather)
		weather.GET("/forecast/daily", rs.GetDailyForecast)
		weather.GET("/forecast/hourly", rs.GetHourlyForecast)
	}

	alerts := rs.Server.Group("/api/alerts")
	{
		alerts.POST("/check", rs.CheckAlerts)
		alerts.GET("/history", rs.GetAlertHistory)
		alerts.POST("/dismiss/:alert_id", rs.DismissAlert)
	}

	preferences := rs.Server.Group("/api/preferences")
	{
		preferences.POST("", rs.SavePreferences)
		preferences.GET("/:user_id", rs.GetPreferences)
		preferences.DELETE("/:user_id", rs.DeletePreferences)
	}

	disasters := rs.Server.Group("/api/disasters")
	{
		disasters.GET("/earthquakes", rs.GetEarthquakes)
		disasters.GET("/earthquakes/global", rs.GetGlobalEarthquakes)
		disasters.GET("/tsunamis", rs.GetTsunamiWarnings)
		disasters.GET("/analytics/map", rs.GetDisasterMap)
	}

	users := rs.Server.Group("/api/users")
	{
		users.POST("/device-token", rs.RegisterDeviceToken)
		users.GET("/device-tokens/:user_id", rs.GetDeviceTokens)
		users.DELETE("/device-token", rs.RemoveDeviceToken)
	}
}

func (rs *RestfulServer) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
