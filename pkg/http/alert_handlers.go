package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"skywarden.dev/weather-alert-service/pkg/models"

	z "github.com/Oudwins/zog"
	"github.com/Oudwins/zog/zhttp"
)

type ThresholdOverrides struct {
	HeatwaveTemp    *float64 `json:"heatwave_temp"`
	HeavyRainAmount *float64 `json:"heavy_rain_amount"`
	HighWindSpeed   *float64 `json:"high_wind_speed"`
	ColdWaveTemp    *float64 `json:"cold_wave_temp"`
	HighHumidity    *float64 `json:"high_humidity"`
}

var thresholdOverridesSchema = z.Struct(z.Shape{
	"HeatwaveTemp":    z.Ptr(z.Float64()),
	"HeavyRainAmount": z.Ptr(z.Float64()),
	"HighWindSpeed":   z.Ptr(z.Float64()),
	"ColdWaveTemp":    z.Ptr(z.Float64()),
	"HighHumidity":    z.Ptr(z.Float64()),
})

// Resolve merges the overrides onto the default thresholds. Absent fields
// keep their default values.
func (t *ThresholdOverrides) Resolve() models.ThresholdSet {
	resolved := models.DefaultThresholds()
	if t == nil {
		return resolved
	}
	if t.HeatwaveTemp != nil {
		resolved.HeatwaveTemp = *t.HeatwaveTemp
	}
	if t.HeavyRainAmount != nil {
		resolved.HeavyRainAmount = *t.HeavyRainAmount
	}
	if t.HighWindSpeed != nil {
		resolved.HighWindSpeed = *t.HighWindSpeed
	}
	if t.ColdWaveTemp != nil {
		resolved.ColdWaveTemp = *t.ColdWaveTemp
	}
	if t.HighHumidity != nil {
		resolved.HighHumidity = *t.HighHumidity
	}
	return resolved
}

type AlertCheckRequest struct {
	Lat              float64             `json:"lat"`
	Lon              float64             `json:"lon"`
	UserType         string              `json:"user_type"`
	CustomThresholds *ThresholdOverrides `json:"custom_thresholds"`
}

var alertCheckRequestSchema = z.Struct(z.Shape{
	"Lat":              z.Float64().GTE(-90).LTE(90).Required(),
	"Lon":              z.Float64().GTE(-180).LTE(180).Required(),
	"UserType":         z.String().Optional(),
	"CustomThresholds": z.Ptr(thresholdOverridesSchema),
})

func (rs *RestfulServer) CheckAlerts(c *gin.Context) {
	if !rs.CheckClientLimiter(c.ClientIP()) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	var req AlertCheckRequest
	if err := alertCheckRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	userType := req.UserType
	if userType == "" {
		userType = string(models.UserTypeGeneral)
	}

	current, err := rs.Weather.CurrentWeather(c.Request.Context(), req.Lat, req.Lon, "")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to check alerts"})
		return
	}

	hourly, err := rs.Weather.HourlyForecast(c.Request.Context(), req.Lat, req.Lon, 24)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to check alerts"})
		return
	}

	thresholds := req.CustomThresholds.Resolve()
	alerts := rs.Core.Engine.CheckAlerts(
		hourly.Forecast,
		current.Current.Temperature,
		float64(current.Current.Humidity),
		current.Current.WindSpeed,
		userType,
		&thresholds,
	)

	if err := rs.Core.History.StoreAlerts(alerts); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store alerts"})
		return
	}

	if rs.Metrics != nil {
		for _, a := range alerts {
			rs.Metrics.AlertsGenerated.WithLabelValues(string(a.Type)).Inc()
		}
	}
	if rs.Dispatcher != nil {
		rs.Dispatcher.MaybeNotifyWeather(c.Request.Context(), alerts)
	}

	c.JSON(http.StatusOK, gin.H{
		"alerts":     alerts,
		"risk_score": current.RiskScore,
		"risk_level": current.RiskLevel,
	})
}

type AlertHistoryRequest struct {
	Limit *int `json:"limit"`
}

var alertHistoryRequestSchema = z.Struct(z.Shape{
	"Limit": z.Ptr(z.Int().GTE(1).LTE(100)),
})

func (rs *RestfulServer) GetAlertHistory(c *gin.Context) {
	if !rs.CheckClientLimiter(c.ClientIP()) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	var req AlertHistoryRequest
	if err := alertHistoryRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	limit := 20
	if req.Limit != nil {
		limit = *req.Limit
	}

	alerts, err := rs.Core.History.RecentAlerts(limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load alert history"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"alerts": alerts})
}

func (rs *RestfulServer) DismissAlert(c *gin.Context) {
	if !rs.CheckClientLimiter(c.ClientIP()) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	alertID := c.Param("alert_id")

	if err := rs.Core.History.DismissAlert(alertID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "alert not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to dismiss alert"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Alert dismissed"})
}
