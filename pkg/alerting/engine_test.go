package alerting

import (
	"bytes"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"

	"skywarden.dev/weather-alert-service/pkg/common"
	"skywarden.dev/weather-alert-service/pkg/models"
	_ "skywarden.dev/weather-alert-service/pkg/testing"
)

var engineTestBase = time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

func forecastAt(offsetHours int, temp, precip, wind float64) models.ForecastPoint {
	return models.ForecastPoint{
		Timestamp:     engineTestBase.Add(time.Duration(offsetHours) * time.Hour),
		Temperature:   temp,
		Precipitation: precip,
		WindSpeed:     wind,
	}
}

func calmForecast(n int) []models.ForecastPoint {
	points := make([]models.ForecastPoint, 0, n)
	for i := 0; i < n; i++ {
		points = append(points, forecastAt(i*3, 22, 0, 10))
	}
	return points
}

func TestCheckAlertsCalmWeather(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, core, _, _, _, _, _ := GetMockCoreWithMemorySqliteDialector(t, false, false, false, false, false)
	defer ctrl.Finish()

	alerts := core.Engine.CheckAlerts(calmForecast(24), 22, 50, 10, "GENERAL", nil)
	assert.Len(t, alerts, 0)
}

func TestCheckAlertsHeatwave(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, core, _, _, _, _, _ := GetMockCoreWithMemorySqliteDialector(t, false, false, false, false, false)
	defer ctrl.Finish()
	core.Clock = clockwork.NewFakeClockAt(engineTestBase)

	forecast := calmForecast(24)
	// three daytime points above the default 35°C threshold
	forecast[0] = forecastAt(0, 37, 0, 10) // 12:00
	forecast[1] = forecastAt(3, 39, 0, 10) // 15:00
	forecast[2] = forecastAt(6, 38, 0, 10) // 18:00

	alerts := core.Engine.CheckAlerts(forecast, 30, 50, 10, "GENERAL", nil)
	assert.Len(t, alerts, 1)

	alert := alerts[0]
	assert.Equal(t, models.AlertTypeHeatwave, alert.Type)
	assert.Equal(t, models.SeverityHigh, alert.Severity) // max 39 is in the 38-42 band
	assert.Equal(t, "Temperature expected to reach 39.0°C for 3 hours", alert.Message)
	assert.Equal(t, forecast[0].Timestamp, *alert.StartTime)
	assert.Equal(t, forecast[2].Timestamp, *alert.EndTime)
	assert.Equal(t, engineTestBase, alert.CreatedAt)
	assert.NotEmpty(t, alert.Recommendations)
}

func TestCheckAlertsHeatwaveIgnoresNighttime(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, core, _, _, _, _, _ := GetMockCoreWithMemorySqliteDialector(t, false, false, false, false, false)
	defer ctrl.Finish()

	forecast := calmForecast(24)
	// hot, but at 21:00, 00:00 and 03:00
	forecast[3] = forecastAt(9, 40, 0, 10)
	forecast[4] = forecastAt(12, 40, 0, 10)
	forecast[5] = forecastAt(15, 40, 0, 10)

	alerts := core.Engine.CheckAlerts(forecast, 30, 50, 10, "GENERAL", nil)
	assert.Len(t, alerts, 0)
}

func TestCheckAlertsColdWave(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, core, _, _, _, _, _ := GetMockCoreWithMemorySqliteDialector(t, false, false, false, false, false)
	defer ctrl.Finish()

	forecast := calmForecast(24)
	forecast[1] = forecastAt(3, 2, 0, 10)
	forecast[5] = forecastAt(15, -7, 0, 10)
	forecast[9] = forecastAt(27, 1, 0, 10)

	alerts := core.Engine.CheckAlerts(forecast, 3, 50, 10, "GENERAL", nil)
	assert.Len(t, alerts, 1)

	alert := alerts[0]
	assert.Equal(t, models.AlertTypeColdWave, alert.Type)
	assert.Equal(t, models.SeveritySevere, alert.Severity) // min -7 is below -5
	assert.Equal(t, "Temperature expected to drop to -7.0°C for 3 hours", alert.Message)
	assert.Equal(t, forecast[1].Timestamp, *alert.StartTime)
	assert.Equal(t, forecast[9].Timestamp, *alert.EndTime)
}

func TestCheckAlertsStormFromCurrentWindOnly(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, core, _, _, _, _, _ := GetMockCoreWithMemorySqliteDialector(t, false, false, false, false, false)
	defer ctrl.Finish()
	core.Clock = clockwork.NewFakeClockAt(engineTestBase)

	// no forecast at all; the current reading alone triggers
	alerts := core.Engine.CheckAlerts(nil, 22, 50, 120, "GENERAL", nil)
	assert.Len(t, alerts, 1)

	alert := alerts[0]
	assert.Equal(t, models.AlertTypeStorm, alert.Type)
	assert.Equal(t, models.SeveritySevere, alert.Severity)
	assert.Equal(t, "Wind speeds expected to reach 120.0 km/h", alert.Message)
	assert.Equal(t, engineTestBase, *alert.StartTime)
	assert.Nil(t, alert.EndTime)
}

func TestCheckAlertsStormPicksMaxWind(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, core, _, _, _, _, _ := GetMockCoreWithMemorySqliteDialector(t, false, false, false, false, false)
	defer ctrl.Finish()

	forecast := calmForecast(8)
	forecast[2] = forecastAt(6, 22, 0, 85)
	forecast[5] = forecastAt(15, 22, 0, 70)

	alerts := core.Engine.CheckAlerts(forecast, 22, 50, 65, "GENERAL", nil)
	assert.Len(t, alerts, 1)
	assert.Equal(t, models.AlertTypeStorm, alerts[0].Type)
	assert.Equal(t, models.SeverityHigh, alerts[0].Severity) // max 85 is in the 80-100 band
	assert.Equal(t, "Wind speeds expected to reach 85.0 km/h", alerts[0].Message)
}

func TestCheckAlertsHeavyRainAccumulated(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, core, _, _, _, _, _ := GetMockCoreWithMemorySqliteDialector(t, false, false, false, false, false)
	defer ctrl.Finish()

	forecast := calmForecast(8)
	forecast[1] = forecastAt(3, 22, 20, 10)
	forecast[3] = forecastAt(9, 22, 25, 10)
	forecast[6] = forecastAt(18, 22, 10, 10)

	alerts := core.Engine.CheckAlerts(forecast, 22, 50, 10, "GENERAL", nil)
	assert.Len(t, alerts, 1)

	alert := alerts[0]
	assert.Equal(t, models.AlertTypeHeavyRain, alert.Type)
	assert.Equal(t, models.SeverityModerate, alert.Severity)
	assert.Equal(t, "Expected rainfall: 55.0mm in next 24 hours", alert.Message)
	// the window spans first to last rainy point
	assert.Equal(t, forecast[1].Timestamp, *alert.StartTime)
	assert.Equal(t, forecast[6].Timestamp, *alert.EndTime)
}

func TestCheckAlertsHeavyRainSingleIntensePoint(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, core, _, _, _, _, _ := GetMockCoreWithMemorySqliteDialector(t, false, false, false, false, false)
	defer ctrl.Finish()

	forecast := calmForecast(8)
	// total stays under the 50mm threshold but one point is above 10mm
	forecast[4] = forecastAt(12, 22, 12, 10)

	alerts := core.Engine.CheckAlerts(forecast, 22, 50, 10, "GENERAL", nil)
	assert.Len(t, alerts, 1)
	assert.Equal(t, models.AlertTypeHeavyRain, alerts[0].Type)
}

func TestCheckAlertsHighHumidity(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, core, _, _, _, _, _ := GetMockCoreWithMemorySqliteDialector(t, false, false, false, false, false)
	defer ctrl.Finish()

	alerts := core.Engine.CheckAlerts(calmForecast(8), 30, 90, 10, "GENERAL", nil)
	assert.Len(t, alerts, 1)

	alert := alerts[0]
	assert.Equal(t, models.AlertTypeHighHumidity, alert.Type)
	assert.Equal(t, models.SeverityModerate, alert.Severity)
	assert.Equal(t, "Humidity at 90% with temperature 30.0°C (feels like 33.0°C)", alert.Message)
}

func TestCheckAlertsCustomThresholds(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, core, _, _, _, _, _ := GetMockCoreWithMemorySqliteDialector(t, false, false, false, false, false)
	defer ctrl.Finish()

	// 30°C daytime heat is not a heatwave by default
	forecast := calmForecast(24)
	forecast[0] = forecastAt(0, 31, 0, 10)
	forecast[1] = forecastAt(3, 31, 0, 10)
	forecast[2] = forecastAt(6, 31, 0, 10)

	alerts := core.Engine.CheckAlerts(forecast, 25, 50, 10, "GENERAL", nil)
	assert.Len(t, alerts, 0)

	th := models.DefaultThresholds()
	th.HeatwaveTemp = 30.0
	alerts = core.Engine.CheckAlerts(forecast, 25, 50, 10, "GENERAL", &th)
	assert.Len(t, alerts, 1)
	assert.Equal(t, models.AlertTypeHeatwave, alerts[0].Type)
}

func TestCheckAlertsPersonalization(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, core, _, _, _, _, _ := GetMockCoreWithMemorySqliteDialector(t, false, false, false, false, false)
	defer ctrl.Finish()

	alerts := core.Engine.CheckAlerts(nil, 22, 50, 120, "FARMER", nil)
	assert.Len(t, alerts, 1)

	recs := alerts[0].Recommendations
	base := baseRecommendations[models.AlertTypeStorm]
	extra := userRecommendations[models.UserTypeFarmer][models.AlertTypeStorm]
	assert.Len(t, recs, len(base)+len(extra))
	assert.Equal(t, base, recs[:len(base)])
	assert.Equal(t, extra, recs[len(base):])

	// unknown user types keep the base advice only
	alerts = core.Engine.CheckAlerts(nil, 22, 50, 120, "ASTRONAUT", nil)
	assert.Len(t, alerts, 1)
	assert.Equal(t, base, alerts[0].Recommendations)
}

func TestCheckAlertsPrioritization(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, core, _, _, _, _, _ := GetMockCoreWithMemorySqliteDialector(t, false, false, false, false, false)
	defer ctrl.Finish()

	// moderate humidity alert plus a severe storm; severe must come first
	alerts := core.Engine.CheckAlerts(calmForecast(8), 30, 90, 120, "GENERAL", nil)
	assert.Len(t, alerts, 2)
	assert.Equal(t, models.AlertTypeStorm, alerts[0].Type)
	assert.Equal(t, models.SeveritySevere, alerts[0].Severity)
	assert.Equal(t, models.AlertTypeHighHumidity, alerts[1].Type)
}

func TestCheckAlertsPrioritizationKeepsDetectorOrderOnTies(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, core, _, _, _, _, _ := GetMockCoreWithMemorySqliteDialector(t, false, false, false, false, false)
	defer ctrl.Finish()

	// moderate heavy rain plus moderate humidity; the sort is stable, so
	// equal severities stay in detector order (rain before humidity)
	forecast := calmForecast(8)
	forecast[1] = forecastAt(3, 22, 30, 10)
	forecast[3] = forecastAt(9, 22, 25, 10)

	alerts := core.Engine.CheckAlerts(forecast, 30, 90, 10, "GENERAL", nil)
	assert.Len(t, alerts, 2)
	assert.Equal(t, models.SeverityModerate, alerts[0].Severity)
	assert.Equal(t, models.SeverityModerate, alerts[1].Severity)
	assert.Equal(t, models.AlertTypeHeavyRain, alerts[0].Type)
	assert.Equal(t, models.AlertTypeHighHumidity, alerts[1].Type)
}

func TestCheckAlerts_WithLog(t *testing.T) {
	var buf = &bytes.Buffer{}
	common.SetTestCaptureLogger(buf, zapcore.InfoLevel)

	ctrl, core, _, _, _, _, _ := GetMockCoreWithMemorySqliteDialector(t, false, false, false, false, false)
	defer ctrl.Finish()

	alerts := core.Engine.CheckAlerts(nil, 22, 50, 120, "GENERAL", nil)
	assert.Len(t, alerts, 1)

	logs := ParseLogs(buf)

	{
		found := false
		for _, log := range logs {
			lobj := log.(map[string]any)
			if lobj["category"] == "engine" &&
				lobj["logger"] == "alert_core" &&
				lobj["msg"] == "Alert found" &&
				lobj["alert"].(map[string]any)["type"] == "STORM" &&
				lobj["alert"].(map[string]any)["message"] == "Wind speeds expected to reach 120.0 km/h" {
				found = true
			}
		}
		assert.True(t, found)
	}
}
