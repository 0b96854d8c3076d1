package alerting

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"skywarden.dev/weather-alert-service/pkg/common"
	"skywarden.dev/weather-alert-service/pkg/models"
)

func newAlertID() string {
	return "alert_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
}

func (c *Core) checkAlerts(
	forecast []models.ForecastPoint,
	currentTemp, currentHumidity, currentWind float64,
	userType string,
	thresholds *models.ThresholdSet,
) []models.Alert {
	logger := common.GetLoggerWith(
		common.LoggerNameAlertCore,
		zap.String(common.LoggerFieldAlertCategory, common.LoggerCategoryEngine),
	)

	th := models.DefaultThresholds()
	if thresholds != nil {
		th = *thresholds
	}

	now := c.clock().Now()
	alerts := []models.Alert{}

	if alert := checkHeatwave(forecast, th.HeatwaveTemp, now); alert != nil {
		logger.Info("Alert found", zap.Reflect("alert", alert))
		alerts = append(alerts, *alert)
	}

	if alert := checkHeavyRain(forecast, th.HeavyRainAmount, now); alert != nil {
		logger.Info("Alert found", zap.Reflect("alert", alert))
		alerts = append(alerts, *alert)
	}

	if alert := checkStorm(forecast, currentWind, th.HighWindSpeed, now); alert != nil {
		logger.Info("Alert found", zap.Reflect("alert", alert))
		alerts = append(alerts, *alert)
	}

	if alert := checkColdWave(forecast, th.ColdWaveTemp, now); alert != nil {
		logger.Info("Alert found", zap.Reflect("alert", alert))
		alerts = append(alerts, *alert)
	}

	if alert := checkHighHumidity(currentTemp, currentHumidity, th.HighHumidity, now); alert != nil {
		logger.Info("Alert found", zap.Reflect("alert", alert))
		alerts = append(alerts, *alert)
	}

	alerts = personalizeAlerts(alerts, userType)

	return prioritizeAlerts(alerts)
}

// checkHeatwave scans up to 3 days of forecast for daytime points above the
// threshold. Three or more such points count as a heatwave.
func checkHeatwave(forecast []models.ForecastPoint, threshold float64, now time.Time) *models.Alert {
	var hot []models.ForecastPoint

	for _, item := range clipForecast(forecast, 24) {
		if item.Temperature > threshold {
			// only daytime heat matters (10 AM - 6 PM)
			hour := item.Timestamp.Hour()
			if hour >= 10 && hour <= 18 {
				hot = append(hot, item)
			}
		}
	}

	if len(hot) < 3 {
		return nil
	}

	maxTemp := hot[0].Temperature
	for _, item := range hot[1:] {
		if item.Temperature > maxTemp {
			maxTemp = item.Temperature
		}
	}

	start := hot[0].Timestamp
	end := hot[len(hot)-1].Timestamp

	return &models.Alert{
		ID:              newAlertID(),
		Type:            models.AlertTypeHeatwave,
		Severity:        heatwaveSeverity(maxTemp),
		Title:           "Heatwave Alert",
		Message:         fmt.Sprintf("Temperature expected to reach %.1f°C for %d hours", maxTemp, len(hot)),
		Recommendations: baseRecommendationsFor(models.AlertTypeHeatwave),
		StartTime:       &start,
		EndTime:         &end,
		CreatedAt:       now,
	}
}

// checkHeavyRain looks at the next 24h (8 points). Triggers on accumulated
// rainfall above the threshold or any single point above 10mm.
func checkHeavyRain(forecast []models.ForecastPoint, threshold float64, now time.Time) *models.Alert {
	window := clipForecast(forecast, 8)
	if len(window) == 0 {
		return nil
	}

	total := common.Reducer(window, func(acc float64, p models.ForecastPoint) float64 {
		return acc + p.Precipitation
	}, 0.0)
	maxIntensity := common.Reducer(window, func(acc float64, p models.ForecastPoint) float64 {
		if p.Precipitation > acc {
			return p.Precipitation
		}
		return acc
	}, 0.0)

	if total <= threshold && maxIntensity <= 10 {
		return nil
	}

	rainy := common.Filter(window, func(p models.ForecastPoint) bool {
		return p.Precipitation > 0
	})

	alert := &models.Alert{
		ID:              newAlertID(),
		Type:            models.AlertTypeHeavyRain,
		Severity:        rainSeverity(total),
		Title:           "Heavy Rain Alert",
		Message:         fmt.Sprintf("Expected rainfall: %.1fmm in next 24 hours", total),
		Recommendations: baseRecommendationsFor(models.AlertTypeHeavyRain),
		CreatedAt:       now,
	}

	// No rainy points can still trigger via thresholds; the window stays
	// unset then.
	if len(rainy) > 0 {
		start := rainy[0].Timestamp
		end := rainy[len(rainy)-1].Timestamp
		alert.StartTime = &start
		alert.EndTime = &end
	}

	return alert
}

// checkStorm combines the current wind reading with the next 24h of
// forecast. The start time is the observation time, not a forecast point.
func checkStorm(forecast []models.ForecastPoint, currentWind, threshold float64, now time.Time) *models.Alert {
	var exceeding []float64

	if currentWind > threshold {
		exceeding = append(exceeding, currentWind)
	}
	for _, item := range clipForecast(forecast, 8) {
		if item.WindSpeed > threshold {
			exceeding = append(exceeding, item.WindSpeed)
		}
	}

	if len(exceeding) == 0 {
		return nil
	}

	maxWind := exceeding[0]
	for _, w := range exceeding[1:] {
		if w > maxWind {
			maxWind = w
		}
	}

	start := now
	return &models.Alert{
		ID:              newAlertID(),
		Type:            models.AlertTypeStorm,
		Severity:        windSeverity(maxWind),
		Title:           "High Wind / Storm Alert",
		Message:         fmt.Sprintf("Wind speeds expected to reach %.1f km/h", maxWind),
		Recommendations: baseRecommendationsFor(models.AlertTypeStorm),
		StartTime:       &start,
		CreatedAt:       now,
	}
}

// checkColdWave mirrors the heatwave scan on the cold side, without the
// daytime restriction.
func checkColdWave(forecast []models.ForecastPoint, threshold float64, now time.Time) *models.Alert {
	cold := common.Filter(clipForecast(forecast, 24), func(p models.ForecastPoint) bool {
		return p.Temperature < threshold
	})

	if len(cold) < 3 {
		return nil
	}

	minTemp := cold[0].Temperature
	for _, item := range cold[1:] {
		if item.Temperature < minTemp {
			minTemp = item.Temperature
		}
	}

	start := cold[0].Timestamp
	end := cold[len(cold)-1].Timestamp

	return &models.Alert{
		ID:              newAlertID(),
		Type:            models.AlertTypeColdWave,
		Severity:        coldSeverity(minTemp),
		Title:           "Cold Wave Alert",
		Message:         fmt.Sprintf("Temperature expected to drop to %.1f°C for %d hours", minTemp, len(cold)),
		Recommendations: baseRecommendationsFor(models.AlertTypeColdWave),
		StartTime:       &start,
		EndTime:         &end,
		CreatedAt:       now,
	}
}

// checkHighHumidity triggers on the current humidity reading alone. Severity
// is fixed; the message carries a simplified heat-index estimate.
func checkHighHumidity(temperature, humidity, threshold float64, now time.Time) *models.Alert {
	if humidity <= threshold {
		return nil
	}

	heatIndex := temperature + (humidity-60)*0.1

	start := now
	return &models.Alert{
		ID:       newAlertID(),
		Type:     models.AlertTypeHighHumidity,
		Severity: models.SeverityModerate,
		Title:    "High Humidity Alert",
		Message: fmt.Sprintf("Humidity at %.0f%% with temperature %.1f°C (feels like %.1f°C)",
			humidity, temperature, heatIndex),
		Recommendations: baseRecommendationsFor(models.AlertTypeHighHumidity),
		StartTime:       &start,
		CreatedAt:       now,
	}
}

// prioritizeAlerts sorts by descending severity; ties keep detector order.
func prioritizeAlerts(alerts []models.Alert) []models.Alert {
	sort.SliceStable(alerts, func(i, j int) bool {
		return alerts[i].Severity.Rank() > alerts[j].Severity.Rank()
	})
	return alerts
}

func clipForecast(forecast []models.ForecastPoint, n int) []models.ForecastPoint {
	if len(forecast) > n {
		return forecast[:n]
	}
	return forecast
}

func heatwaveSeverity(maxTemp float64) models.Severity {
	switch {
	case maxTemp > 42:
		return models.SeveritySevere
	case maxTemp > 38:
		return models.SeverityHigh
	default:
		return models.SeverityModerate
	}
}

func rainSeverity(totalMM float64) models.Severity {
	switch {
	case totalMM > 150:
		return models.SeveritySevere
	case totalMM > 100:
		return models.SeverityHigh
	default:
		return models.SeverityModerate
	}
}

func windSeverity(windKmh float64) models.Severity {
	switch {
	case windKmh > 100:
		return models.SeveritySevere
	case windKmh > 80:
		return models.SeverityHigh
	default:
		return models.SeverityModerate
	}
}

func coldSeverity(minTemp float64) models.Severity {
	switch {
	case minTemp < -5:
		return models.SeveritySevere
	case minTemp < 0:
		return models.SeverityHigh
	default:
		return models.SeverityModerate
	}
}

type IEngineImpl struct {
	core *Core
}

func (ie *IEngineImpl) CheckAlerts(
	forecast []models.ForecastPoint,
	currentTemp, currentHumidity, currentWind float64,
	userType string,
	thresholds *models.ThresholdSet,
) []models.Alert {
	return ie.core.checkAlerts(forecast, currentTemp, currentHumidity, currentWind, userType, thresholds)
}

func (c *Core) GetIEngine() IEngine {
	return &IEngineImpl{core: c}
}
