package alerting

// Risk scoring weights. Must sum to 1.0 so the composite stays in [0,100].
const (
	weightTemperature   = 0.30
	weightPrecipitation = 0.25
	weightWind          = 0.25
	weightHumidity      = 0.10
	weightVisibility    = 0.10
)

// RiskScore combines the five sub-scores into a 0-100 composite.
func RiskScore(temperature, precipitationMM, windKmh, humidityPct, visibilityKm float64) float64 {
	score := TemperatureRisk(temperature)*weightTemperature +
		PrecipitationRisk(precipitationMM)*weightPrecipitation +
		WindRisk(windKmh)*weightWind +
		HumidityRisk(humidityPct, temperature)*weightHumidity +
		VisibilityRisk(visibilityKm)*weightVisibility

	return clamp(score)
}

// TemperatureRisk is 0 inside the 15-25°C comfort band, reaching 100 at
// 45°C on the hot side and at -5°C on the cold side.
func TemperatureRisk(temp float64) float64 {
	switch {
	case temp >= 15 && temp <= 25:
		return 0.0
	case temp > 25:
		return clamp((temp - 25) / 20 * 100)
	default:
		return clamp((15 - temp) / 20 * 100)
	}
}

// PrecipitationRisk maps 0mm to 0 and 100mm+ to 100, linearly.
func PrecipitationRisk(precipMM float64) float64 {
	return clamp(precipMM / 100 * 100)
}

// WindRisk is piecewise linear: 0-30 km/h maps onto 0-30, 30-60 km/h onto
// 30-70, and 60+ km/h onto 70-100 saturating at 100 km/h.
func WindRisk(windKmh float64) float64 {
	switch {
	case windKmh < 30:
		return windKmh / 30 * 30
	case windKmh < 60:
		return 30 + (windKmh-30)/30*40
	default:
		return clamp(70 + (windKmh-60)/40*30)
	}
}

// HumidityRisk only applies when it is both hot and humid.
func HumidityRisk(humidityPct, temp float64) float64 {
	if temp < 25 || humidityPct < 60 {
		return 0.0
	}
	return clamp((humidityPct - 60) / 40 * 100)
}

// VisibilityRisk is 0 at 10km or better and climbs to 100 at zero visibility.
func VisibilityRisk(visibilityKm float64) float64 {
	if visibilityKm >= 10 {
		return 0.0
	}
	return clamp((10 - visibilityKm) / 10 * 100)
}

// RiskLevel buckets a score into its category. Boundaries are inclusive on
// the lower bucket, so exactly 20.0 is still LOW.
func RiskLevel(score float64) string {
	switch {
	case score <= 20:
		return "LOW"
	case score <= 40:
		return "MODERATE"
	case score <= 60:
		return "MEDIUM"
	case score <= 80:
		return "HIGH"
	default:
		return "SEVERE"
	}
}

func clamp(v float64) float64 {
	if v < 0 {
		return 0.0
	}
	if v > 100 {
		return 100.0
	}
	return v
}
