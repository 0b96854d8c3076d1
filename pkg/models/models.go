package models

import "time"

type AlertType string

const (
	AlertTypeHeatwave     AlertType = "HEATWAVE"
	AlertTypeHeavyRain    AlertType = "HEAVY_RAIN"
	AlertTypeStorm        AlertType = "STORM"
	AlertTypeColdWave     AlertType = "COLD_WAVE"
	AlertTypeHighHumidity AlertType = "HIGH_HUMIDITY"
)

// Severity is the four-level weather alert classification. It is distinct
// from SeismicSeverity and the two must never be compared to each other.
type Severity string

const (
	SeverityLow      Severity = "LOW"
	SeverityModerate Severity = "MODERATE"
	SeverityHigh     Severity = "HIGH"
	SeveritySevere   Severity = "SEVERE"
)

func (s Severity) Rank() int {
	switch s {
	case SeveritySevere:
		return 4
	case SeverityHigh:
		return 3
	case SeverityModerate:
		return 2
	case SeverityLow:
		return 1
	default:
		return 0
	}
}

type UserType string

const (
	UserTypeStudent        UserType = "STUDENT"
	UserTypeFarmer         UserType = "FARMER"
	UserTypeTraveller      UserType = "TRAVELLER"
	UserTypeDeliveryWorker UserType = "DELIVERY_WORKER"
	UserTypeGeneral        UserType = "GENERAL"
)

// ParseUserType reports whether s names a known user type.
func ParseUserType(s string) (UserType, bool) {
	switch UserType(s) {
	case UserTypeStudent, UserTypeFarmer, UserTypeTraveller, UserTypeDeliveryWorker, UserTypeGeneral:
		return UserType(s), true
	}
	return "", false
}

// ThresholdSet holds the per-user trigger values for the five weather
// alert detectors.
type ThresholdSet struct {
	HeatwaveTemp    float64 `json:"heatwave_temp"`
	HeavyRainAmount float64 `json:"heavy_rain_amount"`
	HighWindSpeed   float64 `json:"high_wind_speed"`
	ColdWaveTemp    float64 `json:"cold_wave_temp"`
	HighHumidity    float64 `json:"high_humidity"`
}

func DefaultThresholds() ThresholdSet {
	return ThresholdSet{
		HeatwaveTemp:    35.0,
		HeavyRainAmount: 50.0,
		HighWindSpeed:   60.0,
		ColdWaveTemp:    5.0,
		HighHumidity:    85.0,
	}
}

// Alert is a weather alert. The engine creates it; afterwards it is owned
// by the caller and persisted into the history table as-is.
type Alert struct {
	ID              string     `gorm:"primaryKey" json:"id"`
	Type            AlertType  `gorm:"type:varchar(20);index" json:"type"`
	Severity        Severity   `gorm:"type:varchar(10)" json:"severity"`
	Title           string     `json:"title"`
	Message         string     `json:"message"`
	Recommendations []string   `gorm:"serializer:json" json:"recommendations"`
	StartTime       *time.Time `json:"start_time"`
	EndTime         *time.Time `json:"end_time"`
	CreatedAt       time.Time  `json:"created_at"`
	Acknowledged    bool       `json:"acknowledged"`
}

// UserPreferences is the stored per-user alert configuration.
type UserPreferences struct {
	UserID              string       `gorm:"primaryKey" json:"user_id"`
	UserType            UserType     `gorm:"type:varchar(20)" json:"user_type"`
	Thresholds          ThresholdSet `gorm:"embedded" json:"custom_thresholds"`
	NotificationEnabled bool         `json:"notification_enabled"`
	TemperatureUnit     string       `json:"temperature_unit"`
}

func DefaultPreferences(userID string) UserPreferences {
	return UserPreferences{
		UserID:              userID,
		UserType:            UserTypeStudent,
		Thresholds:          DefaultThresholds(),
		NotificationEnabled: true,
		TemperatureUnit:     "celsius",
	}
}

// DeviceToken is a registered push notification target for a user.
type DeviceToken struct {
	ID        uint      `gorm:"primaryKey" json:"-"`
	UserID    string    `gorm:"uniqueIndex:idx_user_token" json:"user_id"`
	Token     string    `gorm:"uniqueIndex:idx_user_token" json:"token"`
	Platform  string    `json:"platform"`
	CreatedAt time.Time `json:"created_at"`
}
