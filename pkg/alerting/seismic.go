package alerting

import (
	"fmt"
	"math"
	"sort"

	"go.uber.org/zap"
	"skywarden.dev/weather-alert-service/pkg/common"
	"skywarden.dev/weather-alert-service/pkg/models"
)

// tsunamiSpeedKmh is the open-ocean wave speed used for arrival estimates.
const tsunamiSpeedKmh = 800.0

// tsunamiMinMagnitude is the smallest triggering earthquake considered a
// tsunami candidate.
const tsunamiMinMagnitude = 6.0

// earthquakeAdvice maps user type and severity to the advice sentence
// appended after the base message. Unrecognized user types fall back to
// GENERAL.
var earthquakeAdvice = map[models.UserType]map[models.SeismicSeverity]string{
	models.UserTypeStudent: {
		models.SeismicCritical: " TAKE COVER NOW! Drop, Cover, and Hold On. Stay away from windows. Follow your school's earthquake drill procedures.",
		models.SeismicWarning:  " Stay alert. If you feel shaking, drop under a desk and hold on. Inform teachers and stay calm.",
		models.SeismicInfo:     " Be aware of this seismic activity. Review earthquake safety procedures with your school.",
	},
	models.UserTypeFarmer: {
		models.SeismicCritical: " Secure livestock immediately. Move away from structures and equipment. Check for gas leaks and structural damage after shaking stops.",
		models.SeismicWarning:  " Monitor your animals for unusual behavior. Secure heavy equipment. Be prepared for aftershocks.",
		models.SeismicInfo:     " Check farm structures for any damage. Ensure water sources are not contaminated.",
	},
	models.UserTypeTraveller: {
		models.SeismicCritical: " Seek shelter immediately in a sturdy building. Stay away from coastal areas if near the ocean (tsunami risk). Do not use elevators.",
		models.SeismicWarning:  " Avoid traveling to the affected area. Check with local authorities. Have an emergency plan ready.",
		models.SeismicInfo:     " Monitor local news for updates. Be aware of potential travel disruptions in the region.",
	},
	models.UserTypeDeliveryWorker: {
		models.SeismicCritical: " Stop your vehicle safely away from buildings, bridges, and power lines. Stay inside until shaking stops.",
		models.SeismicWarning:  " Avoid routes near the affected area. Check road conditions before proceeding. Stay in communication with dispatch.",
		models.SeismicInfo:     " Be aware of potential road damage or closures in the affected region.",
	},
	models.UserTypeGeneral: {
		models.SeismicCritical: " DROP, COVER, and HOLD ON! Get under sturdy furniture. Stay away from windows and outside walls. Do not run outside.",
		models.SeismicWarning:  " Be prepared for aftershocks. Have emergency supplies ready. Check on neighbors.",
		models.SeismicInfo:     " Stay informed through official channels. Review your emergency preparedness plan.",
	},
}

var tsunamiActions = map[models.SeismicSeverity]string{
	models.SeismicCritical: " EVACUATE IMMEDIATELY to higher ground (at least 30m above sea level or 3km inland). Do not wait for official evacuation orders.",
	models.SeismicWarning:  " Move to higher ground as a precaution. Stay away from beaches and coastal areas. Monitor official channels.",
	models.SeismicInfo:     " Stay informed through official channels. Be prepared to evacuate if warning is upgraded.",
}

var tsunamiAdvice = map[models.UserType]string{
	models.UserTypeStudent:        " If at school, follow evacuation procedures. Move to upper floors or inland immediately.",
	models.UserTypeFarmer:         " Secure livestock and move to higher ground. Do not attempt to save equipment - prioritize safety.",
	models.UserTypeTraveller:      " Leave coastal hotels immediately. Head inland or to high ground. Do not use elevators.",
	models.UserTypeDeliveryWorker: " Abandon deliveries. Drive inland immediately. Alert dispatch of your location.",
	models.UserTypeGeneral:        " Take tsunami warnings seriously. Move quickly but calmly to safety.",
}

// earthquakeSeverity classifies by magnitude and proximity.
func earthquakeSeverity(magnitude, distanceKm float64) models.SeismicSeverity {
	switch {
	case magnitude >= 7.0 && distanceKm < 100:
		return models.SeismicCritical
	case magnitude >= 6.0 && distanceKm < 50:
		return models.SeismicCritical
	case magnitude >= 6.5 && distanceKm < 200:
		return models.SeismicWarning
	case magnitude >= 5.5 && distanceKm < 100:
		return models.SeismicWarning
	case distanceKm < ImpactRadius(magnitude):
		return models.SeismicWarning
	default:
		return models.SeismicInfo
	}
}

// tsunamiSeverity applies only to coastal locations; everywhere else is
// informational regardless of magnitude.
func tsunamiSeverity(magnitude, distanceKm float64, isCoastal bool) models.SeismicSeverity {
	if !isCoastal {
		return models.SeismicInfo
	}
	switch {
	case magnitude >= 8.0 && distanceKm < 500:
		return models.SeismicCritical
	case magnitude >= 7.5 && distanceKm < 300:
		return models.SeismicCritical
	case magnitude >= 7.0 && distanceKm < 800:
		return models.SeismicWarning
	case magnitude >= 6.5 && distanceKm < 500:
		return models.SeismicWarning
	default:
		return models.SeismicInfo
	}
}

func adviceFor(userType string, severity models.SeismicSeverity) string {
	ut, ok := models.ParseUserType(userType)
	if !ok {
		ut = models.UserTypeGeneral
	}
	return earthquakeAdvice[ut][severity]
}

func tsunamiAdviceFor(userType string) string {
	ut, ok := models.ParseUserType(userType)
	if !ok {
		ut = models.UserTypeGeneral
	}
	return tsunamiAdvice[ut]
}

func (c *Core) classifyEarthquakes(
	events []models.SeismicEvent,
	lat, lon float64,
	userType string,
	maxDistanceKm float64,
) []models.SeismicAlert {
	logger := common.GetLoggerWith(
		common.LoggerNameAlertCore,
		zap.String(common.LoggerFieldAlertCategory, common.LoggerCategorySeismic),
	)

	alerts := []models.SeismicAlert{}

	for _, ev := range events {
		distance := Haversine(lat, lon, ev.Latitude, ev.Longitude)

		if distance > math.Max(ImpactRadius(ev.Magnitude), maxDistanceKm) {
			continue
		}

		severity := earthquakeSeverity(ev.Magnitude, distance)

		baseMsg := fmt.Sprintf("Magnitude %.1f earthquake occurred %.0fkm away near %s.",
			ev.Magnitude, distance, ev.Place)

		alerts = append(alerts, models.SeismicAlert{
			ID:          "eq_" + ev.ID,
			Type:        models.SeismicKindEarthquake,
			Severity:    severity,
			Title:       fmt.Sprintf("Magnitude %.1f Earthquake", ev.Magnitude),
			Message:     fmt.Sprintf("Earthquake detected %.0fkm from your location", distance),
			UserMessage: baseMsg + adviceFor(userType, severity),
			Location: models.EpicenterLocation{
				Description: ev.Place,
				Lat:         ev.Latitude,
				Lon:         ev.Longitude,
			},
			DistanceKm: roundTo1(distance),
			EventTime:  ev.Time,
			Metadata: map[string]any{
				"magnitude":         ev.Magnitude,
				"depth_km":          ev.DepthKm,
				"felt_reports":      ev.FeltReports,
				"tsunami_potential": ev.Tsunami,
			},
			Source:    "USGS",
			SourceURL: ev.URL,
			UserType:  userType,
		})
	}

	// closest first
	sort.SliceStable(alerts, func(i, j int) bool {
		return alerts[i].DistanceKm < alerts[j].DistanceKm
	})

	logger.Info("Classified earthquake events",
		zap.Int("events", len(events)), zap.Int("alerts", len(alerts)))

	return alerts
}

func (c *Core) classifyTsunamis(
	events []models.SeismicEvent,
	lat, lon float64,
	userType string,
	maxDistanceKm float64,
) []models.SeismicAlert {
	logger := common.GetLoggerWith(
		common.LoggerNameAlertCore,
		zap.String(common.LoggerFieldAlertCategory, common.LoggerCategorySeismic),
	)

	isCoastal := c.coastal()(lat, lon)
	alerts := []models.SeismicAlert{}

	for _, ev := range events {
		// an earthquake is its own tsunami trigger
		if !ev.Tsunami || ev.Magnitude < tsunamiMinMagnitude {
			continue
		}

		distance := Haversine(lat, lon, ev.Latitude, ev.Longitude)
		if distance > maxDistanceKm {
			continue
		}

		severity := tsunamiSeverity(ev.Magnitude, distance, isCoastal)
		arrivalMinutes := int(math.Round(distance / tsunamiSpeedKmh * 60))

		var baseMsg string
		var arrival any
		if distance < 500 {
			baseMsg = fmt.Sprintf(
				"TSUNAMI WARNING: Magnitude %.1f earthquake near %s. Tsunami waves may arrive in approximately %d minutes.",
				ev.Magnitude, ev.Place, arrivalMinutes)
			arrival = arrivalMinutes
		} else {
			baseMsg = fmt.Sprintf(
				"TSUNAMI WARNING: Magnitude %.1f earthquake near %s (%.0fkm away). Tsunami waves possible.",
				ev.Magnitude, ev.Place, distance)
			arrival = nil
		}

		alerts = append(alerts, models.SeismicAlert{
			ID:          "tsunami_" + ev.ID,
			Type:        models.SeismicKindTsunami,
			Severity:    severity,
			Title:       fmt.Sprintf("Tsunami Warning - Magnitude %.1f Earthquake", ev.Magnitude),
			Message:     fmt.Sprintf("Tsunami possible from earthquake %.0fkm away", distance),
			UserMessage: baseMsg + tsunamiActions[severity] + tsunamiAdviceFor(userType),
			Location: models.EpicenterLocation{
				Description: ev.Place,
				Lat:         ev.Latitude,
				Lon:         ev.Longitude,
			},
			DistanceKm: roundTo1(distance),
			EventTime:  ev.Time,
			Metadata: map[string]any{
				"trigger_magnitude":         ev.Magnitude,
				"depth_km":                  ev.DepthKm,
				"estimated_arrival_minutes": arrival,
				"tsunami_speed_kmh":         tsunamiSpeedKmh,
				"is_coastal_area":           isCoastal,
			},
			Source:    "USGS",
			SourceURL: ev.URL,
			UserType:  userType,
		})
	}

	// most severe first; within a tier the farthest wave front sorts first
	sort.SliceStable(alerts, func(i, j int) bool {
		if alerts[i].Severity.Rank() != alerts[j].Severity.Rank() {
			return alerts[i].Severity.Rank() > alerts[j].Severity.Rank()
		}
		return alerts[i].DistanceKm > alerts[j].DistanceKm
	})

	logger.Info("Classified tsunami candidates",
		zap.Int("events", len(events)), zap.Int("alerts", len(alerts)))

	return alerts
}

func roundTo1(v float64) float64 {
	return math.Round(v*10) / 10
}

type ISeismicImpl struct {
	core *Core
}

func (is *ISeismicImpl) ClassifyEarthquakes(events []models.SeismicEvent, lat, lon float64, userType string, maxDistanceKm float64) []models.SeismicAlert {
	return is.core.classifyEarthquakes(events, lat, lon, userType, maxDistanceKm)
}

func (is *ISeismicImpl) ClassifyTsunamis(events []models.SeismicEvent, lat, lon float64, userType string, maxDistanceKm float64) []models.SeismicAlert {
	return is.core.classifyTsunamis(events, lat, lon, userType, maxDistanceKm)
}

func (c *Core) GetISeismic() ISeismic {
	return &ISeismicImpl{core: c}
}
