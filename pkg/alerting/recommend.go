package alerting

import "skywarden.dev/weather-alert-service/pkg/models"

// baseRecommendations is the fixed advice every alert of a given type
// carries before personalization.
var baseRecommendations = map[models.AlertType][]string{
	models.AlertTypeHeatwave: {
		"Avoid outdoor activities during peak hours (12 PM - 4 PM)",
		"Stay hydrated and drink plenty of water",
		"Use sunscreen and wear protective clothing",
		"Check on elderly and vulnerable individuals",
	},
	models.AlertTypeHeavyRain: {
		"Carry an umbrella or raincoat",
		"Allow extra time for commute",
		"Avoid flood-prone areas",
		"Check weather updates regularly",
	},
	models.AlertTypeStorm: {
		"Stay indoors if possible",
		"Secure loose objects outdoors",
		"Avoid areas with trees and power lines",
		"Postpone outdoor activities",
	},
	models.AlertTypeColdWave: {
		"Wear warm clothing in layers",
		"Protect exposed skin",
		"Check heating systems",
		"Be aware of frost and ice",
	},
	models.AlertTypeHighHumidity: {
		"Stay in air-conditioned spaces",
		"Drink plenty of fluids",
		"Limit strenuous outdoor activities",
		"Watch for signs of heat exhaustion",
	},
}

// userRecommendations maps (user type, alert type) to the extra advice
// appended after the base set. Pairs without an entry get base advice only.
var userRecommendations = map[models.UserType]map[models.AlertType][]string{
	models.UserTypeStudent: {
		models.AlertTypeHeatwave:     {"Plan indoor study sessions", "Carry water bottle to school"},
		models.AlertTypeHeavyRain:    {"Allow extra time for commute", "Keep books and electronics protected"},
		models.AlertTypeStorm:        {"Stay in school building if weather worsens", "Inform parents about weather"},
		models.AlertTypeHighHumidity: {"Stay in air-conditioned classrooms", "Carry extra water to school"},
	},
	models.UserTypeFarmer: {
		models.AlertTypeHeatwave:     {"Work during early morning or late evening", "Ensure worker hydration"},
		models.AlertTypeHeavyRain:    {"Protect crops and equipment", "Check drainage systems", "Delay harvesting"},
		models.AlertTypeStorm:        {"Secure farm equipment", "Protect livestock", "Check barn structures"},
		models.AlertTypeColdWave:     {"Protect sensitive crops", "Ensure livestock shelter", "Check irrigation systems"},
		models.AlertTypeHighHumidity: {"Monitor crop health for fungal diseases", "Ensure proper ventilation in storage"},
	},
	models.UserTypeTraveller: {
		models.AlertTypeHeatwave:     {"Plan indoor activities", "Carry sufficient water", "Avoid peak sun hours"},
		models.AlertTypeHeavyRain:    {"Check road conditions", "Avoid flood-prone routes", "Have alternate plans"},
		models.AlertTypeStorm:        {"Postpone travel if possible", "Seek shelter", "Avoid coastal areas"},
		models.AlertTypeHighHumidity: {"Plan indoor sightseeing", "Stay hydrated during outdoor activities"},
	},
	models.UserTypeDeliveryWorker: {
		models.AlertTypeHeatwave:     {"Schedule deliveries for cooler hours", "Keep vehicle AC functional"},
		models.AlertTypeHeavyRain:    {"Use waterproof packaging", "Plan safer routes"},
		models.AlertTypeStorm:        {"Delay deliveries if unsafe", "Stay in touch with dispatch"},
		models.AlertTypeHighHumidity: {"Take frequent breaks in AC", "Keep extra water in vehicle"},
	},
	models.UserTypeGeneral: {
		models.AlertTypeHeatwave:     {"Stay indoors during peak hours", "Drink plenty of water"},
		models.AlertTypeHeavyRain:    {"Carry umbrella", "Avoid unnecessary travel"},
		models.AlertTypeStorm:        {"Stay indoors", "Secure outdoor items"},
		models.AlertTypeColdWave:     {"Wear warm clothing", "Keep heating systems ready"},
		models.AlertTypeHighHumidity: {"Use air conditioning if available", "Stay hydrated"},
	},
}

// baseRecommendationsFor returns a fresh copy so personalization can append
// without mutating the shared table.
func baseRecommendationsFor(alertType models.AlertType) []string {
	base := baseRecommendations[alertType]
	out := make([]string, len(base))
	copy(out, base)
	return out
}

// personalizeAlerts appends the user-type specific advice to each alert, in
// a single pass. Unknown user types leave alerts untouched.
func personalizeAlerts(alerts []models.Alert, userType string) []models.Alert {
	ut, ok := models.ParseUserType(userType)
	if !ok {
		return alerts
	}
	perType, ok := userRecommendations[ut]
	if !ok {
		return alerts
	}
	for i := range alerts {
		if extra, ok := perType[alerts[i].Type]; ok {
			alerts[i].Recommendations = append(alerts[i].Recommendations, extra...)
		}
	}
	return alerts
}
