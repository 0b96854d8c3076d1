package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"skywarden.dev/weather-alert-service/pkg/models"

	z "github.com/Oudwins/zog"
	"github.com/Oudwins/zog/zhttp"
)

type PreferencesRequest struct {
	UserID              string              `json:"user_id"`
	UserType            string              `json:"user_type"`
	CustomThresholds    *ThresholdOverrides `json:"custom_thresholds"`
	NotificationEnabled *bool               `json:"notification_enabled"`
	TemperatureUnit     string              `json:"temperature_unit"`
}

var preferencesRequestSchema = z.Struct(z.Shape{
	"UserID":              z.String().Required(),
	"UserType":            z.String().Required(),
	"CustomThresholds":    z.Ptr(thresholdOverridesSchema),
	"NotificationEnabled": z.Ptr(z.Bool()),
	"TemperatureUnit":     z.String().Optional(),
})

func (rs *RestfulServer) SavePreferences(c *gin.Context) {
	if !rs.CheckClientLimiter(c.ClientIP()) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	var req PreferencesRequest
	if err := preferencesRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	userType, ok := models.ParseUserType(req.UserType)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown user type"})
		return
	}

	prefs := models.UserPreferences{
		UserID:              req.UserID,
		UserType:            userType,
		Thresholds:          req.CustomThresholds.Resolve(),
		NotificationEnabled: true,
		TemperatureUnit:     "celsius",
	}
	if req.NotificationEnabled != nil {
		prefs.NotificationEnabled = *req.NotificationEnabled
	}
	if req.TemperatureUnit != "" {
		prefs.TemperatureUnit = req.TemperatureUnit
	}

	if err := rs.Core.Preference.UpsertPreferences(req.UserID, &prefs); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save preferences"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Preferences saved successfully"})
}

func (rs *RestfulServer) GetPreferences(c *gin.Context) {
	if !rs.CheckClientLimiter(c.ClientIP()) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	prefs, err := rs.Core.Preference.GetPreferences(c.Param("user_id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load preferences"})
		return
	}

	c.JSON(http.StatusOK, prefs)
}

func (rs *RestfulServer) DeletePreferences(c *gin.Context) {
	if !rs.CheckClientLimiter(c.ClientIP()) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	if err := rs.Core.Preference.DeletePreferences(c.Param("user_id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user preferences not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Preferences deleted"})
}
