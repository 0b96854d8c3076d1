package alerting

import (
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"skywarden.dev/weather-alert-service/pkg/common"
	"skywarden.dev/weather-alert-service/pkg/models"
)

func (c *Core) upsertPreferences(userID string, input *models.UserPreferences) error {
	logger := common.GetLoggerWith(
		common.LoggerNameAlertCore,
		zap.String(common.LoggerFieldAlertCategory, common.LoggerCategoryPreference),
	)

	prefs := models.UserPreferences{
		UserID:              userID,
		UserType:            input.UserType,
		Thresholds:          input.Thresholds,
		NotificationEnabled: input.NotificationEnabled,
		TemperatureUnit:     input.TemperatureUnit,
	}

	logger.Info("Received preferences for user", zap.Reflect("preferences", prefs))

	err := c.Db.Conn.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		UpdateAll: true,
	}).Create(&prefs).Error

	if err == nil {
		logger.Info("Upserted preferences for user", zap.Reflect("preferences", prefs))
	}

	return err
}

func (c *Core) getPreferences(userID string) (*models.UserPreferences, error) {
	var prefs models.UserPreferences
	err := c.Db.Conn.First(&prefs, "user_id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// unknown users get defaults, not an error
		defaults := models.DefaultPreferences(userID)
		return &defaults, nil
	}
	if err != nil {
		return nil, err
	}
	return &prefs, nil
}

func (c *Core) deletePreferences(userID string) error {
	result := c.Db.Conn.Delete(&models.UserPreferences{}, "user_id = ?", userID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

type IPreferenceImpl struct {
	core *Core
}

func (ip *IPreferenceImpl) UpsertPreferences(userID string, input *models.UserPreferences) error {
	return ip.core.upsertPreferences(userID, input)
}

func (ip *IPreferenceImpl) GetPreferences(userID string) (*models.UserPreferences, error) {
	return ip.core.getPreferences(userID)
}

func (ip *IPreferenceImpl) DeletePreferences(userID string) error {
	return ip.core.deletePreferences(userID)
}

func (c *Core) GetIPreference() IPreference {
	return &IPreferenceImpl{core: c}
}
