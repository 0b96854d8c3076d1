package alerting

import (
	"go.uber.org/zap"
	"gorm.io/gorm/clause"
	"skywarden.dev/weather-alert-service/pkg/common"
	"skywarden.dev/weather-alert-service/pkg/models"
)

func (c *Core) registerToken(userID, token, platform string) (int, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameAlertCore,
		zap.String(common.LoggerFieldAlertCategory, common.LoggerCategoryToken),
	)

	record := models.DeviceToken{
		UserID:    userID,
		Token:     token,
		Platform:  platform,
		CreatedAt: c.clock().Now(),
	}

	// duplicate registrations of the same token are silently kept once
	err := c.Db.Conn.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "token"}},
		DoNothing: true,
	}).Create(&record).Error
	if err != nil {
		return 0, err
	}

	var count int64
	if err := c.Db.Conn.Model(&models.DeviceToken{}).
		Where("user_id = ?", userID).
		Count(&count).Error; err != nil {
		return 0, err
	}

	logger.Info("Registered device token for user",
		zap.String("user_id", userID), zap.Int64("token_count", count))

	return int(count), nil
}

func (c *Core) getTokens(userID string) ([]string, error) {
	var tokens []string
	err := c.Db.Conn.Model(&models.DeviceToken{}).
		Where("user_id = ?", userID).
		Order("created_at asc").
		Pluck("token", &tokens).Error
	return tokens, err
}

func (c *Core) removeToken(userID, token string) (bool, error) {
	result := c.Db.Conn.
		Where("user_id = ? AND token = ?", userID, token).
		Delete(&models.DeviceToken{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

type ITokenImpl struct {
	core *Core
}

func (it *ITokenImpl) RegisterToken(userID, token, platform string) (int, error) {
	return it.core.registerToken(userID, token, platform)
}

func (it *ITokenImpl) GetTokens(userID string) ([]string, error) {
	return it.core.getTokens(userID)
}

func (it *ITokenImpl) RemoveToken(userID, token string) (bool, error) {
	return it.core.removeToken(userID, token)
}

func (c *Core) GetIToken() IToken {
	return &ITokenImpl{core: c}
}
