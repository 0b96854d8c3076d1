package alerting

import (
	"go.uber.org/zap"
	"skywarden.dev/weather-alert-service/pkg/common"
	"skywarden.dev/weather-alert-service/pkg/models"
)

// historyCap bounds the alert history table to the most recent rows.
const historyCap = 100

func (c *Core) storeAlerts(alerts []models.Alert) error {
	if len(alerts) == 0 {
		return nil
	}

	logger := common.GetLoggerWith(
		common.LoggerNameAlertCore,
		zap.String(common.LoggerFieldAlertCategory, common.LoggerCategoryHistory),
	)

	for i := range alerts {
		if err := c.Db.Conn.Create(&alerts[i]).Error; err != nil {
			return err
		}
	}

	logger.Info("Stored alerts in history", zap.Int("count", len(alerts)))

	// drop everything older than the newest historyCap rows
	return c.Db.Conn.Exec(
		`DELETE FROM alerts WHERE id NOT IN
		   (SELECT id FROM alerts ORDER BY created_at DESC LIMIT ?)`,
		historyCap,
	).Error
}

func (c *Core) recentAlerts(limit int) ([]models.Alert, error) {
	var alerts []models.Alert
	err := c.Db.Conn.
		Order("created_at desc").
		Limit(limit).
		Find(&alerts).Error
	return alerts, err
}

func (c *Core) dismissAlert(alertID string) error {
	var alert models.Alert
	if err := c.Db.Conn.First(&alert, "id = ?", alertID).Error; err != nil {
		return err
	}

	if alert.Acknowledged {
		// false -> true happens at most once; repeat dismissals are no-ops
		return nil
	}

	return c.Db.Conn.Model(&alert).Update("acknowledged", true).Error
}

type IHistoryImpl struct {
	core *Core
}

func (ih *IHistoryImpl) StoreAlerts(alerts []models.Alert) error {
	return ih.core.storeAlerts(alerts)
}

func (ih *IHistoryImpl) RecentAlerts(limit int) ([]models.Alert, error) {
	return ih.core.recentAlerts(limit)
}

func (ih *IHistoryImpl) DismissAlert(alertID string) error {
	return ih.core.dismissAlert(alertID)
}

func (c *Core) GetIHistory() IHistory {
	return &IHistoryImpl{core: c}
}
