package alerting

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"skywarden.dev/weather-alert-service/pkg/common"
	"skywarden.dev/weather-alert-service/pkg/models"
	_ "skywarden.dev/weather-alert-service/pkg/testing"
)

func historyAlert(id string, createdAt time.Time) models.Alert {
	return models.Alert{
		ID:              id,
		Type:            models.AlertTypeStorm,
		Severity:        models.SeverityHigh,
		Title:           "High Wind / Storm Alert",
		Message:         "Wind speeds expected to reach 85.0 km/h",
		Recommendations: []string{"Stay indoors if possible"},
		CreatedAt:       createdAt,
	}
}

func TestStoreAndRecentAlerts(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, core, _, _, _, _, _ := GetMockCoreWithMemorySqliteDialector(t, false, false, false, false, false)
	defer ctrl.Finish()

	base := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	err := core.History.StoreAlerts([]models.Alert{
		historyAlert("alert_hist_old", base),
		historyAlert("alert_hist_mid", base.Add(time.Hour)),
		historyAlert("alert_hist_new", base.Add(2*time.Hour)),
	})
	assert.NoError(t, err)

	alerts, err := core.History.RecentAlerts(2)
	assert.NoError(t, err)
	assert.Len(t, alerts, 2)
	assert.Equal(t, "alert_hist_new", alerts[0].ID)
	assert.Equal(t, "alert_hist_mid", alerts[1].ID)
	assert.Equal(t, []string{"Stay indoors if possible"}, alerts[0].Recommendations)
}

func TestStoreAlertsEmpty(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, core, _, _, _, _, _ := GetMockCoreWithMemorySqliteDialector(t, false, false, false, false, false)
	defer ctrl.Finish()

	assert.NoError(t, core.History.StoreAlerts(nil))
}

func TestStoreAlertsCapsHistory(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, core, _, _, _, _, _ := GetMockCoreWithMemorySqliteDialector(t, false, false, false, false, false)
	defer ctrl.Finish()

	base := time.Date(2026, 8, 2, 0, 0, 0, 0, time.UTC)
	batch := make([]models.Alert, 0, 120)
	for i := 0; i < 120; i++ {
		batch = append(batch,
			historyAlert(fmt.Sprintf("alert_cap_%03d", i), base.Add(time.Duration(i)*time.Minute)))
	}

	assert.NoError(t, core.History.StoreAlerts(batch))

	var count int64
	assert.NoError(t, core.Db.Conn.Model(&models.Alert{}).Count(&count).Error)
	assert.Equal(t, int64(historyCap), count)

	// the newest rows survive the trim
	alerts, err := core.History.RecentAlerts(1)
	assert.NoError(t, err)
	assert.Len(t, alerts, 1)
	assert.Equal(t, "alert_cap_119", alerts[0].ID)
}

func TestDismissAlert(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, core, _, _, _, _, _ := GetMockCoreWithMemorySqliteDialector(t, false, false, false, false, false)
	defer ctrl.Finish()

	created := time.Date(2026, 8, 3, 0, 0, 0, 0, time.UTC)
	err := core.History.StoreAlerts([]models.Alert{historyAlert("alert_dismiss_me", created)})
	assert.NoError(t, err)

	assert.NoError(t, core.History.DismissAlert("alert_dismiss_me"))

	var alert models.Alert
	assert.NoError(t, core.Db.Conn.First(&alert, "id = ?", "alert_dismiss_me").Error)
	assert.True(t, alert.Acknowledged)

	// repeat dismissals are no-ops
	assert.NoError(t, core.History.DismissAlert("alert_dismiss_me"))
}

func TestDismissAlertNotFound(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, core, _, _, _, _, _ := GetMockCoreWithMemorySqliteDialector(t, false, false, false, false, false)
	defer ctrl.Finish()

	err := core.History.DismissAlert("alert_nope")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
