package alerting

import (
	"bufio"
	"encoding/json"
	"io"
	"testing"

	"go.uber.org/mock/gomock"
	"skywarden.dev/weather-alert-service/pkg/alerting/mocks"
	"skywarden.dev/weather-alert-service/pkg/db"
)

func GetMockCoreWithMemorySqliteDialector(t *testing.T, useMockIEngine, useMockISeismic, useMockIHistory, useMockIPreference, useMockIToken bool) (
	*gomock.Controller,
	*Core,
	*mocks.MockIEngine,
	*mocks.MockISeismic,
	*mocks.MockIHistory,
	*mocks.MockIPreference,
	*mocks.MockIToken,
) {
	ctrl := gomock.NewController(t)

	mockIEngine := mocks.NewMockIEngine(ctrl)
	mockISeismic := mocks.NewMockISeismic(ctrl)
	mockIHistory := mocks.NewMockIHistory(ctrl)
	mockIPreference := mocks.NewMockIPreference(ctrl)
	mockIToken := mocks.NewMockIToken(ctrl)
	dialector := db.UseMemorySqliteDialector()
	dbInstance := db.GetInstance(dialector) // ensure migrations
	core := &Core{Db: *dbInstance}

	engineService := core.GetIEngine()
	if useMockIEngine {
		engineService = mockIEngine
	}

	seismicService := core.GetISeismic()
	if useMockISeismic {
		seismicService = mockISeismic
	}

	historyService := core.GetIHistory()
	if useMockIHistory {
		historyService = mockIHistory
	}

	preferenceService := core.GetIPreference()
	if useMockIPreference {
		preferenceService = mockIPreference
	}

	tokenService := core.GetIToken()
	if useMockIToken {
		tokenService = mockIToken
	}

	core.WithServices(ServiceOpts{
		Engine:     engineService,
		Seismic:    seismicService,
		History:    historyService,
		Preference: preferenceService,
		Token:      tokenService,
	})

	return ctrl, core, mockIEngine, mockISeismic, mockIHistory, mockIPreference, mockIToken
}

func ParseLogs(r io.Reader) []any {
	scanner := bufio.NewScanner(r)
	var logs []any

	for scanner.Scan() {
		line := scanner.Text()
		var j any
		if err := json.Unmarshal([]byte(line), &j); err == nil {
			logs = append(logs, j)
		}
	}
	return logs
}
