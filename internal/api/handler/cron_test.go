package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/marketing-dashboard-api/infrastructure/dataset/mocks"
	"github.com/vfg2006/marketing-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/marketing-dashboard-api/internal/config"
	"github.com/vfg2006/marketing-dashboard-api/internal/domain"
	"github.com/vfg2006/marketing-dashboard-api/internal/scheduler"
	"github.com/vfg2006/marketing-dashboard-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func newCronRouter(t *testing.T, ctrl *gomock.Controller) (http.Handler, *mocks.MockLoader, *scheduler.DatasetRefreshService) {
	t.Helper()

	mockLoader := mocks.NewMockLoader(ctrl)

	refreshService := scheduler.NewDatasetRefreshService(mockLoader, &config.Config{
		DatasetRefresh: config.DatasetRefresh{
			CronSchedule: "*/15 * * * *",
			Enabled:      true,
		},
	})

	rt := router.New(
		router.WithRoutes(CronJobs(CronJobServices{
			DatasetRefreshService: refreshService,
		})...),
	)

	return rt, mockLoader, refreshService
}

func TestRunCronJob(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	rt, mockLoader, refreshService := newCronRouter(t, ctrl)

	mockLoader.EXPECT().
		Load(gomock.Any()).
		Return(&domain.Dataset{}, nil)

	req := httptest.NewRequest(http.MethodPost, "/v1/cron/dataset/run", nil)
	rec := httptest.NewRecorder()

	rt.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "dataset", body["type"])

	// O refresh roda em background; esperar a conclusão antes de encerrar
	// o controller do mock.
	require.Eventually(t, func() bool {
		status := refreshService.GetStatus()
		return status["running"] == false && status["last_run_id"] != ""
	}, time.Second, 10*time.Millisecond)
}

func TestRunCronJobInvalidType(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	rt, _, _ := newCronRouter(t, ctrl)

	req := httptest.NewRequest(http.MethodPost, "/v1/cron/unknown/run", nil)
	rec := httptest.NewRecorder()

	rt.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var apiErr apiErrors.APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
	assert.Equal(t, apiErrors.ErrInvalidRequest, apiErr.Code)
}

func TestGetCronStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	rt, _, _ := newCronRouter(t, ctrl)

	req := httptest.NewRequest(http.MethodGet, "/v1/cron/status", nil)
	rec := httptest.NewRecorder()

	rt.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Contains(t, body, "dataset")
	assert.Equal(t, true, body["dataset"]["enabled"])
	assert.Equal(t, "*/15 * * * *", body["dataset"]["cron_schedule"])
}

func TestHealthcheckHandler(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/healthcheck", nil)
	rec := httptest.NewRecorder()

	rt := router.New(router.WithRoutes(Healthcheck()...))
	rt.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Body.String())
}
