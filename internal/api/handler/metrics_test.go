package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/marketing-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/marketing-dashboard-api/internal/domain"
	"github.com/vfg2006/marketing-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/marketing-dashboard-api/internal/usecases/reporting/mocks"
	"github.com/vfg2006/marketing-dashboard-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func newMetricsRouter(service *mocks.MockReporter) http.Handler {
	rt := router.New(
		router.WithRoutes(Metrics(service)...),
	)
	return rt
}

func fixtureReport() *domain.PlatformReport {
	return &domain.PlatformReport{
		Platforms: []domain.PlatformMetrics{
			{
				Platform: "facebook",
				Spend:    1000,
				Revenue:  4000,
				ROAS:     domain.DefinedRatio(4.0),
				CPC:      domain.DefinedRatio(2.0),
			},
			{
				Platform: "google",
				Spend:    500,
				CPC:      domain.UndefinedRatio(),
			},
		},
		Totals: domain.AggregateTotals{Spend: 1500, Revenue: 4000},
	}
}

func TestGetPlatformMetrics(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mocks.NewMockReporter(ctrl)
	mockService.EXPECT().
		PlatformReport(gomock.Any(), gomock.Any()).
		Return(fixtureReport(), nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/metrics/platforms", nil)
	rec := httptest.NewRecorder()

	newMetricsRouter(mockService).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body, "platforms")
	assert.Contains(t, body, "totals")

	// Métrica indefinida serializa como null, nunca NaN ou zero disfarçado.
	assert.Contains(t, rec.Body.String(), `"cpc":null`)
}

func TestGetPlatformMetricsInvalidDateFilter(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// O serviço não chega a ser chamado com filtros malformados.
	mockService := mocks.NewMockReporter(ctrl)

	req := httptest.NewRequest(http.MethodGet, "/v1/metrics/platforms?start_date=15-01-2024", nil)
	rec := httptest.NewRecorder()

	newMetricsRouter(mockService).ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var apiErr apiErrors.APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
	assert.Equal(t, apiErrors.ErrInvalidFormat, apiErr.Code)
}

func TestGetPlatformMetricsDateFiltersForwarded(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)

	mockService := mocks.NewMockReporter(ctrl)
	mockService.EXPECT().
		PlatformReport(gomock.Any(), &domain.ReportFilters{StartDate: &start, EndDate: &end}).
		Return(fixtureReport(), nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/metrics/platforms?start_date=2024-01-01&end_date=2024-01-31", nil)
	rec := httptest.NewRecorder()

	newMetricsRouter(mockService).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGetPlatformMetricsInvalidDateRange(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mocks.NewMockReporter(ctrl)
	mockService.EXPECT().
		PlatformReport(gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("%w: 2024-02-01 > 2024-01-01", reporting.ErrInvalidDateRange))

	req := httptest.NewRequest(http.MethodGet, "/v1/metrics/platforms?start_date=2024-02-01&end_date=2024-01-01", nil)
	rec := httptest.NewRecorder()

	newMetricsRouter(mockService).ServeHTTP(rec, req)

	// Período invertido é erro de validação do cliente, nunca 500.
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var apiErr apiErrors.APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
	assert.Equal(t, apiErrors.ErrInvalidFormat, apiErr.Code)
}

func TestGetPlatformMetricsServiceError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mocks.NewMockReporter(ctrl)
	mockService.EXPECT().
		PlatformReport(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("arquivo de dados indisponível"))

	req := httptest.NewRequest(http.MethodGet, "/v1/metrics/platforms", nil)
	rec := httptest.NewRecorder()

	newMetricsRouter(mockService).ServeHTTP(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var apiErr apiErrors.APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
	assert.Equal(t, apiErrors.ErrDatasetLoad, apiErr.Code)
}

func TestGetKPISummary(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mocks.NewMockReporter(ctrl)
	mockService.EXPECT().
		KPISummary(gomock.Any(), gomock.Any()).
		Return(&domain.KPISummary{
			Days:         31,
			Rows:         120,
			BestPlatform: "facebook",
			BestROAS:     domain.DefinedRatio(4.2),
		}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/metrics/summary", nil)
	rec := httptest.NewRecorder()

	newMetricsRouter(mockService).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var summary domain.KPISummary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &summary))
	assert.Equal(t, 31, summary.Days)
	assert.Equal(t, "facebook", summary.BestPlatform)
}

func TestGetAttributionModels(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mocks.NewMockReporter(ctrl)
	mockService.EXPECT().
		AttributionModels(gomock.Any(), gomock.Any()).
		Return(&domain.AttributionModels{
			LastClick:  map[string]float64{"facebook": 4000},
			SpendBased: map[string]float64{"facebook": 4000},
			Linear:     map[string]float64{"facebook": 4000},
		}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/metrics/attribution", nil)
	rec := httptest.NewRecorder()

	newMetricsRouter(mockService).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var models domain.AttributionModels
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &models))
	assert.Equal(t, 4000.0, models.LastClick["facebook"])
}
