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
	"github.com/vfg2006/marketing-dashboard-api/internal/domain"
	"github.com/vfg2006/marketing-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/marketing-dashboard-api/internal/usecases/reporting/mocks"
	"github.com/vfg2006/marketing-dashboard-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func TestGetPlatformTimeSeries(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mocks.NewMockReporter(ctrl)
	mockService.EXPECT().
		PlatformTimeSeries(gomock.Any(), "facebook", gomock.Any()).
		Return(&domain.TimeSeries{
			Platform: "facebook",
			Points: []domain.TimeSeriesPoint{
				{Date: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), Spend: 100, Revenue: 400},
			},
		}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/platforms/facebook/timeseries", nil)
	rec := httptest.NewRecorder()

	newMetricsRouter(mockService).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var series domain.TimeSeries
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &series))
	assert.Equal(t, "facebook", series.Platform)
	require.Len(t, series.Points, 1)
	assert.Equal(t, 100.0, series.Points[0].Spend)
}

func TestGetPlatformTimeSeriesUnknownPlatform(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mocks.NewMockReporter(ctrl)
	mockService.EXPECT().
		PlatformTimeSeries(gomock.Any(), "bing", gomock.Any()).
		Return(nil, fmt.Errorf("%w: bing", reporting.ErrUnknownPlatform))

	req := httptest.NewRequest(http.MethodGet, "/v1/platforms/bing/timeseries", nil)
	rec := httptest.NewRecorder()

	newMetricsRouter(mockService).ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)

	var apiErr apiErrors.APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
	assert.Equal(t, apiErrors.ErrUnknownPlatform, apiErr.Code)
}

func TestGetPlatformTimeSeriesServiceError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mocks.NewMockReporter(ctrl)
	mockService.EXPECT().
		PlatformTimeSeries(gomock.Any(), "facebook", gomock.Any()).
		Return(nil, errors.New("arquivo de dados indisponível"))

	req := httptest.NewRequest(http.MethodGet, "/v1/platforms/facebook/timeseries", nil)
	rec := httptest.NewRecorder()

	newMetricsRouter(mockService).ServeHTTP(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var apiErr apiErrors.APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
	assert.Equal(t, apiErrors.ErrDatasetLoad, apiErr.Code)
}
