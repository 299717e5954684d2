package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/marketing-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/marketing-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/marketing-dashboard-api/pkg/log"
)

func GetPlatformTimeSeries(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		platform := httprouter.ParamsFromContext(r.Context()).ByName("name")
		logger.WithField("platform", platform).Info("timeseries: fetching platform time series")

		filters, err := parseFilters(r)
		if err != nil {
			logger.WithFields(log.Fields{
				"platform": platform,
				"error":    err.Error(),
			}).Warn("timeseries: invalid date filters")

			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		series, err := service.PlatformTimeSeries(r.Context(), platform, filters)
		if err != nil {
			if errors.Is(err, reporting.ErrUnknownPlatform) {
				logger.WithField("platform", platform).Warn("timeseries: unknown platform")
				apiErrors.WriteError(w, apiErrors.ErrUnknownPlatform, err.Error(), nil)
				return
			}

			if errors.Is(err, reporting.ErrInvalidDateRange) {
				logger.WithField("platform", platform).Warn("timeseries: invalid date range")
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
				return
			}

			logger.WithFields(log.Fields{
				"platform": platform,
				"error":    err.Error(),
			}).Error("timeseries: failed to build time series")

			apiErrors.WriteError(w, apiErrors.ErrDatasetLoad, err.Error(), nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(series); err != nil {
			logger.WithError(err).Error("timeseries: failed to encode response")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}
