package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/vfg2006/marketing-dashboard-api/internal/domain"
	"github.com/vfg2006/marketing-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/marketing-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/marketing-dashboard-api/pkg/log"
	"github.com/vfg2006/marketing-dashboard-api/pkg/utils"
)

// parseFilters extrai o período opcional (start_date, end_date) da query.
func parseFilters(r *http.Request) (*domain.ReportFilters, error) {
	startDate, err := utils.ParseDate(r.URL.Query().Get("start_date"))
	if err != nil {
		return nil, err
	}

	endDate, err := utils.ParseDate(r.URL.Query().Get("end_date"))
	if err != nil {
		return nil, err
	}

	return &domain.ReportFilters{
		StartDate: utils.DateOrNil(startDate),
		EndDate:   utils.DateOrNil(endDate),
	}, nil
}

func GetPlatformMetrics(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		logger.Info("metrics: fetching platform metrics report")

		filters, err := parseFilters(r)
		if err != nil {
			logger.WithError(err).Warn("metrics: invalid date filters")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		report, err := service.PlatformReport(r.Context(), filters)
		if err != nil {
			if errors.Is(err, reporting.ErrInvalidDateRange) {
				logger.WithError(err).Warn("metrics: invalid date range")
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
				return
			}

			logger.WithError(err).Error("metrics: failed to compute platform report")
			apiErrors.WriteError(w, apiErrors.ErrDatasetLoad, err.Error(), nil)
			return
		}

		if len(report.Warnings) > 0 {
			logger.WithField("warnings", len(report.Warnings)).Warn("metrics: report computed with data quality warnings")
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(report); err != nil {
			logger.WithError(err).Error("metrics: failed to encode response")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

func GetKPISummary(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		logger.Info("metrics: fetching KPI summary")

		filters, err := parseFilters(r)
		if err != nil {
			logger.WithError(err).Warn("metrics: invalid date filters")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		summary, err := service.KPISummary(r.Context(), filters)
		if err != nil {
			if errors.Is(err, reporting.ErrInvalidDateRange) {
				logger.WithError(err).Warn("metrics: invalid date range")
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
				return
			}

			logger.WithError(err).Error("metrics: failed to compute KPI summary")
			apiErrors.WriteError(w, apiErrors.ErrDatasetLoad, err.Error(), nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(summary); err != nil {
			logger.WithError(err).Error("metrics: failed to encode response")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

func GetAttributionModels(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		logger.Info("metrics: fetching attribution models")

		filters, err := parseFilters(r)
		if err != nil {
			logger.WithError(err).Warn("metrics: invalid date filters")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		models, err := service.AttributionModels(r.Context(), filters)
		if err != nil {
			if errors.Is(err, reporting.ErrInvalidDateRange) {
				logger.WithError(err).Warn("metrics: invalid date range")
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
				return
			}

			logger.WithError(err).Error("metrics: failed to compute attribution models")
			apiErrors.WriteError(w, apiErrors.ErrDatasetLoad, err.Error(), nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(models); err != nil {
			logger.WithError(err).Error("metrics: failed to encode response")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}
