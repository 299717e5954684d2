package handler

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"net/http"

	"github.com/vfg2006/marketing-dashboard-api/internal/domain"
	"github.com/vfg2006/marketing-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/marketing-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/marketing-dashboard-api/pkg/log"
	"github.com/vfg2006/marketing-dashboard-api/pkg/utils"
)

//go:embed dashboard.html
var dashboardFS embed.FS

var dashboardTemplate = template.Must(template.New("dashboard.html").Funcs(template.FuncMap{
	"money":   formatMoney,
	"ratio":   formatRatio,
	"percent": formatPercent,
}).ParseFS(dashboardFS, "dashboard.html"))

// dashboardView é o modelo renderizado pela página do dashboard.
type dashboardView struct {
	Summary   *domain.KPISummary
	Report    *domain.PlatformReport
	ChartData template.JS
}

// chartData agrupa os dados consumidos pelos gráficos da página.
type chartData struct {
	Platforms []string                            `json:"platforms"`
	ROAS      []float64                           `json:"roas"`
	Series    map[string][]domain.TimeSeriesPoint `json:"series"`
}

// formatMoney formata valores monetários para os cards do dashboard.
func formatMoney(v float64) string {
	return fmt.Sprintf("R$ %.2f", v)
}

// formatRatio formata um Ratio, exibindo "—" quando indefinido.
func formatRatio(r domain.Ratio) string {
	if !r.Defined() {
		return "—"
	}
	return fmt.Sprintf("%.2f", r.Value())
}

// formatPercent formata um Ratio percentual, exibindo "—" quando indefinido.
func formatPercent(r domain.Ratio) string {
	if !r.Defined() {
		return "—"
	}
	return fmt.Sprintf("%.2f%%", r.Value())
}

// DashboardPage renderiza o dashboard HTML com cards e gráficos sobre o
// relatório de métricas. A página consome os mesmos registros calculados
// servidos pela API JSON.
func DashboardPage(service reporting.Reporter, platforms []string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		logger.Info("dashboard: rendering dashboard page")

		filters, err := parseFilters(r)
		if err != nil {
			logger.WithError(err).Warn("dashboard: invalid date filters")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		summary, err := service.KPISummary(r.Context(), filters)
		if err != nil {
			if errors.Is(err, reporting.ErrInvalidDateRange) {
				logger.WithError(err).Warn("dashboard: invalid date range")
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
				return
			}

			logger.WithError(err).Error("dashboard: failed to compute KPI summary")
			apiErrors.WriteError(w, apiErrors.ErrDatasetLoad, err.Error(), nil)
			return
		}

		report, err := service.PlatformReport(r.Context(), filters)
		if err != nil {
			logger.WithError(err).Error("dashboard: failed to compute platform report")
			apiErrors.WriteError(w, apiErrors.ErrDatasetLoad, err.Error(), nil)
			return
		}

		charts := chartData{
			Platforms: make([]string, 0, len(report.Platforms)),
			ROAS:      make([]float64, 0, len(report.Platforms)),
			Series:    make(map[string][]domain.TimeSeriesPoint, len(platforms)),
		}

		for _, m := range report.Platforms {
			charts.Platforms = append(charts.Platforms, m.Platform)
			charts.ROAS = append(charts.ROAS, m.ROAS.Value())
		}

		for _, platform := range platforms {
			series, err := service.PlatformTimeSeries(r.Context(), platform, filters)
			if err != nil {
				logger.WithFields(log.Fields{
					"platform": platform,
					"error":    err.Error(),
				}).Warn("dashboard: failed to build platform time series")
				continue
			}
			charts.Series[platform] = series.Points
		}

		payload, err := json.Marshal(charts)
		if err != nil {
			logger.WithError(err).Error("dashboard: failed to encode chart data")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, err.Error(), nil)
			return
		}

		logger.Debugf("dashboard: chart data %s", utils.PrettyJson(payload))

		view := dashboardView{
			Summary:   summary,
			Report:    report,
			ChartData: template.JS(payload),
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := dashboardTemplate.Execute(w, view); err != nil {
			logger.WithError(err).Error("dashboard: failed to render template")
		}
	})
}
