package handler

import (
	"net/http"

	"github.com/vfg2006/marketing-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/marketing-dashboard-api/internal/usecases/reporting"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Metrics(service reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/metrics/platforms",
			Method:  http.MethodGet,
			Handler: GetPlatformMetrics(service),
		},
		{
			Path:    "/v1/metrics/summary",
			Method:  http.MethodGet,
			Handler: GetKPISummary(service),
		},
		{
			Path:    "/v1/metrics/attribution",
			Method:  http.MethodGet,
			Handler: GetAttributionModels(service),
		},
		{
			Path:    "/v1/platforms/:name/timeseries",
			Method:  http.MethodGet,
			Handler: GetPlatformTimeSeries(service),
		},
	}
}

func Dashboard(service reporting.Reporter, platforms []string) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/dashboard",
			Method:  http.MethodGet,
			Handler: DashboardPage(service, platforms),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
