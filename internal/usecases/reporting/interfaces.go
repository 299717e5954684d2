package reporting

import (
	"context"

	"github.com/vfg2006/marketing-dashboard-api/internal/domain"
)

// Reporter define as operações de relatório consumidas pelo dashboard.
type Reporter interface {
	// PlatformReport calcula as métricas por plataforma e os totais
	// agregados do período filtrado.
	PlatformReport(ctx context.Context, filters *domain.ReportFilters) (*domain.PlatformReport, error)

	// KPISummary resume o período carregado para os cards do dashboard.
	KPISummary(ctx context.Context, filters *domain.ReportFilters) (*domain.KPISummary, error)

	// AttributionModels compara os modelos de atribuição de receita.
	AttributionModels(ctx context.Context, filters *domain.ReportFilters) (*domain.AttributionModels, error)

	// PlatformTimeSeries produz a série diária de gasto e receita de uma
	// plataforma configurada.
	PlatformTimeSeries(ctx context.Context, platform string, filters *domain.ReportFilters) (*domain.TimeSeries, error)
}
