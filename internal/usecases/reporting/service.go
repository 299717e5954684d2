package reporting

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/marketing-dashboard-api/infrastructure/dataset"
	"github.com/vfg2006/marketing-dashboard-api/internal/config"
	"github.com/vfg2006/marketing-dashboard-api/internal/domain"
)

// ErrUnknownPlatform indica uma plataforma fora da lista configurada.
var ErrUnknownPlatform = errors.New("plataforma desconhecida")

// ErrInvalidDateRange indica um período com início posterior ao fim.
var ErrInvalidDateRange = errors.New("a data de início não pode ser posterior à data de fim")

// Service implementa Reporter sobre o Loader de dataset. Todo o estado é
// recalculado a cada chamada a partir da tabela bruta: o serviço não
// guarda resultados entre invocações, apenas delega a memoização da
// carga ao Loader.
type Service struct {
	cfg    *config.Config
	loader dataset.Loader
}

// NewService cria o serviço de relatórios.
func NewService(cfg *config.Config, loader dataset.Loader) Reporter {
	return &Service{
		cfg:    cfg,
		loader: loader,
	}
}

// platforms retorna a lista de plataformas configuradas.
func (s *Service) platforms() []string {
	return s.cfg.Dataset.Platforms
}

// load carrega o dataset e aplica o filtro de período.
func (s *Service) load(ctx context.Context, filters *domain.ReportFilters) (*domain.Dataset, error) {
	if filters != nil && filters.StartDate != nil && filters.EndDate != nil &&
		filters.StartDate.After(*filters.EndDate) {
		return nil, fmt.Errorf("%w: %s > %s", ErrInvalidDateRange,
			filters.StartDate.Format(time.DateOnly), filters.EndDate.Format(time.DateOnly))
	}

	ds, err := s.loader.Load(ctx)
	if err != nil {
		logrus.WithError(err).Error("Erro ao carregar o dataset de marketing")
		return nil, err
	}

	return ds.FilterByDate(filters), nil
}

// PlatformReport calcula as métricas por plataforma e os totais do período.
func (s *Service) PlatformReport(ctx context.Context, filters *domain.ReportFilters) (*domain.PlatformReport, error) {
	ds, err := s.load(ctx, filters)
	if err != nil {
		return nil, err
	}

	metrics, warnings := ComputePlatformMetrics(ds, s.platforms())

	return &domain.PlatformReport{
		Platforms: metrics,
		Totals:    ComputeAggregateTotals(metrics),
		Warnings:  combineWarnings(warnings, ds.Warnings),
		Filters:   filters,
	}, nil
}

// KPISummary resume o período filtrado.
func (s *Service) KPISummary(ctx context.Context, filters *domain.ReportFilters) (*domain.KPISummary, error) {
	ds, err := s.load(ctx, filters)
	if err != nil {
		return nil, err
	}

	return ComputeKPISummary(ds, s.platforms()), nil
}

// AttributionModels compara os modelos de atribuição no período filtrado.
func (s *Service) AttributionModels(ctx context.Context, filters *domain.ReportFilters) (*domain.AttributionModels, error) {
	ds, err := s.load(ctx, filters)
	if err != nil {
		return nil, err
	}

	models := ComputeAttributionModels(ds, s.platforms())
	models.Filters = filters

	return models, nil
}

// PlatformTimeSeries produz a série diária de uma plataforma configurada.
func (s *Service) PlatformTimeSeries(ctx context.Context, platform string, filters *domain.ReportFilters) (*domain.TimeSeries, error) {
	if !slices.Contains(s.platforms(), platform) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownPlatform, platform)
	}

	ds, err := s.load(ctx, filters)
	if err != nil {
		return nil, err
	}

	return &domain.TimeSeries{
		Platform: platform,
		Points:   BuildTimeSeries(ds, platform),
		Filters:  filters,
	}, nil
}
