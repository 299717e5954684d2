package reporting

import (
	"sort"
	"time"

	"github.com/vfg2006/marketing-dashboard-api/internal/domain"
	"github.com/vfg2006/marketing-dashboard-api/pkg/utils"
)

// rawTotals acumula as somas das quatro colunas brutas de uma plataforma
// e registra quais delas existem no arquivo de origem: coluna ausente não
// é a mesma coisa que soma zero.
type rawTotals struct {
	spend       float64
	revenue     float64
	clicks      float64
	impressions float64

	hasSpend       bool
	hasRevenue     bool
	hasClicks      bool
	hasImpressions bool
}

// sumPlatformColumns soma as colunas brutas de uma plataforma em todo o
// dataset. Colunas ausentes geram avisos e contribuem com zero, isolando
// uma plataforma mal formada sem abortar o cálculo das demais.
func sumPlatformColumns(ds *domain.Dataset, platform string) (rawTotals, []domain.Warning) {
	var totals rawTotals
	var warnings []domain.Warning

	columns := []struct {
		name    string
		target  *float64
		present *bool
	}{
		{domain.PlatformColumn(platform, domain.ColumnSuffixSpend), &totals.spend, &totals.hasSpend},
		{domain.PlatformColumn(platform, domain.ColumnSuffixRevenue), &totals.revenue, &totals.hasRevenue},
		{domain.PlatformColumn(platform, domain.ColumnSuffixClicks), &totals.clicks, &totals.hasClicks},
		{domain.PlatformColumn(platform, domain.ColumnSuffixImpressions), &totals.impressions, &totals.hasImpressions},
	}

	for _, column := range columns {
		if !ds.HasColumn(column.name) {
			warnings = append(warnings, domain.NewMissingColumnWarning(platform, column.name))
			continue
		}

		*column.present = true
		for _, row := range ds.Rows {
			*column.target += row.Value(column.name)
		}
	}

	return totals, warnings
}

// deriveRatios aplica as cinco fórmulas de métricas derivadas sobre os
// totais somados, nunca linha a linha, para não acumular erro de
// arredondamento. Denominador zero produz métrica indefinida, assim como
// qualquer fórmula cuja coluna de origem não existe no arquivo.
func deriveRatios(t rawTotals) (roas, ctr, cpc, cpm, revenuePerClick domain.Ratio) {
	roas = ratioFromColumns(t.hasRevenue && t.hasSpend, t.revenue, t.spend, 1)
	ctr = ratioFromColumns(t.hasClicks && t.hasImpressions, t.clicks, t.impressions, 100)
	cpc = ratioFromColumns(t.hasSpend && t.hasClicks, t.spend, t.clicks, 1)
	cpm = ratioFromColumns(t.hasSpend && t.hasImpressions, t.spend, t.impressions, 1000)
	revenuePerClick = ratioFromColumns(t.hasRevenue && t.hasClicks, t.revenue, t.clicks, 1)
	return
}

// ratioFromColumns calcula (num/den)*scale apenas quando as colunas de
// origem existem no arquivo; caso contrário a métrica é indefinida, e não
// um zero disfarçado.
func ratioFromColumns(present bool, num, den, scale float64) domain.Ratio {
	if !present {
		return domain.UndefinedRatio()
	}
	return domain.NewScaledRatio(num, den, scale)
}

// ComputePlatformMetrics transforma o dataset bruto em um registro de
// métricas por plataforma, na ordem da lista informada. Função pura:
// chamadas repetidas sobre o mesmo dataset produzem o mesmo resultado.
func ComputePlatformMetrics(ds *domain.Dataset, platforms []string) ([]domain.PlatformMetrics, []domain.Warning) {
	metrics := make([]domain.PlatformMetrics, 0, len(platforms))
	warnings := make([]domain.Warning, 0)

	totalsByPlatform := make(map[string]rawTotals, len(platforms))
	var totalSpend, totalRevenue float64

	for _, platform := range platforms {
		totals, platformWarnings := sumPlatformColumns(ds, platform)
		warnings = append(warnings, platformWarnings...)

		totalsByPlatform[platform] = totals
		totalSpend += totals.spend
		totalRevenue += totals.revenue
	}

	for _, platform := range platforms {
		totals := totalsByPlatform[platform]
		roas, ctr, cpc, cpm, revenuePerClick := deriveRatios(totals)

		revenueShare := ratioFromColumns(totals.hasRevenue, totals.revenue, totalRevenue, 100)
		spendShare := ratioFromColumns(totals.hasSpend, totals.spend, totalSpend, 100)

		efficiency := domain.UndefinedRatio()
		if spendShare.Defined() && spendShare.Value() > 0 {
			efficiency = domain.NewRatio(revenueShare.Value(), spendShare.Value())
		}

		metrics = append(metrics, domain.PlatformMetrics{
			Platform:        platform,
			Spend:           totals.spend,
			Revenue:         totals.revenue,
			Clicks:          totals.clicks,
			Impressions:     totals.impressions,
			ROAS:            roas,
			CTR:             ctr,
			CPC:             cpc,
			CPM:             cpm,
			RevenuePerClick: revenuePerClick,
			RevenueShare:    revenueShare,
			SpendShare:      spendShare,
			EfficiencyRatio: efficiency,
		})
	}

	return metrics, warnings
}

// ComputeAggregateTotals soma os quatro campos brutos de todas as
// plataformas e aplica as mesmas fórmulas com a mesma política de
// denominador zero. Os totais são exatamente a soma dos valores por
// plataforma, sem nenhum rearredondamento intermediário.
func ComputeAggregateTotals(metrics []domain.PlatformMetrics) domain.AggregateTotals {
	// Os totais operam sobre as somas já materializadas por plataforma;
	// aqui só a política de denominador zero se aplica.
	totals := rawTotals{
		hasSpend:       true,
		hasRevenue:     true,
		hasClicks:      true,
		hasImpressions: true,
	}

	for _, m := range metrics {
		totals.spend += m.Spend
		totals.revenue += m.Revenue
		totals.clicks += m.Clicks
		totals.impressions += m.Impressions
	}

	roas, ctr, cpc, cpm, revenuePerClick := deriveRatios(totals)

	return domain.AggregateTotals{
		Spend:           totals.spend,
		Revenue:         totals.revenue,
		Clicks:          totals.clicks,
		Impressions:     totals.impressions,
		ROAS:            roas,
		CTR:             ctr,
		CPC:             cpc,
		CPM:             cpm,
		RevenuePerClick: revenuePerClick,
	}
}

// BuildTimeSeries produz a série diária (data, gasto, receita) de uma
// plataforma, ordenada por data ascendente. Linhas sem data válida são
// descartadas; datas duplicadas são somadas, nunca sobrescritas. As
// médias móveis de 7 dias são calculadas sobre a série já consolidada.
func BuildTimeSeries(ds *domain.Dataset, platform string) []domain.TimeSeriesPoint {
	spendColumn := domain.PlatformColumn(platform, domain.ColumnSuffixSpend)
	revenueColumn := domain.PlatformColumn(platform, domain.ColumnSuffixRevenue)

	byDate := make(map[time.Time]*domain.TimeSeriesPoint)
	order := make([]time.Time, 0)

	for _, row := range ds.Rows {
		if !row.HasDate {
			continue
		}

		day := row.Date.Truncate(24 * time.Hour)
		point, exists := byDate[day]
		if !exists {
			point = &domain.TimeSeriesPoint{Date: day}
			byDate[day] = point
			order = append(order, day)
		}

		point.Spend += row.Value(spendColumn)
		point.Revenue += row.Value(revenueColumn)
	}

	// Ordenação estável: datas iguais já foram consolidadas na ordem
	// original das linhas, resta ordenar as datas distintas.
	sort.SliceStable(order, func(i, j int) bool {
		return order[i].Before(order[j])
	})

	points := make([]domain.TimeSeriesPoint, 0, len(order))
	for _, day := range order {
		points = append(points, *byDate[day])
	}

	applyMovingAverages(points, 7)

	return points
}

// applyMovingAverages preenche as médias móveis de gasto e receita com a
// janela informada, usando janelas parciais no início da série.
func applyMovingAverages(points []domain.TimeSeriesPoint, window int) {
	for i := range points {
		start := i - window + 1
		if start < 0 {
			start = 0
		}

		var spendSum, revenueSum float64
		for j := start; j <= i; j++ {
			spendSum += points[j].Spend
			revenueSum += points[j].Revenue
		}

		size := float64(i - start + 1)
		points[i].SpendMA7 = utils.RoundWithTwoDecimalPlace(spendSum / size)
		points[i].RevenueMA7 = utils.RoundWithTwoDecimalPlace(revenueSum / size)
	}
}

// ComputeKPISummary resume o período do dataset: intervalo de datas,
// totais agregados e plataformas de melhor e pior ROAS.
func ComputeKPISummary(ds *domain.Dataset, platforms []string) *domain.KPISummary {
	metrics, warnings := ComputePlatformMetrics(ds, platforms)
	totals := ComputeAggregateTotals(metrics)

	summary := &domain.KPISummary{
		Rows:      len(ds.Rows),
		Totals:    totals,
		Warnings:  combineWarnings(warnings, ds.Warnings),
		BestROAS:  domain.UndefinedRatio(),
		WorstROAS: domain.UndefinedRatio(),
	}

	for _, row := range ds.Rows {
		if !row.HasDate {
			continue
		}

		date := row.Date
		if summary.StartDate == nil || date.Before(*summary.StartDate) {
			start := date
			summary.StartDate = &start
		}
		if summary.EndDate == nil || date.After(*summary.EndDate) {
			end := date
			summary.EndDate = &end
		}
	}

	if summary.StartDate != nil && summary.EndDate != nil {
		summary.Days = int(summary.EndDate.Sub(*summary.StartDate).Hours()/24) + 1
	}

	for _, m := range metrics {
		if !m.ROAS.Defined() {
			continue
		}

		if !summary.BestROAS.Defined() || m.ROAS.Value() > summary.BestROAS.Value() {
			summary.BestPlatform = m.Platform
			summary.BestROAS = m.ROAS
		}
		if !summary.WorstROAS.Defined() || m.ROAS.Value() < summary.WorstROAS.Value() {
			summary.WorstPlatform = m.Platform
			summary.WorstROAS = m.ROAS
		}
	}

	return summary
}

// combineWarnings concatena os avisos do cálculo com os da carga em um
// slice novo, sem compartilhar o array de apoio com nenhum dos dois.
func combineWarnings(computed, loaded []domain.Warning) []domain.Warning {
	combined := make([]domain.Warning, 0, len(computed)+len(loaded))
	combined = append(combined, computed...)
	return append(combined, loaded...)
}

// ComputeAttributionModels calcula os três modelos de atribuição de
// receita entre as plataformas: last click (receita reportada),
// proporcional ao gasto e linear (divisão igual).
func ComputeAttributionModels(ds *domain.Dataset, platforms []string) *domain.AttributionModels {
	models := &domain.AttributionModels{
		LastClick:  make(map[string]float64, len(platforms)),
		SpendBased: make(map[string]float64, len(platforms)),
		Linear:     make(map[string]float64, len(platforms)),
	}

	var totalAttributed, totalSpend float64
	spendByPlatform := make(map[string]float64, len(platforms))

	for _, platform := range platforms {
		totals, _ := sumPlatformColumns(ds, platform)

		models.LastClick[platform] = utils.RoundWithTwoDecimalPlace(totals.revenue)
		spendByPlatform[platform] = totals.spend
		totalAttributed += totals.revenue
		totalSpend += totals.spend
	}

	for _, platform := range platforms {
		spendBased := 0.0
		if totalSpend > 0 {
			spendBased = (spendByPlatform[platform] / totalSpend) * totalAttributed
		}
		models.SpendBased[platform] = utils.RoundWithTwoDecimalPlace(spendBased)

		linear := 0.0
		if len(platforms) > 0 {
			linear = totalAttributed / float64(len(platforms))
		}
		models.Linear[platform] = utils.RoundWithTwoDecimalPlace(linear)
	}

	return models
}
