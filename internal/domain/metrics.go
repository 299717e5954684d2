package domain

// PlatformMetrics é o registro derivado de uma plataforma de anúncios:
// somas brutas do período mais as métricas calculadas sobre os totais.
type PlatformMetrics struct {
	Platform        string  `json:"platform"`
	Spend           float64 `json:"spend"`
	Revenue         float64 `json:"revenue"`
	Clicks          float64 `json:"clicks"`
	Impressions     float64 `json:"impressions"`
	ROAS            Ratio   `json:"roas"`
	CTR             Ratio   `json:"ctr"`
	CPC             Ratio   `json:"cpc"`
	CPM             Ratio   `json:"cpm"`
	RevenuePerClick Ratio   `json:"revenue_per_click"`
	RevenueShare    Ratio   `json:"revenue_share"`
	SpendShare      Ratio   `json:"spend_share"`
	EfficiencyRatio Ratio   `json:"efficiency_ratio"`
}

// AggregateTotals agrega as somas de todas as plataformas e aplica as
// mesmas fórmulas de métricas derivadas sobre os totais.
type AggregateTotals struct {
	Spend           float64 `json:"spend"`
	Revenue         float64 `json:"revenue"`
	Clicks          float64 `json:"clicks"`
	Impressions     float64 `json:"impressions"`
	ROAS            Ratio   `json:"roas"`
	CTR             Ratio   `json:"ctr"`
	CPC             Ratio   `json:"cpc"`
	CPM             Ratio   `json:"cpm"`
	RevenuePerClick Ratio   `json:"revenue_per_click"`
}

// PlatformReport é a resposta completa do relatório por plataforma.
type PlatformReport struct {
	Platforms []PlatformMetrics `json:"platforms"`
	Totals    AggregateTotals   `json:"totals"`
	Warnings  []Warning         `json:"warnings,omitempty"`
	Filters   *ReportFilters    `json:"filters,omitempty"`
}
