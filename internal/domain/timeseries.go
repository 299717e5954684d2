package domain

import "time"

// TimeSeriesPoint é um ponto da série diária de gasto e receita de uma
// plataforma. Linhas duplicadas para a mesma data são somadas, nunca
// sobrescritas.
type TimeSeriesPoint struct {
	Date       time.Time `json:"date"`
	Spend      float64   `json:"spend"`
	Revenue    float64   `json:"revenue"`
	SpendMA7   float64   `json:"spend_7d_ma"`
	RevenueMA7 float64   `json:"revenue_7d_ma"`
}

// TimeSeries é a série temporal de uma plataforma, ordenada por data
// ascendente, pronta para o gráfico de gasto versus receita.
type TimeSeries struct {
	Platform string            `json:"platform"`
	Points   []TimeSeriesPoint `json:"points"`
	Filters  *ReportFilters    `json:"filters,omitempty"`
}
