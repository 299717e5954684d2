package domain

import "time"

// KPISummary resume o período carregado para os cards do dashboard:
// intervalo de datas, totais agregados e as plataformas de melhor e pior
// retorno sobre o investimento em anúncios.
type KPISummary struct {
	StartDate     *time.Time      `json:"start_date,omitempty"`
	EndDate       *time.Time      `json:"end_date,omitempty"`
	Days          int             `json:"days"`
	Rows          int             `json:"rows"`
	Totals        AggregateTotals `json:"totals"`
	BestPlatform  string          `json:"best_platform,omitempty"`
	BestROAS      Ratio           `json:"best_roas"`
	WorstPlatform string          `json:"worst_platform,omitempty"`
	WorstROAS     Ratio           `json:"worst_roas"`
	Warnings      []Warning       `json:"warnings,omitempty"`
}
