package domain

// AttributionModels compara três modelos de atribuição de receita entre
// as plataformas configuradas. Valores em moeda, por plataforma.
//
//   - LastClick: receita atribuída reportada por cada plataforma.
//   - SpendBased: receita atribuída total redistribuída proporcionalmente
//     ao gasto de cada plataforma.
//   - Linear: receita atribuída total dividida igualmente.
type AttributionModels struct {
	LastClick  map[string]float64 `json:"last_click"`
	SpendBased map[string]float64 `json:"spend_based"`
	Linear     map[string]float64 `json:"linear"`
	Filters    *ReportFilters     `json:"filters,omitempty"`
}
