package domain

import (
	"fmt"
	"time"
)

// Sufixos das colunas brutas esperadas para cada plataforma.
const (
	ColumnSuffixSpend       = "spend"
	ColumnSuffixRevenue     = "attributed_revenue"
	ColumnSuffixClicks      = "clicks"
	ColumnSuffixImpressions = "impression"
)

// DatasetRow representa uma linha do arquivo de dados unificado: uma data
// e as células numéricas indexadas pelo nome normalizado da coluna.
// Células ausentes ou não numéricas são tratadas como zero.
type DatasetRow struct {
	Date    time.Time
	HasDate bool
	Cells   map[string]float64
}

// Value retorna o valor de uma célula, ou zero quando ausente.
func (r DatasetRow) Value(column string) float64 {
	return r.Cells[column]
}

// Dataset é a tabela bruta produzida pelo Loader: linhas ordenadas na
// ordem original do arquivo e o conjunto de colunas presentes, para que
// o motor de métricas distinga coluna ausente de valor zero.
type Dataset struct {
	Rows    []DatasetRow
	Columns map[string]struct{}

	// Warnings acumula os avisos de qualidade de dados encontrados na
	// carga (ex.: datas inválidas), repassados aos relatórios.
	Warnings []Warning
}

// HasColumn informa se a coluna está presente no arquivo de origem.
func (d *Dataset) HasColumn(name string) bool {
	_, ok := d.Columns[name]
	return ok
}

// PlatformColumn monta o nome da coluna bruta de uma plataforma.
// Ex.: PlatformColumn("facebook", ColumnSuffixSpend) -> "facebook_spend".
func PlatformColumn(platform, suffix string) string {
	return fmt.Sprintf("%s_%s", platform, suffix)
}

// FilterByDate retorna um novo Dataset contendo apenas as linhas dentro do
// intervalo informado (inclusive). Linhas sem data válida são mantidas,
// já que ainda contam para os totais. Filtros nulos não restringem nada.
func (d *Dataset) FilterByDate(filters *ReportFilters) *Dataset {
	if filters == nil || (filters.StartDate == nil && filters.EndDate == nil) {
		return d
	}

	filtered := &Dataset{
		Rows:     make([]DatasetRow, 0, len(d.Rows)),
		Columns:  d.Columns,
		Warnings: d.Warnings,
	}

	for _, row := range d.Rows {
		if row.HasDate {
			if filters.StartDate != nil && row.Date.Before(*filters.StartDate) {
				continue
			}
			if filters.EndDate != nil && row.Date.After(*filters.EndDate) {
				continue
			}
		}
		filtered.Rows = append(filtered.Rows, row)
	}

	return filtered
}

// ReportFilters delimita o período considerado pelos relatórios.
type ReportFilters struct {
	StartDate *time.Time
	EndDate   *time.Time
}
