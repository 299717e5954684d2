package dataset

import (
	"context"
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/marketing-dashboard-api/internal/domain"
)

// Nome normalizado da coluna de datas do arquivo de origem.
const dateColumn = "date"

// Formatos de data aceitos, tentados em ordem.
var dateLayouts = []string{
	time.DateOnly,
	"2006-01-02 15:04:05",
	time.RFC3339,
	"02/01/2006",
}

// Loader é o contrato de carga do dataset bruto. A única condição fatal
// é um arquivo completamente ausente ou ilegível; problemas de qualidade
// de dados viram avisos dentro do próprio Dataset.
type Loader interface {
	Load(ctx context.Context) (*domain.Dataset, error)
}

// FileLoader lê e interpreta o CSV de marketing a cada chamada.
type FileLoader struct {
	path string
}

// NewFileLoader cria um Loader para o arquivo informado.
func NewFileLoader(path string) *FileLoader {
	return &FileLoader{path: path}
}

// Load abre o arquivo e interpreta o conteúdo completo.
func (l *FileLoader) Load(ctx context.Context) (*domain.Dataset, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	file, err := os.Open(l.path)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao abrir o arquivo de dados %s", l.path)
	}
	defer file.Close()

	ds, err := Parse(file)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao interpretar o arquivo de dados %s", l.path)
	}

	logrus.WithFields(logrus.Fields{
		"path":    l.path,
		"rows":    len(ds.Rows),
		"columns": len(ds.Columns),
	}).Info("Dataset carregado do arquivo de origem")

	return ds, nil
}

// Parse interpreta um CSV com uma coluna de datas e colunas numéricas por
// plataforma. Cabeçalhos são normalizados (minúsculas, espaços viram
// underscores); células vazias ou não numéricas contam como zero e
// valores negativos são truncados em zero. Linhas com data inválida são
// mantidas para os totais, mas marcadas para exclusão das séries.
func Parse(r io.Reader) (*domain.Dataset, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao ler o CSV")
	}

	if len(records) == 0 {
		return nil, errors.New("arquivo de dados vazio")
	}

	header := make([]string, len(records[0]))
	columns := make(map[string]struct{}, len(records[0]))
	for i, name := range records[0] {
		normalized := normalizeColumnName(name)
		header[i] = normalized
		columns[normalized] = struct{}{}
	}

	ds := &domain.Dataset{
		Rows:    make([]domain.DatasetRow, 0, len(records)-1),
		Columns: columns,
	}

	for _, record := range records[1:] {
		row := domain.DatasetRow{
			Cells: make(map[string]float64, len(header)),
		}

		for i, raw := range record {
			if i >= len(header) {
				break
			}

			column := header[i]
			if column == dateColumn {
				date, ok := parseDate(raw)
				if !ok {
					if strings.TrimSpace(raw) != "" {
						ds.Warnings = append(ds.Warnings, domain.NewMalformedDateWarning(raw))
					}
					continue
				}
				row.Date = date
				row.HasDate = true
				continue
			}

			row.Cells[column] = parseCell(raw)
		}

		ds.Rows = append(ds.Rows, row)
	}

	return ds, nil
}

// normalizeColumnName padroniza o nome da coluna no formato usado pelo
// motor de métricas: minúsculas e espaços substituídos por underscores.
func normalizeColumnName(name string) string {
	normalized := strings.ToLower(strings.TrimSpace(name))
	return strings.ReplaceAll(normalized, " ", "_")
}

// parseCell converte uma célula em número, tratando vazio e lixo como
// zero e truncando valores negativos, que são inválidos para métricas
// financeiras.
func parseCell(raw string) float64 {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return 0
	}

	value, err := strconv.ParseFloat(strings.ReplaceAll(trimmed, ",", ""), 64)
	if err != nil {
		return 0
	}

	if value < 0 {
		return 0
	}

	return value
}

// parseDate tenta os formatos aceitos em ordem.
func parseDate(raw string) (time.Time, bool) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return time.Time{}, false
	}

	for _, layout := range dateLayouts {
		if date, err := time.Parse(layout, trimmed); err == nil {
			return date, true
		}
	}

	return time.Time{}, false
}
