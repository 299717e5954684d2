package dataset

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/marketing-dashboard-api/internal/domain"
)

const sampleCSV = `Date,Facebook Spend,facebook_attributed_revenue,facebook_clicks,facebook_impression
2024-01-01,100.50,402.00,50,5000
2024-01-02,"1,200",4800,600,60000
2024-01-03,,100,10,1000
`

func TestParse(t *testing.T) {
	ds, err := Parse(strings.NewReader(sampleCSV))

	require.NoError(t, err)
	require.Len(t, ds.Rows, 3)

	// Cabeçalhos normalizados: minúsculas, espaços viram underscores.
	assert.True(t, ds.HasColumn("date"))
	assert.True(t, ds.HasColumn("facebook_spend"))
	assert.True(t, ds.HasColumn("facebook_attributed_revenue"))

	first := ds.Rows[0]
	assert.True(t, first.HasDate)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), first.Date)
	assert.Equal(t, 100.50, first.Value("facebook_spend"))
	assert.Equal(t, 402.0, first.Value("facebook_attributed_revenue"))

	// Separador de milhar removido antes da conversão.
	assert.Equal(t, 1200.0, ds.Rows[1].Value("facebook_spend"))

	// Célula vazia conta como zero.
	assert.Equal(t, 0.0, ds.Rows[2].Value("facebook_spend"))
}

func TestParseCellCoercion(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want float64
	}{
		{name: "número simples", raw: "42.5", want: 42.5},
		{name: "vazio vira zero", raw: "", want: 0},
		{name: "espaços viram zero", raw: "   ", want: 0},
		{name: "lixo não numérico vira zero", raw: "n/a", want: 0},
		{name: "negativo é truncado em zero", raw: "-50", want: 0},
		{name: "separador de milhar é removido", raw: "1,234.56", want: 1234.56},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseCell(tt.raw))
		})
	}
}

func TestParseDateFormats(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		wantOK bool
	}{
		{name: "formato ISO", raw: "2024-03-15", wantOK: true},
		{name: "timestamp com hora", raw: "2024-03-15 10:30:00", wantOK: true},
		{name: "RFC3339", raw: "2024-03-15T10:30:00Z", wantOK: true},
		{name: "formato brasileiro", raw: "15/03/2024", wantOK: true},
		{name: "vazio", raw: "", wantOK: false},
		{name: "lixo", raw: "ontem", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := parseDate(tt.raw)
			assert.Equal(t, tt.wantOK, ok)
		})
	}
}

func TestParseMalformedDates(t *testing.T) {
	csv := "date,facebook_spend\nnot-a-date,100\n2024-01-01,200\n,300\n"

	ds, err := Parse(strings.NewReader(csv))

	require.NoError(t, err)
	require.Len(t, ds.Rows, 3)

	// A linha com data inválida é mantida para os totais, mas marcada
	// para exclusão das séries temporais.
	assert.False(t, ds.Rows[0].HasDate)
	assert.Equal(t, 100.0, ds.Rows[0].Value("facebook_spend"))
	assert.True(t, ds.Rows[1].HasDate)

	// Data vazia não gera aviso; data inválida não vazia gera.
	require.Len(t, ds.Warnings, 1)
	assert.Equal(t, domain.WarningMalformedDate, ds.Warnings[0].Code)
	assert.Contains(t, ds.Warnings[0].Message, "not-a-date")
}

func TestParseEmptyFile(t *testing.T) {
	_, err := Parse(strings.NewReader(""))

	assert.Error(t, err)
}

func TestParseHeaderOnly(t *testing.T) {
	ds, err := Parse(strings.NewReader("date,facebook_spend\n"))

	require.NoError(t, err)
	assert.Empty(t, ds.Rows)
	assert.True(t, ds.HasColumn("facebook_spend"))
}

func TestFileLoaderLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "marketing.csv")
	require.NoError(t, os.WriteFile(path, []byte(sampleCSV), 0o600))

	loader := NewFileLoader(path)

	ds, err := loader.Load(context.Background())

	require.NoError(t, err)
	assert.Len(t, ds.Rows, 3)
}

func TestFileLoaderLoadMissingFile(t *testing.T) {
	loader := NewFileLoader(filepath.Join(t.TempDir(), "inexistente.csv"))

	ds, err := loader.Load(context.Background())

	require.Error(t, err)
	assert.Nil(t, ds)
}
