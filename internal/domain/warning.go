package domain

import "fmt"

// Códigos de aviso de qualidade de dados reportados junto com os relatórios.
// Avisos nunca interrompem o cálculo: a plataforma afetada degrada para
// zero/indefinido e as demais seguem normalmente.
const (
	WarningMissingColumn = "DQ_MISSING_COLUMN"
	WarningMalformedDate = "DQ_MALFORMED_DATE"
)

// Warning é um aviso não fatal de qualidade de dados.
type Warning struct {
	Code     string `json:"code"`
	Platform string `json:"platform,omitempty"`
	Column   string `json:"column,omitempty"`
	Message  string `json:"message"`
}

// NewMissingColumnWarning cria o aviso de coluna esperada ausente.
func NewMissingColumnWarning(platform, column string) Warning {
	return Warning{
		Code:     WarningMissingColumn,
		Platform: platform,
		Column:   column,
		Message:  fmt.Sprintf("coluna %q ausente no arquivo de origem; valores tratados como zero", column),
	}
}

// NewMalformedDateWarning cria o aviso de linha com data inválida.
func NewMalformedDateWarning(raw string) Warning {
	return Warning{
		Code:    WarningMalformedDate,
		Message: fmt.Sprintf("data inválida %q; linha excluída das séries temporais", raw),
	}
}
