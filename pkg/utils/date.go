package utils

import "time"

// ParseDate interpreta uma data no formato 2006-01-02. String vazia
// retorna a data zero, não um erro, para filtros opcionais.
func ParseDate(dateStr string) (*time.Time, error) {
	var date time.Time

	if dateStr != "" {
		incomingDate, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			return nil, err
		}

		date = incomingDate
	}

	return &date, nil
}

// DateOrNil converte o resultado de ParseDate em ponteiro opcional:
// a data zero vira nil, para que filtros vazios não restrinjam nada.
func DateOrNil(date *time.Time) *time.Time {
	if date == nil || date.IsZero() {
		return nil
	}
	return date
}
