package utils

import "time"

// ParseDate converte uma data no formato YYYY-MM-DD.
func ParseDate(dateStr string) (*time.Time, error) {
	var date time.Time

	if dateStr != "" {
		incomingDate, err := time.Parse(time.DateOnly, dateStr)
		if err != nil {
			return nil, err
		}

		date = incomingDate
	}

	return &date, nil
}

// ParseCompactDate converte uma data no formato compacto YYYYMMDD usado pela
// dimensão "date" da API de dados do GA4.
func ParseCompactDate(dateStr string) (time.Time, error) {
	return time.Parse("20060102", dateStr)
}
