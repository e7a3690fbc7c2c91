package utils

import "time"

// ParseDate converte um parâmetro de query "YYYY-MM-DD" em *time.Time.
// String vazia significa "sem filtro" e retorna nil.
func ParseDate(dateStr string) (*time.Time, error) {
	if dateStr == "" {
		return nil, nil
	}

	date, err := time.Parse(time.DateOnly, dateStr)
	if err != nil {
		return nil, err
	}

	return &date, nil
}
