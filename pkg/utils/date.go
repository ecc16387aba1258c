package utils

import "time"

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

// AdDay retorna o início do "dia de anúncios" atual (meia-noite UTC).
// Todas as agregações diárias de impressões usam esse corte de dia.
func AdDay() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

// TruncateToDay normaliza uma data para meia-noite UTC
func TruncateToDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DaysBetween gera todas as datas entre start e end (inclusive), em ordem crescente
func DaysBetween(start, end time.Time) []time.Time {
	start = TruncateToDay(start)
	end = TruncateToDay(end)

	if end.Before(start) {
		return nil
	}

	days := make([]time.Time, 0, int(end.Sub(start).Hours()/24)+1)
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}

	return days
}
