package report

import (
	"sort"

	"duewatch/internal/obligation"
)

// Forecast groups the session's open obligations by due month, summing the
// outstanding balance per month, ascending by calendar order.
//
// The receivables forecast looks forward only (includePastDue=false); the
// disbursement forecast keeps past-due amounts in the projection since they
// still have to be paid out.
func (s *Session) Forecast(includePastDue bool) []ForecastEntry {
	today := obligation.Midnight(s.today)

	type monthKey struct {
		year  int
		month int
	}
	totals := make(map[monthKey]int64)

	for _, o := range s.openDated() {
		due := obligation.Midnight(*o.DueDate)
		if !includePastDue && due.Before(today) {
			continue
		}
		key := monthKey{year: due.Year(), month: int(due.Month())}
		totals[key] += o.EffectiveOutstanding()
	}

	entries := make([]ForecastEntry, 0, len(totals))
	for key, total := range totals {
		entries = append(entries, ForecastEntry{Year: key.year, Month: key.month, Total: total})
	}
	sort.Slice(entries, func(a, b int) bool {
		if entries[a].Year != entries[b].Year {
			return entries[a].Year < entries[b].Year
		}
		return entries[a].Month < entries[b].Month
	})

	return entries
}
