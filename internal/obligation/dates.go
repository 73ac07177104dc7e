package obligation

import "time"

// Midnight truncates a timestamp to the start of its calendar day in its
// own location. Due-date comparisons are date-only; any fractional hours
// introduced by timezones or clock skew must be discarded before
// differencing.
func Midnight(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

// DaysBetween returns the number of calendar days from one date to another,
// rounding partial days up. Both inputs are truncated to midnight first, so
// "due in 2.1 days" counts as 3 truncated to dates, never as a fraction.
func DaysBetween(from, to time.Time) int {
	diff := Midnight(to).Sub(Midnight(from)).Milliseconds()
	const dayMillis = 24 * 60 * 60 * 1000
	days := diff / dayMillis
	if diff%dayMillis > 0 {
		days++
	}
	return int(days)
}
