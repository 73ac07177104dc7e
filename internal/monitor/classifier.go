package monitor

import (
	"time"

	"duewatch/internal/obligation"
)

// Category classifies an obligation's urgency relative to today
type Category string

const (
	// CategoryExcluded covers settled and split records and anything too
	// malformed to classify. Excluded obligations are never alerted on.
	CategoryExcluded Category = "EXCLUDED"

	CategoryOverdue      Category = "OVERDUE"
	CategoryDueToday     Category = "DUE_TODAY"
	CategoryDueSoon      Category = "DUE_SOON"
	CategoryOnTimeFuture Category = "ON_TIME_FUTURE"
)

// dueSoonWindowDays is the look-ahead window for "due soon" alerts
const dueSoonWindowDays = 3

// Classify maps an obligation and a reference date to a due-status category
// and the signed number of calendar days until the due date (negative when
// past due). The reference date is truncated to midnight before comparing.
func Classify(o *obligation.Obligation, today time.Time) (Category, int) {
	if o.Status == obligation.StatusSplit || o.Status == obligation.StatusSettled {
		return CategoryExcluded, 0
	}
	if !o.HasDueDate() {
		return CategoryExcluded, 0
	}

	daysUntilDue := obligation.DaysBetween(today, *o.DueDate)

	switch {
	case daysUntilDue == 0:
		return CategoryDueToday, daysUntilDue
	case daysUntilDue < 0:
		// Guard against a stale status field: a record that is no longer
		// open is never reported overdue, whatever its date says.
		if !o.Status.IsOpen() {
			return CategoryExcluded, daysUntilDue
		}
		return CategoryOverdue, daysUntilDue
	case daysUntilDue <= dueSoonWindowDays:
		return CategoryDueSoon, daysUntilDue
	default:
		return CategoryOnTimeFuture, daysUntilDue
	}
}
