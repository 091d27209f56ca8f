package calculator

import (
	"time"

	"github.com/mmynk/totalmanager/internal/models"
)

// DueSoonDays is how many days before the due date a collection is due soon.
const DueSoonDays = 3

// DeriveStatus computes a collection's status from its due date.
//
// Both arguments are compared at day granularity using their UTC calendar
// dates; time of day and location are ignored. A collection is closed on and
// after its due date, due soon within DueSoonDays before it, active otherwise.
func DeriveStatus(dueDate, today time.Time) models.CollectionStatus {
	days := DaysBetween(today, dueDate)
	switch {
	case days <= 0:
		return models.CollectionStatusClosed
	case days <= DueSoonDays:
		return models.CollectionStatusDueSoon
	default:
		return models.CollectionStatusActive
	}
}

// DaysBetween returns the number of UTC calendar days from a to b.
func DaysBetween(a, b time.Time) int {
	return int(calendarDay(b).Sub(calendarDay(a)).Hours() / 24)
}

func calendarDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
