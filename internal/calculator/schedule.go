package calculator

import (
	"time"

	"github.com/mmynk/totalmanager/internal/models"
)

// NextOccurrence returns when the sibling of a repeating reminder is due.
// The second result is false for non-repeating reminders.
func NextOccurrence(scheduledAt int64, repeat models.RepeatType) (int64, bool) {
	switch repeat {
	case models.RepeatDaily:
		return scheduledAt + int64((24 * time.Hour).Seconds()), true
	case models.RepeatWeekly:
		return scheduledAt + int64((7 * 24 * time.Hour).Seconds()), true
	default:
		return 0, false
	}
}

// NoticeReminderDates returns the dates a notice announces follow-up
// reminders for: the day before and the day after the due date.
func NoticeReminderDates(dueDate time.Time) []time.Time {
	return []time.Time{
		dueDate.AddDate(0, 0, -1),
		dueDate.AddDate(0, 0, 1),
	}
}
