package models

import (
	"fmt"
	"strings"
)

// RepeatType controls whether sending a reminder schedules another one.
type RepeatType string

const (
	RepeatNone   RepeatType = "none"
	RepeatDaily  RepeatType = "daily"
	RepeatWeekly RepeatType = "weekly"
)

// ParseRepeatType returns the RepeatType named by s.
func ParseRepeatType(s string) (RepeatType, error) {
	switch t := RepeatType(strings.ToLower(strings.TrimSpace(s))); t {
	case RepeatNone, RepeatDaily, RepeatWeekly:
		return t, nil
	default:
		return "", fmt.Errorf("unknown repeat type %q", s)
	}
}

// Reminder is a scheduled notification owned by a user.
//
// A reminder moves from unsent to sent exactly once in spirit: repeating
// reminders are implemented by creating a new sibling row on send, never by
// resetting IsSent on the original.
type Reminder struct {
	ID     string
	UserID string

	// CollectionID optionally ties the reminder to a collection. It is set
	// to empty (NULL) when the collection is deleted.
	CollectionID string

	Title string

	// ScheduledAt is the Unix timestamp the reminder is due.
	ScheduledAt int64

	RepeatType RepeatType
	Message    string

	IsSent bool
	SentAt *int64

	CreatedAt int64
	UpdatedAt *int64
}

// ReminderFilter narrows a reminder listing. Nil/empty fields do not filter.
type ReminderFilter struct {
	IsSent       *bool
	CollectionID string
}
