package models

import (
	"fmt"
	"strings"
)

// LogType identifies what an event log entry records.
type LogType string

const (
	LogTypeNoticeSent        LogType = "notice_sent"
	LogTypeRead              LogType = "read"
	LogTypePaidMarked        LogType = "paid_marked"
	LogTypeReminderScheduled LogType = "reminder_scheduled"
	LogTypeReminderSent      LogType = "reminder_sent"
)

// LogTypes lists every log type in a stable order.
var LogTypes = []LogType{
	LogTypeNoticeSent,
	LogTypeRead,
	LogTypePaidMarked,
	LogTypeReminderScheduled,
	LogTypeReminderSent,
}

// ParseLogType returns the LogType named by s.
func ParseLogType(s string) (LogType, error) {
	t := LogType(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range LogTypes {
		if t == known {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown log type %q", s)
}

// EventLog is an append-only audit record attached to a collection.
type EventLog struct {
	ID           string
	CollectionID string
	Type         LogType
	Message      string
	CreatedAt    int64
}

// LogFilter narrows a user-wide log listing.
type LogFilter struct {
	// CollectionID restricts results to one collection when non-empty.
	CollectionID string
	// Type restricts results to one log type when non-empty.
	Type   LogType
	Limit  int
	Offset int
}

// DailyActivity is the number of logs written on one UTC date.
type DailyActivity struct {
	Date  string
	Count int64
}

// LogStats summarizes all logs visible to one user.
type LogStats struct {
	Total          int64
	ByType         map[LogType]int64
	RecentActivity []DailyActivity
}
