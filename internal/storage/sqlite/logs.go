package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/mmynk/totalmanager/internal/ids"
	"github.com/mmynk/totalmanager/internal/models"
	"github.com/mmynk/totalmanager/internal/storage"
)

const eventLogColumns = "l.id, l.collection_id, l.type, l.message, l.created_at"

// CreateEventLogs appends logs in one transaction.
func (s *SQLiteStore) CreateEventLogs(ctx context.Context, logs ...*models.EventLog) error {
	if len(logs) == 0 {
		return nil
	}
	return s.withTx(ctx, func(tx *sql.Tx) error {
		for _, l := range logs {
			if err := insertEventLog(ctx, tx, l); err != nil {
				return fmt.Errorf("failed to insert event log: %w", err)
			}
		}
		return nil
	})
}

func insertEventLog(ctx context.Context, db execer, l *models.EventLog) error {
	if l.ID == "" {
		l.ID = ids.New()
	}
	if l.CreatedAt == 0 {
		l.CreatedAt = nowUnix()
	}
	_, err := db.ExecContext(ctx,
		"INSERT INTO event_logs (id, collection_id, type, message, created_at) VALUES (?, ?, ?, ?, ?)",
		l.ID, l.CollectionID, string(l.Type), l.Message, l.CreatedAt,
	)
	return err
}

// GetEventLog retrieves a single log entry by ID.
func (s *SQLiteStore) GetEventLog(ctx context.Context, logID string) (*models.EventLog, error) {
	l, err := scanEventLog(s.db.QueryRowContext(ctx,
		"SELECT "+eventLogColumns+" FROM event_logs l WHERE l.id = ?",
		logID,
	))
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("event log %s: %w", logID, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get event log: %w", err)
	}
	return l, nil
}

// ListEventLogsByCollection retrieves a collection's logs, newest first.
func (s *SQLiteStore) ListEventLogsByCollection(ctx context.Context, collectionID string) ([]*models.EventLog, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT "+eventLogColumns+" FROM event_logs l WHERE l.collection_id = ? ORDER BY l.created_at DESC, l.id DESC",
		collectionID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list event logs: %w", err)
	}
	return collectEventLogs(rows)
}

// ListEventLogsByOwner retrieves one page of the logs belonging to every
// collection in the owner's groups, newest first, and the total number of
// logs matching the filter.
func (s *SQLiteStore) ListEventLogsByOwner(ctx context.Context, ownerID string, filter models.LogFilter) ([]*models.EventLog, int64, error) {
	where := []string{"g.owner_id = ?"}
	args := []any{ownerID}
	if filter.CollectionID != "" {
		where = append(where, "l.collection_id = ?")
		args = append(args, filter.CollectionID)
	}
	if filter.Type != "" {
		where = append(where, "l.type = ?")
		args = append(args, string(filter.Type))
	}
	from := ` FROM event_logs l
		JOIN collections c ON c.id = l.collection_id
		JOIN groups g ON g.id = c.group_id
		WHERE ` + strings.Join(where, " AND ")

	var total int64
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*)"+from, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count event logs: %w", err)
	}

	pageArgs := append(append([]any{}, args...), filter.Limit, filter.Offset)
	rows, err := s.db.QueryContext(ctx,
		"SELECT "+eventLogColumns+from+" ORDER BY l.created_at DESC, l.id DESC LIMIT ? OFFSET ?",
		pageArgs...,
	)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list event logs: %w", err)
	}
	logs, err := collectEventLogs(rows)
	if err != nil {
		return nil, 0, err
	}
	return logs, total, nil
}

// GetLogStats counts the owner's logs by type and by UTC day. Every known
// type appears in ByType, zero when unused. RecentActivity holds at most
// recentDays days with activity, newest first.
func (s *SQLiteStore) GetLogStats(ctx context.Context, ownerID string, recentDays int) (*models.LogStats, error) {
	const from = ` FROM event_logs l
		JOIN collections c ON c.id = l.collection_id
		JOIN groups g ON g.id = c.group_id
		WHERE g.owner_id = ?`

	stats := &models.LogStats{ByType: make(map[models.LogType]int64, len(models.LogTypes))}
	for _, t := range models.LogTypes {
		stats.ByType[t] = 0
	}

	rows, err := s.db.QueryContext(ctx, "SELECT l.type, COUNT(*)"+from+" GROUP BY l.type", ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to count logs by type: %w", err)
	}
	for rows.Next() {
		var logType string
		var count int64
		if err := rows.Scan(&logType, &count); err != nil {
			rows.Close()
			return nil, fmt.Errorf("failed to scan log count: %w", err)
		}
		stats.ByType[models.LogType(logType)] = count
		stats.Total += count
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, fmt.Errorf("failed to iterate log counts: %w", err)
	}
	rows.Close()

	rows, err = s.db.QueryContext(ctx,
		"SELECT date(l.created_at, 'unixepoch') AS day, COUNT(*)"+from+" GROUP BY day ORDER BY day DESC LIMIT ?",
		ownerID, recentDays,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to count recent activity: %w", err)
	}
	defer rows.Close()

	stats.RecentActivity = []models.DailyActivity{}
	for rows.Next() {
		var day models.DailyActivity
		if err := rows.Scan(&day.Date, &day.Count); err != nil {
			return nil, fmt.Errorf("failed to scan daily activity: %w", err)
		}
		stats.RecentActivity = append(stats.RecentActivity, day)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate daily activity: %w", err)
	}
	return stats, nil
}

func collectEventLogs(rows *sql.Rows) ([]*models.EventLog, error) {
	defer rows.Close()

	var logs []*models.EventLog
	for rows.Next() {
		l, err := scanEventLog(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan event log: %w", err)
		}
		logs = append(logs, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate event logs: %w", err)
	}
	return logs, nil
}

func scanEventLog(row scanner) (*models.EventLog, error) {
	l := &models.EventLog{}
	var logType string
	if err := row.Scan(&l.ID, &l.CollectionID, &logType, &l.Message, &l.CreatedAt); err != nil {
		return nil, err
	}
	l.Type = models.LogType(logType)
	return l, nil
}
