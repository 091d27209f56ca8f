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

const reminderColumns = "id, user_id, collection_id, title, scheduled_at, repeat_type, message, is_sent, sent_at, created_at, updated_at"

// CreateReminder persists a new reminder.
func (s *SQLiteStore) CreateReminder(ctx context.Context, r *models.Reminder) error {
	if err := insertReminder(ctx, s.db, r); err != nil {
		return fmt.Errorf("failed to insert reminder: %w", err)
	}
	return nil
}

func insertReminder(ctx context.Context, db execer, r *models.Reminder) error {
	if r.ID == "" {
		r.ID = ids.New()
	}
	if r.CreatedAt == 0 {
		r.CreatedAt = nowUnix()
	}
	_, err := db.ExecContext(ctx,
		"INSERT INTO reminders ("+reminderColumns+") VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)",
		r.ID, r.UserID, nullString(r.CollectionID), r.Title, r.ScheduledAt, string(r.RepeatType),
		nullString(r.Message), r.IsSent, nullInt64(r.SentAt), r.CreatedAt, nullInt64(r.UpdatedAt),
	)
	return err
}

// GetReminder retrieves a reminder by ID.
func (s *SQLiteStore) GetReminder(ctx context.Context, reminderID string) (*models.Reminder, error) {
	r, err := scanReminder(s.db.QueryRowContext(ctx,
		"SELECT "+reminderColumns+" FROM reminders WHERE id = ?",
		reminderID,
	))
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("reminder %s: %w", reminderID, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get reminder: %w", err)
	}
	return r, nil
}

// ListReminders retrieves the user's reminders ordered by scheduled time.
func (s *SQLiteStore) ListReminders(ctx context.Context, userID string, filter models.ReminderFilter) ([]*models.Reminder, error) {
	where := []string{"user_id = ?"}
	args := []any{userID}
	if filter.IsSent != nil {
		where = append(where, "is_sent = ?")
		args = append(args, *filter.IsSent)
	}
	if filter.CollectionID != "" {
		where = append(where, "collection_id = ?")
		args = append(args, filter.CollectionID)
	}

	rows, err := s.db.QueryContext(ctx,
		"SELECT "+reminderColumns+" FROM reminders WHERE "+strings.Join(where, " AND ")+
			" ORDER BY scheduled_at ASC, id ASC",
		args...,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list reminders: %w", err)
	}
	defer rows.Close()

	var reminders []*models.Reminder
	for rows.Next() {
		r, err := scanReminder(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan reminder: %w", err)
		}
		reminders = append(reminders, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate reminders: %w", err)
	}
	return reminders, nil
}

// UpdateReminder writes title, schedule, repeat type and message.
func (s *SQLiteStore) UpdateReminder(ctx context.Context, r *models.Reminder) error {
	if r.UpdatedAt == nil {
		now := nowUnix()
		r.UpdatedAt = &now
	}
	res, err := s.db.ExecContext(ctx,
		`UPDATE reminders
		 SET title = ?, scheduled_at = ?, repeat_type = ?, message = ?, updated_at = ?
		 WHERE id = ?`,
		r.Title, r.ScheduledAt, string(r.RepeatType), nullString(r.Message), *r.UpdatedAt, r.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update reminder: %w", err)
	}
	return requireRow(res, "reminder", r.ID)
}

// DeleteReminder removes a reminder by ID.
func (s *SQLiteStore) DeleteReminder(ctx context.Context, reminderID string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM reminders WHERE id = ?", reminderID)
	if err != nil {
		return fmt.Errorf("failed to delete reminder: %w", err)
	}
	return requireRow(res, "reminder", reminderID)
}

// SendReminder stores the sent state of reminder. The optional log and the
// optional next occurrence are inserted in the same transaction.
func (s *SQLiteStore) SendReminder(ctx context.Context, reminder *models.Reminder, log *models.EventLog, next *models.Reminder) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx,
			"UPDATE reminders SET is_sent = ?, sent_at = ?, updated_at = ? WHERE id = ?",
			reminder.IsSent, nullInt64(reminder.SentAt), nullInt64(reminder.UpdatedAt), reminder.ID,
		)
		if err != nil {
			return fmt.Errorf("failed to mark reminder sent: %w", err)
		}
		if err := requireRow(res, "reminder", reminder.ID); err != nil {
			return err
		}
		if log != nil {
			if err := insertEventLog(ctx, tx, log); err != nil {
				return fmt.Errorf("failed to insert event log: %w", err)
			}
		}
		if next != nil {
			if err := insertReminder(ctx, tx, next); err != nil {
				return fmt.Errorf("failed to insert next reminder: %w", err)
			}
		}
		return nil
	})
}

func scanReminder(row scanner) (*models.Reminder, error) {
	r := &models.Reminder{}
	var collectionID, message sql.NullString
	var repeatType string
	var sentAt, updatedAt sql.NullInt64
	if err := row.Scan(&r.ID, &r.UserID, &collectionID, &r.Title, &r.ScheduledAt, &repeatType,
		&message, &r.IsSent, &sentAt, &r.CreatedAt, &updatedAt); err != nil {
		return nil, err
	}
	r.CollectionID = collectionID.String
	r.RepeatType = models.RepeatType(repeatType)
	r.Message = message.String
	r.SentAt = fromNullInt64(sentAt)
	r.UpdatedAt = fromNullInt64(updatedAt)
	return r, nil
}
