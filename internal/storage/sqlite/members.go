package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mmynk/totalmanager/internal/ids"
	"github.com/mmynk/totalmanager/internal/models"
	"github.com/mmynk/totalmanager/internal/storage"
)

const memberColumns = "id, collection_id, display_name, phone, read_at, paid_at, created_at"

// CreateMember persists a single member.
func (s *SQLiteStore) CreateMember(ctx context.Context, member *models.Member) error {
	if err := insertMember(ctx, s.db, member); err != nil {
		return fmt.Errorf("failed to insert member: %w", err)
	}
	return nil
}

// CreateMembers persists members in one transaction. Either all of them are
// stored or none are.
func (s *SQLiteStore) CreateMembers(ctx context.Context, members []*models.Member) error {
	if len(members) == 0 {
		return nil
	}
	return s.withTx(ctx, func(tx *sql.Tx) error {
		for _, m := range members {
			if err := insertMember(ctx, tx, m); err != nil {
				return fmt.Errorf("failed to insert member %q: %w", m.DisplayName, err)
			}
		}
		return nil
	})
}

func insertMember(ctx context.Context, db execer, m *models.Member) error {
	if m.ID == "" {
		m.ID = ids.New()
	}
	if m.CreatedAt == 0 {
		m.CreatedAt = nowUnix()
	}
	_, err := db.ExecContext(ctx,
		"INSERT INTO members ("+memberColumns+") VALUES (?, ?, ?, ?, ?, ?, ?)",
		m.ID, m.CollectionID, m.DisplayName, nullString(m.Phone),
		nullInt64(m.ReadAt), nullInt64(m.PaidAt), m.CreatedAt,
	)
	return err
}

// GetMember retrieves a member by ID.
func (s *SQLiteStore) GetMember(ctx context.Context, memberID string) (*models.Member, error) {
	m, err := scanMember(s.db.QueryRowContext(ctx,
		"SELECT "+memberColumns+" FROM members WHERE id = ?",
		memberID,
	))
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("member %s: %w", memberID, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get member: %w", err)
	}
	return m, nil
}

// ListMembersByCollection retrieves all members of a collection in insertion order.
func (s *SQLiteStore) ListMembersByCollection(ctx context.Context, collectionID string) ([]*models.Member, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT "+memberColumns+" FROM members WHERE collection_id = ? ORDER BY id",
		collectionID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}
	defer rows.Close()

	var members []*models.Member
	for rows.Next() {
		m, err := scanMember(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan member: %w", err)
		}
		members = append(members, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate members: %w", err)
	}
	return members, nil
}

// UpdateMember writes the display name and phone of a member.
func (s *SQLiteStore) UpdateMember(ctx context.Context, m *models.Member) error {
	res, err := s.db.ExecContext(ctx,
		"UPDATE members SET display_name = ?, phone = ? WHERE id = ?",
		m.DisplayName, nullString(m.Phone), m.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update member: %w", err)
	}
	return requireRow(res, "member", m.ID)
}

// DeleteMember removes a member by ID.
func (s *SQLiteStore) DeleteMember(ctx context.Context, memberID string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM members WHERE id = ?", memberID)
	if err != nil {
		return fmt.Errorf("failed to delete member: %w", err)
	}
	return requireRow(res, "member", memberID)
}

// MarkMember stores the read/paid timestamps of member and appends log in
// the same transaction.
func (s *SQLiteStore) MarkMember(ctx context.Context, member *models.Member, log *models.EventLog) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx,
			"UPDATE members SET read_at = ?, paid_at = ? WHERE id = ?",
			nullInt64(member.ReadAt), nullInt64(member.PaidAt), member.ID,
		)
		if err != nil {
			return fmt.Errorf("failed to mark member: %w", err)
		}
		if err := requireRow(res, "member", member.ID); err != nil {
			return err
		}
		if log != nil {
			if err := insertEventLog(ctx, tx, log); err != nil {
				return fmt.Errorf("failed to insert event log: %w", err)
			}
		}
		return nil
	})
}

func scanMember(row scanner) (*models.Member, error) {
	m := &models.Member{}
	var phone sql.NullString
	var readAt, paidAt sql.NullInt64
	if err := row.Scan(&m.ID, &m.CollectionID, &m.DisplayName, &phone,
		&readAt, &paidAt, &m.CreatedAt); err != nil {
		return nil, err
	}
	m.Phone = phone.String
	m.ReadAt = fromNullInt64(readAt)
	m.PaidAt = fromNullInt64(paidAt)
	return m, nil
}
