package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mmynk/totalmanager/internal/ids"
	"github.com/mmynk/totalmanager/internal/models"
	"github.com/mmynk/totalmanager/internal/storage"
)

// CreateGroup persists a new group to the database.
func (s *SQLiteStore) CreateGroup(ctx context.Context, group *models.Group) error {
	// Generate IDs if not set
	if group.ID == "" {
		group.ID = ids.New()
	}
	if group.CreatedAt == 0 {
		group.CreatedAt = nowUnix()
	}

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO groups (id, owner_id, name, type, created_at) VALUES (?, ?, ?, ?, ?)",
		group.ID, group.OwnerID, group.Name, string(group.Type), group.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert group: %w", err)
	}
	return nil
}

// GetGroup retrieves a group by ID.
func (s *SQLiteStore) GetGroup(ctx context.Context, groupID string) (*models.Group, error) {
	group, err := scanGroup(s.db.QueryRowContext(ctx,
		"SELECT id, owner_id, name, type, created_at FROM groups WHERE id = ?",
		groupID,
	))
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("group %s: %w", groupID, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get group: %w", err)
	}
	return group, nil
}

// ListGroupsByOwner retrieves all groups owned by a user, oldest first.
func (s *SQLiteStore) ListGroupsByOwner(ctx context.Context, ownerID string) ([]*models.Group, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, owner_id, name, type, created_at FROM groups WHERE owner_id = ? ORDER BY id",
		ownerID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list groups: %w", err)
	}
	defer rows.Close()

	var groups []*models.Group
	for rows.Next() {
		group, err := scanGroup(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan group: %w", err)
		}
		groups = append(groups, group)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate groups: %w", err)
	}
	return groups, nil
}

// UpdateGroup updates the name and type of an existing group.
func (s *SQLiteStore) UpdateGroup(ctx context.Context, group *models.Group) error {
	res, err := s.db.ExecContext(ctx,
		"UPDATE groups SET name = ?, type = ? WHERE id = ?",
		group.Name, string(group.Type), group.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update group: %w", err)
	}
	return requireRow(res, "group", group.ID)
}

// DeleteGroup removes a group. Collections, members and logs go with it
// through ON DELETE CASCADE.
func (s *SQLiteStore) DeleteGroup(ctx context.Context, groupID string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM groups WHERE id = ?", groupID)
	if err != nil {
		return fmt.Errorf("failed to delete group: %w", err)
	}
	return requireRow(res, "group", groupID)
}

// GetGroupStats counts a group's collections and sums their amounts.
func (s *SQLiteStore) GetGroupStats(ctx context.Context, groupID string) (*models.GroupStats, error) {
	stats := &models.GroupStats{}
	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(*), COALESCE(SUM(amount), 0) FROM collections WHERE group_id = ?",
		groupID,
	).Scan(&stats.CollectionsCount, &stats.TotalAmount)
	if err != nil {
		return nil, fmt.Errorf("failed to get group stats: %w", err)
	}
	return stats, nil
}

func scanGroup(row scanner) (*models.Group, error) {
	group := &models.Group{}
	var groupType string
	if err := row.Scan(&group.ID, &group.OwnerID, &group.Name, &groupType, &group.CreatedAt); err != nil {
		return nil, err
	}
	group.Type = models.GroupType(groupType)
	return group, nil
}
