package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/mmynk/totalmanager/internal/ids"
	"github.com/mmynk/totalmanager/internal/models"
	"github.com/mmynk/totalmanager/internal/storage"
)

const collectionColumns = "id, group_id, title, amount, due_date, payment_type, payment_value, status, created_at"

// CreateCollection persists a new collection to the database.
func (s *SQLiteStore) CreateCollection(ctx context.Context, c *models.Collection) error {
	if c.ID == "" {
		c.ID = ids.New()
	}
	if c.CreatedAt == 0 {
		c.CreatedAt = nowUnix()
	}

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO collections ("+collectionColumns+") VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)",
		c.ID, c.GroupID, c.Title, c.Amount, c.DueDate.Format(models.DateLayout),
		string(c.PaymentType), c.PaymentValue, string(c.Status), c.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert collection: %w", err)
	}
	return nil
}

// GetCollection retrieves a collection by ID.
func (s *SQLiteStore) GetCollection(ctx context.Context, collectionID string) (*models.Collection, error) {
	c, err := scanCollection(s.db.QueryRowContext(ctx,
		"SELECT "+collectionColumns+" FROM collections WHERE id = ?",
		collectionID,
	))
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("collection %s: %w", collectionID, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get collection: %w", err)
	}
	return c, nil
}

// ListCollectionsByGroup retrieves all collections of a group, oldest first.
func (s *SQLiteStore) ListCollectionsByGroup(ctx context.Context, groupID string) ([]*models.Collection, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT "+collectionColumns+" FROM collections WHERE group_id = ? ORDER BY id",
		groupID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list collections: %w", err)
	}
	defer rows.Close()

	var collections []*models.Collection
	for rows.Next() {
		c, err := scanCollection(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan collection: %w", err)
		}
		collections = append(collections, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate collections: %w", err)
	}
	return collections, nil
}

// UpdateCollection updates an existing collection.
func (s *SQLiteStore) UpdateCollection(ctx context.Context, c *models.Collection) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE collections
		 SET title = ?, amount = ?, due_date = ?, payment_type = ?, payment_value = ?, status = ?
		 WHERE id = ?`,
		c.Title, c.Amount, c.DueDate.Format(models.DateLayout),
		string(c.PaymentType), c.PaymentValue, string(c.Status), c.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update collection: %w", err)
	}
	return requireRow(res, "collection", c.ID)
}

// DeleteCollection removes a collection with its members and logs.
// Reminders that referenced it keep existing with a NULL collection_id.
func (s *SQLiteStore) DeleteCollection(ctx context.Context, collectionID string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM collections WHERE id = ?", collectionID)
	if err != nil {
		return fmt.Errorf("failed to delete collection: %w", err)
	}
	return requireRow(res, "collection", collectionID)
}

func scanCollection(row scanner) (*models.Collection, error) {
	c := &models.Collection{}
	var dueDate, paymentType, status string
	if err := row.Scan(&c.ID, &c.GroupID, &c.Title, &c.Amount, &dueDate,
		&paymentType, &c.PaymentValue, &status, &c.CreatedAt); err != nil {
		return nil, err
	}
	d, err := time.Parse(models.DateLayout, dueDate)
	if err != nil {
		return nil, fmt.Errorf("invalid stored due date %q: %w", dueDate, err)
	}
	c.DueDate = d
	c.PaymentType = models.PaymentType(paymentType)
	c.Status = models.CollectionStatus(status)
	return c, nil
}
