package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mmynk/totalmanager/internal/ids"
	"github.com/mmynk/totalmanager/internal/models"
	"github.com/mmynk/totalmanager/internal/storage"
)

const paymentMethodColumns = "id, user_id, bank_name, account_number, account_holder, is_default, created_at, updated_at"

// CreatePaymentMethod persists a new payment method. When it is flagged as
// default, the user's other methods lose the flag in the same transaction.
func (s *SQLiteStore) CreatePaymentMethod(ctx context.Context, pm *models.PaymentMethod) error {
	if pm.ID == "" {
		pm.ID = ids.New()
	}
	if pm.CreatedAt == 0 {
		pm.CreatedAt = nowUnix()
	}

	return s.withTx(ctx, func(tx *sql.Tx) error {
		if pm.IsDefault {
			if err := clearDefaults(ctx, tx, pm.UserID, pm.ID); err != nil {
				return err
			}
		}
		_, err := tx.ExecContext(ctx,
			"INSERT INTO payment_methods ("+paymentMethodColumns+") VALUES (?, ?, ?, ?, ?, ?, ?, ?)",
			pm.ID, pm.UserID, pm.BankName, pm.AccountNumber, pm.AccountHolder,
			pm.IsDefault, pm.CreatedAt, nullInt64(pm.UpdatedAt),
		)
		if err != nil {
			return fmt.Errorf("failed to insert payment method: %w", err)
		}
		return nil
	})
}

// GetPaymentMethod retrieves a payment method by ID.
func (s *SQLiteStore) GetPaymentMethod(ctx context.Context, methodID string) (*models.PaymentMethod, error) {
	return getPaymentMethod(ctx, s.db, methodID)
}

// ListPaymentMethods retrieves the user's payment methods, default first,
// then newest first.
func (s *SQLiteStore) ListPaymentMethods(ctx context.Context, userID string) ([]*models.PaymentMethod, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT "+paymentMethodColumns+" FROM payment_methods WHERE user_id = ? ORDER BY is_default DESC, created_at DESC, id DESC",
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list payment methods: %w", err)
	}
	defer rows.Close()

	var methods []*models.PaymentMethod
	for rows.Next() {
		pm, err := scanPaymentMethod(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payment method: %w", err)
		}
		methods = append(methods, pm)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate payment methods: %w", err)
	}
	return methods, nil
}

// UpdatePaymentMethod writes the account columns and the default flag.
// Setting the flag clears it on the user's other methods first.
func (s *SQLiteStore) UpdatePaymentMethod(ctx context.Context, pm *models.PaymentMethod) error {
	now := nowUnix()
	pm.UpdatedAt = &now

	return s.withTx(ctx, func(tx *sql.Tx) error {
		if pm.IsDefault {
			if err := clearDefaults(ctx, tx, pm.UserID, pm.ID); err != nil {
				return err
			}
		}
		res, err := tx.ExecContext(ctx,
			`UPDATE payment_methods
			 SET bank_name = ?, account_number = ?, account_holder = ?, is_default = ?, updated_at = ?
			 WHERE id = ?`,
			pm.BankName, pm.AccountNumber, pm.AccountHolder, pm.IsDefault, now, pm.ID,
		)
		if err != nil {
			return fmt.Errorf("failed to update payment method: %w", err)
		}
		return requireRow(res, "payment method", pm.ID)
	})
}

// DeletePaymentMethod removes a payment method by ID. Deleting the default
// leaves the user without one.
func (s *SQLiteStore) DeletePaymentMethod(ctx context.Context, methodID string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM payment_methods WHERE id = ?", methodID)
	if err != nil {
		return fmt.Errorf("failed to delete payment method: %w", err)
	}
	return requireRow(res, "payment method", methodID)
}

// SetDefaultPaymentMethod makes methodID the user's only default and returns
// the updated method. Calling it on the current default changes nothing but
// updated_at.
func (s *SQLiteStore) SetDefaultPaymentMethod(ctx context.Context, userID, methodID string) (*models.PaymentMethod, error) {
	var updated *models.PaymentMethod
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		if err := clearDefaults(ctx, tx, userID, methodID); err != nil {
			return err
		}
		res, err := tx.ExecContext(ctx,
			"UPDATE payment_methods SET is_default = 1, updated_at = ? WHERE id = ? AND user_id = ?",
			nowUnix(), methodID, userID,
		)
		if err != nil {
			return fmt.Errorf("failed to set default payment method: %w", err)
		}
		if err := requireRow(res, "payment method", methodID); err != nil {
			return err
		}
		updated, err = getPaymentMethod(ctx, tx, methodID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// clearDefaults unsets is_default on every method of userID except keepID.
func clearDefaults(ctx context.Context, db execer, userID, keepID string) error {
	_, err := db.ExecContext(ctx,
		"UPDATE payment_methods SET is_default = 0, updated_at = ? WHERE user_id = ? AND id != ? AND is_default = 1",
		nowUnix(), userID, keepID,
	)
	if err != nil {
		return fmt.Errorf("failed to clear default payment methods: %w", err)
	}
	return nil
}

// rowQuerier is satisfied by both *sql.DB and *sql.Tx.
type rowQuerier interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func getPaymentMethod(ctx context.Context, db rowQuerier, methodID string) (*models.PaymentMethod, error) {
	pm, err := scanPaymentMethod(db.QueryRowContext(ctx,
		"SELECT "+paymentMethodColumns+" FROM payment_methods WHERE id = ?",
		methodID,
	))
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("payment method %s: %w", methodID, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get payment method: %w", err)
	}
	return pm, nil
}

func scanPaymentMethod(row scanner) (*models.PaymentMethod, error) {
	pm := &models.PaymentMethod{}
	var updatedAt sql.NullInt64
	if err := row.Scan(&pm.ID, &pm.UserID, &pm.BankName, &pm.AccountNumber, &pm.AccountHolder,
		&pm.IsDefault, &pm.CreatedAt, &updatedAt); err != nil {
		return nil, err
	}
	pm.UpdatedAt = fromNullInt64(updatedAt)
	return pm, nil
}
