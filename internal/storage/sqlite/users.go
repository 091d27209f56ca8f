package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mmynk/totalmanager/internal/ids"
	"github.com/mmynk/totalmanager/internal/models"
	"github.com/mmynk/totalmanager/internal/storage"
)

const userColumns = "id, phone, external_id, name, email, profile_image_url, is_onboarded, created_at, updated_at"

// CreateUser inserts a new user into the database.
func (s *SQLiteStore) CreateUser(ctx context.Context, user *models.User) error {
	if user.ID == "" {
		user.ID = ids.New()
	}
	if user.CreatedAt == 0 {
		user.CreatedAt = nowUnix()
	}

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO users ("+userColumns+") VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)",
		user.ID,
		nullString(user.Phone),
		nullString(user.ExternalID),
		nullString(user.Name),
		nullString(user.Email),
		nullString(user.ProfileImageURL),
		user.IsOnboarded,
		user.CreatedAt,
		nullInt64(user.UpdatedAt),
	)
	if isUniqueViolation(err) {
		return fmt.Errorf("user with phone %q: %w", user.Phone, storage.ErrConflict)
	}
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// GetUserByID retrieves a user by their ID.
func (s *SQLiteStore) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	return s.getUser(ctx, "id", id)
}

// GetUserByPhone retrieves a user by their phone number.
func (s *SQLiteStore) GetUserByPhone(ctx context.Context, phone string) (*models.User, error) {
	return s.getUser(ctx, "phone", phone)
}

// GetUserByExternalID retrieves a user by their identity provider ID.
func (s *SQLiteStore) GetUserByExternalID(ctx context.Context, externalID string) (*models.User, error) {
	return s.getUser(ctx, "external_id", externalID)
}

// getUser looks a user up by one of its unique columns. column is never
// caller input.
func (s *SQLiteStore) getUser(ctx context.Context, column, value string) (*models.User, error) {
	user, err := scanUser(s.db.QueryRowContext(ctx,
		"SELECT "+userColumns+" FROM users WHERE "+column+" = ?",
		value,
	))
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("user with %s %s: %w", column, value, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user by %s: %w", column, err)
	}
	return user, nil
}

// UpdateUser writes the profile columns of a user.
func (s *SQLiteStore) UpdateUser(ctx context.Context, user *models.User) error {
	now := nowUnix()
	user.UpdatedAt = &now

	res, err := s.db.ExecContext(ctx,
		`UPDATE users
		 SET name = ?, email = ?, profile_image_url = ?, is_onboarded = ?, updated_at = ?
		 WHERE id = ?`,
		nullString(user.Name), nullString(user.Email), nullString(user.ProfileImageURL),
		user.IsOnboarded, now, user.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	return requireRow(res, "user", user.ID)
}

func scanUser(row scanner) (*models.User, error) {
	user := &models.User{}
	var phone, externalID, name, email, image sql.NullString
	var updatedAt sql.NullInt64
	if err := row.Scan(&user.ID, &phone, &externalID, &name, &email, &image,
		&user.IsOnboarded, &user.CreatedAt, &updatedAt); err != nil {
		return nil, err
	}
	user.Phone = phone.String
	user.ExternalID = externalID.String
	user.Name = name.String
	user.Email = email.String
	user.ProfileImageURL = image.String
	user.UpdatedAt = fromNullInt64(updatedAt)
	return user, nil
}

const settingsColumns = "id, user_id, push_notifications_enabled, email_notifications_enabled, reminder_notifications_enabled, created_at, updated_at"

// GetOrCreateUserSettings returns the user's settings, inserting the
// defaults on first access.
func (s *SQLiteStore) GetOrCreateUserSettings(ctx context.Context, userID string) (*models.UserSettings, error) {
	defaults := models.DefaultUserSettings(userID)
	defaults.ID = ids.New()
	defaults.CreatedAt = nowUnix()

	// A concurrent first read may insert the row too; the unique user_id
	// makes the second insert a no-op.
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO user_settings ("+settingsColumns+") VALUES (?, ?, ?, ?, ?, ?, NULL) ON CONFLICT(user_id) DO NOTHING",
		defaults.ID, defaults.UserID, defaults.PushNotificationsEnabled,
		defaults.EmailNotificationsEnabled, defaults.ReminderNotificationsEnabled, defaults.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create user settings: %w", err)
	}

	settings := &models.UserSettings{}
	var updatedAt sql.NullInt64
	err = s.db.QueryRowContext(ctx,
		"SELECT "+settingsColumns+" FROM user_settings WHERE user_id = ?",
		userID,
	).Scan(&settings.ID, &settings.UserID, &settings.PushNotificationsEnabled,
		&settings.EmailNotificationsEnabled, &settings.ReminderNotificationsEnabled,
		&settings.CreatedAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to get user settings: %w", err)
	}
	settings.UpdatedAt = fromNullInt64(updatedAt)
	return settings, nil
}

// UpdateUserSettings writes the notification toggles.
func (s *SQLiteStore) UpdateUserSettings(ctx context.Context, settings *models.UserSettings) error {
	now := nowUnix()
	settings.UpdatedAt = &now

	res, err := s.db.ExecContext(ctx,
		`UPDATE user_settings
		 SET push_notifications_enabled = ?, email_notifications_enabled = ?,
		     reminder_notifications_enabled = ?, updated_at = ?
		 WHERE user_id = ?`,
		settings.PushNotificationsEnabled, settings.EmailNotificationsEnabled,
		settings.ReminderNotificationsEnabled, now, settings.UserID,
	)
	if err != nil {
		return fmt.Errorf("failed to update user settings: %w", err)
	}
	return requireRow(res, "user settings", settings.UserID)
}

// SaveVerificationCode stores a pending code, replacing any previous code
// for the same phone.
func (s *SQLiteStore) SaveVerificationCode(ctx context.Context, code *models.VerificationCode) error {
	if code.CreatedAt == 0 {
		code.CreatedAt = nowUnix()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO verification_codes (phone, code_hash, expires_at, created_at)
		 VALUES (?, ?, ?, ?)
		 ON CONFLICT(phone) DO UPDATE SET
		     code_hash = excluded.code_hash,
		     expires_at = excluded.expires_at,
		     created_at = excluded.created_at`,
		code.Phone, code.CodeHash, code.ExpiresAt, code.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save verification code: %w", err)
	}
	return nil
}

// GetVerificationCode retrieves the pending code for a phone.
func (s *SQLiteStore) GetVerificationCode(ctx context.Context, phone string) (*models.VerificationCode, error) {
	code := &models.VerificationCode{}
	err := s.db.QueryRowContext(ctx,
		"SELECT phone, code_hash, expires_at, created_at FROM verification_codes WHERE phone = ?",
		phone,
	).Scan(&code.Phone, &code.CodeHash, &code.ExpiresAt, &code.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("verification code for %s: %w", phone, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get verification code: %w", err)
	}
	return code, nil
}

// DeleteVerificationCode removes the pending code for a phone. Deleting a
// missing code is not an error.
func (s *SQLiteStore) DeleteVerificationCode(ctx context.Context, phone string) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM verification_codes WHERE phone = ?", phone); err != nil {
		return fmt.Errorf("failed to delete verification code: %w", err)
	}
	return nil
}
