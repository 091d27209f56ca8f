package models

// User represents a registered account.
//
// Users sign up with a phone number. ExternalID is reserved for a third-party
// identity provider and is unique when present.
type User struct {
	ID string

	// Phone is digits only and unique across users.
	Phone string

	ExternalID      string
	Name            string
	Email           string
	ProfileImageURL string
	IsOnboarded     bool

	CreatedAt int64
	UpdatedAt *int64
}

// UserSettings holds per-user notification toggles. A row is created with
// defaults the first time settings are read.
type UserSettings struct {
	ID     string
	UserID string

	PushNotificationsEnabled     bool
	EmailNotificationsEnabled    bool
	ReminderNotificationsEnabled bool

	CreatedAt int64
	UpdatedAt *int64
}

// DefaultUserSettings returns the settings a new user starts with.
func DefaultUserSettings(userID string) *UserSettings {
	return &UserSettings{
		UserID:                       userID,
		PushNotificationsEnabled:     true,
		EmailNotificationsEnabled:    false,
		ReminderNotificationsEnabled: true,
	}
}

// VerificationCode is a pending one-time code sent to a phone number.
// Only the bcrypt hash of the code is stored.
type VerificationCode struct {
	Phone     string
	CodeHash  string
	ExpiresAt int64
	CreatedAt int64
}
