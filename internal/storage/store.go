// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/mmynk/totalmanager/internal/models"
)

var (
	// ErrNotFound is returned (wrapped) when an entity ID does not resolve.
	ErrNotFound = errors.New("not found")
	// ErrConflict is returned (wrapped) when a write violates a unique key.
	ErrConflict = errors.New("already exists")
)

// GroupStore persists groups.
type GroupStore interface {
	// CreateGroup persists a new group. ID and CreatedAt are populated by the
	// store when empty.
	CreateGroup(ctx context.Context, group *models.Group) error
	GetGroup(ctx context.Context, groupID string) (*models.Group, error)
	ListGroupsByOwner(ctx context.Context, ownerID string) ([]*models.Group, error)
	// UpdateGroup writes name and type.
	UpdateGroup(ctx context.Context, group *models.Group) error
	// DeleteGroup removes a group together with its collections, members and
	// logs. Reminders pointing at those collections lose their collection ID.
	DeleteGroup(ctx context.Context, groupID string) error
	GetGroupStats(ctx context.Context, groupID string) (*models.GroupStats, error)
}

// CollectionStore persists collections and their members.
type CollectionStore interface {
	CreateCollection(ctx context.Context, collection *models.Collection) error
	GetCollection(ctx context.Context, collectionID string) (*models.Collection, error)
	ListCollectionsByGroup(ctx context.Context, groupID string) ([]*models.Collection, error)
	// UpdateCollection writes every mutable column, including status.
	UpdateCollection(ctx context.Context, collection *models.Collection) error
	DeleteCollection(ctx context.Context, collectionID string) error

	CreateMember(ctx context.Context, member *models.Member) error
	// CreateMembers inserts all members in one transaction.
	CreateMembers(ctx context.Context, members []*models.Member) error
	GetMember(ctx context.Context, memberID string) (*models.Member, error)
	ListMembersByCollection(ctx context.Context, collectionID string) ([]*models.Member, error)
	// UpdateMember writes display name and phone.
	UpdateMember(ctx context.Context, member *models.Member) error
	DeleteMember(ctx context.Context, memberID string) error
	// MarkMember writes the member's read/paid timestamps and appends log in
	// the same transaction.
	MarkMember(ctx context.Context, member *models.Member, log *models.EventLog) error
}

// EventLogStore persists the append-only collection audit trail.
type EventLogStore interface {
	// CreateEventLogs inserts all logs in one transaction.
	CreateEventLogs(ctx context.Context, logs ...*models.EventLog) error
	GetEventLog(ctx context.Context, logID string) (*models.EventLog, error)
	// ListEventLogsByCollection returns a collection's logs, newest first.
	ListEventLogsByCollection(ctx context.Context, collectionID string) ([]*models.EventLog, error)
	// ListEventLogsByOwner returns one page of the logs of every collection
	// in groups owned by ownerID, newest first, plus the unpaged total.
	ListEventLogsByOwner(ctx context.Context, ownerID string, filter models.LogFilter) ([]*models.EventLog, int64, error)
	// GetLogStats counts ownerID's logs by type and by day for the most
	// recent recentDays days that have activity.
	GetLogStats(ctx context.Context, ownerID string, recentDays int) (*models.LogStats, error)
}

// ReminderStore persists reminders.
type ReminderStore interface {
	CreateReminder(ctx context.Context, reminder *models.Reminder) error
	GetReminder(ctx context.Context, reminderID string) (*models.Reminder, error)
	// ListReminders returns userID's reminders ordered by scheduled time.
	ListReminders(ctx context.Context, userID string, filter models.ReminderFilter) ([]*models.Reminder, error)
	// UpdateReminder writes title, schedule, repeat type and message.
	UpdateReminder(ctx context.Context, reminder *models.Reminder) error
	DeleteReminder(ctx context.Context, reminderID string) error
	// SendReminder persists the sent flag of reminder and, in the same
	// transaction, inserts log and next when they are non-nil.
	SendReminder(ctx context.Context, reminder *models.Reminder, log *models.EventLog, next *models.Reminder) error
}

// UserStore persists user accounts, settings and pending verification codes.
type UserStore interface {
	// CreateUser returns ErrConflict when the phone or external ID is taken.
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByID(ctx context.Context, userID string) (*models.User, error)
	GetUserByPhone(ctx context.Context, phone string) (*models.User, error)
	GetUserByExternalID(ctx context.Context, externalID string) (*models.User, error)
	// UpdateUser writes the profile columns.
	UpdateUser(ctx context.Context, user *models.User) error

	// GetOrCreateUserSettings returns userID's settings, creating the row with
	// defaults on first access.
	GetOrCreateUserSettings(ctx context.Context, userID string) (*models.UserSettings, error)
	UpdateUserSettings(ctx context.Context, settings *models.UserSettings) error

	// SaveVerificationCode replaces any pending code for the same phone.
	SaveVerificationCode(ctx context.Context, code *models.VerificationCode) error
	GetVerificationCode(ctx context.Context, phone string) (*models.VerificationCode, error)
	DeleteVerificationCode(ctx context.Context, phone string) error
}

// PaymentMethodStore persists payment methods and keeps at most one default
// per user.
type PaymentMethodStore interface {
	// CreatePaymentMethod clears the user's other defaults first when
	// method.IsDefault is set, in the same transaction.
	CreatePaymentMethod(ctx context.Context, method *models.PaymentMethod) error
	GetPaymentMethod(ctx context.Context, methodID string) (*models.PaymentMethod, error)
	// ListPaymentMethods returns the default first, then newest first.
	ListPaymentMethods(ctx context.Context, userID string) ([]*models.PaymentMethod, error)
	// UpdatePaymentMethod behaves like CreatePaymentMethod with respect to
	// the default flag.
	UpdatePaymentMethod(ctx context.Context, method *models.PaymentMethod) error
	DeletePaymentMethod(ctx context.Context, methodID string) error
	// SetDefaultPaymentMethod makes methodID the only default of userID.
	SetDefaultPaymentMethod(ctx context.Context, userID, methodID string) (*models.PaymentMethod, error)
}

// Store defines the interface for all storage operations.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL, etc.)
// without changing the service layer.
type Store interface {
	GroupStore
	CollectionStore
	EventLogStore
	ReminderStore
	UserStore
	PaymentMethodStore

	// Ping checks that the database is reachable.
	Ping(ctx context.Context) error

	// Close releases any resources held by the store.
	Close() error
}
