// Package access authorizes a requesting user against the entities they
// address. Ownership is the only rule: groups and everything below them
// belong to the group owner; reminders and payment methods belong to their
// user.
package access

import (
	"context"
	"errors"
	"fmt"

	"github.com/mmynk/totalmanager/internal/models"
)

// ErrForbidden is returned when the entity exists but belongs to someone else.
var ErrForbidden = errors.New("forbidden")

// Getter is the read-only slice of storage.Store the guard needs. Getters
// return a wrapped storage.ErrNotFound for missing IDs.
type Getter interface {
	GetGroup(ctx context.Context, groupID string) (*models.Group, error)
	GetCollection(ctx context.Context, collectionID string) (*models.Collection, error)
	GetMember(ctx context.Context, memberID string) (*models.Member, error)
	GetEventLog(ctx context.Context, logID string) (*models.EventLog, error)
	GetReminder(ctx context.Context, reminderID string) (*models.Reminder, error)
	GetPaymentMethod(ctx context.Context, methodID string) (*models.PaymentMethod, error)
}

// Guard resolves entities and checks that the requesting user owns them.
type Guard struct {
	store Getter
}

// NewGuard creates a Guard reading from store.
func NewGuard(store Getter) *Guard {
	return &Guard{store: store}
}

// Group returns the group if userID owns it.
func (g *Guard) Group(ctx context.Context, groupID, userID string) (*models.Group, error) {
	group, err := g.store.GetGroup(ctx, groupID)
	if err != nil {
		return nil, err
	}
	if group.OwnerID != userID {
		return nil, fmt.Errorf("group %s: %w", groupID, ErrForbidden)
	}
	return group, nil
}

// Collection returns the collection if userID owns its group.
func (g *Guard) Collection(ctx context.Context, collectionID, userID string) (*models.Collection, error) {
	collection, err := g.store.GetCollection(ctx, collectionID)
	if err != nil {
		return nil, err
	}
	if _, err := g.Group(ctx, collection.GroupID, userID); err != nil {
		return nil, err
	}
	return collection, nil
}

// Member returns the member and its collection if userID owns the
// collection's group.
func (g *Guard) Member(ctx context.Context, memberID, userID string) (*models.Member, *models.Collection, error) {
	member, err := g.store.GetMember(ctx, memberID)
	if err != nil {
		return nil, nil, err
	}
	collection, err := g.Collection(ctx, member.CollectionID, userID)
	if err != nil {
		return nil, nil, err
	}
	return member, collection, nil
}

// EventLog returns the log if userID owns its collection's group.
func (g *Guard) EventLog(ctx context.Context, logID, userID string) (*models.EventLog, error) {
	log, err := g.store.GetEventLog(ctx, logID)
	if err != nil {
		return nil, err
	}
	if _, err := g.Collection(ctx, log.CollectionID, userID); err != nil {
		return nil, err
	}
	return log, nil
}

// Reminder returns the reminder if it belongs to userID.
func (g *Guard) Reminder(ctx context.Context, reminderID, userID string) (*models.Reminder, error) {
	reminder, err := g.store.GetReminder(ctx, reminderID)
	if err != nil {
		return nil, err
	}
	if reminder.UserID != userID {
		return nil, fmt.Errorf("reminder %s: %w", reminderID, ErrForbidden)
	}
	return reminder, nil
}

// PaymentMethod returns the payment method if it belongs to userID.
func (g *Guard) PaymentMethod(ctx context.Context, methodID, userID string) (*models.PaymentMethod, error) {
	method, err := g.store.GetPaymentMethod(ctx, methodID)
	if err != nil {
		return nil, err
	}
	if method.UserID != userID {
		return nil, fmt.Errorf("payment method %s: %w", methodID, ErrForbidden)
	}
	return method, nil
}
