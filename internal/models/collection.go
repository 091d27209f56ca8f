package models

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the wire and storage format of calendar dates.
const DateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD date into midnight UTC.
func ParseDate(s string) (time.Time, error) {
	d, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: want YYYY-MM-DD", s)
	}
	return d, nil
}

// CollectionStatus is the lifecycle state of a collection.
type CollectionStatus string

const (
	CollectionStatusActive  CollectionStatus = "active"
	CollectionStatusDueSoon CollectionStatus = "due_soon"
	CollectionStatusClosed  CollectionStatus = "closed"
)

// PaymentType describes how members are expected to pay.
type PaymentType string

const (
	// PaymentTypeBank means PaymentValue holds a bank account.
	PaymentTypeBank PaymentType = "bank"
	// PaymentTypeLink means PaymentValue holds a payment link.
	PaymentTypeLink PaymentType = "link"
)

// ParsePaymentType normalizes s and returns the matching PaymentType.
func ParsePaymentType(s string) (PaymentType, error) {
	switch t := PaymentType(strings.ToLower(strings.TrimSpace(s))); t {
	case PaymentTypeBank, PaymentTypeLink:
		return t, nil
	default:
		return "", fmt.Errorf("unknown payment type %q", s)
	}
}

// Collection is a payment collection campaign inside a group.
type Collection struct {
	ID      string
	GroupID string
	Title   string

	// Amount is the target amount in whole currency units.
	Amount int64

	// DueDate is a calendar date stored at midnight UTC.
	DueDate time.Time

	PaymentType  PaymentType
	PaymentValue string

	// Status is derived from DueDate when the collection is created or its
	// due date is updated. It is not recomputed on reads, so it can be stale.
	Status CollectionStatus

	CreatedAt int64
}

// Member is the read/payment state of one participant within a collection.
// Members are not user accounts.
type Member struct {
	ID           string
	CollectionID string
	DisplayName  string

	// Phone is optional; empty means unknown.
	Phone string

	// ReadAt and PaidAt are nil until the member is marked. Once set they
	// are only ever overwritten by a later mark, never cleared.
	ReadAt *int64
	PaidAt *int64

	CreatedAt int64
}
