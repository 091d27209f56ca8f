package models

// PaymentMethod is a bank account a user collects money into.
// At most one payment method per user has IsDefault set.
type PaymentMethod struct {
	ID     string
	UserID string

	BankName      string
	AccountNumber string
	AccountHolder string

	IsDefault bool

	CreatedAt int64
	UpdatedAt *int64
}
