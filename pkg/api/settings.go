package api

type NotificationSettings struct {
	PushNotificationsEnabled     bool `json:"push_notifications_enabled"`
	EmailNotificationsEnabled    bool `json:"email_notifications_enabled"`
	ReminderNotificationsEnabled bool `json:"reminder_notifications_enabled"`
}

type GetNotificationSettingsRequest struct{}

type GetNotificationSettingsResponse struct {
	Settings *NotificationSettings `json:"settings"`
}

type UpdateNotificationSettingsRequest struct {
	PushNotificationsEnabled     *bool `json:"push_notifications_enabled,omitempty"`
	EmailNotificationsEnabled    *bool `json:"email_notifications_enabled,omitempty"`
	ReminderNotificationsEnabled *bool `json:"reminder_notifications_enabled,omitempty"`
}

type UpdateNotificationSettingsResponse struct {
	Settings *NotificationSettings `json:"settings"`
}

// PaymentMethod is a bank account the caller collects into.
type PaymentMethod struct {
	ID            string `json:"id"`
	UserID        string `json:"user_id"`
	BankName      string `json:"bank_name"`
	AccountNumber string `json:"account_number"`
	AccountHolder string `json:"account_holder"`
	IsDefault     bool   `json:"is_default"`
	CreatedAt     int64  `json:"created_at"`
	UpdatedAt     *int64 `json:"updated_at,omitempty"`
}

type ListPaymentMethodsRequest struct{}

type ListPaymentMethodsResponse struct {
	PaymentMethods []*PaymentMethod `json:"payment_methods"`
}

type CreatePaymentMethodRequest struct {
	BankName      string `json:"bank_name" validate:"required,max=50"`
	AccountNumber string `json:"account_number" validate:"required,max=50"`
	AccountHolder string `json:"account_holder" validate:"required,max=50"`
	IsDefault     bool   `json:"is_default,omitempty"`
}

type CreatePaymentMethodResponse struct {
	PaymentMethod *PaymentMethod `json:"payment_method"`
}

type GetPaymentMethodRequest struct {
	PaymentMethodID string `json:"payment_method_id" validate:"required"`
}

type GetPaymentMethodResponse struct {
	PaymentMethod *PaymentMethod `json:"payment_method"`
}

type UpdatePaymentMethodRequest struct {
	PaymentMethodID string  `json:"payment_method_id" validate:"required"`
	BankName        *string `json:"bank_name,omitempty" validate:"omitempty,min=1,max=50"`
	AccountNumber   *string `json:"account_number,omitempty" validate:"omitempty,min=1,max=50"`
	AccountHolder   *string `json:"account_holder,omitempty" validate:"omitempty,min=1,max=50"`
	IsDefault       *bool   `json:"is_default,omitempty"`
}

type UpdatePaymentMethodResponse struct {
	PaymentMethod *PaymentMethod `json:"payment_method"`
}

type DeletePaymentMethodRequest struct {
	PaymentMethodID string `json:"payment_method_id" validate:"required"`
}

type SetDefaultPaymentMethodRequest struct {
	PaymentMethodID string `json:"payment_method_id" validate:"required"`
}

type SetDefaultPaymentMethodResponse struct {
	PaymentMethod *PaymentMethod `json:"payment_method"`
}
