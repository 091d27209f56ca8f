package service

import (
	"context"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/totalmanager/internal/models"
	"github.com/mmynk/totalmanager/internal/storage"
	"github.com/mmynk/totalmanager/pkg/api"
	"github.com/mmynk/totalmanager/pkg/api/apiconnect"
)

var _ apiconnect.SettingsServiceHandler = (*SettingsService)(nil)

// SettingsService implements the Connect SettingsService: notification
// toggles and payment methods of the caller.
type SettingsService struct {
	deps
}

// NewSettingsService creates a new SettingsService.
func NewSettingsService(store storage.Store, opts ...Option) *SettingsService {
	return &SettingsService{deps: newDeps(store, opts)}
}

// GetNotificationSettings returns the caller's settings, creating defaults
// on first access.
func (s *SettingsService) GetNotificationSettings(ctx context.Context, req *connect.Request[api.GetNotificationSettingsRequest]) (*connect.Response[api.GetNotificationSettingsResponse], error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}

	settings, err := s.store.GetOrCreateUserSettings(ctx, userID)
	if err != nil {
		return nil, fail("GetNotificationSettings", err, "user_id", userID)
	}
	return connect.NewResponse(&api.GetNotificationSettingsResponse{Settings: toAPISettings(settings)}), nil
}

// UpdateNotificationSettings changes the supplied toggles.
func (s *SettingsService) UpdateNotificationSettings(ctx context.Context, req *connect.Request[api.UpdateNotificationSettingsRequest]) (*connect.Response[api.UpdateNotificationSettingsResponse], error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	slog.Info("UpdateNotificationSettings request received", "user_id", userID)

	settings, err := s.store.GetOrCreateUserSettings(ctx, userID)
	if err != nil {
		return nil, fail("UpdateNotificationSettings", err, "user_id", userID)
	}

	if v := req.Msg.PushNotificationsEnabled; v != nil {
		settings.PushNotificationsEnabled = *v
	}
	if v := req.Msg.EmailNotificationsEnabled; v != nil {
		settings.EmailNotificationsEnabled = *v
	}
	if v := req.Msg.ReminderNotificationsEnabled; v != nil {
		settings.ReminderNotificationsEnabled = *v
	}

	if err := s.store.UpdateUserSettings(ctx, settings); err != nil {
		return nil, fail("UpdateNotificationSettings", err, "user_id", userID)
	}
	return connect.NewResponse(&api.UpdateNotificationSettingsResponse{Settings: toAPISettings(settings)}), nil
}

// ListPaymentMethods returns the caller's payment methods, default first.
func (s *SettingsService) ListPaymentMethods(ctx context.Context, req *connect.Request[api.ListPaymentMethodsRequest]) (*connect.Response[api.ListPaymentMethodsResponse], error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}

	methods, err := s.store.ListPaymentMethods(ctx, userID)
	if err != nil {
		return nil, fail("ListPaymentMethods", err, "user_id", userID)
	}

	out := make([]*api.PaymentMethod, len(methods))
	for i, m := range methods {
		out[i] = toAPIPaymentMethod(m)
	}
	return connect.NewResponse(&api.ListPaymentMethodsResponse{PaymentMethods: out}), nil
}

// CreatePaymentMethod adds a payment method. Creating it as default clears
// the flag on the caller's other methods.
func (s *SettingsService) CreatePaymentMethod(ctx context.Context, req *connect.Request[api.CreatePaymentMethodRequest]) (*connect.Response[api.CreatePaymentMethodResponse], error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	slog.Info("CreatePaymentMethod request received", "user_id", userID, "is_default", req.Msg.IsDefault)

	if err := validateStruct(req.Msg); err != nil {
		return nil, fail("CreatePaymentMethod", err)
	}

	method := &models.PaymentMethod{
		UserID:        userID,
		BankName:      req.Msg.BankName,
		AccountNumber: req.Msg.AccountNumber,
		AccountHolder: req.Msg.AccountHolder,
		IsDefault:     req.Msg.IsDefault,
		CreatedAt:     s.now().Unix(),
	}
	if err := s.store.CreatePaymentMethod(ctx, method); err != nil {
		return nil, fail("CreatePaymentMethod", err, "user_id", userID)
	}

	slog.Info("Payment method created", "payment_method_id", method.ID)

	return connect.NewResponse(&api.CreatePaymentMethodResponse{PaymentMethod: toAPIPaymentMethod(method)}), nil
}

// GetPaymentMethod returns one of the caller's payment methods.
func (s *SettingsService) GetPaymentMethod(ctx context.Context, req *connect.Request[api.GetPaymentMethodRequest]) (*connect.Response[api.GetPaymentMethodResponse], error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}

	if err := validateStruct(req.Msg); err != nil {
		return nil, fail("GetPaymentMethod", err)
	}
	method, err := s.guard.PaymentMethod(ctx, req.Msg.PaymentMethodID, userID)
	if err != nil {
		return nil, fail("GetPaymentMethod", err, "payment_method_id", req.Msg.PaymentMethodID)
	}
	return connect.NewResponse(&api.GetPaymentMethodResponse{PaymentMethod: toAPIPaymentMethod(method)}), nil
}

// UpdatePaymentMethod applies the supplied fields. Setting is_default to
// true makes this the only default; false only unsets this method.
func (s *SettingsService) UpdatePaymentMethod(ctx context.Context, req *connect.Request[api.UpdatePaymentMethodRequest]) (*connect.Response[api.UpdatePaymentMethodResponse], error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	slog.Info("UpdatePaymentMethod request received", "payment_method_id", req.Msg.PaymentMethodID)

	if err := validateStruct(req.Msg); err != nil {
		return nil, fail("UpdatePaymentMethod", err)
	}
	method, err := s.guard.PaymentMethod(ctx, req.Msg.PaymentMethodID, userID)
	if err != nil {
		return nil, fail("UpdatePaymentMethod", err, "payment_method_id", req.Msg.PaymentMethodID)
	}

	if v := req.Msg.BankName; v != nil {
		method.BankName = *v
	}
	if v := req.Msg.AccountNumber; v != nil {
		method.AccountNumber = *v
	}
	if v := req.Msg.AccountHolder; v != nil {
		method.AccountHolder = *v
	}
	if v := req.Msg.IsDefault; v != nil {
		method.IsDefault = *v
	}

	if err := s.store.UpdatePaymentMethod(ctx, method); err != nil {
		return nil, fail("UpdatePaymentMethod", err, "payment_method_id", method.ID)
	}
	return connect.NewResponse(&api.UpdatePaymentMethodResponse{PaymentMethod: toAPIPaymentMethod(method)}), nil
}

// DeletePaymentMethod removes one of the caller's payment methods.
func (s *SettingsService) DeletePaymentMethod(ctx context.Context, req *connect.Request[api.DeletePaymentMethodRequest]) (*connect.Response[api.Empty], error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	slog.Info("DeletePaymentMethod request received", "payment_method_id", req.Msg.PaymentMethodID)

	if err := validateStruct(req.Msg); err != nil {
		return nil, fail("DeletePaymentMethod", err)
	}
	if _, err := s.guard.PaymentMethod(ctx, req.Msg.PaymentMethodID, userID); err != nil {
		return nil, fail("DeletePaymentMethod", err, "payment_method_id", req.Msg.PaymentMethodID)
	}
	if err := s.store.DeletePaymentMethod(ctx, req.Msg.PaymentMethodID); err != nil {
		return nil, fail("DeletePaymentMethod", err, "payment_method_id", req.Msg.PaymentMethodID)
	}
	return connect.NewResponse(&api.Empty{}), nil
}

// SetDefaultPaymentMethod makes one payment method the caller's only default.
func (s *SettingsService) SetDefaultPaymentMethod(ctx context.Context, req *connect.Request[api.SetDefaultPaymentMethodRequest]) (*connect.Response[api.SetDefaultPaymentMethodResponse], error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	slog.Info("SetDefaultPaymentMethod request received", "payment_method_id", req.Msg.PaymentMethodID)

	if err := validateStruct(req.Msg); err != nil {
		return nil, fail("SetDefaultPaymentMethod", err)
	}
	if _, err := s.guard.PaymentMethod(ctx, req.Msg.PaymentMethodID, userID); err != nil {
		return nil, fail("SetDefaultPaymentMethod", err, "payment_method_id", req.Msg.PaymentMethodID)
	}

	method, err := s.store.SetDefaultPaymentMethod(ctx, userID, req.Msg.PaymentMethodID)
	if err != nil {
		return nil, fail("SetDefaultPaymentMethod", err, "payment_method_id", req.Msg.PaymentMethodID)
	}
	return connect.NewResponse(&api.SetDefaultPaymentMethodResponse{PaymentMethod: toAPIPaymentMethod(method)}), nil
}
