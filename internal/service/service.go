// Package service implements the Connect RPC services of Total Manager.
//
// Every service resolves the requesting user from the context (see
// middleware.GetUserID), authorizes the addressed entity through an
// access.Guard, and maps domain errors to Connect codes in one place
// (toConnectError).
package service

import (
	"context"
	"log/slog"
	"time"

	"connectrpc.com/connect"

	"github.com/mmynk/totalmanager/internal/access"
	"github.com/mmynk/totalmanager/internal/auth"
	"github.com/mmynk/totalmanager/internal/middleware"
	"github.com/mmynk/totalmanager/internal/notify"
	"github.com/mmynk/totalmanager/internal/storage"
)

// deps holds what every service needs.
type deps struct {
	store    storage.Store
	guard    *access.Guard
	now      func() time.Time
	metrics  *middleware.Metrics
	notifier notify.Notifier
	logger   *slog.Logger
}

// Option configures a service.
type Option func(*deps)

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(d *deps) { d.now = now }
}

// WithMetrics records written event logs in m.
func WithMetrics(m *middleware.Metrics) Option {
	return func(d *deps) { d.metrics = m }
}

// WithNotifier sets where notices, reminders and verification codes go.
func WithNotifier(n notify.Notifier) Option {
	return func(d *deps) { d.notifier = n }
}

// WithLogger sets the logger of services that log through a field.
func WithLogger(l *slog.Logger) Option {
	return func(d *deps) { d.logger = l }
}

func newDeps(store storage.Store, opts []Option) deps {
	d := deps{
		store:    store,
		guard:    access.NewGuard(store),
		now:      time.Now,
		notifier: notify.Nop{},
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(&d)
	}
	return d
}

// requireUser returns the authenticated user ID or an Unauthenticated error.
func requireUser(ctx context.Context) (string, error) {
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		return "", connect.NewError(connect.CodeUnauthenticated, auth.ErrMissingToken)
	}
	return userID, nil
}

// notify hands msg to the notifier. Delivery problems never fail the RPC.
func (d *deps) notify(ctx context.Context, msg notify.Message) {
	if err := d.notifier.Notify(ctx, msg); err != nil {
		slog.Warn("Notification failed", "kind", msg.Kind, "to", msg.To, "error", err)
	}
}
