package service

import (
	"errors"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/totalmanager/internal/access"
	"github.com/mmynk/totalmanager/internal/auth"
	"github.com/mmynk/totalmanager/internal/storage"
)

// toConnectError maps domain errors to Connect codes. Errors that already
// carry a code are returned unchanged.
func toConnectError(err error) error {
	var connectErr *connect.Error
	if errors.As(err, &connectErr) {
		return connectErr
	}

	var invalid *validationError
	switch {
	case errors.As(err, &invalid), errors.Is(err, auth.ErrInvalidPhone):
		return connect.NewError(connect.CodeInvalidArgument, err)
	case errors.Is(err, storage.ErrNotFound), errors.Is(err, auth.ErrUnknownPhone):
		return connect.NewError(connect.CodeNotFound, err)
	case errors.Is(err, access.ErrForbidden):
		return connect.NewError(connect.CodePermissionDenied, err)
	case errors.Is(err, storage.ErrConflict), errors.Is(err, auth.ErrPhoneExists):
		return connect.NewError(connect.CodeAlreadyExists, err)
	case errors.Is(err, auth.ErrInvalidCode),
		errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrMissingToken):
		return connect.NewError(connect.CodeUnauthenticated, err)
	default:
		return connect.NewError(connect.CodeInternal, err)
	}
}

// fail logs a failed operation and returns the mapped Connect error.
// Internal failures are logged at ERROR, client mistakes at WARN.
func fail(op string, err error, attrs ...any) error {
	mapped := toConnectError(err)
	attrs = append(attrs, "error", err)
	if connect.CodeOf(mapped) == connect.CodeInternal {
		slog.Error(op+" failed", attrs...)
	} else {
		slog.Warn(op+" failed", attrs...)
	}
	return mapped
}
