package auth

import (
	"context"

	"github.com/mmynk/totalmanager/internal/models"
)

// Authenticator defines the interface for authentication implementations.
// This abstraction allows swapping between different auth methods (phone
// codes, identity providers, etc.) without changing the service layer code.
type Authenticator interface {
	// Register creates a new account for phone. credential is the optional
	// verification code; when non-empty it must match the pending code.
	Register(ctx context.Context, phone, name, email, credential string) (*models.User, error)

	// Authenticate resolves the account registered for phone, checking the
	// verification code when one is supplied.
	Authenticate(ctx context.Context, phone, credential string) (*models.User, error)

	// ValidateCredential checks that phone is an acceptable identifier.
	ValidateCredential(phone string) error
}

// CodeSender issues one-time verification codes for a phone number.
type CodeSender interface {
	// SendCode stores a new pending code and returns its plaintext and
	// expiry as Unix seconds. Delivering the code is the caller's job.
	SendCode(ctx context.Context, phone string) (code string, expiresAt int64, err error)
}
