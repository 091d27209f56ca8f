package auth

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/mmynk/totalmanager/internal/models"
	"github.com/mmynk/totalmanager/internal/storage"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidPhone = errors.New("phone must be 10 to 11 digits")
	ErrPhoneExists  = errors.New("phone already registered")
	ErrUnknownPhone = errors.New("phone not registered")
	ErrInvalidCode  = errors.New("invalid or expired verification code")
)

var (
	_ Authenticator = (*PhoneAuthenticator)(nil)
	_ CodeSender    = (*PhoneAuthenticator)(nil)
)

// CodeLength is the number of digits in a verification code.
const CodeLength = 6

// UserStorage defines the interface for user persistence operations.
// This allows the authenticator to be independent of the storage implementation.
type UserStorage interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByPhone(ctx context.Context, phone string) (*models.User, error)
	SaveVerificationCode(ctx context.Context, code *models.VerificationCode) error
	GetVerificationCode(ctx context.Context, phone string) (*models.VerificationCode, error)
	DeleteVerificationCode(ctx context.Context, phone string) error
}

// PhoneAuthenticator identifies users by phone number, optionally proven
// with a one-time verification code.
type PhoneAuthenticator struct {
	storage UserStorage
	codeTTL time.Duration
	now     func() time.Time
}

// NewPhoneAuthenticator creates a phone-based authenticator whose codes
// expire after codeTTL.
func NewPhoneAuthenticator(storage UserStorage, codeTTL time.Duration) *PhoneAuthenticator {
	return &PhoneAuthenticator{
		storage: storage,
		codeTTL: codeTTL,
		now:     time.Now,
	}
}

// ValidateCredential checks that phone is 10 or 11 ASCII digits.
func (a *PhoneAuthenticator) ValidateCredential(phone string) error {
	if len(phone) < 10 || len(phone) > 11 {
		return ErrInvalidPhone
	}
	for _, r := range phone {
		if r < '0' || r > '9' {
			return ErrInvalidPhone
		}
	}
	return nil
}

// Register creates a new user for phone.
func (a *PhoneAuthenticator) Register(ctx context.Context, phone, name, email, credential string) (*models.User, error) {
	if err := a.ValidateCredential(phone); err != nil {
		return nil, err
	}

	// Check before consuming a code so a retry with the same code still works
	if _, err := a.storage.GetUserByPhone(ctx, phone); err == nil {
		return nil, ErrPhoneExists
	} else if !errors.Is(err, storage.ErrNotFound) {
		return nil, err
	}

	if credential != "" {
		if err := a.VerifyCode(ctx, phone, credential); err != nil {
			return nil, err
		}
	}

	user := &models.User{
		Phone: phone,
		Name:  name,
		Email: email,
	}
	if err := a.storage.CreateUser(ctx, user); err != nil {
		if errors.Is(err, storage.ErrConflict) {
			return nil, ErrPhoneExists
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// Authenticate returns the user registered for phone.
func (a *PhoneAuthenticator) Authenticate(ctx context.Context, phone, credential string) (*models.User, error) {
	if err := a.ValidateCredential(phone); err != nil {
		return nil, err
	}

	user, err := a.storage.GetUserByPhone(ctx, phone)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, ErrUnknownPhone
	}
	if err != nil {
		return nil, err
	}

	if credential != "" {
		if err := a.VerifyCode(ctx, phone, credential); err != nil {
			return nil, err
		}
	}

	return user, nil
}

// SendCode generates a fresh code for phone, stores its hash and returns the
// plaintext for delivery together with its expiry (Unix seconds). A previous
// pending code is replaced.
func (a *PhoneAuthenticator) SendCode(ctx context.Context, phone string) (string, int64, error) {
	if err := a.ValidateCredential(phone); err != nil {
		return "", 0, err
	}

	code, err := generateCode()
	if err != nil {
		return "", 0, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.DefaultCost)
	if err != nil {
		return "", 0, fmt.Errorf("failed to hash code: %w", err)
	}

	now := a.now()
	pending := &models.VerificationCode{
		Phone:     phone,
		CodeHash:  string(hash),
		ExpiresAt: now.Add(a.codeTTL).Unix(),
		CreatedAt: now.Unix(),
	}
	if err := a.storage.SaveVerificationCode(ctx, pending); err != nil {
		return "", 0, err
	}

	return code, pending.ExpiresAt, nil
}

// VerifyCode checks code against the pending code for phone and consumes it
// on success.
func (a *PhoneAuthenticator) VerifyCode(ctx context.Context, phone, code string) error {
	pending, err := a.storage.GetVerificationCode(ctx, phone)
	if errors.Is(err, storage.ErrNotFound) {
		return ErrInvalidCode
	}
	if err != nil {
		return err
	}

	if a.now().Unix() > pending.ExpiresAt {
		if err := a.storage.DeleteVerificationCode(ctx, phone); err != nil {
			return err
		}
		return ErrInvalidCode
	}

	if err := bcrypt.CompareHashAndPassword([]byte(pending.CodeHash), []byte(code)); err != nil {
		return ErrInvalidCode
	}

	return a.storage.DeleteVerificationCode(ctx, phone)
}

func generateCode() (string, error) {
	limit := big.NewInt(1_000_000)
	n, err := rand.Int(rand.Reader, limit)
	if err != nil {
		return "", fmt.Errorf("failed to generate code: %w", err)
	}
	return fmt.Sprintf("%0*d", CodeLength, n.Int64()), nil
}
