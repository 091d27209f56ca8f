package service

import (
	"context"
	"errors"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/totalmanager/internal/auth"
	"github.com/mmynk/totalmanager/internal/models"
	"github.com/mmynk/totalmanager/internal/notify"
	"github.com/mmynk/totalmanager/internal/storage"
	"github.com/mmynk/totalmanager/pkg/api"
	"github.com/mmynk/totalmanager/pkg/api/apiconnect"
)

// TokenType is the token_type of every issued access token.
const TokenType = "bearer"

var _ apiconnect.AuthServiceHandler = (*AuthService)(nil)

// AuthService implements the AuthService RPC interface.
type AuthService struct {
	authenticator auth.Authenticator
	codes         auth.CodeSender
	jwtManager    *auth.JWTManager
	users         storage.UserStore
	notifier      notify.Notifier
	logger        *slog.Logger
}

// NewAuthService creates a new authentication service. Verification codes
// issued by codes are delivered through the notifier given with
// WithNotifier.
func NewAuthService(authenticator auth.Authenticator, codes auth.CodeSender, jwtManager *auth.JWTManager, users storage.UserStore, opts ...Option) *AuthService {
	d := newDeps(nil, opts)
	return &AuthService{
		authenticator: authenticator,
		codes:         codes,
		jwtManager:    jwtManager,
		users:         users,
		notifier:      d.notifier,
		logger:        d.logger,
	}
}

// Signup creates a new user account and logs it in.
func (s *AuthService) Signup(ctx context.Context, req *connect.Request[api.SignupRequest]) (*connect.Response[api.AuthResponse], error) {
	s.logger.Info("Signup request", "phone", req.Msg.Phone)

	if err := validateStruct(req.Msg); err != nil {
		return nil, fail("Signup", err)
	}

	user, err := s.authenticator.Register(ctx, req.Msg.Phone, req.Msg.Name, req.Msg.Email, req.Msg.VerificationCode)
	if err != nil {
		return nil, fail("Signup", err, "phone", req.Msg.Phone)
	}

	resp, err := s.issue(user)
	if err != nil {
		return nil, err
	}

	s.logger.Info("User registered successfully", "user_id", user.ID)
	return connect.NewResponse(resp), nil
}

// LoginPhone logs in the user registered for a phone number.
func (s *AuthService) LoginPhone(ctx context.Context, req *connect.Request[api.LoginPhoneRequest]) (*connect.Response[api.AuthResponse], error) {
	s.logger.Info("Login request", "phone", req.Msg.Phone)

	if err := validateStruct(req.Msg); err != nil {
		return nil, fail("LoginPhone", err)
	}

	user, err := s.authenticator.Authenticate(ctx, req.Msg.Phone, req.Msg.VerificationCode)
	if err != nil {
		return nil, fail("LoginPhone", err, "phone", req.Msg.Phone)
	}

	resp, err := s.issue(user)
	if err != nil {
		return nil, err
	}

	s.logger.Info("User logged in successfully", "user_id", user.ID)
	return connect.NewResponse(resp), nil
}

// LoginExternal is reserved for a third-party identity provider, which is
// not configured.
func (s *AuthService) LoginExternal(ctx context.Context, req *connect.Request[api.LoginExternalRequest]) (*connect.Response[api.AuthResponse], error) {
	s.logger.Info("LoginExternal request", "external_id", req.Msg.ExternalID)
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("external login is not configured"))
}

// SendVerificationCode issues a one-time code for a phone number.
func (s *AuthService) SendVerificationCode(ctx context.Context, req *connect.Request[api.SendVerificationCodeRequest]) (*connect.Response[api.SendVerificationCodeResponse], error) {
	s.logger.Info("SendVerificationCode request", "phone", req.Msg.Phone)

	if err := validateStruct(req.Msg); err != nil {
		return nil, fail("SendVerificationCode", err)
	}

	code, expiresAt, err := s.codes.SendCode(ctx, req.Msg.Phone)
	if err != nil {
		return nil, fail("SendVerificationCode", err, "phone", req.Msg.Phone)
	}

	if err := s.notifier.Notify(ctx, notify.Message{
		Kind: "verification_code",
		To:   req.Msg.Phone,
		Body: "Your Total Manager verification code is " + code,
	}); err != nil {
		s.logger.Warn("Verification code delivery failed", "phone", req.Msg.Phone, "error", err)
	}

	return connect.NewResponse(&api.SendVerificationCodeResponse{
		Success:   true,
		Message:   "Verification code sent",
		ExpiresAt: expiresAt,
	}), nil
}

// GetCurrentUser returns the currently authenticated user's profile.
func (s *AuthService) GetCurrentUser(ctx context.Context, req *connect.Request[api.GetCurrentUserRequest]) (*connect.Response[api.User], error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	s.logger.Info("GetCurrentUser request", "user_id", userID)

	user, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		return nil, fail("GetCurrentUser", err, "user_id", userID)
	}
	return connect.NewResponse(toAPIUser(user)), nil
}

// UpdateCurrentUser changes the supplied profile fields.
func (s *AuthService) UpdateCurrentUser(ctx context.Context, req *connect.Request[api.UpdateCurrentUserRequest]) (*connect.Response[api.User], error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	s.logger.Info("UpdateCurrentUser request", "user_id", userID)

	if err := validateStruct(req.Msg); err != nil {
		return nil, fail("UpdateCurrentUser", err)
	}

	user, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		return nil, fail("UpdateCurrentUser", err, "user_id", userID)
	}

	if v := req.Msg.Name; v != nil {
		user.Name = *v
	}
	if v := req.Msg.Email; v != nil {
		user.Email = *v
	}
	if v := req.Msg.ProfileImageURL; v != nil {
		user.ProfileImageURL = *v
	}
	if v := req.Msg.IsOnboarded; v != nil {
		user.IsOnboarded = *v
	}

	if err := s.users.UpdateUser(ctx, user); err != nil {
		return nil, fail("UpdateCurrentUser", err, "user_id", userID)
	}
	return connect.NewResponse(toAPIUser(user)), nil
}

func (s *AuthService) issue(user *models.User) (*api.AuthResponse, error) {
	token, err := s.jwtManager.Generate(user)
	if err != nil {
		s.logger.Error("Failed to generate token", "user_id", user.ID, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}
	return &api.AuthResponse{
		AccessToken: token,
		TokenType:   TokenType,
		User:        toAPIUser(user),
	}, nil
}
