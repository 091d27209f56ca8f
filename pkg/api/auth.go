package api

// User is a registered account.
type User struct {
	ID              string `json:"id"`
	Name            string `json:"name,omitempty"`
	Phone           string `json:"phone,omitempty"`
	Email           string `json:"email,omitempty"`
	ProfileImageURL string `json:"profile_image_url,omitempty"`
	IsOnboarded     bool   `json:"is_onboarded"`
	CreatedAt       int64  `json:"created_at"`
	UpdatedAt       *int64 `json:"updated_at,omitempty"`
}

// AuthResponse is returned by every successful signup or login.
type AuthResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	User        *User  `json:"user"`
}

type SignupRequest struct {
	Name             string `json:"name" validate:"required,min=1,max=50"`
	Phone            string `json:"phone" validate:"required,digits,min=10,max=11"`
	Email            string `json:"email,omitempty" validate:"omitempty,email"`
	VerificationCode string `json:"verification_code,omitempty" validate:"omitempty,digits,len=6"`
}

type LoginPhoneRequest struct {
	Phone            string `json:"phone" validate:"required,digits,min=10,max=11"`
	VerificationCode string `json:"verification_code,omitempty" validate:"omitempty,digits,len=6"`
}

// LoginExternalRequest logs in through a third-party identity provider.
type LoginExternalRequest struct {
	ExternalToken string `json:"external_token" validate:"required"`
	ExternalID    string `json:"external_id" validate:"required"`
}

type SendVerificationCodeRequest struct {
	Phone string `json:"phone" validate:"required,digits,min=10,max=11"`
}

type SendVerificationCodeResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	ExpiresAt int64  `json:"expires_at"`
}

type GetCurrentUserRequest struct{}

type UpdateCurrentUserRequest struct {
	Name            *string `json:"name,omitempty" validate:"omitempty,min=1,max=50"`
	Email           *string `json:"email,omitempty" validate:"omitempty,email"`
	ProfileImageURL *string `json:"profile_image_url,omitempty" validate:"omitempty,url"`
	IsOnboarded     *bool   `json:"is_onboarded,omitempty"`
}
