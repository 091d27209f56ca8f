package apiconnect

import (
	"context"
	"net/http"

	"connectrpc.com/connect"

	"github.com/mmynk/totalmanager/pkg/api"
)

// AuthServiceName is the fully-qualified name of the AuthService.
const AuthServiceName = "totalmanager.v1.AuthService"

const (
	// AuthServiceSignupProcedure is the path of AuthService.Signup.
	AuthServiceSignupProcedure = "/" + AuthServiceName + "/Signup"

	// AuthServiceLoginPhoneProcedure is the path of AuthService.LoginPhone.
	AuthServiceLoginPhoneProcedure = "/" + AuthServiceName + "/LoginPhone"

	// AuthServiceLoginExternalProcedure is the path of AuthService.LoginExternal.
	AuthServiceLoginExternalProcedure = "/" + AuthServiceName + "/LoginExternal"

	// AuthServiceSendVerificationCodeProcedure is the path of AuthService.SendVerificationCode.
	AuthServiceSendVerificationCodeProcedure = "/" + AuthServiceName + "/SendVerificationCode"

	// AuthServiceGetCurrentUserProcedure is the path of AuthService.GetCurrentUser.
	AuthServiceGetCurrentUserProcedure = "/" + AuthServiceName + "/GetCurrentUser"

	// AuthServiceUpdateCurrentUserProcedure is the path of AuthService.UpdateCurrentUser.
	AuthServiceUpdateCurrentUserProcedure = "/" + AuthServiceName + "/UpdateCurrentUser"
)

// AuthServiceHandler is implemented by the server side of AuthService.
type AuthServiceHandler interface {
	Signup(context.Context, *connect.Request[api.SignupRequest]) (*connect.Response[api.AuthResponse], error)
	LoginPhone(context.Context, *connect.Request[api.LoginPhoneRequest]) (*connect.Response[api.AuthResponse], error)
	LoginExternal(context.Context, *connect.Request[api.LoginExternalRequest]) (*connect.Response[api.AuthResponse], error)
	SendVerificationCode(context.Context, *connect.Request[api.SendVerificationCodeRequest]) (*connect.Response[api.SendVerificationCodeResponse], error)
	GetCurrentUser(context.Context, *connect.Request[api.GetCurrentUserRequest]) (*connect.Response[api.User], error)
	UpdateCurrentUser(context.Context, *connect.Request[api.UpdateCurrentUserRequest]) (*connect.Response[api.User], error)
}

// NewAuthServiceHandler builds an HTTP handler serving every AuthService procedure.
// It returns the path prefix to mount the handler on.
func NewAuthServiceHandler(svc AuthServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	return "/" + AuthServiceName + "/", route{
		AuthServiceSignupProcedure:               connect.NewUnaryHandler(AuthServiceSignupProcedure, svc.Signup, opts...),
		AuthServiceLoginPhoneProcedure:           connect.NewUnaryHandler(AuthServiceLoginPhoneProcedure, svc.LoginPhone, opts...),
		AuthServiceLoginExternalProcedure:        connect.NewUnaryHandler(AuthServiceLoginExternalProcedure, svc.LoginExternal, opts...),
		AuthServiceSendVerificationCodeProcedure: connect.NewUnaryHandler(AuthServiceSendVerificationCodeProcedure, svc.SendVerificationCode, opts...),
		AuthServiceGetCurrentUserProcedure:       connect.NewUnaryHandler(AuthServiceGetCurrentUserProcedure, svc.GetCurrentUser, opts...),
		AuthServiceUpdateCurrentUserProcedure:    connect.NewUnaryHandler(AuthServiceUpdateCurrentUserProcedure, svc.UpdateCurrentUser, opts...),
	}
}

// AuthServiceClient calls AuthService procedures.
type AuthServiceClient interface {
	Signup(context.Context, *connect.Request[api.SignupRequest]) (*connect.Response[api.AuthResponse], error)
	LoginPhone(context.Context, *connect.Request[api.LoginPhoneRequest]) (*connect.Response[api.AuthResponse], error)
	LoginExternal(context.Context, *connect.Request[api.LoginExternalRequest]) (*connect.Response[api.AuthResponse], error)
	SendVerificationCode(context.Context, *connect.Request[api.SendVerificationCodeRequest]) (*connect.Response[api.SendVerificationCodeResponse], error)
	GetCurrentUser(context.Context, *connect.Request[api.GetCurrentUserRequest]) (*connect.Response[api.User], error)
	UpdateCurrentUser(context.Context, *connect.Request[api.UpdateCurrentUserRequest]) (*connect.Response[api.User], error)
}

// NewAuthServiceClient creates a client for the AuthService served at baseURL.
func NewAuthServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) AuthServiceClient {
	opts = clientOptions(opts)
	return &authServiceClient{
		signup:               connect.NewClient[api.SignupRequest, api.AuthResponse](httpClient, baseURL+AuthServiceSignupProcedure, opts...),
		loginPhone:           connect.NewClient[api.LoginPhoneRequest, api.AuthResponse](httpClient, baseURL+AuthServiceLoginPhoneProcedure, opts...),
		loginExternal:        connect.NewClient[api.LoginExternalRequest, api.AuthResponse](httpClient, baseURL+AuthServiceLoginExternalProcedure, opts...),
		sendVerificationCode: connect.NewClient[api.SendVerificationCodeRequest, api.SendVerificationCodeResponse](httpClient, baseURL+AuthServiceSendVerificationCodeProcedure, opts...),
		getCurrentUser:       connect.NewClient[api.GetCurrentUserRequest, api.User](httpClient, baseURL+AuthServiceGetCurrentUserProcedure, opts...),
		updateCurrentUser:    connect.NewClient[api.UpdateCurrentUserRequest, api.User](httpClient, baseURL+AuthServiceUpdateCurrentUserProcedure, opts...),
	}
}

type authServiceClient struct {
	signup               *connect.Client[api.SignupRequest, api.AuthResponse]
	loginPhone           *connect.Client[api.LoginPhoneRequest, api.AuthResponse]
	loginExternal        *connect.Client[api.LoginExternalRequest, api.AuthResponse]
	sendVerificationCode *connect.Client[api.SendVerificationCodeRequest, api.SendVerificationCodeResponse]
	getCurrentUser       *connect.Client[api.GetCurrentUserRequest, api.User]
	updateCurrentUser    *connect.Client[api.UpdateCurrentUserRequest, api.User]
}

func (c *authServiceClient) Signup(ctx context.Context, req *connect.Request[api.SignupRequest]) (*connect.Response[api.AuthResponse], error) {
	return c.signup.CallUnary(ctx, req)
}

func (c *authServiceClient) LoginPhone(ctx context.Context, req *connect.Request[api.LoginPhoneRequest]) (*connect.Response[api.AuthResponse], error) {
	return c.loginPhone.CallUnary(ctx, req)
}

func (c *authServiceClient) LoginExternal(ctx context.Context, req *connect.Request[api.LoginExternalRequest]) (*connect.Response[api.AuthResponse], error) {
	return c.loginExternal.CallUnary(ctx, req)
}

func (c *authServiceClient) SendVerificationCode(ctx context.Context, req *connect.Request[api.SendVerificationCodeRequest]) (*connect.Response[api.SendVerificationCodeResponse], error) {
	return c.sendVerificationCode.CallUnary(ctx, req)
}

func (c *authServiceClient) GetCurrentUser(ctx context.Context, req *connect.Request[api.GetCurrentUserRequest]) (*connect.Response[api.User], error) {
	return c.getCurrentUser.CallUnary(ctx, req)
}

func (c *authServiceClient) UpdateCurrentUser(ctx context.Context, req *connect.Request[api.UpdateCurrentUserRequest]) (*connect.Response[api.User], error) {
	return c.updateCurrentUser.CallUnary(ctx, req)
}
