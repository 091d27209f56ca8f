package apiconnect

import (
	"context"
	"net/http"

	"connectrpc.com/connect"

	"github.com/mmynk/totalmanager/pkg/api"
)

// SettingsServiceName is the fully-qualified name of the SettingsService.
const SettingsServiceName = "totalmanager.v1.SettingsService"

const (
	// SettingsServiceGetNotificationSettingsProcedure is the path of SettingsService.GetNotificationSettings.
	SettingsServiceGetNotificationSettingsProcedure = "/" + SettingsServiceName + "/GetNotificationSettings"

	// SettingsServiceUpdateNotificationSettingsProcedure is the path of SettingsService.UpdateNotificationSettings.
	SettingsServiceUpdateNotificationSettingsProcedure = "/" + SettingsServiceName + "/UpdateNotificationSettings"

	// SettingsServiceListPaymentMethodsProcedure is the path of SettingsService.ListPaymentMethods.
	SettingsServiceListPaymentMethodsProcedure = "/" + SettingsServiceName + "/ListPaymentMethods"

	// SettingsServiceCreatePaymentMethodProcedure is the path of SettingsService.CreatePaymentMethod.
	SettingsServiceCreatePaymentMethodProcedure = "/" + SettingsServiceName + "/CreatePaymentMethod"

	// SettingsServiceGetPaymentMethodProcedure is the path of SettingsService.GetPaymentMethod.
	SettingsServiceGetPaymentMethodProcedure = "/" + SettingsServiceName + "/GetPaymentMethod"

	// SettingsServiceUpdatePaymentMethodProcedure is the path of SettingsService.UpdatePaymentMethod.
	SettingsServiceUpdatePaymentMethodProcedure = "/" + SettingsServiceName + "/UpdatePaymentMethod"

	// SettingsServiceDeletePaymentMethodProcedure is the path of SettingsService.DeletePaymentMethod.
	SettingsServiceDeletePaymentMethodProcedure = "/" + SettingsServiceName + "/DeletePaymentMethod"

	// SettingsServiceSetDefaultPaymentMethodProcedure is the path of SettingsService.SetDefaultPaymentMethod.
	SettingsServiceSetDefaultPaymentMethodProcedure = "/" + SettingsServiceName + "/SetDefaultPaymentMethod"
)

// SettingsServiceHandler is implemented by the server side of SettingsService.
type SettingsServiceHandler interface {
	GetNotificationSettings(context.Context, *connect.Request[api.GetNotificationSettingsRequest]) (*connect.Response[api.GetNotificationSettingsResponse], error)
	UpdateNotificationSettings(context.Context, *connect.Request[api.UpdateNotificationSettingsRequest]) (*connect.Response[api.UpdateNotificationSettingsResponse], error)
	ListPaymentMethods(context.Context, *connect.Request[api.ListPaymentMethodsRequest]) (*connect.Response[api.ListPaymentMethodsResponse], error)
	CreatePaymentMethod(context.Context, *connect.Request[api.CreatePaymentMethodRequest]) (*connect.Response[api.CreatePaymentMethodResponse], error)
	GetPaymentMethod(context.Context, *connect.Request[api.GetPaymentMethodRequest]) (*connect.Response[api.GetPaymentMethodResponse], error)
	UpdatePaymentMethod(context.Context, *connect.Request[api.UpdatePaymentMethodRequest]) (*connect.Response[api.UpdatePaymentMethodResponse], error)
	DeletePaymentMethod(context.Context, *connect.Request[api.DeletePaymentMethodRequest]) (*connect.Response[api.Empty], error)
	SetDefaultPaymentMethod(context.Context, *connect.Request[api.SetDefaultPaymentMethodRequest]) (*connect.Response[api.SetDefaultPaymentMethodResponse], error)
}

// NewSettingsServiceHandler builds an HTTP handler serving every SettingsService procedure.
// It returns the path prefix to mount the handler on.
func NewSettingsServiceHandler(svc SettingsServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	return "/" + SettingsServiceName + "/", route{
		SettingsServiceGetNotificationSettingsProcedure:    connect.NewUnaryHandler(SettingsServiceGetNotificationSettingsProcedure, svc.GetNotificationSettings, opts...),
		SettingsServiceUpdateNotificationSettingsProcedure: connect.NewUnaryHandler(SettingsServiceUpdateNotificationSettingsProcedure, svc.UpdateNotificationSettings, opts...),
		SettingsServiceListPaymentMethodsProcedure:         connect.NewUnaryHandler(SettingsServiceListPaymentMethodsProcedure, svc.ListPaymentMethods, opts...),
		SettingsServiceCreatePaymentMethodProcedure:        connect.NewUnaryHandler(SettingsServiceCreatePaymentMethodProcedure, svc.CreatePaymentMethod, opts...),
		SettingsServiceGetPaymentMethodProcedure:           connect.NewUnaryHandler(SettingsServiceGetPaymentMethodProcedure, svc.GetPaymentMethod, opts...),
		SettingsServiceUpdatePaymentMethodProcedure:        connect.NewUnaryHandler(SettingsServiceUpdatePaymentMethodProcedure, svc.UpdatePaymentMethod, opts...),
		SettingsServiceDeletePaymentMethodProcedure:        connect.NewUnaryHandler(SettingsServiceDeletePaymentMethodProcedure, svc.DeletePaymentMethod, opts...),
		SettingsServiceSetDefaultPaymentMethodProcedure:    connect.NewUnaryHandler(SettingsServiceSetDefaultPaymentMethodProcedure, svc.SetDefaultPaymentMethod, opts...),
	}
}

// SettingsServiceClient calls SettingsService procedures.
type SettingsServiceClient interface {
	GetNotificationSettings(context.Context, *connect.Request[api.GetNotificationSettingsRequest]) (*connect.Response[api.GetNotificationSettingsResponse], error)
	UpdateNotificationSettings(context.Context, *connect.Request[api.UpdateNotificationSettingsRequest]) (*connect.Response[api.UpdateNotificationSettingsResponse], error)
	ListPaymentMethods(context.Context, *connect.Request[api.ListPaymentMethodsRequest]) (*connect.Response[api.ListPaymentMethodsResponse], error)
	CreatePaymentMethod(context.Context, *connect.Request[api.CreatePaymentMethodRequest]) (*connect.Response[api.CreatePaymentMethodResponse], error)
	GetPaymentMethod(context.Context, *connect.Request[api.GetPaymentMethodRequest]) (*connect.Response[api.GetPaymentMethodResponse], error)
	UpdatePaymentMethod(context.Context, *connect.Request[api.UpdatePaymentMethodRequest]) (*connect.Response[api.UpdatePaymentMethodResponse], error)
	DeletePaymentMethod(context.Context, *connect.Request[api.DeletePaymentMethodRequest]) (*connect.Response[api.Empty], error)
	SetDefaultPaymentMethod(context.Context, *connect.Request[api.SetDefaultPaymentMethodRequest]) (*connect.Response[api.SetDefaultPaymentMethodResponse], error)
}

// NewSettingsServiceClient creates a client for the SettingsService served at baseURL.
func NewSettingsServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) SettingsServiceClient {
	opts = clientOptions(opts)
	return &settingsServiceClient{
		getNotificationSettings:    connect.NewClient[api.GetNotificationSettingsRequest, api.GetNotificationSettingsResponse](httpClient, baseURL+SettingsServiceGetNotificationSettingsProcedure, opts...),
		updateNotificationSettings: connect.NewClient[api.UpdateNotificationSettingsRequest, api.UpdateNotificationSettingsResponse](httpClient, baseURL+SettingsServiceUpdateNotificationSettingsProcedure, opts...),
		listPaymentMethods:         connect.NewClient[api.ListPaymentMethodsRequest, api.ListPaymentMethodsResponse](httpClient, baseURL+SettingsServiceListPaymentMethodsProcedure, opts...),
		createPaymentMethod:        connect.NewClient[api.CreatePaymentMethodRequest, api.CreatePaymentMethodResponse](httpClient, baseURL+SettingsServiceCreatePaymentMethodProcedure, opts...),
		getPaymentMethod:           connect.NewClient[api.GetPaymentMethodRequest, api.GetPaymentMethodResponse](httpClient, baseURL+SettingsServiceGetPaymentMethodProcedure, opts...),
		updatePaymentMethod:        connect.NewClient[api.UpdatePaymentMethodRequest, api.UpdatePaymentMethodResponse](httpClient, baseURL+SettingsServiceUpdatePaymentMethodProcedure, opts...),
		deletePaymentMethod:        connect.NewClient[api.DeletePaymentMethodRequest, api.Empty](httpClient, baseURL+SettingsServiceDeletePaymentMethodProcedure, opts...),
		setDefaultPaymentMethod:    connect.NewClient[api.SetDefaultPaymentMethodRequest, api.SetDefaultPaymentMethodResponse](httpClient, baseURL+SettingsServiceSetDefaultPaymentMethodProcedure, opts...),
	}
}

type settingsServiceClient struct {
	getNotificationSettings    *connect.Client[api.GetNotificationSettingsRequest, api.GetNotificationSettingsResponse]
	updateNotificationSettings *connect.Client[api.UpdateNotificationSettingsRequest, api.UpdateNotificationSettingsResponse]
	listPaymentMethods         *connect.Client[api.ListPaymentMethodsRequest, api.ListPaymentMethodsResponse]
	createPaymentMethod        *connect.Client[api.CreatePaymentMethodRequest, api.CreatePaymentMethodResponse]
	getPaymentMethod           *connect.Client[api.GetPaymentMethodRequest, api.GetPaymentMethodResponse]
	updatePaymentMethod        *connect.Client[api.UpdatePaymentMethodRequest, api.UpdatePaymentMethodResponse]
	deletePaymentMethod        *connect.Client[api.DeletePaymentMethodRequest, api.Empty]
	setDefaultPaymentMethod    *connect.Client[api.SetDefaultPaymentMethodRequest, api.SetDefaultPaymentMethodResponse]
}

func (c *settingsServiceClient) GetNotificationSettings(ctx context.Context, req *connect.Request[api.GetNotificationSettingsRequest]) (*connect.Response[api.GetNotificationSettingsResponse], error) {
	return c.getNotificationSettings.CallUnary(ctx, req)
}

func (c *settingsServiceClient) UpdateNotificationSettings(ctx context.Context, req *connect.Request[api.UpdateNotificationSettingsRequest]) (*connect.Response[api.UpdateNotificationSettingsResponse], error) {
	return c.updateNotificationSettings.CallUnary(ctx, req)
}

func (c *settingsServiceClient) ListPaymentMethods(ctx context.Context, req *connect.Request[api.ListPaymentMethodsRequest]) (*connect.Response[api.ListPaymentMethodsResponse], error) {
	return c.listPaymentMethods.CallUnary(ctx, req)
}

func (c *settingsServiceClient) CreatePaymentMethod(ctx context.Context, req *connect.Request[api.CreatePaymentMethodRequest]) (*connect.Response[api.CreatePaymentMethodResponse], error) {
	return c.createPaymentMethod.CallUnary(ctx, req)
}

func (c *settingsServiceClient) GetPaymentMethod(ctx context.Context, req *connect.Request[api.GetPaymentMethodRequest]) (*connect.Response[api.GetPaymentMethodResponse], error) {
	return c.getPaymentMethod.CallUnary(ctx, req)
}

func (c *settingsServiceClient) UpdatePaymentMethod(ctx context.Context, req *connect.Request[api.UpdatePaymentMethodRequest]) (*connect.Response[api.UpdatePaymentMethodResponse], error) {
	return c.updatePaymentMethod.CallUnary(ctx, req)
}

func (c *settingsServiceClient) DeletePaymentMethod(ctx context.Context, req *connect.Request[api.DeletePaymentMethodRequest]) (*connect.Response[api.Empty], error) {
	return c.deletePaymentMethod.CallUnary(ctx, req)
}

func (c *settingsServiceClient) SetDefaultPaymentMethod(ctx context.Context, req *connect.Request[api.SetDefaultPaymentMethodRequest]) (*connect.Response[api.SetDefaultPaymentMethodResponse], error) {
	return c.setDefaultPaymentMethod.CallUnary(ctx, req)
}
