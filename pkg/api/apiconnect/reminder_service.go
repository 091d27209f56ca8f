package apiconnect

import (
	"context"
	"net/http"

	"connectrpc.com/connect"

	"github.com/mmynk/totalmanager/pkg/api"
)

// ReminderServiceName is the fully-qualified name of the ReminderService.
const ReminderServiceName = "totalmanager.v1.ReminderService"

const (
	// ReminderServiceCreateReminderProcedure is the path of ReminderService.CreateReminder.
	ReminderServiceCreateReminderProcedure = "/" + ReminderServiceName + "/CreateReminder"

	// ReminderServiceListRemindersProcedure is the path of ReminderService.ListReminders.
	ReminderServiceListRemindersProcedure = "/" + ReminderServiceName + "/ListReminders"

	// ReminderServiceGetReminderProcedure is the path of ReminderService.GetReminder.
	ReminderServiceGetReminderProcedure = "/" + ReminderServiceName + "/GetReminder"

	// ReminderServiceUpdateReminderProcedure is the path of ReminderService.UpdateReminder.
	ReminderServiceUpdateReminderProcedure = "/" + ReminderServiceName + "/UpdateReminder"

	// ReminderServiceDeleteReminderProcedure is the path of ReminderService.DeleteReminder.
	ReminderServiceDeleteReminderProcedure = "/" + ReminderServiceName + "/DeleteReminder"

	// ReminderServiceSendReminderProcedure is the path of ReminderService.SendReminder.
	ReminderServiceSendReminderProcedure = "/" + ReminderServiceName + "/SendReminder"
)

// ReminderServiceHandler is implemented by the server side of ReminderService.
type ReminderServiceHandler interface {
	CreateReminder(context.Context, *connect.Request[api.CreateReminderRequest]) (*connect.Response[api.CreateReminderResponse], error)
	ListReminders(context.Context, *connect.Request[api.ListRemindersRequest]) (*connect.Response[api.ListRemindersResponse], error)
	GetReminder(context.Context, *connect.Request[api.GetReminderRequest]) (*connect.Response[api.GetReminderResponse], error)
	UpdateReminder(context.Context, *connect.Request[api.UpdateReminderRequest]) (*connect.Response[api.UpdateReminderResponse], error)
	DeleteReminder(context.Context, *connect.Request[api.DeleteReminderRequest]) (*connect.Response[api.Empty], error)
	SendReminder(context.Context, *connect.Request[api.SendReminderRequest]) (*connect.Response[api.SendReminderResponse], error)
}

// NewReminderServiceHandler builds an HTTP handler serving every ReminderService procedure.
// It returns the path prefix to mount the handler on.
func NewReminderServiceHandler(svc ReminderServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	return "/" + ReminderServiceName + "/", route{
		ReminderServiceCreateReminderProcedure: connect.NewUnaryHandler(ReminderServiceCreateReminderProcedure, svc.CreateReminder, opts...),
		ReminderServiceListRemindersProcedure:  connect.NewUnaryHandler(ReminderServiceListRemindersProcedure, svc.ListReminders, opts...),
		ReminderServiceGetReminderProcedure:    connect.NewUnaryHandler(ReminderServiceGetReminderProcedure, svc.GetReminder, opts...),
		ReminderServiceUpdateReminderProcedure: connect.NewUnaryHandler(ReminderServiceUpdateReminderProcedure, svc.UpdateReminder, opts...),
		ReminderServiceDeleteReminderProcedure: connect.NewUnaryHandler(ReminderServiceDeleteReminderProcedure, svc.DeleteReminder, opts...),
		ReminderServiceSendReminderProcedure:   connect.NewUnaryHandler(ReminderServiceSendReminderProcedure, svc.SendReminder, opts...),
	}
}

// ReminderServiceClient calls ReminderService procedures.
type ReminderServiceClient interface {
	CreateReminder(context.Context, *connect.Request[api.CreateReminderRequest]) (*connect.Response[api.CreateReminderResponse], error)
	ListReminders(context.Context, *connect.Request[api.ListRemindersRequest]) (*connect.Response[api.ListRemindersResponse], error)
	GetReminder(context.Context, *connect.Request[api.GetReminderRequest]) (*connect.Response[api.GetReminderResponse], error)
	UpdateReminder(context.Context, *connect.Request[api.UpdateReminderRequest]) (*connect.Response[api.UpdateReminderResponse], error)
	DeleteReminder(context.Context, *connect.Request[api.DeleteReminderRequest]) (*connect.Response[api.Empty], error)
	SendReminder(context.Context, *connect.Request[api.SendReminderRequest]) (*connect.Response[api.SendReminderResponse], error)
}

// NewReminderServiceClient creates a client for the ReminderService served at baseURL.
func NewReminderServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) ReminderServiceClient {
	opts = clientOptions(opts)
	return &reminderServiceClient{
		createReminder: connect.NewClient[api.CreateReminderRequest, api.CreateReminderResponse](httpClient, baseURL+ReminderServiceCreateReminderProcedure, opts...),
		listReminders:  connect.NewClient[api.ListRemindersRequest, api.ListRemindersResponse](httpClient, baseURL+ReminderServiceListRemindersProcedure, opts...),
		getReminder:    connect.NewClient[api.GetReminderRequest, api.GetReminderResponse](httpClient, baseURL+ReminderServiceGetReminderProcedure, opts...),
		updateReminder: connect.NewClient[api.UpdateReminderRequest, api.UpdateReminderResponse](httpClient, baseURL+ReminderServiceUpdateReminderProcedure, opts...),
		deleteReminder: connect.NewClient[api.DeleteReminderRequest, api.Empty](httpClient, baseURL+ReminderServiceDeleteReminderProcedure, opts...),
		sendReminder:   connect.NewClient[api.SendReminderRequest, api.SendReminderResponse](httpClient, baseURL+ReminderServiceSendReminderProcedure, opts...),
	}
}

type reminderServiceClient struct {
	createReminder *connect.Client[api.CreateReminderRequest, api.CreateReminderResponse]
	listReminders  *connect.Client[api.ListRemindersRequest, api.ListRemindersResponse]
	getReminder    *connect.Client[api.GetReminderRequest, api.GetReminderResponse]
	updateReminder *connect.Client[api.UpdateReminderRequest, api.UpdateReminderResponse]
	deleteReminder *connect.Client[api.DeleteReminderRequest, api.Empty]
	sendReminder   *connect.Client[api.SendReminderRequest, api.SendReminderResponse]
}

func (c *reminderServiceClient) CreateReminder(ctx context.Context, req *connect.Request[api.CreateReminderRequest]) (*connect.Response[api.CreateReminderResponse], error) {
	return c.createReminder.CallUnary(ctx, req)
}

func (c *reminderServiceClient) ListReminders(ctx context.Context, req *connect.Request[api.ListRemindersRequest]) (*connect.Response[api.ListRemindersResponse], error) {
	return c.listReminders.CallUnary(ctx, req)
}

func (c *reminderServiceClient) GetReminder(ctx context.Context, req *connect.Request[api.GetReminderRequest]) (*connect.Response[api.GetReminderResponse], error) {
	return c.getReminder.CallUnary(ctx, req)
}

func (c *reminderServiceClient) UpdateReminder(ctx context.Context, req *connect.Request[api.UpdateReminderRequest]) (*connect.Response[api.UpdateReminderResponse], error) {
	return c.updateReminder.CallUnary(ctx, req)
}

func (c *reminderServiceClient) DeleteReminder(ctx context.Context, req *connect.Request[api.DeleteReminderRequest]) (*connect.Response[api.Empty], error) {
	return c.deleteReminder.CallUnary(ctx, req)
}

func (c *reminderServiceClient) SendReminder(ctx context.Context, req *connect.Request[api.SendReminderRequest]) (*connect.Response[api.SendReminderResponse], error) {
	return c.sendReminder.CallUnary(ctx, req)
}
