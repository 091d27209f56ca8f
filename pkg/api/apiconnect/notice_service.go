package apiconnect

import (
	"context"
	"net/http"

	"connectrpc.com/connect"

	"github.com/mmynk/totalmanager/pkg/api"
)

// NoticeServiceName is the fully-qualified name of the NoticeService.
const NoticeServiceName = "totalmanager.v1.NoticeService"

const (
	// NoticeServiceSendNoticeProcedure is the path of NoticeService.SendNotice.
	NoticeServiceSendNoticeProcedure = "/" + NoticeServiceName + "/SendNotice"
)

// NoticeServiceHandler is implemented by the server side of NoticeService.
type NoticeServiceHandler interface {
	SendNotice(context.Context, *connect.Request[api.SendNoticeRequest]) (*connect.Response[api.SendNoticeResponse], error)
}

// NewNoticeServiceHandler builds an HTTP handler serving every NoticeService procedure.
// It returns the path prefix to mount the handler on.
func NewNoticeServiceHandler(svc NoticeServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	return "/" + NoticeServiceName + "/", route{
		NoticeServiceSendNoticeProcedure: connect.NewUnaryHandler(NoticeServiceSendNoticeProcedure, svc.SendNotice, opts...),
	}
}

// NoticeServiceClient calls NoticeService procedures.
type NoticeServiceClient interface {
	SendNotice(context.Context, *connect.Request[api.SendNoticeRequest]) (*connect.Response[api.SendNoticeResponse], error)
}

// NewNoticeServiceClient creates a client for the NoticeService served at baseURL.
func NewNoticeServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) NoticeServiceClient {
	opts = clientOptions(opts)
	return &noticeServiceClient{
		sendNotice: connect.NewClient[api.SendNoticeRequest, api.SendNoticeResponse](httpClient, baseURL+NoticeServiceSendNoticeProcedure, opts...),
	}
}

type noticeServiceClient struct {
	sendNotice *connect.Client[api.SendNoticeRequest, api.SendNoticeResponse]
}

func (c *noticeServiceClient) SendNotice(ctx context.Context, req *connect.Request[api.SendNoticeRequest]) (*connect.Response[api.SendNoticeResponse], error) {
	return c.sendNotice.CallUnary(ctx, req)
}
