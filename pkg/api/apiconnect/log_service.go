package apiconnect

import (
	"context"
	"net/http"

	"connectrpc.com/connect"

	"github.com/mmynk/totalmanager/pkg/api"
)

// LogServiceName is the fully-qualified name of the LogService.
const LogServiceName = "totalmanager.v1.LogService"

const (
	// LogServiceListCollectionLogsProcedure is the path of LogService.ListCollectionLogs.
	LogServiceListCollectionLogsProcedure = "/" + LogServiceName + "/ListCollectionLogs"

	// LogServiceListLogsProcedure is the path of LogService.ListLogs.
	LogServiceListLogsProcedure = "/" + LogServiceName + "/ListLogs"

	// LogServiceGetLogStatsProcedure is the path of LogService.GetLogStats.
	LogServiceGetLogStatsProcedure = "/" + LogServiceName + "/GetLogStats"
)

// LogServiceHandler is implemented by the server side of LogService.
type LogServiceHandler interface {
	ListCollectionLogs(context.Context, *connect.Request[api.ListCollectionLogsRequest]) (*connect.Response[api.ListCollectionLogsResponse], error)
	ListLogs(context.Context, *connect.Request[api.ListLogsRequest]) (*connect.Response[api.ListLogsResponse], error)
	GetLogStats(context.Context, *connect.Request[api.GetLogStatsRequest]) (*connect.Response[api.GetLogStatsResponse], error)
}

// NewLogServiceHandler builds an HTTP handler serving every LogService procedure.
// It returns the path prefix to mount the handler on.
func NewLogServiceHandler(svc LogServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	return "/" + LogServiceName + "/", route{
		LogServiceListCollectionLogsProcedure: connect.NewUnaryHandler(LogServiceListCollectionLogsProcedure, svc.ListCollectionLogs, opts...),
		LogServiceListLogsProcedure:           connect.NewUnaryHandler(LogServiceListLogsProcedure, svc.ListLogs, opts...),
		LogServiceGetLogStatsProcedure:        connect.NewUnaryHandler(LogServiceGetLogStatsProcedure, svc.GetLogStats, opts...),
	}
}

// LogServiceClient calls LogService procedures.
type LogServiceClient interface {
	ListCollectionLogs(context.Context, *connect.Request[api.ListCollectionLogsRequest]) (*connect.Response[api.ListCollectionLogsResponse], error)
	ListLogs(context.Context, *connect.Request[api.ListLogsRequest]) (*connect.Response[api.ListLogsResponse], error)
	GetLogStats(context.Context, *connect.Request[api.GetLogStatsRequest]) (*connect.Response[api.GetLogStatsResponse], error)
}

// NewLogServiceClient creates a client for the LogService served at baseURL.
func NewLogServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) LogServiceClient {
	opts = clientOptions(opts)
	return &logServiceClient{
		listCollectionLogs: connect.NewClient[api.ListCollectionLogsRequest, api.ListCollectionLogsResponse](httpClient, baseURL+LogServiceListCollectionLogsProcedure, opts...),
		listLogs:           connect.NewClient[api.ListLogsRequest, api.ListLogsResponse](httpClient, baseURL+LogServiceListLogsProcedure, opts...),
		getLogStats:        connect.NewClient[api.GetLogStatsRequest, api.GetLogStatsResponse](httpClient, baseURL+LogServiceGetLogStatsProcedure, opts...),
	}
}

type logServiceClient struct {
	listCollectionLogs *connect.Client[api.ListCollectionLogsRequest, api.ListCollectionLogsResponse]
	listLogs           *connect.Client[api.ListLogsRequest, api.ListLogsResponse]
	getLogStats        *connect.Client[api.GetLogStatsRequest, api.GetLogStatsResponse]
}

func (c *logServiceClient) ListCollectionLogs(ctx context.Context, req *connect.Request[api.ListCollectionLogsRequest]) (*connect.Response[api.ListCollectionLogsResponse], error) {
	return c.listCollectionLogs.CallUnary(ctx, req)
}

func (c *logServiceClient) ListLogs(ctx context.Context, req *connect.Request[api.ListLogsRequest]) (*connect.Response[api.ListLogsResponse], error) {
	return c.listLogs.CallUnary(ctx, req)
}

func (c *logServiceClient) GetLogStats(ctx context.Context, req *connect.Request[api.GetLogStatsRequest]) (*connect.Response[api.GetLogStatsResponse], error) {
	return c.getLogStats.CallUnary(ctx, req)
}
