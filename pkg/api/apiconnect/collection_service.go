package apiconnect

import (
	"context"
	"net/http"

	"connectrpc.com/connect"

	"github.com/mmynk/totalmanager/pkg/api"
)

// CollectionServiceName is the fully-qualified name of the CollectionService.
const CollectionServiceName = "totalmanager.v1.CollectionService"

const (
	// CollectionServiceCreateCollectionProcedure is the path of CollectionService.CreateCollection.
	CollectionServiceCreateCollectionProcedure = "/" + CollectionServiceName + "/CreateCollection"

	// CollectionServiceListCollectionsProcedure is the path of CollectionService.ListCollections.
	CollectionServiceListCollectionsProcedure = "/" + CollectionServiceName + "/ListCollections"

	// CollectionServiceGetCollectionProcedure is the path of CollectionService.GetCollection.
	CollectionServiceGetCollectionProcedure = "/" + CollectionServiceName + "/GetCollection"

	// CollectionServiceUpdateCollectionProcedure is the path of CollectionService.UpdateCollection.
	CollectionServiceUpdateCollectionProcedure = "/" + CollectionServiceName + "/UpdateCollection"

	// CollectionServiceDeleteCollectionProcedure is the path of CollectionService.DeleteCollection.
	CollectionServiceDeleteCollectionProcedure = "/" + CollectionServiceName + "/DeleteCollection"

	// CollectionServiceGetCollectionSummaryProcedure is the path of CollectionService.GetCollectionSummary.
	CollectionServiceGetCollectionSummaryProcedure = "/" + CollectionServiceName + "/GetCollectionSummary"
)

// CollectionServiceHandler is implemented by the server side of CollectionService.
type CollectionServiceHandler interface {
	CreateCollection(context.Context, *connect.Request[api.CreateCollectionRequest]) (*connect.Response[api.CreateCollectionResponse], error)
	ListCollections(context.Context, *connect.Request[api.ListCollectionsRequest]) (*connect.Response[api.ListCollectionsResponse], error)
	GetCollection(context.Context, *connect.Request[api.GetCollectionRequest]) (*connect.Response[api.GetCollectionResponse], error)
	UpdateCollection(context.Context, *connect.Request[api.UpdateCollectionRequest]) (*connect.Response[api.UpdateCollectionResponse], error)
	DeleteCollection(context.Context, *connect.Request[api.DeleteCollectionRequest]) (*connect.Response[api.Empty], error)
	GetCollectionSummary(context.Context, *connect.Request[api.GetCollectionSummaryRequest]) (*connect.Response[api.GetCollectionSummaryResponse], error)
}

// NewCollectionServiceHandler builds an HTTP handler serving every CollectionService procedure.
// It returns the path prefix to mount the handler on.
func NewCollectionServiceHandler(svc CollectionServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	return "/" + CollectionServiceName + "/", route{
		CollectionServiceCreateCollectionProcedure:     connect.NewUnaryHandler(CollectionServiceCreateCollectionProcedure, svc.CreateCollection, opts...),
		CollectionServiceListCollectionsProcedure:      connect.NewUnaryHandler(CollectionServiceListCollectionsProcedure, svc.ListCollections, opts...),
		CollectionServiceGetCollectionProcedure:        connect.NewUnaryHandler(CollectionServiceGetCollectionProcedure, svc.GetCollection, opts...),
		CollectionServiceUpdateCollectionProcedure:     connect.NewUnaryHandler(CollectionServiceUpdateCollectionProcedure, svc.UpdateCollection, opts...),
		CollectionServiceDeleteCollectionProcedure:     connect.NewUnaryHandler(CollectionServiceDeleteCollectionProcedure, svc.DeleteCollection, opts...),
		CollectionServiceGetCollectionSummaryProcedure: connect.NewUnaryHandler(CollectionServiceGetCollectionSummaryProcedure, svc.GetCollectionSummary, opts...),
	}
}

// CollectionServiceClient calls CollectionService procedures.
type CollectionServiceClient interface {
	CreateCollection(context.Context, *connect.Request[api.CreateCollectionRequest]) (*connect.Response[api.CreateCollectionResponse], error)
	ListCollections(context.Context, *connect.Request[api.ListCollectionsRequest]) (*connect.Response[api.ListCollectionsResponse], error)
	GetCollection(context.Context, *connect.Request[api.GetCollectionRequest]) (*connect.Response[api.GetCollectionResponse], error)
	UpdateCollection(context.Context, *connect.Request[api.UpdateCollectionRequest]) (*connect.Response[api.UpdateCollectionResponse], error)
	DeleteCollection(context.Context, *connect.Request[api.DeleteCollectionRequest]) (*connect.Response[api.Empty], error)
	GetCollectionSummary(context.Context, *connect.Request[api.GetCollectionSummaryRequest]) (*connect.Response[api.GetCollectionSummaryResponse], error)
}

// NewCollectionServiceClient creates a client for the CollectionService served at baseURL.
func NewCollectionServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) CollectionServiceClient {
	opts = clientOptions(opts)
	return &collectionServiceClient{
		createCollection:     connect.NewClient[api.CreateCollectionRequest, api.CreateCollectionResponse](httpClient, baseURL+CollectionServiceCreateCollectionProcedure, opts...),
		listCollections:      connect.NewClient[api.ListCollectionsRequest, api.ListCollectionsResponse](httpClient, baseURL+CollectionServiceListCollectionsProcedure, opts...),
		getCollection:        connect.NewClient[api.GetCollectionRequest, api.GetCollectionResponse](httpClient, baseURL+CollectionServiceGetCollectionProcedure, opts...),
		updateCollection:     connect.NewClient[api.UpdateCollectionRequest, api.UpdateCollectionResponse](httpClient, baseURL+CollectionServiceUpdateCollectionProcedure, opts...),
		deleteCollection:     connect.NewClient[api.DeleteCollectionRequest, api.Empty](httpClient, baseURL+CollectionServiceDeleteCollectionProcedure, opts...),
		getCollectionSummary: connect.NewClient[api.GetCollectionSummaryRequest, api.GetCollectionSummaryResponse](httpClient, baseURL+CollectionServiceGetCollectionSummaryProcedure, opts...),
	}
}

type collectionServiceClient struct {
	createCollection     *connect.Client[api.CreateCollectionRequest, api.CreateCollectionResponse]
	listCollections      *connect.Client[api.ListCollectionsRequest, api.ListCollectionsResponse]
	getCollection        *connect.Client[api.GetCollectionRequest, api.GetCollectionResponse]
	updateCollection     *connect.Client[api.UpdateCollectionRequest, api.UpdateCollectionResponse]
	deleteCollection     *connect.Client[api.DeleteCollectionRequest, api.Empty]
	getCollectionSummary *connect.Client[api.GetCollectionSummaryRequest, api.GetCollectionSummaryResponse]
}

func (c *collectionServiceClient) CreateCollection(ctx context.Context, req *connect.Request[api.CreateCollectionRequest]) (*connect.Response[api.CreateCollectionResponse], error) {
	return c.createCollection.CallUnary(ctx, req)
}

func (c *collectionServiceClient) ListCollections(ctx context.Context, req *connect.Request[api.ListCollectionsRequest]) (*connect.Response[api.ListCollectionsResponse], error) {
	return c.listCollections.CallUnary(ctx, req)
}

func (c *collectionServiceClient) GetCollection(ctx context.Context, req *connect.Request[api.GetCollectionRequest]) (*connect.Response[api.GetCollectionResponse], error) {
	return c.getCollection.CallUnary(ctx, req)
}

func (c *collectionServiceClient) UpdateCollection(ctx context.Context, req *connect.Request[api.UpdateCollectionRequest]) (*connect.Response[api.UpdateCollectionResponse], error) {
	return c.updateCollection.CallUnary(ctx, req)
}

func (c *collectionServiceClient) DeleteCollection(ctx context.Context, req *connect.Request[api.DeleteCollectionRequest]) (*connect.Response[api.Empty], error) {
	return c.deleteCollection.CallUnary(ctx, req)
}

func (c *collectionServiceClient) GetCollectionSummary(ctx context.Context, req *connect.Request[api.GetCollectionSummaryRequest]) (*connect.Response[api.GetCollectionSummaryResponse], error) {
	return c.getCollectionSummary.CallUnary(ctx, req)
}
