package apiconnect

import (
	"context"
	"net/http"

	"connectrpc.com/connect"

	"github.com/mmynk/totalmanager/pkg/api"
)

// GroupServiceName is the fully-qualified name of the GroupService.
const GroupServiceName = "totalmanager.v1.GroupService"

const (
	// GroupServiceCreateGroupProcedure is the path of GroupService.CreateGroup.
	GroupServiceCreateGroupProcedure = "/" + GroupServiceName + "/CreateGroup"

	// GroupServiceListGroupsProcedure is the path of GroupService.ListGroups.
	GroupServiceListGroupsProcedure = "/" + GroupServiceName + "/ListGroups"

	// GroupServiceGetGroupProcedure is the path of GroupService.GetGroup.
	GroupServiceGetGroupProcedure = "/" + GroupServiceName + "/GetGroup"

	// GroupServiceUpdateGroupProcedure is the path of GroupService.UpdateGroup.
	GroupServiceUpdateGroupProcedure = "/" + GroupServiceName + "/UpdateGroup"

	// GroupServiceDeleteGroupProcedure is the path of GroupService.DeleteGroup.
	GroupServiceDeleteGroupProcedure = "/" + GroupServiceName + "/DeleteGroup"
)

// GroupServiceHandler is implemented by the server side of GroupService.
type GroupServiceHandler interface {
	CreateGroup(context.Context, *connect.Request[api.CreateGroupRequest]) (*connect.Response[api.CreateGroupResponse], error)
	ListGroups(context.Context, *connect.Request[api.ListGroupsRequest]) (*connect.Response[api.ListGroupsResponse], error)
	GetGroup(context.Context, *connect.Request[api.GetGroupRequest]) (*connect.Response[api.GetGroupResponse], error)
	UpdateGroup(context.Context, *connect.Request[api.UpdateGroupRequest]) (*connect.Response[api.UpdateGroupResponse], error)
	DeleteGroup(context.Context, *connect.Request[api.DeleteGroupRequest]) (*connect.Response[api.Empty], error)
}

// NewGroupServiceHandler builds an HTTP handler serving every GroupService procedure.
// It returns the path prefix to mount the handler on.
func NewGroupServiceHandler(svc GroupServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	return "/" + GroupServiceName + "/", route{
		GroupServiceCreateGroupProcedure: connect.NewUnaryHandler(GroupServiceCreateGroupProcedure, svc.CreateGroup, opts...),
		GroupServiceListGroupsProcedure:  connect.NewUnaryHandler(GroupServiceListGroupsProcedure, svc.ListGroups, opts...),
		GroupServiceGetGroupProcedure:    connect.NewUnaryHandler(GroupServiceGetGroupProcedure, svc.GetGroup, opts...),
		GroupServiceUpdateGroupProcedure: connect.NewUnaryHandler(GroupServiceUpdateGroupProcedure, svc.UpdateGroup, opts...),
		GroupServiceDeleteGroupProcedure: connect.NewUnaryHandler(GroupServiceDeleteGroupProcedure, svc.DeleteGroup, opts...),
	}
}

// GroupServiceClient calls GroupService procedures.
type GroupServiceClient interface {
	CreateGroup(context.Context, *connect.Request[api.CreateGroupRequest]) (*connect.Response[api.CreateGroupResponse], error)
	ListGroups(context.Context, *connect.Request[api.ListGroupsRequest]) (*connect.Response[api.ListGroupsResponse], error)
	GetGroup(context.Context, *connect.Request[api.GetGroupRequest]) (*connect.Response[api.GetGroupResponse], error)
	UpdateGroup(context.Context, *connect.Request[api.UpdateGroupRequest]) (*connect.Response[api.UpdateGroupResponse], error)
	DeleteGroup(context.Context, *connect.Request[api.DeleteGroupRequest]) (*connect.Response[api.Empty], error)
}

// NewGroupServiceClient creates a client for the GroupService served at baseURL.
func NewGroupServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) GroupServiceClient {
	opts = clientOptions(opts)
	return &groupServiceClient{
		createGroup: connect.NewClient[api.CreateGroupRequest, api.CreateGroupResponse](httpClient, baseURL+GroupServiceCreateGroupProcedure, opts...),
		listGroups:  connect.NewClient[api.ListGroupsRequest, api.ListGroupsResponse](httpClient, baseURL+GroupServiceListGroupsProcedure, opts...),
		getGroup:    connect.NewClient[api.GetGroupRequest, api.GetGroupResponse](httpClient, baseURL+GroupServiceGetGroupProcedure, opts...),
		updateGroup: connect.NewClient[api.UpdateGroupRequest, api.UpdateGroupResponse](httpClient, baseURL+GroupServiceUpdateGroupProcedure, opts...),
		deleteGroup: connect.NewClient[api.DeleteGroupRequest, api.Empty](httpClient, baseURL+GroupServiceDeleteGroupProcedure, opts...),
	}
}

type groupServiceClient struct {
	createGroup *connect.Client[api.CreateGroupRequest, api.CreateGroupResponse]
	listGroups  *connect.Client[api.ListGroupsRequest, api.ListGroupsResponse]
	getGroup    *connect.Client[api.GetGroupRequest, api.GetGroupResponse]
	updateGroup *connect.Client[api.UpdateGroupRequest, api.UpdateGroupResponse]
	deleteGroup *connect.Client[api.DeleteGroupRequest, api.Empty]
}

func (c *groupServiceClient) CreateGroup(ctx context.Context, req *connect.Request[api.CreateGroupRequest]) (*connect.Response[api.CreateGroupResponse], error) {
	return c.createGroup.CallUnary(ctx, req)
}

func (c *groupServiceClient) ListGroups(ctx context.Context, req *connect.Request[api.ListGroupsRequest]) (*connect.Response[api.ListGroupsResponse], error) {
	return c.listGroups.CallUnary(ctx, req)
}

func (c *groupServiceClient) GetGroup(ctx context.Context, req *connect.Request[api.GetGroupRequest]) (*connect.Response[api.GetGroupResponse], error) {
	return c.getGroup.CallUnary(ctx, req)
}

func (c *groupServiceClient) UpdateGroup(ctx context.Context, req *connect.Request[api.UpdateGroupRequest]) (*connect.Response[api.UpdateGroupResponse], error) {
	return c.updateGroup.CallUnary(ctx, req)
}

func (c *groupServiceClient) DeleteGroup(ctx context.Context, req *connect.Request[api.DeleteGroupRequest]) (*connect.Response[api.Empty], error) {
	return c.deleteGroup.CallUnary(ctx, req)
}
