package apiconnect

import (
	"context"
	"net/http"

	"connectrpc.com/connect"

	"github.com/mmynk/totalmanager/pkg/api"
)

// MemberServiceName is the fully-qualified name of the MemberService.
const MemberServiceName = "totalmanager.v1.MemberService"

const (
	// MemberServiceAddMemberProcedure is the path of MemberService.AddMember.
	MemberServiceAddMemberProcedure = "/" + MemberServiceName + "/AddMember"

	// MemberServiceListMembersProcedure is the path of MemberService.ListMembers.
	MemberServiceListMembersProcedure = "/" + MemberServiceName + "/ListMembers"

	// MemberServiceUpdateMemberProcedure is the path of MemberService.UpdateMember.
	MemberServiceUpdateMemberProcedure = "/" + MemberServiceName + "/UpdateMember"

	// MemberServiceDeleteMemberProcedure is the path of MemberService.DeleteMember.
	MemberServiceDeleteMemberProcedure = "/" + MemberServiceName + "/DeleteMember"

	// MemberServiceBulkAddMembersProcedure is the path of MemberService.BulkAddMembers.
	MemberServiceBulkAddMembersProcedure = "/" + MemberServiceName + "/BulkAddMembers"

	// MemberServiceMarkReadProcedure is the path of MemberService.MarkRead.
	MemberServiceMarkReadProcedure = "/" + MemberServiceName + "/MarkRead"

	// MemberServiceMarkPaidProcedure is the path of MemberService.MarkPaid.
	MemberServiceMarkPaidProcedure = "/" + MemberServiceName + "/MarkPaid"
)

// MemberServiceHandler is implemented by the server side of MemberService.
type MemberServiceHandler interface {
	AddMember(context.Context, *connect.Request[api.AddMemberRequest]) (*connect.Response[api.AddMemberResponse], error)
	ListMembers(context.Context, *connect.Request[api.ListMembersRequest]) (*connect.Response[api.ListMembersResponse], error)
	UpdateMember(context.Context, *connect.Request[api.UpdateMemberRequest]) (*connect.Response[api.UpdateMemberResponse], error)
	DeleteMember(context.Context, *connect.Request[api.DeleteMemberRequest]) (*connect.Response[api.Empty], error)
	BulkAddMembers(context.Context, *connect.Request[api.BulkAddMembersRequest]) (*connect.Response[api.BulkAddMembersResponse], error)
	MarkRead(context.Context, *connect.Request[api.MarkReadRequest]) (*connect.Response[api.MarkReadResponse], error)
	MarkPaid(context.Context, *connect.Request[api.MarkPaidRequest]) (*connect.Response[api.MarkPaidResponse], error)
}

// NewMemberServiceHandler builds an HTTP handler serving every MemberService procedure.
// It returns the path prefix to mount the handler on.
func NewMemberServiceHandler(svc MemberServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	return "/" + MemberServiceName + "/", route{
		MemberServiceAddMemberProcedure:      connect.NewUnaryHandler(MemberServiceAddMemberProcedure, svc.AddMember, opts...),
		MemberServiceListMembersProcedure:    connect.NewUnaryHandler(MemberServiceListMembersProcedure, svc.ListMembers, opts...),
		MemberServiceUpdateMemberProcedure:   connect.NewUnaryHandler(MemberServiceUpdateMemberProcedure, svc.UpdateMember, opts...),
		MemberServiceDeleteMemberProcedure:   connect.NewUnaryHandler(MemberServiceDeleteMemberProcedure, svc.DeleteMember, opts...),
		MemberServiceBulkAddMembersProcedure: connect.NewUnaryHandler(MemberServiceBulkAddMembersProcedure, svc.BulkAddMembers, opts...),
		MemberServiceMarkReadProcedure:       connect.NewUnaryHandler(MemberServiceMarkReadProcedure, svc.MarkRead, opts...),
		MemberServiceMarkPaidProcedure:       connect.NewUnaryHandler(MemberServiceMarkPaidProcedure, svc.MarkPaid, opts...),
	}
}

// MemberServiceClient calls MemberService procedures.
type MemberServiceClient interface {
	AddMember(context.Context, *connect.Request[api.AddMemberRequest]) (*connect.Response[api.AddMemberResponse], error)
	ListMembers(context.Context, *connect.Request[api.ListMembersRequest]) (*connect.Response[api.ListMembersResponse], error)
	UpdateMember(context.Context, *connect.Request[api.UpdateMemberRequest]) (*connect.Response[api.UpdateMemberResponse], error)
	DeleteMember(context.Context, *connect.Request[api.DeleteMemberRequest]) (*connect.Response[api.Empty], error)
	BulkAddMembers(context.Context, *connect.Request[api.BulkAddMembersRequest]) (*connect.Response[api.BulkAddMembersResponse], error)
	MarkRead(context.Context, *connect.Request[api.MarkReadRequest]) (*connect.Response[api.MarkReadResponse], error)
	MarkPaid(context.Context, *connect.Request[api.MarkPaidRequest]) (*connect.Response[api.MarkPaidResponse], error)
}

// NewMemberServiceClient creates a client for the MemberService served at baseURL.
func NewMemberServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) MemberServiceClient {
	opts = clientOptions(opts)
	return &memberServiceClient{
		addMember:      connect.NewClient[api.AddMemberRequest, api.AddMemberResponse](httpClient, baseURL+MemberServiceAddMemberProcedure, opts...),
		listMembers:    connect.NewClient[api.ListMembersRequest, api.ListMembersResponse](httpClient, baseURL+MemberServiceListMembersProcedure, opts...),
		updateMember:   connect.NewClient[api.UpdateMemberRequest, api.UpdateMemberResponse](httpClient, baseURL+MemberServiceUpdateMemberProcedure, opts...),
		deleteMember:   connect.NewClient[api.DeleteMemberRequest, api.Empty](httpClient, baseURL+MemberServiceDeleteMemberProcedure, opts...),
		bulkAddMembers: connect.NewClient[api.BulkAddMembersRequest, api.BulkAddMembersResponse](httpClient, baseURL+MemberServiceBulkAddMembersProcedure, opts...),
		markRead:       connect.NewClient[api.MarkReadRequest, api.MarkReadResponse](httpClient, baseURL+MemberServiceMarkReadProcedure, opts...),
		markPaid:       connect.NewClient[api.MarkPaidRequest, api.MarkPaidResponse](httpClient, baseURL+MemberServiceMarkPaidProcedure, opts...),
	}
}

type memberServiceClient struct {
	addMember      *connect.Client[api.AddMemberRequest, api.AddMemberResponse]
	listMembers    *connect.Client[api.ListMembersRequest, api.ListMembersResponse]
	updateMember   *connect.Client[api.UpdateMemberRequest, api.UpdateMemberResponse]
	deleteMember   *connect.Client[api.DeleteMemberRequest, api.Empty]
	bulkAddMembers *connect.Client[api.BulkAddMembersRequest, api.BulkAddMembersResponse]
	markRead       *connect.Client[api.MarkReadRequest, api.MarkReadResponse]
	markPaid       *connect.Client[api.MarkPaidRequest, api.MarkPaidResponse]
}

func (c *memberServiceClient) AddMember(ctx context.Context, req *connect.Request[api.AddMemberRequest]) (*connect.Response[api.AddMemberResponse], error) {
	return c.addMember.CallUnary(ctx, req)
}

func (c *memberServiceClient) ListMembers(ctx context.Context, req *connect.Request[api.ListMembersRequest]) (*connect.Response[api.ListMembersResponse], error) {
	return c.listMembers.CallUnary(ctx, req)
}

func (c *memberServiceClient) UpdateMember(ctx context.Context, req *connect.Request[api.UpdateMemberRequest]) (*connect.Response[api.UpdateMemberResponse], error) {
	return c.updateMember.CallUnary(ctx, req)
}

func (c *memberServiceClient) DeleteMember(ctx context.Context, req *connect.Request[api.DeleteMemberRequest]) (*connect.Response[api.Empty], error) {
	return c.deleteMember.CallUnary(ctx, req)
}

func (c *memberServiceClient) BulkAddMembers(ctx context.Context, req *connect.Request[api.BulkAddMembersRequest]) (*connect.Response[api.BulkAddMembersResponse], error) {
	return c.bulkAddMembers.CallUnary(ctx, req)
}

func (c *memberServiceClient) MarkRead(ctx context.Context, req *connect.Request[api.MarkReadRequest]) (*connect.Response[api.MarkReadResponse], error) {
	return c.markRead.CallUnary(ctx, req)
}

func (c *memberServiceClient) MarkPaid(ctx context.Context, req *connect.Request[api.MarkPaidRequest]) (*connect.Response[api.MarkPaidResponse], error) {
	return c.markPaid.CallUnary(ctx, req)
}
