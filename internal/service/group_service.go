package service

import (
	"context"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/totalmanager/internal/models"
	"github.com/mmynk/totalmanager/internal/storage"
	"github.com/mmynk/totalmanager/pkg/api"
	"github.com/mmynk/totalmanager/pkg/api/apiconnect"
)

var _ apiconnect.GroupServiceHandler = (*GroupService)(nil)

// GroupService implements the Connect GroupService.
type GroupService struct {
	deps
}

// NewGroupService creates a new GroupService with the given storage backend.
func NewGroupService(store storage.Store, opts ...Option) *GroupService {
	return &GroupService{deps: newDeps(store, opts)}
}

// CreateGroup creates a group owned by the caller.
func (s *GroupService) CreateGroup(ctx context.Context, req *connect.Request[api.CreateGroupRequest]) (*connect.Response[api.CreateGroupResponse], error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	slog.Info("CreateGroup request received", "user_id", userID, "name", req.Msg.Name, "type", req.Msg.Type)

	if err := validateStruct(req.Msg); err != nil {
		return nil, fail("CreateGroup", err)
	}
	groupType, err := models.ParseGroupType(req.Msg.Type)
	if err != nil {
		return nil, fail("CreateGroup", invalid("type: %v", err))
	}

	group := &models.Group{
		OwnerID:   userID,
		Name:      req.Msg.Name,
		Type:      groupType,
		CreatedAt: s.now().Unix(),
	}

	// Save to storage (generates ID)
	if err := s.store.CreateGroup(ctx, group); err != nil {
		return nil, fail("CreateGroup", err)
	}

	slog.Info("Group created", "group_id", group.ID)

	return connect.NewResponse(&api.CreateGroupResponse{Group: toAPIGroup(group)}), nil
}

// ListGroups returns the caller's groups.
func (s *GroupService) ListGroups(ctx context.Context, req *connect.Request[api.ListGroupsRequest]) (*connect.Response[api.ListGroupsResponse], error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	slog.Info("ListGroups request received", "user_id", userID)

	groups, err := s.store.ListGroupsByOwner(ctx, userID)
	if err != nil {
		return nil, fail("ListGroups", err)
	}

	out := make([]*api.Group, len(groups))
	for i, group := range groups {
		out[i] = toAPIGroup(group)
	}

	slog.Info("ListGroups successful", "count", len(groups))

	return connect.NewResponse(&api.ListGroupsResponse{Groups: out}), nil
}

// GetGroup returns a group with the number and total amount of its
// collections.
func (s *GroupService) GetGroup(ctx context.Context, req *connect.Request[api.GetGroupRequest]) (*connect.Response[api.GetGroupResponse], error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	slog.Info("GetGroup request received", "group_id", req.Msg.GroupID)

	if err := validateStruct(req.Msg); err != nil {
		return nil, fail("GetGroup", err)
	}

	group, err := s.guard.Group(ctx, req.Msg.GroupID, userID)
	if err != nil {
		return nil, fail("GetGroup", err, "group_id", req.Msg.GroupID)
	}

	stats, err := s.store.GetGroupStats(ctx, group.ID)
	if err != nil {
		return nil, fail("GetGroup", err, "group_id", group.ID)
	}

	return connect.NewResponse(&api.GetGroupResponse{
		Group: &api.GroupDetail{
			Group:            *toAPIGroup(group),
			CollectionsCount: stats.CollectionsCount,
			TotalAmount:      stats.TotalAmount,
		},
	}), nil
}

// UpdateGroup changes the name and/or type of a group.
func (s *GroupService) UpdateGroup(ctx context.Context, req *connect.Request[api.UpdateGroupRequest]) (*connect.Response[api.UpdateGroupResponse], error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	slog.Info("UpdateGroup request received", "group_id", req.Msg.GroupID)

	if err := validateStruct(req.Msg); err != nil {
		return nil, fail("UpdateGroup", err)
	}

	group, err := s.guard.Group(ctx, req.Msg.GroupID, userID)
	if err != nil {
		return nil, fail("UpdateGroup", err, "group_id", req.Msg.GroupID)
	}

	if req.Msg.Name != nil {
		group.Name = *req.Msg.Name
	}
	if req.Msg.Type != nil {
		groupType, err := models.ParseGroupType(*req.Msg.Type)
		if err != nil {
			return nil, fail("UpdateGroup", invalid("type: %v", err))
		}
		group.Type = groupType
	}

	if err := s.store.UpdateGroup(ctx, group); err != nil {
		return nil, fail("UpdateGroup", err, "group_id", group.ID)
	}

	slog.Info("Group updated", "group_id", group.ID)

	return connect.NewResponse(&api.UpdateGroupResponse{Group: toAPIGroup(group)}), nil
}

// DeleteGroup removes a group and everything in it.
func (s *GroupService) DeleteGroup(ctx context.Context, req *connect.Request[api.DeleteGroupRequest]) (*connect.Response[api.Empty], error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	slog.Info("DeleteGroup request received", "group_id", req.Msg.GroupID)

	if err := validateStruct(req.Msg); err != nil {
		return nil, fail("DeleteGroup", err)
	}

	if _, err := s.guard.Group(ctx, req.Msg.GroupID, userID); err != nil {
		return nil, fail("DeleteGroup", err, "group_id", req.Msg.GroupID)
	}
	if err := s.store.DeleteGroup(ctx, req.Msg.GroupID); err != nil {
		return nil, fail("DeleteGroup", err, "group_id", req.Msg.GroupID)
	}

	slog.Info("Group deleted", "group_id", req.Msg.GroupID)

	return connect.NewResponse(&api.Empty{}), nil
}
