package service

import (
	"context"
	"errors"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/totalmanager/internal/models"
	"github.com/mmynk/totalmanager/internal/storage"
	"github.com/mmynk/totalmanager/pkg/api"
	"github.com/mmynk/totalmanager/pkg/api/apiconnect"
)

var _ apiconnect.MemberServiceHandler = (*MemberService)(nil)

// MemberService implements the Connect MemberService.
type MemberService struct {
	deps
}

// NewMemberService creates a new MemberService.
func NewMemberService(store storage.Store, opts ...Option) *MemberService {
	return &MemberService{deps: newDeps(store, opts)}
}

// AddMember adds one member to a collection.
func (s *MemberService) AddMember(ctx context.Context, req *connect.Request[api.AddMemberRequest]) (*connect.Response[api.AddMemberResponse], error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	slog.Info("AddMember request received", "collection_id", req.Msg.CollectionID)

	if err := validateStruct(req.Msg); err != nil {
		return nil, fail("AddMember", err)
	}
	if _, err := s.guard.Collection(ctx, req.Msg.CollectionID, userID); err != nil {
		return nil, fail("AddMember", err, "collection_id", req.Msg.CollectionID)
	}

	member := s.newMember(req.Msg.CollectionID, &req.Msg.NewMember)
	if err := s.store.CreateMember(ctx, member); err != nil {
		return nil, fail("AddMember", err, "collection_id", req.Msg.CollectionID)
	}

	slog.Info("Member added", "member_id", member.ID, "collection_id", member.CollectionID)

	return connect.NewResponse(&api.AddMemberResponse{Member: toAPIMember(member)}), nil
}

// ListMembers returns the members of a collection.
func (s *MemberService) ListMembers(ctx context.Context, req *connect.Request[api.ListMembersRequest]) (*connect.Response[api.ListMembersResponse], error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	slog.Info("ListMembers request received", "collection_id", req.Msg.CollectionID)

	if err := validateStruct(req.Msg); err != nil {
		return nil, fail("ListMembers", err)
	}
	if _, err := s.guard.Collection(ctx, req.Msg.CollectionID, userID); err != nil {
		return nil, fail("ListMembers", err, "collection_id", req.Msg.CollectionID)
	}

	members, err := s.store.ListMembersByCollection(ctx, req.Msg.CollectionID)
	if err != nil {
		return nil, fail("ListMembers", err, "collection_id", req.Msg.CollectionID)
	}
	return connect.NewResponse(&api.ListMembersResponse{Members: toAPIMembers(members)}), nil
}

// UpdateMember changes a member's display name and/or phone.
func (s *MemberService) UpdateMember(ctx context.Context, req *connect.Request[api.UpdateMemberRequest]) (*connect.Response[api.UpdateMemberResponse], error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	slog.Info("UpdateMember request received", "member_id", req.Msg.MemberID)

	if err := validateStruct(req.Msg); err != nil {
		return nil, fail("UpdateMember", err)
	}
	member, _, err := s.guard.Member(ctx, req.Msg.MemberID, userID)
	if err != nil {
		return nil, fail("UpdateMember", err, "member_id", req.Msg.MemberID)
	}

	if req.Msg.DisplayName != nil {
		member.DisplayName = *req.Msg.DisplayName
	}
	if req.Msg.Phone != nil {
		member.Phone = *req.Msg.Phone
	}

	if err := s.store.UpdateMember(ctx, member); err != nil {
		return nil, fail("UpdateMember", err, "member_id", member.ID)
	}
	return connect.NewResponse(&api.UpdateMemberResponse{Member: toAPIMember(member)}), nil
}

// DeleteMember removes a member from its collection.
func (s *MemberService) DeleteMember(ctx context.Context, req *connect.Request[api.DeleteMemberRequest]) (*connect.Response[api.Empty], error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	slog.Info("DeleteMember request received", "member_id", req.Msg.MemberID)

	if err := validateStruct(req.Msg); err != nil {
		return nil, fail("DeleteMember", err)
	}
	if _, _, err := s.guard.Member(ctx, req.Msg.MemberID, userID); err != nil {
		return nil, fail("DeleteMember", err, "member_id", req.Msg.MemberID)
	}
	if err := s.store.DeleteMember(ctx, req.Msg.MemberID); err != nil {
		return nil, fail("DeleteMember", err, "member_id", req.Msg.MemberID)
	}

	slog.Info("Member deleted", "member_id", req.Msg.MemberID)

	return connect.NewResponse(&api.Empty{}), nil
}

// BulkAddMembers validates every entry on its own. Valid entries are stored
// together; invalid ones are reported by index and do not fail the call.
func (s *MemberService) BulkAddMembers(ctx context.Context, req *connect.Request[api.BulkAddMembersRequest]) (*connect.Response[api.BulkAddMembersResponse], error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	slog.Info("BulkAddMembers request received",
		"collection_id", req.Msg.CollectionID,
		"count", len(req.Msg.Members),
	)

	if err := validateStruct(req.Msg); err != nil {
		return nil, fail("BulkAddMembers", err)
	}
	if _, err := s.guard.Collection(ctx, req.Msg.CollectionID, userID); err != nil {
		return nil, fail("BulkAddMembers", err, "collection_id", req.Msg.CollectionID)
	}

	var (
		members  []*models.Member
		failures []*api.BulkMemberError
	)
	for i, in := range req.Msg.Members {
		if in == nil {
			failures = append(failures, &api.BulkMemberError{Index: i, Error: "member is required"})
			continue
		}
		if err := validateStruct(in); err != nil {
			failures = append(failures, &api.BulkMemberError{
				Index:       i,
				DisplayName: in.DisplayName,
				Error:       err.Error(),
			})
			continue
		}
		members = append(members, s.newMember(req.Msg.CollectionID, in))
	}

	if len(members) > 0 {
		if err := s.store.CreateMembers(ctx, members); err != nil {
			return nil, fail("BulkAddMembers", err, "collection_id", req.Msg.CollectionID)
		}
	}

	slog.Info("BulkAddMembers finished",
		"collection_id", req.Msg.CollectionID,
		"created", len(members),
		"failed", len(failures),
	)

	return connect.NewResponse(&api.BulkAddMembersResponse{
		Created: len(members),
		Failed:  len(failures),
		Members: toAPIMembers(members),
		Errors:  failures,
	}), nil
}

// MarkRead records that a member has read the notice.
func (s *MemberService) MarkRead(ctx context.Context, req *connect.Request[api.MarkReadRequest]) (*connect.Response[api.MarkReadResponse], error) {
	member, err := s.mark(ctx, "MarkRead", req.Msg.MemberID, models.LogTypeRead)
	if err != nil {
		return nil, err
	}
	return connect.NewResponse(&api.MarkReadResponse{Member: toAPIMember(member)}), nil
}

// MarkPaid records that a member has paid.
func (s *MemberService) MarkPaid(ctx context.Context, req *connect.Request[api.MarkPaidRequest]) (*connect.Response[api.MarkPaidResponse], error) {
	member, err := s.mark(ctx, "MarkPaid", req.Msg.MemberID, models.LogTypePaidMarked)
	if err != nil {
		return nil, err
	}
	return connect.NewResponse(&api.MarkPaidResponse{Member: toAPIMember(member)}), nil
}

// mark stamps the read or paid time of a member and logs it in the same
// transaction. Marking again overwrites the time and logs again.
func (s *MemberService) mark(ctx context.Context, op, memberID string, typ models.LogType) (*models.Member, error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	slog.Info(op+" request received", "member_id", memberID)

	if memberID == "" {
		return nil, fail(op, invalid("member_id is required"))
	}
	member, _, err := s.guard.Member(ctx, memberID, userID)
	if err != nil {
		return nil, fail(op, err, "member_id", memberID)
	}

	now := s.now()
	ts := now.Unix()
	var msg string
	switch typ {
	case models.LogTypeRead:
		member.ReadAt = &ts
		msg = readMessage(member.DisplayName)
	case models.LogTypePaidMarked:
		member.PaidAt = &ts
		msg = paidMessage(member.DisplayName)
	default:
		return nil, fail(op, errors.New("unsupported mark type "+string(typ)))
	}

	log := newLog(member.CollectionID, typ, msg, now)
	if err := s.store.MarkMember(ctx, member, log); err != nil {
		return nil, fail(op, err, "member_id", memberID)
	}
	s.metrics.ObserveEventLogs(log)

	slog.Info("Member marked", "member_id", member.ID, "type", typ)
	return member, nil
}

func (s *MemberService) newMember(collectionID string, in *api.NewMember) *models.Member {
	return &models.Member{
		CollectionID: collectionID,
		DisplayName:  in.DisplayName,
		Phone:        in.Phone,
		CreatedAt:    s.now().Unix(),
	}
}
