package service

import (
	"context"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/totalmanager/internal/calculator"
	"github.com/mmynk/totalmanager/internal/models"
	"github.com/mmynk/totalmanager/internal/storage"
	"github.com/mmynk/totalmanager/pkg/api"
	"github.com/mmynk/totalmanager/pkg/api/apiconnect"
)

var _ apiconnect.CollectionServiceHandler = (*CollectionService)(nil)

// CollectionService implements the Connect CollectionService.
type CollectionService struct {
	deps
}

// NewCollectionService creates a new CollectionService.
func NewCollectionService(store storage.Store, opts ...Option) *CollectionService {
	return &CollectionService{deps: newDeps(store, opts)}
}

// CreateCollection adds a collection to one of the caller's groups. The
// status is derived from the due date.
func (s *CollectionService) CreateCollection(ctx context.Context, req *connect.Request[api.CreateCollectionRequest]) (*connect.Response[api.CreateCollectionResponse], error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	slog.Info("CreateCollection request received",
		"group_id", req.Msg.GroupID,
		"title", req.Msg.Title,
		"amount", req.Msg.Amount,
	)

	if err := validateStruct(req.Msg); err != nil {
		return nil, fail("CreateCollection", err)
	}
	dueDate, err := models.ParseDate(req.Msg.DueDate)
	if err != nil {
		return nil, fail("CreateCollection", invalid("due_date: %v", err))
	}
	paymentType, err := models.ParsePaymentType(req.Msg.PaymentType)
	if err != nil {
		return nil, fail("CreateCollection", invalid("payment_type: %v", err))
	}

	if _, err := s.guard.Group(ctx, req.Msg.GroupID, userID); err != nil {
		return nil, fail("CreateCollection", err, "group_id", req.Msg.GroupID)
	}

	now := s.now()
	collection := &models.Collection{
		GroupID:      req.Msg.GroupID,
		Title:        req.Msg.Title,
		Amount:       req.Msg.Amount,
		DueDate:      dueDate,
		PaymentType:  paymentType,
		PaymentValue: req.Msg.PaymentValue,
		Status:       calculator.DeriveStatus(dueDate, now),
		CreatedAt:    now.Unix(),
	}
	if err := s.store.CreateCollection(ctx, collection); err != nil {
		return nil, fail("CreateCollection", err)
	}

	slog.Info("Collection created", "collection_id", collection.ID, "status", collection.Status)

	return connect.NewResponse(&api.CreateCollectionResponse{Collection: toAPICollection(collection)}), nil
}

// ListCollections returns the collections of a group.
func (s *CollectionService) ListCollections(ctx context.Context, req *connect.Request[api.ListCollectionsRequest]) (*connect.Response[api.ListCollectionsResponse], error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	slog.Info("ListCollections request received", "group_id", req.Msg.GroupID)

	if err := validateStruct(req.Msg); err != nil {
		return nil, fail("ListCollections", err)
	}
	if _, err := s.guard.Group(ctx, req.Msg.GroupID, userID); err != nil {
		return nil, fail("ListCollections", err, "group_id", req.Msg.GroupID)
	}

	collections, err := s.store.ListCollectionsByGroup(ctx, req.Msg.GroupID)
	if err != nil {
		return nil, fail("ListCollections", err, "group_id", req.Msg.GroupID)
	}

	out := make([]*api.Collection, len(collections))
	for i, c := range collections {
		out[i] = toAPICollection(c)
	}
	return connect.NewResponse(&api.ListCollectionsResponse{Collections: out}), nil
}

// GetCollection returns one collection. The status is returned as stored.
func (s *CollectionService) GetCollection(ctx context.Context, req *connect.Request[api.GetCollectionRequest]) (*connect.Response[api.GetCollectionResponse], error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	slog.Info("GetCollection request received", "collection_id", req.Msg.CollectionID)

	if err := validateStruct(req.Msg); err != nil {
		return nil, fail("GetCollection", err)
	}
	collection, err := s.guard.Collection(ctx, req.Msg.CollectionID, userID)
	if err != nil {
		return nil, fail("GetCollection", err, "collection_id", req.Msg.CollectionID)
	}

	return connect.NewResponse(&api.GetCollectionResponse{Collection: toAPICollection(collection)}), nil
}

// UpdateCollection applies the supplied fields. A new due date re-derives
// the status.
func (s *CollectionService) UpdateCollection(ctx context.Context, req *connect.Request[api.UpdateCollectionRequest]) (*connect.Response[api.UpdateCollectionResponse], error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	slog.Info("UpdateCollection request received", "collection_id", req.Msg.CollectionID)

	if err := validateStruct(req.Msg); err != nil {
		return nil, fail("UpdateCollection", err)
	}

	collection, err := s.guard.Collection(ctx, req.Msg.CollectionID, userID)
	if err != nil {
		return nil, fail("UpdateCollection", err, "collection_id", req.Msg.CollectionID)
	}

	if req.Msg.Title != nil {
		collection.Title = *req.Msg.Title
	}
	if req.Msg.Amount != nil {
		collection.Amount = *req.Msg.Amount
	}
	if req.Msg.DueDate != nil {
		dueDate, err := models.ParseDate(*req.Msg.DueDate)
		if err != nil {
			return nil, fail("UpdateCollection", invalid("due_date: %v", err))
		}
		collection.DueDate = dueDate
		collection.Status = calculator.DeriveStatus(dueDate, s.now())
	}
	if req.Msg.PaymentType != nil {
		paymentType, err := models.ParsePaymentType(*req.Msg.PaymentType)
		if err != nil {
			return nil, fail("UpdateCollection", invalid("payment_type: %v", err))
		}
		collection.PaymentType = paymentType
	}
	if req.Msg.PaymentValue != nil {
		collection.PaymentValue = *req.Msg.PaymentValue
	}

	if err := s.store.UpdateCollection(ctx, collection); err != nil {
		return nil, fail("UpdateCollection", err, "collection_id", collection.ID)
	}

	slog.Info("Collection updated", "collection_id", collection.ID, "status", collection.Status)

	return connect.NewResponse(&api.UpdateCollectionResponse{Collection: toAPICollection(collection)}), nil
}

// DeleteCollection removes a collection with its members and logs.
func (s *CollectionService) DeleteCollection(ctx context.Context, req *connect.Request[api.DeleteCollectionRequest]) (*connect.Response[api.Empty], error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	slog.Info("DeleteCollection request received", "collection_id", req.Msg.CollectionID)

	if err := validateStruct(req.Msg); err != nil {
		return nil, fail("DeleteCollection", err)
	}
	if _, err := s.guard.Collection(ctx, req.Msg.CollectionID, userID); err != nil {
		return nil, fail("DeleteCollection", err, "collection_id", req.Msg.CollectionID)
	}
	if err := s.store.DeleteCollection(ctx, req.Msg.CollectionID); err != nil {
		return nil, fail("DeleteCollection", err, "collection_id", req.Msg.CollectionID)
	}

	slog.Info("Collection deleted", "collection_id", req.Msg.CollectionID)

	return connect.NewResponse(&api.Empty{}), nil
}

// GetCollectionSummary returns a collection with member counts and the
// estimated collected amount.
func (s *CollectionService) GetCollectionSummary(ctx context.Context, req *connect.Request[api.GetCollectionSummaryRequest]) (*connect.Response[api.GetCollectionSummaryResponse], error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	slog.Info("GetCollectionSummary request received", "collection_id", req.Msg.CollectionID)

	if err := validateStruct(req.Msg); err != nil {
		return nil, fail("GetCollectionSummary", err)
	}
	collection, err := s.guard.Collection(ctx, req.Msg.CollectionID, userID)
	if err != nil {
		return nil, fail("GetCollectionSummary", err, "collection_id", req.Msg.CollectionID)
	}

	members, err := s.store.ListMembersByCollection(ctx, collection.ID)
	if err != nil {
		return nil, fail("GetCollectionSummary", err, "collection_id", collection.ID)
	}

	marks := make([]calculator.MemberMarks, len(members))
	for i, m := range members {
		marks[i] = calculator.MemberMarks{Read: m.ReadAt != nil, Paid: m.PaidAt != nil}
	}
	summary := calculator.Summarize(collection.Amount, marks)

	return connect.NewResponse(&api.GetCollectionSummaryResponse{
		Summary: toAPISummary(collection, summary),
	}), nil
}
