package service

import (
	"context"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/totalmanager/internal/notify"
	"github.com/mmynk/totalmanager/internal/storage"
	"github.com/mmynk/totalmanager/pkg/api"
	"github.com/mmynk/totalmanager/pkg/api/apiconnect"
)

var _ apiconnect.NoticeServiceHandler = (*NoticeService)(nil)

// NoticeService implements the Connect NoticeService.
type NoticeService struct {
	deps
}

// NewNoticeService creates a new NoticeService.
func NewNoticeService(store storage.Store, opts ...Option) *NoticeService {
	return &NoticeService{deps: newDeps(store, opts)}
}

// SendNotice records that a collection notice went out. Besides the
// notice_sent log it writes two reminder_scheduled logs, for the day before
// and the day after the due date. No reminder rows are created.
//
// After the logs are committed the notice is handed to the notifier for
// every member with a phone number.
func (s *NoticeService) SendNotice(ctx context.Context, req *connect.Request[api.SendNoticeRequest]) (*connect.Response[api.SendNoticeResponse], error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	slog.Info("SendNotice request received", "collection_id", req.Msg.CollectionID)

	if err := validateStruct(req.Msg); err != nil {
		return nil, fail("SendNotice", err)
	}
	collection, err := s.guard.Collection(ctx, req.Msg.CollectionID, userID)
	if err != nil {
		return nil, fail("SendNotice", err, "collection_id", req.Msg.CollectionID)
	}

	msg := req.Msg.Message
	if msg == "" {
		msg = noticeMessage(collection)
	}

	logs := noticeLogs(collection, msg, s.now())
	if err := s.store.CreateEventLogs(ctx, logs...); err != nil {
		return nil, fail("SendNotice", err, "collection_id", collection.ID)
	}
	s.metrics.ObserveEventLogs(logs...)

	members, err := s.store.ListMembersByCollection(ctx, collection.ID)
	if err != nil {
		// The notice is already recorded
		slog.Warn("Could not list members to notify", "collection_id", collection.ID, "error", err)
	}
	notified := 0
	for _, m := range members {
		if m.Phone == "" {
			continue
		}
		s.notify(ctx, notify.Message{Kind: "notice", To: m.Phone, Body: msg})
		notified++
	}

	slog.Info("Notice sent",
		"collection_id", collection.ID,
		"log_id", logs[0].ID,
		"notified", notified,
	)

	return connect.NewResponse(&api.SendNoticeResponse{
		Success: true,
		Message: msg,
		LogID:   logs[0].ID,
	}), nil
}
