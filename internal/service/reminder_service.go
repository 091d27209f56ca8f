package service

import (
	"context"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/totalmanager/internal/calculator"
	"github.com/mmynk/totalmanager/internal/models"
	"github.com/mmynk/totalmanager/internal/notify"
	"github.com/mmynk/totalmanager/internal/storage"
	"github.com/mmynk/totalmanager/pkg/api"
	"github.com/mmynk/totalmanager/pkg/api/apiconnect"
)

var _ apiconnect.ReminderServiceHandler = (*ReminderService)(nil)

// ReminderService implements the Connect ReminderService.
type ReminderService struct {
	deps
}

// NewReminderService creates a new ReminderService.
func NewReminderService(store storage.Store, opts ...Option) *ReminderService {
	return &ReminderService{deps: newDeps(store, opts)}
}

// CreateReminder schedules a reminder for the caller, optionally tied to one
// of their collections.
func (s *ReminderService) CreateReminder(ctx context.Context, req *connect.Request[api.CreateReminderRequest]) (*connect.Response[api.CreateReminderResponse], error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	slog.Info("CreateReminder request received",
		"title", req.Msg.Title,
		"collection_id", req.Msg.CollectionID,
		"scheduled_at", req.Msg.ScheduledAt,
	)

	if err := validateStruct(req.Msg); err != nil {
		return nil, fail("CreateReminder", err)
	}
	repeat := models.RepeatNone
	if req.Msg.RepeatType != "" {
		repeat, err = models.ParseRepeatType(req.Msg.RepeatType)
		if err != nil {
			return nil, fail("CreateReminder", invalid("repeat_type: %v", err))
		}
	}
	if req.Msg.CollectionID != "" {
		if _, err := s.guard.Collection(ctx, req.Msg.CollectionID, userID); err != nil {
			return nil, fail("CreateReminder", err, "collection_id", req.Msg.CollectionID)
		}
	}

	reminder := &models.Reminder{
		UserID:       userID,
		CollectionID: req.Msg.CollectionID,
		Title:        req.Msg.Title,
		ScheduledAt:  req.Msg.ScheduledAt,
		RepeatType:   repeat,
		Message:      req.Msg.Message,
		CreatedAt:    s.now().Unix(),
	}
	if err := s.store.CreateReminder(ctx, reminder); err != nil {
		return nil, fail("CreateReminder", err)
	}

	slog.Info("Reminder created", "reminder_id", reminder.ID)

	return connect.NewResponse(&api.CreateReminderResponse{Reminder: toAPIReminder(reminder)}), nil
}

// ListReminders returns the caller's reminders, earliest first.
func (s *ReminderService) ListReminders(ctx context.Context, req *connect.Request[api.ListRemindersRequest]) (*connect.Response[api.ListRemindersResponse], error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	slog.Info("ListReminders request received", "user_id", userID, "collection_id", req.Msg.CollectionID)

	reminders, err := s.store.ListReminders(ctx, userID, models.ReminderFilter{
		IsSent:       req.Msg.IsSent,
		CollectionID: req.Msg.CollectionID,
	})
	if err != nil {
		return nil, fail("ListReminders", err)
	}

	out := make([]*api.Reminder, len(reminders))
	for i, r := range reminders {
		out[i] = toAPIReminder(r)
	}
	return connect.NewResponse(&api.ListRemindersResponse{Reminders: out}), nil
}

// GetReminder returns one of the caller's reminders.
func (s *ReminderService) GetReminder(ctx context.Context, req *connect.Request[api.GetReminderRequest]) (*connect.Response[api.GetReminderResponse], error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}

	if err := validateStruct(req.Msg); err != nil {
		return nil, fail("GetReminder", err)
	}
	reminder, err := s.guard.Reminder(ctx, req.Msg.ReminderID, userID)
	if err != nil {
		return nil, fail("GetReminder", err, "reminder_id", req.Msg.ReminderID)
	}
	return connect.NewResponse(&api.GetReminderResponse{Reminder: toAPIReminder(reminder)}), nil
}

// UpdateReminder applies the supplied fields.
func (s *ReminderService) UpdateReminder(ctx context.Context, req *connect.Request[api.UpdateReminderRequest]) (*connect.Response[api.UpdateReminderResponse], error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	slog.Info("UpdateReminder request received", "reminder_id", req.Msg.ReminderID)

	if err := validateStruct(req.Msg); err != nil {
		return nil, fail("UpdateReminder", err)
	}
	reminder, err := s.guard.Reminder(ctx, req.Msg.ReminderID, userID)
	if err != nil {
		return nil, fail("UpdateReminder", err, "reminder_id", req.Msg.ReminderID)
	}

	if req.Msg.Title != nil {
		reminder.Title = *req.Msg.Title
	}
	if req.Msg.ScheduledAt != nil {
		reminder.ScheduledAt = *req.Msg.ScheduledAt
	}
	if req.Msg.RepeatType != nil {
		repeat, err := models.ParseRepeatType(*req.Msg.RepeatType)
		if err != nil {
			return nil, fail("UpdateReminder", invalid("repeat_type: %v", err))
		}
		reminder.RepeatType = repeat
	}
	if req.Msg.Message != nil {
		reminder.Message = *req.Msg.Message
	}
	now := s.now().Unix()
	reminder.UpdatedAt = &now

	if err := s.store.UpdateReminder(ctx, reminder); err != nil {
		return nil, fail("UpdateReminder", err, "reminder_id", reminder.ID)
	}
	return connect.NewResponse(&api.UpdateReminderResponse{Reminder: toAPIReminder(reminder)}), nil
}

// DeleteReminder removes one of the caller's reminders.
func (s *ReminderService) DeleteReminder(ctx context.Context, req *connect.Request[api.DeleteReminderRequest]) (*connect.Response[api.Empty], error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	slog.Info("DeleteReminder request received", "reminder_id", req.Msg.ReminderID)

	if err := validateStruct(req.Msg); err != nil {
		return nil, fail("DeleteReminder", err)
	}
	if _, err := s.guard.Reminder(ctx, req.Msg.ReminderID, userID); err != nil {
		return nil, fail("DeleteReminder", err, "reminder_id", req.Msg.ReminderID)
	}
	if err := s.store.DeleteReminder(ctx, req.Msg.ReminderID); err != nil {
		return nil, fail("DeleteReminder", err, "reminder_id", req.Msg.ReminderID)
	}
	return connect.NewResponse(&api.Empty{}), nil
}

// SendReminder sends a reminder now. It marks the reminder sent, logs
// reminder_sent on its collection if it has one, and for repeating reminders
// schedules an unsent copy one period later. All three writes commit together.
//
// Sending an already sent reminder is allowed; it refreshes sent_at.
func (s *ReminderService) SendReminder(ctx context.Context, req *connect.Request[api.SendReminderRequest]) (*connect.Response[api.SendReminderResponse], error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	slog.Info("SendReminder request received", "reminder_id", req.Msg.ReminderID)

	if err := validateStruct(req.Msg); err != nil {
		return nil, fail("SendReminder", err)
	}
	reminder, err := s.guard.Reminder(ctx, req.Msg.ReminderID, userID)
	if err != nil {
		return nil, fail("SendReminder", err, "reminder_id", req.Msg.ReminderID)
	}

	now := s.now()
	ts := now.Unix()
	reminder.IsSent = true
	reminder.SentAt = &ts
	reminder.UpdatedAt = &ts

	var log *models.EventLog
	if reminder.CollectionID != "" {
		log = newLog(reminder.CollectionID, models.LogTypeReminderSent, reminderText(reminder), now)
	}

	var next *models.Reminder
	if at, ok := calculator.NextOccurrence(reminder.ScheduledAt, reminder.RepeatType); ok {
		next = &models.Reminder{
			UserID:       reminder.UserID,
			CollectionID: reminder.CollectionID,
			Title:        reminder.Title,
			ScheduledAt:  at,
			RepeatType:   reminder.RepeatType,
			Message:      reminder.Message,
			CreatedAt:    ts,
		}
	}

	if err := s.store.SendReminder(ctx, reminder, log, next); err != nil {
		return nil, fail("SendReminder", err, "reminder_id", reminder.ID)
	}
	if log != nil {
		s.metrics.ObserveEventLogs(log)
	}

	s.deliver(ctx, reminder)

	attrs := []any{"reminder_id", reminder.ID}
	if next != nil {
		attrs = append(attrs, "next_id", next.ID, "next_at", next.ScheduledAt)
	}
	slog.Info("Reminder sent", attrs...)

	return connect.NewResponse(&api.SendReminderResponse{
		Reminder: toAPIReminder(reminder),
		Next:     toAPIReminder(next),
	}), nil
}

// deliver notifies the reminder's owner unless they turned reminder
// notifications off.
func (s *ReminderService) deliver(ctx context.Context, reminder *models.Reminder) {
	settings, err := s.store.GetOrCreateUserSettings(ctx, reminder.UserID)
	if err != nil {
		slog.Warn("Could not read notification settings", "user_id", reminder.UserID, "error", err)
		return
	}
	if !settings.ReminderNotificationsEnabled {
		return
	}
	s.notify(ctx, notify.Message{Kind: "reminder", To: reminder.UserID, Body: reminderText(reminder)})
}
