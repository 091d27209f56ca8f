package service

import (
	"context"
	"testing"

	"connectrpc.com/connect"

	"github.com/mmynk/totalmanager/internal/models"
	"github.com/mmynk/totalmanager/pkg/api"
)

func TestSendNotice(t *testing.T) {
	env := setupTestServer(t)
	group := env.createGroup(t, owner, "Club")
	c := env.createCollection(t, owner, group.ID, "2025-03-10", 30000)
	env.addMember(t, owner, c.ID, "Kim", "01012345678")
	env.addMember(t, owner, c.ID, "Lee", "")
	ctx := context.Background()

	resp, err := env.notices.SendNotice(ctx, as(owner, &api.SendNoticeRequest{CollectionID: c.ID}))
	if err != nil {
		t.Fatalf("SendNotice failed: %v", err)
	}

	want := "'Field trip' collection notice: 30,000 won, due 2025-03-10"
	if !resp.Msg.Success || resp.Msg.Message != want {
		t.Errorf("response mismatch: %+v", resp.Msg)
	}
	if resp.Msg.LogID == "" {
		t.Error("expected log_id")
	}

	logs, err := env.store.ListEventLogsByCollection(ctx, c.ID)
	if err != nil {
		t.Fatalf("ListEventLogsByCollection failed: %v", err)
	}
	if len(logs) != 3 {
		t.Fatalf("expected 3 logs, got %d", len(logs))
	}

	scheduled := map[string]bool{}
	for _, l := range logs {
		switch l.Type {
		case models.LogTypeNoticeSent:
			if l.ID != resp.Msg.LogID || l.Message != want {
				t.Errorf("notice log mismatch: %+v", l)
			}
		case models.LogTypeReminderScheduled:
			scheduled[l.Message] = true
		default:
			t.Errorf("unexpected log type %q", l.Type)
		}
	}
	for _, msg := range []string{"Reminder scheduled: 2025-03-09", "Reminder scheduled: 2025-03-11"} {
		if !scheduled[msg] {
			t.Errorf("missing log %q", msg)
		}
	}

	// Only members with a phone are notified
	sent := env.notifier.kind("notice")
	if len(sent) != 1 || sent[0].To != "01012345678" || sent[0].Body != want {
		t.Errorf("notifications mismatch: %+v", sent)
	}

	// The notice creates no reminder rows
	reminders, err := env.store.ListReminders(ctx, owner, models.ReminderFilter{})
	if err != nil {
		t.Fatalf("ListReminders failed: %v", err)
	}
	if len(reminders) != 0 {
		t.Errorf("expected no reminders, got %d", len(reminders))
	}
}

func TestSendNotice_CustomMessage(t *testing.T) {
	env := setupTestServer(t)
	group := env.createGroup(t, owner, "Club")
	c := env.createCollection(t, owner, group.ID, "2025-12-31", 5000)

	resp, err := env.notices.SendNotice(context.Background(), as(owner, &api.SendNoticeRequest{
		CollectionID: c.ID,
		Message:      "Please pay by Friday",
	}))
	if err != nil {
		t.Fatalf("SendNotice failed: %v", err)
	}
	if resp.Msg.Message != "Please pay by Friday" {
		t.Errorf("message: %q", resp.Msg.Message)
	}

	log, err := env.store.GetEventLog(context.Background(), resp.Msg.LogID)
	if err != nil {
		t.Fatalf("GetEventLog failed: %v", err)
	}
	if log.Message != "Please pay by Friday" {
		t.Errorf("logged message: %q", log.Message)
	}
}

func TestSendNotice_Errors(t *testing.T) {
	env := setupTestServer(t)
	group := env.createGroup(t, owner, "Club")
	c := env.createCollection(t, owner, group.ID, "2025-12-31", 5000)
	ctx := context.Background()

	_, err := env.notices.SendNotice(ctx, as(owner, &api.SendNoticeRequest{CollectionID: "nonexistent-id"}))
	assertCode(t, err, connect.CodeNotFound)

	_, err = env.notices.SendNotice(ctx, as(intruder, &api.SendNoticeRequest{CollectionID: c.ID}))
	assertCode(t, err, connect.CodePermissionDenied)

	logs, err := env.store.ListEventLogsByCollection(ctx, c.ID)
	if err != nil {
		t.Fatalf("ListEventLogsByCollection failed: %v", err)
	}
	if len(logs) != 0 {
		t.Errorf("rejected notices must not log, got %d logs", len(logs))
	}
}
