package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/mmynk/totalmanager/internal/models"
	"github.com/mmynk/totalmanager/internal/storage"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

// seedCollection creates a group owned by ownerID with one collection.
func seedCollection(t *testing.T, store *SQLiteStore, ownerID string) (*models.Group, *models.Collection) {
	t.Helper()
	ctx := context.Background()

	group := &models.Group{OwnerID: ownerID, Name: "Class 3 Parents", Type: models.GroupTypeParents}
	if err := store.CreateGroup(ctx, group); err != nil {
		t.Fatalf("CreateGroup failed: %v", err)
	}
	collection := &models.Collection{
		GroupID:      group.ID,
		Title:        "Field trip",
		Amount:       30000,
		DueDate:      time.Date(2025, 5, 10, 0, 0, 0, 0, time.UTC),
		PaymentType:  models.PaymentTypeBank,
		PaymentValue: "KB 123-456",
		Status:       models.CollectionStatusActive,
	}
	if err := store.CreateCollection(ctx, collection); err != nil {
		t.Fatalf("CreateCollection failed: %v", err)
	}
	return group, collection
}

func TestGroupsAndCollections(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	group, collection := seedCollection(t, store, "owner-1")

	t.Run("CreateGroup generates ID and CreatedAt", func(t *testing.T) {
		if group.ID == "" {
			t.Error("Expected group ID to be generated")
		}
		if group.CreatedAt == 0 {
			t.Error("Expected CreatedAt to be set")
		}
	})

	t.Run("GetCollection round trips due date", func(t *testing.T) {
		got, err := store.GetCollection(ctx, collection.ID)
		if err != nil {
			t.Fatalf("GetCollection failed: %v", err)
		}
		if got.DueDate.Format(models.DateLayout) != "2025-05-10" {
			t.Errorf("DueDate = %s, want 2025-05-10", got.DueDate.Format(models.DateLayout))
		}
		if got.PaymentType != models.PaymentTypeBank || got.Status != models.CollectionStatusActive {
			t.Errorf("unexpected collection: %+v", got)
		}
	})

	t.Run("GetGroupStats sums collections", func(t *testing.T) {
		second := *collection
		second.ID = ""
		second.Amount = 5000
		if err := store.CreateCollection(ctx, &second); err != nil {
			t.Fatalf("CreateCollection failed: %v", err)
		}
		stats, err := store.GetGroupStats(ctx, group.ID)
		if err != nil {
			t.Fatalf("GetGroupStats failed: %v", err)
		}
		if stats.CollectionsCount != 2 || stats.TotalAmount != 35000 {
			t.Errorf("stats = %+v, want 2 collections totalling 35000", stats)
		}
	})

	t.Run("missing rows are ErrNotFound", func(t *testing.T) {
		if _, err := store.GetGroup(ctx, "missing"); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("GetGroup error = %v, want ErrNotFound", err)
		}
		if err := store.UpdateGroup(ctx, &models.Group{ID: "missing", Name: "x", Type: models.GroupTypeOther}); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("UpdateGroup error = %v, want ErrNotFound", err)
		}
		if err := store.DeleteCollection(ctx, "missing"); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("DeleteCollection error = %v, want ErrNotFound", err)
		}
	})

	t.Run("ListGroupsByOwner only returns own groups", func(t *testing.T) {
		seedCollection(t, store, "owner-2")
		groups, err := store.ListGroupsByOwner(ctx, "owner-1")
		if err != nil {
			t.Fatalf("ListGroupsByOwner failed: %v", err)
		}
		if len(groups) != 1 || groups[0].ID != group.ID {
			t.Errorf("got %d groups, want only %s", len(groups), group.ID)
		}
	})
}

func TestCascadeDelete(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	group, collection := seedCollection(t, store, "owner-1")

	member := &models.Member{CollectionID: collection.ID, DisplayName: "Jisoo"}
	if err := store.CreateMember(ctx, member); err != nil {
		t.Fatalf("CreateMember failed: %v", err)
	}
	log := &models.EventLog{CollectionID: collection.ID, Type: models.LogTypeNoticeSent, Message: "hello"}
	if err := store.CreateEventLogs(ctx, log); err != nil {
		t.Fatalf("CreateEventLogs failed: %v", err)
	}
	reminder := &models.Reminder{
		UserID:       "owner-1",
		CollectionID: collection.ID,
		Title:        "Pay up",
		ScheduledAt:  time.Now().Unix(),
		RepeatType:   models.RepeatNone,
	}
	if err := store.CreateReminder(ctx, reminder); err != nil {
		t.Fatalf("CreateReminder failed: %v", err)
	}

	if err := store.DeleteGroup(ctx, group.ID); err != nil {
		t.Fatalf("DeleteGroup failed: %v", err)
	}

	if _, err := store.GetCollection(ctx, collection.ID); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("collection survived group delete: %v", err)
	}
	if _, err := store.GetMember(ctx, member.ID); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("member survived group delete: %v", err)
	}
	if _, err := store.GetEventLog(ctx, log.ID); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("event log survived group delete: %v", err)
	}

	got, err := store.GetReminder(ctx, reminder.ID)
	if err != nil {
		t.Fatalf("reminder should survive group delete: %v", err)
	}
	if got.CollectionID != "" {
		t.Errorf("reminder CollectionID = %q, want empty", got.CollectionID)
	}
}

func TestMembers(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	_, collection := seedCollection(t, store, "owner-1")

	t.Run("CreateMembers stores all in order", func(t *testing.T) {
		members := []*models.Member{
			{CollectionID: collection.ID, DisplayName: "A", Phone: "01012345678"},
			{CollectionID: collection.ID, DisplayName: "B"},
		}
		if err := store.CreateMembers(ctx, members); err != nil {
			t.Fatalf("CreateMembers failed: %v", err)
		}
		got, err := store.ListMembersByCollection(ctx, collection.ID)
		if err != nil {
			t.Fatalf("ListMembersByCollection failed: %v", err)
		}
		if len(got) != 2 || got[0].DisplayName != "A" || got[1].Phone != "" {
			t.Errorf("unexpected members: %+v %+v", got[0], got[1])
		}
	})

	t.Run("CreateMembers is all or nothing", func(t *testing.T) {
		members := []*models.Member{
			{CollectionID: collection.ID, DisplayName: "C"},
			{CollectionID: "missing-collection", DisplayName: "D"},
		}
		if err := store.CreateMembers(ctx, members); err == nil {
			t.Fatal("expected foreign key failure")
		}
		got, _ := store.ListMembersByCollection(ctx, collection.ID)
		if len(got) != 2 {
			t.Errorf("got %d members after failed batch, want 2", len(got))
		}
	})

	t.Run("MarkMember writes timestamp and log together", func(t *testing.T) {
		member := &models.Member{CollectionID: collection.ID, DisplayName: "E"}
		if err := store.CreateMember(ctx, member); err != nil {
			t.Fatalf("CreateMember failed: %v", err)
		}
		now := time.Now().Unix()
		member.PaidAt = &now
		log := &models.EventLog{CollectionID: collection.ID, Type: models.LogTypePaidMarked, Message: "E marked as paid"}
		if err := store.MarkMember(ctx, member, log); err != nil {
			t.Fatalf("MarkMember failed: %v", err)
		}

		got, err := store.GetMember(ctx, member.ID)
		if err != nil {
			t.Fatalf("GetMember failed: %v", err)
		}
		if got.PaidAt == nil || *got.PaidAt != now || got.ReadAt != nil {
			t.Errorf("unexpected marks: read=%v paid=%v", got.ReadAt, got.PaidAt)
		}
		if _, err := store.GetEventLog(ctx, log.ID); err != nil {
			t.Errorf("log not stored: %v", err)
		}
	})

	t.Run("MarkMember on missing member writes no log", func(t *testing.T) {
		log := &models.EventLog{CollectionID: collection.ID, Type: models.LogTypeRead, Message: "ghost"}
		err := store.MarkMember(ctx, &models.Member{ID: "missing"}, log)
		if !errors.Is(err, storage.ErrNotFound) {
			t.Fatalf("MarkMember error = %v, want ErrNotFound", err)
		}
		if _, err := store.GetEventLog(ctx, log.ID); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("log was written despite rollback: %v", err)
		}
	})
}

func TestEventLogs(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	_, c1 := seedCollection(t, store, "owner-1")
	_, c2 := seedCollection(t, store, "owner-1")
	_, foreign := seedCollection(t, store, "owner-2")

	day := time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC).Unix()
	logs := []*models.EventLog{
		{CollectionID: c1.ID, Type: models.LogTypeNoticeSent, Message: "n", CreatedAt: day},
		{CollectionID: c1.ID, Type: models.LogTypeRead, Message: "r", CreatedAt: day + 60},
		{CollectionID: c2.ID, Type: models.LogTypeRead, Message: "r2", CreatedAt: day + 86400},
		{CollectionID: foreign.ID, Type: models.LogTypeRead, Message: "other", CreatedAt: day},
	}
	if err := store.CreateEventLogs(ctx, logs...); err != nil {
		t.Fatalf("CreateEventLogs failed: %v", err)
	}

	t.Run("ListEventLogsByCollection is newest first", func(t *testing.T) {
		got, err := store.ListEventLogsByCollection(ctx, c1.ID)
		if err != nil {
			t.Fatalf("ListEventLogsByCollection failed: %v", err)
		}
		if len(got) != 2 || got[0].Type != models.LogTypeRead {
			t.Errorf("unexpected logs: %+v", got)
		}
	})

	t.Run("ListEventLogsByOwner filters and pages", func(t *testing.T) {
		page, total, err := store.ListEventLogsByOwner(ctx, "owner-1", models.LogFilter{Limit: 1, Offset: 0})
		if err != nil {
			t.Fatalf("ListEventLogsByOwner failed: %v", err)
		}
		if total != 3 || len(page) != 1 || page[0].CollectionID != c2.ID {
			t.Errorf("total=%d page=%+v", total, page)
		}

		page, total, err = store.ListEventLogsByOwner(ctx, "owner-1",
			models.LogFilter{Type: models.LogTypeRead, CollectionID: c1.ID, Limit: 50})
		if err != nil {
			t.Fatalf("ListEventLogsByOwner failed: %v", err)
		}
		if total != 1 || len(page) != 1 || page[0].Message != "r" {
			t.Errorf("total=%d page=%+v", total, page)
		}
	})

	t.Run("GetLogStats", func(t *testing.T) {
		stats, err := store.GetLogStats(ctx, "owner-1", 7)
		if err != nil {
			t.Fatalf("GetLogStats failed: %v", err)
		}
		if stats.Total != 3 {
			t.Errorf("Total = %d, want 3", stats.Total)
		}
		if stats.ByType[models.LogTypeRead] != 2 || stats.ByType[models.LogTypeNoticeSent] != 1 {
			t.Errorf("ByType = %v", stats.ByType)
		}
		if n, ok := stats.ByType[models.LogTypeReminderSent]; !ok || n != 0 {
			t.Errorf("ByType missing zero entry for reminder_sent: %v", stats.ByType)
		}
		want := []models.DailyActivity{{Date: "2025-05-02", Count: 1}, {Date: "2025-05-01", Count: 2}}
		if len(stats.RecentActivity) != len(want) {
			t.Fatalf("RecentActivity = %+v, want %+v", stats.RecentActivity, want)
		}
		for i := range want {
			if stats.RecentActivity[i] != want[i] {
				t.Errorf("RecentActivity[%d] = %+v, want %+v", i, stats.RecentActivity[i], want[i])
			}
		}
	})
}

func TestReminders(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	_, collection := seedCollection(t, store, "owner-1")

	base := time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC).Unix()
	later := &models.Reminder{UserID: "owner-1", Title: "later", ScheduledAt: base + 3600, RepeatType: models.RepeatNone}
	daily := &models.Reminder{UserID: "owner-1", CollectionID: collection.ID, Title: "daily",
		ScheduledAt: base, RepeatType: models.RepeatDaily, Message: "pay"}
	for _, r := range []*models.Reminder{later, daily} {
		if err := store.CreateReminder(ctx, r); err != nil {
			t.Fatalf("CreateReminder failed: %v", err)
		}
	}

	t.Run("ListReminders orders by scheduled time and filters", func(t *testing.T) {
		got, err := store.ListReminders(ctx, "owner-1", models.ReminderFilter{})
		if err != nil {
			t.Fatalf("ListReminders failed: %v", err)
		}
		if len(got) != 2 || got[0].ID != daily.ID {
			t.Fatalf("unexpected order: %+v", got)
		}
		got, _ = store.ListReminders(ctx, "owner-1", models.ReminderFilter{CollectionID: collection.ID})
		if len(got) != 1 || got[0].Message != "pay" {
			t.Errorf("collection filter: %+v", got)
		}
	})

	t.Run("SendReminder stores flag, log and next occurrence atomically", func(t *testing.T) {
		now := base + 10
		daily.IsSent = true
		daily.SentAt = &now
		log := &models.EventLog{CollectionID: collection.ID, Type: models.LogTypeReminderSent, Message: "pay"}
		next := &models.Reminder{UserID: "owner-1", CollectionID: collection.ID, Title: "daily",
			ScheduledAt: base + 86400, RepeatType: models.RepeatDaily, Message: "pay"}
		if err := store.SendReminder(ctx, daily, log, next); err != nil {
			t.Fatalf("SendReminder failed: %v", err)
		}

		sent := true
		got, _ := store.ListReminders(ctx, "owner-1", models.ReminderFilter{IsSent: &sent})
		if len(got) != 1 || got[0].ID != daily.ID || got[0].SentAt == nil {
			t.Errorf("sent reminders: %+v", got)
		}
		unsent := false
		got, _ = store.ListReminders(ctx, "owner-1", models.ReminderFilter{IsSent: &unsent})
		if len(got) != 2 || got[1].ID != next.ID {
			t.Errorf("unsent reminders: %+v", got)
		}
		if _, err := store.GetEventLog(ctx, log.ID); err != nil {
			t.Errorf("reminder_sent log missing: %v", err)
		}
	})

	t.Run("SendReminder rolls back when next insert fails", func(t *testing.T) {
		now := base + 20
		later.IsSent = true
		later.SentAt = &now
		dup := &models.Reminder{ID: daily.ID, UserID: "owner-1", Title: "dup", ScheduledAt: base, RepeatType: models.RepeatNone}
		if err := store.SendReminder(ctx, later, nil, dup); err == nil {
			t.Fatal("expected primary key failure")
		}
		got, err := store.GetReminder(ctx, later.ID)
		if err != nil {
			t.Fatalf("GetReminder failed: %v", err)
		}
		if got.IsSent {
			t.Error("reminder marked sent despite rollback")
		}
	})
}

func TestUsers(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	user := &models.User{Phone: "01012345678", Name: "Minji"}
	if err := store.CreateUser(ctx, user); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}

	t.Run("duplicate phone is ErrConflict", func(t *testing.T) {
		err := store.CreateUser(ctx, &models.User{Phone: "01012345678"})
		if !errors.Is(err, storage.ErrConflict) {
			t.Errorf("CreateUser error = %v, want ErrConflict", err)
		}
	})

	t.Run("users without phone do not collide", func(t *testing.T) {
		for i := 0; i < 2; i++ {
			if err := store.CreateUser(ctx, &models.User{Name: "anon"}); err != nil {
				t.Fatalf("CreateUser without phone failed: %v", err)
			}
		}
	})

	t.Run("GetUserByPhone and UpdateUser", func(t *testing.T) {
		got, err := store.GetUserByPhone(ctx, "01012345678")
		if err != nil {
			t.Fatalf("GetUserByPhone failed: %v", err)
		}
		got.IsOnboarded = true
		got.Email = "minji@example.com"
		if err := store.UpdateUser(ctx, got); err != nil {
			t.Fatalf("UpdateUser failed: %v", err)
		}
		again, _ := store.GetUserByID(ctx, user.ID)
		if !again.IsOnboarded || again.Email != "minji@example.com" || again.UpdatedAt == nil {
			t.Errorf("update not persisted: %+v", again)
		}
		if _, err := store.GetUserByExternalID(ctx, "nope"); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("GetUserByExternalID error = %v, want ErrNotFound", err)
		}
	})

	t.Run("settings are created lazily with defaults", func(t *testing.T) {
		settings, err := store.GetOrCreateUserSettings(ctx, user.ID)
		if err != nil {
			t.Fatalf("GetOrCreateUserSettings failed: %v", err)
		}
		if !settings.PushNotificationsEnabled || settings.EmailNotificationsEnabled || !settings.ReminderNotificationsEnabled {
			t.Errorf("unexpected defaults: %+v", settings)
		}
		settings.EmailNotificationsEnabled = true
		if err := store.UpdateUserSettings(ctx, settings); err != nil {
			t.Fatalf("UpdateUserSettings failed: %v", err)
		}
		again, err := store.GetOrCreateUserSettings(ctx, user.ID)
		if err != nil {
			t.Fatalf("GetOrCreateUserSettings failed: %v", err)
		}
		if again.ID != settings.ID || !again.EmailNotificationsEnabled {
			t.Errorf("settings not reused: %+v", again)
		}
	})

	t.Run("verification codes are replaced per phone", func(t *testing.T) {
		for _, hash := range []string{"first", "second"} {
			if err := store.SaveVerificationCode(ctx, &models.VerificationCode{Phone: "01099998888", CodeHash: hash, ExpiresAt: 1}); err != nil {
				t.Fatalf("SaveVerificationCode failed: %v", err)
			}
		}
		code, err := store.GetVerificationCode(ctx, "01099998888")
		if err != nil {
			t.Fatalf("GetVerificationCode failed: %v", err)
		}
		if code.CodeHash != "second" {
			t.Errorf("CodeHash = %q, want second", code.CodeHash)
		}
		if err := store.DeleteVerificationCode(ctx, "01099998888"); err != nil {
			t.Fatalf("DeleteVerificationCode failed: %v", err)
		}
		if _, err := store.GetVerificationCode(ctx, "01099998888"); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("code survived delete: %v", err)
		}
	})
}

func TestPaymentMethodDefaults(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	create := func(name string, isDefault bool) *models.PaymentMethod {
		t.Helper()
		pm := &models.PaymentMethod{UserID: "u1", BankName: name, AccountNumber: "111", AccountHolder: "Kim", IsDefault: isDefault}
		if err := store.CreatePaymentMethod(ctx, pm); err != nil {
			t.Fatalf("CreatePaymentMethod failed: %v", err)
		}
		return pm
	}
	defaults := func(userID string) []string {
		t.Helper()
		methods, err := store.ListPaymentMethods(ctx, userID)
		if err != nil {
			t.Fatalf("ListPaymentMethods failed: %v", err)
		}
		var ids []string
		for _, m := range methods {
			if m.IsDefault {
				ids = append(ids, m.ID)
			}
		}
		return ids
	}

	a := create("A", true)
	b := create("B", true)
	other := &models.PaymentMethod{UserID: "u2", BankName: "Z", AccountNumber: "9", AccountHolder: "Lee", IsDefault: true}
	if err := store.CreatePaymentMethod(ctx, other); err != nil {
		t.Fatalf("CreatePaymentMethod failed: %v", err)
	}

	if got := defaults("u1"); len(got) != 1 || got[0] != b.ID {
		t.Errorf("after creating B as default, defaults = %v, want [%s]", got, b.ID)
	}
	if got := defaults("u2"); len(got) != 1 {
		t.Errorf("other user's default was touched: %v", got)
	}

	c := create("C", false)
	if got := defaults("u1"); len(got) != 1 || got[0] != b.ID {
		t.Errorf("non-default create changed defaults: %v", got)
	}

	updated, err := store.SetDefaultPaymentMethod(ctx, "u1", a.ID)
	if err != nil {
		t.Fatalf("SetDefaultPaymentMethod failed: %v", err)
	}
	if !updated.IsDefault {
		t.Error("returned method is not default")
	}
	if _, err := store.SetDefaultPaymentMethod(ctx, "u1", a.ID); err != nil {
		t.Fatalf("SetDefaultPaymentMethod is not idempotent: %v", err)
	}
	if got := defaults("u1"); len(got) != 1 || got[0] != a.ID {
		t.Errorf("defaults = %v, want [%s]", got, a.ID)
	}

	methods, _ := store.ListPaymentMethods(ctx, "u1")
	if methods[0].ID != a.ID || methods[1].ID != c.ID {
		t.Errorf("list order: default first then newest, got %s, %s", methods[0].BankName, methods[1].BankName)
	}

	c.IsDefault = true
	if err := store.UpdatePaymentMethod(ctx, c); err != nil {
		t.Fatalf("UpdatePaymentMethod failed: %v", err)
	}
	if got := defaults("u1"); len(got) != 1 || got[0] != c.ID {
		t.Errorf("defaults = %v, want [%s]", got, c.ID)
	}

	if _, err := store.SetDefaultPaymentMethod(ctx, "u2", a.ID); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("SetDefaultPaymentMethod for another user's method = %v, want ErrNotFound", err)
	}
}
