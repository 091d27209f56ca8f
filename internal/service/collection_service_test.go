package service

import (
	"context"
	"testing"

	"connectrpc.com/connect"

	"github.com/mmynk/totalmanager/pkg/api"
)

func TestCreateCollection_Status(t *testing.T) {
	env := setupTestServer(t)
	group := env.createGroup(t, owner, "Club")

	tests := []struct {
		dueDate string
		want    string
	}{
		{"2025-05-30", "closed"},
		{"2025-06-01", "closed"},
		{"2025-06-02", "due_soon"},
		{"2025-06-04", "due_soon"},
		{"2025-06-05", "active"},
	}
	for _, tt := range tests {
		t.Run(tt.dueDate, func(t *testing.T) {
			c := env.createCollection(t, owner, group.ID, tt.dueDate, 1000)
			if c.Status != tt.want {
				t.Errorf("status for %s: expected %q, got %q", tt.dueDate, tt.want, c.Status)
			}
			if c.DueDate != tt.dueDate {
				t.Errorf("due_date: expected %s, got %s", tt.dueDate, c.DueDate)
			}
		})
	}
}

func TestCreateCollection_Invalid(t *testing.T) {
	env := setupTestServer(t)
	group := env.createGroup(t, owner, "Club")

	base := func() *api.CreateCollectionRequest {
		return &api.CreateCollectionRequest{
			GroupID:      group.ID,
			Title:        "Dues",
			Amount:       1000,
			DueDate:      "2025-07-01",
			PaymentType:  "link",
			PaymentValue: "https://pay.example/abc",
		}
	}

	tests := []struct {
		name   string
		mutate func(*api.CreateCollectionRequest)
	}{
		{"bad date", func(r *api.CreateCollectionRequest) { r.DueDate = "07/01/2025" }},
		{"unknown payment type", func(r *api.CreateCollectionRequest) { r.PaymentType = "cash" }},
		{"negative amount", func(r *api.CreateCollectionRequest) { r.Amount = -1 }},
		{"missing title", func(r *api.CreateCollectionRequest) { r.Title = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := base()
			tt.mutate(req)
			_, err := env.collections.CreateCollection(context.Background(), as(owner, req))
			assertCode(t, err, connect.CodeInvalidArgument)
		})
	}
}

func TestCreateCollection_ForeignGroup(t *testing.T) {
	env := setupTestServer(t)
	group := env.createGroup(t, owner, "Club")

	_, err := env.collections.CreateCollection(context.Background(), as(intruder, &api.CreateCollectionRequest{
		GroupID:      group.ID,
		Title:        "Sneaky",
		Amount:       1,
		DueDate:      "2025-07-01",
		PaymentType:  "bank",
		PaymentValue: "x",
	}))
	assertCode(t, err, connect.CodePermissionDenied)
}

func TestUpdateCollection_Partial(t *testing.T) {
	env := setupTestServer(t)
	group := env.createGroup(t, owner, "Club")
	c := env.createCollection(t, owner, group.ID, "2025-07-01", 30000)
	ctx := context.Background()

	// Only the amount; status and everything else stay
	resp, err := env.collections.UpdateCollection(ctx, as(owner, &api.UpdateCollectionRequest{
		CollectionID: c.ID,
		Amount:       ptr(int64(45000)),
	}))
	if err != nil {
		t.Fatalf("UpdateCollection failed: %v", err)
	}
	got := resp.Msg.Collection
	if got.Amount != 45000 {
		t.Errorf("amount: expected 45000, got %d", got.Amount)
	}
	if got.Title != c.Title || got.DueDate != c.DueDate || got.Status != "active" || got.PaymentValue != c.PaymentValue {
		t.Errorf("unexpected changes: %+v", got)
	}

	// A new due date re-derives the status
	resp, err = env.collections.UpdateCollection(ctx, as(owner, &api.UpdateCollectionRequest{
		CollectionID: c.ID,
		DueDate:      ptr("2025-06-03"),
		PaymentType:  ptr("LINK"),
	}))
	if err != nil {
		t.Fatalf("UpdateCollection failed: %v", err)
	}
	if resp.Msg.Collection.Status != "due_soon" {
		t.Errorf("status: expected due_soon, got %q", resp.Msg.Collection.Status)
	}
	if resp.Msg.Collection.PaymentType != "link" {
		t.Errorf("payment_type: expected link, got %q", resp.Msg.Collection.PaymentType)
	}

	get, err := env.collections.GetCollection(ctx, as(owner, &api.GetCollectionRequest{CollectionID: c.ID}))
	if err != nil {
		t.Fatalf("GetCollection failed: %v", err)
	}
	if get.Msg.Collection.Amount != 45000 || get.Msg.Collection.DueDate != "2025-06-03" {
		t.Errorf("persisted collection mismatch: %+v", get.Msg.Collection)
	}
}

func TestListCollections(t *testing.T) {
	env := setupTestServer(t)
	group := env.createGroup(t, owner, "Club")
	other := env.createGroup(t, owner, "Other")
	env.createCollection(t, owner, group.ID, "2025-07-01", 1)
	env.createCollection(t, owner, group.ID, "2025-07-02", 2)
	env.createCollection(t, owner, other.ID, "2025-07-03", 3)

	resp, err := env.collections.ListCollections(context.Background(), as(owner, &api.ListCollectionsRequest{GroupID: group.ID}))
	if err != nil {
		t.Fatalf("ListCollections failed: %v", err)
	}
	if len(resp.Msg.Collections) != 2 {
		t.Errorf("expected 2 collections, got %d", len(resp.Msg.Collections))
	}
}

func TestDeleteCollection(t *testing.T) {
	env := setupTestServer(t)
	group := env.createGroup(t, owner, "Club")
	c := env.createCollection(t, owner, group.ID, "2025-07-01", 1)
	m := env.addMember(t, owner, c.ID, "Kim", "")
	ctx := context.Background()

	_, err := env.collections.DeleteCollection(ctx, as(intruder, &api.DeleteCollectionRequest{CollectionID: c.ID}))
	assertCode(t, err, connect.CodePermissionDenied)

	if _, err := env.collections.DeleteCollection(ctx, as(owner, &api.DeleteCollectionRequest{CollectionID: c.ID})); err != nil {
		t.Fatalf("DeleteCollection failed: %v", err)
	}

	_, err = env.members.MarkRead(ctx, as(owner, &api.MarkReadRequest{MemberID: m.ID}))
	assertCode(t, err, connect.CodeNotFound)
}

func TestGetCollectionSummary(t *testing.T) {
	env := setupTestServer(t)
	group := env.createGroup(t, owner, "Club")
	c := env.createCollection(t, owner, group.ID, "2025-07-01", 1000)
	ctx := context.Background()

	// No members yet
	resp, err := env.collections.GetCollectionSummary(ctx, as(owner, &api.GetCollectionSummaryRequest{CollectionID: c.ID}))
	if err != nil {
		t.Fatalf("GetCollectionSummary failed: %v", err)
	}
	if resp.Msg.Summary.TotalMembers != 0 || resp.Msg.Summary.CurrentAmount != 0 {
		t.Errorf("empty summary mismatch: %+v", resp.Msg.Summary)
	}

	var members []*api.Member
	for _, name := range []string{"A", "B", "C"} {
		members = append(members, env.addMember(t, owner, c.ID, name, ""))
	}
	if _, err := env.members.MarkPaid(ctx, as(owner, &api.MarkPaidRequest{MemberID: members[0].ID})); err != nil {
		t.Fatalf("MarkPaid failed: %v", err)
	}
	for _, m := range members[:2] {
		if _, err := env.members.MarkRead(ctx, as(owner, &api.MarkReadRequest{MemberID: m.ID})); err != nil {
			t.Fatalf("MarkRead failed: %v", err)
		}
	}

	resp, err = env.collections.GetCollectionSummary(ctx, as(owner, &api.GetCollectionSummaryRequest{CollectionID: c.ID}))
	if err != nil {
		t.Fatalf("GetCollectionSummary failed: %v", err)
	}
	s := resp.Msg.Summary
	if s.TotalMembers != 3 || s.ReadMembers != 2 || s.PaidMembers != 1 {
		t.Errorf("counts mismatch: %+v", s)
	}
	// floor(1/3 × 1000)
	if s.CurrentAmount != 333 {
		t.Errorf("current_amount: expected 333, got %d", s.CurrentAmount)
	}
	if s.Title != "Field trip" || s.PaymentType != "bank" {
		t.Errorf("collection fields missing: %+v", s)
	}
}
