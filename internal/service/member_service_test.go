package service

import (
	"context"
	"strings"
	"testing"

	"connectrpc.com/connect"

	"github.com/mmynk/totalmanager/internal/models"
	"github.com/mmynk/totalmanager/pkg/api"
)

func TestAddMember(t *testing.T) {
	env := setupTestServer(t)
	group := env.createGroup(t, owner, "Club")
	c := env.createCollection(t, owner, group.ID, "2025-07-01", 1000)

	m := env.addMember(t, owner, c.ID, "Kim Minji", "01012345678")
	if m.ID == "" || m.CollectionID != c.ID {
		t.Errorf("unexpected member: %+v", m)
	}
	if m.ReadAt != nil || m.PaidAt != nil {
		t.Errorf("new member should be unmarked: %+v", m)
	}

	_, err := env.members.AddMember(context.Background(), as(owner, &api.AddMemberRequest{
		CollectionID: c.ID,
		NewMember:    api.NewMember{DisplayName: ""},
	}))
	assertCode(t, err, connect.CodeInvalidArgument)

	for _, phone := range []string{"-010", "+8210", "1.5"} {
		_, err = env.members.AddMember(context.Background(), as(owner, &api.AddMemberRequest{
			CollectionID: c.ID,
			NewMember:    api.NewMember{DisplayName: "Choi", Phone: phone},
		}))
		assertCode(t, err, connect.CodeInvalidArgument)
	}

	_, err = env.members.AddMember(context.Background(), as(intruder, &api.AddMemberRequest{
		CollectionID: c.ID,
		NewMember:    api.NewMember{DisplayName: "Mallory"},
	}))
	assertCode(t, err, connect.CodePermissionDenied)
}

func TestBulkAddMembers_PartialFailure(t *testing.T) {
	env := setupTestServer(t)
	group := env.createGroup(t, owner, "Club")
	c := env.createCollection(t, owner, group.ID, "2025-07-01", 1000)
	ctx := context.Background()

	resp, err := env.members.BulkAddMembers(ctx, as(owner, &api.BulkAddMembersRequest{
		CollectionID: c.ID,
		Members: []*api.NewMember{
			{DisplayName: "Kim"},
			{DisplayName: ""},
			{DisplayName: "Park", Phone: "010-1234"},
			{DisplayName: "Lee", Phone: "01099998888"},
			{DisplayName: "Choi", Phone: "-010"},
			{DisplayName: "Jung", Phone: "+8210"},
			{DisplayName: "Kang", Phone: "1.5"},
		},
	}))
	if err != nil {
		t.Fatalf("BulkAddMembers failed: %v", err)
	}

	if resp.Msg.Created != 2 || resp.Msg.Failed != 5 {
		t.Errorf("created/failed: expected 2/5, got %d/%d", resp.Msg.Created, resp.Msg.Failed)
	}
	if len(resp.Msg.Members) != 2 {
		t.Fatalf("expected 2 members in response, got %d", len(resp.Msg.Members))
	}
	if len(resp.Msg.Errors) != 5 {
		t.Fatalf("expected 5 errors, got %d", len(resp.Msg.Errors))
	}
	if resp.Msg.Errors[0].Index != 1 || !strings.Contains(resp.Msg.Errors[0].Error, "display_name") {
		t.Errorf("first error mismatch: %+v", resp.Msg.Errors[0])
	}
	if resp.Msg.Errors[1].Index != 2 || resp.Msg.Errors[1].DisplayName != "Park" {
		t.Errorf("second error mismatch: %+v", resp.Msg.Errors[1])
	}
	for i, name := range []string{"Choi", "Jung", "Kang"} {
		e := resp.Msg.Errors[2+i]
		if e.Index != 4+i || e.DisplayName != name || !strings.Contains(e.Error, "digits only") {
			t.Errorf("error %d mismatch: %+v", 2+i, e)
		}
	}

	list, err := env.members.ListMembers(ctx, as(owner, &api.ListMembersRequest{CollectionID: c.ID}))
	if err != nil {
		t.Fatalf("ListMembers failed: %v", err)
	}
	if len(list.Msg.Members) != 2 {
		t.Errorf("expected 2 stored members, got %d", len(list.Msg.Members))
	}
}

func TestBulkAddMembers_Empty(t *testing.T) {
	env := setupTestServer(t)
	group := env.createGroup(t, owner, "Club")
	c := env.createCollection(t, owner, group.ID, "2025-07-01", 1000)

	_, err := env.members.BulkAddMembers(context.Background(), as(owner, &api.BulkAddMembersRequest{
		CollectionID: c.ID,
	}))
	assertCode(t, err, connect.CodeInvalidArgument)
}

func TestUpdateMember_Partial(t *testing.T) {
	env := setupTestServer(t)
	group := env.createGroup(t, owner, "Club")
	c := env.createCollection(t, owner, group.ID, "2025-07-01", 1000)
	m := env.addMember(t, owner, c.ID, "Kim", "01012345678")
	ctx := context.Background()

	resp, err := env.members.UpdateMember(ctx, as(owner, &api.UpdateMemberRequest{
		MemberID:    m.ID,
		DisplayName: ptr("Kim Minji"),
	}))
	if err != nil {
		t.Fatalf("UpdateMember failed: %v", err)
	}
	if resp.Msg.Member.DisplayName != "Kim Minji" || resp.Msg.Member.Phone != "01012345678" {
		t.Errorf("unexpected member after update: %+v", resp.Msg.Member)
	}

	_, err = env.members.UpdateMember(ctx, as(intruder, &api.UpdateMemberRequest{
		MemberID:    m.ID,
		DisplayName: ptr("Nope"),
	}))
	assertCode(t, err, connect.CodePermissionDenied)
}

func TestDeleteMember(t *testing.T) {
	env := setupTestServer(t)
	group := env.createGroup(t, owner, "Club")
	c := env.createCollection(t, owner, group.ID, "2025-07-01", 1000)
	m := env.addMember(t, owner, c.ID, "Kim", "")
	ctx := context.Background()

	if _, err := env.members.DeleteMember(ctx, as(owner, &api.DeleteMemberRequest{MemberID: m.ID})); err != nil {
		t.Fatalf("DeleteMember failed: %v", err)
	}
	_, err := env.members.DeleteMember(ctx, as(owner, &api.DeleteMemberRequest{MemberID: m.ID}))
	assertCode(t, err, connect.CodeNotFound)
}

func TestMarkReadAndPaid(t *testing.T) {
	env := setupTestServer(t)
	group := env.createGroup(t, owner, "Club")
	c := env.createCollection(t, owner, group.ID, "2025-07-01", 1000)
	m := env.addMember(t, owner, c.ID, "Kim", "")
	ctx := context.Background()

	read, err := env.members.MarkRead(ctx, as(owner, &api.MarkReadRequest{MemberID: m.ID}))
	if err != nil {
		t.Fatalf("MarkRead failed: %v", err)
	}
	if read.Msg.Member.ReadAt == nil || *read.Msg.Member.ReadAt != testNow.Unix() {
		t.Errorf("read_at: expected %d, got %v", testNow.Unix(), read.Msg.Member.ReadAt)
	}
	if read.Msg.Member.PaidAt != nil {
		t.Error("paid_at should still be unset")
	}

	paid, err := env.members.MarkPaid(ctx, as(owner, &api.MarkPaidRequest{MemberID: m.ID}))
	if err != nil {
		t.Fatalf("MarkPaid failed: %v", err)
	}
	if paid.Msg.Member.PaidAt == nil || paid.Msg.Member.ReadAt == nil {
		t.Errorf("both marks expected: %+v", paid.Msg.Member)
	}

	// Marking again logs again
	if _, err := env.members.MarkPaid(ctx, as(owner, &api.MarkPaidRequest{MemberID: m.ID})); err != nil {
		t.Fatalf("second MarkPaid failed: %v", err)
	}

	logs, err := env.store.ListEventLogsByCollection(ctx, c.ID)
	if err != nil {
		t.Fatalf("ListEventLogsByCollection failed: %v", err)
	}
	counts := map[models.LogType]int{}
	for _, l := range logs {
		counts[l.Type]++
		switch l.Type {
		case models.LogTypeRead:
			if l.Message != "Kim marked as read" {
				t.Errorf("read message: %q", l.Message)
			}
		case models.LogTypePaidMarked:
			if l.Message != "Kim marked as paid" {
				t.Errorf("paid message: %q", l.Message)
			}
		}
	}
	if counts[models.LogTypeRead] != 1 || counts[models.LogTypePaidMarked] != 2 {
		t.Errorf("log counts mismatch: %v", counts)
	}

	_, err = env.members.MarkRead(ctx, as(intruder, &api.MarkReadRequest{MemberID: m.ID}))
	assertCode(t, err, connect.CodePermissionDenied)
}
