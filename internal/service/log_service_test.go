package service

import (
	"context"
	"testing"

	"connectrpc.com/connect"

	"github.com/mmynk/totalmanager/pkg/api"
)

// seedLogs sends a notice on two collections and marks one member, giving
// 7 logs: 2 notice_sent, 4 reminder_scheduled and 1 read.
func seedLogs(t *testing.T, env *testEnv) (first, second *api.Collection) {
	t.Helper()
	ctx := context.Background()
	group := env.createGroup(t, owner, "Club")
	first = env.createCollection(t, owner, group.ID, "2025-07-01", 1000)
	second = env.createCollection(t, owner, group.ID, "2025-08-01", 2000)

	for _, c := range []*api.Collection{first, second} {
		if _, err := env.notices.SendNotice(ctx, as(owner, &api.SendNoticeRequest{CollectionID: c.ID})); err != nil {
			t.Fatalf("SendNotice failed: %v", err)
		}
	}
	m := env.addMember(t, owner, first.ID, "Kim", "")
	if _, err := env.members.MarkRead(ctx, as(owner, &api.MarkReadRequest{MemberID: m.ID})); err != nil {
		t.Fatalf("MarkRead failed: %v", err)
	}
	return first, second
}

func TestListCollectionLogs(t *testing.T) {
	env := setupTestServer(t)
	first, _ := seedLogs(t, env)
	ctx := context.Background()

	resp, err := env.logs.ListCollectionLogs(ctx, as(owner, &api.ListCollectionLogsRequest{CollectionID: first.ID}))
	if err != nil {
		t.Fatalf("ListCollectionLogs failed: %v", err)
	}
	if len(resp.Msg.Logs) != 4 {
		t.Errorf("expected 4 logs, got %d", len(resp.Msg.Logs))
	}

	_, err = env.logs.ListCollectionLogs(ctx, as(intruder, &api.ListCollectionLogsRequest{CollectionID: first.ID}))
	assertCode(t, err, connect.CodePermissionDenied)
}

func TestListLogs(t *testing.T) {
	env := setupTestServer(t)
	first, _ := seedLogs(t, env)
	ctx := context.Background()

	t.Run("defaults", func(t *testing.T) {
		resp, err := env.logs.ListLogs(ctx, as(owner, &api.ListLogsRequest{}))
		if err != nil {
			t.Fatalf("ListLogs failed: %v", err)
		}
		if resp.Msg.Total != 7 || len(resp.Msg.Logs) != 7 {
			t.Errorf("expected 7 logs, got %d (total %d)", len(resp.Msg.Logs), resp.Msg.Total)
		}
		if resp.Msg.Limit != DefaultLogLimit {
			t.Errorf("limit: expected %d, got %d", DefaultLogLimit, resp.Msg.Limit)
		}
	})

	t.Run("paging", func(t *testing.T) {
		seen := map[string]bool{}
		for offset := 0; offset < 7; offset += 3 {
			resp, err := env.logs.ListLogs(ctx, as(owner, &api.ListLogsRequest{Limit: 3, Offset: offset}))
			if err != nil {
				t.Fatalf("ListLogs failed: %v", err)
			}
			if resp.Msg.Total != 7 {
				t.Errorf("total: expected 7, got %d", resp.Msg.Total)
			}
			for _, l := range resp.Msg.Logs {
				if seen[l.ID] {
					t.Errorf("log %s returned twice", l.ID)
				}
				seen[l.ID] = true
			}
		}
		if len(seen) != 7 {
			t.Errorf("expected 7 distinct logs across pages, got %d", len(seen))
		}
	})

	t.Run("filters", func(t *testing.T) {
		resp, err := env.logs.ListLogs(ctx, as(owner, &api.ListLogsRequest{Type: "Reminder_Scheduled"}))
		if err != nil {
			t.Fatalf("ListLogs failed: %v", err)
		}
		if resp.Msg.Total != 4 {
			t.Errorf("reminder_scheduled total: expected 4, got %d", resp.Msg.Total)
		}

		resp, err = env.logs.ListLogs(ctx, as(owner, &api.ListLogsRequest{CollectionID: first.ID, Type: "read"}))
		if err != nil {
			t.Fatalf("ListLogs failed: %v", err)
		}
		if resp.Msg.Total != 1 || resp.Msg.Logs[0].Message != "Kim marked as read" {
			t.Errorf("read filter mismatch: %+v", resp.Msg)
		}
	})

	t.Run("invalid", func(t *testing.T) {
		_, err := env.logs.ListLogs(ctx, as(owner, &api.ListLogsRequest{Type: "deleted"}))
		assertCode(t, err, connect.CodeInvalidArgument)

		_, err = env.logs.ListLogs(ctx, as(owner, &api.ListLogsRequest{Limit: 101}))
		assertCode(t, err, connect.CodeInvalidArgument)

		_, err = env.logs.ListLogs(ctx, as(intruder, &api.ListLogsRequest{CollectionID: first.ID}))
		assertCode(t, err, connect.CodePermissionDenied)
	})

	t.Run("other user sees nothing", func(t *testing.T) {
		resp, err := env.logs.ListLogs(ctx, as(intruder, &api.ListLogsRequest{}))
		if err != nil {
			t.Fatalf("ListLogs failed: %v", err)
		}
		if resp.Msg.Total != 0 || len(resp.Msg.Logs) != 0 {
			t.Errorf("expected no logs, got %d", resp.Msg.Total)
		}
	})
}

func TestGetLogStats(t *testing.T) {
	env := setupTestServer(t)
	seedLogs(t, env)

	resp, err := env.logs.GetLogStats(context.Background(), as(owner, &api.GetLogStatsRequest{}))
	if err != nil {
		t.Fatalf("GetLogStats failed: %v", err)
	}

	if resp.Msg.TotalLogs != 7 {
		t.Errorf("total: expected 7, got %d", resp.Msg.TotalLogs)
	}
	want := map[string]int64{
		"notice_sent":        2,
		"read":               1,
		"paid_marked":        0,
		"reminder_scheduled": 4,
		"reminder_sent":      0,
	}
	for typ, n := range want {
		if got, ok := resp.Msg.ByType[typ]; !ok || got != n {
			t.Errorf("by_type[%s]: expected %d, got %d (present %v)", typ, n, got, ok)
		}
	}
	if len(resp.Msg.RecentActivity) != 1 || resp.Msg.RecentActivity[0].Count != 7 {
		t.Errorf("recent activity mismatch: %+v", resp.Msg.RecentActivity)
	}
	if resp.Msg.RecentActivity[0].Date != testNow.Format("2006-01-02") {
		t.Errorf("activity date: %s", resp.Msg.RecentActivity[0].Date)
	}
}
