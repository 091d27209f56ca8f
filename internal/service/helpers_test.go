package service

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"connectrpc.com/connect"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/mmynk/totalmanager/internal/auth"
	"github.com/mmynk/totalmanager/internal/middleware"
	"github.com/mmynk/totalmanager/internal/notify"
	"github.com/mmynk/totalmanager/internal/storage/sqlite"
	"github.com/mmynk/totalmanager/pkg/api"
	"github.com/mmynk/totalmanager/pkg/api/apiconnect"
)

const (
	owner    = "owner-1"
	intruder = "intruder-1"

	testUserHeader = "X-Test-User"
)

// testNow is the fixed server clock of every service test.
var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

// recorder is a notifier that keeps every message.
type recorder struct {
	mu       sync.Mutex
	messages []notify.Message
}

func (r *recorder) Notify(_ context.Context, msg notify.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages = append(r.messages, msg)
	return nil
}

func (r *recorder) kind(kind string) []notify.Message {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []notify.Message
	for _, m := range r.messages {
		if m.Kind == kind {
			out = append(out, m)
		}
	}
	return out
}

type testEnv struct {
	store    *sqlite.SQLiteStore
	notifier *recorder

	auth        apiconnect.AuthServiceClient
	groups      apiconnect.GroupServiceClient
	collections apiconnect.CollectionServiceClient
	members     apiconnect.MemberServiceClient
	notices     apiconnect.NoticeServiceClient
	logs        apiconnect.LogServiceClient
	reminders   apiconnect.ReminderServiceClient
	settings    apiconnect.SettingsServiceClient
}

// testUser puts the user named by the X-Test-User header into the context,
// standing in for the JWT interceptor.
func testUser() connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			if userID := req.Header().Get(testUserHeader); userID != "" {
				ctx = middleware.WithUser(ctx, userID, "")
			}
			return next(ctx, req)
		}
	}
}

// setupTestServer serves every service over httptest backed by a fresh
// SQLite database.
func setupTestServer(t *testing.T) *testEnv {
	t.Helper()

	store, err := sqlite.New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}

	rec := &recorder{}
	opts := []Option{
		WithClock(func() time.Time { return testNow }),
		WithNotifier(rec),
		WithMetrics(middleware.NewMetrics(prometheus.NewRegistry())),
	}

	jwtManager := auth.NewJWTManager("test-secret", time.Hour)
	authenticator := auth.NewPhoneAuthenticator(store, 5*time.Minute)

	handlerOpts := connect.WithInterceptors(testUser())
	mux := http.NewServeMux()
	mux.Handle(apiconnect.NewAuthServiceHandler(NewAuthService(authenticator, authenticator, jwtManager, store, opts...), handlerOpts))
	mux.Handle(apiconnect.NewGroupServiceHandler(NewGroupService(store, opts...), handlerOpts))
	mux.Handle(apiconnect.NewCollectionServiceHandler(NewCollectionService(store, opts...), handlerOpts))
	mux.Handle(apiconnect.NewMemberServiceHandler(NewMemberService(store, opts...), handlerOpts))
	mux.Handle(apiconnect.NewNoticeServiceHandler(NewNoticeService(store, opts...), handlerOpts))
	mux.Handle(apiconnect.NewLogServiceHandler(NewLogService(store, opts...), handlerOpts))
	mux.Handle(apiconnect.NewReminderServiceHandler(NewReminderService(store, opts...), handlerOpts))
	mux.Handle(apiconnect.NewSettingsServiceHandler(NewSettingsService(store, opts...), handlerOpts))

	server := httptest.NewServer(mux)
	t.Cleanup(func() {
		server.Close()
		store.Close()
	})

	client := server.Client()
	return &testEnv{
		store:       store,
		notifier:    rec,
		auth:        apiconnect.NewAuthServiceClient(client, server.URL),
		groups:      apiconnect.NewGroupServiceClient(client, server.URL),
		collections: apiconnect.NewCollectionServiceClient(client, server.URL),
		members:     apiconnect.NewMemberServiceClient(client, server.URL),
		notices:     apiconnect.NewNoticeServiceClient(client, server.URL),
		logs:        apiconnect.NewLogServiceClient(client, server.URL),
		reminders:   apiconnect.NewReminderServiceClient(client, server.URL),
		settings:    apiconnect.NewSettingsServiceClient(client, server.URL),
	}
}

// as builds a request made by userID.
func as[T any](userID string, msg *T) *connect.Request[T] {
	req := connect.NewRequest(msg)
	req.Header().Set(testUserHeader, userID)
	return req
}

func ptr[T any](v T) *T { return &v }

func assertCode(t *testing.T, err error, want connect.Code) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %v error, got nil", want)
	}
	var connectErr *connect.Error
	if !errors.As(err, &connectErr) {
		t.Fatalf("expected connect.Error, got %T", err)
	}
	if connectErr.Code() != want {
		t.Errorf("expected %v, got %v (%v)", want, connectErr.Code(), connectErr.Message())
	}
}

func (e *testEnv) createGroup(t *testing.T, userID, name string) *api.Group {
	t.Helper()
	resp, err := e.groups.CreateGroup(context.Background(), as(userID, &api.CreateGroupRequest{
		Name: name,
		Type: "parents",
	}))
	if err != nil {
		t.Fatalf("CreateGroup failed: %v", err)
	}
	return resp.Msg.Group
}

func (e *testEnv) createCollection(t *testing.T, userID, groupID, dueDate string, amount int64) *api.Collection {
	t.Helper()
	resp, err := e.collections.CreateCollection(context.Background(), as(userID, &api.CreateCollectionRequest{
		GroupID:      groupID,
		Title:        "Field trip",
		Amount:       amount,
		DueDate:      dueDate,
		PaymentType:  "bank",
		PaymentValue: "Shinhan 110-123-456789",
	}))
	if err != nil {
		t.Fatalf("CreateCollection failed: %v", err)
	}
	return resp.Msg.Collection
}

func (e *testEnv) addMember(t *testing.T, userID, collectionID, name, phone string) *api.Member {
	t.Helper()
	resp, err := e.members.AddMember(context.Background(), as(userID, &api.AddMemberRequest{
		CollectionID: collectionID,
		NewMember:    api.NewMember{DisplayName: name, Phone: phone},
	}))
	if err != nil {
		t.Fatalf("AddMember failed: %v", err)
	}
	return resp.Msg.Member
}
