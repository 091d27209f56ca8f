package server

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"connectrpc.com/connect"

	"github.com/mmynk/totalmanager/internal/auth"
	"github.com/mmynk/totalmanager/internal/storage/sqlite"
	"github.com/mmynk/totalmanager/pkg/api"
	"github.com/mmynk/totalmanager/pkg/api/apiconnect"
)

func setupServer(t *testing.T, cors bool) (*httptest.Server, *sqlite.SQLiteStore) {
	t.Helper()

	store, err := sqlite.New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}

	authenticator := auth.NewPhoneAuthenticator(store, 5*time.Minute)
	server := httptest.NewServer(NewRouter(Deps{
		Store:         store,
		JWTManager:    auth.NewJWTManager("test-secret", time.Hour),
		Authenticator: authenticator,
		CORS:          cors,
	}))
	t.Cleanup(func() {
		server.Close()
		store.Close()
	})
	return server, store
}

func TestHealth(t *testing.T) {
	server, store := setupServer(t, false)

	resp, err := http.Get(server.URL + "/health")
	if err != nil {
		t.Fatalf("GET /health failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status: expected 200, got %d", resp.StatusCode)
	}
	var body healthResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if body.Status != "ok" {
		t.Errorf("status: expected ok, got %q", body.Status)
	}

	store.Close()
	resp2, err := http.Get(server.URL + "/health")
	if err != nil {
		t.Fatalf("GET /health failed: %v", err)
	}
	defer resp2.Body.Close()
	if resp2.StatusCode != http.StatusServiceUnavailable {
		t.Errorf("status after close: expected 503, got %d", resp2.StatusCode)
	}
}

func TestAuthenticatedFlow(t *testing.T) {
	server, _ := setupServer(t, false)
	ctx := context.Background()

	authClient := apiconnect.NewAuthServiceClient(server.Client(), server.URL)
	groupClient := apiconnect.NewGroupServiceClient(server.Client(), server.URL)

	// Without a token the private services refuse
	_, err := groupClient.ListGroups(ctx, connect.NewRequest(&api.ListGroupsRequest{}))
	if code := connect.CodeOf(err); code != connect.CodeUnauthenticated {
		t.Fatalf("expected Unauthenticated, got %v", code)
	}

	signup, err := authClient.Signup(ctx, connect.NewRequest(&api.SignupRequest{
		Name:  "Kim Minji",
		Phone: "01012345678",
	}))
	if err != nil {
		t.Fatalf("Signup failed: %v", err)
	}
	token := signup.Msg.AccessToken

	withToken := func(req interface{ Header() http.Header }) {
		req.Header().Set("Authorization", "Bearer "+token)
	}

	create := connect.NewRequest(&api.CreateGroupRequest{Name: "Class 3 Parents", Type: "parents"})
	withToken(create)
	created, err := groupClient.CreateGroup(ctx, create)
	if err != nil {
		t.Fatalf("CreateGroup failed: %v", err)
	}
	if created.Msg.Group.OwnerID != signup.Msg.User.ID {
		t.Errorf("owner: expected %s, got %s", signup.Msg.User.ID, created.Msg.Group.OwnerID)
	}

	me := connect.NewRequest(&api.GetCurrentUserRequest{})
	withToken(me)
	user, err := authClient.GetCurrentUser(ctx, me)
	if err != nil {
		t.Fatalf("GetCurrentUser failed: %v", err)
	}
	if user.Msg.ID != signup.Msg.User.ID {
		t.Errorf("current user: expected %s, got %s", signup.Msg.User.ID, user.Msg.ID)
	}

	bad := connect.NewRequest(&api.ListGroupsRequest{})
	bad.Header().Set("Authorization", "Bearer not-a-token")
	_, err = groupClient.ListGroups(ctx, bad)
	var connectErr *connect.Error
	if !errors.As(err, &connectErr) || connectErr.Code() != connect.CodeUnauthenticated {
		t.Errorf("expected Unauthenticated for a bad token, got %v", err)
	}
}

func TestMetrics(t *testing.T) {
	server, _ := setupServer(t, false)

	authClient := apiconnect.NewAuthServiceClient(server.Client(), server.URL)
	if _, err := authClient.LoginPhone(context.Background(), connect.NewRequest(&api.LoginPhoneRequest{
		Phone: "01099999999",
	})); connect.CodeOf(err) != connect.CodeNotFound {
		t.Fatalf("expected NotFound, got %v", err)
	}

	resp, err := http.Get(server.URL + "/metrics")
	if err != nil {
		t.Fatalf("GET /metrics failed: %v", err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}

	for _, want := range []string{
		`totalmanager_rpc_requests_total{code="not_found",procedure="/totalmanager.v1.AuthService/LoginPhone"} 1`,
		"go_goroutines",
	} {
		if !strings.Contains(string(body), want) {
			t.Errorf("metrics output missing %q", want)
		}
	}
}

func TestCORS(t *testing.T) {
	server, _ := setupServer(t, true)

	req, err := http.NewRequest(http.MethodOptions, server.URL+"/totalmanager.v1.GroupService/ListGroups", nil)
	if err != nil {
		t.Fatalf("NewRequest failed: %v", err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("OPTIONS failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("status: expected 200, got %d", resp.StatusCode)
	}
	if got := resp.Header.Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("Access-Control-Allow-Origin: %q", got)
	}
}
