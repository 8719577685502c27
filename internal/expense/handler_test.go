package expense

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Raghavendrawissen/splitapp-client/internal/models"
	"github.com/Raghavendrawissen/splitapp-client/internal/storage"
	"github.com/Raghavendrawissen/splitapp-client/pkg/middleware"
)

func newTestServer(t *testing.T, store storage.Store) *httptest.Server {
	t.Helper()
	requireAuth := middleware.RequireAuth(func(token string) (string, string, error) {
		return token, token + "@example.com", nil
	})
	handler := NewHandler(NewService(store))
	server := httptest.NewServer(requireAuth(handler.Routes()))
	t.Cleanup(server.Close)
	return server
}

func doRequest(t *testing.T, server *httptest.Server, method, path, token, body string) *http.Response {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, method, server.URL+path, strings.NewReader(body))
	if err != nil {
		t.Fatalf("failed to build request: %v", err)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func TestCreateHandler(t *testing.T) {
	store := newTestStore(t)
	seedUser(t, store, "u1", "alice@example.com", "Alice")
	seedUser(t, store, "u2", "bob@example.com", "Bob")
	seedGroup(t, store, "g1", "u1")
	server := newTestServer(t, store)

	t.Run("creates expense", func(t *testing.T) {
		body := `{"group_id":"g1","description":"lunch","amount":20,"participants":[{"user_id":"u1","share_amount":20}]}`
		resp := doRequest(t, server, http.MethodPost, "/", "u1", body)
		if resp.StatusCode != http.StatusCreated {
			t.Errorf("expected 201, got %d", resp.StatusCode)
		}
	})

	t.Run("missing token", func(t *testing.T) {
		resp := doRequest(t, server, http.MethodPost, "/", "", `{"group_id":"g1","description":"lunch","amount":20}`)
		if resp.StatusCode != http.StatusUnauthorized {
			t.Errorf("expected 401, got %d", resp.StatusCode)
		}
	})

	t.Run("non-member is forbidden", func(t *testing.T) {
		resp := doRequest(t, server, http.MethodPost, "/", "u2", `{"group_id":"g1","description":"lunch","amount":20}`)
		if resp.StatusCode != http.StatusForbidden {
			t.Errorf("expected 403, got %d", resp.StatusCode)
		}
	})

	t.Run("validation", func(t *testing.T) {
		cases := []struct {
			name string
			body string
		}{
			{"missing group", `{"description":"lunch","amount":20}`},
			{"missing description", `{"group_id":"g1","amount":20}`},
			{"zero amount", `{"group_id":"g1","description":"lunch","amount":0}`},
			{"negative share", `{"group_id":"g1","description":"lunch","amount":20,"participants":[{"user_id":"u1","share_amount":-1}]}`},
			{"shares exceed amount", `{"group_id":"g1","description":"lunch","amount":20,"participants":[{"user_id":"u1","share_amount":15},{"user_id":"u2","share_amount":15}]}`},
			{"malformed body", `{`},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				resp := doRequest(t, server, http.MethodPost, "/", "u1", tc.body)
				if resp.StatusCode != http.StatusBadRequest {
					t.Errorf("expected 400, got %d", resp.StatusCode)
				}
			})
		}
	})
}

func TestListHandler(t *testing.T) {
	store := newTestStore(t)
	seedUser(t, store, "u1", "alice@example.com", "Alice")
	seedGroup(t, store, "g1", "u1")
	now := time.Now().UTC()
	err := store.CreateExpense(context.Background(), &models.Expense{
		ID: "e1", GroupID: "g1", Description: "lunch", Amount: 20, PaidBy: "u1",
		CreatedAt: now, UpdatedAt: now,
	})
	if err != nil {
		t.Fatalf("failed to create expense: %v", err)
	}
	server := newTestServer(t, store)

	resp := doRequest(t, server, http.MethodGet, "/", "u1", "")
	if resp.StatusCode != http.StatusOK {
		t.Errorf("expected 200, got %d", resp.StatusCode)
	}
}
