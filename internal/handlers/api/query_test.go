package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"frictionless/internal/models"
	"frictionless/internal/nav"
	"frictionless/internal/recent"
)

// testApp builds a Fiber app with the query routes and a middleware that
// injects the given user, standing in for the session auth stack.
func testApp(t *testing.T, user *models.User, recentStore *recent.Store) *fiber.App {
	t.Helper()

	registry, err := nav.NewRegistry([]nav.PageDescriptor{
		{Label: "Dashboard", Route: "/", Keywords: []string{"home", "overview"}},
		{Label: "Tasks", Route: "/tasks", Keywords: []string{"todo", "checklist"}, Description: "Your readiness checklist"},
		{Label: "Settings", Route: "/settings", Keywords: []string{"preferences", "account"}},
		{Label: "Billing", Route: "/settings/billing", Keywords: []string{"invoice", "payment", "plan"}},
	})
	if err != nil {
		t.Fatalf("NewRegistry failed: %v", err)
	}

	app := fiber.New()
	app.Use(func(c fiber.Ctx) error {
		if user != nil {
			c.Locals("user", user)
		}
		return c.Next()
	})

	handler := NewQueryHandler(registry, recentStore)
	app.Post("/api/query", handler.Query)
	return app
}

func testUser() *models.User {
	orgID := uuid.New()
	return &models.User{ID: uuid.New(), Sub: "test|user", OrganizationID: &orgID}
}

func postQuery(t *testing.T, app *fiber.App, query string) (*http.Response, models.QueryResponse) {
	t.Helper()

	body, _ := json.Marshal(map[string]string{"query": query})
	req, _ := http.NewRequest("POST", "/api/query", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}

	raw, _ := io.ReadAll(resp.Body)
	var envelope struct {
		Status string               `json:"status"`
		Data   models.QueryResponse `json:"data"`
	}
	if resp.StatusCode == http.StatusOK {
		if err := json.Unmarshal(raw, &envelope); err != nil {
			t.Fatalf("failed to decode response %s: %v", raw, err)
		}
	}
	return resp, envelope.Data
}

func TestQueryNavigationIntent(t *testing.T) {
	recentStore := recent.NewMemory()
	user := testUser()
	app := testApp(t, user, recentStore)

	resp, data := postQuery(t, app, "take me to the billing section")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if data.Action != models.ActionNavigate {
		t.Fatalf("expected action %q, got %q", models.ActionNavigate, data.Action)
	}
	if data.Route != "/settings/billing" {
		t.Errorf("expected route /settings/billing, got %q", data.Route)
	}
	if data.Target != "billing" {
		t.Errorf("expected target %q, got %q", "billing", data.Target)
	}

	// Navigation should land the page on the recent list.
	entries, err := recentStore.List(user.ID)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(entries) != 1 || entries[0].Route != "/settings/billing" {
		t.Errorf("expected billing in recent pages, got %+v", entries)
	}
}

func TestQueryPlainSearchReturnsResults(t *testing.T) {
	app := testApp(t, testUser(), recent.NewMemory())

	resp, data := postQuery(t, app, "checklist")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if data.Action != models.ActionResults {
		t.Fatalf("expected action %q, got %q", models.ActionResults, data.Action)
	}
	if len(data.Results) == 0 {
		t.Fatal("expected at least one result")
	}
	if data.Results[0].Label != "Tasks" {
		t.Errorf("expected Tasks first, got %q", data.Results[0].Label)
	}
}

func TestQueryNoMatchFallsBackToAsk(t *testing.T) {
	app := testApp(t, testUser(), recent.NewMemory())

	resp, data := postQuery(t, app, "what should my runway look like")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if data.Action != models.ActionAsk {
		t.Fatalf("expected action %q, got %q", models.ActionAsk, data.Action)
	}
	if len(data.Results) != 0 {
		t.Errorf("expected no results, got %d", len(data.Results))
	}
}

func TestQueryTypoGetsSuggestion(t *testing.T) {
	app := testApp(t, testUser(), recent.NewMemory())

	resp, data := postQuery(t, app, "biling")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if data.Action != models.ActionAsk {
		t.Fatalf("expected action %q, got %q", models.ActionAsk, data.Action)
	}
	if data.Suggestion == nil || data.Suggestion.Label != "Billing" {
		t.Errorf("expected Billing suggestion, got %+v", data.Suggestion)
	}
}

func TestQueryTooLong(t *testing.T) {
	app := testApp(t, testUser(), recent.NewMemory())

	long := make([]byte, 1001)
	for i := range long {
		long[i] = 'a'
	}
	resp, _ := postQuery(t, app, string(long))
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", resp.StatusCode)
	}
}

func TestQueryWithoutOrganization(t *testing.T) {
	user := &models.User{ID: uuid.New(), Sub: "test|orgless"}
	app := testApp(t, user, recent.NewMemory())

	resp, _ := postQuery(t, app, "tasks")
	if resp.StatusCode != http.StatusForbidden {
		t.Errorf("expected 403, got %d", resp.StatusCode)
	}
}

func TestQueryWithoutUser(t *testing.T) {
	app := testApp(t, nil, recent.NewMemory())

	resp, _ := postQuery(t, app, "tasks")
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", resp.StatusCode)
	}
}
