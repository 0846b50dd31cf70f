package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v3"

	"frictionless/internal/nav"
	"frictionless/internal/testutil"
)

func TestLiveness(t *testing.T) {
	app := fiber.New()
	h := NewProbeHandler(nil, nav.DefaultRegistry())
	app.Get("/healthz", h.Liveness)

	req, _ := http.NewRequest("GET", "/healthz", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Errorf("expected 200, got %d", resp.StatusCode)
	}
}

func TestReadinessReportsChecks(t *testing.T) {
	database, cleanup := testutil.TestDB(t)
	defer cleanup()

	registry := nav.DefaultRegistry()
	app := fiber.New()
	h := NewProbeHandler(database, registry)
	app.Get("/readyz", h.Readiness)

	req, _ := http.NewRequest("GET", "/readyz", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	raw, _ := io.ReadAll(resp.Body)
	var body struct {
		Status string `json:"status"`
		Checks struct {
			Database string `json:"database"`
			Pages    int    `json:"pages"`
		} `json:"checks"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		t.Fatalf("failed to decode response %s: %v", raw, err)
	}
	if body.Status != "ok" {
		t.Errorf("expected status ok, got %q", body.Status)
	}
	if body.Checks.Pages != len(registry) {
		t.Errorf("expected %d pages reported, got %d", len(registry), body.Checks.Pages)
	}
}

func TestReadinessEmptyRegistry(t *testing.T) {
	database, cleanup := testutil.TestDB(t)
	defer cleanup()

	app := fiber.New()
	h := NewProbeHandler(database, nav.Registry{})
	app.Get("/readyz", h.Readiness)

	req, _ := http.NewRequest("GET", "/readyz", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusServiceUnavailable {
		t.Errorf("expected 503 for empty registry, got %d", resp.StatusCode)
	}
}
