package handlers

import (
	"github.com/gofiber/fiber/v3"

	"frictionless/internal/db"
	"frictionless/internal/nav"
)

// ProbeHandler handles Kubernetes health probe endpoints.
type ProbeHandler struct {
	db       *db.DB
	registry nav.Registry
}

// NewProbeHandler creates a new probe handler.
func NewProbeHandler(database *db.DB, registry nav.Registry) *ProbeHandler {
	return &ProbeHandler{db: database, registry: registry}
}

// Liveness handles the /healthz endpoint for Kubernetes liveness probes.
// Returns 200 OK if the application is running.
func (h *ProbeHandler) Liveness(c fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "ok",
	})
}

// Readiness handles the /readyz endpoint for Kubernetes readiness probes.
// Returns 200 OK if the application can serve traffic: the database is
// reachable and the page registry loaded.
func (h *ProbeHandler) Readiness(c fiber.Ctx) error {
	if err := h.db.Ping(c.Context()); err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"status": "error",
			"error":  "database unavailable",
		})
	}

	if len(h.registry) == 0 {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"status": "error",
			"error":  "page registry is empty",
		})
	}

	return c.JSON(fiber.Map{
		"status": "ok",
		"checks": fiber.Map{
			"database": "ok",
			"pages":    len(h.registry),
		},
	})
}
