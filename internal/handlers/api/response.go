// Package api contains the JSON API handlers. Every response uses the
// standard envelope: {"status":"ok","data":...} on success and
// {"status":"error","error":...} on failure.
package api

import (
	"github.com/gofiber/fiber/v3"

	"frictionless/internal/models"
)

// jsonSuccess returns a 200 response with data wrapped in the standard envelope.
func jsonSuccess(c fiber.Ctx, data any) error {
	return c.JSON(fiber.Map{
		"status": "ok",
		"data":   data,
	})
}

// jsonError returns an error response with the given HTTP status code.
func jsonError(c fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"status": "error",
		"error":  message,
	})
}

// requireOrgUser returns the authenticated user and their organization ID,
// or writes the error response and returns ok=false. API routes behind
// RequireAuth always have a user; organization membership is checked here.
func requireOrgUser(c fiber.Ctx) (*models.User, bool) {
	user, _ := c.Locals("user").(*models.User)
	if user == nil {
		jsonError(c, fiber.StatusUnauthorized, "authentication required")
		return nil, false
	}
	if user.OrganizationID == nil {
		jsonError(c, fiber.StatusForbidden, "user has no organization")
		return nil, false
	}
	return user, true
}
