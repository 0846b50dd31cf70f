// Package handlers contains the server-rendered page handlers: auth flows,
// health probes, and the public share view. JSON API handlers live in the
// api subpackage.
package handlers

import (
	"github.com/gofiber/fiber/v3"

	"frictionless/internal/models"
)

// currentUser returns the authenticated user set by the auth middleware, or
// nil on public routes.
func currentUser(c fiber.Ctx) *models.User {
	user, _ := c.Locals("user").(*models.User)
	return user
}
