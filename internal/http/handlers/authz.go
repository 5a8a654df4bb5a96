package handlers

import (
	applog "calipollo/internal/log"
	"calipollo/internal/services"

	"github.com/gofiber/fiber/v2"
)

func RequireAdmin(auth *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sid := c.Cookies("sid")
		if sid == "" {
			return jsonError(c, fiber.StatusUnauthorized, "login required")
		}
		u, err := auth.CurrentUser(sid)
		if err != nil || u == nil || u.Role != "ADMIN" {
			applog.Security(c, "access.denied.admin", map[string]any{"sid": sid})
			return jsonError(c, fiber.StatusForbidden, "access denied")
		}
		c.Locals("user", u)
		return c.Next()
	}
}

// RequireUser enforces that a user is logged in.
func RequireUser(auth *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sid := c.Cookies("sid")
		if sid == "" {
			return jsonError(c, fiber.StatusUnauthorized, "login required")
		}
		u, err := auth.CurrentUser(sid)
		if err != nil || u == nil {
			return jsonError(c, fiber.StatusUnauthorized, "login required")
		}
		c.Locals("user", u)
		return c.Next()
	}
}
