package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// jsonError is the single-message error envelope used across the API.
func jsonError(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(fiber.Map{"error": msg})
}

// jsonFieldErrors carries a field-keyed validation error map (422).
func jsonFieldErrors(c *fiber.Ctx, errs map[string]string) error {
	return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"errors": errs})
}

// ensureSID returns the caller's session cookie, minting one if absent.
func ensureSID(c *fiber.Ctx) string {
	sid := c.Cookies("sid")
	if sid == "" {
		sid = uuid.NewString()
		c.Cookie(&fiber.Cookie{
			Name:     "sid",
			Value:    sid,
			Path:     "/",
			HTTPOnly: true,
			SameSite: fiber.CookieSameSiteLaxMode,
			Secure:   false, // enable true behind TLS
		})
	}
	return sid
}
