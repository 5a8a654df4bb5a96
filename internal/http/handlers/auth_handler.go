package handlers

import (
	"errors"

	"calipollo/internal/domain"
	applog "calipollo/internal/log"
	"calipollo/internal/services"
	"calipollo/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	Auth *services.AuthService
}

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	sid := ensureSID(c)
	var req loginReq
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	email, ok := validate.Email(req.Email)
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "email"})
		return jsonError(c, fiber.StatusBadRequest, "invalid email")
	}
	u, err := h.Auth.Login(sid, email, req.Password)
	if err != nil {
		applog.Security(c, "auth.login.fail", map[string]any{"email": email})
		return jsonError(c, fiber.StatusUnauthorized, "invalid email or password")
	}
	applog.Audit(c, "auth.login", map[string]any{"user_id": u.ID})
	return c.JSON(u)
}

type registerReq struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	sid := ensureSID(c)
	var req registerReq
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}

	errs := map[string]string{}
	email, ok := validate.Email(req.Email)
	if !ok {
		errs["email"] = "enter a valid email"
	}
	name, ok := validate.Name(req.Name)
	if !ok {
		errs["name"] = "name is required (max 40 characters)"
	}
	if !validate.Password(req.Password) {
		errs["password"] = "password needs 8-64 chars with upper, lower, digit and symbol"
	}
	if len(errs) > 0 {
		applog.Security(c, "validation.fail", map[string]any{"field": "register"})
		return jsonFieldErrors(c, errs)
	}

	u, err := h.Auth.Register(sid, email, name, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			return jsonError(c, fiber.StatusConflict, "email already registered")
		}
		applog.Error(c, "auth.register", err, nil)
		return jsonError(c, fiber.StatusInternalServerError, "could not create the account")
	}
	applog.Audit(c, "auth.register", map[string]any{"user_id": u.ID})
	return c.Status(fiber.StatusCreated).JSON(u)
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if sid := c.Cookies("sid"); sid != "" {
		_ = h.Auth.Logout(sid)
	}
	return c.JSON(fiber.Map{"ok": true})
}

func (h *AuthHandler) Me(c *fiber.Ctx) error {
	u, _ := c.Locals("user").(*domain.User)
	if u == nil {
		return jsonError(c, fiber.StatusUnauthorized, "not logged in")
	}
	return c.JSON(u)
}
