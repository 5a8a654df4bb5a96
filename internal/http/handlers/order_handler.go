package handlers

import (
	"calipollo/internal/domain"
	applog "calipollo/internal/log"
	"calipollo/internal/repos"
	"calipollo/internal/services"
	"calipollo/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type OrderHandler struct {
	Repo *repos.OrderRepo
	Auth *services.AuthService
}

// View serves one order to its owner (session or linked user); admins
// may see any order. Others get the same 404 as a missing id.
func (h *OrderHandler) View(c *fiber.Ctx) error {
	oid, ok := validate.ID(c.Params("id"))
	if !ok {
		return jsonError(c, fiber.StatusNotFound, "order not found")
	}

	o, items, err := h.Repo.Get(oid)
	if err != nil {
		return jsonError(c, fiber.StatusNotFound, "order not found")
	}

	sid := c.Cookies("sid")
	var uID, uRole string
	if h.Auth != nil && sid != "" {
		if u, err := h.Auth.CurrentUser(sid); err == nil && u != nil {
			uID = u.ID
			uRole = u.Role
		}
	}
	owner := (sid != "" && sid == o.SessionID) || (uID != "" && uID == o.UserID)
	if !owner && uRole != "ADMIN" {
		applog.Security(c, "access.denied.order", map[string]any{"order_id": oid})
		return jsonError(c, fiber.StatusNotFound, "order not found")
	}

	return c.JSON(fiber.Map{"order": o, "items": items})
}

// History lists orders for the current logged-in user, falling back to
// session orders placed before login.
func (h *OrderHandler) History(c *fiber.Ctx) error {
	u, _ := c.Locals("user").(*domain.User)
	if u == nil {
		return jsonError(c, fiber.StatusUnauthorized, "login required")
	}
	orders, err := h.Repo.ListByUser(u.ID)
	if err != nil {
		applog.Error(c, "orders.history.fail", err, nil)
		return jsonError(c, fiber.StatusInternalServerError, "could not load orders")
	}
	if len(orders) == 0 {
		if sid := c.Cookies("sid"); sid != "" {
			if sessOrders, err := h.Repo.ListBySession(sid); err == nil && len(sessOrders) > 0 {
				orders = sessOrders
			}
		}
	}
	return c.JSON(fiber.Map{"orders": orders})
}
