package handlers

import (
	"strings"

	applog "calipollo/internal/log"
	"calipollo/internal/repos"
	"calipollo/internal/validate"

	"github.com/gofiber/fiber/v2"
)

// AdminHandler is the back-office surface: order and ticket status
// transitions, menu availability, user management. All routes sit
// behind RequireAdmin.
type AdminHandler struct {
	Orders  *repos.OrderRepo
	Tickets *repos.TicketRepo
	Prods   *repos.ProductRepo
	Users   *repos.UserRepo
}

var orderStatuses = map[string]bool{
	"PLACED": true, "PREPARING": true, "ON_THE_WAY": true, "DELIVERED": true, "CANCELED": true,
}

var ticketStatuses = map[string]bool{
	"open": true, "in_progress": true, "resolved": true, "closed": true,
}

func (h *AdminHandler) Dashboard(c *fiber.Ctx) error {
	orders, err := h.Orders.ListLatest(20)
	if err != nil {
		applog.Error(c, "admin.dashboard", err, nil)
		return jsonError(c, fiber.StatusInternalServerError, "could not load dashboard")
	}
	tickets, err := h.Tickets.ListLatest(20)
	if err != nil {
		applog.Error(c, "admin.dashboard", err, nil)
		return jsonError(c, fiber.StatusInternalServerError, "could not load dashboard")
	}
	return c.JSON(fiber.Map{"orders": orders, "tickets": tickets})
}

func (h *AdminHandler) OrdersPage(c *fiber.Ctx) error {
	orders, err := h.Orders.ListLatest(100)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "could not load orders")
	}
	return c.JSON(fiber.Map{"orders": orders})
}

func (h *AdminHandler) UpdateOrderStatus(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return jsonError(c, fiber.StatusNotFound, "order not found")
	}
	var req struct {
		Status string `json:"status"`
	}
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	status := strings.ToUpper(strings.TrimSpace(req.Status))
	if !orderStatuses[status] {
		return jsonError(c, fiber.StatusBadRequest, "invalid order status")
	}
	if err := h.Orders.UpdateStatus(id, status); err != nil {
		applog.Error(c, "admin.order.status", err, nil)
		return jsonError(c, fiber.StatusInternalServerError, "could not update the order")
	}
	applog.Audit(c, "admin.order.status", map[string]any{"order_id": id, "status": status})
	return c.JSON(fiber.Map{"ok": true})
}

func (h *AdminHandler) UpdateTicketStatus(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return jsonError(c, fiber.StatusNotFound, "ticket not found")
	}
	var req struct {
		Status string `json:"status"`
	}
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	status := strings.ToLower(strings.TrimSpace(req.Status))
	if !ticketStatuses[status] {
		return jsonError(c, fiber.StatusBadRequest, "invalid ticket status")
	}
	if err := h.Tickets.UpdateStatus(id, status); err != nil {
		applog.Error(c, "admin.ticket.status", err, nil)
		return jsonError(c, fiber.StatusInternalServerError, "could not update the ticket")
	}
	applog.Audit(c, "admin.ticket.status", map[string]any{"ticket_id": id, "status": status})
	return c.JSON(fiber.Map{"ok": true})
}

func (h *AdminHandler) SetProductAvailability(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return jsonError(c, fiber.StatusNotFound, "product not found")
	}
	var req struct {
		Available *bool `json:"available"`
	}
	if err := c.BodyParser(&req); err != nil || req.Available == nil {
		return jsonError(c, fiber.StatusBadRequest, "available is required")
	}
	if err := h.Prods.SetAvailable(id, *req.Available); err != nil {
		applog.Error(c, "admin.product.availability", err, nil)
		return jsonError(c, fiber.StatusInternalServerError, "could not update the product")
	}
	applog.Audit(c, "admin.product.availability", map[string]any{"product_id": id, "available": *req.Available})
	return c.JSON(fiber.Map{"ok": true})
}

func (h *AdminHandler) UsersPage(c *fiber.Ctx) error {
	users, err := h.Users.List()
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "could not load users")
	}
	return c.JSON(fiber.Map{"users": users})
}

func (h *AdminHandler) DeleteUser(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return jsonError(c, fiber.StatusNotFound, "user not found")
	}
	if err := h.Users.DeleteUserCascade(id); err != nil {
		applog.Error(c, "admin.user.delete", err, nil)
		return jsonError(c, fiber.StatusInternalServerError, "could not delete the user")
	}
	applog.Audit(c, "admin.user.delete", map[string]any{"user_id": id})
	return c.JSON(fiber.Map{"ok": true})
}
