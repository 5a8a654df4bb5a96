package handlers

import (
	"strings"

	"calipollo/internal/domain"
	applog "calipollo/internal/log"
	"calipollo/internal/services"
	"calipollo/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type TicketHandler struct {
	Tickets *services.TicketService
	Auth    *services.AuthService
}

type createTicketReq struct {
	Subject     string `json:"subject"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Priority    string `json:"priority"`
}

func (h *TicketHandler) Create(c *fiber.Ctx) error {
	sid := ensureSID(c)
	u, _ := c.Locals("user").(*domain.User)

	var req createTicketReq
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}

	errs := map[string]string{}
	subject, ok := validate.Subject(req.Subject)
	if !ok {
		errs["subject"] = "subject is required (max 120 characters)"
	}
	desc := strings.TrimSpace(req.Description)
	if desc == "" || len(desc) > 2000 {
		errs["description"] = "description is required (max 2000 characters)"
	}
	category, ok := validate.TicketCategory(req.Category)
	if !ok {
		errs["category"] = "category must be technical, order, payment or general"
	}
	priority, ok := validate.TicketPriority(req.Priority)
	if !ok {
		errs["priority"] = "priority must be low, medium or high"
	}
	if len(errs) > 0 {
		applog.Security(c, "validation.fail", map[string]any{"field": "ticket"})
		return jsonFieldErrors(c, errs)
	}

	t, err := h.Tickets.Create(sid, u, subject, desc, category, priority)
	if err != nil {
		applog.Error(c, "ticket.create", err, nil)
		return jsonError(c, fiber.StatusInternalServerError, "could not create the ticket")
	}
	applog.Audit(c, "ticket.create", map[string]any{"ticket_id": t.ID, "category": category})
	return c.Status(fiber.StatusCreated).JSON(t)
}

func (h *TicketHandler) List(c *fiber.Ctx) error {
	sid := ensureSID(c)
	u, _ := c.Locals("user").(*domain.User)
	tickets, err := h.Tickets.ListMine(sid, u)
	if err != nil {
		applog.Error(c, "tickets.list", err, nil)
		return jsonError(c, fiber.StatusInternalServerError, "could not load tickets")
	}
	return c.JSON(fiber.Map{"tickets": tickets})
}

func (h *TicketHandler) View(c *fiber.Ctx) error {
	sid := ensureSID(c)
	u, _ := c.Locals("user").(*domain.User)
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return jsonError(c, fiber.StatusNotFound, "ticket not found")
	}
	t, msgs, allowed, err := h.Tickets.Get(id, sid, u)
	if err != nil || !allowed {
		if !allowed && err == nil {
			applog.Security(c, "access.denied.ticket", map[string]any{"ticket_id": id})
		}
		return jsonError(c, fiber.StatusNotFound, "ticket not found")
	}
	return c.JSON(fiber.Map{"ticket": t, "messages": msgs})
}

func (h *TicketHandler) Respond(c *fiber.Ctx) error {
	sid := ensureSID(c)
	u, _ := c.Locals("user").(*domain.User)
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return jsonError(c, fiber.StatusNotFound, "ticket not found")
	}
	if _, _, allowed, err := h.Tickets.Get(id, sid, u); err != nil || !allowed {
		return jsonError(c, fiber.StatusNotFound, "ticket not found")
	}

	var req struct {
		Body string `json:"body"`
	}
	if err := c.BodyParser(&req); err != nil || strings.TrimSpace(req.Body) == "" {
		return jsonError(c, fiber.StatusBadRequest, "message body is required")
	}

	author := "guest"
	fromStaff := false
	if u != nil {
		author = u.Name
		fromStaff = u.Role == "ADMIN"
	}
	m, err := h.Tickets.Respond(id, author, fromStaff, strings.TrimSpace(req.Body))
	if err != nil {
		applog.Error(c, "ticket.respond", err, nil)
		return jsonError(c, fiber.StatusInternalServerError, "could not add the message")
	}
	return c.Status(fiber.StatusCreated).JSON(m)
}
