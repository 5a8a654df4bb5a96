package handlers

import (
	applog "calipollo/internal/log"
	"calipollo/internal/services"
	"calipollo/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type CartHandler struct {
	Cart *services.CartService
}

func (h *CartHandler) View(c *fiber.Ctx) error {
	sid := ensureSID(c)
	return c.JSON(h.Cart.View(sid))
}

type addItemReq struct {
	ProductID string `json:"product_id"`
	Qty       int    `json:"qty"`
}

func (h *CartHandler) Add(c *fiber.Ctx) error {
	sid := ensureSID(c)

	var req addItemReq
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	productID, ok := validate.ID(req.ProductID)
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "product_id"})
		return jsonError(c, fiber.StatusBadRequest, "missing or invalid product_id")
	}
	qty := req.Qty
	if qty < 1 {
		qty = 1
	}
	if qty > 50 {
		qty = 50
	}

	if err := h.Cart.Add(sid, productID, qty); err != nil {
		return jsonError(c, fiber.StatusNotFound, "this item is no longer available")
	}
	return c.JSON(h.Cart.View(sid))
}

// SetQuantity applies the store policy: qty <= 0 removes the line.
func (h *CartHandler) SetQuantity(c *fiber.Ctx) error {
	sid := ensureSID(c)
	productID, ok := validate.ID(c.Params("productId"))
	if !ok {
		return jsonError(c, fiber.StatusBadRequest, "invalid product id")
	}

	var req struct {
		Qty *int `json:"qty"`
	}
	if err := c.BodyParser(&req); err != nil || req.Qty == nil {
		return jsonError(c, fiber.StatusBadRequest, "qty is required")
	}
	qty := *req.Qty
	if qty > 50 {
		qty = 50
	}

	h.Cart.SetQuantity(sid, productID, qty)
	return c.JSON(h.Cart.View(sid))
}

func (h *CartHandler) Remove(c *fiber.Ctx) error {
	sid := ensureSID(c)
	productID, ok := validate.ID(c.Params("productId"))
	if !ok {
		return jsonError(c, fiber.StatusBadRequest, "invalid product id")
	}
	h.Cart.Remove(sid, productID)
	return c.JSON(h.Cart.View(sid))
}

func (h *CartHandler) Clear(c *fiber.Ctx) error {
	sid := ensureSID(c)
	h.Cart.Clear(sid)
	return c.JSON(h.Cart.View(sid))
}

// Quantity reports a single line's quantity; 0 when absent.
func (h *CartHandler) Quantity(c *fiber.Ctx) error {
	sid := ensureSID(c)
	productID, ok := validate.ID(c.Params("productId"))
	if !ok {
		return jsonError(c, fiber.StatusBadRequest, "invalid product id")
	}
	qty := 0
	for _, l := range h.Cart.View(sid).Items {
		if l.ProductID == productID {
			qty = l.Qty
			break
		}
	}
	return c.JSON(fiber.Map{"product_id": productID, "qty": qty})
}
