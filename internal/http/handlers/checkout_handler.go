package handlers

import (
	"errors"

	"calipollo/internal/checkout"
	applog "calipollo/internal/log"
	"calipollo/internal/services"

	"github.com/gofiber/fiber/v2"
)

type CheckoutHandler struct {
	Checkout *services.CheckoutService
}

func (h *CheckoutHandler) View(c *fiber.Ctx) error {
	sid := ensureSID(c)
	return c.JSON(h.Checkout.View(sid))
}

type deliveryReq struct {
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Notes   string `json:"notes"`
}

func (h *CheckoutHandler) SubmitDelivery(c *fiber.Ctx) error {
	sid := ensureSID(c)
	var req deliveryReq
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if errs := h.Checkout.SubmitDelivery(sid, req.Address, req.Phone, req.Notes); len(errs) > 0 {
		applog.Security(c, "validation.fail", map[string]any{"step": "delivery"})
		return jsonFieldErrors(c, errs)
	}
	return c.JSON(h.Checkout.View(sid))
}

func (h *CheckoutHandler) SubmitPayment(c *fiber.Ctx) error {
	sid := ensureSID(c)
	var req struct {
		PaymentMethod string `json:"payment_method"`
	}
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if errs := h.Checkout.SubmitPayment(sid, req.PaymentMethod); len(errs) > 0 {
		applog.Security(c, "validation.fail", map[string]any{"step": "payment"})
		return jsonFieldErrors(c, errs)
	}
	return c.JSON(h.Checkout.View(sid))
}

func (h *CheckoutHandler) Back(c *fiber.Ctx) error {
	sid := ensureSID(c)
	h.Checkout.Back(sid)
	return c.JSON(h.Checkout.View(sid))
}

// Place submits the confirmed order. Wrong-step attempts get 409, an
// empty cart gets 400; either way the wizard state is untouched so the
// caller can retry manually.
func (h *CheckoutHandler) Place(c *fiber.Ctx) error {
	sid := ensureSID(c)
	orderID, quote, err := h.Checkout.Place(sid)
	if err != nil {
		switch {
		case errors.Is(err, checkout.ErrNotConfirmable):
			return jsonError(c, fiber.StatusConflict, "complete the checkout steps first")
		case errors.Is(err, services.ErrEmptyCart):
			return jsonError(c, fiber.StatusBadRequest, "your cart is empty")
		}
		applog.Error(c, "order.place.fail", err, map[string]any{"sid": sid})
		return jsonError(c, fiber.StatusInternalServerError, "could not place your order, please try again")
	}
	applog.Audit(c, "order.place", map[string]any{"order_id": orderID, "total": quote.Total})
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"order_id": orderID, "quote": quote})
}
