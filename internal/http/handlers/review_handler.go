package handlers

import (
	"errors"

	"calipollo/internal/domain"
	applog "calipollo/internal/log"
	"calipollo/internal/services"
	"calipollo/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type ReviewHandler struct {
	Reviews *services.ReviewService
	Auth    *services.AuthService
}

func (h *ReviewHandler) List(c *fiber.Ctx) error {
	productID, ok := validate.ID(c.Params("id"))
	if !ok {
		return jsonError(c, fiber.StatusNotFound, "product not found")
	}
	revs, err := h.Reviews.ListByProduct(productID)
	if err != nil {
		applog.Error(c, "reviews.list", err, nil)
		return jsonError(c, fiber.StatusInternalServerError, "could not load reviews")
	}
	return c.JSON(fiber.Map{"reviews": revs, "count": len(revs)})
}

func (h *ReviewHandler) Stats(c *fiber.Ctx) error {
	productID, ok := validate.ID(c.Params("id"))
	if !ok {
		return jsonError(c, fiber.StatusNotFound, "product not found")
	}
	stats, err := h.Reviews.Stats(productID)
	if err != nil {
		applog.Error(c, "reviews.stats", err, nil)
		return jsonError(c, fiber.StatusInternalServerError, "could not load review stats")
	}
	return c.JSON(stats)
}

type createReviewReq struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
	OrderID string `json:"order_id"`
}

// Create requires a logged-in user; rating and comment are checked at
// this boundary so out-of-range values never reach storage.
func (h *ReviewHandler) Create(c *fiber.Ctx) error {
	u, _ := c.Locals("user").(*domain.User)
	if u == nil {
		return jsonError(c, fiber.StatusUnauthorized, "login required")
	}
	productID, ok := validate.ID(c.Params("id"))
	if !ok {
		return jsonError(c, fiber.StatusNotFound, "product not found")
	}

	var req createReviewReq
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}

	errs := map[string]string{}
	if !validate.Rating(req.Rating) {
		errs["rating"] = "rating must be between 1 and 5"
	}
	comment, ok := validate.Comment(req.Comment)
	if !ok {
		errs["comment"] = "comment must be 10-500 characters"
	}
	if req.OrderID != "" {
		if _, ok := validate.ID(req.OrderID); !ok {
			errs["order_id"] = "invalid order reference"
		}
	}
	if len(errs) > 0 {
		applog.Security(c, "validation.fail", map[string]any{"field": "review"})
		return jsonFieldErrors(c, errs)
	}

	rev, err := h.Reviews.Submit(productID, req.OrderID, u, req.Rating, comment)
	if err != nil {
		if errors.Is(err, services.ErrAlreadyReviewed) {
			return jsonError(c, fiber.StatusConflict, "you already reviewed this product")
		}
		return jsonError(c, fiber.StatusNotFound, "product not found")
	}
	applog.Audit(c, "review.create", map[string]any{"review_id": rev.ID, "product_id": productID})
	return c.Status(fiber.StatusCreated).JSON(rev)
}
