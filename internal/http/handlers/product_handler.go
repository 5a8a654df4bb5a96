package handlers

import (
	"strings"

	"calipollo/internal/catalog"
	applog "calipollo/internal/log"
	"calipollo/internal/services"
	"calipollo/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type ProductHandler struct {
	Catalog *services.CatalogService
}

// List serves the menu through the filter/sort pipeline.
// Query params: category, q, sort (name|price|rating|created_at), dir (asc|desc).
func (h *ProductHandler) List(c *fiber.Ctx) error {
	p := catalog.Pipeline{}

	if cat := strings.TrimSpace(c.Query("category")); cat != "" && cat != "all" {
		if _, ok := validate.ID(cat); !ok {
			applog.Security(c, "validation.fail", map[string]any{"field": "category"})
			return jsonError(c, fiber.StatusBadRequest, "invalid category")
		}
		p.CategoryID = cat
	}

	if rawQ := c.Query("q"); strings.TrimSpace(rawQ) != "" {
		q, ok := validate.Q(rawQ)
		if !ok {
			applog.Security(c, "validation.fail", map[string]any{"field": "q", "value": rawQ})
			return jsonError(c, fiber.StatusBadRequest, "enter a valid keyword (letters/numbers only)")
		}
		p.Query = q
	}

	switch sort := strings.TrimSpace(c.Query("sort")); sort {
	case "", catalog.SortName:
		p.SortBy = catalog.SortName
	case catalog.SortPrice, catalog.SortRating, catalog.SortCreatedAt:
		p.SortBy = sort
	default:
		return jsonError(c, fiber.StatusBadRequest, "invalid sort field")
	}
	p.Desc = strings.EqualFold(c.Query("dir"), "desc")

	products, err := h.Catalog.Browse(p)
	if err != nil {
		applog.Error(c, "products.list", err, nil)
		return jsonError(c, fiber.StatusInternalServerError, "could not load the menu, please retry")
	}
	return c.JSON(fiber.Map{"products": products, "count": len(products)})
}

func (h *ProductHandler) Detail(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "product"})
		return jsonError(c, fiber.StatusNotFound, "this item is no longer available")
	}
	p, err := h.Catalog.GetProduct(id)
	if err != nil || p.ID == "" {
		return jsonError(c, fiber.StatusNotFound, "this item is no longer available")
	}
	return c.JSON(p)
}

type CategoryHandler struct {
	Catalog *services.CatalogService
}

func (h *CategoryHandler) List(c *fiber.Ctx) error {
	cats, err := h.Catalog.ListCategories()
	if err != nil {
		applog.Error(c, "categories.list", err, nil)
		return jsonError(c, fiber.StatusInternalServerError, "could not load categories")
	}
	return c.JSON(fiber.Map{"categories": cats})
}
