// Package catalog filters and sorts product lists for the menu views.
package catalog

import (
	"sort"
	"strings"

	"calipollo/internal/domain"
)

// Sort fields accepted by the pipeline.
const (
	SortName      = "name"
	SortPrice     = "price"
	SortRating    = "rating"
	SortCreatedAt = "created_at"
)

// Pipeline describes one filter+sort pass. Zero value passes every
// product and sorts by name ascending.
type Pipeline struct {
	CategoryID string // "" or "all" matches everything
	Query      string // case-insensitive substring on name or description
	SortBy     string
	Desc       bool
}

// Apply filters then sorts. The input slice is not mutated. Equal keys
// fall back to product id, so output order is deterministic.
func (p Pipeline) Apply(products []domain.Product) []domain.Product {
	out := make([]domain.Product, 0, len(products))
	q := strings.ToLower(strings.TrimSpace(p.Query))
	for _, prod := range products {
		if p.CategoryID != "" && p.CategoryID != "all" && prod.CategoryID != p.CategoryID {
			continue
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(prod.Name), q) &&
			!strings.Contains(strings.ToLower(prod.Description), q) {
			continue
		}
		out = append(out, prod)
	}

	less := p.comparator()
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if p.Desc {
			a, b = b, a
		}
		switch c := less(a, b); {
		case c < 0:
			return true
		case c > 0:
			return false
		}
		return out[i].ID < out[j].ID
	})
	return out
}

func (p Pipeline) comparator() func(a, b domain.Product) int {
	switch p.SortBy {
	case SortPrice:
		return func(a, b domain.Product) int { return cmpInt64(a.Price, b.Price) }
	case SortRating:
		return func(a, b domain.Product) int { return cmpFloat(a.Rating, b.Rating) }
	case SortCreatedAt:
		return func(a, b domain.Product) int { return strings.Compare(a.CreatedAt, b.CreatedAt) }
	default:
		return func(a, b domain.Product) int {
			return strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
		}
	}
}

func cmpInt64(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func cmpFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
