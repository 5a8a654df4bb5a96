// Package pricing computes order totals from cart line items.
// All amounts are whole COP; functions here are pure.
package pricing

// Config holds the tariff. TaxRateBp is in basis points (800 = 8%) so
// the half-up rounding below stays exact integer arithmetic.
type Config struct {
	DeliveryFee     int64
	FreeDeliveryMin int64
	TaxRateBp       int64
}

// DefaultConfig mirrors the production tariff.
var DefaultConfig = Config{DeliveryFee: 3000, FreeDeliveryMin: 50000, TaxRateBp: 800}

type Line struct {
	UnitPrice int64
	Qty       int
}

type Quote struct {
	Subtotal    int64 `json:"subtotal"`
	DeliveryFee int64 `json:"delivery_fee"`
	Tax         int64 `json:"tax"`
	Total       int64 `json:"total"`
}

// Calculate returns the full quote for a set of lines. An empty set
// yields the zero quote: no delivery fee, no tax.
func Calculate(lines []Line, cfg Config) Quote {
	var sub int64
	for _, l := range lines {
		if l.Qty <= 0 || l.UnitPrice < 0 {
			continue
		}
		sub += l.UnitPrice * int64(l.Qty)
	}
	if sub == 0 {
		return Quote{}
	}

	var fee int64
	// Tiered, not proportional: flat fee under the threshold, free above.
	if sub < cfg.FreeDeliveryMin {
		fee = cfg.DeliveryFee
	}

	// Round half-up on whole pesos.
	tax := (sub*cfg.TaxRateBp + 5000) / 10000

	return Quote{Subtotal: sub, DeliveryFee: fee, Tax: tax, Total: sub + fee + tax}
}
