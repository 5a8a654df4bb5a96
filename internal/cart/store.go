// Package cart keeps per-session carts in memory. A cart lives for the
// browsing session only; nothing survives a restart.
package cart

import (
	"sync"

	"calipollo/internal/pricing"
)

// Item is the product snapshot captured when a line is added.
type Item struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	UnitPrice int64  `json:"unit_price"`
}

type Line struct {
	Item
	Qty int `json:"qty"`
}

// Cart holds at most one line per product id, in insertion order.
type Cart struct {
	lines []Line
}

// Add merges into an existing line (summed quantity) or appends a new
// one. A non-positive qty is treated as 1.
func (c *Cart) Add(it Item, qty int) {
	if qty < 1 {
		qty = 1
	}
	for i := range c.lines {
		if c.lines[i].ProductID == it.ProductID {
			c.lines[i].Qty += qty
			return
		}
	}
	c.lines = append(c.lines, Line{Item: it, Qty: qty})
}

// SetQuantity sets a line's quantity directly; zero or below removes
// the line. Unknown ids are a no-op.
func (c *Cart) SetQuantity(productID string, qty int) {
	if qty <= 0 {
		c.Remove(productID)
		return
	}
	for i := range c.lines {
		if c.lines[i].ProductID == productID {
			c.lines[i].Qty = qty
			return
		}
	}
}

// Remove drops a line; absent ids are a no-op, not an error.
func (c *Cart) Remove(productID string) {
	for i := range c.lines {
		if c.lines[i].ProductID == productID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

func (c *Cart) Clear() { c.lines = nil }

// Quantity returns 0 for absent ids.
func (c *Cart) Quantity(productID string) int {
	for i := range c.lines {
		if c.lines[i].ProductID == productID {
			return c.lines[i].Qty
		}
	}
	return 0
}

func (c *Cart) Len() int { return len(c.lines) }

// Items returns a copy, safe for the caller to hold.
func (c *Cart) Items() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

// Lines converts the cart into pricing input.
func (c *Cart) Lines() []pricing.Line {
	out := make([]pricing.Line, 0, len(c.lines))
	for _, l := range c.lines {
		out = append(out, pricing.Line{UnitPrice: l.UnitPrice, Qty: l.Qty})
	}
	return out
}

// Store maps session ids to carts. Handlers run concurrently, so the
// map itself needs a lock; individual carts are only touched under it.
type Store struct {
	mu    sync.Mutex
	carts map[string]*Cart
}

func NewStore() *Store {
	return &Store{carts: make(map[string]*Cart)}
}

// With runs fn against the session's cart, creating it on first use.
func (s *Store) With(sessionID string, fn func(c *Cart)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.carts[sessionID]
	if !ok {
		c = &Cart{}
		s.carts[sessionID] = c
	}
	fn(c)
}

// Drop forgets a session's cart entirely.
func (s *Store) Drop(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, sessionID)
}
