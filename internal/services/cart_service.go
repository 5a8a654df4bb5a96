package services

import (
	"calipollo/internal/cart"
	"calipollo/internal/pricing"
	"calipollo/internal/repos"
)

type CartService struct {
	Carts  *cart.Store
	Prods  *repos.ProductRepo
	Tariff pricing.Config
}

func NewCartService(carts *cart.Store, prods *repos.ProductRepo, tariff pricing.Config) *CartService {
	return &CartService{Carts: carts, Prods: prods, Tariff: tariff}
}

type CartView struct {
	Items []cart.Line   `json:"items"`
	Quote pricing.Quote `json:"quote"`
}

// Add looks the product up so the line captures its current price.
func (s *CartService) Add(sessionID, productID string, qty int) error {
	p, err := s.Prods.Get(productID)
	if err != nil {
		return err
	}
	s.Carts.With(sessionID, func(c *cart.Cart) {
		c.Add(cart.Item{ProductID: p.ID, Name: p.Name, UnitPrice: p.Price}, qty)
	})
	return nil
}

// SetQuantity applies the store policy directly: zero removes.
func (s *CartService) SetQuantity(sessionID, productID string, qty int) {
	s.Carts.With(sessionID, func(c *cart.Cart) { c.SetQuantity(productID, qty) })
}

func (s *CartService) Remove(sessionID, productID string) {
	s.Carts.With(sessionID, func(c *cart.Cart) { c.Remove(productID) })
}

func (s *CartService) Clear(sessionID string) {
	s.Carts.With(sessionID, func(c *cart.Cart) { c.Clear() })
}

// View snapshots the cart and its derived totals.
func (s *CartService) View(sessionID string) CartView {
	var v CartView
	s.Carts.With(sessionID, func(c *cart.Cart) {
		v.Items = c.Items()
		v.Quote = pricing.Calculate(c.Lines(), s.Tariff)
	})
	return v
}
