package services

import (
	"errors"

	"calipollo/internal/cart"
	"calipollo/internal/checkout"
	"calipollo/internal/domain"
	"calipollo/internal/pricing"
	"calipollo/internal/repos"

	"github.com/google/uuid"
)

var ErrEmptyCart = errors.New("cart is empty")

// CheckoutService drives the per-session wizard and turns a confirmed
// draft into a persisted order.
type CheckoutService struct {
	Wizards *checkout.Sessions
	Carts   *cart.Store
	Orders  *repos.OrderRepo
	Tariff  pricing.Config
}

func NewCheckoutService(w *checkout.Sessions, carts *cart.Store, orders *repos.OrderRepo, tariff pricing.Config) *CheckoutService {
	return &CheckoutService{Wizards: w, Carts: carts, Orders: orders, Tariff: tariff}
}

type CheckoutView struct {
	Step  int               `json:"step"`
	Name  string            `json:"step_name"`
	Draft domain.OrderDraft `json:"draft"`
	Quote pricing.Quote     `json:"quote"`
}

func (s *CheckoutService) View(sessionID string) CheckoutView {
	var v CheckoutView
	s.Wizards.With(sessionID, func(m *checkout.Machine) {
		v.Step = int(m.Step())
		v.Name = m.Step().String()
		v.Draft = m.Draft()
	})
	s.Carts.With(sessionID, func(c *cart.Cart) {
		v.Quote = pricing.Calculate(c.Lines(), s.Tariff)
	})
	return v
}

func (s *CheckoutService) SubmitDelivery(sessionID, address, phone, notes string) map[string]string {
	var errs map[string]string
	s.Wizards.With(sessionID, func(m *checkout.Machine) {
		errs = m.SubmitDelivery(address, phone, notes)
	})
	return errs
}

func (s *CheckoutService) SubmitPayment(sessionID, method string) map[string]string {
	var errs map[string]string
	s.Wizards.With(sessionID, func(m *checkout.Machine) {
		errs = m.SubmitPayment(method)
	})
	return errs
}

func (s *CheckoutService) Back(sessionID string) int {
	var step int
	s.Wizards.With(sessionID, func(m *checkout.Machine) {
		m.Back()
		step = int(m.Step())
	})
	return step
}

// Place persists the order from the confirmation step. On any failure
// the wizard stays at confirmation so the caller can retry; on success
// the cart is cleared and the wizard resets.
func (s *CheckoutService) Place(sessionID string) (string, pricing.Quote, error) {
	var (
		draft       domain.OrderDraft
		confirmable bool
	)
	s.Wizards.With(sessionID, func(m *checkout.Machine) {
		confirmable = m.Confirmable()
		draft = m.Draft()
	})
	if !confirmable {
		return "", pricing.Quote{}, checkout.ErrNotConfirmable
	}

	var lines []cart.Line
	s.Carts.With(sessionID, func(c *cart.Cart) { lines = c.Items() })
	if len(lines) == 0 {
		return "", pricing.Quote{}, ErrEmptyCart
	}

	plines := make([]pricing.Line, 0, len(lines))
	for _, l := range lines {
		plines = append(plines, pricing.Line{UnitPrice: l.UnitPrice, Qty: l.Qty})
	}
	quote := pricing.Calculate(plines, s.Tariff)

	orderID := uuid.NewString()
	if err := s.Orders.Create(orderID, sessionID, draft, quote); err != nil {
		return "", pricing.Quote{}, err
	}
	for _, l := range lines {
		if err := s.Orders.InsertItem(orderID, l.ProductID, l.Qty, l.UnitPrice); err != nil {
			return "", pricing.Quote{}, err
		}
	}

	s.Carts.With(sessionID, func(c *cart.Cart) { c.Clear() })
	s.Wizards.With(sessionID, func(m *checkout.Machine) { m.Reset() })
	return orderID, quote, nil
}
