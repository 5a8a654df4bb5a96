package services_test

import (
	"testing"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite" // pure-Go SQLite driver

	"calipollo/internal/cart"
	"calipollo/internal/checkout"
	"calipollo/internal/pricing"
	"calipollo/internal/repos"
	"calipollo/internal/services"
)

func memdb(t *testing.T) *sqlx.DB {
	t.Helper()
	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatal(err)
	}
	return db
}

func TestOrderFlow_AddCartCheckoutPlace(t *testing.T) {
	db := memdb(t)

	prodRepo := repos.NewProductRepo(db)
	orderRepo := repos.NewOrderRepo(db)

	carts := cart.NewStore()
	wizards := checkout.NewSessions()
	tariff := pricing.DefaultConfig

	cartSvc := services.NewCartService(carts, prodRepo, tariff)
	checkoutSvc := services.NewCheckoutService(wizards, carts, orderRepo, tariff)

	sid := "test-session"
	if err := cartSvc.Add(sid, "pollo-frito", 2); err != nil {
		t.Fatal(err)
	}
	if err := cartSvc.Add(sid, "jugo-lulo", 1); err != nil {
		t.Fatal(err)
	}

	cv := cartSvc.View(sid)
	if len(cv.Items) != 2 {
		t.Fatalf("bad cart view: %+v", cv)
	}
	// 2x14000 + 1x5000 = 33000, under the free-delivery threshold
	if cv.Quote.Subtotal != 33000 || cv.Quote.DeliveryFee != 3000 {
		t.Fatalf("bad quote: %+v", cv.Quote)
	}

	// placing before the wizard reaches confirmation must fail
	if _, _, err := checkoutSvc.Place(sid); err != checkout.ErrNotConfirmable {
		t.Fatalf("want ErrNotConfirmable, got %v", err)
	}

	if errs := checkoutSvc.SubmitDelivery(sid, "Calle 5 #38-25, Cali", "3155550101", ""); len(errs) != 0 {
		t.Fatalf("delivery rejected: %v", errs)
	}
	if errs := checkoutSvc.SubmitPayment(sid, "daviplata"); len(errs) != 0 {
		t.Fatalf("payment rejected: %v", errs)
	}

	oid, quote, err := checkoutSvc.Place(sid)
	if err != nil {
		t.Fatal(err)
	}
	if oid == "" {
		t.Fatal("no order id")
	}
	if quote.Total != quote.Subtotal+quote.DeliveryFee+quote.Tax {
		t.Fatalf("inconsistent quote: %+v", quote)
	}

	// order persisted with its items
	o, items, err := orderRepo.Get(oid)
	if err != nil {
		t.Fatal(err)
	}
	if o.Total != quote.Total || o.PaymentMethod != "daviplata" || o.Status != "PLACED" {
		t.Fatalf("bad order row: %+v", o)
	}
	if len(items) != 2 {
		t.Fatalf("want 2 order items, got %d", len(items))
	}

	// cart cleared and wizard reset
	if after := cartSvc.View(sid); len(after.Items) != 0 || after.Quote.Total != 0 {
		t.Fatalf("cart not cleared: %+v", after)
	}
	if v := checkoutSvc.View(sid); v.Step != int(checkout.StepDelivery) {
		t.Fatalf("wizard not reset: %+v", v)
	}
}

func TestPlaceEmptyCartFails(t *testing.T) {
	db := memdb(t)

	carts := cart.NewStore()
	wizards := checkout.NewSessions()
	checkoutSvc := services.NewCheckoutService(wizards, carts, repos.NewOrderRepo(db), pricing.DefaultConfig)

	sid := "empty-session"
	checkoutSvc.SubmitDelivery(sid, "Calle 5 #38-25", "3155550101", "")
	checkoutSvc.SubmitPayment(sid, "cash")

	if _, _, err := checkoutSvc.Place(sid); err != services.ErrEmptyCart {
		t.Fatalf("want ErrEmptyCart, got %v", err)
	}

	// failure keeps the wizard at confirmation for a manual retry
	if v := checkoutSvc.View(sid); v.Step != int(checkout.StepConfirm) {
		t.Fatalf("wizard should stay at confirmation, got %+v", v)
	}
}
