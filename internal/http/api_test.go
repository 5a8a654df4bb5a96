package handlers_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"calipollo/internal/config"
	"calipollo/internal/http/handlers"
	"calipollo/internal/repos"
	"calipollo/internal/services"
)

// newTestApp wires the JSON API against a :memory: database, mirroring
// the route table in cmd/calipollo.
func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	cfg := config.Config{DBDSN: ":memory:", DeliveryFee: 3000, FreeDeliveryMin: 50000, TaxRateBp: 800}
	db, err := repos.OpenDB(cfg.DBDSN)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	userRepo := repos.NewUserRepo(db)
	authSvc := &services.AuthService{Users: userRepo}
	authH := &handlers.AuthHandler{Auth: authSvc}

	app := fiber.New()
	app.Server().MaxRequestBodySize = 1 << 20
	app.Use(requestid.New())
	app.Use(func(c *fiber.Ctx) error {
		if sid := c.Cookies("sid"); sid != "" {
			if u, err := authSvc.CurrentUser(sid); err == nil && u != nil {
				c.Locals("user", u)
			}
		}
		return c.Next()
	})

	deps := handlers.NewDeps(db, cfg, authSvc)
	api := app.Group("/api/v1")
	api.Get("/products", deps.ProductHandler.List)
	api.Get("/products/:id", deps.ProductHandler.Detail)
	api.Get("/categories", deps.CategoryHandler.List)
	api.Get("/cart", deps.CartHandler.View)
	api.Post("/cart/items", deps.CartHandler.Add)
	api.Put("/cart/items/:productId", deps.CartHandler.SetQuantity)
	api.Delete("/cart/items/:productId", deps.CartHandler.Remove)
	api.Delete("/cart", deps.CartHandler.Clear)
	api.Get("/checkout", deps.CheckoutHandler.View)
	api.Post("/checkout/delivery", deps.CheckoutHandler.SubmitDelivery)
	api.Post("/checkout/payment", deps.CheckoutHandler.SubmitPayment)
	api.Post("/checkout/back", deps.CheckoutHandler.Back)
	api.Post("/checkout/place", deps.CheckoutHandler.Place)
	api.Get("/orders/:id", deps.OrderHandler.View)
	api.Get("/products/:id/reviews", deps.ReviewHandler.List)
	api.Get("/products/:id/reviews/stats", deps.ReviewHandler.Stats)
	api.Post("/products/:id/reviews", handlers.RequireUser(authSvc), deps.ReviewHandler.Create)
	api.Post("/tickets", deps.TicketHandler.Create)
	api.Get("/tickets/:id", deps.TicketHandler.View)
	api.Post("/auth/login", authH.Login)
	api.Get("/auth/me", authH.Me)

	return app
}

func jsonReq(method, target, sid, body string) *http.Request {
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, rd)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if sid != "" {
		req.AddCookie(&http.Cookie{Name: "sid", Value: sid})
	}
	return req
}

func extractCookie(resp *http.Response, name string) string {
	for _, c := range resp.Cookies() {
		if c.Name == name {
			return c.Value
		}
	}
	return ""
}

func decode(t *testing.T, resp *http.Response, into any) {
	t.Helper()
	b, _ := io.ReadAll(resp.Body)
	if err := json.Unmarshal(b, into); err != nil {
		t.Fatalf("bad json %q: %v", b, err)
	}
}

func TestCheckoutFlowOverHTTP(t *testing.T) {
	app := newTestApp(t)

	// add two items, keeping the minted session cookie
	resp, err := app.Test(jsonReq("POST", "/api/v1/cart/items", "", `{"product_id":"pollo-frito","qty":2}`))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		t.Fatalf("cart add: got %d body=%s", resp.StatusCode, b)
	}
	sid := extractCookie(resp, "sid")
	if sid == "" {
		t.Fatal("sid cookie not set")
	}

	if resp, err = app.Test(jsonReq("POST", "/api/v1/cart/items", sid, `{"product_id":"jugo-lulo","qty":1}`)); err != nil {
		t.Fatal(err)
	}
	var cv struct {
		Items []struct {
			ProductID string `json:"product_id"`
			Qty       int    `json:"qty"`
		} `json:"items"`
		Quote struct {
			Subtotal    int64 `json:"subtotal"`
			DeliveryFee int64 `json:"delivery_fee"`
			Total       int64 `json:"total"`
		} `json:"quote"`
	}
	decode(t, resp, &cv)
	if len(cv.Items) != 2 || cv.Quote.Subtotal != 33000 || cv.Quote.DeliveryFee != 3000 {
		t.Fatalf("bad cart view: %+v", cv)
	}

	// placing early is a 409
	resp, _ = app.Test(jsonReq("POST", "/api/v1/checkout/place", sid, ""))
	if resp.StatusCode != http.StatusConflict {
		t.Fatalf("early place: want 409, got %d", resp.StatusCode)
	}

	// delivery with a bad phone is a 422 with a field error map
	resp, _ = app.Test(jsonReq("POST", "/api/v1/checkout/delivery", sid, `{"address":"Calle 5 #38-25","phone":"123"}`))
	if resp.StatusCode != http.StatusUnprocessableEntity {
		t.Fatalf("bad phone: want 422, got %d", resp.StatusCode)
	}
	var ve struct {
		Errors map[string]string `json:"errors"`
	}
	decode(t, resp, &ve)
	if _, ok := ve.Errors["phone"]; !ok {
		t.Fatalf("missing phone error: %+v", ve)
	}

	// happy path
	resp, _ = app.Test(jsonReq("POST", "/api/v1/checkout/delivery", sid, `{"address":"Calle 5 #38-25, Cali","phone":"+57 315 555 0101"}`))
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("delivery: got %d", resp.StatusCode)
	}
	resp, _ = app.Test(jsonReq("POST", "/api/v1/checkout/payment", sid, `{"payment_method":"nequi"}`))
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("payment: got %d", resp.StatusCode)
	}
	resp, _ = app.Test(jsonReq("POST", "/api/v1/checkout/place", sid, ""))
	if resp.StatusCode != http.StatusCreated {
		b, _ := io.ReadAll(resp.Body)
		t.Fatalf("place: want 201, got %d body=%s", resp.StatusCode, b)
	}
	var placed struct {
		OrderID string `json:"order_id"`
		Quote   struct {
			Total int64 `json:"total"`
		} `json:"quote"`
	}
	decode(t, resp, &placed)
	if placed.OrderID == "" || placed.Quote.Total == 0 {
		t.Fatalf("bad place response: %+v", placed)
	}

	// the owning session can read its order back
	resp, _ = app.Test(jsonReq("GET", "/api/v1/orders/"+placed.OrderID, sid, ""))
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("order view: got %d", resp.StatusCode)
	}
	// a stranger session gets the same 404 as a missing id
	resp, _ = app.Test(jsonReq("GET", "/api/v1/orders/"+placed.OrderID, "other-session", ""))
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("foreign order view: want 404, got %d", resp.StatusCode)
	}

	// cart is empty after placing
	resp, _ = app.Test(jsonReq("GET", "/api/v1/cart", sid, ""))
	decode(t, resp, &cv)
	if len(cv.Items) != 0 {
		t.Fatalf("cart not cleared: %+v", cv)
	}
}

func TestValidationBadInputs(t *testing.T) {
	app := newTestApp(t)

	// search with invalid chars
	resp, err := app.Test(jsonReq("GET", "/api/v1/products?q=%3Cscript%3E", "", ""))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("bad search: want 400, got %d", resp.StatusCode)
	}

	// unknown sort field
	resp, _ = app.Test(jsonReq("GET", "/api/v1/products?sort=sneaky", "", ""))
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("bad sort: want 400, got %d", resp.StatusCode)
	}

	// cart add without product id
	resp, _ = app.Test(jsonReq("POST", "/api/v1/cart/items", "", `{"qty":1}`))
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("missing product_id: want 400, got %d", resp.StatusCode)
	}

	// cart add for a product that does not exist
	resp, _ = app.Test(jsonReq("POST", "/api/v1/cart/items", "", `{"product_id":"no-such","qty":1}`))
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("unknown product: want 404, got %d", resp.StatusCode)
	}

	// missing product detail renders a 404 envelope, not a panic
	resp, _ = app.Test(jsonReq("GET", "/api/v1/products/no-such", "", ""))
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("missing product: want 404, got %d", resp.StatusCode)
	}

	// ticket with a bad category is a 422 field error
	resp, _ = app.Test(jsonReq("POST", "/api/v1/tickets", "",
		`{"subject":"Ayuda","description":"Mi pedido nunca llegó a la dirección","category":"weird","priority":"high"}`))
	if resp.StatusCode != http.StatusUnprocessableEntity {
		t.Fatalf("bad ticket category: want 422, got %d", resp.StatusCode)
	}
}

func TestSearchAndSortOverHTTP(t *testing.T) {
	app := newTestApp(t)

	resp, err := app.Test(jsonReq("GET", "/api/v1/products?q=pollo&sort=price&dir=asc", "", ""))
	if err != nil {
		t.Fatal(err)
	}
	var body struct {
		Products []struct {
			ID    string `json:"id"`
			Price int64  `json:"price"`
		} `json:"products"`
		Count int `json:"count"`
	}
	decode(t, resp, &body)
	if body.Count == 0 {
		t.Fatal("seeded menu should match 'pollo'")
	}
	for i := 1; i < len(body.Products); i++ {
		if body.Products[i-1].Price > body.Products[i].Price {
			t.Fatalf("not sorted by price asc: %+v", body.Products)
		}
	}
	for _, p := range body.Products {
		if !strings.Contains(p.ID, "pollo") && p.ID != "arroz-con-pollo" {
			t.Fatalf("unexpected match %q", p.ID)
		}
	}
}
