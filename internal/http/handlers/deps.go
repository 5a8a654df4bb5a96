package handlers

import (
	"calipollo/internal/cart"
	"calipollo/internal/checkout"
	"calipollo/internal/config"
	"calipollo/internal/pricing"
	"calipollo/internal/repos"
	"calipollo/internal/services"

	"github.com/jmoiron/sqlx"
)

type Deps struct {
	CategoryHandler *CategoryHandler
	ProductHandler  *ProductHandler
	CartHandler     *CartHandler
	CheckoutHandler *CheckoutHandler
	OrderHandler    *OrderHandler
	ReviewHandler   *ReviewHandler
	TicketHandler   *TicketHandler
}

func NewDeps(db *sqlx.DB, cfg config.Config, auth *services.AuthService) *Deps {
	catRepo := repos.NewCategoryRepo(db)
	prodRepo := repos.NewProductRepo(db)
	orderRepo := repos.NewOrderRepo(db)
	reviewRepo := repos.NewReviewRepo(db)
	ticketRepo := repos.NewTicketRepo(db)

	tariff := pricing.Config{
		DeliveryFee:     cfg.DeliveryFee,
		FreeDeliveryMin: cfg.FreeDeliveryMin,
		TaxRateBp:       cfg.TaxRateBp,
	}

	carts := cart.NewStore()
	wizards := checkout.NewSessions()

	catalogSvc := services.NewCatalogService(catRepo, prodRepo)
	cartSvc := services.NewCartService(carts, prodRepo, tariff)
	checkoutSvc := services.NewCheckoutService(wizards, carts, orderRepo, tariff)
	reviewSvc := services.NewReviewService(reviewRepo, prodRepo)
	ticketSvc := services.NewTicketService(ticketRepo)

	return &Deps{
		CategoryHandler: &CategoryHandler{Catalog: catalogSvc},
		ProductHandler:  &ProductHandler{Catalog: catalogSvc},
		CartHandler:     &CartHandler{Cart: cartSvc},
		CheckoutHandler: &CheckoutHandler{Checkout: checkoutSvc},
		OrderHandler:    &OrderHandler{Repo: orderRepo, Auth: auth},
		ReviewHandler:   &ReviewHandler{Reviews: reviewSvc, Auth: auth},
		TicketHandler:   &TicketHandler{Tickets: ticketSvc, Auth: auth},
	}
}
