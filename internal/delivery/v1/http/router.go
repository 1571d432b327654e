package http

import (
	_ "github.com/DRSN-tech/storefront-backend/docs" // Импорт сгенерированных файлов
	"github.com/DRSN-tech/storefront-backend/internal/usecase"
	"github.com/DRSN-tech/storefront-backend/pkg/logger"
	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

type Router struct {
	router *chi.Mux
	logger logger.Logger
}

func NewRouter(router *chi.Mux, logger logger.Logger) *Router {
	return &Router{router: router, logger: logger}
}

func (r *Router) Init(catalogUC usecase.CatalogUC, cartUC usecase.CartUC, checkoutUC usecase.CheckoutUC) {
	r.router.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("http://localhost:8080/swagger/doc.json"), // ссылка на JSON
	))

	r.router.Route("/api/v1", func(v1 chi.Router) {
		registerCatalogRoutes(v1, NewCatalogHandler(catalogUC, r.logger))
		registerCartRoutes(v1, NewCartHandler(cartUC, r.logger))
		registerCheckoutRoutes(v1, NewCheckoutHandler(checkoutUC, r.logger))
	})
}

func registerCatalogRoutes(router chi.Router, handler *CatalogHandler) {
	router.Get("/filters", handler.getFilters)
	router.Route("/products", func(pr chi.Router) {
		pr.Get("/", handler.listProducts)
		pr.Get("/{slug}", handler.getProduct)
	})
}

func registerCartRoutes(router chi.Router, handler *CartHandler) {
	router.Route("/cart", func(cr chi.Router) {
		cr.Get("/", handler.getCart)
		cr.Post("/items", handler.addItem)
		cr.Put("/items/{productID}/{size}/{color}", handler.setItemQuantity)
		cr.Delete("/items/{productID}/{size}/{color}", handler.removeItem)
		cr.Post("/coupon", handler.applyCoupon)
		cr.Delete("/coupon", handler.removeCoupon)
	})
}

func registerCheckoutRoutes(router chi.Router, handler *CheckoutHandler) {
	router.Post("/checkout", handler.placeOrder)
}
