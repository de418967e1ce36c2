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

// UseCases собирает зависимости всех обработчиков.
type UseCases struct {
	Catalog  usecase.CatalogUC
	Cart     usecase.CartUC
	Checkout usecase.CheckoutUC
	Auth     usecase.AuthUC
	TryOn    usecase.TryOnUC
	Wishlist usecase.WishlistUC
	Tokens   usecase.TokenManager
}

func (r *Router) Init(uc UseCases) {
	r.router.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("http://localhost:8080/swagger/doc.json"), // ссылка на JSON
	))

	authMW := NewAuthMiddleware(uc.Tokens, r.logger)

	r.router.Route("/api/v1", func(v1 chi.Router) {
		registerCatalogRoutes(v1, NewCatalogHandler(uc.Catalog, r.logger))
		registerAuthRoutes(v1, NewAuthHandler(uc.Auth, r.logger), authMW)
		registerCheckoutRoutes(v1, NewCheckoutHandler(uc.Checkout, r.logger), authMW)
		registerCartRoutes(v1, NewCartHandler(uc.Cart, r.logger), authMW)
		registerTryOnRoutes(v1, NewTryOnHandler(uc.TryOn, r.logger), authMW)
		registerWishlistRoutes(v1, NewWishlistHandler(uc.Wishlist, r.logger), authMW)
		registerAdminRoutes(v1, NewAdminHandler(uc.Catalog, r.logger), authMW)
	})
}

func registerCatalogRoutes(router chi.Router, h *CatalogHandler) {
	router.Route("/products", func(pr chi.Router) {
		pr.Get("/", h.listProducts)
		pr.Get("/search", h.searchProducts)
		pr.Get("/{id}", h.getProduct)
	})
}

func registerAuthRoutes(router chi.Router, h *AuthHandler, mw *AuthMiddleware) {
	router.Route("/auth", func(auth chi.Router) {
		auth.Post("/register", h.register)
		auth.Post("/login", h.login)
		auth.Post("/forgot-password", h.forgotPassword)
		auth.Post("/reset-password", h.resetPassword)

		auth.Group(func(private chi.Router) {
			private.Use(mw.Authenticate)
			private.Get("/profile", h.profile)
		})
	})
}

func registerCartRoutes(router chi.Router, h *CartHandler, mw *AuthMiddleware) {
	router.Route("/cart", func(cart chi.Router) {
		cart.Use(mw.Authenticate)
		cart.Get("/", h.getCart)
		cart.Post("/items", h.addToCart)
		cart.Put("/items/{productID}", h.updateQuantity)
		cart.Delete("/items/{productID}", h.removeFromCart)
	})
}

func registerCheckoutRoutes(router chi.Router, h *CheckoutHandler, mw *AuthMiddleware) {
	router.Route("/checkout", func(checkout chi.Router) {
		checkout.Get("/shipping-options", h.shippingOptions)
		checkout.Get("/payment-methods", h.paymentMethods)
	})

	router.Route("/orders", func(orders chi.Router) {
		orders.Use(mw.Authenticate)
		orders.Post("/", h.placeOrder)
		orders.Get("/", h.listOrders)
	})
}

func registerTryOnRoutes(router chi.Router, h *TryOnHandler, mw *AuthMiddleware) {
	router.Route("/try-on", func(tryOn chi.Router) {
		tryOn.Use(mw.Authenticate)
		tryOn.Post("/", h.submit)
		tryOn.Get("/history", h.history)
	})
}

func registerWishlistRoutes(router chi.Router, h *WishlistHandler, mw *AuthMiddleware) {
	router.Route("/wishlist", func(wishlist chi.Router) {
		wishlist.Use(mw.Authenticate)
		wishlist.Get("/", h.list)
		wishlist.Post("/", h.add)
		wishlist.Delete("/{productID}", h.remove)
	})
}

func registerAdminRoutes(router chi.Router, h *AdminHandler, mw *AuthMiddleware) {
	router.Route("/admin/products", func(admin chi.Router) {
		admin.Use(mw.Authenticate, mw.RequireAdmin)
		admin.Post("/", h.createProduct)
		admin.Put("/{id}", h.updateProduct)
		admin.Delete("/{id}", h.archiveProduct)
	})
}
