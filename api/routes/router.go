package routes

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/zarnosh/My-E-comerce-Store/api/controllers"
	"github.com/zarnosh/My-E-comerce-Store/api/middleware"
	"github.com/zarnosh/My-E-comerce-Store/internal/cart"
	"github.com/zarnosh/My-E-comerce-Store/internal/checkout"
	"github.com/zarnosh/My-E-comerce-Store/internal/store"
	"github.com/zarnosh/My-E-comerce-Store/pkg/config"
	"github.com/zarnosh/My-E-comerce-Store/pkg/enums"
	"github.com/zarnosh/My-E-comerce-Store/pkg/logger"
)

// Deps are the long-lived components the HTTP surface is built on.
type Deps struct {
	Config   *config.Config
	Logger   *logger.Logger
	Store    *store.Store
	Cart     *cart.Cart
	Checkout *checkout.Service
	// Registry backs /metrics; nil disables the endpoint.
	Registry *prometheus.Registry
	// Backends are pinged by /health/ready.
	Backends map[string]controllers.Pinger
}

func (d Deps) validate() error {
	switch {
	case d.Config == nil:
		return errors.New("config is required")
	case d.Store == nil:
		return errors.New("store is required")
	case d.Cart == nil:
		return errors.New("cart is required")
	case d.Checkout == nil:
		return errors.New("checkout service is required")
	}
	return nil
}

func NewRouter(deps Deps) (http.Handler, error) {
	if err := deps.validate(); err != nil {
		return nil, err
	}
	cfg, logg, st, ct := deps.Config, deps.Logger, deps.Store, deps.Cart
	if logg == nil {
		logg = logger.Nop()
	}

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(cfg.HTTP.CORSOrigins),
		middleware.Session(st, logg),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, deps.Backends))
	})
	if deps.Registry != nil {
		r.Handle("/metrics", promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/session", func(r chi.Router) {
			r.Get("/", controllers.SessionCurrent(st, logg))
			r.Post("/login", controllers.SessionLogin(st, logg))
			r.Post("/logout", controllers.SessionLogout(st))
		})
		r.Get("/toast", controllers.ToastCurrent(st))
		r.Get("/filter-settings", controllers.StorefrontFilterSettings(st))
		r.Get("/categories", controllers.CatalogCategories(st))

		r.Route("/products", func(r chi.Router) {
			r.Get("/", controllers.CatalogBrowse(st, logg))
			r.Get("/featured", controllers.CatalogFeatured(st))
			r.Get("/facets", controllers.CatalogFacets(st))
			r.Get("/{productId}", controllers.CatalogProduct(st, logg))
			r.Post("/{productId}/reviews", controllers.ProductReviewCreate(st, logg))
		})

		r.Route("/wishlist", func(r chi.Router) {
			r.Get("/", controllers.WishlistList(st, logg))
			r.Post("/{productId}/toggle", controllers.WishlistToggle(st, logg))
		})

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", controllers.CartGet(ct))
			r.Delete("/", controllers.CartClear(ct))
			r.Post("/items", controllers.CartAddItem(ct, st, logg))
			r.Patch("/items", controllers.CartUpdateItem(ct, logg))
			r.Delete("/items", controllers.CartRemoveItem(ct, logg))
		})

		r.Post("/checkout", controllers.CheckoutPlaceOrder(deps.Checkout, logg))
		r.Get("/orders", controllers.OrderHistory(st, logg))
		r.Get("/promotions/{code}", controllers.PromotionGet(st, logg))

		r.Route("/admin", func(r chi.Router) {
			r.Use(middleware.RequireRole(enums.UserRoleAdmin.String(), logg))
			mountAdmin(r, st, logg)
		})
	})

	return r, nil
}

func mountAdmin(r chi.Router, st *store.Store, logg *logger.Logger) {
	r.Get("/dashboard", controllers.AdminDashboard(st))
	r.Get("/reports", controllers.AdminReports(st))
	r.Get("/inventory", controllers.AdminInventory(st))

	r.Route("/products", func(r chi.Router) {
		r.Get("/", controllers.AdminProductList(st, logg))
		r.Post("/", controllers.AdminProductCreate(st, logg))
		r.Post("/bulk-delete", controllers.AdminProductBulkDelete(st, logg))
		r.Put("/{productId}", controllers.AdminProductUpdate(st, logg))
		r.Delete("/{productId}", controllers.AdminProductDelete(st, logg))
		r.Patch("/{productId}/stock", controllers.AdminProductStock(st, logg))
	})

	r.Route("/categories", func(r chi.Router) {
		r.Get("/", controllers.AdminCategoryList(st))
		r.Post("/", controllers.AdminCategoryCreate(st, logg))
		r.Put("/{categoryId}", controllers.AdminCategoryUpdate(st, logg))
		r.Delete("/{categoryId}", controllers.AdminCategoryDelete(st, logg))
	})

	r.Route("/orders", func(r chi.Router) {
		r.Get("/", controllers.AdminOrderList(st))
		r.Patch("/{orderId}/status", controllers.AdminOrderStatus(st, logg))
	})

	r.Route("/users", func(r chi.Router) {
		r.Get("/", controllers.AdminUserList(st))
		r.Post("/{userId}/toggle-block", controllers.AdminUserToggleBlock(st, logg))
	})

	r.Route("/promotions", func(r chi.Router) {
		r.Get("/", controllers.AdminPromotionList(st))
		r.Post("/", controllers.AdminPromotionCreate(st, logg))
		r.Put("/{promotionId}", controllers.AdminPromotionUpdate(st, logg))
		r.Delete("/{promotionId}", controllers.AdminPromotionDelete(st, logg))
	})

	r.Route("/trade-areas", func(r chi.Router) {
		r.Get("/", controllers.AdminTradeAreaList(st))
		r.Post("/", controllers.AdminTradeAreaCreate(st, logg))
		r.Put("/{tradeAreaId}", controllers.AdminTradeAreaUpdate(st, logg))
		r.Delete("/{tradeAreaId}", controllers.AdminTradeAreaDelete(st, logg))
	})

	r.Route("/branches", func(r chi.Router) {
		r.Get("/", controllers.AdminBranchList(st))
		r.Post("/", controllers.AdminBranchCreate(st, logg))
		r.Put("/{branchId}", controllers.AdminBranchUpdate(st, logg))
		r.Delete("/{branchId}", controllers.AdminBranchDelete(st, logg))
	})

	r.Route("/filter-settings", func(r chi.Router) {
		r.Get("/", controllers.AdminFilterSettingsGet(st))
		r.Put("/", controllers.AdminFilterSettingsUpdate(st, logg))
	})
}
