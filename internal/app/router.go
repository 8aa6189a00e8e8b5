package app

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/stockpilot-erp/stockpilot-erp/internal/activity"
	"github.com/stockpilot-erp/stockpilot-erp/internal/analytics"
	"github.com/stockpilot-erp/stockpilot-erp/internal/categories"
	"github.com/stockpilot-erp/stockpilot-erp/internal/gst"
	"github.com/stockpilot-erp/stockpilot-erp/internal/inventory"
	"github.com/stockpilot-erp/stockpilot-erp/internal/locations"
	"github.com/stockpilot-erp/stockpilot-erp/internal/observability"
	"github.com/stockpilot-erp/stockpilot-erp/internal/payments"
	"github.com/stockpilot-erp/stockpilot-erp/internal/products"
	"github.com/stockpilot-erp/stockpilot-erp/internal/suppliers"
	"github.com/stockpilot-erp/stockpilot-erp/internal/transactions"
	"github.com/stockpilot-erp/stockpilot-erp/internal/users"
)

// RouterParams groups dependencies for building the HTTP router.
type RouterParams struct {
	Logger *slog.Logger
	Config *Config

	UsersHandler        *users.Handler
	LocationsHandler    *locations.Handler
	CategoriesHandler   *categories.Handler
	ProductsHandler     *products.Handler
	SuppliersHandler    *suppliers.Handler
	InventoryHandler    *inventory.Handler
	TransactionsHandler *transactions.Handler
	PaymentsHandler     *payments.Handler
	ActivityHandler     *activity.Handler
	AnalyticsHandler    *analytics.Handler
	GstHandler          *gst.Handler

	Metrics *observability.Metrics
}

// NewRouter constructs the chi.Router with StockPilot defaults.
func NewRouter(params RouterParams) http.Handler {
	r := chi.NewRouter()

	for _, mw := range MiddlewareStack(MiddlewareConfig{
		Logger:  params.Logger,
		Config:  params.Config,
		Metrics: params.Metrics,
	}) {
		r.Use(mw)
	}

	r.Use(chimw.Logger)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	if params.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", params.Metrics.Handler())
	}

	r.Route("/api", func(api chi.Router) {
		params.UsersHandler.MountRoutes(api)
		params.LocationsHandler.MountRoutes(api)
		params.CategoriesHandler.MountRoutes(api)
		params.ProductsHandler.MountRoutes(api)
		params.SuppliersHandler.MountRoutes(api)
		params.InventoryHandler.MountRoutes(api)
		params.TransactionsHandler.MountRoutes(api)
		params.PaymentsHandler.MountRoutes(api)
		params.ActivityHandler.MountRoutes(api)
		params.AnalyticsHandler.MountRoutes(api)
		params.GstHandler.MountRoutes(api)
	})

	return r
}
