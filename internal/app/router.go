package app

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/ordertrack/ordertrack/internal/orders"
	"github.com/ordertrack/ordertrack/internal/reports"
	"github.com/ordertrack/ordertrack/internal/salesmen"
)

// RouterParams groups dependencies for building the HTTP router.
type RouterParams struct {
	Logger          *slog.Logger
	Config          *Config
	OrdersHandler   *orders.Handler
	SalesmenHandler *salesmen.Handler
	ReportsHandler  *reports.Handler
}

// NewRouter constructs the chi.Router with Order Track defaults.
func NewRouter(params RouterParams) http.Handler {
	r := chi.NewRouter()

	for _, mw := range MiddlewareStack(MiddlewareConfig{
		Logger: params.Logger,
		Config: params.Config,
	}) {
		r.Use(mw)
	}

	r.Use(chimw.Logger)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	if params.OrdersHandler != nil {
		params.OrdersHandler.MountRoutes(r)
	}
	if params.SalesmenHandler != nil {
		r.Route("/data", params.SalesmenHandler.MountRoutes)
	}
	if params.ReportsHandler != nil {
		r.Route("/reports", params.ReportsHandler.MountRoutes)
	}

	return r
}
