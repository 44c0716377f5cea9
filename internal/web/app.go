// Package web serves the storefront: HTML pages with form actions, a JSON
// API over the same cart operations, and the ops endpoints.
package web

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"Storefront/internal/cart"
	"Storefront/internal/catalog"
	"Storefront/internal/checkout"
	"Storefront/pkg/kit"
)

const (
	readyTimeout = 1 * time.Second
	limitWindow  = 60 * time.Second
)

type Server struct {
	Catalog  *catalog.Catalog
	Carts    *cart.Service
	Checkout *checkout.Service
	Visitors *VisitorTokens
	Log      *zap.Logger
}

type HTTPDeps struct {
	Log      *zap.Logger
	Service  string
	Registry *prometheus.Registry
	Metrics  *kit.Metrics

	MetricsEnabled bool
	MetricsToken   string

	CheckoutLimitPerMin int
}

func NewHandler(s *Server, deps HTTPDeps) http.Handler {
	r := chi.NewRouter()

	setupMiddleware(r, deps)
	setupMetrics(r, deps)

	r.Get("/healthz", healthz)
	r.Get("/readyz", s.readyz)

	checkoutLimiter := kit.NewIPRateLimiter(deps.CheckoutLimitPerMin, limitWindow)

	r.Group(func(pr chi.Router) {
		pr.Use(Visitor(s.Visitors))

		pr.Get("/", s.home)
		pr.Get("/cart", s.cartPage)
		pr.Get("/checkout", s.checkoutPage)

		pr.Post("/cart/add", s.addAction)
		pr.Post("/cart/update", s.updateAction)
		pr.Post("/cart/remove", s.removeAction)
		pr.Post("/cart/clear", s.clearAction)
		pr.With(checkoutLimiter.Middleware).Post("/checkout", s.checkoutAction)

		pr.Route("/api", func(ar chi.Router) {
			(&catalog.Server{Catalog: s.Catalog}).Register(ar)
			s.apiRoutes(ar)
			ar.With(checkoutLimiter.Middleware).Post("/checkout", s.apiCheckout)
		})
	})

	return r
}

func setupMiddleware(r *chi.Mux, deps HTTPDeps) {
	r.Use(chimw.RequestID)
	r.Use(kit.Recoverer)
	r.Use(kit.Logging(deps.Log))
}

func setupMetrics(r *chi.Mux, deps HTTPDeps) {
	if deps.Metrics != nil {
		r.Use(deps.Metrics.Middleware(deps.Service, kit.ChiRoutePatternOrPath))
	}

	if !deps.MetricsEnabled || deps.Registry == nil {
		return
	}

	r.With(kit.MetricsAuth(deps.MetricsToken)).
		Handle("/metrics", promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{}))
}

func healthz(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func (s *Server) readyz(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), readyTimeout)
	defer cancel()

	if err := s.Carts.Store.KV.Ping(ctx); err != nil {
		s.logger().Warn("readyz failed", zap.Error(err))
		kit.WriteError(w, r, http.StatusServiceUnavailable, "not ready", nil)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (s *Server) logger() *zap.Logger {
	if s.Log == nil {
		return zap.NewNop()
	}
	return s.Log
}
