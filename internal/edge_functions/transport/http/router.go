package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/aiqualify/golang_services/internal/platform/cors"
)

// RouterOptions configures NewRouter.
type RouterOptions struct {
	MetricsEnabled bool
	Logger         *slog.Logger
	Validate       *validator.Validate  // optional
	Registry       *prometheus.Registry // optional; a fresh registry with Go and process collectors otherwise
}

// NewRouter mounts every edge function behind the shared middleware stack.
// cors.Middleware runs before routing, so OPTIONS is answered for any path.
func NewRouter(opts RouterOptions) http.Handler {
	validate := opts.Validate
	if validate == nil {
		validate = validator.New()
	}
	registry := opts.Registry
	if registry == nil {
		registry = prometheus.NewRegistry()
		registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}
	metrics := NewFunctionMetrics(registry)

	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))
	r.Use(metrics.Middleware)
	r.Use(cors.Middleware)

	NewHealthHandler(opts.Logger).RegisterRoutes(r)
	NewSiteHandler(opts.Logger).RegisterRoutes(r)
	NewConversationHandler(opts.Logger, validate).RegisterRoutes(r)

	if opts.MetricsEnabled {
		r.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	}
	return r
}
