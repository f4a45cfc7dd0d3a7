package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	// preflightFunction labels OPTIONS requests, which cors.Middleware answers before routing.
	preflightFunction = "preflight"
	// unmatchedFunction labels requests no edge function claimed.
	unmatchedFunction = "unmatched"
)

// FunctionMetrics records per-function request counts, latency and concurrency.
type FunctionMetrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
	inFlight prometheus.Gauge
}

// NewFunctionMetrics registers the edge function collectors on reg.
func NewFunctionMetrics(reg prometheus.Registerer) *FunctionMetrics {
	factory := promauto.With(reg)
	return &FunctionMetrics{
		requests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "edge_function_requests_total",
				Help: "Total number of edge function requests.",
			},
			[]string{"function", "method", "status_code"},
		),
		duration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "edge_function_request_duration_seconds",
				Help:    "Duration of edge function requests.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"function"},
		),
		inFlight: factory.NewGauge(prometheus.GaugeOpts{
			Name: "edge_function_requests_in_flight",
			Help: "Edge function requests currently being served.",
		}),
	}
}

// Middleware must be mounted ahead of cors.Middleware so preflights are counted.
func (m *FunctionMetrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		m.inFlight.Inc()
		defer m.inFlight.Dec()

		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		function := functionName(r)
		m.duration.WithLabelValues(function).Observe(time.Since(start).Seconds())
		m.requests.WithLabelValues(function, r.Method, strconv.Itoa(status)).Inc()
	})
}

// functionName is the route pattern that served r, read after routing completed.
func functionName(r *http.Request) string {
	if r.Method == http.MethodOptions {
		return preflightFunction
	}
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if pattern := rctx.RoutePattern(); pattern != "" {
			return pattern
		}
	}
	return unmatchedFunction
}
