package webserver

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/modelsync-hq/modelsync/internal/catalog"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "modelsync_http_requests_total",
		Help: "HTTP requests served, by route, method and status code.",
	}, []string{"route", "method", "code"})

	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "modelsync_http_request_duration_seconds",
		Help:    "HTTP request latency, by route and method.",
		Buckets: prometheus.DefBuckets,
	}, []string{"route", "method"})

	syncRunsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "modelsync_sync_runs_total",
		Help: "Sync runs triggered through the API, by result.",
	}, []string{"result"})

	catalogModels = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "modelsync_catalog_models",
		Help: "Models currently in the catalog, by provider id.",
	}, []string{"provider"})
)

// metricsMiddleware counts and times every request by chi route pattern.
func metricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		route := chi.RouteContext(r.Context()).RoutePattern()
		if route == "" {
			route = "unmatched"
		}
		httpRequestsTotal.WithLabelValues(route, r.Method, strconv.Itoa(ww.Status())).Inc()
		httpRequestDuration.WithLabelValues(route, r.Method).Observe(time.Since(start).Seconds())
	})
}

// updateCatalogMetrics refreshes the per-provider model gauge from a
// loaded catalog.
func updateCatalogMetrics(cat catalog.Catalog) {
	catalogModels.Reset()
	for _, rec := range cat.Managed {
		catalogModels.WithLabelValues(rec.ProviderID).Inc()
	}
	for _, rec := range cat.Other {
		providerID := rec.ProviderID
		if providerID == "" {
			providerID = "unknown"
		}
		catalogModels.WithLabelValues(providerID).Inc()
	}
}
