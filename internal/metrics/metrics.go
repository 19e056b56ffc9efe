// Package metrics provides the Prometheus instrumentation for the service.
//
// Standard metrics exposed automatically by prometheus/client_golang:
//   - go_goroutines, go_gc_duration_seconds, etc. (Go runtime)
//   - process_cpu_seconds_total, process_open_fds, etc. (process)
//
// Service metrics registered here:
//
//	ceylonflix_http_requests_total           — counter: HTTP requests by method/path/status
//	ceylonflix_http_request_duration_seconds — histogram: HTTP latency by method/path
//	ceylonflix_catalog_fetches_total         — counter: upstream catalog fetches by row/result
//	ceylonflix_gate_decisions_total          — counter: playback gate decisions by outcome/required tier
//	ceylonflix_tier_changes_total            — counter: viewer tier changes by new tier
package metrics

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// HTTPRequests counts HTTP requests by method, path, and status code.
var HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "ceylonflix_http_requests_total",
	Help: "Total HTTP requests handled.",
}, []string{"method", "path", "status"})

// HTTPDuration tracks HTTP request latency.
var HTTPDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name:    "ceylonflix_http_request_duration_seconds",
	Help:    "HTTP request latency in seconds.",
	Buckets: prometheus.DefBuckets,
}, []string{"method", "path"})

// CatalogFetches counts upstream metadata fetches. result is one of
// live, cache, sample, error.
var CatalogFetches = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "ceylonflix_catalog_fetches_total",
	Help: "Catalog row fetches by row key and result.",
}, []string{"row", "result"})

// GateDecisions counts playback gate outcomes.
var GateDecisions = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "ceylonflix_gate_decisions_total",
	Help: "Playback gate decisions by outcome and required tier.",
}, []string{"outcome", "required_tier"})

// TierChanges counts viewer tier transitions by the new tier.
var TierChanges = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "ceylonflix_tier_changes_total",
	Help: "Viewer tier changes by new tier.",
}, []string{"tier"})

// Handler returns the Prometheus HTTP handler for GET /metrics.
func Handler() http.Handler {
	return promhttp.Handler()
}

// Middleware wraps an HTTP handler to record request counts and latency.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rw := &responseWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rw, r)
		dur := time.Since(start).Seconds()
		path := sanitizePath(r.URL.Path)
		status := strconv.Itoa(rw.status)
		HTTPRequests.WithLabelValues(r.Method, path, status).Inc()
		HTTPDuration.WithLabelValues(r.Method, path).Observe(dur)
	})
}

// responseWriter wraps http.ResponseWriter to capture the status code.
type responseWriter struct {
	http.ResponseWriter
	status int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.status = code
	rw.ResponseWriter.WriteHeader(code)
}

// sanitizePath collapses numeric IDs to :id so label cardinality stays
// bounded. /catalog/movie/693134 becomes /catalog/movie/:id.
func sanitizePath(path string) string {
	segs := strings.Split(path, "/")
	for i, s := range segs {
		if s == "" {
			continue
		}
		if _, err := strconv.Atoi(s); err == nil {
			segs[i] = ":id"
		}
	}
	out := strings.Join(segs, "/")
	if len(out) > 64 {
		return out[:64] + "..."
	}
	return out
}

// Init registers all service metrics with the given prometheus.Registerer.
// This is provided for testing — pass prometheus.NewRegistry() to get an
// isolated registry. In production all metrics are registered via promauto
// to prometheus.DefaultRegisterer at package init time.
func Init(reg prometheus.Registerer) {
	httpReqs := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "ceylonflix_http_requests_total",
		Help: "Total HTTP requests handled.",
	}, []string{"method", "path", "status"})

	httpDur := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "ceylonflix_http_request_duration_seconds",
		Help:    "HTTP request latency in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path"})

	catalogFetches := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "ceylonflix_catalog_fetches_total",
		Help: "Catalog row fetches by row key and result.",
	}, []string{"row", "result"})

	gateDecisions := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "ceylonflix_gate_decisions_total",
		Help: "Playback gate decisions by outcome and required tier.",
	}, []string{"outcome", "required_tier"})

	tierChanges := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "ceylonflix_tier_changes_total",
		Help: "Viewer tier changes by new tier.",
	}, []string{"tier"})

	reg.MustRegister(
		httpReqs,
		httpDur,
		catalogFetches,
		gateDecisions,
		tierChanges,
	)
}
