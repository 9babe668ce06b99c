// Package metrics provides Prometheus instrumentation for shopdesk.
//
// The data layer makes outbound calls to the storefront API; these metrics
// track them by resource, method and status so a dashboard host can spot a
// misbehaving endpoint. Expose them via the ops server:
//
//	r.Get("/metrics", metrics.Handler().ServeHTTP)
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// APIRequestDuration tracks how long each outbound API request takes,
	// broken down by resource, HTTP method, and response status.
	APIRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "shopdesk",
			Subsystem: "api",
			Name:      "request_duration_seconds",
			Help:      "Duration of outbound storefront API requests in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"resource", "method", "status"},
	)

	// APIRequestTotal counts all outbound API requests.
	APIRequestTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "shopdesk",
			Subsystem: "api",
			Name:      "requests_total",
			Help:      "Total number of outbound storefront API requests.",
		},
		[]string{"resource", "method", "status"},
	)

	// APIFailureTotal counts requests that never produced an HTTP response
	// (transport errors). Status-level failures are visible on APIRequestTotal.
	APIFailureTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "shopdesk",
			Subsystem: "api",
			Name:      "transport_failures_total",
			Help:      "Outbound requests that failed before receiving a response.",
		},
		[]string{"resource", "method"},
	)
)

var registry = prometheus.NewRegistry()

func init() {
	registry.MustRegister(
		APIRequestDuration,
		APIRequestTotal,
		APIFailureTotal,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
}

// ObserveRequest records one completed outbound request.
func ObserveRequest(resource, method string, status int, elapsed time.Duration) {
	s := strconv.Itoa(status)
	APIRequestTotal.WithLabelValues(resource, method, s).Inc()
	APIRequestDuration.WithLabelValues(resource, method, s).Observe(elapsed.Seconds())
}

// ObserveFailure records an outbound request that died in transit.
func ObserveFailure(resource, method string) {
	APIFailureTotal.WithLabelValues(resource, method).Inc()
}

// Handler returns the /metrics scrape endpoint.
func Handler() http.Handler {
	return promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
}

// Register adds custom collectors to the shopdesk registry.
func Register(cs ...prometheus.Collector) {
	registry.MustRegister(cs...)
}
