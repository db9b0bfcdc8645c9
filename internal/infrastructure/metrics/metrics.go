// Package metrics bundles the Prometheus collectors for the search
// pipeline. All helpers are nil-safe so tests can pass a nil *Metrics.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics bundles Prometheus collectors for the store search pipeline.
type Metrics struct {
	Registry            *prometheus.Registry
	SearchesTotal       prometheus.Counter
	SearchDuration      prometheus.Histogram
	UpstreamRequests    *prometheus.CounterVec
	GeocodeFallbacks    prometheus.Counter
	FallbackStoresTotal prometheus.Counter
	HTTPRequestsTotal   *prometheus.CounterVec
}

// New constructs and registers all metrics on a dedicated registry.
func New() *Metrics {
	registry := prometheus.NewRegistry()

	searches := prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "cartfinder_searches_total",
			Help: "Total store searches executed.",
		},
	)
	searchDuration := prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "cartfinder_search_duration_seconds",
			Help:    "End-to-end latency of one store search.",
			Buckets: prometheus.DefBuckets,
		},
	)
	upstream := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cartfinder_upstream_requests_total",
			Help: "Upstream Google API requests by endpoint and outcome.",
		},
		[]string{"endpoint", "outcome"},
	)
	geocodeFallbacks := prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "cartfinder_geocode_fallbacks_total",
			Help: "Searches that degraded to the fixed fallback coordinate.",
		},
	)
	fallbackStores := prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "cartfinder_fallback_stores_total",
			Help: "Synthesized store records appended to sparse results.",
		},
	)
	httpRequests := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cartfinder_http_requests_total",
			Help: "HTTP requests served, by path and status.",
		},
		[]string{"path", "status"},
	)

	registry.MustRegister(searches, searchDuration, upstream, geocodeFallbacks, fallbackStores, httpRequests)

	return &Metrics{
		Registry:            registry,
		SearchesTotal:       searches,
		SearchDuration:      searchDuration,
		UpstreamRequests:    upstream,
		GeocodeFallbacks:    geocodeFallbacks,
		FallbackStoresTotal: fallbackStores,
		HTTPRequestsTotal:   httpRequests,
	}
}

// IncSearch increments the searches counter.
func (m *Metrics) IncSearch() {
	if m == nil {
		return
	}
	m.SearchesTotal.Inc()
}

// ObserveSearchDuration records one search latency.
func (m *Metrics) ObserveSearchDuration(d time.Duration) {
	if m == nil {
		return
	}
	m.SearchDuration.Observe(d.Seconds())
}

// IncUpstream increments the upstream request counter for an endpoint.
func (m *Metrics) IncUpstream(endpoint, outcome string) {
	if m == nil {
		return
	}
	m.UpstreamRequests.WithLabelValues(endpoint, outcome).Inc()
}

// IncGeocodeFallback increments the geocode fallback counter.
func (m *Metrics) IncGeocodeFallback() {
	if m == nil {
		return
	}
	m.GeocodeFallbacks.Inc()
}

// AddFallbackStores adds to the synthesized store counter.
func (m *Metrics) AddFallbackStores(n int) {
	if m == nil || n <= 0 {
		return
	}
	m.FallbackStoresTotal.Add(float64(n))
}

// IncHTTPRequest increments the served-request counter.
func (m *Metrics) IncHTTPRequest(path, status string) {
	if m == nil {
		return
	}
	m.HTTPRequestsTotal.WithLabelValues(path, status).Inc()
}
