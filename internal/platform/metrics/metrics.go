// Package metrics holds the Prometheus collectors for the service.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Verification outcomes.
const (
	OutcomeVerified      = "verified"
	OutcomeRejected      = "rejected"
	OutcomeInvalid       = "invalid"
	OutcomeMisconfigured = "misconfigured"
	OutcomeError         = "error"
	OutcomeCacheHit      = "cache_hit"
)

var (
	// Registry holds the application-specific Prometheus collectors.
	Registry = prometheus.NewRegistry()

	httpInFlight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "coin_wallet",
			Subsystem: "http",
			Name:      "inflight_requests",
			Help:      "Current number of in-flight HTTP requests.",
		},
	)

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "coin_wallet",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled.",
		},
		[]string{"method", "route", "status"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "coin_wallet",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10), // 5ms to ~5s
		},
		[]string{"method", "route"},
	)

	verifications = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "coin_wallet",
			Subsystem: "bank",
			Name:      "verifications_total",
			Help:      "Bank account verifications by outcome.",
		},
		[]string{"outcome"},
	)

	upstreamDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "coin_wallet",
			Subsystem: "upstream",
			Name:      "request_duration_seconds",
			Help:      "Duration of outbound provider calls.",
			Buckets:   prometheus.ExponentialBuckets(0.01, 2, 10),
		},
		[]string{"provider", "success"},
	)

	cachePurged = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "coin_wallet",
			Subsystem: "bank",
			Name:      "verification_cache_purged_total",
			Help:      "Expired verification cache entries removed.",
		},
	)
)

func init() {
	Registry.MustRegister(
		httpInFlight,
		httpRequests,
		httpDuration,
		verifications,
		upstreamDuration,
		cachePurged,
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
		prometheus.NewGoCollector(),
	)
}

// Handler returns an HTTP handler exposing the registered Prometheus metrics.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

// ObserveHTTP records one handled request. route should be the matched route
// pattern, not the raw path, to keep label cardinality bounded.
func ObserveHTTP(method, route, status string, duration time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	method = normalizeMethod(method)
	httpRequests.WithLabelValues(method, route, status).Inc()
	httpDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// normalizeMethod collapses methods outside the standard set into "other".
func normalizeMethod(method string) string {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodPost, http.MethodPut, http.MethodPatch,
		http.MethodDelete, http.MethodConnect, http.MethodOptions, http.MethodTrace:
		return method
	default:
		return "other"
	}
}

// TrackInFlight increments the in-flight gauge and returns the matching decrement.
func TrackInFlight() func() {
	httpInFlight.Inc()
	return httpInFlight.Dec
}

// RecordVerification counts a verification outcome.
func RecordVerification(outcome string) {
	verifications.WithLabelValues(outcome).Inc()
}

// RecordUpstreamCall records the duration of an outbound provider call.
func RecordUpstreamCall(provider string, duration time.Duration, success bool) {
	result := "false"
	if success {
		result = "true"
	}
	upstreamDuration.WithLabelValues(provider, result).Observe(duration.Seconds())
}

// RecordCachePurge counts purged cache entries.
func RecordCachePurge(n int64) {
	if n > 0 {
		cachePurged.Add(float64(n))
	}
}
