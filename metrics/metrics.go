// Package metrics provides Prometheus metrics collection for the first-aid API.
// It exports HTTP server metrics:
//   - http_request_total: Counter with method, path, and status labels
//   - http_request_duration_seconds: Histogram with method and path labels
//   - http_request_in_flight: Gauge for concurrent requests
//
// and domain metrics:
//   - condition_lookups_total: Counter with outcome label
//   - translation_requests_total: Counter with outcome label
//   - translation_duration_seconds: Histogram of external translation calls
//   - translation_cache_total: Counter with result label (hit, miss, error)
//   - prewarm_runs_total: Counter with outcome label
//
// All metrics are automatically registered with the Prometheus default registry
// during package initialization.
package metrics

import "github.com/prometheus/client_golang/prometheus"

// Label values for ConditionLookups
const (
	OutcomeResolved     = "resolved"
	OutcomeFallback     = "fallback"
	OutcomeInconsistent = "inconsistent"
)

// Label values for TranslationRequests
const (
	TranslationOK      = "ok"
	TranslationError   = "error"
	TranslationEmpty   = "empty"
	TranslationTimeout = "timeout"
)

// Label values for PrewarmRuns
const (
	PrewarmCompleted = "completed"
	PrewarmSkipped   = "skipped"
	PrewarmCancelled = "cancelled"
)

// Label values for TranslationCache
const (
	CacheHit   = "hit"
	CacheMiss  = "miss"
	CacheError = "error"
)

var (
	HTTPRequestTotals = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_request_total",
			Help: "Total HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"method", "path"},
	)

	HTTPRequestInFlight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_request_in_flight",
			Help: "Current in-flight requests",
		},
	)

	RateLimiterBucketsTotal = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "rate_limiter_buckets_total",
			Help: "Total number of rate limiter buckets (client IPs currently tracked)",
		},
	)

	ConditionLookups = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "condition_lookups_total",
			Help: "First-aid queries by resolution outcome",
		},
		[]string{"outcome"},
	)

	TranslationRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "translation_requests_total",
			Help: "External translation calls by outcome",
		},
		[]string{"outcome"},
	)

	TranslationDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "translation_duration_seconds",
			Help:    "External translation call latency",
			Buckets: []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 30},
		},
	)

	TranslationCache = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "translation_cache_total",
			Help: "Translation cache lookups by result",
		},
		[]string{"result"},
	)

	PrewarmRuns = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "prewarm_runs_total",
			Help: "Translation cache prewarm runs by outcome",
		},
		[]string{"outcome"},
	)
)

func init() {
	prometheus.MustRegister(HTTPRequestTotals)
	prometheus.MustRegister(HTTPRequestDuration)
	prometheus.MustRegister(HTTPRequestInFlight)
	prometheus.MustRegister(RateLimiterBucketsTotal)
	prometheus.MustRegister(ConditionLookups)
	prometheus.MustRegister(TranslationRequests)
	prometheus.MustRegister(TranslationDuration)
	prometheus.MustRegister(TranslationCache)
	prometheus.MustRegister(PrewarmRuns)
}
