// Folio - Related Article Recommendations for Blogs
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/folio

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome label values shared by the recommendation and corpus metrics.
const (
	OutcomeSuccess    = "success"
	OutcomeNotFound   = "not_found"
	OutcomeValidation = "validation"
	OutcomeFetchError = "fetch_error"
	OutcomeError      = "error"
)

var (
	// API Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "Duration of API requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of in-flight API requests",
		},
	)

	// Recommendation Metrics
	RecommendRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommend_requests_total",
			Help: "Total number of related-article requests",
		},
		[]string{"operation", "strategy", "outcome"}, // operation: "related", "personalized"
	)

	RecommendDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "recommend_duration_seconds",
			Help:    "Duration of related-article computations in seconds",
			Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		},
		[]string{"operation", "strategy"},
	)

	RecommendCandidatesScored = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "recommend_candidates_scored",
			Help:    "Number of candidate articles scored per cache miss",
			Buckets: prometheus.ExponentialBuckets(1, 4, 8), // 1 .. 16384
		},
	)

	PersonalizationFallbacks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommend_personalization_fallbacks_total",
			Help: "Total number of personalized requests served by the non-personalized path",
		},
		[]string{"reason"}, // "empty_history", "disabled", "error"
	)

	// Result Cache Metrics
	CacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommend_cache_hits_total",
			Help: "Total number of result cache hits",
		},
		[]string{"kind"},
	)

	CacheMisses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommend_cache_misses_total",
			Help: "Total number of result cache misses",
		},
		[]string{"kind"},
	)

	CacheEntries = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "recommend_cache_entries",
			Help: "Current number of cached results",
		},
		[]string{"kind"},
	)

	CacheInvalidations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommend_cache_invalidated_entries_total",
			Help: "Total number of cache entries removed by explicit clears",
		},
		[]string{"scope"}, // "all", "primary", "personalized", "category"
	)

	// Corpus Metrics
	CorpusOperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "corpus_operation_duration_seconds",
			Help:    "Duration of article corpus operations in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"store", "operation"},
	)

	CorpusOperationErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "corpus_operation_errors_total",
			Help: "Total number of failed article corpus operations",
		},
		[]string{"store", "operation"},
	)

	CorpusArticles = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "corpus_articles",
			Help: "Number of articles in the durable corpus",
		},
	)

	// Event Metrics
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "events_published_total",
			Help: "Total number of corpus change events published",
		},
		[]string{"topic"},
	)

	EventsProcessed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "events_processed_total",
			Help: "Total number of corpus change events consumed",
		},
		[]string{"topic", "outcome"},
	)

	// Circuit Breaker Metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_requests_total",
			Help: "Total number of requests through circuit breaker",
		},
		[]string{"name", "result"}, // result: "success", "failure", "rejected"
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_state_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from_state", "to_state"},
	)
)

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordRecommendation records the outcome and latency of one engine call.
func RecordRecommendation(operation, strategy, outcome string, duration time.Duration) {
	RecommendRequests.WithLabelValues(operation, strategy, outcome).Inc()
	RecommendDuration.WithLabelValues(operation, strategy).Observe(duration.Seconds())
}

// RecordCacheLookup records a result cache hit or miss.
func RecordCacheLookup(kind string, hit bool) {
	if hit {
		CacheHits.WithLabelValues(kind).Inc()
		return
	}
	CacheMisses.WithLabelValues(kind).Inc()
}

// UpdateCacheEntries sets the cache size gauges from a per-kind count.
func UpdateCacheEntries(entriesByKind map[string]int) {
	for kind, n := range entriesByKind {
		CacheEntries.WithLabelValues(kind).Set(float64(n))
	}
}

// RecordCacheInvalidation records entries removed by an explicit clear.
func RecordCacheInvalidation(scope string, removed int) {
	CacheInvalidations.WithLabelValues(scope).Add(float64(removed))
}

// RecordCorpusOperation records a corpus operation metric
func RecordCorpusOperation(store, operation string, duration time.Duration, err error) {
	CorpusOperationDuration.WithLabelValues(store, operation).Observe(duration.Seconds())
	if err != nil {
		CorpusOperationErrors.WithLabelValues(store, operation).Inc()
	}
}

// RecordEventPublished records a published change event.
func RecordEventPublished(topic string) {
	EventsPublished.WithLabelValues(topic).Inc()
}

// RecordEventProcessed records a consumed change event.
func RecordEventProcessed(topic string, err error) {
	outcome := OutcomeSuccess
	if err != nil {
		outcome = OutcomeError
	}
	EventsProcessed.WithLabelValues(topic, outcome).Inc()
}
