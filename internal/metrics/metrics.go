// Abiflix - Streaming Catalog and Watchlist Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/abiflix

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// API Endpoint Metrics
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
			Help:    "API request duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	// Catalog Metrics
	CatalogMutations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_mutations_total",
			Help: "Total number of catalog and profile mutations",
		},
		[]string{"operation"}, // add, update, delete, watchlist, history, login
	)

	CatalogTitles = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "catalog_titles",
			Help: "Current number of titles in the catalog",
		},
	)

	CatalogSearches = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "catalog_searches_total",
			Help: "Total number of catalog searches",
		},
	)

	AdminLoginAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "admin_login_attempts_total",
			Help: "Total number of admin login attempts",
		},
		[]string{"result"}, // success, failure
	)

	// Persistence Metrics
	PersistWrites = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "persist_writes_total",
			Help: "Total number of persisted snapshot writes",
		},
		[]string{"key", "result"}, // result: success, failure
	)

	PersistWriteBytes = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "persist_write_bytes",
			Help:    "Size of persisted snapshots in bytes",
			Buckets: prometheus.ExponentialBuckets(256, 4, 8), // 256B .. 4MB
		},
		[]string{"key"},
	)

	StorageGCRuns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storage_gc_runs_total",
			Help: "Badger value log GC passes by result (success, failure)",
		},
		[]string{"result"},
	)

	// Assistant Metrics
	AssistantRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "assistant_requests_total",
			Help: "Total number of assistant completion requests",
		},
		[]string{"result"}, // success, empty, failure, unconfigured
	)

	AssistantDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "assistant_request_duration_seconds",
			Help:    "Assistant completion request duration in seconds",
			Buckets: []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
	)

	AssistantRecommendations = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "assistant_recommendations_total",
			Help: "Total number of catalog titles recommended by the assistant",
		},
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

	CircuitBreakerConsecutiveFailures = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_consecutive_failures",
			Help: "Current number of consecutive failures seen by a circuit breaker",
		},
		[]string{"name"},
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

// RecordMutation counts a catalog or profile mutation and refreshes the title gauge.
func RecordMutation(operation string, titles int) {
	CatalogMutations.WithLabelValues(operation).Inc()
	CatalogTitles.Set(float64(titles))
}

// RecordPersist records the outcome of writing one persisted snapshot.
func RecordPersist(key string, size int, err error) {
	if err != nil {
		PersistWrites.WithLabelValues(key, "failure").Inc()
		return
	}
	PersistWrites.WithLabelValues(key, "success").Inc()
	PersistWriteBytes.WithLabelValues(key).Observe(float64(size))
}

// RecordStorageGC records one value log GC pass.
func RecordStorageGC(err error) {
	if err != nil {
		StorageGCRuns.WithLabelValues("failure").Inc()
		return
	}
	StorageGCRuns.WithLabelValues("success").Inc()
}

// RecordAdminLogin records an admin login attempt.
func RecordAdminLogin(success bool) {
	if success {
		AdminLoginAttempts.WithLabelValues("success").Inc()
		return
	}
	AdminLoginAttempts.WithLabelValues("failure").Inc()
}

// RecordAssistantRequest records an assistant completion round trip.
func RecordAssistantRequest(result string, duration time.Duration, recommended int) {
	AssistantRequests.WithLabelValues(result).Inc()
	if duration > 0 {
		AssistantDuration.Observe(duration.Seconds())
	}
	if recommended > 0 {
		AssistantRecommendations.Add(float64(recommended))
	}
}
