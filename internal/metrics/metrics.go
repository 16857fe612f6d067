// SkillSync - Student Career Guidance Platform
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/skillsync

// Package metrics exposes Prometheus instrumentation for the HTTP API, the
// recommendation engine, the stores, and the upstream LLM client.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP metrics
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "skillsync_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "skillsync_http_requests_in_flight",
			Help: "Current number of HTTP requests being served",
		},
	)

	// Engine metrics
	PathwayComputations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "skillsync_pathway_computations_total",
			Help: "Total career pathway computations by recommended role",
		},
		[]string{"role"},
	)

	DashboardComputations = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "skillsync_dashboard_computations_total",
			Help: "Total dashboard metric computations",
		},
	)

	// Auth metrics
	AuthAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "skillsync_auth_attempts_total",
			Help: "Authentication attempts by operation and outcome",
		},
		[]string{"operation", "outcome"}, // operation: register|login, outcome: success|failure
	)

	RegisteredUsers = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "skillsync_registered_users",
			Help: "Number of registered user accounts",
		},
	)

	// LLM metrics
	LLMRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "skillsync_llm_request_duration_seconds",
			Help:    "Duration of upstream LLM requests in seconds",
			Buckets: []float64{0.25, 0.5, 1, 2.5, 5, 10, 20, 30, 60},
		},
		[]string{"operation", "status"},
	)

	LLMTokensUsed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "skillsync_llm_tokens_total",
			Help: "Total LLM tokens consumed",
		},
		[]string{"type"}, // "prompt" or "completion"
	)

	// Circuit breaker metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "skillsync_circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "skillsync_circuit_breaker_requests_total",
			Help: "Circuit breaker request outcomes",
		},
		[]string{"name", "outcome"}, // outcome: success|failure|rejected
	)

	// Progress store metrics
	ProgressUpdates = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "skillsync_progress_updates_total",
			Help: "Total skill progress updates persisted",
		},
	)
)

// ObserveHTTPRequest records one served request.
func ObserveHTTPRequest(method, route string, status int, duration time.Duration) {
	HTTPRequestDuration.WithLabelValues(method, route, strconv.Itoa(status)).Observe(duration.Seconds())
}

// ObserveLLMRequest records one upstream LLM call.
func ObserveLLMRequest(operation, status string, duration time.Duration) {
	LLMRequestDuration.WithLabelValues(operation, status).Observe(duration.Seconds())
}
