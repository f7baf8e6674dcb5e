// OSINTDesk - Local OSINT Toolkit Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/osintdesk

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
			Name: "osintdesk_api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "osintdesk_api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.005, 0.01, 0.05, 0.1, 0.5, 1, 2.5, 5, 10, 20},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "osintdesk_api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	APIRateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "osintdesk_api_rate_limit_hits_total",
			Help: "Total number of rate limit rejections",
		},
		[]string{"endpoint"},
	)

	// External Tool Metrics
	ToolInvocations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "osintdesk_tool_invocations_total",
			Help: "External tool and library adapter calls by outcome",
		},
		[]string{"tool", "outcome"}, // outcome: ok, not_found, timeout, failure, invalid_input
	)

	ToolDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "osintdesk_tool_duration_seconds",
			Help:    "Adapter call duration in seconds",
			Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10, 15, 30},
		},
		[]string{"tool"},
	)

	DNSFallbackQueries = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "osintdesk_dns_fallback_queries_total",
			Help: "DNS lookups answered in-process because dig was unavailable",
		},
	)

	// Supervision Session Metrics
	SessionState = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "osintdesk_session_state",
			Help: "Supervision session state (0=starting, 1=running, 2=shutting_down, 3=terminated)",
		},
	)

	ProcessLaunches = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "osintdesk_process_launches_total",
			Help: "Managed process launch attempts",
		},
		[]string{"role", "result"}, // role: primary, secondary; result: started, not_found, failed
	)

	LivenessChecks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "osintdesk_liveness_checks_total",
			Help: "Primary process liveness checks by result",
		},
		[]string{"result"}, // alive, dead
	)

	TrackedDescendants = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "osintdesk_tracked_descendants",
			Help: "Descendant processes of the primary seen alive in the last check",
		},
	)

	// Circuit Breaker Metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "osintdesk_circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "osintdesk_circuit_breaker_requests_total",
			Help: "Total number of requests through circuit breaker",
		},
		[]string{"name", "result"}, // success, failure, rejected
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "osintdesk_circuit_breaker_state_transitions_total",
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

// RecordRateLimitHit counts a request rejected by httprate.
func RecordRateLimitHit(endpoint string) {
	APIRateLimitHits.WithLabelValues(endpoint).Inc()
}

// RecordToolInvocation records one adapter call.
func RecordToolInvocation(tool, outcome string, duration time.Duration) {
	ToolInvocations.WithLabelValues(tool, outcome).Inc()
	ToolDuration.WithLabelValues(tool).Observe(duration.Seconds())
}

// SetSessionState publishes the numeric session state.
func SetSessionState(state int) {
	SessionState.Set(float64(state))
}

// RecordProcessLaunch counts a launch attempt for role.
func RecordProcessLaunch(role, result string) {
	ProcessLaunches.WithLabelValues(role, result).Inc()
}

// RecordLivenessCheck counts one liveness check and the number of live
// descendants it saw.
func RecordLivenessCheck(alive bool, descendants int) {
	if alive {
		LivenessChecks.WithLabelValues("alive").Inc()
	} else {
		LivenessChecks.WithLabelValues("dead").Inc()
	}
	TrackedDescendants.Set(float64(descendants))
}
