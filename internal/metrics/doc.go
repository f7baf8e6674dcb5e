// OSINTDesk - Local OSINT Toolkit Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/osintdesk

/*
Package metrics defines the Prometheus collectors OSINTDesk exposes at
/metrics.

All collectors are registered with the default registry through promauto
at package init.

# Available Metrics

API:
  - osintdesk_api_requests_total{method,endpoint,status_code}
  - osintdesk_api_request_duration_seconds{method,endpoint}
  - osintdesk_api_active_requests
  - osintdesk_api_rate_limit_hits_total{endpoint}

Adapters:
  - osintdesk_tool_invocations_total{tool,outcome}
  - osintdesk_tool_duration_seconds{tool}
  - osintdesk_dns_fallback_queries_total

Supervision session:
  - osintdesk_session_state
  - osintdesk_process_launches_total{role,result}
  - osintdesk_liveness_checks_total{result}
  - osintdesk_tracked_descendants

Connectivity breaker:
  - osintdesk_circuit_breaker_state{name}
  - osintdesk_circuit_breaker_requests_total{name,result}
  - osintdesk_circuit_breaker_state_transitions_total{name,from_state,to_state}
*/
package metrics
