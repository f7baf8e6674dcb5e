// OSINTDesk - Local OSINT Toolkit Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/osintdesk

/*
Package middleware provides the generic HTTP middleware mounted by the
router: request id propagation, access logging and Prometheus
instrumentation.

Order matters; the router installs them as:

	r.Use(middleware.RequestID)
	r.Use(middleware.AccessLog)
	r.Use(middleware.PrometheusMetrics)

CORS, rate limiting and security headers are API specific and live in the
api package.
*/
package middleware
