// OSINTDesk - Local OSINT Toolkit Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/osintdesk

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tomtom215/osintdesk/internal/middleware"
)

// NewRouter binds the Handler's endpoints:
//
//	GET  /            front end (static files)
//	GET  /status      {ip, version, internet_connection}
//	POST /hash        multipart "file" -> {hashes, file_type}
//	POST /metadata    multipart "file" -> {metadata}
//	POST /whois       {domain} -> {output}
//	POST /dig         {domain, record?} -> {output}
//	POST /nmap        {args, range} -> {output}
//	GET  /healthz     {status, session, uptime}
//	GET  /terminal    {url}
//	GET  /metrics     Prometheus, when enabled
func NewRouter(h *Handler) http.Handler {
	mw := NewChiMiddleware(ChiMiddlewareConfigFrom(h.cfg.Security))

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.AccessLog)
	r.Use(chimiddleware.Recoverer)
	r.Use(mw.CORS())

	r.Group(func(r chi.Router) {
		r.Use(APISecurityHeaders())
		r.Use(middleware.PrometheusMetrics)
		r.Use(mw.RateLimit())

		r.Get("/status", h.Status)
		r.Get("/healthz", h.Healthz)
		r.Get("/terminal", h.Terminal)

		r.Post("/hash", h.Hash)
		r.Post("/metadata", h.Metadata)
		r.Post("/whois", h.Whois)
		r.Post("/dig", h.Dig)
		r.With(mw.RateLimitNmap()).Post("/nmap", h.Nmap)
	})

	if h.cfg.Metrics.Enabled {
		r.Method(http.MethodGet, h.cfg.Metrics.Path, promhttp.Handler())
	}

	r.Handle("/*", http.FileServerFS(h.static))

	return r
}
