// OSINTDesk - Local OSINT Toolkit Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/osintdesk

/*
Package api is the OSINTDesk HTTP facade.

A Handler is built once from Deps (configuration plus one adapter per tool)
and NewRouter binds it to a Chi router. Every handler makes a single
synchronous adapter call and answers with JSON: the result on success,
{"error": "<message>"} otherwise.

Status codes:

  - 400: missing input ("No file uploaded", "No domain provided",
    "No range provided"), malformed JSON, validation failures and
    tools.KindInvalidInput
  - 413: upload larger than upload.max_bytes
  - 429: rate limit exceeded
  - 502: tools.KindExternalToolFailure
  - 503: tools.KindNotFound (the tool is not installed)
  - 504: tools.KindTimeout

Middleware, outermost first: request id, RealIP, access log, Recoverer,
CORS. API routes additionally get security headers, Prometheus metrics and
an httprate limit; /nmap has a stricter limit of its own.
*/
package api
