// OSINTDesk - Local OSINT Toolkit Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/osintdesk

package api

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/goccy/go-json"

	"github.com/tomtom215/osintdesk/internal/logging"
	"github.com/tomtom215/osintdesk/internal/tools"
)

// Client facing messages.
const (
	msgNoFile        = "No file uploaded"
	msgNoDomain      = "No domain provided"
	msgNoRange       = "No range provided"
	msgInvalidJSON   = "Invalid JSON body"
	msgFileTooLarge  = "File too large"
	msgTooMany       = "Too many requests"
	msgTerminalOff   = "Terminal is disabled"
	msgInternalError = "Internal server error"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// OutputResponse is the body of /whois, /dig and /nmap.
type OutputResponse struct {
	Output string `json:"output"`
}

// MetadataResponse is the body of /metadata.
type MetadataResponse struct {
	Metadata map[string]any `json:"metadata"`
}

// HealthResponse is the body of /healthz.
type HealthResponse struct {
	Status  string `json:"status"`
	Session string `json:"session"`
	Uptime  string `json:"uptime"`
}

// TerminalResponse is the body of /terminal.
type TerminalResponse struct {
	URL string `json:"url"`
}

// respondJSON writes v with status. Responses are never cached: every
// answer comes from a fresh tool run.
func respondJSON(w http.ResponseWriter, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		logging.Error().Err(err).Msg("Failed to marshal JSON response")
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"` + msgInternalError + `"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		logging.Debug().Err(err).Msg("Failed to write JSON response")
	}
}

// respondError writes {"error": message}.
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondToolError maps an adapter error to a status code.
func respondToolError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusBadGateway
	kind, ok := tools.KindOf(err)
	if ok {
		switch kind {
		case tools.KindInvalidInput:
			status = http.StatusBadRequest
		case tools.KindNotFound:
			status = http.StatusServiceUnavailable
		case tools.KindTimeout:
			status = http.StatusGatewayTimeout
		case tools.KindExternalToolFailure:
			status = http.StatusBadGateway
		}
	}

	ev := logging.Ctx(r.Context()).Warn()
	if status == http.StatusBadRequest {
		ev = logging.Ctx(r.Context()).Debug()
	}
	ev.Str("path", r.URL.Path).Str("kind", kind.String()).Str("error", sanitizeLogValue(err.Error())).
		Msg("Tool call failed")

	respondError(w, status, err.Error())
}

// sanitizeLogValue escapes control characters so tool output cannot forge
// log lines.
func sanitizeLogValue(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r < 0x20 || r == 0x7F {
			fmt.Fprintf(&b, "\\x%02x", r)
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}
