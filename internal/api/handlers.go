// OSINTDesk - Local OSINT Toolkit Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/osintdesk

package api

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/osintdesk/internal/logging"
	"github.com/tomtom215/osintdesk/internal/validation"
)

// maxJSONBody bounds the JSON request bodies.
const maxJSONBody = 64 << 10

// uploadField is the multipart field carrying the file.
const uploadField = "file"

// Status handles GET /status.
func (h *Handler) Status(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.status.Check(r.Context()))
}

// Hash handles POST /hash.
func (h *Handler) Hash(w http.ResponseWriter, r *http.Request) {
	file, ok := h.upload(w, r)
	if !ok {
		return
	}
	defer file.Close()

	res, err := h.hasher.Hash(file)
	if err != nil {
		respondToolError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, res)
}

// Metadata handles POST /metadata.
func (h *Handler) Metadata(w http.ResponseWriter, r *http.Request) {
	file, ok := h.upload(w, r)
	if !ok {
		return
	}
	defer file.Close()

	md, err := h.metadata.Extract(file)
	if err != nil {
		respondToolError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, MetadataResponse{Metadata: md})
}

// Whois handles POST /whois.
func (h *Handler) Whois(w http.ResponseWriter, r *http.Request) {
	var req validation.WhoisRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	req.Domain = strings.TrimSpace(req.Domain)
	if req.Domain == "" {
		respondError(w, http.StatusBadRequest, msgNoDomain)
		return
	}
	if verr := validation.ValidateStruct(&req); verr != nil {
		respondError(w, http.StatusBadRequest, verr.Error())
		return
	}

	out, err := h.whois.Lookup(r.Context(), req.Domain)
	if err != nil {
		respondToolError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, OutputResponse{Output: out})
}

// Dig handles POST /dig. A missing record type means A.
func (h *Handler) Dig(w http.ResponseWriter, r *http.Request) {
	var req validation.DigRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	req.Domain = strings.TrimSpace(req.Domain)
	req.Record = strings.TrimSpace(req.Record)
	if req.Domain == "" {
		respondError(w, http.StatusBadRequest, msgNoDomain)
		return
	}
	if verr := validation.ValidateStruct(&req); verr != nil {
		respondError(w, http.StatusBadRequest, verr.Error())
		return
	}

	out, err := h.dig.Query(r.Context(), req.Domain, req.Record)
	if err != nil {
		respondToolError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, OutputResponse{Output: out})
}

// Nmap handles POST /nmap.
func (h *Handler) Nmap(w http.ResponseWriter, r *http.Request) {
	var req validation.NmapRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	req.Range = strings.TrimSpace(req.Range)
	if req.Range == "" {
		respondError(w, http.StatusBadRequest, msgNoRange)
		return
	}
	if verr := validation.ValidateStruct(&req); verr != nil {
		respondError(w, http.StatusBadRequest, verr.Error())
		return
	}

	logging.Ctx(r.Context()).Info().Str("range", req.Range).Str("args", sanitizeLogValue(req.Args)).Msg("Starting nmap scan")
	out, err := h.nmap.Scan(r.Context(), req.Args, req.Range)
	if err != nil {
		respondToolError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, OutputResponse{Output: out})
}

// Healthz handles GET /healthz.
func (h *Handler) Healthz(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, HealthResponse{
		Status:  "ok",
		Session: h.sessionState(),
		Uptime:  time.Since(h.startTime).Round(time.Second).String(),
	})
}

// Terminal handles GET /terminal.
func (h *Handler) Terminal(w http.ResponseWriter, _ *http.Request) {
	if !h.cfg.Terminal.Enabled {
		respondError(w, http.StatusNotFound, msgTerminalOff)
		return
	}
	respondJSON(w, http.StatusOK, TerminalResponse{URL: h.cfg.Terminal.URL()})
}

// upload returns the uploaded file, or writes the error response and
// reports false.
func (h *Handler) upload(w http.ResponseWriter, r *http.Request) (multipart.File, bool) {
	if r.ContentLength > h.cfg.Upload.MaxBytes {
		respondError(w, http.StatusRequestEntityTooLarge, msgFileTooLarge)
		return nil, false
	}
	r.Body = http.MaxBytesReader(w, r.Body, h.cfg.Upload.MaxBytes)
	if err := r.ParseMultipartForm(h.cfg.Upload.MaxMemory); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			respondError(w, http.StatusRequestEntityTooLarge, msgFileTooLarge)
			return nil, false
		}
		respondError(w, http.StatusBadRequest, msgNoFile)
		return nil, false
	}

	file, _, err := r.FormFile(uploadField)
	if err != nil {
		respondError(w, http.StatusBadRequest, msgNoFile)
		return nil, false
	}
	return file, true
}

// decodeJSON reads a JSON body into v. An empty body leaves v zero.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxJSONBody))
	if err := dec.Decode(v); err != nil && !errors.Is(err, io.EOF) {
		respondError(w, http.StatusBadRequest, msgInvalidJSON)
		return false
	}
	return true
}
