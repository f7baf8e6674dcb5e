// OSINTDesk - Local OSINT Toolkit Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/osintdesk

// Package logging provides the zerolog-based structured logger used across
// OSINTDesk.
//
// A single global logger is configured once from main and accessed through
// package-level helpers:
//
//	logging.Init(logging.Config{Level: "info", Format: "console"})
//	logging.Info().Str("addr", addr).Msg("HTTP server listening")
//	logging.Error().Err(err).Str("tool", "nmap").Msg("Scan failed")
//
// # Context
//
// HTTP handlers log through Ctx so that the request id assigned by the
// request-id middleware shows up on every line:
//
//	logging.Ctx(r.Context()).Warn().Msg("whois exited non-zero")
//
// The supervision session carries a short correlation id for the same
// purpose.
//
// # slog
//
// sutureslog only speaks log/slog. NewSlogLogger returns a *slog.Logger whose
// handler forwards to the global zerolog logger, so supervisor tree events
// are formatted the same way as application logs.
//
// Always terminate event chains with Msg or Send; an unterminated chain is
// never written.
package logging
