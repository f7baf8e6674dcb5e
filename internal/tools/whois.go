// OSINTDesk - Local OSINT Toolkit Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/osintdesk

package tools

import (
	"context"
	"time"
)

// Whois runs `whois <domain>`.
type Whois struct {
	exec    *Exec
	timeout time.Duration
}

// NewWhois returns a Whois adapter.
func NewWhois(e *Exec, timeout time.Duration) *Whois {
	return &Whois{exec: e, timeout: timeout}
}

// Lookup returns the raw whois text for domain.
func (w *Whois) Lookup(ctx context.Context, domain string) (string, error) {
	res, err := w.exec.Run(ctx, "whois", w.timeout, domain)
	if err != nil {
		return "", err
	}
	return res.Stdout, nil
}
