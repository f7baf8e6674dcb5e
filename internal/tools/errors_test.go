// OSINTDesk - Local OSINT Toolkit Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/osintdesk

package tools

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestErrorKindString(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		want string
	}{
		{KindNotFound, "not_found"},
		{KindTimeout, "timeout"},
		{KindExternalToolFailure, "failure"},
		{KindInvalidInput, "invalid_input"},
		{ErrorKind(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("ErrorKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{"not found", &Error{Kind: KindNotFound, Tool: "whois"}, "whois is not installed"},
		{"timeout", &Error{Kind: KindTimeout, Tool: "nmap"}, "nmap timed out"},
		{"exit status", &Error{Kind: KindExternalToolFailure, Tool: "dig", ExitCode: 9, Err: errors.New("no servers")}, "dig exited with status 9: no servers"},
		{"failure without exit", &Error{Kind: KindExternalToolFailure, Tool: "exif", ExitCode: -1}, "exif failed"},
		{"invalid", invalidInput("nmap", errors.New("bad quote")), "bad quote"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); !strings.Contains(got, tt.want) {
				t.Errorf("Error() = %q, want it to contain %q", got, tt.want)
			}
		})
	}
}

func TestKindOfWrapped(t *testing.T) {
	inner := &Error{Kind: KindTimeout, Tool: "ping"}
	wrapped := fmt.Errorf("status: %w", inner)

	kind, ok := KindOf(wrapped)
	if !ok || kind != KindTimeout {
		t.Errorf("KindOf(wrapped) = %v, %v; want timeout, true", kind, ok)
	}
	if _, ok := KindOf(errors.New("plain")); ok {
		t.Error("KindOf(plain error) should report false")
	}
	if outcome(nil) != "ok" || outcome(wrapped) != "timeout" || outcome(errors.New("x")) != "failure" {
		t.Error("outcome labels do not match error kinds")
	}
}

func TestErrorUnwrap(t *testing.T) {
	cause := errors.New("boom")
	err := &Error{Kind: KindExternalToolFailure, Tool: "whois", Err: cause}
	if !errors.Is(err, cause) {
		t.Error("errors.Is should reach the cause")
	}
}
