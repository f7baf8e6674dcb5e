// OSINTDesk - Local OSINT Toolkit Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/osintdesk

package tools

import (
	"errors"
	"fmt"
)

// ErrorKind classifies adapter failures.
type ErrorKind int

const (
	// KindNotFound means the executable could not be located.
	KindNotFound ErrorKind = iota + 1
	// KindTimeout means the call exceeded its deadline.
	KindTimeout
	// KindExternalToolFailure means the tool ran and failed; ExitCode is set
	// when it exited on its own.
	KindExternalToolFailure
	// KindInvalidInput means the request could not be turned into a call.
	KindInvalidInput
)

func (k ErrorKind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindTimeout:
		return "timeout"
	case KindExternalToolFailure:
		return "failure"
	case KindInvalidInput:
		return "invalid_input"
	default:
		return "unknown"
	}
}

// Error is the typed error every adapter returns.
type Error struct {
	Kind     ErrorKind
	Tool     string
	ExitCode int
	Err      error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindNotFound:
		return fmt.Sprintf("%s is not installed or not on PATH", e.Tool)
	case KindTimeout:
		if e.Err != nil {
			return fmt.Sprintf("%s timed out: %v", e.Tool, e.Err)
		}
		return e.Tool + " timed out"
	case KindExternalToolFailure:
		if e.ExitCode > 0 {
			if e.Err != nil {
				return fmt.Sprintf("%s exited with status %d: %v", e.Tool, e.ExitCode, e.Err)
			}
			return fmt.Sprintf("%s exited with status %d", e.Tool, e.ExitCode)
		}
		if e.Err != nil {
			return fmt.Sprintf("%s failed: %v", e.Tool, e.Err)
		}
		return e.Tool + " failed"
	default:
		if e.Err != nil {
			return e.Err.Error()
		}
		return "invalid input"
	}
}

func (e *Error) Unwrap() error { return e.Err }

// KindOf returns the kind of the first *Error in err's chain.
func KindOf(err error) (ErrorKind, bool) {
	var te *Error
	if errors.As(err, &te) {
		return te.Kind, true
	}
	return 0, false
}

// outcome is the metrics label for err.
func outcome(err error) string {
	if err == nil {
		return "ok"
	}
	if k, ok := KindOf(err); ok {
		return k.String()
	}
	return "failure"
}

func invalidInput(tool string, err error) *Error {
	return &Error{Kind: KindInvalidInput, Tool: tool, Err: err}
}
