// OSINTDesk - Local OSINT Toolkit Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/osintdesk

package tools

import (
	"context"
	"fmt"
	"time"

	"github.com/mattn/go-shellwords"
)

// Nmap runs nmap with user supplied options against one target.
type Nmap struct {
	exec    *Exec
	timeout time.Duration
}

// NewNmap returns an Nmap adapter.
func NewNmap(e *Exec, timeout time.Duration) *Nmap {
	return &Nmap{exec: e, timeout: timeout}
}

// Scan splits args with shell quoting rules and appends target last. No
// shell is involved: $VARS and backticks are kept literally.
func (n *Nmap) Scan(ctx context.Context, args, target string) (string, error) {
	argv, err := SplitArgs(args)
	if err != nil {
		return "", invalidInput("nmap", err)
	}
	argv = append(argv, target)

	res, err := n.exec.Run(ctx, "nmap", n.timeout, argv...)
	if err != nil {
		return "", err
	}
	return res.Stdout, nil
}

// SplitArgs parses s into argv entries.
func SplitArgs(s string) ([]string, error) {
	p := shellwords.NewParser()
	p.ParseEnv = false
	p.ParseBacktick = false

	argv, err := p.Parse(s)
	if err != nil {
		return nil, fmt.Errorf("cannot parse args: %w", err)
	}
	if p.Position >= 0 {
		// Parse stops at ; | && and reports where.
		return nil, fmt.Errorf("cannot parse args: unexpected shell operator at offset %d", p.Position)
	}
	return argv, nil
}
