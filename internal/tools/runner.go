// OSINTDesk - Local OSINT Toolkit Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/osintdesk

package tools

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"
	"time"

	"github.com/tomtom215/osintdesk/internal/logging"
	"github.com/tomtom215/osintdesk/internal/metrics"
)

// maxOutput caps captured stdout and stderr per call.
const maxOutput = 4 << 20

// waitDelay bounds how long Run waits for stray children holding the
// output pipes after the tool itself was killed.
const waitDelay = 2 * time.Second

// PathResolver locates executables. *binpath.Resolver implements it.
type PathResolver interface {
	Resolve(name string) (string, error)
}

// Result is the captured output of one tool run.
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// Exec runs external tools with a deadline and maps failures to *Error.
type Exec struct {
	resolver PathResolver
}

// NewExec returns an Exec resolving tool names through r.
func NewExec(r PathResolver) *Exec {
	return &Exec{resolver: r}
}

// Available reports whether tool can be resolved.
func (e *Exec) Available(tool string) bool {
	_, err := e.resolver.Resolve(tool)
	return err == nil
}

// Run executes tool with args, killing it after timeout.
//
// A non-zero exit that still wrote to stdout is not an error: the Result is
// returned with ExitCode set (whois, for one, exits 1 on "no match" while
// printing the registry's answer). A non-zero exit with empty stdout is a
// KindExternalToolFailure carrying stderr.
func (e *Exec) Run(ctx context.Context, tool string, timeout time.Duration, args ...string) (Result, error) {
	start := time.Now()
	res, err := e.run(ctx, tool, timeout, args)
	metrics.RecordToolInvocation(tool, outcome(err), time.Since(start))
	return res, err
}

func (e *Exec) run(ctx context.Context, tool string, timeout time.Duration, args []string) (Result, error) {
	path, err := e.resolver.Resolve(tool)
	if err != nil {
		return Result{}, &Error{Kind: KindNotFound, Tool: tool, Err: err}
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	var stdout, stderr cappedBuffer
	stdout.max, stderr.max = maxOutput, maxOutput

	cmd := exec.CommandContext(ctx, path, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	cmd.WaitDelay = waitDelay

	logging.Ctx(ctx).Debug().Str("tool", tool).Strs("args", args).Msg("Running external tool")
	runErr := cmd.Run()

	res := Result{Stdout: stdout.String(), Stderr: stderr.String()}
	if cmd.ProcessState != nil {
		res.ExitCode = cmd.ProcessState.ExitCode()
	}

	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return res, &Error{Kind: KindTimeout, Tool: tool, Err: errors.New("no result within " + timeout.String())}
	}
	if runErr == nil {
		return res, nil
	}

	var exitErr *exec.ExitError
	if errors.As(runErr, &exitErr) && exitErr.ExitCode() > 0 {
		if strings.TrimSpace(res.Stdout) != "" {
			logging.Ctx(ctx).Debug().Str("tool", tool).Int("exit_code", res.ExitCode).
				Msg("Tool exited non-zero but produced output")
			return res, nil
		}
		var cause error
		if msg := strings.TrimSpace(res.Stderr); msg != "" {
			cause = errors.New(msg)
		}
		return res, &Error{Kind: KindExternalToolFailure, Tool: tool, ExitCode: res.ExitCode, Err: cause}
	}

	if ctx.Err() != nil {
		return res, &Error{Kind: KindExternalToolFailure, Tool: tool, ExitCode: -1, Err: ctx.Err()}
	}
	return res, &Error{Kind: KindExternalToolFailure, Tool: tool, ExitCode: -1, Err: runErr}
}

// cappedBuffer keeps the first max bytes written and discards the rest
// while still reporting full writes, so the child never blocks on a pipe.
type cappedBuffer struct {
	buf       bytes.Buffer
	max       int
	truncated bool
}

func (c *cappedBuffer) Write(p []byte) (int, error) {
	if room := c.max - c.buf.Len(); room > 0 {
		if len(p) > room {
			c.buf.Write(p[:room])
			c.truncated = true
		} else {
			c.buf.Write(p)
		}
	} else if len(p) > 0 {
		c.truncated = true
	}
	return len(p), nil
}

func (c *cappedBuffer) String() string {
	if c.truncated {
		return c.buf.String() + "\n[output truncated]\n"
	}
	return c.buf.String()
}
