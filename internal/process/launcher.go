// OSINTDesk - Local OSINT Toolkit Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/osintdesk

package process

import (
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"github.com/tomtom215/osintdesk/internal/logging"
	"github.com/tomtom215/osintdesk/internal/metrics"
)

// Resolver picks the first locatable executable. *binpath.Resolver
// implements it.
type Resolver interface {
	First(candidates ...string) (path, name string, err error)
}

// Command describes what to launch: the first of Candidates that resolves
// is started with Args.
type Command struct {
	Candidates []string
	Args       []string
}

// Launcher starts managed processes.
type Launcher struct {
	resolver Resolver
}

// NewLauncher returns a Launcher resolving executables through r.
func NewLauncher(r Resolver) *Launcher {
	return &Launcher{resolver: r}
}

// LaunchPrimary starts the process whose lifetime defines the session.
// When no candidate can be found it returns a nil process and an error
// wrapping binpath.ErrNotFound.
func (l *Launcher) LaunchPrimary(ctx context.Context, c Command) (*ManagedProcess, error) {
	return l.launch(ctx, RolePrimary, c)
}

// LaunchSecondary starts a helper process that is stopped when the
// primary goes away.
func (l *Launcher) LaunchSecondary(ctx context.Context, c Command) (*ManagedProcess, error) {
	return l.launch(ctx, RoleSecondary, c)
}

func (l *Launcher) launch(ctx context.Context, role string, c Command) (*ManagedProcess, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path, name, err := l.resolver.First(c.Candidates...)
	if err != nil {
		metrics.RecordProcessLaunch(role, "not_found")
		return nil, fmt.Errorf("launch %s: %w", role, err)
	}

	// Not CommandContext: the process must outlive ctx.
	cmd := exec.Command(path, c.Args...) //nolint:gosec // path comes from the resolver
	if err := cmd.Start(); err != nil {
		metrics.RecordProcessLaunch(role, "failed")
		return nil, fmt.Errorf("launch %s %s: %w", role, name, err)
	}

	done := make(chan struct{})
	started := time.Now()
	pid := cmd.Process.Pid
	go func() {
		err := cmd.Wait()
		logging.Debug().Str("role", role).Int("pid", pid).Err(err).
			Dur("uptime", time.Since(started)).Msg("Managed process exited")
		close(done)
	}()

	metrics.RecordProcessLaunch(role, "started")
	logging.Ctx(ctx).Info().Str("role", role).Str("executable", name).Int("pid", pid).Msg("Launched managed process")

	return New(role, path, c.Args, newChildHandle(pid, done), cmd.Process), nil
}

// BrowserArgs are the app-mode arguments for a Chromium-family browser.
// profileDir may be empty; extra is appended as given.
func BrowserArgs(appURL, windowSize, profileDir string, extra []string) []string {
	args := []string{"--app=" + appURL}
	if windowSize != "" {
		args = append(args, "--window-size="+windowSize)
	}
	if profileDir != "" {
		args = append(args, "--user-data-dir="+profileDir)
	}
	return append(args, extra...)
}

// TerminalArgs are the ttyd arguments serving shell on host:port.
func TerminalArgs(host string, port int, writable bool, theme, shell string) []string {
	args := []string{"-p", strconv.Itoa(port)}
	if host != "" {
		args = append(args, "-i", host)
	}
	if writable {
		args = append(args, "-W")
	}
	if theme = strings.TrimSpace(theme); theme != "" {
		args = append(args, "-t", "theme="+theme)
	}
	return append(args, shell)
}
