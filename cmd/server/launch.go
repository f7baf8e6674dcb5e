// OSINTDesk - Local OSINT Toolkit Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/osintdesk

package main

import (
	"context"
	"net"

	"github.com/thejerf/suture/v4"

	"github.com/tomtom215/osintdesk/internal/config"
	"github.com/tomtom215/osintdesk/internal/logging"
	"github.com/tomtom215/osintdesk/internal/process"
	"github.com/tomtom215/osintdesk/internal/supervisor"
	"github.com/tomtom215/osintdesk/internal/supervisor/services"
)

// launcher is satisfied by *process.Launcher.
type launcher interface {
	LaunchPrimary(ctx context.Context, c process.Command) (*process.ManagedProcess, error)
	LaunchSecondary(ctx context.Context, c process.Command) (*process.ManagedProcess, error)
}

// primaryCommand is the app-mode browser pointed at the dashboard.
func primaryCommand(cfg *config.Config) process.Command {
	profile, err := cfg.ResolveProfileDir()
	if err != nil {
		logging.Warn().Err(err).Msg("No dedicated browser profile, the browser may reuse a running instance")
		profile = ""
	}
	return process.Command{
		Candidates: cfg.Browser.Candidates,
		Args:       process.BrowserArgs(cfg.Server.URL(), cfg.Browser.WindowSize, profile, cfg.Browser.ExtraArgs),
	}
}

// secondaryCommand is the terminal server.
func secondaryCommand(cfg *config.Config) process.Command {
	t := cfg.Terminal
	return process.Command{
		Candidates: []string{t.Binary},
		Args:       process.TerminalArgs(t.Host, t.Port, t.Writable, t.Theme, cfg.ResolveShell()),
	}
}

// sessionTree is satisfied by *supervisor.SupervisorTree.
type sessionTree interface {
	AddSessionService(svc suture.Service) suture.ServiceToken
}

// startSession launches the processes and, when a browser was asked for,
// hands them to the session watcher. It reports whether the watcher was
// added. Without a browser nothing ends the session, so the dashboard
// keeps running until the tree is canceled.
//
// A ctx canceled while launching stops whatever was started.
func startSession(ctx context.Context, cfg *config.Config, l launcher, session *supervisor.Session, tree sessionTree) (primary, secondary *process.ManagedProcess, watched bool) {
	primary, secondary = launchSession(ctx, cfg, l)
	if ctx.Err() != nil {
		stopProcesses(primary, secondary)
		return primary, secondary, false
	}
	if !cfg.Browser.Enabled {
		return primary, secondary, false
	}
	session.Attach(primary, secondary)
	tree.AddSessionService(services.NewSessionService(session))
	return primary, secondary, true
}

// stopProcesses terminates the terminal server before the browser.
// process.Terminate is idempotent, so processes the session already
// stopped are skipped.
func stopProcesses(primary, secondary *process.ManagedProcess) {
	for _, m := range []*process.ManagedProcess{secondary, primary} {
		if err := process.Terminate(m); err != nil {
			logging.Warn().Err(err).Str("role", m.Role).Int32("pid", m.PID()).Msg("Failed to stop process")
		}
	}
}

// launchSession starts the browser and, when enabled, the terminal server.
// Neither failure is fatal: a nil primary ends the session on its first
// poll, a nil secondary just means no terminal.
func launchSession(ctx context.Context, cfg *config.Config, l launcher) (primary, secondary *process.ManagedProcess) {
	if cfg.Browser.Enabled {
		p, err := l.LaunchPrimary(ctx, primaryCommand(cfg))
		if err != nil {
			logging.Warn().Err(err).Str("url", cfg.Server.URL()).
				Msg("No browser could be started, OSINTDesk will exit. Install a browser or set BROWSER_ENABLED=false and open the URL yourself")
		}
		primary = p
	} else {
		logging.Info().Msgf("Browser launch disabled. Open %s manually, stop with Ctrl+C", cfg.Server.URL())
	}

	if cfg.Terminal.Enabled {
		if !isLoopback(cfg.Terminal.Host) {
			logging.Warn().Str("host", cfg.Terminal.Host).
				Msg("Terminal server is reachable from the network and gives a shell without authentication")
		}
		s, err := l.LaunchSecondary(ctx, secondaryCommand(cfg))
		if err != nil {
			logging.Warn().Err(err).Msg("Terminal server not started")
		}
		secondary = s
	}
	return primary, secondary
}

// isLoopback reports whether host only accepts local connections.
func isLoopback(host string) bool {
	if host == "localhost" {
		return true
	}
	ip := net.ParseIP(host)
	return ip != nil && ip.IsLoopback()
}

