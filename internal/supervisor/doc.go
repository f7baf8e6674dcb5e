// OSINTDesk - Local OSINT Toolkit Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/osintdesk

/*
Package supervisor runs OSINTDesk's long-lived activities under a suture v4
tree and owns the supervision session.

	RootSupervisor ("osintdesk")
	├── APISupervisor ("api-layer")
	│   └── HTTPServerService
	└── SessionSupervisor ("session-layer")
	    └── SessionService (wraps *Session)

# Session

A Session holds the two managed processes: the browser (primary) and the
terminal server (secondary). Its states only move forward:

	starting ──Attach──▶ running ──primary gone──▶ shutting_down ──▶ terminated

Run polls process.IsAlive(primary) every PollInterval. The first false
terminates the secondary and then calls the exit function (os.Exit(0) in
production). A nil primary, which is what a failed browser launch leaves
behind, ends the session on the first poll.

When the application is interrupted instead, the context passed to Run is
canceled: both processes are terminated, the session moves to terminated
and Run returns so the tree can unwind normally.

# Usage

	tree, _ := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{})
	tree.AddAPIService(services.NewHTTPServerService(srv, 10*time.Second))
	errCh := tree.ServeBackground(ctx)

	session := supervisor.NewSession(supervisor.SessionConfig{PollInterval: time.Second})
	session.Attach(browser, terminal)
	tree.AddSessionService(services.NewSessionService(session))
	<-errCh

Events from suture are logged through zerolog using the slog adapter in
internal/logging and sutureslog.
*/
package supervisor
