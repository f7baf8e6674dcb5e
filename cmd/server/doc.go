// OSINTDesk - Local OSINT Toolkit Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/osintdesk

/*
Package main is the entry point for OSINTDesk.

OSINTDesk serves a local dashboard that wraps common reconnaissance tools
(whois, dig, nmap, file hashing and EXIF extraction) behind a small JSON
API, opens it in an app-mode browser window and runs a ttyd terminal next
to it. Closing the browser ends the application.

# Startup

	1. Configuration (Koanf v2): defaults, then osintdesk.yaml, then environment
	2. Logging (zerolog)
	3. Tool adapters resolved through the bundled bin directory, then PATH
	4. Supervisor tree (Suture v4) with the HTTP server in the api layer
	5. After the listener is bound and STARTUP_DELAY has passed, the browser
	   (primary) and ttyd (secondary) are launched
	6. The session watcher joins the session layer and polls the browser

Supervisor tree:

	osintdesk
	├── api-layer
	│   └── http-server
	└── session-layer
	    └── session-watcher

# Shutdown

When the browser and every process it spawned are gone, ttyd is stopped
and the process exits with status 0. SIGINT or SIGTERM instead cancel the
tree: ttyd and the browser are terminated and the HTTP server drains for
up to HTTP_SHUTDOWN_TIMEOUT.

If no browser can be found the session ends on its first poll. With
BROWSER_ENABLED=false no session watcher runs at all: the dashboard and
ttyd stay up until SIGINT or SIGTERM.

# Example

	HTTP_PORT=5050 TERMINAL_ENABLED=false ./osintdesk
	BROWSER_CANDIDATES=brave-browser,chromium LOG_LEVEL=debug ./osintdesk
*/
package main
