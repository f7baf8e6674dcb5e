// OSINTDesk - Local OSINT Toolkit Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/osintdesk

/*
Package config loads OSINTDesk configuration with Koanf v2.

Sources, lowest to highest precedence:

  - built-in defaults (defaultConfig)
  - a YAML file: $CONFIG_PATH, ./osintdesk.yaml, ./config.yaml, then
    $XDG_CONFIG_HOME/osintdesk/config.yaml
  - environment variables from the envMappings table

Sections:

  - server: HTTP facade bind address (127.0.0.1:5000), timeouts, static dir
  - browser: app-mode browser candidates, window size, profile dir
  - terminal: ttyd binary, loopback port 27681, shell, theme
  - supervisor: session poll interval, startup delay, suture tuning
  - tools: bundled bin dir, per-tool timeouts, DNS fallback, ping breaker
  - upload: multipart limits
  - security: CORS origins and rate limits
  - metrics: Prometheus endpoint
  - logging: level, format, caller

Example environment overrides:

	HTTP_PORT=5050
	TERMINAL_ENABLED=false
	BROWSER_CANDIDATES=brave-browser,chromium
	NMAP_TIMEOUT=30s
	LOG_LEVEL=debug
*/
package config
