// OSINTDesk - Local OSINT Toolkit Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/osintdesk

package config

import (
	"fmt"
	"net"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"time"
)

// Config holds all application configuration.
//
// Loading order (see LoadWithKoanf):
//  1. Defaults from defaultConfig
//  2. Optional YAML file
//  3. Environment variables listed in envMappings
type Config struct {
	Server     ServerConfig     `koanf:"server"`
	Browser    BrowserConfig    `koanf:"browser"`
	Terminal   TerminalConfig   `koanf:"terminal"`
	Supervisor SupervisorConfig `koanf:"supervisor"`
	Tools      ToolsConfig      `koanf:"tools"`
	Upload     UploadConfig     `koanf:"upload"`
	Security   SecurityConfig   `koanf:"security"`
	Metrics    MetricsConfig    `koanf:"metrics"`
	Logging    LoggingConfig    `koanf:"logging"`
}

// ServerConfig holds HTTP facade settings.
type ServerConfig struct {
	Host string `koanf:"host"`
	Port int    `koanf:"port"`

	// StaticDir overrides the embedded front end when non-empty. It must
	// contain index.html.
	StaticDir string `koanf:"static_dir"`

	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// Addr returns host:port for net.Listen.
func (s ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// URL returns the address the browser is pointed at.
func (s ServerConfig) URL() string {
	return "http://" + s.Addr()
}

// BrowserConfig describes how the primary (app-mode browser) process is
// launched.
type BrowserConfig struct {
	Enabled bool `koanf:"enabled"`

	// Candidates are tried in order; the first one found wins.
	Candidates []string `koanf:"candidates"`
	WindowSize string   `koanf:"window_size"`

	// ProfileDir is passed as --user-data-dir. Empty means a directory
	// under the user cache dir.
	ProfileDir string   `koanf:"profile_dir"`
	ExtraArgs  []string `koanf:"extra_args"`
}

// TerminalConfig describes the secondary (ttyd) process.
type TerminalConfig struct {
	Enabled  bool   `koanf:"enabled"`
	Binary   string `koanf:"binary"`
	Host     string `koanf:"host"`
	Port     int    `koanf:"port"`
	Writable bool   `koanf:"writable"`

	// Shell defaults to $SHELL, then /bin/bash (cmd.exe on Windows).
	Shell string `koanf:"shell"`

	// Theme is the xterm.js theme JSON handed to ttyd via -t theme=...
	Theme string `koanf:"theme"`
}

// URL returns the terminal server address shown to the front end.
func (t TerminalConfig) URL() string {
	return "http://" + net.JoinHostPort(t.Host, strconv.Itoa(t.Port))
}

// SupervisorConfig holds session polling and suture tree tuning.
type SupervisorConfig struct {
	PollInterval time.Duration `koanf:"poll_interval"`

	// StartupDelay is how long the bootstrap waits after starting the HTTP
	// server before launching the browser.
	StartupDelay time.Duration `koanf:"startup_delay"`

	FailureThreshold float64       `koanf:"failure_threshold"`
	FailureDecay     float64       `koanf:"failure_decay"`
	FailureBackoff   time.Duration `koanf:"failure_backoff"`
	ShutdownTimeout  time.Duration `koanf:"shutdown_timeout"`
}

// ToolsConfig holds external tool settings.
type ToolsConfig struct {
	// BinDir is the bundled binaries directory, searched before PATH.
	// Empty means <executable dir>/bin.
	BinDir string `koanf:"bin_dir"`

	WhoisTimeout time.Duration `koanf:"whois_timeout"`
	DigTimeout   time.Duration `koanf:"dig_timeout"`
	NmapTimeout  time.Duration `koanf:"nmap_timeout"`
	PingTimeout  time.Duration `koanf:"ping_timeout"`

	PingTarget string `koanf:"ping_target"`

	// DNSFallback answers /dig with an in-process resolver when the dig
	// binary cannot be found.
	DNSFallback bool   `koanf:"dns_fallback"`
	DNSResolver string `koanf:"dns_resolver"`

	// Connectivity breaker: consecutive ping failures before the probe is
	// skipped, and how long it stays open.
	BreakerFailures uint32        `koanf:"breaker_failures"`
	BreakerTimeout  time.Duration `koanf:"breaker_timeout"`
}

// UploadConfig bounds multipart uploads for /hash and /metadata.
type UploadConfig struct {
	MaxBytes  int64 `koanf:"max_bytes"`
	MaxMemory int64 `koanf:"max_memory"`
}

// SecurityConfig holds CORS and rate limiting.
type SecurityConfig struct {
	CORSOrigins []string `koanf:"cors_origins"`

	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`

	// Scans are expensive; /nmap gets its own, tighter limit.
	NmapRateLimitReqs   int           `koanf:"nmap_rate_limit_reqs"`
	NmapRateLimitWindow time.Duration `koanf:"nmap_rate_limit_window"`
}

// MetricsConfig controls the Prometheus endpoint.
type MetricsConfig struct {
	Enabled bool   `koanf:"enabled"`
	Path    string `koanf:"path"`
}

// LoggingConfig mirrors logging.Config for the file/env layers.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// ResolveProfileDir returns BrowserConfig.ProfileDir, or a per-user cache
// location when it is unset.
func (c *Config) ResolveProfileDir() (string, error) {
	if c.Browser.ProfileDir != "" {
		return c.Browser.ProfileDir, nil
	}
	base, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("resolve user cache dir: %w", err)
	}
	return filepath.Join(base, "osintdesk", "browser-profile"), nil
}

// ResolveShell returns the shell ttyd should run.
func (c *Config) ResolveShell() string {
	if c.Terminal.Shell != "" {
		return c.Terminal.Shell
	}
	if runtime.GOOS == "windows" {
		return "cmd.exe"
	}
	if sh := os.Getenv("SHELL"); sh != "" {
		return sh
	}
	return "/bin/bash"
}

// Load reads configuration from defaults, an optional file and the
// environment.
func Load() (*Config, error) {
	return LoadWithKoanf()
}
