// OSINTDesk - Local OSINT Toolkit Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/osintdesk

package config

import (
	"errors"
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/tomtom215/osintdesk/internal/logging"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid configuration")

// Validate checks that the loaded configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateServer(); err != nil {
		return err
	}
	if err := c.validateBrowser(); err != nil {
		return err
	}
	if err := c.validateTerminal(); err != nil {
		return err
	}
	if err := c.validateSupervisor(); err != nil {
		return err
	}
	if err := c.validateTools(); err != nil {
		return err
	}
	if err := c.validateUpload(); err != nil {
		return err
	}
	if err := c.validateSecurity(); err != nil {
		return err
	}
	if err := c.validateMetrics(); err != nil {
		return err
	}
	return c.validateLogging()
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...))
}

func validatePort(name string, port int) error {
	if port < 1 || port > 65535 {
		return invalid("%s must be between 1 and 65535, got %d", name, port)
	}
	return nil
}

func validatePositive(name string, d time.Duration) error {
	if d <= 0 {
		return invalid("%s must be positive, got %s", name, d)
	}
	return nil
}

func (c *Config) validateServer() error {
	if c.Server.Host == "" {
		return invalid("server.host is required")
	}
	if err := validatePort("server.port", c.Server.Port); err != nil {
		return err
	}
	if err := validatePositive("server.read_timeout", c.Server.ReadTimeout); err != nil {
		return err
	}
	if err := validatePositive("server.write_timeout", c.Server.WriteTimeout); err != nil {
		return err
	}
	return validatePositive("server.shutdown_timeout", c.Server.ShutdownTimeout)
}

func (c *Config) validateBrowser() error {
	if !c.Browser.Enabled {
		return nil
	}
	if len(c.Browser.Candidates) == 0 {
		return invalid("browser.candidates must not be empty when the browser is enabled")
	}
	if c.Browser.WindowSize != "" && !strings.Contains(c.Browser.WindowSize, ",") {
		return invalid("browser.window_size must look like WIDTH,HEIGHT, got %q", c.Browser.WindowSize)
	}
	return nil
}

func (c *Config) validateTerminal() error {
	if !c.Terminal.Enabled {
		return nil
	}
	if c.Terminal.Binary == "" {
		return invalid("terminal.binary is required when the terminal is enabled")
	}
	if err := validatePort("terminal.port", c.Terminal.Port); err != nil {
		return err
	}
	if c.Terminal.Port == c.Server.Port && c.Terminal.Host == c.Server.Host {
		return invalid("terminal.port %d collides with server.port", c.Terminal.Port)
	}
	if ip := net.ParseIP(c.Terminal.Host); ip == nil || !ip.IsLoopback() {
		if c.Terminal.Host != "localhost" {
			logging.Warn().Str("host", c.Terminal.Host).
				Msg("Terminal server is not bound to loopback; anyone who can reach it gets a shell")
		}
	}
	return nil
}

func (c *Config) validateSupervisor() error {
	if err := validatePositive("supervisor.poll_interval", c.Supervisor.PollInterval); err != nil {
		return err
	}
	if c.Supervisor.StartupDelay < 0 {
		return invalid("supervisor.startup_delay must not be negative")
	}
	if c.Supervisor.FailureThreshold <= 0 {
		return invalid("supervisor.failure_threshold must be positive")
	}
	if c.Supervisor.FailureDecay <= 0 {
		return invalid("supervisor.failure_decay must be positive")
	}
	return validatePositive("supervisor.shutdown_timeout", c.Supervisor.ShutdownTimeout)
}

func (c *Config) validateTools() error {
	for name, d := range map[string]time.Duration{
		"tools.whois_timeout": c.Tools.WhoisTimeout,
		"tools.dig_timeout":   c.Tools.DigTimeout,
		"tools.nmap_timeout":  c.Tools.NmapTimeout,
		"tools.ping_timeout":  c.Tools.PingTimeout,
	} {
		if err := validatePositive(name, d); err != nil {
			return err
		}
	}
	if c.Tools.PingTarget == "" {
		return invalid("tools.ping_target is required")
	}
	if c.Tools.DNSFallback {
		if _, _, err := net.SplitHostPort(c.Tools.DNSResolver); err != nil {
			return invalid("tools.dns_resolver must be host:port: %v", err)
		}
	}
	if c.Tools.BreakerFailures == 0 {
		return invalid("tools.breaker_failures must be at least 1")
	}
	return validatePositive("tools.breaker_timeout", c.Tools.BreakerTimeout)
}

func (c *Config) validateUpload() error {
	if c.Upload.MaxBytes <= 0 {
		return invalid("upload.max_bytes must be positive")
	}
	if c.Upload.MaxMemory <= 0 {
		return invalid("upload.max_memory must be positive")
	}
	return nil
}

func (c *Config) validateSecurity() error {
	if c.Security.RateLimitDisabled {
		return nil
	}
	if c.Security.RateLimitReqs <= 0 || c.Security.NmapRateLimitReqs <= 0 {
		return invalid("rate limits must be positive (set security.rate_limit_disabled to turn them off)")
	}
	if err := validatePositive("security.rate_limit_window", c.Security.RateLimitWindow); err != nil {
		return err
	}
	return validatePositive("security.nmap_rate_limit_window", c.Security.NmapRateLimitWindow)
}

func (c *Config) validateMetrics() error {
	if c.Metrics.Enabled && !strings.HasPrefix(c.Metrics.Path, "/") {
		return invalid("metrics.path must start with /, got %q", c.Metrics.Path)
	}
	return nil
}

func (c *Config) validateLogging() error {
	if !logging.ValidLevel(c.Logging.Level) {
		return invalid("logging.level %q is not a known level", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "json", "console":
		return nil
	default:
		return invalid("logging.format must be json or console, got %q", c.Logging.Format)
	}
}
