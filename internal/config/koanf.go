// OSINTDesk - Local OSINT Toolkit Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/osintdesk

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths are searched in order when CONFIG_PATH is unset.
var DefaultConfigPaths = []string{
	"osintdesk.yaml",
	"config.yaml",
}

// ConfigPathEnvVar overrides the config file path.
const ConfigPathEnvVar = "CONFIG_PATH"

// DefaultTerminalTheme is the fixed color scheme the terminal session starts with.
const DefaultTerminalTheme = `{"background":"#0d1117","foreground":"#c9d1d9","cursor":"#58a6ff"}`

// Defaults returns the built-in configuration, before any file or
// environment override.
func Defaults() *Config {
	return defaultConfig()
}

func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host:            "127.0.0.1",
			Port:            5000,
			ReadTimeout:     30 * time.Second,
			WriteTimeout:    60 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Browser: BrowserConfig{
			Enabled:    true,
			Candidates: []string{"chromium", "chromium-browser", "google-chrome", "chrome"},
			WindowSize: "1200,800",
		},
		Terminal: TerminalConfig{
			Enabled:  true,
			Binary:   "ttyd",
			Host:     "127.0.0.1",
			Port:     27681,
			Writable: true,
			Theme:    DefaultTerminalTheme,
		},
		Supervisor: SupervisorConfig{
			PollInterval:     time.Second,
			StartupDelay:     time.Second,
			FailureThreshold: 5,
			FailureDecay:     30,
			FailureBackoff:   15 * time.Second,
			ShutdownTimeout:  10 * time.Second,
		},
		Tools: ToolsConfig{
			WhoisTimeout:    5 * time.Second,
			DigTimeout:      5 * time.Second,
			NmapTimeout:     15 * time.Second,
			PingTimeout:     5 * time.Second,
			PingTarget:      "8.8.8.8",
			DNSFallback:     true,
			DNSResolver:     "8.8.8.8:53",
			BreakerFailures: 3,
			BreakerTimeout:  30 * time.Second,
		},
		Upload: UploadConfig{
			MaxBytes:  64 << 20,
			MaxMemory: 32 << 20,
		},
		Security: SecurityConfig{
			CORSOrigins:         []string{"http://127.0.0.1:5000", "http://localhost:5000"},
			RateLimitReqs:       120,
			RateLimitWindow:     time.Minute,
			NmapRateLimitReqs:   6,
			NmapRateLimitWindow: time.Minute,
		},
		Metrics: MetricsConfig{
			Enabled: true,
			Path:    "/metrics",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// LoadWithKoanf loads configuration with precedence ENV > file > defaults,
// then validates it.
func LoadWithKoanf() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if path := findConfigFile(); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
	}

	// HTTP_PORT -> server.port, TTYD_PORT -> terminal.port, ...
	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

// findConfigFile returns the first existing config file, or "".
func findConfigFile() string {
	if p := os.Getenv(ConfigPathEnvVar); p != "" {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	for _, p := range DefaultConfigPaths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	if dir, err := os.UserConfigDir(); err == nil {
		p := filepath.Join(dir, "osintdesk", "config.yaml")
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

// sliceConfigPaths are split on commas when they arrive as a single string.
var sliceConfigPaths = []string{
	"browser.candidates",
	"browser.extra_args",
	"security.cors_origins",
}

func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		s, ok := k.Get(path).(string)
		if !ok || s == "" {
			continue
		}
		parts := strings.Split(s, ",")
		trimmed := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				trimmed = append(trimmed, p)
			}
		}
		if len(trimmed) == 0 {
			continue
		}
		if err := k.Set(path, trimmed); err != nil {
			return fmt.Errorf("failed to set %s: %w", path, err)
		}
	}
	return nil
}

var envMappings = map[string]string{
	"http_host":             "server.host",
	"http_port":             "server.port",
	"static_dir":            "server.static_dir",
	"http_read_timeout":     "server.read_timeout",
	"http_write_timeout":    "server.write_timeout",
	"http_shutdown_timeout": "server.shutdown_timeout",

	"browser_enabled":     "browser.enabled",
	"browser_candidates":  "browser.candidates",
	"browser_window_size": "browser.window_size",
	"browser_profile_dir": "browser.profile_dir",
	"browser_extra_args":  "browser.extra_args",

	"terminal_enabled":  "terminal.enabled",
	"ttyd_binary":       "terminal.binary",
	"ttyd_host":         "terminal.host",
	"ttyd_port":         "terminal.port",
	"terminal_writable": "terminal.writable",
	"terminal_shell":    "terminal.shell",
	"terminal_theme":    "terminal.theme",

	"poll_interval":                "supervisor.poll_interval",
	"startup_delay":                "supervisor.startup_delay",
	"supervisor_failure_threshold": "supervisor.failure_threshold",
	"supervisor_failure_decay":     "supervisor.failure_decay",
	"supervisor_failure_backoff":   "supervisor.failure_backoff",
	"supervisor_shutdown_timeout":  "supervisor.shutdown_timeout",

	"tools_bin_dir":         "tools.bin_dir",
	"whois_timeout":         "tools.whois_timeout",
	"dig_timeout":           "tools.dig_timeout",
	"nmap_timeout":          "tools.nmap_timeout",
	"ping_timeout":          "tools.ping_timeout",
	"ping_target":           "tools.ping_target",
	"dns_fallback":          "tools.dns_fallback",
	"dns_resolver":          "tools.dns_resolver",
	"connectivity_failures": "tools.breaker_failures",
	"connectivity_cooldown": "tools.breaker_timeout",

	"upload_max_bytes":  "upload.max_bytes",
	"upload_max_memory": "upload.max_memory",

	"cors_origins":           "security.cors_origins",
	"rate_limit_requests":    "security.rate_limit_reqs",
	"rate_limit_window":      "security.rate_limit_window",
	"disable_rate_limit":     "security.rate_limit_disabled",
	"nmap_rate_limit":        "security.nmap_rate_limit_reqs",
	"nmap_rate_limit_window": "security.nmap_rate_limit_window",

	"metrics_enabled": "metrics.enabled",
	"metrics_path":    "metrics.path",

	"log_level":  "logging.level",
	"log_format": "logging.format",
	"log_caller": "logging.caller",
}

// envTransformFunc maps environment variable names to koanf paths.
// Unmapped variables return "" and are dropped so unrelated environment
// does not leak into the config.
func envTransformFunc(key string) string {
	return envMappings[strings.ToLower(key)]
}
