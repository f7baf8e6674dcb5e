// OSINTDesk - Local OSINT Toolkit Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/osintdesk

package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// isolate moves the test into an empty directory with no config file in
// reach and no stray overrides in the environment.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "xdg"))
	t.Setenv("HOME", dir)
	t.Setenv(ConfigPathEnvVar, "")
	for env := range envMappings {
		name := strings.ToUpper(env)
		t.Setenv(name, "")
		os.Unsetenv(name)
	}
	return dir
}

func TestDefaultConfig(t *testing.T) {
	cfg := defaultConfig()

	if cfg.Server.Host != "127.0.0.1" || cfg.Server.Port != 5000 {
		t.Errorf("Server addr = %s, want 127.0.0.1:5000", cfg.Server.Addr())
	}
	if cfg.Server.URL() != "http://127.0.0.1:5000" {
		t.Errorf("Server.URL() = %q", cfg.Server.URL())
	}
	want := []string{"chromium", "chromium-browser", "google-chrome", "chrome"}
	if len(cfg.Browser.Candidates) != len(want) {
		t.Fatalf("Browser.Candidates = %v, want %v", cfg.Browser.Candidates, want)
	}
	for i := range want {
		if cfg.Browser.Candidates[i] != want[i] {
			t.Errorf("Browser.Candidates[%d] = %q, want %q", i, cfg.Browser.Candidates[i], want[i])
		}
	}
	if cfg.Browser.WindowSize != "1200,800" {
		t.Errorf("Browser.WindowSize = %q", cfg.Browser.WindowSize)
	}
	if cfg.Terminal.Port != 27681 || cfg.Terminal.Host != "127.0.0.1" || !cfg.Terminal.Writable {
		t.Errorf("Terminal = %+v, want writable loopback:27681", cfg.Terminal)
	}
	if cfg.Supervisor.PollInterval != time.Second {
		t.Errorf("Supervisor.PollInterval = %v, want 1s", cfg.Supervisor.PollInterval)
	}
	if cfg.Tools.WhoisTimeout != 5*time.Second || cfg.Tools.DigTimeout != 5*time.Second {
		t.Errorf("whois/dig timeouts = %v/%v, want 5s", cfg.Tools.WhoisTimeout, cfg.Tools.DigTimeout)
	}
	if cfg.Tools.NmapTimeout != 15*time.Second {
		t.Errorf("Tools.NmapTimeout = %v, want 15s", cfg.Tools.NmapTimeout)
	}
	if cfg.Tools.PingTarget != "8.8.8.8" {
		t.Errorf("Tools.PingTarget = %q", cfg.Tools.PingTarget)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestEnvTransformFunc(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"HTTP_PORT", "server.port"},
		{"HTTP_HOST", "server.host"},
		{"STATIC_DIR", "server.static_dir"},
		{"BROWSER_CANDIDATES", "browser.candidates"},
		{"TTYD_PORT", "terminal.port"},
		{"TERMINAL_ENABLED", "terminal.enabled"},
		{"POLL_INTERVAL", "supervisor.poll_interval"},
		{"NMAP_TIMEOUT", "tools.nmap_timeout"},
		{"DNS_RESOLVER", "tools.dns_resolver"},
		{"CORS_ORIGINS", "security.cors_origins"},
		{"LOG_LEVEL", "logging.level"},
		{"log_format", "logging.format"},

		{"RANDOM_VAR", ""},
		{"PATH", ""},
		{"SHELL", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := envTransformFunc(tt.input); got != tt.expected {
				t.Errorf("envTransformFunc(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestFindConfigFile(t *testing.T) {
	dir := isolate(t)

	t.Run("no config file exists", func(t *testing.T) {
		if got := findConfigFile(); got != "" {
			t.Errorf("findConfigFile() = %q, want empty string", got)
		}
	})

	t.Run("config.yaml in working directory", func(t *testing.T) {
		p := filepath.Join(dir, "config.yaml")
		if err := os.WriteFile(p, []byte("server:\n  port: 5001\n"), 0o600); err != nil {
			t.Fatal(err)
		}
		defer os.Remove(p)
		if got := findConfigFile(); got != "config.yaml" {
			t.Errorf("findConfigFile() = %q, want config.yaml", got)
		}
	})

	t.Run("osintdesk.yaml wins over config.yaml", func(t *testing.T) {
		for _, name := range []string{"config.yaml", "osintdesk.yaml"} {
			if err := os.WriteFile(filepath.Join(dir, name), []byte("{}\n"), 0o600); err != nil {
				t.Fatal(err)
			}
			defer os.Remove(filepath.Join(dir, name))
		}
		if got := findConfigFile(); got != "osintdesk.yaml" {
			t.Errorf("findConfigFile() = %q, want osintdesk.yaml", got)
		}
	})

	t.Run("CONFIG_PATH wins", func(t *testing.T) {
		p := filepath.Join(dir, "custom.yaml")
		if err := os.WriteFile(p, []byte("{}\n"), 0o600); err != nil {
			t.Fatal(err)
		}
		t.Setenv(ConfigPathEnvVar, p)
		if got := findConfigFile(); got != p {
			t.Errorf("findConfigFile() = %q, want %q", got, p)
		}
	})

	t.Run("CONFIG_PATH pointing nowhere falls back", func(t *testing.T) {
		t.Setenv(ConfigPathEnvVar, filepath.Join(dir, "missing.yaml"))
		if got := findConfigFile(); got != "" {
			t.Errorf("findConfigFile() = %q, want empty", got)
		}
	})
}

func TestLoadWithKoanf_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}
	if cfg.Server.Port != 5000 {
		t.Errorf("Server.Port = %d, want 5000", cfg.Server.Port)
	}
	if cfg.Tools.BreakerFailures != 3 {
		t.Errorf("Tools.BreakerFailures = %d, want 3", cfg.Tools.BreakerFailures)
	}
}

func TestLoadWithKoanf_FileThenEnv(t *testing.T) {
	dir := isolate(t)

	yml := `
server:
  port: 5050
terminal:
  enabled: false
tools:
  nmap_timeout: 45s
browser:
  candidates:
    - brave-browser
logging:
  level: debug
`
	p := filepath.Join(dir, "osintdesk.yaml")
	if err := os.WriteFile(p, []byte(yml), 0o600); err != nil {
		t.Fatal(err)
	}

	t.Setenv("HTTP_PORT", "5055")
	t.Setenv("CORS_ORIGINS", "http://127.0.0.1:5055, http://localhost:5055")

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}
	if cfg.Server.Port != 5055 {
		t.Errorf("Server.Port = %d, want env override 5055", cfg.Server.Port)
	}
	if cfg.Terminal.Enabled {
		t.Error("Terminal.Enabled should come from the file (false)")
	}
	if cfg.Tools.NmapTimeout != 45*time.Second {
		t.Errorf("Tools.NmapTimeout = %v, want 45s", cfg.Tools.NmapTimeout)
	}
	if len(cfg.Browser.Candidates) != 1 || cfg.Browser.Candidates[0] != "brave-browser" {
		t.Errorf("Browser.Candidates = %v, want [brave-browser]", cfg.Browser.Candidates)
	}
	if len(cfg.Security.CORSOrigins) != 2 || cfg.Security.CORSOrigins[1] != "http://localhost:5055" {
		t.Errorf("Security.CORSOrigins = %v", cfg.Security.CORSOrigins)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want debug", cfg.Logging.Level)
	}
}

func TestLoadWithKoanf_InvalidFails(t *testing.T) {
	isolate(t)
	t.Setenv("LOG_FORMAT", "xml")

	_, err := LoadWithKoanf()
	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("LoadWithKoanf() error = %v, want ErrInvalidConfig", err)
	}
}

func TestResolveProfileDir(t *testing.T) {
	cfg := defaultConfig()
	cfg.Browser.ProfileDir = "/tmp/profile"
	if got, err := cfg.ResolveProfileDir(); err != nil || got != "/tmp/profile" {
		t.Errorf("ResolveProfileDir() = %q, %v", got, err)
	}

	isolate(t)
	cfg.Browser.ProfileDir = ""
	got, err := cfg.ResolveProfileDir()
	if err != nil {
		t.Skipf("no user cache dir on this platform: %v", err)
	}
	if filepath.Base(got) != "browser-profile" {
		t.Errorf("ResolveProfileDir() = %q, want .../browser-profile", got)
	}
}

func TestResolveShell(t *testing.T) {
	cfg := defaultConfig()
	cfg.Terminal.Shell = "/bin/zsh"
	if got := cfg.ResolveShell(); got != "/bin/zsh" {
		t.Errorf("ResolveShell() = %q, want /bin/zsh", got)
	}
}
