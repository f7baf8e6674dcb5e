// OSINTDesk - Local OSINT Toolkit Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/osintdesk

package binpath

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func writeExecutable(t *testing.T, dir, name string) string {
	t.Helper()
	p := filepath.Join(dir, exeName(name))
	if err := os.WriteFile(p, []byte("#!/bin/sh\nexit 0\n"), 0o755); err != nil {
		t.Fatal(err)
	}
	return p
}

func fakeLookPath(found map[string]string) func(string) (string, error) {
	return func(name string) (string, error) {
		if p, ok := found[name]; ok {
			return p, nil
		}
		return "", errors.New("not in PATH")
	}
}

func TestResolve_BundledFirst(t *testing.T) {
	dir := t.TempDir()
	want := writeExecutable(t, dir, "whois")

	r := &Resolver{bundledDir: dir, lookPath: fakeLookPath(map[string]string{"whois": "/usr/bin/whois"})}

	got, err := r.Resolve("whois")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if got != want {
		t.Errorf("Resolve() = %q, want bundled %q", got, want)
	}
}

func TestResolve_FallsBackToPath(t *testing.T) {
	r := &Resolver{bundledDir: t.TempDir(), lookPath: fakeLookPath(map[string]string{"dig": "/usr/bin/dig"})}

	got, err := r.Resolve("dig")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if got != "/usr/bin/dig" {
		t.Errorf("Resolve() = %q, want /usr/bin/dig", got)
	}
}

func TestResolve_NotFound(t *testing.T) {
	r := &Resolver{lookPath: fakeLookPath(nil)}

	for _, name := range []string{"nmap", "", "/nonexistent/ttyd"} {
		if _, err := r.Resolve(name); !errors.Is(err, ErrNotFound) {
			t.Errorf("Resolve(%q) error = %v, want ErrNotFound", name, err)
		}
	}
}

func TestResolve_SkipsNonExecutable(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("permission bits are not meaningful on windows")
	}
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "nmap"), []byte("data"), 0o644); err != nil {
		t.Fatal(err)
	}
	r := &Resolver{bundledDir: dir, lookPath: fakeLookPath(map[string]string{"nmap": "/usr/bin/nmap"})}

	got, err := r.Resolve("nmap")
	if err != nil || got != "/usr/bin/nmap" {
		t.Errorf("Resolve() = %q, %v; want PATH fallback", got, err)
	}
}

func TestResolve_AbsolutePath(t *testing.T) {
	p := writeExecutable(t, t.TempDir(), "ttyd")
	r := &Resolver{lookPath: fakeLookPath(nil)}

	got, err := r.Resolve(p)
	if err != nil || got != p {
		t.Errorf("Resolve(%q) = %q, %v", p, got, err)
	}
}

func TestFirst(t *testing.T) {
	r := &Resolver{lookPath: fakeLookPath(map[string]string{
		"google-chrome": "/opt/google/chrome",
		"chrome":        "/usr/bin/chrome",
	})}

	path, name, err := r.First("chromium", "chromium-browser", "google-chrome", "chrome")
	if err != nil {
		t.Fatalf("First() error = %v", err)
	}
	if name != "google-chrome" || path != "/opt/google/chrome" {
		t.Errorf("First() = %q (%q), want google-chrome", path, name)
	}

	if _, _, err := r.First("chromium", "chromium-browser"); !errors.Is(err, ErrNotFound) {
		t.Errorf("First() error = %v, want ErrNotFound", err)
	}
}

func TestNew_DefaultDir(t *testing.T) {
	r := New("")
	if r.BundledDir() == "" {
		t.Skip("os.Executable unavailable")
	}
	if filepath.Base(r.BundledDir()) != "bin" {
		t.Errorf("BundledDir() = %q, want .../bin", r.BundledDir())
	}
}
