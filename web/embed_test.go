// OSINTDesk - Local OSINT Toolkit Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/osintdesk

package web

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestStatic_Embedded(t *testing.T) {
	fsys, err := Static("")
	if err != nil {
		t.Fatalf("Static() error = %v", err)
	}
	data, err := fs.ReadFile(fsys, "index.html")
	if err != nil {
		t.Fatalf("index.html: %v", err)
	}
	for _, want := range []string{"/status", "/hash", "/metadata", "/whois", "/dig", "/nmap", "/terminal"} {
		if !strings.Contains(string(data), want) {
			t.Errorf("index.html does not reference %s", want)
		}
	}
}

func TestStatic_Dir(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "index.html"), []byte("custom"), 0o600); err != nil {
		t.Fatal(err)
	}
	fsys, err := Static(dir)
	if err != nil {
		t.Fatalf("Static(%q) error = %v", dir, err)
	}
	data, _ := fs.ReadFile(fsys, "index.html")
	if string(data) != "custom" {
		t.Errorf("index.html = %q, want custom", data)
	}
}

func TestStatic_DirWithoutIndex(t *testing.T) {
	_, err := Static(t.TempDir())
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Static() error = %v, want fs.ErrNotExist", err)
	}
}
