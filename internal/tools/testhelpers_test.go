// OSINTDesk - Local OSINT Toolkit Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/osintdesk

package tools

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

var errNoSuchTool = errors.New("no such tool")

// fakeResolver maps tool names to script paths.
type fakeResolver map[string]string

func (f fakeResolver) Resolve(name string) (string, error) {
	if p, ok := f[name]; ok {
		return p, nil
	}
	return "", errNoSuchTool
}

// writeScript creates an executable /bin/sh script and returns its path.
func writeScript(t *testing.T, name, body string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell scripts are not executable on windows")
	}
	if _, err := os.Stat("/bin/sh"); err != nil {
		t.Skip("/bin/sh not available")
	}
	p := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(p, []byte("#!/bin/sh\n"+body+"\n"), 0o755); err != nil { //nolint:gosec
		t.Fatal(err)
	}
	return p
}

func assertKind(t *testing.T, err error, want ErrorKind) {
	t.Helper()
	got, ok := KindOf(err)
	if !ok {
		t.Fatalf("error %v is not a *tools.Error", err)
	}
	if got != want {
		t.Fatalf("kind = %v, want %v (err: %v)", got, want, err)
	}
}
