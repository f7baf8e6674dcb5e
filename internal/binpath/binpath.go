// OSINTDesk - Local OSINT Toolkit Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/osintdesk

// Package binpath locates external executables, preferring a bundled
// directory shipped next to the OSINTDesk binary over the system PATH.
package binpath

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
)

// ErrNotFound is returned when no candidate can be located.
var ErrNotFound = errors.New("executable not found")

// Resolver resolves tool names to absolute paths.
type Resolver struct {
	bundledDir string

	// lookPath is exec.LookPath outside of tests.
	lookPath func(string) (string, error)
}

// New returns a Resolver searching dir before PATH. An empty dir means
// "bin" next to the running executable; if that cannot be determined only
// PATH is searched.
func New(dir string) *Resolver {
	if dir == "" {
		if exe, err := os.Executable(); err == nil {
			dir = filepath.Join(filepath.Dir(exe), "bin")
		}
	}
	return &Resolver{bundledDir: dir, lookPath: exec.LookPath}
}

// BundledDir returns the directory searched first.
func (r *Resolver) BundledDir() string {
	return r.bundledDir
}

// Resolve returns the path for name. Names containing a path separator are
// only checked for existence.
func (r *Resolver) Resolve(name string) (string, error) {
	if name == "" {
		return "", fmt.Errorf("%w: empty name", ErrNotFound)
	}

	if strings.ContainsRune(name, os.PathSeparator) || strings.Contains(name, "/") {
		if isExecutable(name) {
			return name, nil
		}
		return "", fmt.Errorf("%w: %s", ErrNotFound, name)
	}

	if r.bundledDir != "" {
		p := filepath.Join(r.bundledDir, exeName(name))
		if isExecutable(p) {
			return p, nil
		}
	}

	p, err := r.lookPath(name)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	return p, nil
}

// First resolves candidates in order and returns the first hit together
// with the candidate name that matched.
func (r *Resolver) First(candidates ...string) (path, name string, err error) {
	for _, c := range candidates {
		if p, err := r.Resolve(c); err == nil {
			return p, c, nil
		}
	}
	return "", "", fmt.Errorf("%w: tried %s", ErrNotFound, strings.Join(candidates, ", "))
}

func exeName(name string) string {
	if runtime.GOOS == "windows" && filepath.Ext(name) == "" {
		return name + ".exe"
	}
	return name
}

func isExecutable(p string) bool {
	info, err := os.Stat(p)
	if err != nil || info.IsDir() {
		return false
	}
	if runtime.GOOS == "windows" {
		return true
	}
	return info.Mode().Perm()&0o111 != 0
}
