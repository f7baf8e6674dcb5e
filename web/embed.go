// OSINTDesk - Local OSINT Toolkit Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/osintdesk

// Package web holds the dashboard front end.
package web

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
)

//go:embed static
var embedded embed.FS

// Static returns the front end. A non-empty dir replaces the embedded
// files; it must contain index.html.
func Static(dir string) (fs.FS, error) {
	if dir == "" {
		return fs.Sub(embedded, "static")
	}
	fsys := os.DirFS(dir)
	if _, err := fs.Stat(fsys, "index.html"); err != nil {
		return nil, fmt.Errorf("static dir %s: %w", dir, err)
	}
	return fsys, nil
}
