// OSINTDesk - Local OSINT Toolkit Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/osintdesk

package api

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"time"

	"github.com/tomtom215/osintdesk/internal/config"
	"github.com/tomtom215/osintdesk/internal/tools"
)

// ErrMissingDependency is returned by NewHandler when Deps is incomplete.
var ErrMissingDependency = errors.New("api: missing dependency")

// Adapter interfaces. The tools package provides the production versions.
type (
	Hasher interface {
		Hash(r io.Reader) (tools.HashResult, error)
	}
	WhoisLooker interface {
		Lookup(ctx context.Context, domain string) (string, error)
	}
	DigQuerier interface {
		Query(ctx context.Context, domain, record string) (string, error)
	}
	NmapScanner interface {
		Scan(ctx context.Context, args, target string) (string, error)
	}
	MetadataExtractor interface {
		Extract(r io.Reader) (map[string]any, error)
	}
	StatusReporter interface {
		Check(ctx context.Context) tools.Status
	}
)

// Deps are the collaborators of a Handler.
type Deps struct {
	Config *config.Config

	Hasher   Hasher
	Whois    WhoisLooker
	Dig      DigQuerier
	Nmap     NmapScanner
	Metadata MetadataExtractor
	Status   StatusReporter

	// SessionState names the supervision session state for /healthz.
	// Optional.
	SessionState func() string

	// Static holds the front end; index.html is served at /.
	Static fs.FS
}

// Handler serves the OSINTDesk endpoints. Each request makes at most one
// adapter call; no state is kept between requests.
type Handler struct {
	cfg *config.Config

	hasher   Hasher
	whois    WhoisLooker
	dig      DigQuerier
	nmap     NmapScanner
	metadata MetadataExtractor
	status   StatusReporter

	sessionState func() string
	static       fs.FS
	startTime    time.Time
}

// NewHandler checks d and returns a Handler.
func NewHandler(d Deps) (*Handler, error) {
	missing := func(name string) error { return fmt.Errorf("%w: %s", ErrMissingDependency, name) }
	switch {
	case d.Config == nil:
		return nil, missing("config")
	case d.Hasher == nil:
		return nil, missing("hasher")
	case d.Whois == nil:
		return nil, missing("whois")
	case d.Dig == nil:
		return nil, missing("dig")
	case d.Nmap == nil:
		return nil, missing("nmap")
	case d.Metadata == nil:
		return nil, missing("metadata")
	case d.Status == nil:
		return nil, missing("status")
	case d.Static == nil:
		return nil, missing("static files")
	}

	state := d.SessionState
	if state == nil {
		state = func() string { return "unknown" }
	}

	return &Handler{
		cfg:          d.Config,
		hasher:       d.Hasher,
		whois:        d.Whois,
		dig:          d.Dig,
		nmap:         d.Nmap,
		metadata:     d.Metadata,
		status:       d.Status,
		sessionState: state,
		static:       d.Static,
		startTime:    time.Now(),
	}, nil
}
