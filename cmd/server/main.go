// OSINTDesk - Local OSINT Toolkit Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/osintdesk

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tomtom215/osintdesk/internal/api"
	"github.com/tomtom215/osintdesk/internal/binpath"
	"github.com/tomtom215/osintdesk/internal/config"
	"github.com/tomtom215/osintdesk/internal/logging"
	"github.com/tomtom215/osintdesk/internal/process"
	"github.com/tomtom215/osintdesk/internal/supervisor"
	"github.com/tomtom215/osintdesk/internal/supervisor/services"
	"github.com/tomtom215/osintdesk/internal/tools"
	"github.com/tomtom215/osintdesk/web"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

// bindTimeout bounds the wait for the HTTP listener before giving up.
const bindTimeout = 10 * time.Second

//nolint:gocyclo // Sequential startup
func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().
		Str("version", version).
		Str("addr", cfg.Server.Addr()).
		Bool("terminal", cfg.Terminal.Enabled).
		Msg("Starting OSINTDesk")

	resolver := binpath.New(cfg.Tools.BinDir)
	logging.Debug().Str("bundled_dir", resolver.BundledDir()).Msg("Tool search path")

	session := supervisor.NewSession(supervisor.SessionConfig{
		PollInterval: cfg.Supervisor.PollInterval,
	})

	handler, err := newHandler(cfg, resolver, func() string { return session.State().String() })
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to build API handler")
	}

	server := &http.Server{
		Handler:           api.NewRouter(handler),
		ReadTimeout:       cfg.Server.ReadTimeout,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       60 * time.Second,
	}

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		FailureThreshold: cfg.Supervisor.FailureThreshold,
		FailureDecay:     cfg.Supervisor.FailureDecay,
		FailureBackoff:   cfg.Supervisor.FailureBackoff,
		ShutdownTimeout:  cfg.Supervisor.ShutdownTimeout,
	})
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	httpSvc := services.NewHTTPServerService(server, cfg.Server.Addr(), cfg.Server.ShutdownTimeout)
	tree.AddAPIService(httpSvc)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := tree.ServeBackground(ctx)

	select {
	case <-httpSvc.Ready():
		logging.Info().Str("url", cfg.Server.URL()).Str("bound", httpSvc.Addr().String()).Msg("Dashboard listening")
	case <-ctx.Done():
		drain(errCh)
		return
	case <-time.After(bindTimeout):
		stop()
		drain(errCh)
		logging.Fatal().Str("addr", cfg.Server.Addr()).Msg("HTTP server did not start")
	}

	// Give the server a moment before the browser's first request.
	select {
	case <-time.After(cfg.Supervisor.StartupDelay):
	case <-ctx.Done():
		drain(errCh)
		return
	}

	primary, secondary, _ := startSession(ctx, cfg, process.NewLauncher(resolver), session, tree)

	drain(errCh)
	// A signal can beat the watcher's first run; nothing may outlive the app.
	stopProcesses(primary, secondary)

	unstopped, _ := tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop")
	}
	logging.Info().Msg("OSINTDesk stopped")
}

// newHandler wires the tool adapters into an api.Handler.
func newHandler(cfg *config.Config, resolver *binpath.Resolver, sessionState func() string) (*api.Handler, error) {
	static, err := web.Static(cfg.Server.StaticDir)
	if err != nil {
		return nil, err
	}

	ex := tools.NewExec(resolver)
	dnsResolver := ""
	if cfg.Tools.DNSFallback {
		dnsResolver = cfg.Tools.DNSResolver
	}
	for _, name := range missingTools(ex) {
		if name == "dig" && dnsResolver != "" {
			logging.Info().Str("resolver", dnsResolver).Msg("dig not found, /dig uses the built-in resolver")
			continue
		}
		logging.Warn().Str("tool", name).Msg("Tool not found, its endpoint will answer 503")
	}

	return api.NewHandler(api.Deps{
		Config:   cfg,
		Hasher:   tools.NewHasher(),
		Whois:    tools.NewWhois(ex, cfg.Tools.WhoisTimeout),
		Dig:      tools.NewDig(ex, cfg.Tools.DigTimeout, dnsResolver),
		Nmap:     tools.NewNmap(ex, cfg.Tools.NmapTimeout),
		Metadata: tools.NewExifReader(),
		Status: tools.NewStatusChecker(ex, tools.StatusConfig{
			Version:         version,
			Target:          cfg.Tools.PingTarget,
			Timeout:         cfg.Tools.PingTimeout,
			BreakerFailures: cfg.Tools.BreakerFailures,
			BreakerTimeout:  cfg.Tools.BreakerTimeout,
		}),
		SessionState: sessionState,
		Static:       static,
	})
}

// externalTools back the API endpoints.
var externalTools = []string{"whois", "dig", "nmap", "ping"}

// missingTools lists the external tools that cannot be resolved.
func missingTools(ex *tools.Exec) []string {
	var missing []string
	for _, name := range externalTools {
		if !ex.Available(name) {
			missing = append(missing, name)
		}
	}
	return missing
}

// drain waits for the supervisor tree to finish.
func drain(errCh <-chan error) {
	for err := range errCh {
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor tree stopped with error")
		}
	}
}
