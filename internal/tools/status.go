// OSINTDesk - Local OSINT Toolkit Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/osintdesk

package tools

import (
	"context"
	"errors"
	"net"
	"runtime"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/osintdesk/internal/logging"
	"github.com/tomtom215/osintdesk/internal/metrics"
)

// Connectivity values reported by /status.
const (
	Connected    = "Connected"
	Disconnected = "Disconnected"
)

const breakerName = "connectivity"

var errUnreachable = errors.New("ping target unreachable")

// Status is the /status response body.
type Status struct {
	IP                 string `json:"ip"`
	Version            string `json:"version"`
	InternetConnection string `json:"internet_connection"`
}

// StatusConfig configures a StatusChecker.
type StatusConfig struct {
	Version string
	Target  string
	Timeout time.Duration

	// BreakerFailures consecutive failed pings open the breaker; while open
	// no ping is spawned. BreakerTimeout is how long it stays open.
	BreakerFailures uint32
	BreakerTimeout  time.Duration
}

// StatusChecker reports the local address, version and connectivity.
type StatusChecker struct {
	exec    *Exec
	cfg     StatusConfig
	breaker *gobreaker.CircuitBreaker[bool]

	// localIP is replaceable in tests.
	localIP func(target string) string
}

// NewStatusChecker returns a StatusChecker probing cfg.Target with ping.
func NewStatusChecker(e *Exec, cfg StatusConfig) *StatusChecker {
	if cfg.BreakerFailures == 0 {
		cfg.BreakerFailures = 3
	}
	if cfg.BreakerTimeout <= 0 {
		cfg.BreakerTimeout = 30 * time.Second
	}

	metrics.CircuitBreakerState.WithLabelValues(breakerName).Set(0)

	threshold := cfg.BreakerFailures
	cb := gobreaker.NewCircuitBreaker[bool](gobreaker.Settings{
		Name:        breakerName,
		MaxRequests: 1,
		Timeout:     cfg.BreakerTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= threshold
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			l := logging.WithComponent("connectivity")
			l.Info().Str("breaker", name).Str("from", from.String()).Str("to", to.String()).
				Msg("Connectivity probe state changed")
			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
			metrics.CircuitBreakerTransitions.WithLabelValues(name, from.String(), to.String()).Inc()
		},
	})

	return &StatusChecker{exec: e, cfg: cfg, breaker: cb, localIP: outboundIP}
}

// Check never fails; problems show up as Disconnected or a loopback ip.
func (s *StatusChecker) Check(ctx context.Context) Status {
	return Status{
		IP:                 s.localIP(s.cfg.Target),
		Version:            s.cfg.Version,
		InternetConnection: s.connectivity(ctx),
	}
}

func (s *StatusChecker) connectivity(ctx context.Context) string {
	ok, err := s.breaker.Execute(func() (bool, error) {
		return s.ping(ctx)
	})
	switch {
	case err == nil && ok:
		metrics.CircuitBreakerRequests.WithLabelValues(breakerName, "success").Inc()
		return Connected
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		metrics.CircuitBreakerRequests.WithLabelValues(breakerName, "rejected").Inc()
	default:
		metrics.CircuitBreakerRequests.WithLabelValues(breakerName, "failure").Inc()
	}
	return Disconnected
}

func (s *StatusChecker) ping(ctx context.Context) (bool, error) {
	countFlag := "-c"
	if runtime.GOOS == "windows" {
		countFlag = "-n"
	}
	res, err := s.exec.Run(ctx, "ping", s.cfg.Timeout, countFlag, "1", s.cfg.Target)
	if err != nil {
		return false, err
	}
	if res.ExitCode != 0 {
		return false, errUnreachable
	}
	return true, nil
}

// outboundIP returns the local address the OS would route to target from.
// Dialing UDP sends nothing.
func outboundIP(target string) string {
	conn, err := net.Dial("udp", net.JoinHostPort(target, "80"))
	if err != nil {
		return "127.0.0.1"
	}
	defer conn.Close()
	if addr, ok := conn.LocalAddr().(*net.UDPAddr); ok && !addr.IP.IsUnspecified() {
		return addr.IP.String()
	}
	return "127.0.0.1"
}

func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return 0
	}
}
