// OSINTDesk - Local OSINT Toolkit Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/osintdesk

package supervisor

import (
	"context"
	"errors"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/thejerf/suture/v4"

	"github.com/tomtom215/osintdesk/internal/logging"
	"github.com/tomtom215/osintdesk/internal/metrics"
	"github.com/tomtom215/osintdesk/internal/process"
)

// State is the lifecycle state of a Session. States only move forward.
type State int32

const (
	StateStarting State = iota
	StateRunning
	StateShuttingDown
	StateTerminated
)

func (s State) String() string {
	switch s {
	case StateStarting:
		return "starting"
	case StateRunning:
		return "running"
	case StateShuttingDown:
		return "shutting_down"
	case StateTerminated:
		return "terminated"
	default:
		return "unknown"
	}
}

// ErrNotAttached is returned by Run before Attach was called.
var ErrNotAttached = errors.New("session has no processes attached")

// SessionConfig configures a Session.
type SessionConfig struct {
	// PollInterval is the time between liveness checks. Default: 1s
	PollInterval time.Duration

	// Exit ends the application once the primary is gone. Default: os.Exit
	Exit func(code int)
}

// Session ties the terminal server's lifetime to the browser's: when the
// primary process and all of its descendants are gone the secondary is
// terminated and the application exits.
type Session struct {
	poll time.Duration
	exit func(int)

	// Replaceable in tests.
	alive     func(*process.ManagedProcess) bool
	terminate func(*process.ManagedProcess) error

	mu        sync.Mutex
	primary   *process.ManagedProcess
	secondary *process.ManagedProcess

	state atomic.Int32
}

// NewSession returns a Session in StateStarting.
func NewSession(cfg SessionConfig) *Session {
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = time.Second
	}
	if cfg.Exit == nil {
		cfg.Exit = os.Exit
	}
	s := &Session{
		poll:      cfg.PollInterval,
		exit:      cfg.Exit,
		alive:     process.IsAlive,
		terminate: process.Terminate,
	}
	metrics.SetSessionState(int(StateStarting))
	return s
}

// State returns the current state.
func (s *Session) State() State {
	return State(s.state.Load())
}

// Attach records the outcome of both launch attempts and moves the session
// to StateRunning. Either process may be nil: a nil primary means the
// session ends on the first poll, a nil secondary is simply not stopped.
func (s *Session) Attach(primary, secondary *process.ManagedProcess) {
	s.mu.Lock()
	s.primary, s.secondary = primary, secondary
	s.mu.Unlock()

	if s.advance(StateStarting, StateRunning) {
		logging.Info().Int32("primary_pid", primary.PID()).Int32("secondary_pid", secondary.PID()).
			Msg("Supervision session running")
	}
}

// Run polls the primary until it is gone, then stops the secondary and
// calls the exit function. If Exit returns (it does in tests), Run returns
// suture.ErrTerminateSupervisorTree.
//
// Canceling ctx stops both processes and returns ctx.Err() without calling
// Exit.
func (s *Session) Run(ctx context.Context) error {
	switch s.State() {
	case StateStarting:
		return ErrNotAttached
	case StateShuttingDown, StateTerminated:
		return suture.ErrDoNotRestart
	}

	ctx = logging.ContextWithNewCorrelationID(ctx)
	log := logging.Ctx(ctx)

	s.mu.Lock()
	primary, secondary := s.primary, s.secondary
	s.mu.Unlock()

	ticker := time.NewTicker(s.poll)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			if !s.advance(StateRunning, StateShuttingDown) {
				return ctx.Err()
			}
			log.Info().Msg("Stopping managed processes")
			s.stop(ctx, secondary)
			s.stop(ctx, primary)
			s.advance(StateShuttingDown, StateTerminated)
			return ctx.Err()

		case <-ticker.C:
			if s.alive(primary) {
				continue
			}
			if !s.advance(StateRunning, StateShuttingDown) {
				return suture.ErrDoNotRestart
			}
			log.Info().Msg("Browser closed, shutting down")
			s.stop(ctx, secondary)
			s.advance(StateShuttingDown, StateTerminated)
			s.exit(0)
			return suture.ErrTerminateSupervisorTree
		}
	}
}

// stop terminates m. Failures are logged and otherwise ignored.
func (s *Session) stop(ctx context.Context, m *process.ManagedProcess) {
	if m == nil {
		return
	}
	if err := s.terminate(m); err != nil {
		logging.Ctx(ctx).Warn().Err(err).Str("role", m.Role).Int32("pid", m.PID()).
			Msg("Failed to terminate managed process")
	}
}

func (s *Session) advance(from, to State) bool {
	if !s.state.CompareAndSwap(int32(from), int32(to)) {
		return false
	}
	metrics.SetSessionState(int(to))
	logging.Debug().Str("from", from.String()).Str("to", to.String()).Msg("Session state changed")
	return true
}
