// OSINTDesk - Local OSINT Toolkit Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/osintdesk

package process

import (
	"errors"
	"os"
	"sync"
	"syscall"

	"github.com/tomtom215/osintdesk/internal/logging"
	"github.com/tomtom215/osintdesk/internal/metrics"
)

// Roles of the two processes in a session.
const (
	RolePrimary   = "primary"
	RoleSecondary = "secondary"
)

// maxDescendants bounds the remembered process tree.
const maxDescendants = 4096

// Signaler delivers signals to a process. *os.Process implements it.
type Signaler interface {
	Signal(sig os.Signal) error
	Kill() error
}

// ManagedProcess is one process started by OSINTDesk, plus every
// descendant seen while checking it.
type ManagedProcess struct {
	Role string
	Path string
	Args []string

	handle Handle
	proc   Signaler

	mu          sync.Mutex
	descendants map[procKey]Handle
	dead        bool
	terminated  bool
}

// New wraps an already running process.
func New(role, path string, args []string, h Handle, proc Signaler) *ManagedProcess {
	return &ManagedProcess{
		Role:        role,
		Path:        path,
		Args:        args,
		handle:      h,
		proc:        proc,
		descendants: make(map[procKey]Handle),
	}
}

// PID returns the pid of the launched process, or 0 for nil.
func (m *ManagedProcess) PID() int32 {
	if m == nil || m.handle == nil {
		return 0
	}
	return m.handle.PID()
}

// IsAlive reports whether m or any of its descendants is still running.
//
// While m runs its tree is re-enumerated on every call. After it exits the
// remembered descendants (and their children) keep it alive, which covers
// launchers that hand off to a longer lived process and quit. Once a call
// returns false every later call does too. A nil m is never alive.
func IsAlive(m *ManagedProcess) bool {
	if m == nil {
		return false
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.dead {
		return false
	}

	self := m.handle != nil && m.handle.IsRunning()
	if self {
		m.collect(m.handle)
	}
	live := m.checkDescendants()

	alive := self || live > 0
	if !alive {
		m.dead = true
		m.descendants = nil
	}
	metrics.RecordLivenessCheck(alive, live)
	return alive
}

// collect adds every descendant of root to the remembered set.
func (m *ManagedProcess) collect(root Handle) {
	queue := []Handle{root}
	for len(queue) > 0 && len(m.descendants) < maxDescendants {
		cur := queue[0]
		queue = queue[1:]

		kids, err := cur.Children()
		if err != nil {
			logging.Debug().Err(err).Int32("pid", cur.PID()).Msg("Cannot enumerate child processes")
			continue
		}
		for _, k := range kids {
			key := keyOf(k)
			if _, seen := m.descendants[key]; seen {
				continue
			}
			m.descendants[key] = k
			queue = append(queue, k)
		}
	}
}

// checkDescendants drops descendants that have exited, picks up children
// of the ones still running and returns how many are running.
func (m *ManagedProcess) checkDescendants() int {
	running := make([]Handle, 0, len(m.descendants))
	for key, h := range m.descendants {
		if h.IsRunning() {
			running = append(running, h)
		} else {
			delete(m.descendants, key)
		}
	}
	for _, h := range running {
		m.collect(h)
	}
	return len(running)
}

// Terminate asks m to exit with SIGTERM, falling back to a kill where
// signals are unsupported. It does not wait. Descendants remembered by
// IsAlive are signalled too. Calling it on nil, an exited process or a
// second time is a no-op.
func Terminate(m *ManagedProcess) error {
	if m == nil {
		return nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.terminated {
		return nil
	}
	m.terminated = true

	var errs []error
	if m.proc != nil && m.handle != nil && m.handle.IsRunning() {
		if err := signal(m.proc); err != nil {
			errs = append(errs, err)
		}
	}
	for _, h := range m.descendants {
		t, ok := h.(terminator)
		if !ok || !h.IsRunning() {
			continue
		}
		if err := t.Terminate(); err != nil && !isGone(err) {
			errs = append(errs, err)
		}
	}

	logging.Debug().Str("role", m.Role).Int32("pid", m.PID()).Msg("Sent termination signal")
	return errors.Join(errs...)
}

func signal(p Signaler) error {
	err := p.Signal(syscall.SIGTERM)
	if err == nil || isGone(err) {
		return nil
	}
	// Windows cannot deliver SIGTERM.
	if kerr := p.Kill(); kerr != nil && !isGone(kerr) {
		return kerr
	}
	return nil
}

func isGone(err error) bool {
	return errors.Is(err, os.ErrProcessDone) || errors.Is(err, syscall.ESRCH)
}
