// OSINTDesk - Local OSINT Toolkit Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/osintdesk

package process

import (
	"errors"
	"slices"

	"github.com/shirou/gopsutil/v4/process"
)

// Handle is a view of one OS process.
type Handle interface {
	PID() int32
	IsRunning() bool
	Children() ([]Handle, error)
}

// createTimer is implemented by handles that know when their process
// started. Together with the pid it identifies a process across pid reuse.
type createTimer interface {
	CreateTime() int64
}

// terminator is implemented by handles that can signal their process.
type terminator interface {
	Terminate() error
}

type procKey struct {
	pid     int32
	created int64
}

func keyOf(h Handle) procKey {
	k := procKey{pid: h.PID()}
	if ct, ok := h.(createTimer); ok {
		k.created = ct.CreateTime()
	}
	return k
}

// psHandle is a Handle backed by gopsutil. It is used for descendants,
// which OSINTDesk did not start and cannot wait on.
type psHandle struct {
	p       *process.Process
	created int64
}

func wrap(p *process.Process) *psHandle {
	// CreateTime is cached by gopsutil; IsRunning compares against it, so a
	// recycled pid reads as not running.
	created, _ := p.CreateTime()
	return &psHandle{p: p, created: created}
}

func (h *psHandle) PID() int32 { return h.p.Pid }

func (h *psHandle) CreateTime() int64 { return h.created }

func (h *psHandle) IsRunning() bool {
	ok, err := h.p.IsRunning()
	if err != nil || !ok {
		return false
	}
	if st, err := h.p.Status(); err == nil && slices.Contains(st, process.Zombie) {
		return false
	}
	return true
}

func (h *psHandle) Children() ([]Handle, error) {
	return childrenOf(h.p)
}

func (h *psHandle) Terminate() error {
	return h.p.Terminate()
}

func childrenOf(p *process.Process) ([]Handle, error) {
	kids, err := p.Children()
	if err != nil {
		if errors.Is(err, process.ErrorNoChildren) || errors.Is(err, process.ErrorProcessNotRunning) {
			return nil, nil
		}
		return nil, err
	}
	out := make([]Handle, 0, len(kids))
	for _, k := range kids {
		out = append(out, wrap(k))
	}
	return out, nil
}

// childHandle is the Handle of a process started by Launcher. Its own
// liveness comes from Wait, not the process table, so an exited but not
// yet reaped child is already reported as gone.
type childHandle struct {
	pid  int32
	done <-chan struct{}
	ps   *process.Process
}

func newChildHandle(pid int, done <-chan struct{}) *childHandle {
	h := &childHandle{pid: int32(pid), done: done} //nolint:gosec // pids fit in int32
	if p, err := process.NewProcess(h.pid); err == nil {
		h.ps = p
	}
	return h
}

func (h *childHandle) PID() int32 { return h.pid }

func (h *childHandle) IsRunning() bool {
	select {
	case <-h.done:
		return false
	default:
		return true
	}
}

func (h *childHandle) Children() ([]Handle, error) {
	if h.ps == nil {
		return nil, nil
	}
	return childrenOf(h.ps)
}
