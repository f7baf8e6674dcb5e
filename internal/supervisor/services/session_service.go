// OSINTDesk - Local OSINT Toolkit Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/osintdesk

package services

import "context"

// SessionRunner is satisfied by *supervisor.Session.
type SessionRunner interface {
	Run(ctx context.Context) error
}

// SessionService runs the supervision session's polling loop under suture.
// The session decides when the tree ends: it returns
// suture.ErrTerminateSupervisorTree once the browser is gone and
// suture.ErrDoNotRestart if it is ever started again afterwards.
type SessionService struct {
	session SessionRunner
	name    string
}

// NewSessionService wraps session.
func NewSessionService(session SessionRunner) *SessionService {
	return &SessionService{session: session, name: "session-watcher"}
}

// Serve implements suture.Service.
func (s *SessionService) Serve(ctx context.Context) error {
	return s.session.Run(ctx)
}

func (s *SessionService) String() string {
	return s.name
}
