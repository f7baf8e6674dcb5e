// OSINTDesk - Local OSINT Toolkit Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/osintdesk

/*
Package services provides suture.Service wrappers for OSINTDesk components.

Each wrapper translates a component's own lifecycle into suture's
context-aware Serve pattern and names itself through fmt.Stringer so
supervisor events are readable:

  - HTTPServerService ("http-server"): binds the listener, serves, and shuts
    down gracefully when its context ends. Ready reports the first bind.
  - SessionService ("session-watcher"): runs supervisor.Session.Run.

Returning ctx.Err() after cancellation is normal shutdown; any other error
makes suture restart the service with backoff.
*/
package services
