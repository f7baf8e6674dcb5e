// OSINTDesk - Local OSINT Toolkit Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/osintdesk

/*
Package process launches the browser and terminal server and answers the
one question the session cares about: is the browser still there?

Browsers are often thin launchers that fork the real window process and
exit. IsAlive therefore counts a ManagedProcess as alive while its own
process runs or while any descendant seen during an earlier check runs.
Descendants are tracked by pid and start time through gopsutil, so a
recycled pid is not mistaken for the old process. Death is final: once
IsAlive reports false it keeps doing so.

	l := process.NewLauncher(binpath.New(""))
	browser, err := l.LaunchPrimary(ctx, process.Command{
	    Candidates: []string{"chromium", "google-chrome"},
	    Args:       process.BrowserArgs(url, "1200,800", profile, nil),
	})
	for process.IsAlive(browser) {
	    time.Sleep(time.Second)
	}
*/
package process
