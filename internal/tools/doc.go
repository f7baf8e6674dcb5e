// OSINTDesk - Local OSINT Toolkit Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/osintdesk

/*
Package tools wraps the OSINT utilities behind the dashboard.

Process adapters (Exec based, one short-lived child per call):

  - Whois: whois <domain>
  - Dig: dig +short <record> <domain>, with a miekg/dns fallback when dig
    is not installed
  - Nmap: nmap <args...> <range>, args split with shell quoting rules
  - StatusChecker: ping -c 1 <target> behind a gobreaker circuit breaker

In-process adapters:

  - Hasher: MD5, SHA-1 and SHA-256 in one pass plus a mimetype sniff
  - ExifReader: EXIF tags via goexif

Every adapter reports failures as *Error so the HTTP layer can choose a
status code from the Kind alone:

	out, err := whois.Lookup(ctx, "example.com")
	if kind, ok := tools.KindOf(err); ok && kind == tools.KindNotFound {
	    // whois is not installed
	}

No adapter ever passes input through a shell.
*/
package tools
