// OSINTDesk - Local OSINT Toolkit Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/osintdesk

/*
Package validation validates JSON request bodies with go-playground/validator
v10.

Every value accepted here ends up on an external tool's command line, so the
custom rules exist mainly to keep user input from being read as an option:

  - query_target: domain, IP or CIDR for whois and dig, no leading dash
  - scan_target: query_target plus nmap octet ranges and wildcards
  - dns_record_type: any record type name known to miekg/dns

Field names in messages are the json names, e.g. "domain is required".
Handlers check for a missing field themselves first, because those
responses carry fixed messages ("No domain provided").
*/
package validation
