// OSINTDesk - Local OSINT Toolkit Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/osintdesk

package validation

// WhoisRequest is the body of POST /whois.
type WhoisRequest struct {
	Domain string `json:"domain" validate:"required,max=253,query_target"`
}

// DigRequest is the body of POST /dig. An empty Record means "A".
type DigRequest struct {
	Domain string `json:"domain" validate:"required,max=253,query_target"`
	Record string `json:"record" validate:"omitempty,max=16,dns_record_type"`
}

// NmapRequest is the body of POST /nmap. Args is split with shell rules
// by the adapter; Range is passed as the final argument.
type NmapRequest struct {
	Args  string `json:"args" validate:"max=512,printascii"`
	Range string `json:"range" validate:"required,max=512,scan_target"`
}
