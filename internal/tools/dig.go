// OSINTDesk - Local OSINT Toolkit Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/osintdesk

package tools

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/miekg/dns"

	"github.com/tomtom215/osintdesk/internal/logging"
	"github.com/tomtom215/osintdesk/internal/metrics"
)

// DefaultRecordType is used when a query names no record type.
const DefaultRecordType = "A"

// DNSExchanger sends one DNS message. *dns.Client implements it.
type DNSExchanger interface {
	ExchangeContext(ctx context.Context, m *dns.Msg, address string) (*dns.Msg, time.Duration, error)
}

// Dig runs `dig +short <record> <domain>`, answering the query itself
// when the dig binary is missing and a fallback resolver is configured.
type Dig struct {
	exec     *Exec
	timeout  time.Duration
	resolver string
	client   DNSExchanger
}

// NewDig returns a Dig adapter. An empty resolver ("host:port") disables
// the in-process fallback.
func NewDig(e *Exec, timeout time.Duration, resolver string) *Dig {
	return &Dig{
		exec:     e,
		timeout:  timeout,
		resolver: resolver,
		client:   &dns.Client{Net: "udp", Timeout: timeout},
	}
}

// Query returns one answer value per line, like dig +short.
func (d *Dig) Query(ctx context.Context, domain, record string) (string, error) {
	record = strings.ToUpper(strings.TrimSpace(record))
	if record == "" {
		record = DefaultRecordType
	}

	res, err := d.exec.Run(ctx, "dig", d.timeout, "+short", record, domain)
	if err == nil {
		return res.Stdout, nil
	}
	if k, _ := KindOf(err); k != KindNotFound || d.resolver == "" {
		return "", err
	}

	logging.Ctx(ctx).Debug().Str("resolver", d.resolver).Msg("dig not found, answering with built-in resolver")
	return d.fallback(ctx, domain, record)
}

func (d *Dig) fallback(ctx context.Context, domain, record string) (string, error) {
	start := time.Now()
	out, err := d.exchange(ctx, domain, record)
	metrics.DNSFallbackQueries.Inc()
	metrics.RecordToolInvocation("dns", outcome(err), time.Since(start))
	return out, err
}

func (d *Dig) exchange(ctx context.Context, domain, record string) (string, error) {
	qtype, ok := dns.StringToType[record]
	if !ok {
		return "", invalidInput("dns", fmt.Errorf("unknown record type %q", record))
	}

	ctx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	m := new(dns.Msg)
	m.SetQuestion(dns.Fqdn(domain), qtype)
	m.RecursionDesired = true

	in, _, err := d.client.ExchangeContext(ctx, m, d.resolver)
	if err != nil {
		var ne net.Error
		if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &ne) && ne.Timeout()) {
			return "", &Error{Kind: KindTimeout, Tool: "dns", Err: err}
		}
		return "", &Error{Kind: KindExternalToolFailure, Tool: "dns", Err: err}
	}

	// dig +short prints nothing for NXDOMAIN and friends.
	if in.Rcode != dns.RcodeSuccess {
		return "", nil
	}
	return shortAnswer(in.Answer), nil
}

// shortAnswer renders the rdata of each record, one per line.
func shortAnswer(rrs []dns.RR) string {
	var b strings.Builder
	for _, rr := range rrs {
		full := rr.String()
		data := strings.TrimPrefix(full, rr.Header().String())
		if data == full {
			// Header formatting differs; fall back to the last tab field.
			if i := strings.LastIndexByte(full, '\t'); i >= 0 {
				data = full[i+1:]
			}
		}
		b.WriteString(strings.TrimSpace(data))
		b.WriteByte('\n')
	}
	return b.String()
}
