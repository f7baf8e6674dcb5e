// OSINTDesk - Local OSINT Toolkit Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/osintdesk

package tools

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/miekg/dns"
)

func TestDigQuery_DefaultsToA(t *testing.T) {
	e := NewExec(fakeResolver{"dig": writeScript(t, "dig", `echo "$@"`)})
	d := NewDig(e, time.Second, "")

	tests := []struct {
		record string
		want   string
	}{
		{"", "+short A example.com"},
		{"mx", "+short MX example.com"},
		{" TXT ", "+short TXT example.com"},
	}
	for _, tt := range tests {
		out, err := d.Query(context.Background(), "example.com", tt.record)
		if err != nil {
			t.Fatalf("Query(%q) error = %v", tt.record, err)
		}
		if got := strings.TrimSpace(out); got != tt.want {
			t.Errorf("Query(%q) ran dig %q, want %q", tt.record, got, tt.want)
		}
	}
}

func TestDigQuery_NotFoundWithoutFallback(t *testing.T) {
	d := NewDig(NewExec(fakeResolver{}), time.Second, "")
	_, err := d.Query(context.Background(), "example.com", "A")
	assertKind(t, err, KindNotFound)
}

type fakeExchanger struct {
	reply   *dns.Msg
	err     error
	queried *dns.Msg
	addr    string
}

func (f *fakeExchanger) ExchangeContext(_ context.Context, m *dns.Msg, address string) (*dns.Msg, time.Duration, error) {
	f.queried, f.addr = m, address
	if f.err != nil {
		return nil, 0, f.err
	}
	r := f.reply.Copy()
	r.SetReply(m)
	r.Rcode = f.reply.Rcode
	return r, time.Millisecond, nil
}

func mustRR(t *testing.T, s string) dns.RR {
	t.Helper()
	rr, err := dns.NewRR(s)
	if err != nil {
		t.Fatalf("dns.NewRR(%q): %v", s, err)
	}
	return rr
}

func TestDigQuery_Fallback(t *testing.T) {
	reply := new(dns.Msg)
	reply.Answer = []dns.RR{
		mustRR(t, "example.com. 300 IN MX 10 mail.example.com."),
		mustRR(t, "example.com. 300 IN MX 20 backup.example.com."),
	}
	fx := &fakeExchanger{reply: reply}

	d := NewDig(NewExec(fakeResolver{}), time.Second, "192.0.2.53:53")
	d.client = fx

	out, err := d.Query(context.Background(), "example.com", "mx")
	if err != nil {
		t.Fatalf("Query() error = %v", err)
	}
	want := "10 mail.example.com.\n20 backup.example.com.\n"
	if out != want {
		t.Errorf("Query() = %q, want %q", out, want)
	}
	if fx.addr != "192.0.2.53:53" {
		t.Errorf("queried %q, want the configured resolver", fx.addr)
	}
	if q := fx.queried.Question[0]; q.Name != "example.com." || q.Qtype != dns.TypeMX {
		t.Errorf("question = %+v, want example.com. MX", q)
	}
}

func TestDigQuery_FallbackNXDomain(t *testing.T) {
	reply := new(dns.Msg)
	reply.Rcode = dns.RcodeNameError
	d := NewDig(NewExec(fakeResolver{}), time.Second, "192.0.2.53:53")
	d.client = &fakeExchanger{reply: reply}

	out, err := d.Query(context.Background(), "nope.invalid", "")
	if err != nil || out != "" {
		t.Errorf("Query() = %q, %v; want empty output like dig +short", out, err)
	}
}

type timeoutErr struct{}

func (timeoutErr) Error() string   { return "i/o timeout" }
func (timeoutErr) Timeout() bool   { return true }
func (timeoutErr) Temporary() bool { return true }

func TestDigQuery_FallbackErrors(t *testing.T) {
	d := NewDig(NewExec(fakeResolver{}), time.Second, "192.0.2.53:53")

	d.client = &fakeExchanger{err: timeoutErr{}}
	_, err := d.Query(context.Background(), "example.com", "A")
	assertKind(t, err, KindTimeout)

	d.client = &fakeExchanger{err: errors.New("connection refused")}
	_, err = d.Query(context.Background(), "example.com", "A")
	assertKind(t, err, KindExternalToolFailure)

	_, err = d.Query(context.Background(), "example.com", "NOTATYPE")
	assertKind(t, err, KindInvalidInput)
}

func TestShortAnswer(t *testing.T) {
	got := shortAnswer([]dns.RR{mustRR(t, "example.com. 60 IN A 192.0.2.1")})
	if got != "192.0.2.1\n" {
		t.Errorf("shortAnswer() = %q", got)
	}
	if shortAnswer(nil) != "" {
		t.Error("shortAnswer(nil) should be empty")
	}
}
