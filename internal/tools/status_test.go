// OSINTDesk - Local OSINT Toolkit Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/osintdesk

package tools

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/tomtom215/osintdesk/internal/logging"
	"github.com/tomtom215/osintdesk/internal/metrics"
)

func newTestChecker(t *testing.T, pingBody string, failures uint32) *StatusChecker {
	t.Helper()
	s := NewStatusChecker(NewExec(fakeResolver{"ping": writeScript(t, "ping", pingBody)}), StatusConfig{
		Version:         "1.2.3",
		Target:          "192.0.2.1",
		Timeout:         time.Second,
		BreakerFailures: failures,
		BreakerTimeout:  time.Minute,
	})
	s.localIP = func(target string) string { return "10.1.2.3" }
	return s
}

func TestStatusCheck_Connected(t *testing.T) {
	argsFile := filepath.Join(t.TempDir(), "args")
	s := newTestChecker(t, `echo "$@" > `+argsFile+"\necho '1 packets received'", 3)

	st := s.Check(context.Background())
	want := Status{IP: "10.1.2.3", Version: "1.2.3", InternetConnection: Connected}
	if st != want {
		t.Errorf("Check() = %+v, want %+v", st, want)
	}

	raw, err := os.ReadFile(argsFile)
	if err != nil {
		t.Fatal(err)
	}
	wantArgs := "-c 1 192.0.2.1"
	if runtime.GOOS == "windows" {
		wantArgs = "-n 1 192.0.2.1"
	}
	if got := strings.TrimSpace(string(raw)); got != wantArgs {
		t.Errorf("ping args = %q, want %q", got, wantArgs)
	}
}

func TestStatusCheck_BreakerOpensAfterFailures(t *testing.T) {
	original := logging.Logger()
	t.Cleanup(func() { logging.SetLogger(original) })
	var logs bytes.Buffer
	logging.SetLogger(logging.NewTestLogger(&logs))

	countFile := filepath.Join(t.TempDir(), "count")
	s := newTestChecker(t, "echo x >> "+countFile+"\nexit 1", 3)

	for i := 0; i < 5; i++ {
		if st := s.Check(context.Background()); st.InternetConnection != Disconnected {
			t.Fatalf("check %d: InternetConnection = %q, want Disconnected", i, st.InternetConnection)
		}
	}

	raw, err := os.ReadFile(countFile)
	if err != nil {
		t.Fatal(err)
	}
	if runs := strings.Count(string(raw), "x"); runs != 3 {
		t.Errorf("ping ran %d times, want 3 before the breaker opened", runs)
	}
	if got := testutil.ToFloat64(metrics.CircuitBreakerState.WithLabelValues(breakerName)); got != 2 {
		t.Errorf("breaker state gauge = %v, want 2 (open)", got)
	}
	if !strings.Contains(logs.String(), `"component":"connectivity"`) {
		t.Errorf("state change not logged under the connectivity component: %s", logs.String())
	}
}

func TestStatusCheck_PingMissing(t *testing.T) {
	s := NewStatusChecker(NewExec(fakeResolver{}), StatusConfig{Version: "dev", Target: "192.0.2.1", Timeout: time.Second})
	s.localIP = func(string) string { return "127.0.0.1" }

	st := s.Check(context.Background())
	if st.InternetConnection != Disconnected || st.IP != "127.0.0.1" || st.Version != "dev" {
		t.Errorf("Check() = %+v", st)
	}
}

func TestOutboundIPNeverEmpty(t *testing.T) {
	if ip := outboundIP("192.0.2.1"); ip == "" {
		t.Error("outboundIP() returned empty string")
	}
	if ip := outboundIP("not a host"); ip != "127.0.0.1" {
		t.Errorf("outboundIP(invalid) = %q, want 127.0.0.1", ip)
	}
}
