package main

import (
	"strings"
	"testing"
	"time"

	"github.com/hackia/breath/internal/cmd"
	"github.com/hackia/breath/internal/health"
	"github.com/hackia/breath/internal/stack"
)

func TestHealthRows(t *testing.T) {
	run := health.RunReport{
		Language: stack.Rust,
		Results: []health.HookResult{
			{Name: "fmt", ExitCode: 0, Duration: 1200 * time.Millisecond, StdoutLog: "/tmp/out.log", StderrLog: "/tmp/err.log"},
			{Name: "clippy", ExitCode: 2, Duration: 3 * time.Second, StdoutLog: "/tmp/out.log", StderrLog: "/tmp/err.log"},
			{Name: "audit", Err: &cmd.MissingError{Tool: "cargo"}},
		},
	}

	rows := healthRows(run)
	if len(rows) != 3 {
		t.Fatalf("healthRows() = %d rows, want 3", len(rows))
	}

	if rows[0][0] != "fmt" || !strings.Contains(rows[0][1], "passed") {
		t.Errorf("passing row = %v", rows[0])
	}
	if rows[0][3] != "/tmp/out.log" {
		t.Errorf("passing row log = %q, want stdout log", rows[0][3])
	}

	if !strings.Contains(rows[1][1], "exit 2") {
		t.Errorf("failing row status = %q", rows[1][1])
	}
	if rows[1][3] != "/tmp/err.log" {
		t.Errorf("failing row log = %q, want stderr log", rows[1][3])
	}

	if !strings.Contains(rows[2][1], "tool missing") {
		t.Errorf("missing tool status = %q", rows[2][1])
	}
	if rows[2][3] != "-" {
		t.Errorf("missing tool log = %q, want \"-\"", rows[2][3])
	}

	if rows[0][2] != "1.2s" {
		t.Errorf("duration = %q, want 1.2s", rows[0][2])
	}
}
