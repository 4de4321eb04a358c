package health

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/hackia/breath/internal/cmd"
	"github.com/hackia/breath/internal/hooks"
	"github.com/hackia/breath/internal/logsink"
	"github.com/hackia/breath/internal/stack"
)

// shProfile is a fixture profile whose hooks run through sh, so tests can
// script arbitrary exit codes without depending on real toolchains.
var shProfile = stack.Profile{Language: stack.Language("Shell"), Program: "sh"}

func silent(string) Progress { return noProgress{} }

// testRunner builds a runner over a fixed profile/hook fixture.
func testRunner(t *testing.T, hookTable []hooks.Hook) *Runner {
	t.Helper()
	r := NewRunner(t.TempDir())
	r.NewProgress = silent
	r.detect = func(string) []stack.Profile { return []stack.Profile{shProfile} }
	r.hooksFor = func(stack.Language) []hooks.Hook { return hookTable }
	return r
}

func shHook(name, script string) hooks.Hook {
	return hooks.Hook{
		Name:        name,
		Description: "running " + name,
		Success:     name + " ok",
		Failure:     name + " failed",
		Args:        []string{"-c", script},
	}
}

func TestRunEmptyTreeSucceedsTrivially(t *testing.T) {
	r := NewRunner(t.TempDir())
	r.NewProgress = silent

	report, err := r.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if len(report.Runs) != 0 {
		t.Errorf("Runs = %d, want 0", len(report.Runs))
	}
	if !report.Success() {
		t.Error("empty report must be vacuously successful")
	}
}

func TestRunContinuesAfterFailure(t *testing.T) {
	r := testRunner(t, []hooks.Hook{
		shHook("first", "exit 1"),
		shHook("second", "exit 0"),
		shHook("third", "exit 0"),
	})

	report, err := r.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	results := report.Runs[0].Results
	if len(results) != 3 {
		t.Fatalf("got %d results, want all 3 hooks attempted", len(results))
	}
	if results[0].Success() {
		t.Error("first hook exited 1 but reports success")
	}
	if !results[1].Success() || !results[2].Success() {
		t.Error("later hooks should still run and succeed after a failure")
	}
	if report.Success() {
		t.Error("one failing hook must fail the whole report")
	}
}

func TestRunFailFastStopsLanguage(t *testing.T) {
	r := testRunner(t, []hooks.Hook{
		shHook("first", "exit 1"),
		shHook("second", "exit 0"),
	})
	r.FailFast = true

	report, err := r.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if got := len(report.Runs[0].Results); got != 1 {
		t.Errorf("got %d results, want 1 after fail-fast stop", got)
	}
}

func TestRunRecordsMissingTool(t *testing.T) {
	r := NewRunner(t.TempDir())
	r.NewProgress = silent
	r.detect = func(string) []stack.Profile {
		return []stack.Profile{{Language: "Ghost", Program: "no-such-tool-a41b"}}
	}
	r.hooksFor = func(stack.Language) []hooks.Hook {
		return []hooks.Hook{shHook("check", "exit 0"), shHook("after", "exit 0")}
	}

	report, err := r.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error = %v, missing tools must not abort the run", err)
	}

	results := report.Runs[0].Results
	if len(results) != 2 {
		t.Fatalf("got %d results, want both hooks attempted", len(results))
	}
	var missing *cmd.MissingError
	if !errors.As(results[0].Err, &missing) {
		t.Errorf("result error = %v, want *cmd.MissingError", results[0].Err)
	}
	if results[0].Success() {
		t.Error("missing tool reported as success")
	}
	if report.Success() {
		t.Error("missing tool must fail the report")
	}
}

func TestRunPersistsBothStreams(t *testing.T) {
	r := testRunner(t, []hooks.Hook{
		shHook("noise", "echo from-stdout; echo from-stderr >&2"),
	})

	report, err := r.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	res := report.Runs[0].Results[0]
	stdout, err := os.ReadFile(res.StdoutLog)
	if err != nil {
		t.Fatalf("reading stdout log: %v", err)
	}
	stderr, err := os.ReadFile(res.StderrLog)
	if err != nil {
		t.Fatalf("reading stderr log: %v", err)
	}
	if string(stdout) != "from-stdout\n" {
		t.Errorf("stdout log = %q", stdout)
	}
	if string(stderr) != "from-stderr\n" {
		t.Errorf("stderr log = %q", stderr)
	}

	wantStdout := filepath.Join(r.Root, logsink.DirName, "Shell", "stdout", "noise.log")
	if res.StdoutLog != wantStdout {
		t.Errorf("stdout log path = %q, want %q", res.StdoutLog, wantStdout)
	}
}

func TestRunOverwritesLogsBetweenRuns(t *testing.T) {
	r := testRunner(t, []hooks.Hook{shHook("echo", "echo run-output")})

	for i := 0; i < 2; i++ {
		if _, err := r.Run(context.Background()); err != nil {
			t.Fatalf("Run() #%d error = %v", i+1, err)
		}
	}

	data, err := os.ReadFile(filepath.Join(r.Root, logsink.DirName, "Shell", "stdout", "echo.log"))
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "run-output\n" {
		t.Errorf("log = %q, want a single run's output (overwrite, not append)", data)
	}
}

func TestRunTimedOutHookRecordsFailureAndContinues(t *testing.T) {
	r := testRunner(t, []hooks.Hook{
		shHook("hang", "sleep 30"),
		shHook("after", "exit 0"),
	})
	r.Timeout = 200 * time.Millisecond

	start := time.Now()
	report, err := r.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error = %v, a hook timeout must not abort the run", err)
	}
	if elapsed := time.Since(start); elapsed > 10*time.Second {
		t.Errorf("timed-out hook took %v to reap", elapsed)
	}

	results := report.Runs[0].Results
	if len(results) != 2 {
		t.Fatalf("got %d results, want both hooks attempted", len(results))
	}
	if results[0].Success() {
		t.Error("timed-out hook reported as success")
	}
	if results[0].Err == nil || !strings.Contains(results[0].Err.Error(), "timed out") {
		t.Errorf("result error = %v, want a timeout diagnostic", results[0].Err)
	}
	if !results[1].Success() {
		t.Error("hook after the timeout should still run and succeed")
	}
	if report.Success() {
		t.Error("a timed-out hook must fail the report")
	}
}

func TestRunCancelledContextRecordsNothing(t *testing.T) {
	r := testRunner(t, []hooks.Hook{shHook("never", "exit 0")})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	report, err := r.Run(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Run() error = %v, want context.Canceled", err)
	}
	for _, run := range report.Runs {
		if len(run.Results) != 0 {
			t.Error("interrupted run recorded hook results")
		}
	}
}

func TestReportFirstFailure(t *testing.T) {
	report := Report{Runs: []RunReport{
		{Language: "A", Results: []HookResult{{Name: "ok"}}},
		{Language: "B", Results: []HookResult{{Name: "bad", ExitCode: 2}, {Name: "worse", ExitCode: 3}}},
	}}

	first := report.FirstFailure()
	if first == nil || first.Name != "bad" {
		t.Fatalf("FirstFailure() = %+v, want the first failing hook", first)
	}

	if (Report{}).FirstFailure() != nil {
		t.Error("FirstFailure() on a passing report should be nil")
	}
}

func TestTail(t *testing.T) {
	tests := []struct {
		name string
		in   string
		n    int
		want string
	}{
		{"empty", "", 3, ""},
		{"fewer lines than n", "a\nb\n", 5, "a\nb"},
		{"trims to last n", "a\nb\nc\nd\n", 2, "c\nd"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Tail([]byte(tt.in), tt.n); got != tt.want {
				t.Errorf("Tail(%q, %d) = %q, want %q", tt.in, tt.n, got, tt.want)
			}
		})
	}
}
