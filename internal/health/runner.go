// Package health drives the per-project health check: detect which
// ecosystems live in a working tree, run each one's hook catalog in order,
// persist every tool's output, and aggregate a pass/fail report.
package health

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/hackia/breath/internal/cmd"
	"github.com/hackia/breath/internal/hooks"
	"github.com/hackia/breath/internal/log"
	"github.com/hackia/breath/internal/logsink"
	"github.com/hackia/breath/internal/stack"
	"github.com/hackia/breath/internal/ui"
	"github.com/hackia/breath/internal/ui/styles"
)

// Progress is the feedback shown while a single hook runs. Exactly one
// Progress is active at a time: the runner starts it right before the
// blocking tool invocation and stops it the moment the tool returns.
type Progress interface {
	Start()
	Stop()
}

// noProgress is used when the caller wants a silent run (tests, --quiet).
type noProgress struct{}

func (noProgress) Start() {}
func (noProgress) Stop()  {}

// Runner executes the health check for one working tree.
type Runner struct {
	Root string

	// FailFast stops the remaining hooks of a language after its first
	// failure. The default (false) runs every hook so one pass yields the
	// complete diagnostic picture.
	FailFast bool

	// Timeout bounds each individual hook. Zero means no limit: some
	// legitimate hooks (full test suites) run for a long time.
	Timeout time.Duration

	// NewProgress builds the per-hook progress indicator. Nil selects the
	// spinner; tests inject a silent one.
	NewProgress func(message string) Progress

	sink *logsink.Sink

	// Seams for tests: detection and catalog lookup are pure functions of
	// the tree and the language, swapped for fixtures in runner_test.go.
	detect   func(root string) []stack.Profile
	hooksFor func(lang stack.Language) []hooks.Hook
}

// NewRunner creates a runner for the tree rooted at root.
func NewRunner(root string) *Runner {
	return &Runner{
		Root:     root,
		sink:     logsink.New(root),
		detect:   stack.Detect,
		hooksFor: hooks.For,
	}
}

func (r *Runner) progress(message string) Progress {
	if r.NewProgress != nil {
		return r.NewProgress(message)
	}
	return ui.NewSpinner(message)
}

// Run performs one full health check. Hooks run strictly sequentially, in
// detection order across languages and catalog order within one, and a
// failing hook does not stop the run unless FailFast is set. A cancelled
// context aborts immediately; the interrupted hook records no result.
func (r *Runner) Run(ctx context.Context) (Report, error) {
	l := log.FromContext(ctx)
	report := Report{}

	for _, profile := range r.detect(r.Root) {
		run := RunReport{Language: profile.Language}

		for _, hook := range r.hooksFor(profile.Language) {
			if err := ctx.Err(); err != nil {
				return report, err
			}

			result, err := r.runHook(ctx, l, profile, hook)
			if err != nil {
				// Context cancellation: the hook was interrupted, not
				// failed, so nothing is recorded for it.
				return report, err
			}

			run.Results = append(run.Results, result)

			if r.FailFast && !result.Success() {
				break
			}
		}

		report.Runs = append(report.Runs, run)
	}

	return report, nil
}

// runHook executes a single hook with progress feedback and persists both
// captured streams. The returned error is non-nil only for context
// cancellation; every other outcome, including a missing tool, is encoded
// in the result.
func (r *Runner) runHook(ctx context.Context, l *log.Logger, profile stack.Profile, hook hooks.Hook) (HookResult, error) {
	result := HookResult{
		Language: profile.Language,
		Name:     hook.Name,
	}

	runCtx := ctx
	if r.Timeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(ctx, r.Timeout)
		defer cancel()
	}

	p := r.progress(hook.Description)
	p.Start()
	res, err := cmd.Capture(runCtx, r.Root, profile.Program, hook.Args...)
	p.Stop()

	result.Duration = res.Duration

	if err != nil {
		if ctx.Err() != nil {
			return result, ctx.Err()
		}
		if errors.Is(err, context.DeadlineExceeded) {
			// Per-hook timeout: the tool hung, report it as a failure
			// rather than aborting the whole check.
			result.Err = fmt.Errorf("timed out after %s", r.Timeout)
		} else {
			// MissingError or SpawnError: the tool never ran.
			result.Err = err
		}
	} else {
		result.ExitCode = res.ExitCode
	}

	r.persist(&result, res.Stdout, res.Stderr)
	r.announce(l, hook, result, res.Stderr)
	return result, nil
}

// persist writes both streams through the sink. Failures are noted on the
// result but never change its verdict.
func (r *Runner) persist(result *HookResult, stdout, stderr []byte) {
	var notes []string

	path, err := r.sink.Write(result.Language, logsink.Stdout, result.Name, stdout)
	result.StdoutLog = path
	if err != nil {
		notes = append(notes, fmt.Sprintf("stdout log: %v", err))
	}

	path, err = r.sink.Write(result.Language, logsink.Stderr, result.Name, stderr)
	result.StderrLog = path
	if err != nil {
		notes = append(notes, fmt.Sprintf("stderr log: %v", err))
	}

	result.LogNote = strings.Join(notes, "; ")
}

// announce prints the hook outcome as it happens, so a long run reads as
// a live log rather than a silent wait followed by a table.
func (r *Runner) announce(l *log.Logger, hook hooks.Hook, result HookResult, stderr []byte) {
	switch {
	case result.Success():
		l.Printf("%s %s\n", styles.Pass(), hook.Success)
	case result.Err != nil:
		l.Printf("%s %s: %v\n", styles.Missing(), hook.Description, result.Err)
	default:
		l.Printf("%s %s (exit %d)\n", styles.Fail(), hook.Failure, result.ExitCode)
		if tail := Tail(stderr, 15); tail != "" {
			l.Printf("%s\n", styles.MutedStyle.Render(tail))
		}
	}
	if result.LogNote != "" {
		l.Warnf("could not persist %s logs: %s", hook.Name, result.LogNote)
	}
}

// Tail returns the last n lines of captured output, used to surface the
// interesting end of a failing tool's stderr without dumping everything.
func Tail(data []byte, n int) string {
	lines := bytes.Split(bytes.TrimRight(data, "\n"), []byte("\n"))
	if len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	return string(bytes.Join(lines, []byte("\n")))
}
