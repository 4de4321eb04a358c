package health

import (
	"time"

	"github.com/hackia/breath/internal/stack"
)

// HookResult records the outcome of one hook invocation.
type HookResult struct {
	Language stack.Language
	Name     string        // hook name, also the log filename stem
	ExitCode int           // meaningful only when Err is nil
	Err      error         // non-nil when the tool never ran (missing, spawn failure)
	Duration time.Duration // wall clock time of the child process

	StdoutLog string // path of the persisted stdout capture
	StderrLog string // path of the persisted stderr capture
	LogNote   string // non-fatal log persistence problem, empty when logs landed
}

// Success reports whether the hook ran and exited zero. Log persistence
// problems never affect the verdict: it derives from the exit status only.
func (r HookResult) Success() bool {
	return r.Err == nil && r.ExitCode == 0
}

// RunReport collects the results for one detected language, in catalog
// order.
type RunReport struct {
	Language stack.Language
	Results  []HookResult
}

// Success is the conjunction of all hook results for this language.
func (r RunReport) Success() bool {
	for _, res := range r.Results {
		if !res.Success() {
			return false
		}
	}
	return true
}

// Report is the outcome of one full health check, one RunReport per
// detected language in detection order.
type Report struct {
	Runs []RunReport
}

// Success is the conjunction across all languages. A report with no runs
// is vacuously successful: a tree with no known ecosystem has nothing to
// fail.
func (r Report) Success() bool {
	for _, run := range r.Runs {
		if !run.Success() {
			return false
		}
	}
	return true
}

// FirstFailure returns the first failing hook result in report order, or
// nil when the check passed.
func (r Report) FirstFailure() *HookResult {
	for i := range r.Runs {
		for j := range r.Runs[i].Results {
			if !r.Runs[i].Results[j].Success() {
				return &r.Runs[i].Results[j]
			}
		}
	}
	return nil
}
