package cmd

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/hackia/breath/internal/log"
)

// MissingError indicates the executable could not be found on PATH.
type MissingError struct {
	Tool string
}

func (e *MissingError) Error() string {
	return fmt.Sprintf("%s not found: please install it and make sure it is on your PATH", e.Tool)
}

// SpawnError indicates the process could not be started (permissions,
// resource limits) even though the executable exists.
type SpawnError struct {
	Tool string
	Err  error
}

func (e *SpawnError) Error() string {
	return fmt.Sprintf("failed to start %s: %v", e.Tool, e.Err)
}

func (e *SpawnError) Unwrap() error { return e.Err }

// Result holds the captured outcome of a single child process.
// Stdout and Stderr are captured into independent buffers, never merged.
type Result struct {
	Stdout   []byte
	Stderr   []byte
	ExitCode int
	Duration time.Duration
}

// Ok reports whether the process exited with status zero.
func (r Result) Ok() bool { return r.ExitCode == 0 }

// Capture runs a command in dir and captures both output streams.
// A non-zero exit status is not an error: it is reported through
// Result.ExitCode so callers can decide what it means. The returned error
// is non-nil only when the process never ran ([*MissingError],
// [*SpawnError]) or the context was cancelled.
//
// The child runs in its own process group so that cancellation also kills
// any descendants the tool may have spawned.
func Capture(ctx context.Context, dir, name string, args ...string) (Result, error) {
	if _, err := exec.LookPath(name); err != nil {
		return Result{}, &MissingError{Tool: name}
	}

	log.FromContext(ctx).Command(name, args...)

	c := exec.CommandContext(ctx, name, args...)
	c.Dir = dir
	c.Stdin = nil

	var stdout, stderr bytes.Buffer
	c.Stdout = &stdout
	c.Stderr = &stderr

	setProcessGroup(c)

	start := time.Now()
	if err := c.Start(); err != nil {
		return Result{}, &SpawnError{Tool: name, Err: err}
	}

	err := c.Wait()
	res := Result{
		Stdout:   stdout.Bytes(),
		Stderr:   stderr.Bytes(),
		Duration: time.Since(start),
	}

	if err != nil {
		if ctx.Err() != nil {
			return res, ctx.Err()
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			res.ExitCode = exitErr.ExitCode()
			return res, nil
		}
		return res, &SpawnError{Tool: name, Err: err}
	}

	return res, nil
}

// RunContext executes a command and folds trimmed stderr into the error
// message if it fails.
func RunContext(ctx context.Context, dir, name string, args ...string) error {
	if _, err := exec.LookPath(name); err != nil {
		return &MissingError{Tool: name}
	}

	log.FromContext(ctx).Command(name, args...)

	c := exec.CommandContext(ctx, name, args...)
	c.Dir = dir
	setProcessGroup(c)

	var stderr bytes.Buffer
	c.Stderr = &stderr
	if err := c.Run(); err != nil {
		if errMsg := strings.TrimSpace(stderr.String()); errMsg != "" {
			return fmt.Errorf("%s", errMsg)
		}
		return err
	}
	return nil
}

// OutputContext executes a command and returns stdout, with stderr folded
// into the error if it fails.
func OutputContext(ctx context.Context, dir, name string, args ...string) ([]byte, error) {
	if _, err := exec.LookPath(name); err != nil {
		return nil, &MissingError{Tool: name}
	}

	log.FromContext(ctx).Command(name, args...)

	c := exec.CommandContext(ctx, name, args...)
	c.Dir = dir
	setProcessGroup(c)

	output, err := c.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			if errMsg := strings.TrimSpace(string(exitErr.Stderr)); errMsg != "" {
				return nil, fmt.Errorf("%s", errMsg)
			}
		}
		return nil, err
	}
	return output, nil
}

// Interactive executes a command with the caller's terminal attached.
// Used for passthrough commands (status, diff, log) where the tool's
// output should reach the user unmodified and may be paged.
func Interactive(ctx context.Context, dir, name string, args ...string) error {
	if _, err := exec.LookPath(name); err != nil {
		return &MissingError{Tool: name}
	}

	log.FromContext(ctx).Command(name, args...)

	c := exec.CommandContext(ctx, name, args...)
	c.Dir = dir
	c.Stdin = os.Stdin
	c.Stdout = os.Stdout
	c.Stderr = os.Stderr
	return c.Run()
}
