// Package doc runs the documentation commands configured in
// breath.yml. Commands pass a safety check before they reach a shell:
// only allow-listed binaries, no shell metacharacters, no absolute or
// parent paths.
package doc

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"runtime"
	"strings"

	"github.com/hackia/breath/internal/cmd"
	"github.com/hackia/breath/internal/health"
	"github.com/hackia/breath/internal/output"
	"github.com/hackia/breath/internal/stack"
	"github.com/hackia/breath/internal/ui"
	"github.com/hackia/breath/internal/ui/styles"
)

// ErrUnsafe is returned when a configured command fails the safety
// check.
var ErrUnsafe = errors.New("command failed the safety check")

var metachars = regexp.MustCompile("[;&|`$]|\\.\\.")

// allowedBins is the closed set of binaries documentation commands may
// invoke: the stack programs plus common doc and file tools.
var allowedBins = func() map[string]bool {
	bins := map[string]bool{
		"doxygen":  true,
		"help2man": true,
		"rm":       true,
		"cp":       true,
		"mkdir":    true,
		"touch":    true,
	}
	for _, p := range stack.Profiles() {
		bins[p.Program] = true
	}
	return bins
}()

// IsSafe reports whether the command may be handed to a shell.
func IsSafe(command string) bool {
	if metachars.MatchString(command) {
		return false
	}
	if strings.HasPrefix(strings.TrimSpace(command), "/") {
		return false
	}
	fields := strings.Fields(command)
	if len(fields) == 0 {
		return false
	}
	return allowedBins[fields[0]]
}

// Progress receives start/stop feedback while a command runs.
type Progress interface {
	Start()
	Stop()
}

// Generator runs configured documentation commands sequentially.
type Generator struct {
	Root        string
	NewProgress func(message string) Progress
}

// New returns a Generator with live spinner feedback.
func New(root string) *Generator {
	return &Generator{
		Root: root,
		NewProgress: func(message string) Progress {
			return ui.NewSpinner(message)
		},
	}
}

// Run executes the commands in order, stopping at the first failure.
// label names the kind of run in the feedback ("documentation",
// "man pages").
func (g *Generator) Run(ctx context.Context, label string, commands []string) error {
	printer := output.FromContext(ctx)
	total := len(commands)

	for i, command := range commands {
		if err := ctx.Err(); err != nil {
			return err
		}
		if !IsSafe(command) {
			return fmt.Errorf("%w: %q", ErrUnsafe, command)
		}

		step := fmt.Sprintf("%d/%d", i+1, total)
		sp := g.NewProgress(fmt.Sprintf("Building %s %s", label, step))
		sp.Start()
		shell, flag := shellCommand()
		res, err := cmd.Capture(ctx, g.Root, shell, flag, command)
		sp.Stop()
		if err != nil {
			return fmt.Errorf("%s step %s: %w", label, step, err)
		}
		if !res.Ok() {
			printer.Printf("%s %s step %s has failed\n", styles.Fail(), label, step)
			if tail := health.Tail(res.Stderr, 15); tail != "" {
				printer.Println(tail)
			}
			return fmt.Errorf("%s step %s failed with exit code %d", label, step, res.ExitCode)
		}
		printer.Printf("%s %s step %s has been completed successfully\n", styles.Pass(), label, step)
	}
	return nil
}

func shellCommand() (name, flag string) {
	if runtime.GOOS == "windows" {
		return "cmd", "/C"
	}
	return "sh", "-c"
}
