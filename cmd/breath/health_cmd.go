package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/hackia/breath/internal/cmd"
	"github.com/hackia/breath/internal/config"
	"github.com/hackia/breath/internal/health"
	"github.com/hackia/breath/internal/log"
	"github.com/hackia/breath/internal/output"
	"github.com/hackia/breath/internal/ui/static"
	"github.com/hackia/breath/internal/ui/styles"
)

func newHealthCmd() *cobra.Command {
	var copyLog bool

	c := &cobra.Command{
		Use:     "health",
		Short:   "Run the quality hooks for every detected toolchain",
		GroupID: GroupCore,
		Args:    cobra.NoArgs,
		Long: `Detect the toolchains used in the working tree and run their quality
hooks sequentially (format checks, linters, tests, audits). Every hook
runs even when an earlier one fails, unless fail_fast is set in
breath.yml.

Each hook's stdout and stderr are written to
.breathes/<Language>/<stream>/<hook>.log, overwriting the previous run.

Exits non-zero when any hook fails.

Examples:
  breath health           # run all hooks, print a summary per toolchain
  breath health --copy    # also copy the first failing stderr log path`,
		RunE: func(c *cobra.Command, args []string) error {
			ctx := c.Context()
			out := output.FromContext(ctx)

			cfg, err := config.Load(workDir)
			if err != nil {
				return err
			}

			runner := health.NewRunner(workDir)
			runner.FailFast = cfg.Hooks.FailFast
			runner.Timeout = cfg.Hooks.Timeout

			report, err := runner.Run(ctx)
			if err != nil {
				return err
			}

			if len(report.Runs) == 0 {
				out.Println("No known toolchain detected, nothing to check")
				return nil
			}

			for _, run := range report.Runs {
				headers := []string{"HOOK", "STATUS", "DURATION", "LOG"}
				out.Print(static.RenderSection(string(run.Language), headers, healthRows(run)))
			}

			if report.Success() {
				return nil
			}

			if copyLog {
				if f := report.FirstFailure(); f != nil && f.StderrLog != "" {
					if err := clipboard.WriteAll(f.StderrLog); err != nil {
						log.FromContext(ctx).Warnf("failed to copy to clipboard: %v", err)
					}
				}
			}
			return fmt.Errorf("health checks failed")
		},
	}

	c.Flags().BoolVar(&copyLog, "copy", false, "Copy the first failing stderr log path to the clipboard")
	return c
}

// healthRows renders one table row per hook result.
func healthRows(run health.RunReport) [][]string {
	rows := make([][]string, 0, len(run.Results))
	for _, res := range run.Results {
		rows = append(rows, []string{
			res.Name,
			healthStatus(res),
			res.Duration.Round(time.Millisecond).String(),
			healthLog(res),
		})
	}
	return rows
}

func healthStatus(res health.HookResult) string {
	switch {
	case res.Success():
		return styles.Pass() + " passed"
	case errors.As(res.Err, new(*cmd.MissingError)):
		return styles.Missing() + " tool missing"
	case res.Err != nil:
		return styles.Fail() + " " + res.Err.Error()
	default:
		return fmt.Sprintf("%s exit %d", styles.Fail(), res.ExitCode)
	}
}

// healthLog points at the capture worth reading: stderr on failure,
// stdout otherwise. Hooks that never ran have no capture.
func healthLog(res health.HookResult) string {
	if res.Err != nil {
		return "-"
	}
	if res.ExitCode != 0 {
		return res.StderrLog
	}
	return res.StdoutLog
}
