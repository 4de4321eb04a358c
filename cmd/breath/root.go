package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/hackia/breath/internal/log"
	"github.com/hackia/breath/internal/output"
)

var (
	// Global flags
	verbose bool
	quiet   bool

	// Shared state injected into commands
	workDir string
)

// Command group IDs for organizing help output
const (
	GroupCore    = "core"
	GroupVcs     = "vcs"
	GroupProject = "project"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "breath",
	Short: "Developer workflow companion for commits and health checks",
	Long: `breath keeps a repository healthy before anything gets committed.

It detects the toolchains used in the working tree, runs their quality
hooks with captured logs, and guides you through a structured commit
flow on top of git or Mercurial.`,
	SilenceUsage:               true,
	SilenceErrors:              true,
	SuggestionsMinimumDistance: 2, // Enable typo suggestions
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "completion" || cmd.Name() == "__complete" || cmd.Name() == "help" {
			return nil
		}

		// Validate mutually exclusive flags
		if verbose && quiet {
			return fmt.Errorf("--verbose and --quiet are mutually exclusive")
		}

		// Flags are parsed by now; attach the logger here so -v and -q
		// take effect.
		ctx := log.WithLogger(cmd.Context(), log.New(os.Stderr, verbose, quiet))
		cmd.SetContext(ctx)
		return nil
	},
	// Run is not set - shows help when no subcommand provided
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	var err error
	workDir, err = os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "breath: failed to get working directory: %v\n", err)
		os.Exit(1)
	}

	// Create context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Add output printer (stdout for primary data)
	ctx = output.WithPrinter(ctx, os.Stdout)

	rootCmd.SetContext(ctx)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "Run 'breath -h' for help")
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show external commands being executed")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress all log output")
	rootCmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	// Version flag
	rootCmd.Version = versionString()
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	// Add command groups for organized help output
	rootCmd.AddGroup(
		&cobra.Group{ID: GroupCore, Title: "Core Commands:"},
		&cobra.Group{ID: GroupVcs, Title: "Version Control Commands:"},
		&cobra.Group{ID: GroupProject, Title: "Project Commands:"},
	)

	// Core commands
	rootCmd.AddCommand(newHealthCmd())
	rootCmd.AddCommand(newCommitCmd())

	// VCS passthrough commands
	rootCmd.AddCommand(newStatusCmd())
	rootCmd.AddCommand(newDiffCmd())
	rootCmd.AddCommand(newLogCmd())
	rootCmd.AddCommand(newPushCmd())
	rootCmd.AddCommand(newPullCmd())

	// Project commands
	rootCmd.AddCommand(newIssuesCmd())
	rootCmd.AddCommand(newDocCmd())
	rootCmd.AddCommand(newInitCmd())
}
