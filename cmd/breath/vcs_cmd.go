package main

import (
	"github.com/spf13/cobra"

	"github.com/hackia/breath/internal/vcs"
)

// passthrough builds a VCS command that detects the repository and runs
// one adapter operation with inherited stdio.
func passthrough(use, short string, op func(c *cobra.Command, a vcs.Adapter) error) *cobra.Command {
	return &cobra.Command{
		Use:     use,
		Short:   short,
		GroupID: GroupVcs,
		Args:    cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			adapter, err := vcs.Detect(workDir)
			if err != nil {
				return err
			}
			return op(c, adapter)
		},
	}
}

func newStatusCmd() *cobra.Command {
	return passthrough("status", "Show the working tree status", func(c *cobra.Command, a vcs.Adapter) error {
		return a.Status(c.Context())
	})
}

func newDiffCmd() *cobra.Command {
	return passthrough("diff", "Show uncommitted changes with stats", func(c *cobra.Command, a vcs.Adapter) error {
		return a.Diff(c.Context())
	})
}

func newLogCmd() *cobra.Command {
	return passthrough("log", "Show the commit history graph", func(c *cobra.Command, a vcs.Adapter) error {
		return a.Log(c.Context())
	})
}

func newPushCmd() *cobra.Command {
	return passthrough("push", "Push branches and tags to the remotes", func(c *cobra.Command, a vcs.Adapter) error {
		return a.Push(c.Context())
	})
}

func newPullCmd() *cobra.Command {
	return passthrough("pull", "Pull and update from the remote", func(c *cobra.Command, a vcs.Adapter) error {
		return a.Pull(c.Context())
	})
}
