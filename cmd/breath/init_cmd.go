package main

import (
	"github.com/spf13/cobra"

	"github.com/hackia/breath/internal/config"
	"github.com/hackia/breath/internal/output"
)

func newInitCmd() *cobra.Command {
	var force bool

	c := &cobra.Command{
		Use:     "init",
		Short:   "Write a default breath.yml",
		GroupID: GroupProject,
		Args:    cobra.NoArgs,
		Long: `Create a breath.yml in the current directory with the default commit
types and empty scope and documentation lists. Refuses to overwrite an
existing file unless --force is given.`,
		RunE: func(c *cobra.Command, args []string) error {
			path, err := config.Init(workDir, force)
			if err != nil {
				return err
			}
			output.FromContext(c.Context()).Printf("Created %s\n", path)
			return nil
		},
	}

	c.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing breath.yml")
	return c
}
