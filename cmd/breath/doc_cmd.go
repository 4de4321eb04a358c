package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/hackia/breath/internal/config"
	"github.com/hackia/breath/internal/doc"
)

func newDocCmd() *cobra.Command {
	var man bool

	c := &cobra.Command{
		Use:     "doc",
		Short:   "Run the configured documentation commands",
		GroupID: GroupProject,
		Args:    cobra.NoArgs,
		Long: `Run the documentation commands listed under documentation.doc in
breath.yml, in order, stopping at the first failure. With --man the
documentation.man list runs instead.

Commands must pass a safety check: allow-listed binaries only, no shell
metacharacters, no absolute or parent paths.

Examples:
  breath doc          # documentation.doc commands
  breath doc --man    # documentation.man commands`,
		RunE: func(c *cobra.Command, args []string) error {
			cfg, err := config.Load(workDir)
			if err != nil {
				return err
			}

			label, commands := "documentation", cfg.Documentation.Doc
			if man {
				label, commands = "man pages", cfg.Documentation.Man
			}
			if len(commands) == 0 {
				return errors.New("no " + label + " commands configured in " + config.FileName)
			}

			return doc.New(workDir).Run(c.Context(), label, commands)
		},
	}

	c.Flags().BoolVar(&man, "man", false, "Run the man page commands instead")
	return c
}
