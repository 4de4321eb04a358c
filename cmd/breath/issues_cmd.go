package main

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/hackia/breath/internal/config"
	"github.com/hackia/breath/internal/forge"
	"github.com/hackia/breath/internal/output"
	"github.com/hackia/breath/internal/ui/static"
)

func newIssuesCmd() *cobra.Command {
	var all bool

	c := &cobra.Command{
		Use:     "issues",
		Short:   "List the open issues of the configured repository",
		GroupID: GroupProject,
		Args:    cobra.NoArgs,
		Long: `List open GitHub issues for the repository configured in
breathes.toml. By default only issues created by "me" are shown.

Requires the gh CLI to be installed and authenticated.

Examples:
  breath issues          # your open issues
  breath issues --all    # everyone's open issues`,
		RunE: func(c *cobra.Command, args []string) error {
			ctx := c.Context()
			out := output.FromContext(ctx)

			repo, err := config.LoadRepo(workDir)
			if err != nil {
				return err
			}

			author := repo.Me
			if all {
				author = ""
			}
			issues, err := forge.Issues(ctx, repo.Repository, author)
			if err != nil {
				return err
			}
			if len(issues) == 0 {
				out.Println("No open issues")
				return nil
			}

			headers := []string{"#", "TITLE", "AUTHOR", "URL"}
			rows := make([][]string, 0, len(issues))
			for _, issue := range issues {
				rows = append(rows, []string{
					strconv.Itoa(issue.Number),
					issue.Title,
					issue.Author.Login,
					issue.URL,
				})
			}
			out.Print(static.RenderTable(headers, rows))
			return nil
		},
	}

	c.Flags().BoolVar(&all, "all", false, "Show issues from all authors")
	return c
}
