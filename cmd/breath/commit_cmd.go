package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hackia/breath/internal/commit"
	"github.com/hackia/breath/internal/config"
	"github.com/hackia/breath/internal/forge"
	"github.com/hackia/breath/internal/health"
	"github.com/hackia/breath/internal/log"
	"github.com/hackia/breath/internal/output"
	"github.com/hackia/breath/internal/ui/prompt"
	"github.com/hackia/breath/internal/vcs"
)

var errAborted = errors.New("commit aborted")

func newCommitCmd() *cobra.Command {
	var noVerify bool

	c := &cobra.Command{
		Use:     "commit",
		Short:   "Commit changes through the guided flow",
		GroupID: GroupCore,
		Args:    cobra.NoArgs,
		Long: `Walk through a structured commit: review status and diff, stage the
files you pick, then answer the type, scope, summary and rationale
questions. The answers render into a single structured commit message.

The health hooks run first; a failing hook aborts the commit unless
--no-verify is given.

Works on git and Mercurial repositories.`,
		RunE: func(c *cobra.Command, args []string) error {
			ctx := c.Context()

			adapter, err := vcs.Detect(workDir)
			if err != nil {
				return err
			}

			cfg, err := config.Load(workDir)
			if err != nil {
				return err
			}

			if !noVerify {
				if err := verifyTree(ctx, cfg); err != nil {
					return err
				}
			}

			return runCommitFlow(ctx, adapter, cfg)
		},
	}

	c.Flags().BoolVar(&noVerify, "no-verify", false, "Skip the health hooks before committing")
	return c
}

// verifyTree runs the health hooks and refuses the commit on failure.
func verifyTree(ctx context.Context, cfg config.Config) error {
	runner := health.NewRunner(workDir)
	runner.FailFast = cfg.Hooks.FailFast
	runner.Timeout = cfg.Hooks.Timeout

	report, err := runner.Run(ctx)
	if err != nil {
		return err
	}
	if !report.Success() {
		return fmt.Errorf("health checks failed, fix them or use --no-verify")
	}
	return nil
}

func runCommitFlow(ctx context.Context, adapter vcs.Adapter, cfg config.Config) error {
	out := output.FromContext(ctx)

	// Review what is about to be staged.
	if err := adapter.Status(ctx); err != nil {
		return err
	}
	if err := adapter.Diff(ctx); err != nil {
		return err
	}

	confirmed, err := prompt.Confirm("Add changes to the repository?", false)
	if err != nil {
		return err
	}
	if !confirmed.Confirmed {
		return errAborted
	}

	if err := stageFiles(ctx, adapter); err != nil {
		return err
	}

	msg, err := buildMessage(ctx, cfg)
	if err != nil {
		return err
	}

	out.Println()
	out.Println(msg.String())
	confirmed, err = prompt.Confirm("Confirm commit?", true)
	if err != nil {
		return err
	}
	if !confirmed.Confirmed {
		return errAborted
	}

	if err := adapter.Commit(ctx, msg.String()); err != nil {
		return err
	}
	log.FromContext(ctx).Printf("Committed\n")

	push, err := prompt.Confirm("Push to remotes?", false)
	if err != nil {
		return err
	}
	if push.Confirmed {
		return adapter.Push(ctx)
	}
	return nil
}

// stageFiles lets the user pick from the changed files and stages the
// selection.
func stageFiles(ctx context.Context, adapter vcs.Adapter) error {
	files, err := adapter.ChangedFiles(ctx)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return errors.New("nothing to commit, working tree clean")
	}

	selected, err := prompt.MultiSelect("Select files to stage", files)
	if err != nil {
		return err
	}
	if selected.Cancelled || len(selected.Values) == 0 {
		return errAborted
	}
	return adapter.Add(ctx, selected.Values)
}

// buildMessage walks through the commit questions in order.
func buildMessage(ctx context.Context, cfg config.Config) (*commit.Message, error) {
	msg := &commit.Message{}

	picked, err := prompt.Select("Commit types", commit.Options(cfg.Breathes.Types))
	if err != nil {
		return nil, err
	}
	if picked.Cancelled {
		return nil, errAborted
	}
	msg.Type = commit.TypeName(picked.Value)

	if msg.Scopes, err = askScopes(cfg.Breathes.Scopes); err != nil {
		return nil, err
	}

	summary, err := prompt.RequiredText("Commit summary:", "what changed, in one line")
	if err != nil {
		return nil, err
	}
	if summary.Cancelled {
		return nil, errAborted
	}
	msg.Summary = summary.Value

	sections := []struct {
		instruction string
		dst         *string
	}{
		{"Why are you making this change?", &msg.Why},
		{"Breaking changes?", &msg.BreakingChanges},
		{"What changes are you making?", &msg.What},
		{"What benefits does this change provide?", &msg.Benefits},
		{"The teams notes:", &msg.Notes},
	}
	for _, s := range sections {
		body, err := prompt.Editor(s.instruction)
		if err != nil {
			return nil, err
		}
		if body.Cancelled {
			return nil, errAborted
		}
		*s.dst = body.Value
	}

	who, err := prompt.Text("Who are you:", "", os.Getenv("USER"))
	if err != nil {
		return nil, err
	}
	if who.Cancelled || who.Value == "" {
		return nil, errAborted
	}
	msg.Who = who.Value

	roles, err := prompt.MultiSelect("Select roles", commit.Roles())
	if err != nil {
		return nil, err
	}
	if roles.Cancelled || len(roles.Values) == 0 {
		return nil, errAborted
	}
	msg.Roles = roles.Values

	if msg.Resolves, err = askResolves(ctx); err != nil {
		return nil, err
	}

	return msg, nil
}

// askScopes multi-selects from the configured scopes, falling back to
// free text when breath.yml defines none.
func askScopes(configured []string) ([]string, error) {
	if len(configured) == 0 {
		res, err := prompt.Text("Commit scopes (comma separated):", "core, cli", "")
		if err != nil {
			return nil, err
		}
		if res.Cancelled {
			return nil, errAborted
		}
		var scopes []string
		for _, s := range strings.Split(res.Value, ",") {
			if s = strings.TrimSpace(s); s != "" {
				scopes = append(scopes, s)
			}
		}
		return scopes, nil
	}

	res, err := prompt.MultiSelect("Select scopes", configured)
	if err != nil {
		return nil, err
	}
	if res.Cancelled || len(res.Values) == 0 {
		return nil, errAborted
	}
	return res.Values, nil
}

// askResolves offers the open issues when breathes.toml is configured,
// free-form issue numbers otherwise. An empty answer means the commit
// resolves nothing.
func askResolves(ctx context.Context) ([]string, error) {
	repo, err := config.LoadRepo(workDir)
	if err == nil {
		issues, issErr := forge.Issues(ctx, repo.Repository, repo.Me)
		if issErr != nil {
			log.FromContext(ctx).Warnf("could not list issues: %v", issErr)
		} else if len(issues) > 0 {
			labels := make([]string, len(issues))
			for i, issue := range issues {
				labels[i] = issue.Label()
			}
			res, selErr := prompt.MultiSelect("Resolved issues", labels)
			if selErr != nil {
				return nil, selErr
			}
			if res.Cancelled {
				return nil, errAborted
			}
			return res.Values, nil
		}
	} else if !errors.Is(err, config.ErrNoRepoConfig) {
		return nil, err
	}

	res, err := prompt.Text("Issue numbers (comma separated):", "42, 7", "")
	if err != nil {
		return nil, err
	}
	if res.Cancelled {
		return nil, errAborted
	}
	var resolves []string
	for _, n := range strings.Split(res.Value, ",") {
		if n = strings.TrimSpace(n); n != "" {
			resolves = append(resolves, n)
		}
	}
	return resolves, nil
}
