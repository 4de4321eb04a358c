package vcs

import (
	"context"
	"strings"

	"github.com/hackia/breath/internal/cmd"
)

type gitAdapter struct {
	root string
}

func (g *gitAdapter) Kind() Kind { return Git }

func (g *gitAdapter) run(ctx context.Context, op string, args ...string) error {
	if err := cmd.Interactive(ctx, g.root, "git", args...); err != nil {
		return &OperationError{Kind: Git, Op: op, Err: err}
	}
	return nil
}

func (g *gitAdapter) Status(ctx context.Context) error {
	return g.run(ctx, "status", "status")
}

func (g *gitAdapter) Diff(ctx context.Context) error {
	return g.run(ctx, "diff", "diff", "-p", "--stat")
}

func (g *gitAdapter) Log(ctx context.Context) error {
	return g.run(ctx, "log", "log", "--oneline", "--graph", "--decorate")
}

func (g *gitAdapter) Add(ctx context.Context, paths []string) error {
	if len(paths) == 0 {
		return nil
	}
	if err := cmd.RunContext(ctx, g.root, "git", append([]string{"add", "--"}, paths...)...); err != nil {
		return &OperationError{Kind: Git, Op: "add", Err: err}
	}
	return nil
}

func (g *gitAdapter) Commit(ctx context.Context, message string) error {
	if err := cmd.RunContext(ctx, g.root, "git", "commit", "-m", message); err != nil {
		return &OperationError{Kind: Git, Op: "commit", Err: err}
	}
	return nil
}

// Push publishes all branches, then all tags, matching what a release
// oriented workflow expects from a single push action.
func (g *gitAdapter) Push(ctx context.Context) error {
	if err := g.run(ctx, "push", "push", "--all"); err != nil {
		return err
	}
	return g.run(ctx, "push tags", "push", "--tags")
}

func (g *gitAdapter) Pull(ctx context.Context) error {
	return g.run(ctx, "pull", "pull")
}

func (g *gitAdapter) ChangedFiles(ctx context.Context) ([]string, error) {
	out, err := cmd.OutputContext(ctx, g.root, "git", "status", "--porcelain")
	if err != nil {
		return nil, &OperationError{Kind: Git, Op: "status", Err: err}
	}
	return parsePorcelain(string(out)), nil
}

// parsePorcelain extracts paths from `git status --porcelain` output.
// Renames report "old -> new"; only the new path is of interest.
func parsePorcelain(out string) []string {
	var files []string
	for _, line := range strings.Split(out, "\n") {
		if len(line) < 4 {
			continue
		}
		path := strings.TrimSpace(line[3:])
		if i := strings.Index(path, " -> "); i != -1 {
			path = path[i+4:]
		}
		if path != "" {
			files = append(files, path)
		}
	}
	return files
}
