package vcs

import (
	"context"
	"strings"

	"github.com/hackia/breath/internal/cmd"
)

type hgAdapter struct {
	root string
}

func (h *hgAdapter) Kind() Kind { return Mercurial }

func (h *hgAdapter) run(ctx context.Context, op string, args ...string) error {
	if err := cmd.Interactive(ctx, h.root, "hg", args...); err != nil {
		return &OperationError{Kind: Mercurial, Op: op, Err: err}
	}
	return nil
}

func (h *hgAdapter) Status(ctx context.Context) error {
	return h.run(ctx, "status", "status")
}

func (h *hgAdapter) Diff(ctx context.Context) error {
	return h.run(ctx, "diff", "diff", "-p", "--stat")
}

func (h *hgAdapter) Log(ctx context.Context) error {
	return h.run(ctx, "log", "log", "--graph")
}

func (h *hgAdapter) Add(ctx context.Context, paths []string) error {
	if len(paths) == 0 {
		return nil
	}
	if err := cmd.RunContext(ctx, h.root, "hg", append([]string{"add"}, paths...)...); err != nil {
		return &OperationError{Kind: Mercurial, Op: "add", Err: err}
	}
	return nil
}

func (h *hgAdapter) Commit(ctx context.Context, message string) error {
	if err := cmd.RunContext(ctx, h.root, "hg", "commit", "-m", message); err != nil {
		return &OperationError{Kind: Mercurial, Op: "commit", Err: err}
	}
	return nil
}

func (h *hgAdapter) Push(ctx context.Context) error {
	return h.run(ctx, "push", "push")
}

func (h *hgAdapter) Pull(ctx context.Context) error {
	return h.run(ctx, "pull", "pull", "-u")
}

func (h *hgAdapter) ChangedFiles(ctx context.Context) ([]string, error) {
	out, err := cmd.OutputContext(ctx, h.root, "hg", "status", "-mardu")
	if err != nil {
		return nil, &OperationError{Kind: Mercurial, Op: "status", Err: err}
	}
	return parseHgStatus(string(out)), nil
}

// parseHgStatus extracts paths from `hg status` output, where each line
// is a single status letter, a space, then the path.
func parseHgStatus(out string) []string {
	var files []string
	for _, line := range strings.Split(out, "\n") {
		if len(line) < 3 {
			continue
		}
		if path := strings.TrimSpace(line[2:]); path != "" {
			files = append(files, path)
		}
	}
	return files
}
