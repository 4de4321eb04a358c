// Package forge talks to GitHub through the gh CLI. Issue listing is
// the only surface breath needs; authentication and transport stay
// gh's problem.
package forge

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/hackia/breath/internal/cmd"
)

// Issue is one GitHub issue as reported by gh.
type Issue struct {
	Number int    `json:"number"`
	Title  string `json:"title"`
	State  string `json:"state"` // OPEN, CLOSED
	URL    string `json:"url"`
	Author Author `json:"author"`
}

// Author is the issue author.
type Author struct {
	Login string `json:"login"`
}

// Label renders the issue for selectors; the part before the "~" is
// the number the commit message's Fixes lines are built from.
func (i Issue) Label() string {
	return strconv.Itoa(i.Number) + " ~ " + i.Title
}

// Issues lists open issues of the repository ("owner/name") via the gh
// CLI. When author is non-empty only that author's issues are
// returned. A missing gh binary surfaces as *cmd.MissingError.
func Issues(ctx context.Context, repository, author string) ([]Issue, error) {
	args := []string{"issue", "list",
		"-R", repository,
		"--state", "open",
		"--json", "number,title,state,url,author",
		"--limit", "100"}
	if author != "" {
		args = append(args, "--author", author)
	}

	out, err := cmd.OutputContext(ctx, "", "gh", args...)
	if err != nil {
		return nil, fmt.Errorf("gh command failed: %w", err)
	}
	return parseIssues(out)
}

func parseIssues(out []byte) ([]Issue, error) {
	var issues []Issue
	if err := json.Unmarshal(out, &issues); err != nil {
		return nil, fmt.Errorf("failed to parse gh output: %w", err)
	}
	return issues, nil
}
