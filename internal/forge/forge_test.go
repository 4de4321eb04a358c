package forge

import "testing"

func TestParseIssues(t *testing.T) {
	out := []byte(`[
  {"number": 42, "title": "health command", "state": "OPEN", "url": "https://github.com/hackia/breath/issues/42", "author": {"login": "hackia"}},
  {"number": 7, "title": "commit flow, part two", "state": "OPEN", "url": "https://github.com/hackia/breath/issues/7", "author": {"login": "someone"}}
]`)

	issues, err := parseIssues(out)
	if err != nil {
		t.Fatalf("parseIssues() error = %v", err)
	}
	if len(issues) != 2 {
		t.Fatalf("parseIssues() = %d issues, want 2", len(issues))
	}
	if issues[0].Number != 42 || issues[0].Title != "health command" {
		t.Errorf("issues[0] = %+v", issues[0])
	}
	if issues[0].Author.Login != "hackia" {
		t.Errorf("author = %q", issues[0].Author.Login)
	}
}

func TestParseIssuesEmpty(t *testing.T) {
	issues, err := parseIssues([]byte("[]"))
	if err != nil {
		t.Fatalf("parseIssues() error = %v", err)
	}
	if len(issues) != 0 {
		t.Errorf("parseIssues() = %v, want empty", issues)
	}
}

func TestParseIssuesInvalid(t *testing.T) {
	if _, err := parseIssues([]byte("not json")); err == nil {
		t.Error("parseIssues() succeeded on garbage")
	}
}

func TestIssueLabel(t *testing.T) {
	i := Issue{Number: 42, Title: "health command"}
	if got := i.Label(); got != "42 ~ health command" {
		t.Errorf("Label() = %q", got)
	}
}
