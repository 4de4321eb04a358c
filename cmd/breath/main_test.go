package main

import (
	"strings"
	"testing"
)

func TestVersionString(t *testing.T) {
	got := versionString()
	if !strings.HasPrefix(got, "breath dev (none, unknown, go") {
		t.Errorf("versionString() = %q", got)
	}
}

func TestVersionStringShortensCommit(t *testing.T) {
	saved := gitCommit
	defer func() { gitCommit = saved }()

	gitCommit = "0123456789abcdef"
	if got := versionString(); !strings.Contains(got, "(0123456,") {
		t.Errorf("versionString() = %q, want the commit shortened to 7 chars", got)
	}
}
