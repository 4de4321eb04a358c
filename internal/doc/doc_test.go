package doc

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hackia/breath/internal/output"
)

func TestIsSafe(t *testing.T) {
	tests := []struct {
		command string
		want    bool
	}{
		{"cargo doc --no-deps", true},
		{"doxygen Doxyfile", true},
		{"mkdir docs", true},
		{"touch docs/.nojekyll", true},
		{"go doc ./...", true},
		{"npm run docs", true},
		{"cargo doc; rm -rf /", false},
		{"cargo doc && touch x", false},
		{"cargo doc | tee log", false},
		{"echo `whoami`", false},
		{"cargo doc $HOME", false},
		{"cp ../secrets docs/", false},
		{"/usr/bin/cargo doc", false},
		{"  /bin/sh", false},
		{"curl https://example.com", false},
		{"", false},
		{"   ", false},
	}

	for _, tt := range tests {
		if got := IsSafe(tt.command); got != tt.want {
			t.Errorf("IsSafe(%q) = %v, want %v", tt.command, got, tt.want)
		}
	}
}

type silentProgress struct{}

func (silentProgress) Start() {}
func (silentProgress) Stop()  {}

func testGenerator(root string) *Generator {
	return &Generator{
		Root:        root,
		NewProgress: func(string) Progress { return silentProgress{} },
	}
}

func quietContext() context.Context {
	return output.WithPrinter(context.Background(), &bytes.Buffer{})
}

func TestRunExecutesInOrder(t *testing.T) {
	root := t.TempDir()
	g := testGenerator(root)

	err := g.Run(quietContext(), "documentation", []string{
		"mkdir out",
		"touch out/index.html",
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if _, err := os.Stat(filepath.Join(root, "out", "index.html")); err != nil {
		t.Errorf("second command did not run after the first: %v", err)
	}
}

func TestRunRefusesUnsafeCommand(t *testing.T) {
	root := t.TempDir()
	g := testGenerator(root)

	err := g.Run(quietContext(), "documentation", []string{"touch ok", "rm -rf / ; true"})
	if !errors.Is(err, ErrUnsafe) {
		t.Fatalf("Run() error = %v, want ErrUnsafe", err)
	}
}

func TestRunStopsAtFirstFailure(t *testing.T) {
	root := t.TempDir()
	g := testGenerator(root)

	err := g.Run(quietContext(), "man pages", []string{
		"rm does-not-exist",
		"touch never-created",
	})
	if err == nil {
		t.Fatal("Run() succeeded, want failure")
	}
	if !strings.Contains(err.Error(), "man pages step 1/2") {
		t.Errorf("error = %v, want step reference", err)
	}
	if _, statErr := os.Stat(filepath.Join(root, "never-created")); statErr == nil {
		t.Error("command after the failure still ran")
	}
}

func TestRunEmptyListIsTrivialSuccess(t *testing.T) {
	if err := testGenerator(t.TempDir()).Run(quietContext(), "documentation", nil); err != nil {
		t.Errorf("Run() error = %v", err)
	}
}
