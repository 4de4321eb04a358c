package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadRepo(t *testing.T) {
	root := t.TempDir()
	content := "repository = \"hackia/breath\"\nme = \"hackia\"\n"
	if err := os.WriteFile(filepath.Join(root, RepoFileName), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	repo, err := LoadRepo(root)
	if err != nil {
		t.Fatalf("LoadRepo() error = %v", err)
	}
	if repo.Repository != "hackia/breath" {
		t.Errorf("Repository = %q", repo.Repository)
	}
	if repo.Me != "hackia" {
		t.Errorf("Me = %q", repo.Me)
	}
}

func TestLoadRepoMissing(t *testing.T) {
	if _, err := LoadRepo(t.TempDir()); !errors.Is(err, ErrNoRepoConfig) {
		t.Errorf("LoadRepo() error = %v, want ErrNoRepoConfig", err)
	}
}

func TestLoadRepoInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"bad toml", "repository = unquoted\n"},
		{"missing repository", "me = \"hackia\"\n"},
		{"no owner", "repository = \"/breath\"\n"},
		{"no name", "repository = \"hackia/\"\n"},
		{"not a coordinate", "repository = \"breath\"\n"},
		{"too many segments", "repository = \"a/b/c\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := t.TempDir()
			if err := os.WriteFile(filepath.Join(root, RepoFileName), []byte(tt.content), 0644); err != nil {
				t.Fatal(err)
			}
			if _, err := LoadRepo(root); err == nil {
				t.Error("LoadRepo() succeeded, want error")
			}
		})
	}
}
