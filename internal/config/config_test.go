package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeConfig(t *testing.T, root, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(root, FileName), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(cfg.Breathes.Types) != len(DefaultTypes) {
		t.Errorf("default types = %d, want %d", len(cfg.Breathes.Types), len(DefaultTypes))
	}
	if cfg.Hooks.FailFast {
		t.Error("fail_fast should default to false")
	}
	if cfg.Hooks.Timeout != 0 {
		t.Errorf("timeout should default to 0, got %v", cfg.Hooks.Timeout)
	}
}

func TestLoadFullConfig(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, `
breathes:
  scopes:
    - core
    - cli
  types:
    - feat
    - fix
documentation:
  doc:
    - cargo doc --no-deps
  man:
    - help2man target/release/breath
hooks:
  fail_fast: true
  timeout: 90s
`)

	cfg, err := Load(root)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got := cfg.Breathes.Scopes; len(got) != 2 || got[0] != "core" || got[1] != "cli" {
		t.Errorf("scopes = %v", got)
	}
	if got := cfg.Breathes.Types; len(got) != 2 || got[0] != "feat" {
		t.Errorf("types = %v", got)
	}
	if len(cfg.Documentation.Doc) != 1 || len(cfg.Documentation.Man) != 1 {
		t.Errorf("documentation = %+v", cfg.Documentation)
	}
	if !cfg.Hooks.FailFast {
		t.Error("fail_fast not parsed")
	}
	if cfg.Hooks.Timeout != 90*time.Second {
		t.Errorf("timeout = %v, want 90s", cfg.Hooks.Timeout)
	}
}

func TestLoadEmptyTypesFallBackToDefaults(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, "breathes:\n  scopes: [core]\n")

	cfg, err := Load(root)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(cfg.Breathes.Types) != len(DefaultTypes) {
		t.Errorf("types = %v, want defaults", cfg.Breathes.Types)
	}
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"bad yaml", "breathes: [not a map\n", "failed to parse"},
		{"bad timeout", "hooks:\n  timeout: fast\n", "invalid hooks.timeout"},
		{"negative timeout", "hooks:\n  timeout: -5s\n", "must not be negative"},
		{"empty scope", "breathes:\n  scopes: [\"\"]\n", "empty scope"},
		{"empty type", "breathes:\n  types: [\"\"]\n", "empty type"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := t.TempDir()
			writeConfig(t, root, tt.content)

			_, err := Load(root)
			if err == nil {
				t.Fatal("Load() succeeded, want error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %v, want substring %q", err, tt.wantErr)
			}
		})
	}
}

func TestInit(t *testing.T) {
	root := t.TempDir()

	path, err := Init(root, false)
	if err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	if path != filepath.Join(root, FileName) {
		t.Errorf("Init() path = %q", path)
	}

	// The written template must load cleanly.
	cfg, err := Load(root)
	if err != nil {
		t.Fatalf("Load() after Init error = %v", err)
	}
	if len(cfg.Breathes.Types) != len(DefaultTypes) {
		t.Errorf("template types = %v", cfg.Breathes.Types)
	}

	if _, err := Init(root, false); err == nil {
		t.Error("Init() without force overwrote an existing file")
	}
	if _, err := Init(root, true); err != nil {
		t.Errorf("Init() with force error = %v", err)
	}
}
