package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// FileName is the project-local config file looked up at the repo root.
const FileName = "breath.yml"

// Commit holds the commit message vocabulary.
type Commit struct {
	Scopes []string `yaml:"scopes"`
	Types  []string `yaml:"types"`
}

// Documentation holds the commands run by "breath doc".
type Documentation struct {
	Doc []string `yaml:"doc"`
	Man []string `yaml:"man"`
}

// Hooks holds the health-check execution policy.
type Hooks struct {
	// FailFast stops a run at the first failing hook. Default is to
	// keep going and report everything.
	FailFast bool `yaml:"fail_fast"`
	// Timeout is a per-hook deadline (e.g. "5m"). Zero means none.
	Timeout time.Duration `yaml:"-"`
}

// Config is the parsed breath.yml.
type Config struct {
	Breathes      Commit        `yaml:"breathes"`
	Documentation Documentation `yaml:"documentation"`
	Hooks         Hooks         `yaml:"hooks"`
}

// DefaultTypes is the commit type vocabulary used when breath.yml does
// not override it.
var DefaultTypes = []string{
	"feat", "chore", "fix", "docs", "style", "refactor", "perf",
	"test", "build", "ci", "revert", "release", "bump",
}

// Default returns the configuration used when no breath.yml exists.
func Default() Config {
	return Config{
		Breathes: Commit{
			Types: append([]string(nil), DefaultTypes...),
		},
	}
}

// rawConfig is used for initial YAML parsing; the hook timeout is a
// duration string that needs validation.
type rawConfig struct {
	Breathes      Commit        `yaml:"breathes"`
	Documentation Documentation `yaml:"documentation"`
	Hooks         struct {
		FailFast bool   `yaml:"fail_fast"`
		Timeout  string `yaml:"timeout"`
	} `yaml:"hooks"`
}

// Load reads breath.yml from the given repo root.
// Returns Default() if the file doesn't exist (no error).
// Returns an error only if the file exists but is invalid.
func Load(root string) (Config, error) {
	path := filepath.Join(root, FileName)

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Default(), fmt.Errorf("failed to read %s: %w", FileName, err)
	}

	var raw rawConfig
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return Default(), fmt.Errorf("failed to parse %s: %w", FileName, err)
	}

	cfg := Config{
		Breathes:      raw.Breathes,
		Documentation: raw.Documentation,
	}
	cfg.Hooks.FailFast = raw.Hooks.FailFast

	if raw.Hooks.Timeout != "" {
		d, err := time.ParseDuration(raw.Hooks.Timeout)
		if err != nil {
			return Default(), fmt.Errorf("invalid hooks.timeout %q in %s: %w", raw.Hooks.Timeout, FileName, err)
		}
		if d < 0 {
			return Default(), fmt.Errorf("invalid hooks.timeout %q in %s: must not be negative", raw.Hooks.Timeout, FileName)
		}
		cfg.Hooks.Timeout = d
	}

	for i, s := range cfg.Breathes.Scopes {
		if s == "" {
			return Default(), fmt.Errorf("invalid breathes.scopes[%d] in %s: empty scope", i, FileName)
		}
	}
	for i, t := range cfg.Breathes.Types {
		if t == "" {
			return Default(), fmt.Errorf("invalid breathes.types[%d] in %s: empty type", i, FileName)
		}
	}

	// Use defaults for empty values
	if len(cfg.Breathes.Types) == 0 {
		cfg.Breathes.Types = append([]string(nil), DefaultTypes...)
	}

	return cfg, nil
}

const defaultConfig = `# breath configuration

# Commit message vocabulary
breathes:
  # Scopes offered by "breath commit" (your crates, packages, areas)
  scopes: []
  # Commit types; remove entries you never use
  types:
    - feat
    - chore
    - fix
    - docs
    - style
    - refactor
    - perf
    - test
    - build
    - ci
    - revert
    - release
    - bump

# Commands run by "breath doc" and "breath doc --man"
documentation:
  doc: []
  man: []

# Health-check policy for "breath health"
# hooks:
#   fail_fast: false   # stop at the first failing hook
#   timeout: 5m        # per-hook deadline (default: none)
`

// Init creates a default breath.yml at the given repo root.
// If force is true, overwrites an existing file.
// Returns the path to the created file.
func Init(root string, force bool) (string, error) {
	path := filepath.Join(root, FileName)

	if !force {
		if _, err := os.Stat(path); err == nil {
			return "", errors.New("config file already exists: " + path)
		}
	}

	if err := os.WriteFile(path, []byte(defaultConfig), 0644); err != nil {
		return "", err
	}

	return path, nil
}
