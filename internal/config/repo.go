package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// RepoFileName holds the project coordinates for the issue integration.
const RepoFileName = "breathes.toml"

// ErrNoRepoConfig is returned by LoadRepo when breathes.toml is absent.
var ErrNoRepoConfig = errors.New("no " + RepoFileName + " found")

// Repo is the parsed breathes.toml.
type Repo struct {
	// Repository is the GitHub coordinate in "owner/name" form.
	Repository string `toml:"repository"`
	// Me is the username issues are attributed to.
	Me string `toml:"me"`
}

// LoadRepo reads breathes.toml from the given repo root.
// Returns ErrNoRepoConfig if the file doesn't exist.
func LoadRepo(root string) (Repo, error) {
	path := filepath.Join(root, RepoFileName)

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Repo{}, ErrNoRepoConfig
		}
		return Repo{}, fmt.Errorf("failed to read %s: %w", RepoFileName, err)
	}

	var repo Repo
	if err := toml.Unmarshal(data, &repo); err != nil {
		return Repo{}, fmt.Errorf("failed to parse %s: %w", RepoFileName, err)
	}

	if repo.Repository == "" {
		return Repo{}, fmt.Errorf("missing repository in %s", RepoFileName)
	}
	owner, name, ok := strings.Cut(repo.Repository, "/")
	if !ok || owner == "" || name == "" || strings.Contains(name, "/") {
		return Repo{}, fmt.Errorf("invalid repository %q in %s: must be \"owner/name\"", repo.Repository, RepoFileName)
	}

	return repo, nil
}
