// Package vcs abstracts the two supported version-control tools, git and
// Mercurial, behind one adapter interface. The backend is selected once
// per invocation by probing the working tree for its marker directory;
// every operation then shells out to the corresponding tool.
package vcs

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Kind identifies a supported version-control backend.
type Kind string

const (
	Git       Kind = "git"
	Mercurial Kind = "hg"
)

// ErrNotFound means no version-control marker directory exists at the
// root: no adapter can be chosen and no operation may proceed.
var ErrNotFound = errors.New("no version control found: expected a .git or .hg directory")

// ErrAmbiguous means both marker directories coexist. Rather than
// silently preferring one backend, the user has to resolve the conflict.
var ErrAmbiguous = errors.New("both .git and .hg directories present: remove one before using breath")

// OperationError wraps a failed invocation of the underlying tool,
// carrying its captured output for diagnostics.
type OperationError struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *OperationError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Kind, e.Op, e.Err)
}

func (e *OperationError) Unwrap() error { return e.Err }

// Adapter is the uniform capability set over both backends. Status, Diff
// and Log stream to the user's terminal; the remaining operations report
// failures as [*OperationError].
type Adapter interface {
	Kind() Kind
	Status(ctx context.Context) error
	Diff(ctx context.Context) error
	Log(ctx context.Context) error
	Add(ctx context.Context, paths []string) error
	Commit(ctx context.Context, message string) error
	Push(ctx context.Context) error
	Pull(ctx context.Context) error

	// ChangedFiles lists paths with uncommitted changes (modified, added,
	// removed, untracked), used by the commit flow's staging selector.
	ChangedFiles(ctx context.Context) ([]string, error)
}

// Detect probes root for version-control marker directories and returns
// the matching adapter. Both markers present is an explicit error, not a
// silent preference.
func Detect(root string) (Adapter, error) {
	git := isDir(filepath.Join(root, ".git"))
	hg := isDir(filepath.Join(root, ".hg"))

	switch {
	case git && hg:
		return nil, ErrAmbiguous
	case git:
		return &gitAdapter{root: root}, nil
	case hg:
		return &hgAdapter{root: root}, nil
	default:
		return nil, ErrNotFound
	}
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
