// Package logsink persists captured hook output under the .breathes
// directory of the tree being checked.
//
// Layout: <root>/.breathes/<Language>/<stream>/<hook>.log. Every write
// truncates: only the most recent run is ever kept, so stale diagnostics
// can't be mistaken for current ones.
package logsink

import (
	"os"
	"path/filepath"

	"github.com/hackia/breath/internal/stack"
)

// Stream identifies which output stream a log file holds.
type Stream string

const (
	Stdout Stream = "stdout"
	Stderr Stream = "stderr"
)

// DirName is the directory created at the root of the checked tree.
const DirName = ".breathes"

// Sink writes hook logs below a fixed root directory.
type Sink struct {
	root string
}

// New creates a sink rooted at the given working tree.
func New(root string) *Sink {
	return &Sink{root: root}
}

// Path returns the log path for a (language, stream, hook) triple without
// touching the filesystem. The hook name is the filename stem.
func (s *Sink) Path(lang stack.Language, stream Stream, hook string) string {
	return filepath.Join(s.root, DirName, string(lang), string(stream), hook+".log")
}

// Write persists one captured stream, creating intermediate directories on
// demand and replacing any previous content at that path.
func (s *Sink) Write(lang stack.Language, stream Stream, hook string, data []byte) (string, error) {
	path := s.Path(lang, stream, hook)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return path, err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return path, err
	}
	return path, nil
}
