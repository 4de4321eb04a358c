package prompt

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// EditorResult holds the text entered through the external editor.
type EditorResult struct {
	Value     string
	Cancelled bool
}

// editorCommand returns the user's editor, preferring $VISUAL then
// $EDITOR, falling back to vi.
func editorCommand() string {
	if v := os.Getenv("VISUAL"); v != "" {
		return v
	}
	if e := os.Getenv("EDITOR"); e != "" {
		return e
	}
	return "vi"
}

// Editor opens the user's editor on a temp file seeded with a commented
// instruction line and returns what they wrote. Comment lines (leading
// '#') are stripped, the same way git treats commit message templates.
func Editor(instruction string) (EditorResult, error) {
	f, err := os.CreateTemp("", "breath-*.md")
	if err != nil {
		return EditorResult{}, fmt.Errorf("create temp file: %w", err)
	}
	path := f.Name()
	defer os.Remove(path)

	seed := "\n# " + instruction + "\n# Lines starting with '#' are ignored.\n"
	if _, err := f.WriteString(seed); err != nil {
		f.Close()
		return EditorResult{}, err
	}
	if err := f.Close(); err != nil {
		return EditorResult{}, err
	}

	editor := editorCommand()
	// The editor may be configured with flags ("code --wait").
	parts := strings.Fields(editor)
	parts = append(parts, path)

	cmd := exec.Command(parts[0], parts[1:]...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return EditorResult{Cancelled: true}, fmt.Errorf("editor %q: %w", editor, err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return EditorResult{}, err
	}

	var lines []string
	for _, line := range strings.Split(string(data), "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "#") {
			continue
		}
		lines = append(lines, line)
	}
	return EditorResult{Value: strings.TrimSpace(strings.Join(lines, "\n"))}, nil
}
