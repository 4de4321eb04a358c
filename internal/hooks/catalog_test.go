package hooks

import (
	"testing"

	"github.com/hackia/breath/internal/stack"
)

func TestForKnownLanguages(t *testing.T) {
	for _, p := range stack.Profiles() {
		if len(For(p.Language)) == 0 {
			t.Errorf("For(%s) is empty: every detectable profile needs hooks", p.Language)
		}
	}
}

func TestForUnknownLanguage(t *testing.T) {
	if got := For(stack.Language("Cobol")); len(got) != 0 {
		t.Errorf("For(unknown) = %d hooks, want 0", len(got))
	}
}

func TestHookNamesUniquePerLanguage(t *testing.T) {
	for _, p := range stack.Profiles() {
		seen := make(map[string]bool)
		for _, h := range For(p.Language) {
			if h.Name == "" {
				t.Errorf("%s has a hook without a name", p.Language)
			}
			if seen[h.Name] {
				t.Errorf("%s has duplicate hook name %q: log files would collide", p.Language, h.Name)
			}
			seen[h.Name] = true
		}
	}
}

func TestGoHookOrder(t *testing.T) {
	want := []string{"gofmt", "test", "lint", "deps", "build"}
	got := For(stack.Go)
	if len(got) != len(want) {
		t.Fatalf("For(Go) has %d hooks, want %d", len(got), len(want))
	}
	for i, h := range got {
		if h.Name != want[i] {
			t.Errorf("For(Go)[%d] = %q, want %q", i, h.Name, want[i])
		}
	}
}

func TestForReturnsACopy(t *testing.T) {
	first := For(stack.Rust)
	first[0].Name = "mutated"
	if again := For(stack.Rust); again[0].Name == "mutated" {
		t.Error("For() exposes the internal catalog: callers can corrupt it")
	}
}
