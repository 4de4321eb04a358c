package commit

import (
	"fmt"
	"sort"
	"strings"
)

// Type describes one commit type offered by the selector.
type Type struct {
	Name        string
	Description string
	Category    string
	Mnemonic    string
}

// The closed commit type table. breath.yml can narrow the offered
// names but never add to this table.
var types = []Type{
	{Name: "feat", Description: "A new feature", Category: "Features", Mnemonic: "sparkles"},
	{Name: "fix", Description: "A bug fix", Category: "Bug Fixes", Mnemonic: "bug"},
	{Name: "docs", Description: "Documentation only changes", Category: "Documentation", Mnemonic: "books"},
	{Name: "style", Description: "Changes that do not affect the meaning of the code", Category: "Styles", Mnemonic: "gem"},
	{Name: "refactor", Description: "A code change that neither fixes a bug nor adds a feature", Category: "Code Refactoring", Mnemonic: "hammer"},
	{Name: "perf", Description: "A code change that improves performance", Category: "Performance Improvements", Mnemonic: "rocket"},
	{Name: "test", Description: "Adding missing tests or correcting existing tests", Category: "Tests", Mnemonic: "microscope"},
	{Name: "build", Description: "Changes that affect the build system or external dependencies", Category: "Builds", Mnemonic: "package"},
	{Name: "ci", Description: "Changes to CI configuration files and scripts", Category: "Continuous Integrations", Mnemonic: "robot"},
	{Name: "chore", Description: "Other changes that don't modify src or test files", Category: "Chores", Mnemonic: "broom"},
	{Name: "revert", Description: "Reverts a previous commit", Category: "Reverts", Mnemonic: "rewind"},
	{Name: "release", Description: "Create a release commit", Category: "Releases", Mnemonic: "tada"},
	{Name: "bump", Description: "Increase the version of something", Category: "Bumps", Mnemonic: "arrow-up"},
}

// Types returns a copy of the commit type table.
func Types() []Type {
	out := make([]Type, len(types))
	copy(out, types)
	return out
}

// Options returns the selector labels, one per commit type, sorted
// alphabetically. Each label joins the type's fields with " ~ " and
// strips commas so the label stays splittable.
func Options(names []string) []string {
	offered := make(map[string]bool, len(names))
	for _, n := range names {
		offered[n] = true
	}

	var out []string
	for _, t := range types {
		if len(names) > 0 && !offered[t.Name] {
			continue
		}
		out = append(out, fmt.Sprintf("%s ~ %s ~ %s ~ %s",
			clean(t.Name), clean(t.Description), clean(t.Category), clean(t.Mnemonic)))
	}
	sort.Strings(out)
	return out
}

func clean(s string) string {
	return strings.ReplaceAll(s, ",", "")
}

// TypeName extracts the type name from a selector label.
func TypeName(option string) string {
	name, _, _ := strings.Cut(option, "~")
	return strings.TrimSpace(name)
}

// Roles lists who a change can be attributed to, sorted for the
// multi-select.
func Roles() []string {
	roles := []string{
		"Team", "Manager", "Developer", "Tester", "Packager",
		"Product", "Engineering", "Design", "Marketing", "Customer",
	}
	sort.Strings(roles)
	return roles
}
