package commit

import (
	"fmt"
	"strings"
)

// Message holds the answers of the interactive commit flow.
type Message struct {
	Type            string
	Scopes          []string
	Summary         string
	Why             string
	What            string
	Who             string
	Roles           []string
	Benefits        string
	BreakingChanges string
	Notes           string
	// Resolves are issue references; each entry is either a bare
	// number or a "number ~ title" selector label.
	Resolves []string
}

// String renders the full commit message: a "type(scopes) ~ summary"
// subject line followed by tab-indented, bulleted sections.
func (m *Message) String() string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s(%s) ~ %s\n", m.Type, strings.Join(m.Scopes, ","), m.Summary)

	section(&b, "Why changes?", m.Why)
	section(&b, "Breaking Changes:", m.BreakingChanges)
	section(&b, "What changes?", m.What)

	b.WriteString("\n\tWho changes?\n\n")
	fmt.Fprintf(&b, "\t\t* @%s ~ %s\n", m.Who, strings.Join(m.Roles, " "))

	section(&b, "Benefits:", m.Benefits)
	section(&b, "Notes:", m.Notes)

	b.WriteString("\n\tResolves\n\n")
	for _, r := range m.Resolves {
		num, _, _ := strings.Cut(r, "~")
		fmt.Fprintf(&b, "\t\tFixes #%s\n", strings.TrimSpace(num))
	}

	return b.String()
}

// section writes a titled block with each non-empty line of body as a
// bullet.
func section(b *strings.Builder, title, body string) {
	fmt.Fprintf(b, "\n\t%s\n\n", title)
	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimRight(line, "\r")
		if line == "" {
			continue
		}
		fmt.Fprintf(b, "\t\t* %s\n", line)
	}
}
