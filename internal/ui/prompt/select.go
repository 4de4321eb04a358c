package prompt

import (
	"fmt"
	"os"
	"strings"

	tea "charm.land/bubbletea/v2"
	"github.com/sahilm/fuzzy"

	"github.com/hackia/breath/internal/ui/styles"
)

// SelectResult holds the result of a selection prompt.
type SelectResult struct {
	Value     string
	Index     int
	Cancelled bool
}

// optionSource implements fuzzy.Source over the option labels.
type optionSource []string

func (s optionSource) String(i int) string { return s[i] }
func (s optionSource) Len() int            { return len(s) }

// selectModel is a fuzzy-filtered single-select list. Typing narrows the
// options with fuzzy matching, up/down moves the cursor, enter picks.
type selectModel struct {
	prompt    string
	options   optionSource
	filter    string
	filtered  []fuzzy.Match
	cursor    int
	maxShown  int
	selected  int
	done      bool
	cancelled bool
}

func (m *selectModel) applyFilter() {
	if m.filter == "" {
		m.filtered = make([]fuzzy.Match, len(m.options))
		for i, opt := range m.options {
			m.filtered[i] = fuzzy.Match{Str: opt, Index: i}
		}
	} else {
		m.filtered = fuzzy.FindFrom(m.filter, m.options)
	}
	if m.cursor >= len(m.filtered) {
		m.cursor = 0
	}
}

func (m selectModel) Init() tea.Cmd {
	return nil
}

func (m selectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		switch msg.String() {
		case "enter":
			if len(m.filtered) > 0 {
				m.selected = m.filtered[m.cursor].Index
				m.done = true
				return m, tea.Quit
			}
		case "ctrl+c", "esc":
			m.cancelled = true
			m.done = true
			return m, tea.Quit
		case "up", "ctrl+p":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "ctrl+n":
			if m.cursor < len(m.filtered)-1 {
				m.cursor++
			}
		case "backspace":
			if len(m.filter) > 0 {
				m.filter = m.filter[:len(m.filter)-1]
				m.applyFilter()
			}
		default:
			if text := msg.Text; text != "" {
				m.filter += text
				m.applyFilter()
			}
		}
	}
	return m, nil
}

func (m selectModel) View() tea.View {
	if m.done {
		return tea.NewView("")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", styles.Bold.Render(m.prompt), styles.MutedStyle.Render(m.filter+"▎"))

	start := 0
	if m.cursor >= m.maxShown {
		start = m.cursor - m.maxShown + 1
	}
	end := min(start+m.maxShown, len(m.filtered))

	for i := start; i < end; i++ {
		label := m.filtered[i].Str
		if i == m.cursor {
			fmt.Fprintf(&b, "%s %s\n", styles.AccentStyle.Render(">"), styles.AccentStyle.Render(label))
		} else {
			fmt.Fprintf(&b, "  %s\n", styles.NormalStyle.Render(label))
		}
	}
	if len(m.filtered) == 0 {
		b.WriteString(styles.MutedStyle.Render("  no match"))
		b.WriteString("\n")
	}
	b.WriteString(styles.MutedStyle.Render("type to filter · ↑/↓ move · enter select · esc cancel"))

	return tea.NewView(b.String())
}

// Select shows a fuzzy-filterable list and returns the chosen option.
func Select(prompt string, options []string) (SelectResult, error) {
	if len(options) == 0 {
		return SelectResult{Cancelled: true}, nil
	}

	model := selectModel{
		prompt:   prompt,
		options:  options,
		maxShown: 12,
		selected: -1,
	}
	model.applyFilter()

	p := tea.NewProgram(model, tea.WithOutput(os.Stderr))
	finalModel, err := p.Run()
	if err != nil {
		return SelectResult{}, err
	}
	m := finalModel.(selectModel)
	if m.cancelled || m.selected < 0 {
		return SelectResult{Cancelled: true}, nil
	}
	return SelectResult{
		Value: options[m.selected],
		Index: m.selected,
	}, nil
}
