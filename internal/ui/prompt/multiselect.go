package prompt

import (
	"fmt"
	"os"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/hackia/breath/internal/ui/styles"
)

// MultiSelectResult holds the result of a multi-selection prompt.
type MultiSelectResult struct {
	Values    []string
	Cancelled bool
}

type multiSelectModel struct {
	prompt    string
	options   []string
	checked   map[int]bool
	cursor    int
	maxShown  int
	done      bool
	cancelled bool
}

func (m multiSelectModel) Init() tea.Cmd {
	return nil
}

func (m multiSelectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		switch msg.String() {
		case "enter":
			m.done = true
			return m, tea.Quit
		case "ctrl+c", "esc":
			m.cancelled = true
			m.done = true
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.options)-1 {
				m.cursor++
			}
		case " ", "space", "tab":
			m.checked[m.cursor] = !m.checked[m.cursor]
		case "a":
			for i := range m.options {
				m.checked[i] = true
			}
		case "n":
			for i := range m.options {
				m.checked[i] = false
			}
		}
	}
	return m, nil
}

func (m multiSelectModel) View() tea.View {
	if m.done {
		return tea.NewView("")
	}

	var b strings.Builder
	b.WriteString(styles.Bold.Render(m.prompt))
	b.WriteString("\n")

	start := 0
	if m.cursor >= m.maxShown {
		start = m.cursor - m.maxShown + 1
	}
	end := min(start+m.maxShown, len(m.options))

	for i := start; i < end; i++ {
		mark := "[ ]"
		if m.checked[i] {
			mark = "[" + styles.SuccessStyle.Render("x") + "]"
		}
		line := fmt.Sprintf("%s %s", mark, m.options[i])
		if i == m.cursor {
			fmt.Fprintf(&b, "%s %s\n", styles.AccentStyle.Render(">"), styles.AccentStyle.Render(line))
		} else {
			fmt.Fprintf(&b, "  %s\n", styles.NormalStyle.Render(line))
		}
	}
	b.WriteString(styles.MutedStyle.Render("space toggle · a all · n none · enter confirm · esc cancel"))

	return tea.NewView(b.String())
}

// MultiSelect shows a checkbox list and returns the checked options in
// their original order.
func MultiSelect(prompt string, options []string) (MultiSelectResult, error) {
	if len(options) == 0 {
		return MultiSelectResult{}, nil
	}

	model := multiSelectModel{
		prompt:   prompt,
		options:  options,
		checked:  make(map[int]bool),
		maxShown: 15,
	}
	p := tea.NewProgram(model, tea.WithOutput(os.Stderr))
	finalModel, err := p.Run()
	if err != nil {
		return MultiSelectResult{}, err
	}
	m := finalModel.(multiSelectModel)
	if m.cancelled {
		return MultiSelectResult{Cancelled: true}, nil
	}

	var values []string
	for i, opt := range m.options {
		if m.checked[i] {
			values = append(values, opt)
		}
	}
	return MultiSelectResult{Values: values}, nil
}
