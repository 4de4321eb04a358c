package prompt

import (
	"fmt"
	"os"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
)

// TextResult holds the result of a text input prompt.
type TextResult struct {
	Value     string
	Cancelled bool
}

type textModel struct {
	textInput textinput.Model
	prompt    string
	done      bool
	cancelled bool
}

func (m textModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m textModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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
		}
	}
	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

func (m textModel) View() tea.View {
	if m.done {
		return tea.NewView("")
	}
	return tea.NewView(fmt.Sprintf("%s\n%s", m.prompt, m.textInput.View()))
}

// Text shows a single-line input prompt. The initial value, when not
// empty, is pre-filled so the user can accept it with enter.
func Text(prompt, placeholder, initial string) (TextResult, error) {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.SetValue(initial)
	ti.Focus()
	ti.CharLimit = 156
	ti.SetWidth(50)

	model := textModel{
		textInput: ti,
		prompt:    prompt,
	}
	p := tea.NewProgram(model, tea.WithOutput(os.Stderr))
	finalModel, err := p.Run()
	if err != nil {
		return TextResult{}, err
	}
	m := finalModel.(textModel)
	return TextResult{
		Value:     m.textInput.Value(),
		Cancelled: m.cancelled,
	}, nil
}

// RequiredText repeats a text prompt until the user enters a non-empty
// value or cancels.
func RequiredText(prompt, placeholder string) (TextResult, error) {
	for {
		res, err := Text(prompt, placeholder, "")
		if err != nil || res.Cancelled || res.Value != "" {
			return res, err
		}
	}
}
