// Package ui provides the interactive terminal components used by breath:
// the progress spinner shown while a hook runs and the prompt primitives
// for the commit flow.
package ui

import (
	"fmt"
	"os"
	"sync"
	"time"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/colorprofile"
	"github.com/mattn/go-isatty"
)

// Spinner animates on stderr while a blocking operation runs on the main
// goroutine. Exactly one spinner is meant to be active at a time: Start
// launches the animation, Stop tears it down and clears the line before
// the caller moves on. When stderr is not a terminal the spinner is a
// no-op, so piped and scripted runs stay clean.
type Spinner struct {
	program   *tea.Program
	quit      chan struct{}
	done      chan struct{}
	mu        sync.Mutex
	isRunning bool
	message   string
}

// spinnerModel is the internal Bubbletea model
type spinnerModel struct {
	spinner spinner.Model
	message string
	quit    chan struct{}
	done    bool
}

func (m spinnerModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.waitForQuit())
}

func (m spinnerModel) waitForQuit() tea.Cmd {
	return func() tea.Msg {
		<-m.quit
		return tea.Quit()
	}
}

func (m spinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(tea.QuitMsg); ok {
		m.done = true
		return m, tea.Quit
	}
	var cmd tea.Cmd
	m.spinner, cmd = m.spinner.Update(msg)
	return m, cmd
}

func (m spinnerModel) View() tea.View {
	if m.done || m.message == "" {
		return tea.NewView("")
	}
	return tea.NewView(fmt.Sprintf("%s %s", m.spinner.View(), m.message))
}

// NewSpinner creates a new spinner with the given message
func NewSpinner(message string) *Spinner {
	return &Spinner{
		quit:    make(chan struct{}),
		done:    make(chan struct{}),
		message: message,
	}
}

// Start begins the spinner animation. Calling Start on a running spinner
// is a no-op, as is starting one without a terminal on stderr.
func (s *Spinner) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning || !isatty.IsTerminal(os.Stderr.Fd()) {
		return
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	model := spinnerModel{
		spinner: sp,
		message: s.message,
		quit:    s.quit,
	}

	// Render to stderr so stdout stays clean for piping; signal handling
	// belongs to the root command's context, not the animation.
	s.program = tea.NewProgram(model,
		tea.WithoutSignalHandler(),
		tea.WithOutput(os.Stderr),
		tea.WithColorProfile(colorprofile.Detect(os.Stderr, os.Environ())),
	)
	s.isRunning = true

	go func() {
		_, _ = s.program.Run()
		close(s.done)
	}()
}

// Stop stops the spinner and clears the line. It returns only after the
// animation goroutine has exited (or a short timeout has elapsed), so the
// next spinner can never overlap with this one.
func (s *Spinner) Stop() {
	s.mu.Lock()
	if !s.isRunning {
		s.mu.Unlock()
		return
	}
	s.isRunning = false
	close(s.quit)
	s.mu.Unlock()

	if s.program != nil {
		s.program.Quit()
	}

	select {
	case <-s.done:
	case <-time.After(500 * time.Millisecond):
	}

	fmt.Fprint(os.Stderr, "\r\033[K")
}
