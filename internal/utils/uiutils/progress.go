package uiutils

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stoner-cli/stoner/internal/utils/colors"
)

type progressDoneMsg struct {
	result tea.Msg
	err    error
}

// ProgressModel shows a spinner while run executes in the background. When
// run succeeds its result is sent as the next message; when it fails the error
// halts the program.
type ProgressModel struct {
	spinner spinner.Model
	message string
	run     func() (tea.Msg, error)

	done   bool
	failed bool
}

func NewProgressModel(message string, run func() (tea.Msg, error)) *ProgressModel {
	return &ProgressModel{
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot)),
		message: message,
		run:     run,
	}
}

func (m *ProgressModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.start)
}

func (m *ProgressModel) start() tea.Msg {
	result, err := m.run()
	return progressDoneMsg{result, err}
}

func (m *ProgressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if m.done {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case progressDoneMsg:
		m.done = true
		if msg.err != nil {
			m.failed = true
			return m, ErrCmd(msg.err)
		}
		return m, func() tea.Msg { return msg.result }
	}
	return m, nil
}

func (m *ProgressModel) View() string {
	if !m.done {
		return colors.ProgressStyle.Render(m.spinner.View() + m.message + "...")
	}
	if m.failed {
		return colors.FailureStyle.Render("✗ " + m.message)
	}
	return colors.SuccessStyle.Render("✓ " + m.message)
}
