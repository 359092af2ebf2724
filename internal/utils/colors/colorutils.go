package colors

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
)

var (
	SuccessC   = color.New(color.FgGreen)
	WarningC   = color.New(color.FgYellow)
	FailureC   = color.New(color.FgRed)
	UserInputC = color.New(color.FgCyan)
)

var (
	Success   = SuccessC.Sprint
	Warning   = WarningC.Sprint
	Failure   = FailureC.Sprint
	UserInput = UserInputC.Sprint
)

// Styles for the bubbletea views.
var (
	SuccessStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	FailureStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	ProgressStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	QuestionStyle  = lipgloss.NewStyle().Bold(true)
	UserInputStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	FaintStyle     = lipgloss.NewStyle().Faint(true)
)
