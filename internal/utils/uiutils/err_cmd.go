package uiutils

import tea "github.com/charmbracelet/bubbletea"

// cancelledError is returned when the user interrupts a prompt.
type cancelledError struct{}

func (cancelledError) Error() string {
	return "cancelled"
}

// ExitCode follows the shell convention for SIGINT.
func (cancelledError) ExitCode() int {
	return 130
}

var ErrCancelled error = cancelledError{}

// ErrCmd wraps an error into a tea.Cmd that returns the error as a message.
//
// Views halt the program by sending an error as a message; BaseStackedView
// records it and quits.
func ErrCmd(err error) tea.Cmd {
	return func() tea.Msg {
		return err
	}
}

// SimpleCommandMsg asks the stacked view to run Cmd.
type SimpleCommandMsg struct {
	Cmd tea.Cmd
}
