package cli

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

var (
	// successStyle for positive outcomes
	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10")). // Green
			Bold(true)

	// errorStyle for failures
	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9")). // Red
			Bold(true)

	// warnStyle for cautionary messages
	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11")). // Yellow
			Bold(true)

	// dimStyle for secondary information
	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8")) // Gray

	// headerStyle for table headers
	headerStyle = lipgloss.NewStyle().
			Bold(true)
)

// styledOutput is false when stdout is not a terminal, so piped output stays
// free of escape sequences.
var styledOutput = term.IsTerminal(int(os.Stdout.Fd()))

// paint renders s with st when stdout is a terminal, otherwise returns s
// unchanged.
func paint(st lipgloss.Style, s string) string {
	if !styledOutput {
		return s
	}
	return st.Render(s)
}
